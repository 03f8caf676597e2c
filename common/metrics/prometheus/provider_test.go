/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package prometheus_test

import (
	"os"
	"path/filepath"

	"github.com/hyperledger/fabric-rsa/common/metrics"
	"github.com/hyperledger/fabric-rsa/common/metrics/prometheus"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	prom "github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

var _ = Describe("Provider", func() {
	var (
		p       *prometheus.Provider
		tempDir string
	)

	BeforeEach(func() {
		p = prometheus.NewProvider()
		tempDir = GinkgoT().TempDir()
	})

	gathered := func(name string) *dto.MetricFamily {
		families, err := p.Registry.Gather()
		Expect(err).NotTo(HaveOccurred())
		for _, mf := range families {
			if mf.GetName() == name {
				return mf
			}
		}
		return nil
	}

	It("increments labeled counters", func() {
		c := p.NewCounter(metrics.CounterOpts{
			Namespace:  "rsatool",
			Name:       "signatures_total",
			Help:       "signatures processed",
			LabelNames: []string{"result"},
		})
		c.With("result", "valid").Add(2)
		c.With("result", "invalid").Add(1)

		mf := gathered("rsatool_signatures_total")
		Expect(mf).NotTo(BeNil())
		Expect(mf.GetMetric()).To(HaveLen(2))

		var total float64
		for _, m := range mf.GetMetric() {
			total += m.GetCounter().GetValue()
		}
		Expect(total).To(Equal(3.0))
	})

	It("sets gauges", func() {
		g := p.NewGauge(metrics.GaugeOpts{Namespace: "rsatool", Name: "modulus_bits", Help: "modulus size"})
		g.Set(511)
		g.Add(1)

		mf := gathered("rsatool_modulus_bits")
		Expect(mf).NotTo(BeNil())
		Expect(mf.GetMetric()[0].GetGauge().GetValue()).To(Equal(512.0))
	})

	It("observes histograms", func() {
		h := p.NewHistogram(metrics.HistogramOpts{
			Namespace: "rsatool",
			Name:      "keygen_duration_seconds",
			Help:      "key generation time",
			Buckets:   []float64{0.1, 1, 10},
		})
		h.Observe(0.5)
		h.Observe(3)

		mf := gathered("rsatool_keygen_duration_seconds")
		Expect(mf).NotTo(BeNil())
		Expect(mf.GetMetric()[0].GetHistogram().GetSampleCount()).To(Equal(uint64(2)))
	})

	It("writes a textfile", func() {
		c := p.NewCounter(metrics.CounterOpts{Namespace: "rsatool", Name: "keys_generated_total", Help: "keys"})
		c.Add(1)

		path := filepath.Join(tempDir, "rsatool.prom")
		Expect(p.WriteTextfile(path)).To(Succeed())

		contents, err := os.ReadFile(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(contents)).To(ContainSubstring("rsatool_keys_generated_total 1"))
	})

	It("panics on duplicate registration", func() {
		opts := metrics.CounterOpts{Namespace: "rsatool", Name: "dup_total", Help: "dup"}
		p.NewCounter(opts)
		Expect(func() { p.NewCounter(opts) }).To(Panic())
	})

	It("falls back to the default registry", func() {
		def := &prometheus.Provider{}
		c := def.NewCounter(metrics.CounterOpts{Namespace: "rsatool_test", Name: "default_registry_total", Help: "default"})
		c.Add(1)

		families, err := prom.DefaultGatherer.Gather()
		Expect(err).NotTo(HaveOccurred())
		var names []string
		for _, mf := range families {
			names = append(names, mf.GetName())
		}
		Expect(names).To(ContainElement("rsatool_test_default_registry_total"))
	})
})
