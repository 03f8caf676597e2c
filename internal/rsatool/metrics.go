/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package rsatool

import (
	"github.com/hyperledger/fabric-rsa/common/metrics"
	"github.com/hyperledger/fabric-rsa/common/metrics/disabled"
	"github.com/hyperledger/fabric-rsa/common/metrics/prometheus"
	"github.com/pkg/errors"
)

var (
	keysGeneratedOpts = metrics.CounterOpts{
		Namespace: "rsatool",
		Name:      "keys_generated_total",
		Help:      "The number of key pairs generated.",
	}
	exponentResamplesOpts = metrics.CounterOpts{
		Namespace: "rsatool",
		Name:      "exponent_resamples_total",
		Help:      "The number of public exponents drawn after 65537 was rejected.",
	}
	signaturesOpts = metrics.CounterOpts{
		Namespace:  "rsatool",
		Name:       "signatures_total",
		Help:       "The number of signatures produced or checked, by result.",
		LabelNames: []string{"result"},
	}
	keygenDurationOpts = metrics.HistogramOpts{
		Namespace: "rsatool",
		Name:      "keygen_duration_seconds",
		Help:      "The time taken to generate a key pair.",
		Buckets:   []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
	}
)

// Metrics are the meters updated by the tool operations.
type Metrics struct {
	KeysGenerated     metrics.Counter
	ExponentResamples metrics.Counter
	Signatures        metrics.Counter
	KeygenDuration    metrics.Histogram
}

// NewMetrics creates the tool meters from p.
func NewMetrics(p metrics.Provider) *Metrics {
	return &Metrics{
		KeysGenerated:     p.NewCounter(keysGeneratedOpts),
		ExponentResamples: p.NewCounter(exponentResamplesOpts),
		Signatures:        p.NewCounter(signaturesOpts),
		KeygenDuration:    p.NewHistogram(keygenDurationOpts),
	}
}

// NewMetricsProvider returns the provider selected by conf and a flush
// function to call before exiting.
func NewMetricsProvider(conf MetricsConfig) (metrics.Provider, func() error) {
	switch conf.Provider {
	case MetricsPrometheus:
		p := prometheus.NewProvider()
		return p, func() error {
			if conf.Textfile == "" {
				return nil
			}
			if err := p.WriteTextfile(conf.Textfile); err != nil {
				return errors.Wrapf(err, "failed writing metrics to %s", conf.Textfile)
			}
			return nil
		}
	default:
		return &disabled.Provider{}, func() error { return nil }
	}
}
