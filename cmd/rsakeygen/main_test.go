/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package main

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"
	"github.com/onsi/gomega/gexec"
)

func TestGenerate(t *testing.T) {
	gt := NewGomegaWithT(t)
	rsakeygen, err := gexec.Build("github.com/hyperledger/fabric-rsa/cmd/rsakeygen")
	gt.Expect(err).NotTo(HaveOccurred())
	defer gexec.CleanupBuildArtifacts()

	dir := t.TempDir()
	metricsFile := filepath.Join(dir, "rsatool.prom")

	cmd := exec.Command(rsakeygen, "--keystore", dir)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(),
		"RSAKEYGEN_METRICS_PROVIDER=prometheus",
		"RSAKEYGEN_METRICS_TEXTFILE="+metricsFile,
	)
	sess, err := gexec.Start(cmd, nil, nil)
	gt.Expect(err).NotTo(HaveOccurred())
	gt.Eventually(sess, time.Minute).Should(gexec.Exit(0))
	gt.Expect(sess.Err).To(gbytes.Say("Key pair written to " + dir))

	gt.Expect(filepath.Join(dir, "pubkey.rsa")).To(BeARegularFile())
	gt.Expect(filepath.Join(dir, "privkey.rsa")).To(BeARegularFile())

	info, err := os.Stat(filepath.Join(dir, "privkey.rsa"))
	gt.Expect(err).NotTo(HaveOccurred())
	gt.Expect(info.Mode().Perm()).To(Equal(os.FileMode(0o600)))

	prom, err := os.ReadFile(metricsFile)
	gt.Expect(err).NotTo(HaveOccurred())
	gt.Expect(string(prom)).To(ContainSubstring("rsatool_keys_generated_total 1"))
}

func TestGenerateVerbose(t *testing.T) {
	gt := NewGomegaWithT(t)
	rsakeygen, err := gexec.Build("github.com/hyperledger/fabric-rsa/cmd/rsakeygen")
	gt.Expect(err).NotTo(HaveOccurred())
	defer gexec.CleanupBuildArtifacts()

	dir := t.TempDir()
	sess, err := gexec.Start(exec.Command(rsakeygen, "generate", "--keystore", dir, "--verbose"), nil, nil)
	gt.Expect(err).NotTo(HaveOccurred())
	gt.Eventually(sess, time.Minute).Should(gexec.Exit(0))
	for _, name := range []string{"P", "Q", "N", "PHI_N", "E", "D"} {
		gt.Expect(sess.Out).To(gbytes.Say(`(?m)^` + name + `: \d+$`))
	}
}

func TestShowTemplateAndVersion(t *testing.T) {
	gt := NewGomegaWithT(t)
	rsakeygen, err := gexec.Build("github.com/hyperledger/fabric-rsa/cmd/rsakeygen")
	gt.Expect(err).NotTo(HaveOccurred())
	defer gexec.CleanupBuildArtifacts()

	sess, err := gexec.Start(exec.Command(rsakeygen, "showtemplate"), nil, nil)
	gt.Expect(err).NotTo(HaveOccurred())
	gt.Eventually(sess, time.Minute).Should(gexec.Exit(0))
	gt.Expect(sess.Out).To(gbytes.Say("Keystore: ."))
	gt.Expect(sess.Out).To(gbytes.Say("SignatureSuffix: .sig"))

	sess, err = gexec.Start(exec.Command(rsakeygen, "version"), nil, nil)
	gt.Expect(err).NotTo(HaveOccurred())
	gt.Eventually(sess, time.Minute).Should(gexec.Exit(0))
	gt.Expect(sess.Out).To(gbytes.Say("rsakeygen:\n Version: "))
}

func TestBadConfig(t *testing.T) {
	gt := NewGomegaWithT(t)
	rsakeygen, err := gexec.Build("github.com/hyperledger/fabric-rsa/cmd/rsakeygen")
	gt.Expect(err).NotTo(HaveOccurred())
	defer gexec.CleanupBuildArtifacts()

	dir := t.TempDir()
	cmd := exec.Command(rsakeygen, "generate", "--config", filepath.Join(dir, "missing.yaml"))
	sess, err := gexec.Start(cmd, nil, nil)
	gt.Expect(err).NotTo(HaveOccurred())
	gt.Eventually(sess, time.Minute).Should(gexec.Exit(1))
	gt.Expect(sess.Err).To(gbytes.Say("Error generating keys: failed reading configuration file"))
}
