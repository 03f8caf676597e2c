/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package rsatool

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hyperledger/fabric-rsa/bccsp"
	"github.com/hyperledger/fabric-rsa/common/viperutil"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newViper(t *testing.T, yaml string) *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("rsatooltest")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.SetConfigType("yaml")
	require.NoError(t, v.ReadConfig(strings.NewReader(yaml)))
	return v
}

func TestLoadConfigDefaults(t *testing.T) {
	conf, err := LoadConfig(newViper(t, ""))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), conf)
	assert.Equal(t, ".sig", conf.SignatureSuffix)
	assert.Equal(t, bccsp.SHA256, conf.Hash)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("RSATOOLTEST_LOGGING_SPEC", "rsatool=debug:warn")

	conf, err := LoadConfig(newViper(t, `---
Keystore: /var/rsatool
Hash: SHA3_256
SignatureSuffix: .signature
Metrics:
  Provider: prometheus
  Textfile: /tmp/rsatool.prom
BCCSP:
  SW:
    Security: 384
`))
	require.NoError(t, err)
	assert.Equal(t, "/var/rsatool", conf.Keystore)
	assert.Equal(t, bccsp.SHA3_256, conf.Hash)
	assert.Equal(t, ".signature", conf.SignatureSuffix)
	assert.Equal(t, "rsatool=debug:warn", conf.Logging.Spec)
	assert.Equal(t, "console", conf.Logging.Format)
	assert.Equal(t, MetricsConfig{Provider: MetricsPrometheus, Textfile: "/tmp/rsatool.prom"}, conf.Metrics)
	assert.Equal(t, "SW", conf.BCCSP.ProviderName)
	assert.Equal(t, 384, conf.BCCSP.SwOpts.SecLevel)
	assert.Equal(t, "SHA2", conf.BCCSP.SwOpts.HashFamily)
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		yaml   string
		errMsg string
	}{
		{"Hash: MD5\n", "hash function not supported [MD5]"},
		{"SignatureSuffix: \"\"\n", "signature suffix must not be empty"},
		{"Keystore: \"\"\n", "keystore folder must be set"},
		{"Metrics:\n  Provider: statsd\n", "unknown metrics provider [statsd]"},
	}
	for _, tt := range tests {
		_, err := LoadConfig(newViper(t, tt.yaml))
		assert.EqualError(t, err, tt.errMsg, tt.yaml)
	}

	_, err := LoadConfig(newViper(t, "Unknown: 1\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed decoding configuration")
}

func TestTemplateRoundTrip(t *testing.T) {
	tmpl, err := DefaultConfig().Template()
	require.NoError(t, err)
	assert.Contains(t, tmpl, "SignatureSuffix: .sig")
	assert.Contains(t, tmpl, "Hash: SHA256")

	conf, err := LoadConfig(newViper(t, tmpl))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), conf)
}

func TestSignatureFile(t *testing.T) {
	assert.Equal(t, "report.pdf.sig", SignatureFile("report.pdf", DefaultSignatureSuffix))
	assert.Equal(t, "dir/a.txt.s", SignatureFile("dir/a.txt", ".s"))
}

func TestParseConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "rsatooltest.yaml"), []byte("Keystore: /from/file\nHash: SHA3_256\n"), 0o644))
	t.Setenv("RSATOOLTEST_SIGNATURESUFFIX", ".s")

	cp := viperutil.New()
	cp.AddConfigPaths(dir)
	cp.SetConfigName("rsatooltest")
	conf, err := ParseConfig(cp)
	require.NoError(t, err)
	assert.Equal(t, "/from/file", conf.Keystore)
	assert.Equal(t, bccsp.SHA3_256, conf.Hash)
	assert.Equal(t, ".s", conf.SignatureSuffix)
	assert.NotNil(t, conf.BCCSP)

	// no file anywhere on the search path
	cp = viperutil.New()
	cp.AddConfigPaths(filepath.Join(dir, "missing"))
	cp.SetConfigName("rsatooltest")
	conf, err = ParseConfig(cp)
	require.NoError(t, err)
	assert.Equal(t, ".", conf.Keystore)
	assert.Equal(t, ".s", conf.SignatureSuffix)

	cp = viperutil.New()
	cp.SetConfigFile(filepath.Join(dir, "absent.yaml"))
	_, err = ParseConfig(cp)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed reading configuration file")
}
