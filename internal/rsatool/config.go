/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package rsatool

import (
	"crypto"

	"github.com/hyperledger/fabric-rsa/bccsp"
	"github.com/hyperledger/fabric-rsa/bccsp/factory"
	"github.com/hyperledger/fabric-rsa/common/viperutil"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v2"
)

const (
	// DefaultSignatureSuffix is appended to a file name to name its
	// signature artifact.
	DefaultSignatureSuffix = ".sig"

	// MetricsDisabled and MetricsPrometheus select the metrics provider.
	MetricsDisabled   = "disabled"
	MetricsPrometheus = "prometheus"
)

// Config is the tool configuration shared by rsakeygen and rsasign.
type Config struct {
	// Keystore is the folder holding pubkey.rsa and privkey.rsa.
	Keystore string `yaml:"Keystore"`
	// Hash names the digest applied to the target file, SHA256 or SHA3_256.
	Hash            string        `yaml:"Hash"`
	SignatureSuffix string        `yaml:"SignatureSuffix"`
	Logging         Logging       `yaml:"Logging"`
	Metrics         MetricsConfig `yaml:"Metrics"`

	BCCSP *factory.FactoryOpts `yaml:"BCCSP"`
}

// Logging is passed to flogging.Init.
type Logging struct {
	Spec   string `yaml:"Spec"`
	Format string `yaml:"Format"`
}

// MetricsConfig selects the metrics provider. When Provider is prometheus and
// Textfile is set, the registry is written there in the text exposition
// format before the tool exits.
type MetricsConfig struct {
	Provider string `yaml:"Provider"`
	Textfile string `yaml:"Textfile"`
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() *Config {
	return &Config{
		Keystore:        ".",
		Hash:            bccsp.SHA256,
		SignatureSuffix: DefaultSignatureSuffix,
		Logging: Logging{
			Spec:   "info",
			Format: "console",
		},
		Metrics: MetricsConfig{
			Provider: MetricsDisabled,
		},
		BCCSP: factory.GetDefaultOpts(),
	}
}

// LoadConfig decodes the settings held by v over the defaults and
// validates the result.
func LoadConfig(v *viper.Viper) (*Config, error) {
	conf := DefaultConfig()
	if err := viperutil.EnhancedExactUnmarshal(v, conf); err != nil {
		return nil, errors.Wrap(err, "failed decoding configuration")
	}
	if conf.BCCSP == nil {
		conf.BCCSP = factory.GetDefaultOpts()
	}
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return conf, nil
}

// ParseConfig reads the configuration file located by cp, when there is
// one, and environment overrides over the defaults.
func ParseConfig(cp *viperutil.ConfigParser) (*Config, error) {
	conf := DefaultConfig()
	if err := cp.ReadInConfig(); err != nil {
		if cp.ConfigFileUsed() != "" {
			return nil, errors.Wrapf(err, "failed reading configuration file %s", cp.ConfigFileUsed())
		}
		logger.Debug("No configuration file found, using defaults")
	}
	if err := cp.EnhancedExactUnmarshal(conf); err != nil {
		return nil, errors.Wrap(err, "failed decoding configuration")
	}
	if conf.BCCSP == nil {
		conf.BCCSP = factory.GetDefaultOpts()
	}
	return conf, conf.Validate()
}

// Validate checks the values that the tool cannot fall back from.
func (c *Config) Validate() error {
	if c.Keystore == "" {
		return errors.New("keystore folder must be set")
	}
	if c.SignatureSuffix == "" {
		return errors.New("signature suffix must not be empty")
	}
	if _, err := c.HashOpts(); err != nil {
		return err
	}
	switch c.Metrics.Provider {
	case "", MetricsDisabled, MetricsPrometheus:
	default:
		return errors.Errorf("unknown metrics provider [%s]", c.Metrics.Provider)
	}
	return nil
}

// HashOpts returns the options selecting the configured digest.
func (c *Config) HashOpts() (bccsp.HashOpts, error) {
	switch c.Hash {
	case bccsp.SHA256, bccsp.SHA3_256:
		return bccsp.GetHashOpt(c.Hash)
	default:
		return nil, errors.Errorf("hash function not supported [%s]", c.Hash)
	}
}

func (c *Config) signerOpts() *bccsp.RSASignerOpts {
	h, err := bccsp.GetCryptoHash(c.Hash)
	if err != nil {
		h = crypto.SHA256
	}
	return &bccsp.RSASignerOpts{Hash: h}
}

// Template renders c as YAML.
func (c *Config) Template() (string, error) {
	out, err := yaml.Marshal(c)
	if err != nil {
		return "", errors.Wrap(err, "failed marshalling configuration")
	}
	return string(out), nil
}
