/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package rsatool implements the operations behind the rsakeygen and
// rsasign commands: generating the key artifacts, and signing or verifying
// a file against them.
package rsatool

import (
	"code.cloudfoundry.org/clock"
	"github.com/davecgh/go-spew/spew"
	"github.com/hyperledger/fabric-rsa/bccsp"
	"github.com/hyperledger/fabric-rsa/bccsp/factory"
	"github.com/hyperledger/fabric-rsa/bccsp/sw"
	"github.com/hyperledger/fabric-rsa/common/flogging"
	"github.com/hyperledger/fabric-rsa/common/metrics"
	"github.com/pkg/errors"
	"go.uber.org/zap/zapcore"
)

var logger = flogging.MustGetLogger("rsatool")

// Tool runs key generation, signing and verification for one
// configuration.
type Tool struct {
	Config  *Config
	CSP     bccsp.BCCSP
	Clock   clock.Clock
	Metrics *Metrics
}

// New builds a Tool whose crypto provider is created from conf.BCCSP.
func New(conf *Config, provider metrics.Provider) (*Tool, error) {
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	opts := conf.BCCSP
	if opts == nil {
		opts = factory.GetDefaultOpts()
	}
	csp, err := factory.GetBCCSPFromOpts(opts)
	if err != nil {
		return nil, errors.WithMessage(err, "failed initializing crypto provider")
	}
	return &Tool{
		Config:  conf,
		CSP:     csp,
		Clock:   clock.NewClock(),
		Metrics: NewMetrics(provider),
	}, nil
}

type exponentResampler interface {
	ExponentResamples() int
}

// GenerateKeys generates a key pair and writes pubkey.rsa and privkey.rsa
// into the keystore folder, replacing any previous pair.
func (t *Tool) GenerateKeys() (bccsp.Key, error) {
	start := t.Clock.Now()
	k, err := t.CSP.KeyGen(&bccsp.RSAKeyGenOpts{Temporary: true})
	if err != nil {
		return nil, errors.WithMessage(err, "failed generating key pair")
	}
	t.Metrics.KeygenDuration.Observe(t.Clock.Since(start).Seconds())
	t.Metrics.KeysGenerated.Add(1)

	if r, ok := k.(exponentResampler); ok && r.ExponentResamples() > 0 {
		logger.Infof("Public exponent 65537 rejected, accepted after %d random draws", r.ExponentResamples())
		t.Metrics.ExponentResamples.Add(float64(r.ExponentResamples()))
	}

	ks, err := sw.NewFileBasedKeyStore(t.Config.Keystore, false)
	if err != nil {
		return nil, errors.WithMessagef(err, "failed opening keystore %s", t.Config.Keystore)
	}
	if err := ks.StoreKey(k); err != nil {
		return nil, errors.WithMessage(err, "failed storing key pair")
	}

	if logger.IsEnabledFor(zapcore.DebugLevel) {
		if pub, err := k.PublicKey(); err == nil {
			logger.Debugf("Generated public key %x:\n%s", pub.SKI(), spew.Sdump(pub))
		}
	}
	logger.Infof("Key pair written to %s", t.Config.Keystore)
	return k, nil
}

// SignFile signs the digest of target with privkey.rsa and writes the
// signature next to it.
func (t *Tool) SignFile(target string) (string, error) {
	digest, err := t.digest(target)
	if err != nil {
		return "", err
	}

	raw, err := readKeyArtifact(t.Config.Keystore, sw.PrivateKeyFile)
	if err != nil {
		return "", err
	}
	k, err := t.CSP.KeyImport(raw, &bccsp.RSAPrivateKeyImportOpts{Temporary: true})
	if err != nil {
		return "", errors.WithMessagef(ErrMissingKeyArtifact, "%s", err)
	}

	sig, err := t.CSP.Sign(k, digest, t.Config.signerOpts())
	if err != nil {
		return "", errors.WithMessagef(err, "failed signing %s", target)
	}

	path := SignatureFile(target, t.Config.SignatureSuffix)
	if err := writeSignature(path, sig); err != nil {
		return "", err
	}
	t.Metrics.Signatures.With("result", "signed").Add(1)
	logger.Debugf("Signed %s, digest %x", target, digest)
	return path, nil
}

// VerifyFile checks the signature artifact of target against the digest of
// its contents and pubkey.rsa. A signature that does not match is reported
// as false with a nil error.
func (t *Tool) VerifyFile(target string) (bool, error) {
	digest, err := t.digest(target)
	if err != nil {
		return false, err
	}

	raw, err := readKeyArtifact(t.Config.Keystore, sw.PublicKeyFile)
	if err != nil {
		return false, err
	}
	k, err := t.CSP.KeyImport(raw, &bccsp.RSAPublicKeyImportOpts{Temporary: true})
	if err != nil {
		return false, errors.WithMessagef(ErrMissingKeyArtifact, "%s", err)
	}

	sig, err := readSignature(SignatureFile(target, t.Config.SignatureSuffix))
	if err != nil {
		return false, err
	}

	valid, err := t.CSP.Verify(k, sig, digest, t.Config.signerOpts())
	if err != nil {
		return false, errors.WithMessagef(err, "failed verifying %s", target)
	}

	result := "invalid"
	if valid {
		result = "valid"
	}
	t.Metrics.Signatures.With("result", result).Add(1)
	return valid, nil
}

func (t *Tool) digest(target string) ([]byte, error) {
	msg, err := readTarget(target)
	if err != nil {
		return nil, err
	}
	opts, err := t.Config.HashOpts()
	if err != nil {
		return nil, err
	}
	digest, err := t.CSP.Hash(msg, opts)
	if err != nil {
		return nil, errors.WithMessagef(err, "failed hashing %s", target)
	}
	return digest, nil
}
