/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package sw

import (
	"io"

	"github.com/hyperledger/fabric-rsa/bccsp"
	"github.com/hyperledger/fabric-rsa/bccsp/rsa"
	"github.com/pkg/errors"
)

type rsaKeyGenerator struct {
	random io.Reader
	pBits  int
	qBits  int
}

func (kg *rsaKeyGenerator) KeyGen(opts bccsp.KeyGenOpts) (bccsp.Key, error) {
	privKey, resampled, err := rsa.GenerateKeyWithStats(kg.random, kg.pBits, kg.qBits)
	if err != nil {
		return nil, errors.WithMessagef(err, "Failed generating RSA key of %d+%d bits", kg.pBits, kg.qBits)
	}
	if resampled > 0 {
		logger.Debugf("public exponent resampled %d times", resampled)
	}

	return &rsaPrivateKey{privKey: privKey, resampled: resampled}, nil
}
