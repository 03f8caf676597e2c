/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package sw

import (
	"github.com/hyperledger/fabric-rsa/bccsp"
	"github.com/hyperledger/fabric-rsa/bccsp/rsa"
	"github.com/pkg/errors"
)

type rsaPublicKeyImportOptsKeyImporter struct{}

// KeyImport accepts a *rsa.PublicKey or the PEM bytes of a public key
// artifact.
func (*rsaPublicKeyImportOptsKeyImporter) KeyImport(raw interface{}, opts bccsp.KeyImportOpts) (bccsp.Key, error) {
	switch k := raw.(type) {
	case *rsa.PublicKey:
		if k == nil {
			return nil, errors.New("Invalid raw material. It must not be nil.")
		}
		return &rsaPublicKey{k}, nil
	case []byte:
		pub, err := pemToPublicKey(k)
		if err != nil {
			return nil, errors.WithMessage(err, "failed parsing public key")
		}
		return &rsaPublicKey{pub}, nil
	default:
		return nil, errors.New("Invalid raw material. Expected *rsa.PublicKey or PEM bytes.")
	}
}

type rsaPrivateKeyImportOptsKeyImporter struct{}

// KeyImport accepts a *rsa.PrivateKey or the PEM bytes of a private key
// artifact.
func (*rsaPrivateKeyImportOptsKeyImporter) KeyImport(raw interface{}, opts bccsp.KeyImportOpts) (bccsp.Key, error) {
	switch k := raw.(type) {
	case *rsa.PrivateKey:
		if k == nil {
			return nil, errors.New("Invalid raw material. It must not be nil.")
		}
		return &rsaPrivateKey{privKey: k}, nil
	case []byte:
		priv, err := pemToPrivateKey(k)
		if err != nil {
			return nil, errors.WithMessage(err, "failed parsing private key")
		}
		return &rsaPrivateKey{privKey: priv}, nil
	default:
		return nil, errors.New("Invalid raw material. Expected *rsa.PrivateKey or PEM bytes.")
	}
}
