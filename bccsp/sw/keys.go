/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package sw

import (
	"encoding/asn1"
	"encoding/pem"

	"github.com/hyperledger/fabric-rsa/bccsp/largeint"
	"github.com/hyperledger/fabric-rsa/bccsp/rsa"
	"github.com/pkg/errors"
)

const (
	publicKeyPEMType  = "RSA TEXTBOOK PUBLIC KEY"
	privateKeyPEMType = "RSA TEXTBOOK PRIVATE KEY"
)

// rsaKeyASN carries the modulus and one exponent as the raw two's
// complement bytes of each integer.
type rsaKeyASN struct {
	N        []byte
	Exponent []byte
}

func publicKeyToDER(k *rsa.PublicKey) ([]byte, error) {
	if k == nil {
		return nil, errors.New("invalid rsa public key. It must be different from nil")
	}
	return asn1.Marshal(rsaKeyASN{N: k.N.Bytes(), Exponent: k.E.Bytes()})
}

func privateKeyToDER(k *rsa.PrivateKey) ([]byte, error) {
	if k == nil {
		return nil, errors.New("invalid rsa private key. It must be different from nil")
	}
	return asn1.Marshal(rsaKeyASN{N: k.N.Bytes(), Exponent: k.D.Bytes()})
}

func publicKeyToPEM(k *rsa.PublicKey) ([]byte, error) {
	der, err := publicKeyToDER(k)
	if err != nil {
		return nil, err
	}
	return pem.EncodeToMemory(&pem.Block{Type: publicKeyPEMType, Bytes: der}), nil
}

// privateKeyToPEM writes only the modulus and the private exponent. A key
// read back from it can sign but does not know its public exponent.
func privateKeyToPEM(k *rsa.PrivateKey) ([]byte, error) {
	der, err := privateKeyToDER(k)
	if err != nil {
		return nil, err
	}
	return pem.EncodeToMemory(&pem.Block{Type: privateKeyPEMType, Bytes: der}), nil
}

func pemToPublicKey(raw []byte) (*rsa.PublicKey, error) {
	n, e, err := decodeKeyPEM(raw, publicKeyPEMType)
	if err != nil {
		return nil, err
	}
	return &rsa.PublicKey{N: n, E: e}, nil
}

func pemToPrivateKey(raw []byte) (*rsa.PrivateKey, error) {
	n, d, err := decodeKeyPEM(raw, privateKeyPEMType)
	if err != nil {
		return nil, err
	}
	return &rsa.PrivateKey{PublicKey: rsa.PublicKey{N: n}, D: d}, nil
}

func decodeKeyPEM(raw []byte, blockType string) (n, exp largeint.Int, err error) {
	if len(raw) == 0 {
		return n, exp, errors.New("invalid PEM. It must be different from nil")
	}
	block, _ := pem.Decode(raw)
	if block == nil {
		return n, exp, errors.Errorf("failed decoding PEM. Block must be different from nil [% x]", raw)
	}
	if block.Type != blockType {
		return n, exp, errors.Errorf("unexpected PEM block type [%s], expected [%s]", block.Type, blockType)
	}

	var key rsaKeyASN
	rest, err := asn1.Unmarshal(block.Bytes, &key)
	if err != nil {
		return n, exp, errors.Wrap(err, "failed unmarshalling key")
	}
	if len(rest) != 0 {
		return n, exp, errors.New("trailing data after key")
	}

	if n, err = largeint.FromBytes(key.N); err != nil {
		return n, exp, errors.WithMessage(err, "invalid modulus")
	}
	if exp, err = largeint.FromBytes(key.Exponent); err != nil {
		return n, exp, errors.WithMessage(err, "invalid exponent")
	}
	if n.Cmp(largeint.One()) <= 0 {
		return n, exp, errors.Errorf("invalid modulus %s. It must be greater than one", n)
	}
	if !exp.IsPositive() {
		return n, exp, errors.Errorf("invalid exponent %s. It must be positive", exp)
	}
	return n.Trim(), exp.Trim(), nil
}
