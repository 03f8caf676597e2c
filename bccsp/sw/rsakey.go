/*
Copyright IBM Corp. 2017 All Rights Reserved.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

		 http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package sw

import (
	"crypto/sha256"

	"github.com/hyperledger/fabric-rsa/bccsp"
	"github.com/hyperledger/fabric-rsa/bccsp/largeint"
	"github.com/hyperledger/fabric-rsa/bccsp/rsa"
	"github.com/pkg/errors"
)

// skiOf hashes the modulus, so both halves of a pair share an SKI.
func skiOf(n largeint.Int) []byte {
	hash := sha256.New()
	hash.Write(n.Bytes())
	return hash.Sum(nil)
}

type rsaPrivateKey struct {
	privKey *rsa.PrivateKey

	// resampled is the number of public exponents drawn after 65537 was
	// rejected while generating privKey.
	resampled int
}

// Bytes converts this key to its byte representation,
// if this operation is allowed.
func (k *rsaPrivateKey) Bytes() ([]byte, error) {
	return nil, errors.New("Not supported.")
}

// SKI returns the subject key identifier of this key.
func (k *rsaPrivateKey) SKI() []byte {
	if k.privKey == nil {
		return nil
	}
	return skiOf(k.privKey.N)
}

// Symmetric returns true if this key is a symmetric key,
// false if this key is asymmetric
func (k *rsaPrivateKey) Symmetric() bool {
	return false
}

// Private returns true if this key is a private key,
// false otherwise.
func (k *rsaPrivateKey) Private() bool {
	return true
}

// PublicKey returns the corresponding public key part of an asymmetric public/private key pair.
// Keys loaded from a private key artifact do not carry the public exponent.
func (k *rsaPrivateKey) PublicKey() (bccsp.Key, error) {
	if k.privKey == nil || k.privKey.E.IsZero() {
		return nil, errors.New("public exponent unknown for this private key")
	}
	return &rsaPublicKey{k.privKey.Public()}, nil
}

// ExponentResamples reports how many public exponents were drawn after the
// default one was rejected when this key was generated.
func (k *rsaPrivateKey) ExponentResamples() int {
	return k.resampled
}

// Parameters returns a copy of the key material.
func (k *rsaPrivateKey) Parameters() rsa.PrivateKey {
	if k.privKey == nil {
		return rsa.PrivateKey{}
	}
	return *k.privKey
}

type rsaPublicKey struct{ pubKey *rsa.PublicKey }

// Bytes converts this key to its byte representation,
// if this operation is allowed.
func (k *rsaPublicKey) Bytes() ([]byte, error) {
	if k.pubKey == nil {
		return nil, errors.New("Failed marshalling key. Key is nil.")
	}
	raw, err := publicKeyToDER(k.pubKey)
	if err != nil {
		return nil, errors.Wrap(err, "Failed marshalling key")
	}
	return raw, nil
}

// SKI returns the subject key identifier of this key.
func (k *rsaPublicKey) SKI() []byte {
	if k.pubKey == nil {
		return nil
	}
	return skiOf(k.pubKey.N)
}

// Symmetric returns true if this key is a symmetric key,
// false if this key is asymmetric
func (k *rsaPublicKey) Symmetric() bool {
	return false
}

// Private returns true if this key is a private key,
// false otherwise.
func (k *rsaPublicKey) Private() bool {
	return false
}

// PublicKey returns the corresponding public key part of an asymmetric public/private key pair.
func (k *rsaPublicKey) PublicKey() (bccsp.Key, error) {
	return k, nil
}
