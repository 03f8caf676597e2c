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
	"github.com/hyperledger/fabric-rsa/bccsp"
	"github.com/hyperledger/fabric-rsa/bccsp/largeint"
	"github.com/hyperledger/fabric-rsa/bccsp/rsa"
	"github.com/pkg/errors"
)

type rsaSigner struct{}

// Sign reads digest as an unsigned big-endian integer and returns the raw
// bytes of digest^d mod n. opts may be nil; there is no padding to select.
func (s *rsaSigner) Sign(k bccsp.Key, digest []byte, opts bccsp.SignerOpts) ([]byte, error) {
	h, err := largeint.FromUnsignedBytes(digest)
	if err != nil {
		return nil, errors.WithMessage(err, "invalid digest")
	}

	sig, err := rsa.Sign(k.(*rsaPrivateKey).privKey, h)
	if err != nil {
		return nil, err
	}
	return sig.Bytes(), nil
}

type rsaPrivateKeyVerifier struct{}

func (v *rsaPrivateKeyVerifier) Verify(k bccsp.Key, signature, digest []byte, opts bccsp.SignerOpts) (bool, error) {
	pk, err := k.PublicKey()
	if err != nil {
		return false, errors.WithMessage(err, "cannot verify with this private key")
	}
	return verifyRSA(pk.(*rsaPublicKey).pubKey, signature, digest)
}

type rsaPublicKeyKeyVerifier struct{}

func (v *rsaPublicKeyKeyVerifier) Verify(k bccsp.Key, signature, digest []byte, opts bccsp.SignerOpts) (bool, error) {
	return verifyRSA(k.(*rsaPublicKey).pubKey, signature, digest)
}

// verifyRSA fails only on inputs that cannot be read as integers. A
// signature that does not match yields false with a nil error.
func verifyRSA(pub *rsa.PublicKey, signature, digest []byte) (bool, error) {
	sig, err := largeint.FromBytes(signature)
	if err != nil {
		return false, errors.WithMessage(err, "invalid signature")
	}
	h, err := largeint.FromUnsignedBytes(digest)
	if err != nil {
		return false, errors.WithMessage(err, "invalid digest")
	}
	return rsa.Verify(pub, h, sig), nil
}
