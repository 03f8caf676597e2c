/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package rsa

import (
	"github.com/hyperledger/fabric-rsa/bccsp/largeint"
	"github.com/pkg/errors"
)

// Sign returns hash^d mod n.
//
// The hash is used as is; callers are expected to pass a nonnegative value
// below n, such as a SHA-256 digest, or Verify will not accept the result.
func Sign(priv *PrivateKey, hash largeint.Int) (largeint.Int, error) {
	if priv == nil {
		return largeint.Int{}, errors.New("invalid private key. It must be different from nil")
	}
	if priv.N.Cmp(largeint.One()) <= 0 {
		return largeint.Int{}, errors.Errorf("invalid modulus %s", priv.N)
	}
	if !priv.D.IsPositive() {
		return largeint.Int{}, errors.New("invalid private exponent. It must be positive")
	}
	return hash.ModExp(priv.D, priv.N), nil
}

// Verify reports whether sig^e mod n equals hash. A mismatch, or a public
// key that cannot verify anything, yields false.
func Verify(pub *PublicKey, hash, sig largeint.Int) bool {
	if pub == nil || pub.N.Cmp(largeint.One()) <= 0 || !pub.E.IsPositive() {
		return false
	}
	return sig.ModExp(pub.E, pub.N).Equal(hash)
}
