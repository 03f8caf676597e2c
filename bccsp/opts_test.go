/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package bccsp

import (
	"crypto"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetHashOpt(t *testing.T) {
	for _, ho := range []string{SHA256, SHA384, SHA3_256, SHA3_384} {
		opt, err := GetHashOpt(ho)
		assert.NoError(t, err)
		assert.Equal(t, opt.Algorithm(), ho)
	}
	_, err := GetHashOpt("foo")
	assert.EqualError(t, err, "hash function not recognized [foo]")
	assert.Equal(t, SHA2, (&SHAOpts{}).Algorithm())
}

func TestGetCryptoHash(t *testing.T) {
	for name, want := range map[string]crypto.Hash{
		SHA256:   crypto.SHA256,
		SHA384:   crypto.SHA384,
		SHA3_256: crypto.SHA3_256,
		SHA3_384: crypto.SHA3_384,
	} {
		h, err := GetCryptoHash(name)
		assert.NoError(t, err)
		assert.Equal(t, want, h, name)
	}
	_, err := GetCryptoHash(SHA2)
	assert.EqualError(t, err, "hash function not recognized [SHA2]")
}

func TestRSAOpts(t *testing.T) {
	kg := &RSAKeyGenOpts{Temporary: true}
	assert.Equal(t, RSA, kg.Algorithm())
	assert.True(t, kg.Ephemeral())

	pub := &RSAPublicKeyImportOpts{}
	assert.Equal(t, RSAPublicKeyImport, pub.Algorithm())
	assert.False(t, pub.Ephemeral())

	priv := &RSAPrivateKeyImportOpts{Temporary: true}
	assert.Equal(t, RSAPrivateKeyImport, priv.Algorithm())
	assert.True(t, priv.Ephemeral())

	so := &RSASignerOpts{Hash: crypto.SHA256}
	assert.Equal(t, crypto.SHA256, so.HashFunc())
}
