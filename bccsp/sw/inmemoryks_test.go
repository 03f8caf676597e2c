/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package sw

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInvalidStore(t *testing.T) {
	t.Parallel()

	ks := NewInMemoryKeyStore()

	err := ks.StoreKey(nil)
	assert.EqualError(t, err, "key is nil")
}

func TestInvalidLoad(t *testing.T) {
	t.Parallel()

	ks := NewInMemoryKeyStore()

	_, err := ks.GetKey(nil)
	assert.EqualError(t, err, "ski is nil or empty")
}

func TestNoKeyFound(t *testing.T) {
	t.Parallel()

	ks := NewInMemoryKeyStore()

	ski := []byte("foo")
	_, err := ks.GetKey(ski)
	assert.EqualError(t, err, fmt.Sprintf("no key found for ski %x", ski))
}

func TestStoreLoad(t *testing.T) {
	t.Parallel()

	ks := NewInMemoryKeyStore()

	cspKey := &rsaPrivateKey{privKey: toyKey(t)}
	pubKey, err := cspKey.PublicKey()
	assert.NoError(t, err)

	// the public key alone is found by its SKI
	err = ks.StoreKey(pubKey)
	assert.NoError(t, err)
	key, err := ks.GetKey(pubKey.SKI())
	assert.NoError(t, err)
	assert.Equal(t, pubKey, key)

	// once the private half is stored it takes precedence
	err = ks.StoreKey(cspKey)
	assert.NoError(t, err)
	key, err = ks.GetKey(cspKey.SKI())
	assert.NoError(t, err)
	assert.Equal(t, cspKey, key)
}

func TestReadOnly(t *testing.T) {
	t.Parallel()
	ks := NewInMemoryKeyStore()
	readonly := ks.ReadOnly()
	assert.Equal(t, false, readonly)
}

func TestStoreExisting(t *testing.T) {
	t.Parallel()

	ks := NewInMemoryKeyStore()

	cspKey := &rsaPrivateKey{privKey: toyKey(t)}

	err := ks.StoreKey(cspKey)
	assert.NoError(t, err)

	err = ks.StoreKey(cspKey)
	assert.EqualError(t, err, fmt.Sprintf("ski %x already exists in the keystore", cspKey.SKI()))
}

func TestDummyKeyStore(t *testing.T) {
	t.Parallel()

	ks := NewDummyKeyStore()
	assert.True(t, ks.ReadOnly())

	_, err := ks.GetKey([]byte("foo"))
	assert.EqualError(t, err, "Key not found. This is a dummy KeyStore")

	err = ks.StoreKey(&rsaPrivateKey{privKey: toyKey(t)})
	assert.EqualError(t, err, "Cannot store key. This is a dummy read-only KeyStore")
}
