/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package sw

import (
	"encoding/hex"
	"sync"

	"github.com/hyperledger/fabric-rsa/bccsp"
	"github.com/pkg/errors"
)

// NewInMemoryKeyStore instantiates an ephemeral in-memory keystore
func NewInMemoryKeyStore() bccsp.KeyStore {
	eks := &inmemoryKeyStore{}
	eks.keys = make(map[string]bccsp.Key)
	return eks
}

// inmemoryKeyStore keeps keys by SKI. The two halves of a pair share an
// SKI, so each is filed under its own suffix.
type inmemoryKeyStore struct {
	// keys maps the hex-encoded SKI plus a suffix to keys
	keys map[string]bccsp.Key
	// Lock to allow concurrent access
	m sync.RWMutex
}

// ReadOnly is always false
func (ks *inmemoryKeyStore) ReadOnly() bool {
	return false
}

// GetKey returns the private key for ski if one is stored, and the public
// key otherwise.
func (ks *inmemoryKeyStore) GetKey(ski []byte) (bccsp.Key, error) {
	if len(ski) == 0 {
		return nil, errors.New("ski is nil or empty")
	}

	alias := hex.EncodeToString(ski)

	ks.m.RLock()
	defer ks.m.RUnlock()
	if key, found := ks.keys[alias+"_sk"]; found {
		return key, nil
	}
	if key, found := ks.keys[alias+"_pk"]; found {
		return key, nil
	}
	return nil, errors.Errorf("no key found for ski %x", ski)
}

// StoreKey stores a key in the cache
func (ks *inmemoryKeyStore) StoreKey(key bccsp.Key) error {
	if key == nil {
		return errors.New("key is nil")
	}

	alias := hex.EncodeToString(key.SKI())
	if key.Private() {
		alias += "_sk"
	} else {
		alias += "_pk"
	}

	ks.m.Lock()
	defer ks.m.Unlock()

	if _, found := ks.keys[alias]; found {
		return errors.Errorf("ski %x already exists in the keystore", key.SKI())
	}
	ks.keys[alias] = key

	return nil
}

// NewDummyKeyStore instantiate a dummy key store
// that neither loads nor stores keys
func NewDummyKeyStore() bccsp.KeyStore {
	return &dummyKeyStore{}
}

// dummyKeyStore is a read-only KeyStore that neither loads nor stores keys.
type dummyKeyStore struct{}

func (ks *dummyKeyStore) ReadOnly() bool {
	return true
}

func (ks *dummyKeyStore) GetKey(ski []byte) (bccsp.Key, error) {
	return nil, errors.New("Key not found. This is a dummy KeyStore")
}

func (ks *dummyKeyStore) StoreKey(k bccsp.Key) error {
	return errors.New("Cannot store key. This is a dummy read-only KeyStore")
}
