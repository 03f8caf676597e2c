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

// Package mocks holds hand written stand-ins for the bccsp interfaces.
package mocks

import (
	"bytes"
	"crypto/sha256"
	"errors"
	"hash"
	"reflect"

	"github.com/hyperledger/fabric-rsa/bccsp"
)

// MockBCCSP returns canned values. Sign fails unless its arguments match
// the Sign*Arg fields; Verify succeeds when VerifyValue is set, fails with
// VerifyErr when that is set, and otherwise compares against ExpectedSig.
type MockBCCSP struct {
	KeyGenValue bccsp.Key
	KeyGenErr   error

	KeyImportValue bccsp.Key
	KeyImportErr   error

	GetKeyValue bccsp.Key
	GetKeyErr   error

	HashVal []byte
	HashErr error

	SignArgKey    bccsp.Key
	SignDigestArg []byte
	SignOptsArg   bccsp.SignerOpts
	SignValue     []byte
	SignErr       error

	VerifyValue bool
	VerifyErr   error
	ExpectedSig []byte
}

func (m *MockBCCSP) KeyGen(bccsp.KeyGenOpts) (bccsp.Key, error) { return m.KeyGenValue, m.KeyGenErr }

func (m *MockBCCSP) KeyImport(interface{}, bccsp.KeyImportOpts) (bccsp.Key, error) {
	return m.KeyImportValue, m.KeyImportErr
}

func (m *MockBCCSP) GetKey([]byte) (bccsp.Key, error) { return m.GetKeyValue, m.GetKeyErr }

func (m *MockBCCSP) Hash([]byte, bccsp.HashOpts) ([]byte, error) { return m.HashVal, m.HashErr }

func (m *MockBCCSP) GetHash(bccsp.HashOpts) (hash.Hash, error) { return sha256.New(), m.HashErr }

func (m *MockBCCSP) Sign(k bccsp.Key, digest []byte, opts bccsp.SignerOpts) ([]byte, error) {
	switch {
	case !reflect.DeepEqual(m.SignArgKey, k):
		return nil, errors.New("invalid key")
	case !reflect.DeepEqual(m.SignDigestArg, digest):
		return nil, errors.New("invalid digest")
	case !reflect.DeepEqual(m.SignOptsArg, opts):
		return nil, errors.New("invalid opts")
	}
	return m.SignValue, m.SignErr
}

func (m *MockBCCSP) Verify(k bccsp.Key, signature, digest []byte, opts bccsp.SignerOpts) (bool, error) {
	if m.VerifyValue {
		return true, nil
	}
	if m.VerifyErr != nil {
		return false, m.VerifyErr
	}
	return bytes.Equal(m.ExpectedSig, signature), nil
}

// MockKey is a bccsp.Key with fixed answers.
type MockKey struct {
	SKIValue   []byte
	BytesValue []byte
	BytesErr   error
	Symm       bool
	Pvt        bool
	PK         bccsp.Key
	PKErr      error
}

func (m *MockKey) Bytes() ([]byte, error)        { return m.BytesValue, m.BytesErr }
func (m *MockKey) SKI() []byte                   { return m.SKIValue }
func (m *MockKey) Symmetric() bool               { return m.Symm }
func (m *MockKey) Private() bool                 { return m.Pvt }
func (m *MockKey) PublicKey() (bccsp.Key, error) { return m.PK, m.PKErr }

// KeyGenOpts is a KeyGenOpts type no provider registers a generator for.
type KeyGenOpts struct {
	EphemeralValue bool
}

func (*KeyGenOpts) Algorithm() string  { return "Mock KeyGenOpts" }
func (o *KeyGenOpts) Ephemeral() bool { return o.EphemeralValue }

// KeyImportOpts is a KeyImportOpts type no provider registers an importer for.
type KeyImportOpts struct{}

func (*KeyImportOpts) Algorithm() string { return "Mock KeyImportOpts" }
func (*KeyImportOpts) Ephemeral() bool   { return true }

// HashOpts is a HashOpts type no provider registers a hasher for.
type HashOpts struct{}

func (HashOpts) Algorithm() string { return "Mock HashOpts" }

// KeyStore is a bccsp.KeyStore with fixed answers.
type KeyStore struct {
	ReadOnlyValue bool
	GetKeyValue   bccsp.Key
	GetKeyErr     error
	StoreKeyErr   error
}

func (ks *KeyStore) ReadOnly() bool                   { return ks.ReadOnlyValue }
func (ks *KeyStore) GetKey([]byte) (bccsp.Key, error) { return ks.GetKeyValue, ks.GetKeyErr }
func (ks *KeyStore) StoreKey(bccsp.Key) error         { return ks.StoreKeyErr }
