/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package sw

import (
	"encoding/asn1"
	"encoding/pem"
	"testing"

	"github.com/hyperledger/fabric-rsa/bccsp/largeint"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func errorsIs(err, target error) bool {
	return errors.Is(err, target)
}

func TestKeyPEMRoundTrip(t *testing.T) {
	t.Parallel()

	k := generatedKey(t)

	raw, err := publicKeyToPEM(k.Public())
	require.NoError(t, err)
	block, _ := pem.Decode(raw)
	require.NotNil(t, block)
	assert.Equal(t, "RSA TEXTBOOK PUBLIC KEY", block.Type)

	pub, err := pemToPublicKey(raw)
	require.NoError(t, err)
	assert.True(t, pub.N.Equal(k.N))
	assert.True(t, pub.E.Equal(k.E))

	raw, err = privateKeyToPEM(k)
	require.NoError(t, err)
	block, _ = pem.Decode(raw)
	require.NotNil(t, block)
	assert.Equal(t, "RSA TEXTBOOK PRIVATE KEY", block.Type)

	priv, err := pemToPrivateKey(raw)
	require.NoError(t, err)
	assert.True(t, priv.N.Equal(k.N))
	assert.True(t, priv.D.Equal(k.D))
	assert.True(t, priv.E.IsZero(), "the private artifact does not carry e")
}

func TestKeyPEMNilKeys(t *testing.T) {
	t.Parallel()

	_, err := publicKeyToPEM(nil)
	assert.EqualError(t, err, "invalid rsa public key. It must be different from nil")
	_, err = privateKeyToPEM(nil)
	assert.EqualError(t, err, "invalid rsa private key. It must be different from nil")
}

func TestDecodeKeyPEMErrors(t *testing.T) {
	t.Parallel()

	encode := func(blockType string, key interface{}) []byte {
		der, err := asn1.Marshal(key)
		require.NoError(t, err)
		return pem.EncodeToMemory(&pem.Block{Type: blockType, Bytes: der})
	}

	tests := []struct {
		name string
		raw  []byte
		err  string
	}{
		{name: "empty", raw: nil, err: "invalid PEM. It must be different from nil"},
		{name: "not pem", raw: []byte("nope"), err: "failed decoding PEM. Block must be different from nil [6e 6f 70 65]"},
		{
			name: "wrong type",
			raw:  encode(privateKeyPEMType, rsaKeyASN{N: []byte{0x0C, 0xA1}, Exponent: []byte{0x11}}),
			err:  "unexpected PEM block type [RSA TEXTBOOK PRIVATE KEY], expected [RSA TEXTBOOK PUBLIC KEY]",
		},
		{
			name: "garbage der",
			raw:  pem.EncodeToMemory(&pem.Block{Type: publicKeyPEMType, Bytes: []byte{0x01, 0x02}}),
			err:  "failed unmarshalling key",
		},
		{
			name: "empty modulus",
			raw:  encode(publicKeyPEMType, rsaKeyASN{N: []byte{}, Exponent: []byte{0x11}}),
			err:  "invalid modulus",
		},
		{
			name: "empty exponent",
			raw:  encode(publicKeyPEMType, rsaKeyASN{N: []byte{0x0C, 0xA1}, Exponent: []byte{}}),
			err:  "invalid exponent",
		},
		{
			name: "small modulus",
			raw:  encode(publicKeyPEMType, rsaKeyASN{N: []byte{0x01}, Exponent: []byte{0x11}}),
			err:  "invalid modulus 1. It must be greater than one",
		},
		{
			name: "negative exponent",
			raw:  encode(publicKeyPEMType, rsaKeyASN{N: []byte{0x0C, 0xA1}, Exponent: []byte{0xEF}}),
			err:  "invalid exponent -17. It must be positive",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			_, err := pemToPublicKey(tt.raw)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.err)
		})
	}

	_, err := pemToPublicKey(encode(publicKeyPEMType, rsaKeyASN{N: []byte{}, Exponent: []byte{0x11}}))
	assert.True(t, errorsIs(err, largeint.ErrMalformedInput))
}
