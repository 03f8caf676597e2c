/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package rsatool

import (
	"strings"
	"testing"

	"github.com/hyperledger/fabric-rsa/bccsp"
	"github.com/hyperledger/fabric-rsa/bccsp/largeint"
	"github.com/hyperledger/fabric-rsa/bccsp/mocks"
	"github.com/hyperledger/fabric-rsa/bccsp/rsa"
	"github.com/hyperledger/fabric-rsa/bccsp/sw"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyInfo(t *testing.T) {
	tool, _ := newTestTool(t)

	priv, err := rsa.NewKeyFromPrimes(largeint.NewInt(61), largeint.NewInt(53), largeint.NewInt(17))
	require.NoError(t, err)
	k, err := tool.CSP.KeyImport(priv, &bccsp.RSAPrivateKeyImportOpts{Temporary: true})
	require.NoError(t, err)

	info, err := KeyInfo(k)
	require.NoError(t, err)
	assert.Equal(t, "P: 61\nQ: 53\nN: 3233\nPHI_N: 3120\nE: 17\nD: 2753\n", info)
}

func TestKeyInfoGenerated(t *testing.T) {
	tool, _ := newTestTool(t)
	k, err := tool.GenerateKeys()
	require.NoError(t, err)

	info, err := KeyInfo(k)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(info, "\n"), "\n")
	require.Len(t, lines, 6)
	for i, name := range []string{"P", "Q", "N", "PHI_N", "E", "D"} {
		assert.True(t, strings.HasPrefix(lines[i], name+": "), lines[i])
	}
}

func TestKeyInfoUnsupportedKeys(t *testing.T) {
	_, err := KeyInfo(&mocks.MockKey{})
	assert.EqualError(t, err, "key of type *mocks.MockKey does not expose its parameters")

	tool, _ := newTestTool(t)
	_, err = tool.GenerateKeys()
	require.NoError(t, err)
	stored, err := readKeyArtifact(tool.Config.Keystore, sw.PrivateKeyFile)
	require.NoError(t, err)
	k, err := tool.CSP.KeyImport(stored, &bccsp.RSAPrivateKeyImportOpts{Temporary: true})
	require.NoError(t, err)
	_, err = KeyInfo(k)
	assert.EqualError(t, err, "key parameters are only known for generated keys")
}
