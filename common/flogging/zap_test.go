/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package flogging_test

import (
	"bytes"
	"testing"

	"github.com/hyperledger/fabric-rsa/common/flogging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestFabricLoggerJoinsArgs(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	fl := flogging.NewFabricLogger(zap.New(core))

	fl.Info("modulus", 3233, "has", 12, "bits")
	fl.Debug("100%", "done")
	fl.Errorf("failed %s", "here")

	require.Equal(t, 3, logs.Len())
	entries := logs.AllUntimed()
	assert.Equal(t, "modulus 3233 has 12 bits", entries[0].Message)
	assert.Equal(t, "100% done", entries[1].Message)
	assert.Equal(t, "failed here", entries[2].Message)
	assert.Equal(t, zapcore.ErrorLevel, entries[2].Level)
}

func TestFabricLoggerIsEnabledFor(t *testing.T) {
	core, _ := observer.New(zap.InfoLevel)
	fl := flogging.NewFabricLogger(zap.New(core))
	assert.False(t, fl.IsEnabledFor(zapcore.DebugLevel))
	assert.True(t, fl.IsEnabledFor(zapcore.WarnLevel))
}

func TestFabricLoggerNamedAndWarnw(t *testing.T) {
	buf := &bytes.Buffer{}
	logging, err := flogging.New(flogging.Config{Format: "json", Writer: buf})
	require.NoError(t, err)

	logger := logging.Logger("bccsp").Named("sw")
	logger.Warnw("ignoring public key", "path", "/keys")
	assert.Contains(t, buf.String(), `"name":"bccsp.sw"`)
	assert.Contains(t, buf.String(), `"path":"/keys"`)
	assert.Equal(t, logger.Zap().Core().Enabled(zapcore.InfoLevel), logger.IsEnabledFor(zapcore.InfoLevel))
}
