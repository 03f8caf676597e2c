/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package flogging_test

import (
	"testing"

	"github.com/hyperledger/fabric-rsa/common/flogging"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestNameToLevel(t *testing.T) {
	tests := []struct {
		names []string
		level zapcore.Level
	}{
		{names: []string{"PAYLOAD", "payload"}, level: flogging.PayloadLevel},
		{names: []string{"DEBUG", "debug"}, level: zapcore.DebugLevel},
		{names: []string{"INFO", "info"}, level: zapcore.InfoLevel},
		{names: []string{"WARNING", "warning", "WARN", "warn"}, level: zapcore.WarnLevel},
		{names: []string{"ERROR", "error"}, level: zapcore.ErrorLevel},
		{names: []string{"FATAL", "fatal"}, level: zapcore.FatalLevel},
		{names: []string{"NOTALEVEL"}, level: zapcore.InfoLevel},
	}
	for _, tc := range tests {
		for _, name := range tc.names {
			t.Run(name, func(t *testing.T) {
				assert.Equal(t, tc.level, flogging.NameToLevel(name))
			})
		}
	}
}

func TestLoggerLevelsActivateSpec(t *testing.T) {
	tests := []struct {
		spec                 string
		expectedLevels       map[string]zapcore.Level
		expectedDefaultLevel zapcore.Level
	}{
		{
			spec:                 "DEBUG",
			expectedLevels:       map[string]zapcore.Level{},
			expectedDefaultLevel: zapcore.DebugLevel,
		},
		{
			spec: "bccsp=debug:rsatool,flogging=warn:error",
			expectedLevels: map[string]zapcore.Level{
				"bccsp":         zapcore.DebugLevel,
				"bccsp.sw":      zapcore.DebugLevel,
				"rsatool":       zapcore.WarnLevel,
				"flogging":      zapcore.WarnLevel,
				"somethingelse": zapcore.ErrorLevel,
			},
			expectedDefaultLevel: zapcore.ErrorLevel,
		},
		{
			spec: "bccsp.=debug:info",
			expectedLevels: map[string]zapcore.Level{
				"bccsp":    zapcore.DebugLevel,
				"bccsp.sw": zapcore.InfoLevel,
			},
			expectedDefaultLevel: zapcore.InfoLevel,
		},
	}

	for _, tc := range tests {
		t.Run(tc.spec, func(t *testing.T) {
			ll := &flogging.LoggerLevels{}

			err := ll.ActivateSpec(tc.spec)
			assert.NoError(t, err)
			assert.Equal(t, tc.expectedDefaultLevel, ll.DefaultLevel())
			for name, lvl := range tc.expectedLevels {
				assert.Equal(t, lvl, ll.Level(name), name)
			}
		})
	}
}

func TestLoggerLevelsActivateSpecErrors(t *testing.T) {
	tests := []struct {
		spec string
		err  string
	}{
		{spec: "=INFO", err: "invalid logging specification '=INFO': no logger specified in segment '=INFO'"},
		{spec: "bccsp=INFO=DEBUG", err: "invalid logging specification 'bccsp=INFO=DEBUG': bad segment 'bccsp=INFO=DEBUG'"},
		{spec: "bogus", err: "invalid logging specification 'bogus': bad segment 'bogus'"},
		{spec: "a.b=info:a=broken", err: "invalid logging specification 'a.b=info:a=broken': bad segment 'a=broken'"},
		{spec: "a*=info", err: "invalid logging specification 'a*=info': bad logger name 'a*'"},
	}
	for _, tc := range tests {
		t.Run(tc.spec, func(t *testing.T) {
			ll := &flogging.LoggerLevels{}
			err := ll.ActivateSpec("fatal:a=warn")
			assert.NoError(t, err)

			err = ll.ActivateSpec(tc.spec)
			assert.EqualError(t, err, tc.err)

			assert.Equal(t, zapcore.FatalLevel, ll.DefaultLevel(), "default should not change")
			assert.Equal(t, zapcore.WarnLevel, ll.Level("a.b"), "log levels should not change")
		})
	}
}

func TestSpec(t *testing.T) {
	ll := &flogging.LoggerLevels{}
	assert.NoError(t, ll.ActivateSpec("b=debug:a=warn:error"))
	assert.Equal(t, "a=warn:b=debug:error", ll.Spec())
	assert.True(t, ll.Enabled(zapcore.DebugLevel))
	assert.False(t, ll.Enabled(flogging.PayloadLevel))
}
