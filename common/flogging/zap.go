/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package flogging

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewZapLogger creates a zap logger around core that records the caller
// and attaches a stack trace to entries at error level and above.
func NewZapLogger(core zapcore.Core, options ...zap.Option) *zap.Logger {
	defaults := []zap.Option{
		zap.AddCaller(),
		zap.AddStacktrace(zapcore.ErrorLevel),
	}
	return zap.New(core, append(defaults, options...)...)
}

// NewFabricLogger creates a logger that delegates to the zap.SugaredLogger.
func NewFabricLogger(l *zap.Logger, options ...zap.Option) *FabricLogger {
	options = append(options, zap.AddCallerSkip(1))
	return &FabricLogger{s: l.WithOptions(options...).Sugar()}
}

// A FabricLogger is the logger handed out by MustGetLogger. The methods
// without a suffix join their arguments with spaces; the f methods format
// a template and the w methods add key/value pairs to the entry.
type FabricLogger struct{ s *zap.SugaredLogger }

func (f *FabricLogger) Debug(args ...interface{})                   { f.s.Debug(joinArgs(args)) }
func (f *FabricLogger) Debugf(template string, args ...interface{}) { f.s.Debugf(template, args...) }
func (f *FabricLogger) Debugw(msg string, kvPairs ...interface{})   { f.s.Debugw(msg, kvPairs...) }

func (f *FabricLogger) Info(args ...interface{})                   { f.s.Info(joinArgs(args)) }
func (f *FabricLogger) Infof(template string, args ...interface{}) { f.s.Infof(template, args...) }
func (f *FabricLogger) Infow(msg string, kvPairs ...interface{})   { f.s.Infow(msg, kvPairs...) }

func (f *FabricLogger) Warn(args ...interface{})                   { f.s.Warn(joinArgs(args)) }
func (f *FabricLogger) Warnf(template string, args ...interface{}) { f.s.Warnf(template, args...) }
func (f *FabricLogger) Warnw(msg string, kvPairs ...interface{})   { f.s.Warnw(msg, kvPairs...) }

func (f *FabricLogger) Error(args ...interface{})                   { f.s.Error(joinArgs(args)) }
func (f *FabricLogger) Errorf(template string, args ...interface{}) { f.s.Errorf(template, args...) }
func (f *FabricLogger) Errorw(msg string, kvPairs ...interface{})   { f.s.Errorw(msg, kvPairs...) }

func (f *FabricLogger) Panicf(template string, args ...interface{}) { f.s.Panicf(template, args...) }
func (f *FabricLogger) Fatalf(template string, args ...interface{}) { f.s.Fatalf(template, args...) }

// Named returns a child logger; the name is appended with a dot.
func (f *FabricLogger) Named(name string) *FabricLogger { return &FabricLogger{s: f.s.Named(name)} }

// With returns a logger that adds the key/value pairs to every entry.
func (f *FabricLogger) With(kvPairs ...interface{}) *FabricLogger {
	return &FabricLogger{s: f.s.With(kvPairs...)}
}

// IsEnabledFor reports whether entries at level would be written.
func (f *FabricLogger) IsEnabledFor(level zapcore.Level) bool {
	return f.s.Desugar().Core().Enabled(level)
}

func (f *FabricLogger) Sync() error     { return f.s.Sync() }
func (f *FabricLogger) Zap() *zap.Logger { return f.s.Desugar() }

func joinArgs(args []interface{}) string {
	return strings.TrimSuffix(fmt.Sprintln(args...), "\n")
}
