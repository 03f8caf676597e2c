/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package flogging

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/pkg/errors"
	zaplogfmt "github.com/sykesm/zap-logfmt"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// SpecEnvVar names the environment variable consulted when a Config carries
// no LogSpec.
const SpecEnvVar = "RSATOOL_LOGGING_SPEC"

// Config is used to provide dependencies to a Logging instance.
type Config struct {
	// Format is the log record format. The strings "json" and "logfmt"
	// select the matching structured encoders; "console" or the empty
	// string select the human readable console encoder.
	Format string

	// LogSpec determines the log levels that are enabled for the logging system. The
	// spec must be in a format that can be processed by ActivateSpec.
	//
	// If LogSpec is not provided, loggers will be enabled at the INFO level.
	LogSpec string

	// Writer is the sink for encoded and formatted log records.
	//
	// If a Writer is not provided, os.Stderr will be used as the log sink.
	Writer io.Writer
}

// Logging maintains the state associated with the logging system. Loggers
// created from it consult its levels, encoding and writer on every entry, so
// a later Apply also reconfigures loggers obtained earlier.
type Logging struct {
	*LoggerLevels

	mutex         sync.RWMutex
	encoding      Encoding
	encoderConfig zapcore.EncoderConfig
	consoleConfig zapcore.EncoderConfig
	writer        zapcore.WriteSyncer
}

// New creates a new logging system and initializes it with the provided
// configuration.
func New(c Config) (*Logging, error) {
	s := &Logging{
		LoggerLevels:  &LoggerLevels{defaultLevel: defaultLevel},
		encoderConfig: jsonEncoderConfig(),
		consoleConfig: consoleEncoderConfig(),
	}
	if err := s.Apply(c); err != nil {
		return nil, err
	}
	return s, nil
}

func jsonEncoderConfig() zapcore.EncoderConfig {
	ec := zap.NewProductionEncoderConfig()
	ec.NameKey = "name"
	return ec
}

func consoleEncoderConfig() zapcore.EncoderConfig {
	ec := zap.NewDevelopmentEncoderConfig()
	ec.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05.000 MST")
	ec.EncodeLevel = zapcore.CapitalLevelEncoder
	ec.NameKey = "name"
	return ec
}

// Apply applies the provided configuration to the logging system. An empty
// LogSpec falls back to SpecEnvVar and then to the default level; a nil
// Writer means os.Stderr.
func (s *Logging) Apply(c Config) error {
	if err := s.SetFormat(c.Format); err != nil {
		return err
	}

	spec := c.LogSpec
	if spec == "" {
		spec = os.Getenv(SpecEnvVar)
	}
	if spec == "" {
		spec = defaultLevel.String()
	}
	if err := s.LoggerLevels.ActivateSpec(spec); err != nil {
		return err
	}

	w := c.Writer
	if w == nil {
		w = os.Stderr
	}
	s.SetWriter(w)
	return nil
}

var formats = map[string]Encoding{
	"":        CONSOLE,
	"console": CONSOLE,
	"json":    JSON,
	"logfmt":  LOGFMT,
}

// SetFormat updates how log records are encoded. Log entries created after
// this method has completed will use the new format.
func (s *Logging) SetFormat(format string) error {
	e, ok := formats[format]
	if !ok {
		return errors.Errorf("unsupported log format '%s'", format)
	}
	s.mutex.Lock()
	s.encoding = e
	s.mutex.Unlock()
	return nil
}

// SetWriter controls which writer formatted log records are written to.
// Writers other than an *os.File must be safe for concurrent use.
func (s *Logging) SetWriter(w io.Writer) {
	var ws zapcore.WriteSyncer
	switch t := w.(type) {
	case *os.File:
		ws = zapcore.Lock(t)
	case zapcore.WriteSyncer:
		ws = t
	default:
		ws = zapcore.AddSync(w)
	}

	s.mutex.Lock()
	s.writer = ws
	s.mutex.Unlock()
}

func (s *Logging) currentWriter() zapcore.WriteSyncer {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.writer
}

// Write hands encoded records from the Core to the current writer.
func (s *Logging) Write(b []byte) (int, error) { return s.currentWriter().Write(b) }

// Sync flushes the current writer.
func (s *Logging) Sync() error { return s.currentWriter().Sync() }

// Encoding satisfies the EncodingSelector interface. It determines which
// encoder the Core uses when log records are written.
func (s *Logging) Encoding() Encoding {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.encoding
}

// ZapLogger instantiates a new zap.Logger with the specified name. The name is
// used to determine which log levels are enabled.
func (s *Logging) ZapLogger(name string) *zap.Logger {
	if !isValidLoggerName(name) {
		panic(fmt.Sprintf("invalid logger name: %s", name))
	}

	s.mutex.RLock()
	encoders := map[Encoding]zapcore.Encoder{
		CONSOLE: zapcore.NewConsoleEncoder(s.consoleConfig),
		JSON:    zapcore.NewJSONEncoder(s.encoderConfig),
		LOGFMT:  zaplogfmt.NewEncoder(s.encoderConfig),
	}
	s.mutex.RUnlock()

	core := &Core{
		LevelEnabler: s.LoggerLevels,
		Levels:       s.LoggerLevels,
		Encoders:     encoders,
		Selector:     s,
		Output:       s,
	}
	return NewZapLogger(core).Named(name)
}

// Logger instantiates a new FabricLogger with the specified name.
func (s *Logging) Logger(name string) *FabricLogger {
	return NewFabricLogger(s.ZapLogger(name))
}
