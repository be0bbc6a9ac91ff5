package log

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	errUnhandledFormat  = errors.New("unhandled log format")
	errSubLoggerUnknown = errors.New("sub logger not found")
)

// GenDefaultSettings return struct with known sane/working logger settings
func GenDefaultSettings() Config {
	return Config{
		Level:  defaultLevel,
		Format: defaultFormat,
		Output: defaultOutput,
	}
}

func newEncoder(format string) (zapcore.Encoder, error) {
	switch strings.ToLower(format) {
	case "", "console":
		ec := zap.NewDevelopmentEncoderConfig()
		ec.EncodeTime = zapcore.ISO8601TimeEncoder
		return zapcore.NewConsoleEncoder(ec), nil
	case "json":
		ec := zap.NewProductionEncoderConfig()
		ec.EncodeTime = zapcore.ISO8601TimeEncoder
		return zapcore.NewJSONEncoder(ec), nil
	default:
		return nil, fmt.Errorf("%w: %s", errUnhandledFormat, format)
	}
}

func parseLevel(level string) (zapcore.Level, error) {
	if level == "" {
		level = defaultLevel
	}
	return zapcore.ParseLevel(strings.ToLower(level))
}

// SetupGlobalLogger builds the backend from the supplied config and points
// every registered sub logger at it
func SetupGlobalLogger(c Config) error {
	lvl, err := parseLevel(c.Level)
	if err != nil {
		return err
	}
	enc, err := newEncoder(c.Format)
	if err != nil {
		return err
	}
	output := c.Output
	if output == "" {
		output = defaultOutput
	}
	ws, closeOutput, err := zap.Open(output)
	if err != nil {
		return err
	}

	overrides := make(map[string]zapcore.Level, len(c.SubLoggers))
	for i := range c.SubLoggers {
		name := strings.ToUpper(c.SubLoggers[i].Name)
		if _, ok := subLoggers[name]; !ok {
			closeOutput()
			return fmt.Errorf("%w: %s", errSubLoggerUnknown, c.SubLoggers[i].Name)
		}
		l, err := parseLevel(c.SubLoggers[i].Level)
		if err != nil {
			closeOutput()
			return err
		}
		overrides[name] = l
	}

	mu.Lock()
	defer mu.Unlock()
	closer()
	backend = zap.New(zapcore.NewCore(enc, ws, lvl))
	closer = closeOutput
	for name, sl := range subLoggers {
		sl.logger = backend.Named(name)
		if l, ok := overrides[name]; ok && l > lvl {
			sl.logger = sl.logger.WithOptions(zap.IncreaseLevel(l))
		}
	}
	return nil
}

// Sync flushes any buffered log entries
func Sync() error {
	mu.RLock()
	defer mu.RUnlock()
	return backend.Sync()
}
