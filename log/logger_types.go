package log

import (
	"sync"

	"go.uber.org/zap"
)

const (
	defaultLevel  = "info"
	defaultFormat = "console"
	defaultOutput = "stdout"
)

var (
	// mu guards the backend logger, sub logger handles and the log hook
	mu = &sync.RWMutex{}

	subLoggers = map[string]*SubLogger{}

	backend = zap.NewNop()
	closer  = func() {}
)

// Config holds the logger settings loaded from the client config
type Config struct {
	// Level is one of debug, info, warn or error
	Level string `json:"level" mapstructure:"level"`
	// Format is either console or json
	Format string `json:"format" mapstructure:"format"`
	// Output is stdout, stderr or a file path
	Output     string            `json:"output" mapstructure:"output"`
	SubLoggers []SubLoggerConfig `json:"subloggers,omitempty" mapstructure:"subloggers"`
}

// SubLoggerConfig raises the minimum level of a single sub logger
type SubLoggerConfig struct {
	Name  string `json:"name" mapstructure:"name"`
	Level string `json:"level" mapstructure:"level"`
}

// SubLogger is a named section of the log output
type SubLogger struct {
	name   string
	logger *zap.Logger
}
