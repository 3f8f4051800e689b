package types

import "errors"

// Config holds data locations and runtime options for a bridge.
// Struct tags cover JSON output, the YAML config file, and viper decoding.
type Config struct {
	// ResourceDir overrides the bundled data. Empty uses the embedded files.
	ResourceDir       string     `json:"resource_dir" yaml:"resource_dir" mapstructure:"resource_dir"`
	DisabledProtocols []Protocol `json:"disabled_protocols" yaml:"disabled_protocols" mapstructure:"disabled_protocols"`
	LogLevel          string     `json:"log_level" yaml:"log_level" mapstructure:"log_level"`
	LogFormat         string     `json:"log_format" yaml:"log_format" mapstructure:"log_format"`
}

// Log formats.
const (
	LogFormatConsole = "console"
	LogFormatJSON    = "json"
)

// Config validation errors.
var (
	ErrLogLevelUnknown  = errors.New("unknown log level")
	ErrLogFormatUnknown = errors.New("unknown log format")
	ErrProtocolInvalid  = errors.New("protocol must be positive")
)

var knownLogLevels = map[string]bool{
	"":      true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

var knownLogFormats = map[string]bool{
	"":               true,
	LogFormatConsole: true,
	LogFormatJSON:    true,
}

// DefaultConfig returns a Config that uses the embedded data with every
// protocol enabled.
func DefaultConfig() Config {
	return Config{
		LogLevel:  "info",
		LogFormat: LogFormatConsole,
	}
}

// Validate checks that the Config is well-formed. It returns a sentinel error
// from this package on failure.
func (c Config) Validate() error {
	if !knownLogLevels[c.LogLevel] {
		return ErrLogLevelUnknown
	}
	if !knownLogFormats[c.LogFormat] {
		return ErrLogFormatUnknown
	}
	for _, p := range c.DisabledProtocols {
		if p <= 0 {
			return ErrProtocolInvalid
		}
	}
	return nil
}
