package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/itembridge/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	// Config keys.
	cfgKeyResourceDir       = "resource_dir"
	cfgKeyDisabledProtocols = "disabled_protocols"
	cfgKeyLogLevel          = "log_level"
	cfgKeyLogFormat         = "log_format"

	// Command output goes to stdout; only warnings reach stderr by default.
	defaultLogLevel = "warn"
)

// configFile holds the structure written to config.yaml.
type configFile struct {
	ResourceDir       string           `yaml:"resource_dir,omitempty"`
	DisabledProtocols []types.Protocol `yaml:"disabled_protocols"`
	LogLevel          string           `yaml:"log_level"`
	LogFormat         string           `yaml:"log_format"`
}

// loadConfig reads config.yaml from configDir using Viper. A missing
// config.yaml is not an error; the defaults apply.
func loadConfig(configDir string) (types.Config, error) {
	v := viper.New()
	v.SetDefault(cfgKeyResourceDir, "")
	v.SetDefault(cfgKeyDisabledProtocols, []types.Protocol{})
	v.SetDefault(cfgKeyLogLevel, defaultLogLevel)
	v.SetDefault(cfgKeyLogFormat, types.LogFormatConsole)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return types.Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg types.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return types.Config{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

// writeConfigIfMissing creates config.yaml with default values if the file
// does not exist. It reports whether the file was written.
func writeConfigIfMissing(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("stat config file: %w", err)
	}

	cfg := configFile{
		DisabledProtocols: []types.Protocol{},
		LogLevel:          defaultLogLevel,
		LogFormat:         types.LogFormatConsole,
	}

	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return false, fmt.Errorf("marshal config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, fmt.Errorf("create config directory: %w", err)
	}
	return true, os.WriteFile(path, data, 0o644)
}
