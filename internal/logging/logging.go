// Package logging builds the zap logger used across itembridge.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/mesh-intelligence/itembridge/pkg/types"
)

// New returns a logger for cfg. The json format uses zap's production
// encoder; console uses the development encoder. Output goes to stderr so
// command output on stdout stays machine readable.
func New(cfg types.Config) (*zap.Logger, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	level := zapcore.InfoLevel
	if cfg.LogLevel != "" {
		l, err := zapcore.ParseLevel(cfg.LogLevel)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", types.ErrLogLevelUnknown, cfg.LogLevel)
		}
		level = l
	}

	var zc zap.Config
	if cfg.LogFormat == types.LogFormatJSON {
		zc = zap.NewProductionConfig()
	} else {
		zc = zap.NewDevelopmentConfig()
		zc.DisableStacktrace = true
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}

	return zc.Build()
}
