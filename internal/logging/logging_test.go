package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/mesh-intelligence/itembridge/pkg/types"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name      string
		cfg       types.Config
		wantLevel zapcore.Level
		wantErr   error
	}{
		{"defaults to info", types.Config{}, zapcore.InfoLevel, nil},
		{"debug console", types.Config{LogLevel: "debug", LogFormat: types.LogFormatConsole}, zapcore.DebugLevel, nil},
		{"warn json", types.Config{LogLevel: "warn", LogFormat: types.LogFormatJSON}, zapcore.WarnLevel, nil},
		{"unknown level", types.Config{LogLevel: "loud"}, 0, types.ErrLogLevelUnknown},
		{"unknown format", types.Config{LogFormat: "xml"}, 0, types.ErrLogFormatUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, err := New(tt.cfg)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.True(t, log.Core().Enabled(tt.wantLevel))
			assert.False(t, log.Core().Enabled(tt.wantLevel-1))
		})
	}
}
