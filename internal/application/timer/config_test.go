package timer

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/penwyp/go-countdown/internal/core/constants"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimerConfig_ValidateDefaults(t *testing.T) {
	c := &TimerConfig{}
	require.NoError(t, c.Validate())

	assert.Equal(t, "~/.go-countdown", c.DataDir)
	assert.Equal(t, filepath.Join("~/.go-countdown", "storage.json"), c.StorageFile)
	assert.Equal(t, constants.DefaultTargetSeconds, c.TargetSeconds)
	assert.Equal(t, "Local", c.Timezone)
	assert.Equal(t, "24h", c.TimeFormat)
	assert.Equal(t, time.Second, c.TickInterval)
	assert.Equal(t, time.Second, c.ClockRefreshInterval)
}

func TestTimerConfig_ValidateKeepsValues(t *testing.T) {
	c := &TimerConfig{
		DataDir:       "/tmp/cd",
		TargetSeconds: 90,
		Timezone:      "UTC",
		TimeFormat:    "12h",
		TickInterval:  50 * time.Millisecond,
	}
	require.NoError(t, c.Validate())
	assert.Equal(t, filepath.Join("/tmp/cd", "storage.json"), c.StorageFile)
	assert.Equal(t, 90, c.TargetSeconds)
	assert.Equal(t, "12h", c.TimeFormat)
	assert.Equal(t, 50*time.Millisecond, c.TickInterval)
}

func TestTimerConfig_ValidateCoercesTarget(t *testing.T) {
	tests := []struct {
		name   string
		target int
		want   int
	}{
		{"unset_uses_default", 0, constants.DefaultTargetSeconds},
		{"negative_clamps_to_one", -5, 1},
		{"one_kept", 1, 1},
		{"large_kept", 3600, 3600},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &TimerConfig{TargetSeconds: tt.target}
			require.NoError(t, c.Validate())
			assert.Equal(t, tt.want, c.TargetSeconds)
		})
	}
}

func TestTimerConfig_ValidateErrors(t *testing.T) {
	tests := []struct {
		name    string
		config  TimerConfig
		wantErr string
	}{
		{"bad_time_format", TimerConfig{TimeFormat: "36h"}, "invalid time format"},
		{"bad_timezone", TimerConfig{Timezone: "Mars/Olympus"}, "invalid timezone"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
