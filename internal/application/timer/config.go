package timer

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/penwyp/go-countdown/internal/core/constants"
	"github.com/penwyp/go-countdown/internal/core/countdown"
	"github.com/penwyp/go-countdown/internal/util"
)

// TimerConfig contains configuration for the interactive countdown
type TimerConfig struct {
	// Storage
	DataDir     string
	StorageFile string

	// Countdown defaults
	TargetSeconds int
	Loop          bool

	// Alert settings
	SoundFile string
	Player    string
	NoBell    bool

	// Display settings
	Timezone   string
	TimeFormat string

	// Refresh settings
	TickInterval         time.Duration
	ClockRefreshInterval time.Duration
}

// Validate fills defaults and checks the configuration
func (c *TimerConfig) Validate() error {
	if c.DataDir == "" {
		c.DataDir = "~/.go-countdown"
	}
	if c.StorageFile == "" {
		c.StorageFile = filepath.Join(c.DataDir, "storage.json")
	}
	// Zero means unset; an explicit target is coerced, never rejected
	if c.TargetSeconds == 0 {
		c.TargetSeconds = constants.DefaultTargetSeconds
	}
	c.TargetSeconds = countdown.ClampTarget(c.TargetSeconds)
	if c.Timezone == "" {
		c.Timezone = "Local"
	}
	if err := util.ValidateTimezone(c.Timezone); err != nil {
		return err
	}
	if c.TimeFormat == "" {
		c.TimeFormat = "24h"
	}
	if c.TimeFormat != "12h" && c.TimeFormat != "24h" {
		return fmt.Errorf("invalid time format '%s': must be either '12h' or '24h'", c.TimeFormat)
	}
	if c.TickInterval == 0 {
		c.TickInterval = constants.TickInterval
	}
	if c.ClockRefreshInterval == 0 {
		c.ClockRefreshInterval = constants.ClockRefreshInterval
	}
	return nil
}
