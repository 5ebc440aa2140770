package commands

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/penwyp/go-countdown/internal/application/timer"
	"github.com/penwyp/go-countdown/internal/core/countdown"
	"github.com/penwyp/go-countdown/internal/util"
	"gopkg.in/yaml.v3"
)

// FileConfig is the optional YAML config file. Pointer fields distinguish
// "not set" from false.
type FileConfig struct {
	DataDir    string `yaml:"data_dir"`
	Target     *int   `yaml:"target"`
	Loop       *bool  `yaml:"loop"`
	Sound      string `yaml:"sound"`
	Player     string `yaml:"player"`
	Bell       *bool  `yaml:"bell"`
	Timezone   string `yaml:"timezone"`
	TimeFormat string `yaml:"time_format"`
}

// loadConfigFile reads path. A missing file is only an error when it was named explicitly.
func loadConfigFile(path string, explicit bool) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			util.LogDebugf("No config file at %s", path)
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return parseConfig(data)
}

func parseConfig(data []byte) (*FileConfig, error) {
	var fc FileConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil {
		if errors.Is(err, io.EOF) {
			// Empty file
			return &fc, nil
		}
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return &fc, nil
}

// Apply copies file values into config for every flag not set on the command line
func (fc *FileConfig) Apply(changed func(string) bool, config *timer.TimerConfig) {
	if fc.DataDir != "" && !changed("data-dir") {
		config.DataDir = fc.DataDir
	}
	if fc.Target != nil && !changed("target") {
		config.TargetSeconds = countdown.ClampTarget(*fc.Target)
	}
	if fc.Loop != nil && !changed("loop") {
		config.Loop = *fc.Loop
	}
	if fc.Sound != "" && !changed("sound") {
		config.SoundFile = fc.Sound
	}
	if fc.Player != "" && !changed("player") {
		config.Player = fc.Player
	}
	if fc.Bell != nil && !changed("no-bell") {
		config.NoBell = !*fc.Bell
	}
	if fc.Timezone != "" && !changed("timezone") {
		config.Timezone = fc.Timezone
	}
	if fc.TimeFormat != "" && !changed("time-format") {
		config.TimeFormat = fc.TimeFormat
	}
}
