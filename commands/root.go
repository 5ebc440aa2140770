package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/penwyp/go-countdown/internal/application/timer"
	"github.com/penwyp/go-countdown/internal/core/constants"
	"github.com/penwyp/go-countdown/internal/core/countdown"
	"github.com/penwyp/go-countdown/internal/util"
	"github.com/spf13/cobra"
)

var (
	// Logging related
	debug bool

	// Paths
	dataDir    string
	configFile string

	// Countdown related
	targetSeconds int
	loopMode      bool

	// Alert related
	soundFile string
	player    string
	noBell    bool

	// Display related
	timezone   string
	timeFormat string

	rootCmd = &cobra.Command{
		Use:   "go-countdown [flags]",
		Short: "Terminal countdown timer with loop mode and a start log",
		Long: `go-countdown is a full-screen terminal countdown timer.

It counts up to a target number of seconds, plays an alert when the target is
reached and can restart automatically in loop mode. Every start is recorded in
a persistent log.

Keys:
  space/s  start or pause       r  reset        l  toggle loop
  +/-      adjust target        t  type target  h  help
  up/down  scroll the log       v  layout       q  quit

Examples:
  go-countdown                                  # 5 second countdown
  go-countdown --target 90 --loop               # Repeat every 90 seconds
  go-countdown --sound ~/alarm.mp3 --no-bell    # Play a sound file only
  go-countdown --timezone Asia/Shanghai --time-format 12h
  go-countdown log --output csv                 # Export the start log`,
		SilenceUsage: true,
		RunE:         runTimer,
	}
)

const (
	defaultDataDir    = "~/.go-countdown"
	defaultConfigName = "config.yaml"
	storageFileName   = "storage.json"
)

func init() {
	// Paths and configuration
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", defaultDataDir,
		"Directory holding storage, logs and the config file")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "",
		"Config file path (default <data-dir>/config.yaml)")

	// Countdown
	rootCmd.Flags().IntVarP(&targetSeconds, "target", "t", constants.DefaultTargetSeconds,
		"Target duration in seconds")
	rootCmd.Flags().BoolVarP(&loopMode, "loop", "l", false,
		"Restart automatically when the target is reached")

	// Alert
	rootCmd.Flags().StringVar(&soundFile, "sound", "",
		"Sound file played when the target is reached")
	rootCmd.Flags().StringVar(&player, "player", "",
		"Audio player command (default: first of afplay, paplay, aplay, ffplay)")
	rootCmd.Flags().BoolVar(&noBell, "no-bell", false,
		"Do not ring the terminal bell")

	// Display
	rootCmd.Flags().StringVar(&timezone, "timezone", "Local",
		"Timezone setting (e.g., Asia/Shanghai, UTC)")
	rootCmd.Flags().StringVar(&timeFormat, "time-format", "24h",
		"Time format (12h or 24h)")

	// System and debugging
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false,
		"Enable debug mode")
}

func runTimer(cmd *cobra.Command, args []string) error {
	config, err := loadTimerConfig(cmd)
	if err != nil {
		return err
	}
	if err := initLogging(config.DataDir); err != nil {
		return err
	}
	defer util.CloseLogger()

	orchestrator, err := timer.NewOrchestrator(config)
	if err != nil {
		return err
	}

	// Set up signal handling
	ctx, cancel := signal.NotifyContext(commandContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	return orchestrator.Run(ctx)
}

func Execute() error {
	return rootCmd.Execute()
}

// loadTimerConfig merges the config file and flags. Flags set on the command
// line win over file values, file values win over flag defaults.
func loadTimerConfig(cmd *cobra.Command) (*timer.TimerConfig, error) {
	config := &timer.TimerConfig{
		DataDir:       dataDir,
		TargetSeconds: targetSeconds,
		Loop:          loopMode,
		SoundFile:     soundFile,
		Player:        player,
		NoBell:        noBell,
		Timezone:      timezone,
		TimeFormat:    timeFormat,
	}

	path := configFile
	explicit := path != ""
	if !explicit {
		path = filepath.Join(dataDir, defaultConfigName)
	}
	fileConfig, err := loadConfigFile(expandPath(path), explicit)
	if err != nil {
		return nil, err
	}
	if fileConfig != nil {
		fileConfig.Apply(flagChanged(cmd), config)
	}
	if flagChanged(cmd)("target") {
		config.TargetSeconds = countdown.ClampTarget(config.TargetSeconds)
	}

	config.DataDir = expandPath(config.DataDir)
	config.StorageFile = filepath.Join(config.DataDir, storageFileName)
	if config.SoundFile != "" {
		config.SoundFile = expandPath(config.SoundFile)
	}

	if err := ensureDir(config.DataDir); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// flagChanged reports whether a flag was set on the command line
func flagChanged(cmd *cobra.Command) func(string) bool {
	return func(name string) bool {
		f := cmd.Flags().Lookup(name)
		return f != nil && f.Changed
	}
}

func initLogging(dir string) error {
	logLevel := "info"
	if debug {
		logLevel = "debug"
	}

	logFile := filepath.Join(dir, "logs", "app.log")
	if err := ensureDir(filepath.Dir(logFile)); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}
	if err := util.InitLogger(logLevel, logFile, debug); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	return nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// Helper functions

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path[2:])
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return absPath
}

func ensureDir(dir string) error {
	return os.MkdirAll(dir, 0755)
}
