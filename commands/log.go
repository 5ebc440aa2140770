package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/penwyp/go-countdown/internal/data/store"
	"github.com/penwyp/go-countdown/internal/presentation/formatter"
	"github.com/penwyp/go-countdown/internal/util"
	"github.com/spf13/cobra"
)

var (
	logOutput string
	logFollow bool
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Print the persisted start log",
	Long: `Print every recorded countdown start.

With --follow the command keeps running and prints new starts as another
go-countdown instance records them.`,
	SilenceUsage: true,
	RunE:         runLog,
}

func init() {
	rootCmd.AddCommand(logCmd)

	logCmd.Flags().StringVarP(&logOutput, "output", "o", formatter.OutputText,
		"Output format (text, json, csv)")
	logCmd.Flags().BoolVarP(&logFollow, "follow", "f", false,
		"Keep running and print new entries (text output only)")
}

func runLog(cmd *cobra.Command, args []string) error {
	f, err := formatter.NewFormatter(logOutput)
	if err != nil {
		return err
	}
	if logFollow && logOutput != formatter.OutputText {
		return fmt.Errorf("--follow is only supported with text output")
	}

	config, err := loadTimerConfig(cmd)
	if err != nil {
		return err
	}
	if err := initLogging(config.DataDir); err != nil {
		return err
	}
	defer util.CloseLogger()

	kv, err := store.NewFileKV(config.StorageFile)
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	logs := store.NewLogStore(kv)
	if err := logs.Load(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	entries := logs.Entries()
	if err := f.Format(out, formatter.BuildRows(entries)); err != nil {
		return fmt.Errorf("failed to write log: %w", err)
	}
	if !logFollow {
		return nil
	}

	ctx, cancel := signal.NotifyContext(commandContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	return followLog(ctx, kv, logs, len(entries), out)
}

// followLog prints entries appended after the first printed entries until ctx is done
func followLog(ctx context.Context, kv *store.FileKV, logs *store.LogStore, printed int, out io.Writer) error {
	watcher, err := store.NewWatcher(kv.Path())
	if err != nil {
		return fmt.Errorf("failed to start file watcher: %w", err)
	}
	defer watcher.Close()

	util.LogInfof("Following %s", kv.Path())
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events():
			if !ok {
				return nil
			}
			util.LogDebugf("Storage changed: %s", event.Operation)

			kv.Reload()
			if err := logs.Load(); err != nil {
				util.LogWarnf("Failed to reload log: %v", err)
				continue
			}

			rows := formatter.BuildRows(logs.Entries())
			if len(rows) < printed {
				// The log was replaced by a shorter one, start over from its end
				printed = len(rows)
				continue
			}
			for _, row := range rows[printed:] {
				fmt.Fprintf(out, "%d\t%s\n", row.Index, row.StartedAt)
			}
			printed = len(rows)
		}
	}
}
