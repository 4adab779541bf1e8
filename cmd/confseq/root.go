// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
)

// app carries state shared by every subcommand.
type app struct {
	log *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{log: slog.New(slog.DiscardHandler)}

	var (
		logLevel string
		noColor  bool
	)
	root := &cobra.Command{
		Use:   "confseq",
		Short: "Time-uniform confidence sequence boundaries",
		Long: `confseq computes boundaries that hold uniformly over time
(mixture supermartingales, polynomial stitching) and confidence sequences for
the mean of bounded observations.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level, err := parseLevel(logLevel)
			if err != nil {
				return err
			}
			a.log = newLogger(cmd.ErrOrStderr(), level, noColor)

			return nil
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn or error")
	root.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored log output")

	root.AddCommand(newBoundCmd(a), newGridCmd(a), newCSCmd(a))

	return root
}

// newLogger returns a tint-backed structured logger writing to w.
func newLogger(w io.Writer, level slog.Level, noColor bool) *slog.Logger {
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.TimeOnly,
		NoColor:    noColor,
	}))
}

// parseLevel maps a case-insensitive level name onto slog.Level.
func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("invalid --log-level %q: %w", s, err)
	}

	return level, nil
}
