// Package main is the entry point for the w8r CLI.
//
// w8r can be used either as a library or as a standalone binary from
// shell-based test harnesses. Each subcommand wraps one probe family
// around the same bounded poller:
//
//	w8r url https://svc.local/health -a 30
//	w8r status my-container running -a 60
//	w8r logs my-container "server started" -a 20
//	w8r counter https://svc.local/metrics/jobs 42 -a 10
//
// A terminal poll failure exits non-zero so the enclosing test fails.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// Version information - set at build time via ldflags.
// Example: go build -ldflags "-X main.version=1.0.0"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// rootCmd is the base command when called without subcommands.
// It just displays help - actual functionality is in subcommands.
var rootCmd = &cobra.Command{
	Use:   "w8r",
	Short: "Wait for an external condition with a bounded poll",
	Long: `w8r polls an external condition on a fixed interval until it holds,
the attempt budget runs out, or a hard safety ceiling fires.

Limits and cadence come from flags, from a named profile in a JSON
config file, or from W8R_INTERVAL / W8R_HARD_LIMIT in the environment
(a .env file in the working directory is honoured).`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// versionCmd displays version information.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Printf("w8r %s (commit %s, built %s)\n", version, commit, date)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)

	pf := rootCmd.PersistentFlags()
	pf.IntP("attempts", "a", 30, "soft attempt budget")
	pf.DurationP("interval", "i", 0, "poll interval (0 = probe default)")
	pf.Int("hard-limit", 0, "hard attempt ceiling (0 = ten-minute budget)")
	pf.Duration("probe-timeout", 0, "timeout per probe evaluation (0 = none)")
	pf.StringP("config", "c", "", "path to a JSON wait-profile file")
	pf.StringP("profile", "p", "", "profile name within the config file")
	pf.BoolP("verbose", "v", false, "log every attempt, not just the outcome")
}

// newLogger creates a console logger for CLI use. Attempt-level detail
// is debug; --verbose lowers the threshold.
func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
}

func main() {
	// A .env next to the harness is the conventional place for W8R_*
	// overrides; absence is not an error.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(
		context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "w8r: %v\n", err)
		os.Exit(1)
	}
}
