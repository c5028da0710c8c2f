package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/byte4ever/w8r"
	"github.com/byte4ever/w8r/zlog"
)

// runWait resolves the effective limits for a subcommand and executes
// the poll. Precedence, lowest to highest: probe-family preset, named
// profile, W8R_* environment, explicit flags.
func runWait(cmd *cobra.Command, probe w8r.Probe, preset []w8r.Option) error {
	flags := cmd.Flags()

	verbose, _ := flags.GetBool("verbose")
	logger := newLogger(verbose)

	opts := append([]w8r.Option{}, preset...)
	attempts, _ := flags.GetInt("attempts")

	configPath, _ := flags.GetString("config")
	profileName, _ := flags.GetString("profile")

	if (configPath == "") != (profileName == "") {
		return fmt.Errorf("--config and --profile must be used together")
	}

	if configPath != "" {
		reg, err := w8r.LoadConfig(configPath)
		if err != nil {
			return err
		}

		profileOpts, err := reg.Options(profileName)
		if err != nil {
			return err
		}

		opts = append(opts, profileOpts...)

		// The profile's soft limit applies unless -a was given
		// explicitly.
		if pc, ok := reg.Profile(profileName); ok &&
			pc.SoftLimit != nil && !flags.Changed("attempts") {
			attempts = *pc.SoftLimit
		}
	}

	envOpts, err := w8r.EnvOptions()
	if err != nil {
		return err
	}

	opts = append(opts, envOpts...)

	if flags.Changed("interval") {
		d, _ := flags.GetDuration("interval")
		opts = append(opts, w8r.WithInterval(d))
	}

	if flags.Changed("hard-limit") {
		n, _ := flags.GetInt("hard-limit")
		opts = append(opts, w8r.WithHardLimit(n))
	}

	if flags.Changed("probe-timeout") {
		d, _ := flags.GetDuration("probe-timeout")
		opts = append(opts, w8r.WithProbeTimeout(d))
	}

	opts = append(opts,
		w8r.WithHooks(zlog.Hooks(logger)),
		w8r.WithFailureReporter(func(failErr error) {
			logger.Error().Err(failErr).Msg("wait failed")
		}),
	)

	return w8r.Wait(cmd.Context(), probe, attempts, opts...)
}
