package w8r

import (
	"fmt"
	"os"
	"strconv"
	"time"

	json "github.com/goccy/go-json"
)

// Environment variables recognised by [EnvOptions]. They let a CI
// harness retune every wait in a suite without touching call sites.
const (
	// EnvInterval overrides the poll interval ("2s", "500ms", ...).
	EnvInterval = "W8R_INTERVAL"
	// EnvHardLimit overrides the hard attempt ceiling (integer).
	EnvHardLimit = "W8R_HARD_LIMIT"
)

type (
	// configFile is the top-level JSON structure.
	configFile struct {
		Profiles map[string]ProfileConfig `json:"profiles"`
	}

	// ProfileConfig holds the decoded configuration for a single wait
	// profile. Export it to embed in your own harness config structs
	// for JSON or YAML unmarshaling, then call [BuildOptions] to
	// obtain options for [Wait].
	ProfileConfig struct {
		// Interval is the constant sleep between evaluations.
		// Optional. Parsed via time.ParseDuration. Example: "2s".
		Interval *string `json:"interval,omitempty" yaml:"interval,omitempty"`
		// ProbeTimeout bounds each probe evaluation.
		// Optional. Parsed via time.ParseDuration. Example: "10s".
		ProbeTimeout *string `json:"probe_timeout,omitempty" yaml:"probe_timeout,omitempty"`
		// SoftLimit is the attempt budget passed alongside the probe.
		// Optional. Example: 30.
		SoftLimit *int `json:"soft_limit,omitempty" yaml:"soft_limit,omitempty"`
		// HardLimit overrides the safety ceiling on attempts.
		// Optional. Example: 300.
		HardLimit *int `json:"hard_limit,omitempty" yaml:"hard_limit,omitempty"`
	}
)

// LoadConfig reads a JSON configuration file of named wait profiles
// into a [Registry]. All profiles are validated eagerly so malformed
// durations surface at load time, not mid-suite.
//
// Duration values (interval, probe_timeout) are parsed using
// [time.ParseDuration].
func LoadConfig(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("w8r: read config: %w", err)
	}

	var cfg configFile
	if err = json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("w8r: parse config: %w", err)
	}

	for name, pc := range cfg.Profiles {
		if _, buildErr := BuildOptions(&pc); buildErr != nil {
			return nil, fmt.Errorf("w8r: profile %q: %w", name, buildErr)
		}
	}

	reg := NewRegistry()
	reg.replace(cfg.Profiles)

	return reg, nil
}

// BuildOptions converts a [ProfileConfig] into options for [Wait].
// The soft limit is deliberately not an option — it is the probe
// call's own parameter; read it from the profile directly.
func BuildOptions(pc *ProfileConfig) ([]Option, error) {
	var opts []Option

	if pc.Interval != nil {
		d, err := time.ParseDuration(*pc.Interval)
		if err != nil {
			return nil, fmt.Errorf("interval: %w", err)
		}

		if d <= 0 {
			return nil, fmt.Errorf("interval: must be positive, got %s", d)
		}

		opts = append(opts, WithInterval(d))
	}

	if pc.ProbeTimeout != nil {
		d, err := time.ParseDuration(*pc.ProbeTimeout)
		if err != nil {
			return nil, fmt.Errorf("probe_timeout: %w", err)
		}

		opts = append(opts, WithProbeTimeout(d))
	}

	if pc.HardLimit != nil {
		if *pc.HardLimit < 1 {
			return nil, fmt.Errorf(
				"hard_limit: must be at least 1, got %d", *pc.HardLimit)
		}

		opts = append(opts, WithHardLimit(*pc.HardLimit))
	}

	return opts, nil
}

// EnvOptions reads the W8R_* override variables and returns the
// corresponding options. Unset variables contribute nothing; malformed
// values are errors, never silently ignored.
func EnvOptions() ([]Option, error) {
	var opts []Option

	if v := os.Getenv(EnvInterval); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("w8r: %s: %w", EnvInterval, err)
		}

		if d <= 0 {
			return nil, fmt.Errorf(
				"w8r: %s: must be positive, got %s", EnvInterval, d)
		}

		opts = append(opts, WithInterval(d))
	}

	if v := os.Getenv(EnvHardLimit); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("w8r: %s: %w", EnvHardLimit, err)
		}

		if n < 1 {
			return nil, fmt.Errorf(
				"w8r: %s: must be at least 1, got %d", EnvHardLimit, n)
		}

		opts = append(opts, WithHardLimit(n))
	}

	return opts, nil
}
