package w8r

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "waits.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

// applied runs the options against a fresh waitConfig so tests can
// observe what a profile resolved to.
func applied(opts []Option) waitConfig {
	var cfg waitConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

func TestLoadConfigProfiles(t *testing.T) {
	path := writeConfig(t, `{
		"profiles": {
			"db": {"interval": "1s", "soft_limit": 60, "hard_limit": 400},
			"logs": {"interval": "5s", "probe_timeout": "10s"}
		}
	}`)

	reg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, []string{"db", "logs"}, reg.Names())

	opts, err := reg.Options("db")
	require.NoError(t, err)

	cfg := applied(opts)
	require.Equal(t, time.Second, cfg.interval)
	require.Equal(t, 400, cfg.hardLimit)

	pc, ok := reg.Profile("db")
	require.True(t, ok)
	require.NotNil(t, pc.SoftLimit)
	require.Equal(t, 60, *pc.SoftLimit)

	cfg = applied(mustOptions(t, reg, "logs"))
	require.Equal(t, 5*time.Second, cfg.interval)
	require.Equal(t, 10*time.Second, cfg.probeTimeout)
}

func mustOptions(t *testing.T, reg *Registry, name string) []Option {
	t.Helper()

	opts, err := reg.Options(name)
	require.NoError(t, err)

	return opts
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "read config")
}

func TestLoadConfigMalformedJSON(t *testing.T) {
	path := writeConfig(t, `{"profiles": {`)

	_, err := LoadConfig(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "parse config")
}

func TestLoadConfigRejectsBadDurationEagerly(t *testing.T) {
	path := writeConfig(t, `{
		"profiles": {"bad": {"interval": "2 parsecs"}}
	}`)

	_, err := LoadConfig(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), `profile "bad"`)
}

func TestBuildOptionsValidation(t *testing.T) {
	neg := "-2s"
	zero := 0

	_, err := BuildOptions(&ProfileConfig{Interval: &neg})
	require.Error(t, err)

	_, err = BuildOptions(&ProfileConfig{HardLimit: &zero})
	require.Error(t, err)

	opts, err := BuildOptions(&ProfileConfig{})
	require.NoError(t, err)
	require.Empty(t, opts)
}

func TestEnvOptionsUnsetIsEmpty(t *testing.T) {
	t.Setenv(EnvInterval, "")
	t.Setenv(EnvHardLimit, "")

	opts, err := EnvOptions()
	require.NoError(t, err)
	require.Empty(t, opts)
}

func TestEnvOptionsOverride(t *testing.T) {
	t.Setenv(EnvInterval, "250ms")
	t.Setenv(EnvHardLimit, "42")

	opts, err := EnvOptions()
	require.NoError(t, err)

	cfg := applied(opts)
	require.Equal(t, 250*time.Millisecond, cfg.interval)
	require.Equal(t, 42, cfg.hardLimit)
}

func TestEnvOptionsMalformedValues(t *testing.T) {
	t.Setenv(EnvInterval, "soonish")

	_, err := EnvOptions()
	require.Error(t, err)
	require.Contains(t, err.Error(), EnvInterval)

	t.Setenv(EnvInterval, "")
	t.Setenv(EnvHardLimit, "many")

	_, err = EnvOptions()
	require.Error(t, err)
	require.Contains(t, err.Error(), EnvHardLimit)
}

func TestEnvOptionsRejectsNonPositive(t *testing.T) {
	t.Setenv(EnvInterval, "-1s")

	_, err := EnvOptions()
	require.Error(t, err)

	t.Setenv(EnvInterval, "")
	t.Setenv(EnvHardLimit, "0")

	_, err = EnvOptions()
	require.Error(t, err)
}
