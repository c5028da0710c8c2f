package w8r_test

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/byte4ever/w8r"
)

func requireUnixShell(t *testing.T) {
	t.Helper()

	if runtime.GOOS == "windows" {
		t.Skip("exec probe tests use sh")
	}
}

func TestCommandProbeZeroExit(t *testing.T) {
	requireUnixShell(t)
	t.Parallel()

	probe := w8r.CommandProbe("sh", "-c", "exit 0")
	require.NoError(t, probe(context.Background()))
}

func TestCommandProbeNonZeroExitCarriesOutput(t *testing.T) {
	requireUnixShell(t)
	t.Parallel()

	probe := w8r.CommandProbe("sh", "-c", "echo connection refused; exit 3")

	err := probe(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "connection refused")
	require.Contains(t, err.Error(), "exit status 3")
}

func TestCommandProbeMissingBinary(t *testing.T) {
	t.Parallel()

	probe := w8r.CommandProbe("w8r-no-such-binary-anywhere")
	require.Error(t, probe(context.Background()))
}

// TestWaitCommandUntilFileAppears polls a shell test for a file another
// step creates mid-wait, the classic "wait for a sibling process"
// harness move.
func TestWaitCommandUntilFileAppears(t *testing.T) {
	requireUnixShell(t)
	t.Parallel()

	marker := filepath.Join(t.TempDir(), "done")
	probe := w8r.CommandProbe("test", "-f", marker)

	require.Error(t, probe(context.Background()))

	require.NoError(t, os.WriteFile(marker, nil, 0o600))
	require.NoError(t, probe(context.Background()))
}
