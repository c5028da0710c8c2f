package w8r

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// CommandProbe succeeds when the command exits with status zero. The
// command is re-run from scratch on every evaluation; its stdout and
// stderr are captured and folded into the failure message so the last
// error explains what the command said.
func CommandProbe(name string, args ...string) Probe {
	return func(ctx context.Context) error {
		out, err := exec.CommandContext(ctx, name, args...).CombinedOutput()
		if err != nil {
			return fmt.Errorf("%s: %w: %s",
				name, err, strings.TrimSpace(string(out)))
		}

		return nil
	}
}

// DockerStatusFetcher reports the runtime status of a named container
// ("running", "exited", ...) by shelling out to docker inspect. Pair
// it with [StatusProbe] to wait for a container to reach a state.
func DockerStatusFetcher(container string) StatusFetcher {
	return func(ctx context.Context) (string, error) {
		out, err := exec.CommandContext(ctx,
			"docker", "inspect", "-f", "{{.State.Status}}", container,
		).Output()
		if err != nil {
			return "", fmt.Errorf("inspect container %s: %w", container, err)
		}

		return strings.TrimSpace(string(out)), nil
	}
}

// DockerLogsFetcher captures the full log output (stdout and stderr
// interleaved) of a named container. Pair it with [ContentProbe] to
// wait for a line to appear in the logs.
func DockerLogsFetcher(container string) Fetcher {
	return func(ctx context.Context) ([]byte, error) {
		out, err := exec.CommandContext(ctx,
			"docker", "logs", container,
		).CombinedOutput()
		if err != nil {
			return nil, fmt.Errorf("logs for container %s: %w", container, err)
		}

		return out, nil
	}
}
