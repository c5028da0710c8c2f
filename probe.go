package w8r

import (
	"bytes"
	"context"
	"fmt"
	"strings"
)

// ---------------------------------------------------------------------------
// Generic probe constructors
// ---------------------------------------------------------------------------.

type (
	// Fetcher observes external state as bytes: a log capture, a
	// response body, a file. Probes are built by pairing a Fetcher
	// with a match condition.
	//
	// Pattern: Strategy — the caller injects observation logic, the
	// probe owns only the condition.
	Fetcher func(ctx context.Context) ([]byte, error)

	// StatusFetcher observes the status string of a named external
	// resource.
	StatusFetcher func(ctx context.Context) (string, error)
)

// StatusProbe succeeds when the fetched status string, after trimming
// surrounding whitespace, equals want.
func StatusProbe(fetch StatusFetcher, want string) Probe {
	return func(ctx context.Context) error {
		status, err := fetch(ctx)
		if err != nil {
			return err
		}

		if got := strings.TrimSpace(status); got != want {
			return fmt.Errorf("status %q, want %q", got, want)
		}

		return nil
	}
}

// ContentProbe succeeds when the fetched bytes contain substr as a
// literal substring.
func ContentProbe(fetch Fetcher, substr string) Probe {
	return func(ctx context.Context) error {
		data, err := fetch(ctx)
		if err != nil {
			return err
		}

		if !bytes.Contains(data, []byte(substr)) {
			return fmt.Errorf("%q not found in %d bytes of content",
				substr, len(data))
		}

		return nil
	}
}

// CounterProbe succeeds when the fetched value, after trimming, equals
// want exactly. Equality is literal string equality — "7" matches "7"
// and nothing else; there is no numeric comparison.
func CounterProbe(fetch Fetcher, want string) Probe {
	return func(ctx context.Context) error {
		data, err := fetch(ctx)
		if err != nil {
			return err
		}

		if got := strings.TrimSpace(string(data)); got != want {
			return fmt.Errorf("counter is %q, want %q", got, want)
		}

		return nil
	}
}
