package w8r

import (
	"bytes"
	"context"
	"fmt"
	"os"
)

// lineSentinel replaces newlines before the substring search, turning
// a multi-line expected block into a single-line needle. 0x01 cannot
// appear in text logs, so the transform never creates false matches.
const lineSentinel = 0x01

// flattenLines maps every newline in b to the sentinel byte.
func flattenLines(b []byte) []byte {
	return bytes.ReplaceAll(b, []byte{'\n'}, []byte{lineSentinel})
}

// FileContentProbe succeeds when the file at path contains expected as
// a contiguous block. Both file and expected text have their newlines
// mapped to a sentinel byte first, so a multi-line block is matched by
// one substring search: the block must appear with its lines adjacent
// and in order, though unrelated lines may precede and follow it.
func FileContentProbe(path, expected string) Probe {
	needle := flattenLines([]byte(expected))

	return func(_ context.Context) error {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}

		if !bytes.Contains(flattenLines(data), needle) {
			return fmt.Errorf("expected block not found in %s", path)
		}

		return nil
	}
}
