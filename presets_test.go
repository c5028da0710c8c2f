package w8r

import (
	"testing"
	"time"
)

func TestQuickProbePreset(t *testing.T) {
	cfg := applied(QuickProbe())

	if cfg.interval != 2*time.Second {
		t.Fatalf("interval = %v, want 2s", cfg.interval)
	}
	if cfg.hardLimit != 300 {
		t.Fatalf("hardLimit = %d, want 300", cfg.hardLimit)
	}
}

func TestLogProbePreset(t *testing.T) {
	cfg := applied(LogProbe())

	if cfg.interval != 5*time.Second {
		t.Fatalf("interval = %v, want 5s", cfg.interval)
	}
	if cfg.hardLimit != 120 {
		t.Fatalf("hardLimit = %d, want 120", cfg.hardLimit)
	}
}

// Both presets resolve to the same wall-clock ceiling, one shared
// policy instead of five slightly different ones.
func TestPresetsShareWallClockCeiling(t *testing.T) {
	quick := applied(QuickProbe())
	logs := applied(LogProbe())

	quickWall := time.Duration(quick.hardLimit) * quick.interval
	logsWall := time.Duration(logs.hardLimit) * logs.interval

	if quickWall != logsWall {
		t.Fatalf("ceilings differ: %v vs %v", quickWall, logsWall)
	}
}
