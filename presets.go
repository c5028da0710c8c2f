package w8r

import "time"

// LogInterval is the slower cadence used for log and content probes,
// which tend to fetch and scan more data per evaluation.
const LogInterval = 5 * time.Second

// Pattern: Factory Function — each preset produces a ready-made option
// bundle for a probe family, avoiding boilerplate configuration.

// QuickProbe returns options for cheap probes (URL reachability,
// command exit, resource status): 2s cadence with the standard
// ten-minute safety ceiling.
func QuickProbe() []Option {
	return []Option{
		WithInterval(DefaultInterval),
		WithHardLimit(DefaultHardBudget(DefaultInterval)),
	}
}

// LogProbe returns options for content probes over logs and files:
// 5s cadence with the standard ten-minute safety ceiling.
func LogProbe() []Option {
	return []Option{
		WithInterval(LogInterval),
		WithHardLimit(DefaultHardBudget(LogInterval)),
	}
}
