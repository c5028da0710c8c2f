package w8r

import (
	"context"
	"fmt"
	"time"
)

// Probe is a single boolean-valued check against an external resource.
// A nil return means the condition holds; any error means "not yet",
// unless the error is wrapped with [Permanent], in which case polling
// stops immediately.
type Probe func(ctx context.Context) error

// Default polling cadence.
const (
	// DefaultInterval is the sleep between probe evaluations when no
	// interval option or preset is supplied.
	DefaultInterval = 2 * time.Second

	// hardWallBudget is the canonical wall-clock ceiling the default
	// hard limit is derived from. One shared constant: the original
	// harness carried five slightly different ceilings.
	hardWallBudget = 10 * time.Minute
)

// DefaultHardBudget returns the default hard attempt ceiling for a
// given interval: the number of attempts equivalent to ten minutes of
// wall time, never less than one.
func DefaultHardBudget(interval time.Duration) int {
	if interval <= 0 {
		interval = DefaultInterval
	}

	n := int(hardWallBudget / interval)
	if n < 1 {
		n = 1
	}

	return n
}

// waitConfig holds the optional configuration for a single Wait call.
type waitConfig struct {
	interval     time.Duration // 0 means DefaultInterval
	hardLimit    int           // 0 means DefaultHardBudget(interval)
	probeTimeout time.Duration // 0 means no per-evaluation timeout
	clock        Clock         // nil means RealClock
	hooks        *Hooks        // nil means no hooks
	report       func(error)   // nil means no reporter
}

// Option configures a single Wait or WaitValue call.
type Option func(*waitConfig)

// WithInterval sets the constant sleep between probe evaluations.
// There is no backoff and no jitter; the interval never varies within
// one call.
func WithInterval(d time.Duration) Option {
	return func(cfg *waitConfig) {
		cfg.interval = d
	}
}

// WithHardLimit overrides the hard safety ceiling on attempts. The
// ceiling is independent of the caller's budget and fires first when
// the budget exceeds it.
func WithHardLimit(n int) Option {
	return func(cfg *waitConfig) {
		cfg.hardLimit = n
	}
}

// WithProbeTimeout bounds each individual probe evaluation with a
// context timeout, so a probe that blocks cannot stall the loop past
// its configured cadence indefinitely.
func WithProbeTimeout(d time.Duration) Option {
	return func(cfg *waitConfig) {
		cfg.probeTimeout = d
	}
}

// WithClock substitutes the clock used for interval sleeps. Tests use
// this to run the loop without real sleeps.
func WithClock(c Clock) Option {
	return func(cfg *waitConfig) {
		cfg.clock = c
	}
}

// WithHooks attaches lifecycle callbacks to the call.
func WithHooks(h *Hooks) Option {
	return func(cfg *waitConfig) {
		cfg.hooks = h
	}
}

// WithFailureReporter installs a callback invoked with every terminal
// error (limit exhaustion, permanent probe error, context
// cancellation) before it is returned. The reporter is an explicit
// dependency: harnesses wire their failure mechanism here instead of
// the poller guessing at one.
func WithFailureReporter(fn func(error)) Option {
	return func(cfg *waitConfig) {
		cfg.report = fn
	}
}

// Wait evaluates probe until it succeeds or polling gives up.
//
// The probe is evaluated immediately; success on the first evaluation
// costs zero sleeps. After each failed evaluation the loop sleeps one
// interval and tries again, until the probe succeeds, softLimit
// attempts have failed (ErrSoftLimitExceeded), or the hard safety
// ceiling is reached (ErrHardLimitExceeded). A probe that never
// succeeds is evaluated at most min(softLimit, hardLimit)+1 times.
//
// The hard ceiling is checked before the soft budget, so a caller
// budget larger than the ceiling reports the ceiling, not the budget.
func Wait(ctx context.Context, probe Probe, softLimit int, opts ...Option) error {
	_, err := WaitValue(ctx, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, probe(ctx)
	}, softLimit, opts...)

	return err
}

// WaitValue is Wait for probes that produce a value: fn is polled with
// the same bounded-retry semantics, and the value from the successful
// evaluation is returned.
func WaitValue[T any](ctx context.Context, fn func(context.Context) (T, error), softLimit int, opts ...Option) (T, error) {
	var cfg waitConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.interval <= 0 {
		cfg.interval = DefaultInterval
	}

	if cfg.hardLimit <= 0 {
		cfg.hardLimit = DefaultHardBudget(cfg.interval)
	}

	if cfg.clock == nil {
		cfg.clock = RealClock{}
	}

	if softLimit < 0 {
		softLimit = 0
	}

	var zero T

	fail := func(err error) (T, error) {
		if cfg.report != nil {
			cfg.report(err)
		}

		return zero, err
	}

	for attempt := 0; ; attempt++ {
		// Evaluate fn, optionally with a per-evaluation timeout.
		var (
			result T
			err    error
		)

		if cfg.probeTimeout > 0 {
			probeCtx, cancel := context.WithTimeout(ctx, cfg.probeTimeout)
			result, err = fn(probeCtx)
			cancel()
		} else {
			result, err = fn(ctx)
		}

		// On success: return immediately, no further evaluations.
		if err == nil {
			cfg.hooks.emitSuccess(attempt + 1)

			return result, nil
		}

		// A permanent probe error stops polling outright.
		if IsPermanent(err) {
			return fail(err)
		}

		cfg.hooks.emitAttempt(attempt+1, err)

		// Hard ceiling first: when the caller's budget exceeds it, the
		// failure must name the safety ceiling, not the budget.
		if attempt >= cfg.hardLimit {
			cfg.hooks.emitExhausted(ErrHardLimitExceeded, attempt+1)

			return fail(fmt.Errorf(
				"%w (ceiling %d, caller budget %d): %w",
				ErrHardLimitExceeded, cfg.hardLimit, softLimit, err))
		}

		if attempt >= softLimit {
			cfg.hooks.emitExhausted(ErrSoftLimitExceeded, attempt+1)

			return fail(fmt.Errorf(
				"%w (budget %d): %w",
				ErrSoftLimitExceeded, softLimit, err))
		}

		cfg.hooks.emitSleep(cfg.interval)

		// Sleep using Clock.NewTimer, respecting context cancellation.
		timer := cfg.clock.NewTimer(cfg.interval)
		select {
		case <-timer.C():
			// Timer fired, proceed to next evaluation.
		case <-ctx.Done():
			timer.Stop()

			return fail(ctx.Err())
		}
	}
}
