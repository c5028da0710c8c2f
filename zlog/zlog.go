package zlog

import (
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/byte4ever/w8r"
)

// Hooks returns poll lifecycle hooks that log through logger. Failed
// attempts and sleeps log at debug level; success at info; exhaustion
// at error, with the limit kind spelled out so a reader can tell the
// caller's budget from the safety ceiling.
func Hooks(logger zerolog.Logger) *w8r.Hooks {
	return &w8r.Hooks{
		OnAttempt: func(attempt int, err error) {
			logger.Debug().
				Int("attempt", attempt).
				Err(err).
				Msg("probe not satisfied")
		},
		OnSleep: func(d time.Duration) {
			logger.Debug().
				Dur("interval", d).
				Msg("sleeping before next evaluation")
		},
		OnSuccess: func(attempts int) {
			logger.Info().
				Int("attempts", attempts).
				Msg("probe satisfied")
		},
		OnExhausted: func(kind error, attempts int) {
			logger.Error().
				Str("limit", limitName(kind)).
				Int("attempts", attempts).
				Msg("giving up on probe")
		},
	}
}

func limitName(kind error) string {
	switch {
	case errors.Is(kind, w8r.ErrHardLimitExceeded):
		return "hard"
	case errors.Is(kind, w8r.ErrSoftLimitExceeded):
		return "soft"
	default:
		return "unknown"
	}
}
