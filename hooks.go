package w8r

import "time"

// Hooks holds optional callback functions for poll lifecycle events.
// All fields are nil by default; callers set only the hooks they care
// about. Once constructed, a Hooks value must not be mutated — emit
// methods read the function fields without synchronisation, which is
// safe as long as the struct is read-only after initialisation.
//
// Pattern: Observer — decouples poll event emission from consumers
// (logging, metrics, alerting) without the loop knowing about
// observers.
type Hooks struct {
	// OnAttempt fires after each failed probe evaluation with the
	// 1-indexed attempt number and the probe's error.
	OnAttempt func(attempt int, err error)
	// OnSleep fires before each interval sleep.
	OnSleep func(d time.Duration)
	// OnSuccess fires once when the probe succeeds, with the total
	// number of evaluations performed.
	OnSuccess func(attempts int)
	// OnExhausted fires once when polling gives up. kind is one of
	// [ErrSoftLimitExceeded] or [ErrHardLimitExceeded].
	OnExhausted func(kind error, attempts int)
}

func (h *Hooks) emitAttempt(attempt int, err error) {
	if h != nil && h.OnAttempt != nil {
		h.OnAttempt(attempt, err)
	}
}

func (h *Hooks) emitSleep(d time.Duration) {
	if h != nil && h.OnSleep != nil {
		h.OnSleep(d)
	}
}

func (h *Hooks) emitSuccess(attempts int) {
	if h != nil && h.OnSuccess != nil {
		h.OnSuccess(attempts)
	}
}

func (h *Hooks) emitExhausted(kind error, attempts int) {
	if h != nil && h.OnExhausted != nil {
		h.OnExhausted(kind, attempts)
	}
}
