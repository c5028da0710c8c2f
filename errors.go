package w8r

import "errors"

// ---------------------------------------------------------------------------
// Error classification wrappers
// ---------------------------------------------------------------------------.

type (
	// PollError identifies errors produced by the poller itself, as
	// opposed to errors from the probe under evaluation.
	//nolint:iface // exported for use in tests and consumer error
	// classification.
	PollError interface {
		error
		// IsPoll reports whether this error originates from the poller.
		IsPoll() bool
	}

	// transientError marks a wrapped probe error as transient (keep
	// polling).
	transientError struct {
		err error
	}

	// permanentError marks a wrapped probe error as permanent (stop
	// polling).
	permanentError struct {
		err error
	}

	// pollError is the concrete type backing all sentinel errors.
	pollError string
)

// Sentinel poll errors.
var (
	// ErrSoftLimitExceeded is returned when the caller's attempt budget
	// is exhausted before the probe succeeds.
	ErrSoftLimitExceeded error = pollError(
		"soft limit exceeded: probe never succeeded within attempt budget")
	// ErrHardLimitExceeded is returned when the absolute safety ceiling
	// is exhausted. It fires even when the caller asked for more
	// attempts than the ceiling allows, and usually means the caller's
	// budget was set too high.
	ErrHardLimitExceeded error = pollError(
		"hard safety limit exceeded: absolute poll ceiling reached " +
			"before attempt budget")
)

func (e *transientError) Error() string { return "transient: " + e.err.Error() }
func (e *transientError) Unwrap() error { return e.err }

func (e *permanentError) Error() string { return "permanent: " + e.err.Error() }
func (e *permanentError) Unwrap() error { return e.err }

func (e pollError) Error() string { return string(e) }

// IsPoll reports whether the error is a poller infrastructure error.
func (pollError) IsPoll() bool { return true }

// Transient wraps err to mark it as a transient (keep polling) error.
// Returns nil if err is nil.
func Transient(err error) error {
	if err == nil {
		return nil
	}

	return &transientError{err: err}
}

// Permanent wraps err to mark it as a permanent error. The poller stops
// immediately when a probe returns one. Returns nil if err is nil.
func Permanent(err error) error {
	if err == nil {
		return nil
	}

	return &permanentError{err: err}
}

// IsTransient reports whether err is transient. Unclassified (unwrapped)
// probe errors are treated as transient. Returns false for nil.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	// Explicitly permanent errors are not transient.
	var pe *permanentError

	return !errors.As(err, &pe)
}

// IsPermanent reports whether err was explicitly marked as permanent.
// Returns false for nil and for unclassified errors.
func IsPermanent(err error) bool {
	if err == nil {
		return false
	}

	var pe *permanentError

	return errors.As(err, &pe)
}
