package llm

import "errors"

// Completion failures fall into two classes: transient ones worth retrying
// on the same endpoint (a busy local Ollama, a rate-limited hosted API) and
// fatal ones that retrying cannot fix (bad credentials, malformed request).
// The client retries transients and walks the fallback chain; fatal errors
// abort the whole call so misconfiguration surfaces immediately.

// TransientError wraps a temporary failure that may succeed on retry.
type TransientError struct {
	err error
}

func (e *TransientError) Error() string { return e.err.Error() }

func (e *TransientError) Unwrap() error { return e.err }

// NewTransientError marks an error as retryable.
func NewTransientError(err error) error {
	return &TransientError{err: err}
}

// FatalError wraps a permanent failure that must not be retried.
type FatalError struct {
	err error
}

func (e *FatalError) Error() string { return e.err.Error() }

func (e *FatalError) Unwrap() error { return e.err }

// NewFatalError marks an error as non-retryable.
func NewFatalError(err error) error {
	return &FatalError{err: err}
}

// IsTransient reports whether the error should be retried.
func IsTransient(err error) bool {
	var transient *TransientError
	return errors.As(err, &transient)
}

// IsFatal reports whether the error should abort without retry or fallback.
func IsFatal(err error) bool {
	var fatal *FatalError
	return errors.As(err, &fatal)
}
