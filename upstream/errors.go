package upstream

import (
	"errors"
	"fmt"
)

// Error taxonomy for upstream calls. Read paths translate these into
// empty/nil fallbacks at the adapter boundary; write paths surface them.
var (
	ErrTimeout     = errors.New("upstream timeout")
	ErrUnreachable = errors.New("upstream unreachable")
	ErrNotFound    = errors.New("not found")
	ErrValidation  = errors.New("validation failed")
	ErrShape       = errors.New("unexpected upstream data shape")
)

// WriteError wraps any failure on a mutating call. Unlike read failures it
// always propagates to the caller.
type WriteError struct {
	Service string
	Op      string
	Err     error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("%s: %s failed: %v", e.Service, e.Op, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

func writeFailed(service, op string, err error) error {
	return &WriteError{Service: service, Op: op, Err: err}
}

func isNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// Lookup is the tagged result of a single-item read, so callers can tell
// "truly absent" apart from "upstream unavailable, treat as absent".
type Lookup[T any] struct {
	Value    T
	Found    bool
	Degraded bool
	Reason   error
}

func found[T any](v T) Lookup[T] {
	return Lookup[T]{Value: v, Found: true}
}

func notFound[T any]() Lookup[T] {
	return Lookup[T]{}
}

func degraded[T any](reason error) Lookup[T] {
	return Lookup[T]{Degraded: true, Reason: reason}
}
