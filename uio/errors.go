package uio

import (
	"errors"
	"fmt"
)

var ErrDisposed = errors.New("uio: observer disposed")

// ComputeError is returned when a computation or context lookup fails. The
// failing Instance keeps its previous value and arguments.
type ComputeError struct {
	Key string
	Err error
}

func (e *ComputeError) Error() string {
	return fmt.Sprintf("uio: computing %s: %v", e.Key, e.Err)
}

func (e *ComputeError) Unwrap() error {
	return e.Err
}

// SubscriptionError is returned when an event source fails to subscribe or
// unsubscribe.
type SubscriptionError struct {
	Key string
	Op  string
	Err error
}

func (e *SubscriptionError) Error() string {
	return fmt.Sprintf("uio: %s %s: %v", e.Op, e.Key, e.Err)
}

func (e *SubscriptionError) Unwrap() error {
	return e.Err
}
