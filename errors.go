package eventz

import (
	"errors"
	"fmt"
)

// Listener Management Errors
//
// These errors are returned when managing listener registrations.

// ErrNilListener is returned when a nil function is passed where a
// listener is required. Nothing is registered and no slot is created.
var ErrNilListener = errors.New("listener is nil")

// ErrAlreadyUnhooked is returned when calling Unhook on a handle that
// has already been used or was never valid.
var ErrAlreadyUnhooked = errors.New("hook already unhooked")

// ErrHookNotFound is returned by Unhook when the registration no longer
// exists: it was removed by value, by RemoveAllListeners, or by Clear.
var ErrHookNotFound = errors.New("hook not found")

// Type Errors
//
// These errors are returned when a key is used with a listener
// signature other than the one it is committed to.

// ErrTypeMismatch matches every *TypeMismatchError through errors.Is.
//
//	if errors.Is(err, eventz.ErrTypeMismatch) {
//		// key is already bound to another signature
//	}
var ErrTypeMismatch = errors.New("event type mismatch")

// TypeMismatchError reports an operation whose listener signature
// disagrees with the one the key was first used with. The registry is
// left unchanged.
type TypeMismatchError struct {
	Key       Key
	Existing  string // signature the key is committed to, e.g. "func(int)"
	Requested string // signature the failed operation asked for
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("invalid cast for %s: attempted to cast %s to %s", e.Key, e.Existing, e.Requested)
}

// Is makes errors.Is(err, ErrTypeMismatch) succeed.
func (e *TypeMismatchError) Is(target error) bool {
	return target == ErrTypeMismatch
}
