package registry

import (
	"errors"
	"fmt"
)

var (
	// ErrEventNotFound is wrapped by PreconditionError when a query that
	// requires an existing event is given an unknown one.
	ErrEventNotFound = errors.New("event not found")

	// ErrNotInitialized is returned by Holder before a registry is published.
	ErrNotInitialized = errors.New("catalog registry not initialized")

	// ErrAlreadyInitialized is returned by Holder.Load after a registry has
	// been published.
	ErrAlreadyInitialized = errors.New("catalog registry already initialized")
)

// InitializationError aborts registry construction. Op names the load step
// that failed.
type InitializationError struct {
	Op  string
	Err error
}

func (e *InitializationError) Error() string {
	return fmt.Sprintf("initializing catalog registry: %s: %v", e.Op, e.Err)
}

func (e *InitializationError) Unwrap() error { return e.Err }

// UnresolvedAttributeError reports an event attribute reference that matches
// no attribute in the event's catalog or the default catalog.
type UnresolvedAttributeError struct {
	Event     string
	Catalog   string
	Attribute string
}

func (e *UnresolvedAttributeError) Error() string {
	return fmt.Sprintf("event %q in catalog %q references unknown attribute %q", e.Event, e.Catalog, e.Attribute)
}

// PreconditionError reports a query made with arguments the caller was
// expected to check first.
type PreconditionError struct {
	Op      string
	Event   string
	Catalog string
	Err     error
}

func (e *PreconditionError) Error() string {
	if e.Catalog == "" {
		return fmt.Sprintf("%s: event %q: %v", e.Op, e.Event, e.Err)
	}
	return fmt.Sprintf("%s: event %q (catalog %q): %v", e.Op, e.Event, e.Catalog, e.Err)
}

func (e *PreconditionError) Unwrap() error { return e.Err }
