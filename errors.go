// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package maybe

import "fmt"

// Failure is implemented by every error this package produces. No other
// error kind is ever created or suppressed here; failures from
// caller-supplied functions and predicates always propagate unchanged.
type Failure interface {
	error
	Code() string
}

// EmptyUnwrapError reports an unwrap of an absent value.
type EmptyUnwrapError struct {
	// Type is the rendered payload type of the Maybe that was unwrapped.
	Type string
}

func newEmptyUnwrap[T any]() *EmptyUnwrapError {
	var zero T
	return &EmptyUnwrapError{Type: fmt.Sprintf("%T", zero)}
}

func (e *EmptyUnwrapError) Error() string {
	return fmt.Sprintf("Maybe[%s] unwrapped into nothing", e.Type)
}

func (e *EmptyUnwrapError) Code() string {
	return CodeEmptyUnwrap
}

// MissingAttributeError reports a strict attribute lookup on a value that
// does not have the named attribute.
type MissingAttributeError struct {
	Name string
}

func (e *MissingAttributeError) Error() string {
	return fmt.Sprintf("value has no attribute %q", e.Name)
}

func (e *MissingAttributeError) Code() string {
	return CodeMissingAttribute
}

// IndexOrKeyError reports a strict indexed or keyed lookup that found no
// element at the accessor.
type IndexOrKeyError struct {
	Accessor any
}

func (e *IndexOrKeyError) Error() string {
	return fmt.Sprintf("no element at %v", e.Accessor)
}

func (e *IndexOrKeyError) Code() string {
	return CodeIndexOrKey
}
