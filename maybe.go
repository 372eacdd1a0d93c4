// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

// Package maybe provides an optional-value container with combinators for
// working with values that may be absent, replacing manual nil checks with
// composable, chainable operations.
package maybe

import "fmt"

// Maybe wraps a value that may be absent. The zero value is Nothing. Values
// are immutable after construction: every combinator returns a new Maybe or a
// plain value, never mutates its receiver. A Maybe over a comparable payload
// type is itself comparable and usable as a map key; two values compare equal
// when both are Nothing, or both are present with equal payloads.
type Maybe[T any] struct {
	value   T
	present bool
}

// Some returns a Maybe holding v.
func Some[T any](v T) Maybe[T] {
	return Maybe[T]{
		value:   v,
		present: true,
	}
}

// Nothing returns the absent Maybe.
func Nothing[T any]() Maybe[T] {
	return Maybe[T]{}
}

// Of examines a possibly-absent value and decides presence. A nil pointer
// yields Nothing and the predicates are never called. Otherwise every
// predicate must pass, evaluated in order; the first failure yields Nothing.
// Predicates are only ever called with a definitely-present value. Panics
// from a predicate propagate to the caller.
func Of[T any](v *T, preds ...func(T) bool) Maybe[T] {
	if v == nil {
		return Nothing[T]()
	}
	for _, pred := range preds {
		if !pred(*v) {
			return Nothing[T]()
		}
	}
	return Some(*v)
}

// OfOK converts a comma-ok pair, such as the result of a map lookup or type
// assertion, into a Maybe. The value is present iff ok is true.
func OfOK[T any](v T, ok bool) Maybe[T] {
	if !ok {
		return Nothing[T]()
	}
	return Some(v)
}

// IsPresent reports whether the Maybe holds a value.
func (m Maybe[T]) IsPresent() bool {
	return m.present
}

// Get destructures the Maybe into its payload and a presence flag. When the
// Maybe is Nothing the payload is the zero value of T.
func (m Maybe[T]) Get() (T, bool) {
	return m.value, m.present
}

// Test returns m unchanged if the value is present and pred returns true for
// it, and Nothing in every other case. pred is never called on an absent
// value.
func (m Maybe[T]) Test(pred func(T) bool) Maybe[T] {
	if m.present && pred(m.value) {
		return m
	}
	return Nothing[T]()
}

// ThisOr returns m if the value is present, and Some(other) otherwise. The
// fallback is always wrapped as present without undergoing absence checks, so
// the result is never Nothing.
func (m Maybe[T]) ThisOr(other T) Maybe[T] {
	if m.present {
		return m
	}
	return Some(other)
}

// Unwrap returns the payload if present. On an absent value it returns the
// supplied failure as-is, or an *EmptyUnwrapError naming the payload type
// when no failure is given.
func (m Maybe[T]) Unwrap(failure ...error) (T, error) {
	if m.present {
		return m.value, nil
	}
	var zero T
	if len(failure) > 0 {
		return zero, failure[0]
	}
	return zero, newEmptyUnwrap[T]()
}

// UnwrapOr returns the payload if present and other otherwise. It never
// fails.
func (m Maybe[T]) UnwrapOr(other T) T {
	if m.present {
		return m.value
	}
	return other
}

// Must returns the payload if present. On an absent value it calls abort if
// one is supplied; abort is expected to perform the failure signaling itself
// and not return. In all cases where control comes back, Must panics with an
// *EmptyUnwrapError.
func (m Maybe[T]) Must(abort ...func()) T {
	if m.present {
		return m.value
	}
	if len(abort) > 0 {
		abort[0]()
	}
	panic(newEmptyUnwrap[T]())
}

func (m Maybe[T]) String() string {
	if !m.present {
		return "Nothing"
	}
	return fmt.Sprintf("Some(%v)", m.value)
}

// Then applies f to the payload and returns a pointer to the result, exiting
// the Maybe. An absent input yields a nil pointer and f is never called.
// This is the terminal operation for callers comfortable with a plain
// nullable result.
func Then[T any, R any](m Maybe[T], f func(T) R) *R {
	if !m.present {
		return nil
	}
	r := f(m.value)
	return &r
}

// AndThen applies f to the payload and rewraps the result as Some. An absent
// input yields Nothing and f is never called. The result is wrapped
// unconditionally; if R carries its own absence notion the caller is
// responsible for flattening.
func AndThen[T any, R any](m Maybe[T], f func(T) R) Maybe[R] {
	if !m.present {
		return Nothing[R]()
	}
	return Some(f(m.value))
}
