// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package maybe

import "errors"

// Field reads a named attribute from a value, reporting whether the
// attribute exists on this particular value. It is the statically typed
// stand-in for reflective attribute lookup: the caller names the access once
// and the combinators below layer the absence and error contracts on top.
type Field[T any, V any] func(T) (V, bool)

// Attr reads an attribute from the payload. An absent input yields Nothing
// without the field accessor being called. A missing attribute also yields
// Nothing; use AttrStrict to surface it as a failure instead.
func Attr[T any, V any](m Maybe[T], field Field[T, V]) Maybe[V] {
	if !m.present {
		return Nothing[V]()
	}
	return OfOK(field(m.value))
}

// AttrStrict reads an attribute from the payload, failing with a
// *MissingAttributeError when the payload is present but the attribute is
// not. An absent input yields Nothing and a nil error; no access is
// attempted.
func AttrStrict[T any, V any](m Maybe[T], name string, field Field[T, V]) (Maybe[V], error) {
	if !m.present {
		return Nothing[V](), nil
	}
	v, ok := field(m.value)
	if !ok {
		return Nothing[V](), &MissingAttributeError{Name: name}
	}
	return Some(v), nil
}

// AttrOr performs the strict lookup and falls back to def when the value is
// absent or the attribute is missing. Only the MissingAttribute failure is
// swallowed.
func AttrOr[T any, V any](m Maybe[T], name string, field Field[T, V], def V) V {
	got, err := AttrStrict(m, name, field)
	if err != nil {
		var missing *MissingAttributeError
		if errors.As(err, &missing) {
			return def
		}
	}
	return got.UnwrapOr(def)
}

// Index reads the i'th element of the wrapped slice. When the input is
// absent or i is out of range the result is constructed from def under the
// usual rules: Some(def) when a default is given, Nothing otherwise.
func Index[T any](m Maybe[[]T], i int, def ...T) Maybe[T] {
	if m.present && i >= 0 && i < len(m.value) {
		return Some(m.value[i])
	}
	return ofDefault(def)
}

// IndexStrict reads the i'th element of the wrapped slice, failing with an
// *IndexOrKeyError when i is out of range. An absent input yields Nothing
// and a nil error.
func IndexStrict[T any](m Maybe[[]T], i int) (Maybe[T], error) {
	if !m.present {
		return Nothing[T](), nil
	}
	if i < 0 || i >= len(m.value) {
		return Nothing[T](), &IndexOrKeyError{Accessor: i}
	}
	return Some(m.value[i]), nil
}

// Key reads the element at k in the wrapped map. When the input is absent or
// the key is missing the result is constructed from def under the usual
// rules: Some(def) when a default is given, Nothing otherwise.
func Key[K comparable, V any](m Maybe[map[K]V], k K, def ...V) Maybe[V] {
	if m.present {
		if v, ok := m.value[k]; ok {
			return Some(v)
		}
	}
	return ofDefault(def)
}

// KeyStrict reads the element at k in the wrapped map, failing with an
// *IndexOrKeyError when the key is missing. An absent input yields Nothing
// and a nil error.
func KeyStrict[K comparable, V any](m Maybe[map[K]V], k K) (Maybe[V], error) {
	if !m.present {
		return Nothing[V](), nil
	}
	v, ok := m.value[k]
	if !ok {
		return Nothing[V](), &IndexOrKeyError{Accessor: k}
	}
	return Some(v), nil
}

func ofDefault[T any](def []T) Maybe[T] {
	if len(def) == 0 {
		return Nothing[T]()
	}
	return Some(def[0])
}
