// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package maybe

import "strconv"

// Cat filters a slice of Maybe down to the payloads of the present entries,
// in their original order. Absent entries are dropped silently.
func Cat[T any](ms []Maybe[T]) []T {
	out := make([]T, 0, len(ms))
	for _, m := range ms {
		if m.present {
			out = append(out, m.value)
		}
	}
	return out
}

// MapMaybe applies fn to every input in order and keeps the payloads of the
// present results. Equivalent to Cat over the mapped slice, but runs in a
// single pass without materializing it.
func MapMaybe[A any, B any](fn func(A) Maybe[B], vals []A) []B {
	out := make([]B, 0, len(vals))
	for _, v := range vals {
		if m := fn(v); m.present {
			out = append(out, m.value)
		}
	}
	return out
}

// ParseInt attempts a base-10, locale-agnostic integer parse of s. Parse
// failures are never propagated; they yield Nothing.
func ParseInt(s string) Maybe[int] {
	i, err := strconv.Atoi(s)
	if err != nil {
		return Nothing[int]()
	}
	return Some(i)
}
