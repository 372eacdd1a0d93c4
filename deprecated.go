package maybe

import "log"

// Wrap wraps a possibly-absent value without predicate filtering.
//
// Deprecated: Use Of, which also accepts validation predicates.
func Wrap[T any](v *T) Maybe[T] {
	log.Printf("maybe: Wrap is deprecated, use Of instead")
	return Of(v)
}
