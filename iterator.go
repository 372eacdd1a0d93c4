package maybe

import "context"

// Iterator yields a stream of values. Next returns Nothing once the stream
// is exhausted; Maybe is the iteration protocol, so a stream can never yield
// an "absent element" distinct from its end.
type Iterator[T any] interface {
	Next(ctx context.Context) Maybe[T]
	Close(ctx context.Context) error
}

// Filter decides which values of an iterator to keep.
type Filter[T any] interface {
	Keep(ctx context.Context, val T) bool
}

// FilterFunc is an adaptor for simple filter functions that makes them
// compatible with the Filter interface. Use like:
//
//	FilterFunc[T](func(ctx context.Context, val T) bool { return true })
//
// Note that this type should never be referenced directly in any signature.
// Always use Filter as an input or output type.
type FilterFunc[T any] func(ctx context.Context, val T) bool

func (f FilterFunc[T]) Keep(ctx context.Context, val T) bool {
	return f(ctx, val)
}

// NewSlice converts a slice of values into an Iterator implementation.
func NewSlice[T any](vs []T) Iterator[T] {
	return &iteratorSlice[T]{slice: vs, offset: -1}
}

type iteratorSlice[T any] struct {
	slice  []T
	offset int
}

func (it *iteratorSlice[T]) Next(ctx context.Context) Maybe[T] {
	it.offset = it.offset + 1
	if it.offset >= len(it.slice) {
		return Nothing[T]()
	}
	return Some(it.slice[it.offset])
}

func (it *iteratorSlice[T]) Close(ctx context.Context) error {
	return nil
}

// NewFilter wraps an iterator with a filter so that only values that pass
// the filter are returned.
func NewFilter[T any](it Iterator[T], f Filter[T]) Iterator[T] {
	return &iteratorFilter[T]{
		iter:   it,
		filter: f,
	}
}

type iteratorFilter[T any] struct {
	iter   Iterator[T]
	filter Filter[T]
}

func (it *iteratorFilter[T]) Next(ctx context.Context) Maybe[T] {
	for {
		v := it.iter.Next(ctx)
		if !v.present {
			return v
		}
		if it.filter.Keep(ctx, v.value) {
			return v
		}
	}
}

func (it *iteratorFilter[T]) Close(ctx context.Context) error {
	return it.iter.Close(ctx)
}

// Present projects a stream of Maybe down to the payloads of its present
// entries, in order. It is the streaming form of Cat.
func Present[T any](it Iterator[Maybe[T]]) Iterator[T] {
	return &iteratorPresent[T]{iter: it}
}

type iteratorPresent[T any] struct {
	iter Iterator[Maybe[T]]
}

func (it *iteratorPresent[T]) Next(ctx context.Context) Maybe[T] {
	for {
		v := it.iter.Next(ctx)
		if !v.present {
			return Nothing[T]()
		}
		if v.value.present {
			return v.value
		}
	}
}

func (it *iteratorPresent[T]) Close(ctx context.Context) error {
	return it.iter.Close(ctx)
}

// MapIter applies fn to every value of an iterator and yields the payloads
// of the present results, in order. It is the streaming form of MapMaybe and
// never materializes an intermediate Maybe sequence.
func MapIter[A any, B any](it Iterator[A], fn func(A) Maybe[B]) Iterator[B] {
	return &iteratorMap[A, B]{iter: it, fn: fn}
}

type iteratorMap[A any, B any] struct {
	iter Iterator[A]
	fn   func(A) Maybe[B]
}

func (it *iteratorMap[A, B]) Next(ctx context.Context) Maybe[B] {
	for {
		v := it.iter.Next(ctx)
		if !v.present {
			return Nothing[B]()
		}
		if b := it.fn(v.value); b.present {
			return b
		}
	}
}

func (it *iteratorMap[A, B]) Close(ctx context.Context) error {
	return it.iter.Close(ctx)
}

// Collect drains an iterator into a slice and closes it.
func Collect[T any](ctx context.Context, it Iterator[T]) ([]T, error) {
	var out []T
	for {
		v := it.Next(ctx)
		if !v.present {
			return out, it.Close(ctx)
		}
		out = append(out, v.value)
	}
}
