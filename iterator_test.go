package maybe

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSliceIterator(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	it := NewSlice([]int{1, 2, 3})
	for _, expected := range []int{1, 2, 3} {
		v := it.Next(ctx)
		require.True(t, v.IsPresent())
		require.Equal(t, Some(expected), v)
	}
	require.False(t, it.Next(ctx).IsPresent())
	require.False(t, it.Next(ctx).IsPresent())
	require.Nil(t, it.Close(ctx))
}

func TestFilterIterator(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	even := Filter[int](FilterFunc[int](func(ctx context.Context, val int) bool {
		return val%2 == 0
	}))
	it := NewFilter(NewSlice([]int{0, 1, 2, 3, 4, 5}), even)
	got, err := Collect(ctx, it)
	require.NoError(t, err)
	require.Equal(t, []int{0, 2, 4}, got)
}

func TestPresent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	vals := []Maybe[int]{Some(5), Nothing[int](), Some(10), Nothing[int]()}
	got, err := Collect(ctx, Present(NewSlice(vals)))
	require.NoError(t, err)
	require.Equal(t, []int{5, 10}, got)
	require.Equal(t, Cat(vals), got)
}

func TestPresentAllAbsent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	vals := []Maybe[int]{Nothing[int](), Nothing[int]()}
	got, err := Collect(ctx, Present(NewSlice(vals)))
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestMapIter(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	chars := strings.Split("a1b2c3", "")
	it := MapIter(NewSlice(chars), ParseInt)
	got, err := Collect(ctx, it)
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3}, got)
	require.Equal(t, MapMaybe(ParseInt, chars), got)
}

func TestMapIterStopsCalling(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	calls := 0
	it := MapIter(NewSlice([]int{1, 2, 3}), func(i int) Maybe[int] {
		calls = calls + 1
		return Some(i)
	})
	_, err := Collect(ctx, it)
	require.NoError(t, err)
	require.Equal(t, 3, calls)
}

var benchEscapeIter int

func BenchmarkMapIter(b *testing.B) {
	ctx := context.Background()
	sliceSize := 1000
	chars := make([]string, sliceSize)
	for x := 0; x < sliceSize; x = x + 1 {
		chars[x] = alphanumeric[x%len(alphanumeric) : x%len(alphanumeric)+1]
	}

	var loopEscape int
	b.ResetTimer()
	for n := 0; n < b.N; n = n + 1 {
		it := MapIter(NewSlice(chars), ParseInt)
		for {
			v := it.Next(ctx)
			if !v.IsPresent() {
				break
			}
			loopEscape = v.UnwrapOr(0)
		}
	}
	benchEscapeIter = loopEscape
}
