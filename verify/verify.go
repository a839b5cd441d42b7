// Package verify holds test assertions for the containers in package
// collections. Every helper takes a testing.TB, marks itself as a helper,
// reports failures through testify and returns whether the check passed, so
// a test can stop early with require-style guards:
//
//	if !verify.ListsEqual(t, collections.ListOf(1, 2), got) {
//	    return
//	}
//
// Content mismatches print a go-cmp diff in (-want +got) form.
package verify

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/hasbyte1/go-collections-kata/collections"
)

// ListsEqual checks that got holds the elements of want in the same order.
// opts are passed through to go-cmp.
func ListsEqual[T any](t testing.TB, want, got collections.ListIterable[T], opts ...cmp.Option) bool {
	t.Helper()
	return diff(t, "lists differ", want.ToSlice(), got.ToSlice(), opts...)
}

// SetsEqual checks that want and got have the same members.
func SetsEqual[T comparable](t testing.TB, want, got collections.SetIterable[T]) bool {
	t.Helper()
	return diff(t, "sets differ", members(want), members(got))
}

// BagsEqual checks that want and got hold the same elements with the same
// counts.
func BagsEqual[T comparable](t testing.TB, want, got *collections.HashBag[T]) bool {
	t.Helper()
	return diff(t, "bags differ", occurrences(want), occurrences(got))
}

// MapsEqual checks that want and got hold the same entries.
func MapsEqual[K comparable, V any](t testing.TB, want, got collections.MapIterable[K, V], opts ...cmp.Option) bool {
	t.Helper()
	return diff(t, "maps differ", want.ToMap(), got.ToMap(), opts...)
}

// IterableSize checks that it has exactly size elements.
func IterableSize[T any](t testing.TB, size int, it collections.RichIterable[T]) bool {
	t.Helper()
	return assert.Equalf(t, size, it.Size(), "size of %s", it)
}

// Empty checks that it has no elements.
func Empty[T any](t testing.TB, it collections.RichIterable[T]) bool {
	t.Helper()
	return assert.Truef(t, it.IsEmpty(), "expected empty, got %s", it)
}

// NotEmpty checks that it has at least one element.
func NotEmpty[T any](t testing.TB, it collections.RichIterable[T]) bool {
	t.Helper()
	return assert.Truef(t, it.NotEmpty(), "expected a non-empty iterable")
}

// Contains checks that item is an element of it.
func Contains[T comparable](t testing.TB, item T, it collections.RichIterable[T]) bool {
	t.Helper()
	found := it.AnySatisfy(func(v T) bool { return v == item })
	return assert.Truef(t, found, "%v not found in %s", item, it)
}

// Unsupported checks that err reports a rejected mutation.
func Unsupported(t testing.TB, err error) bool {
	t.Helper()
	return assert.ErrorIs(t, err, collections.ErrUnsupportedOperation)
}

// InstanceOf checks that v has dynamic type T and returns it as a T.
func InstanceOf[T any](t testing.TB, v any) (T, bool) {
	t.Helper()
	got, ok := v.(T)
	if !ok {
		assert.Fail(t, fmt.Sprintf("expected instance of %v, got %T", reflect.TypeFor[T](), v))
	}
	return got, ok
}

// Throws checks that fn panics.
func Throws(t testing.TB, fn func()) bool {
	t.Helper()
	return assert.Panics(t, fn)
}

func diff(t testing.TB, msg string, want, got any, opts ...cmp.Option) bool {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		return assert.Fail(t, msg, "(-want +got):\n%s", d)
	}
	return true
}

func members[T comparable](s collections.SetIterable[T]) map[T]bool {
	out := make(map[T]bool, s.Size())
	s.Each(func(v T) { out[v] = true })
	return out
}

func occurrences[T comparable](b *collections.HashBag[T]) map[T]int {
	out := make(map[T]int, b.SizeDistinct())
	b.EachWithOccurrences(func(v T, n int) { out[v] = n })
	return out
}
