// Package block builds the small functions that collection operations take as
// arguments: predicates for Select and Detect, functions for Collect, and
// procedures for Each and TryEach.
//
//	collections.ListOf(1, 2, 3, 4, 5).Select(block.GreaterThan(3)) // [4, 5]
//	collections.ListOf(1, 2, 3, 4, 5).Count(block.IsEven[int])     // 2
package block

import (
	"cmp"
	"slices"

	"golang.org/x/exp/constraints"
)

// GreaterThan returns a predicate reporting whether its argument is > bound.
func GreaterThan[T cmp.Ordered](bound T) func(T) bool {
	return func(v T) bool { return v > bound }
}

// GreaterThanOrEqual returns a predicate reporting whether its argument is
// >= bound.
func GreaterThanOrEqual[T cmp.Ordered](bound T) func(T) bool {
	return func(v T) bool { return v >= bound }
}

// LessThan returns a predicate reporting whether its argument is < bound.
func LessThan[T cmp.Ordered](bound T) func(T) bool {
	return func(v T) bool { return v < bound }
}

// LessThanOrEqual returns a predicate reporting whether its argument is
// <= bound.
func LessThanOrEqual[T cmp.Ordered](bound T) func(T) bool {
	return func(v T) bool { return v <= bound }
}

// Between returns a predicate reporting whether lo <= v <= hi.
func Between[T cmp.Ordered](lo, hi T) func(T) bool {
	return func(v T) bool { return v >= lo && v <= hi }
}

// Equal returns a predicate reporting whether its argument equals want.
func Equal[T comparable](want T) func(T) bool {
	return func(v T) bool { return v == want }
}

// NotEqual returns a predicate reporting whether its argument differs from
// want.
func NotEqual[T comparable](want T) func(T) bool {
	return func(v T) bool { return v != want }
}

// In returns a predicate reporting whether its argument is one of values.
func In[T comparable](values ...T) func(T) bool {
	set := make(map[T]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return func(v T) bool {
		_, ok := set[v]
		return ok
	}
}

// NotIn returns a predicate reporting whether its argument is none of values.
func NotIn[T comparable](values ...T) func(T) bool {
	return Not(In(values...))
}

// Not negates fn.
func Not[T any](fn func(T) bool) func(T) bool {
	return func(v T) bool { return !fn(v) }
}

// And returns a predicate that holds when every fn holds. With no fns it
// always holds.
func And[T any](fns ...func(T) bool) func(T) bool {
	return func(v T) bool {
		return !slices.ContainsFunc(fns, func(fn func(T) bool) bool { return !fn(v) })
	}
}

// Or returns a predicate that holds when at least one fn holds. With no fns
// it never holds.
func Or[T any](fns ...func(T) bool) func(T) bool {
	return func(v T) bool {
		return slices.ContainsFunc(fns, func(fn func(T) bool) bool { return fn(v) })
	}
}

// IsEven reports whether n is even.
func IsEven[T constraints.Integer](n T) bool { return n%2 == 0 }

// IsOdd reports whether n is odd.
func IsOdd[T constraints.Integer](n T) bool { return n%2 != 0 }

// AlwaysTrue holds for every argument.
func AlwaysTrue[T any](T) bool { return true }

// AlwaysFalse holds for no argument.
func AlwaysFalse[T any](T) bool { return false }
