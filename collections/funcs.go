package collections

// This file contains package-level generic functions for operations whose
// result element type differs from the input's.
//
// Go generics do not allow methods to introduce their own type parameters, so
// these operations are stand-alone functions accepting any RichIterable.
// They compose with method chains:
//
//	names := collections.Collect(
//	    people.Select(func(p Person) bool { return p.HasPet(Cat) }),
//	    Person.FirstName,
//	)

import (
	"cmp"
	"slices"

	"github.com/hasbyte1/go-collections-kata/primitive"
)

// ─────────────────────────────────────────────────────────────────────────────
// Transformation
// ─────────────────────────────────────────────────────────────────────────────

// Collect applies fn to every element and returns the results as a list, in
// iteration order.
//
//	strs := collections.Collect(collections.ListOf(1, 2, 3), strconv.Itoa)
//	// → [1, 2, 3] as strings
func Collect[T, V any](it RichIterable[T], fn func(T) V) *FastList[V] {
	out := make([]V, 0, it.Size())
	for item := range it.All() {
		out = append(out, fn(item))
	}
	return AdaptList(out)
}

// CollectIf applies fn to the elements satisfying pred.
func CollectIf[T, V any](it RichIterable[T], pred func(T) bool, fn func(T) V) *FastList[V] {
	out := make([]V, 0)
	for item := range it.All() {
		if pred(item) {
			out = append(out, fn(item))
		}
	}
	return AdaptList(out)
}

// FlatCollect applies fn to every element and concatenates the resulting
// slices into a single list.
//
//	pets := collections.FlatCollect(people, func(p *Person) []*Pet { return p.Pets })
func FlatCollect[T, V any](it RichIterable[T], fn func(T) []V) *FastList[V] {
	out := make([]V, 0, it.Size())
	for item := range it.All() {
		out = append(out, fn(item)...)
	}
	return AdaptList(out)
}

// InjectInto folds the elements into a single value, starting from initial.
//
//	total := collections.InjectInto(numbers, 0, func(acc, n int) int { return acc + n })
func InjectInto[T, V any](it RichIterable[T], initial V, fn func(V, T) V) V {
	result := initial
	for item := range it.All() {
		result = fn(result, item)
	}
	return result
}

// Zip pairs the elements of a and b by position and stops at the shorter.
func Zip[A, B any](a ListIterable[A], b ListIterable[B]) *FastList[Pair[A, B]] {
	n := min(a.Size(), b.Size())
	out := make([]Pair[A, B], n)
	for i := range n {
		first, _ := a.Get(i)
		second, _ := b.Get(i)
		out[i] = PairOf(first, second)
	}
	return AdaptList(out)
}

// Distinct returns the elements of it without duplicates, keeping the first
// occurrence of each in iteration order.
func Distinct[T comparable](it RichIterable[T]) *FastList[T] {
	seen := make(map[T]struct{}, it.Size())
	out := make([]T, 0, it.Size())
	for item := range it.All() {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return AdaptList(out)
}

// ToSortedList returns the elements of it as an ascending list.
func ToSortedList[T cmp.Ordered](it RichIterable[T]) *FastList[T] {
	out := it.ToSlice()
	slices.Sort(out)
	return AdaptList(out)
}

// ─────────────────────────────────────────────────────────────────────────────
// Conversion
// ─────────────────────────────────────────────────────────────────────────────

// ToSet returns the distinct elements of it.
func ToSet[T comparable](it RichIterable[T]) *UnifiedSet[T] {
	out := NewSet[T]()
	for item := range it.All() {
		out.items[item] = struct{}{}
	}
	return out
}

// ToBag returns a bag counting the occurrences of each element of it.
func ToBag[T comparable](it RichIterable[T]) *HashBag[T] {
	out := NewBag[T]()
	for item := range it.All() {
		out.Add(item)
	}
	return out
}

// CountBy returns a bag counting the elements of it by the value fn extracts.
func CountBy[T any, V comparable](it RichIterable[T], fn func(T) V) *HashBag[V] {
	out := NewBag[V]()
	for item := range it.All() {
		out.Add(fn(item))
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Grouping
// ─────────────────────────────────────────────────────────────────────────────

// GroupBy indexes the elements of it by the key fn extracts. Values under
// each key keep iteration order; keys keep first-seen order.
//
//	byParity := collections.GroupBy(numbers, func(n int) string {
//	    if n%2 == 0 { return "Even" }
//	    return "Odd"
//	})
func GroupBy[T any, K comparable](it RichIterable[T], fn func(T) K) *ListMultimap[K, T] {
	return GroupByInto(it, fn, NewListMultimap[K, T]())
}

// GroupByInto is [GroupBy] with a caller-supplied target, e.g. a
// [SetMultimap] to drop duplicate values or a [BagMultimap] to count them.
// It returns target.
func GroupByInto[T any, K comparable, M MutableMultimap[K, T]](it RichIterable[T], fn func(T) K, target M) M {
	for item := range it.All() {
		target.Put(fn(item), item)
	}
	return target
}

// GroupByEach indexes each element of it under every key fn returns.
func GroupByEach[T any, K comparable](it RichIterable[T], fn func(T) []K) *ListMultimap[K, T] {
	return GroupByEachInto(it, fn, NewListMultimap[K, T]())
}

// GroupByEachInto is [GroupByEach] with a caller-supplied target.
// It returns target.
func GroupByEachInto[T any, K comparable, M MutableMultimap[K, T]](it RichIterable[T], fn func(T) []K, target M) M {
	for item := range it.All() {
		for _, key := range fn(item) {
			target.Put(key, item)
		}
	}
	return target
}

// ─────────────────────────────────────────────────────────────────────────────
// Aggregation
// ─────────────────────────────────────────────────────────────────────────────

// SumOfInt returns the sum of fn over the elements, widened to int64.
func SumOfInt[T any](it RichIterable[T], fn func(T) int) int64 {
	var sum int64
	for item := range it.All() {
		sum += int64(fn(item))
	}
	return sum
}

// SumOfFloat returns the sum of fn over the elements.
func SumOfFloat[T any](it RichIterable[T], fn func(T) float64) float64 {
	var sum float64
	for item := range it.All() {
		sum += fn(item)
	}
	return sum
}

// SumByInt groups the elements by groupBy and sums fn within each group.
//
//	sums := collections.SumByInt(numbers, parity, func(n int) int { return n })
//	// → {Even: 6, Odd: 9} for 1..5
func SumByInt[T any, K comparable](it RichIterable[T], groupBy func(T) K, fn func(T) int) *primitive.ObjectLongMap[K] {
	out := primitive.NewObjectLongMap[K]()
	for item := range it.All() {
		out.AddToValue(groupBy(item), int64(fn(item)))
	}
	return out
}

// MinBy returns the element with the smallest value of fn. The first such
// element wins ties. Returns [ErrEmptyCollection] when it is empty.
func MinBy[T any, V cmp.Ordered](it RichIterable[T], fn func(T) V) (T, error) {
	return extremeBy(it, fn, -1)
}

// MaxBy returns the element with the largest value of fn. The first such
// element wins ties. Returns [ErrEmptyCollection] when it is empty.
func MaxBy[T any, V cmp.Ordered](it RichIterable[T], fn func(T) V) (T, error) {
	return extremeBy(it, fn, 1)
}

func extremeBy[T any, V cmp.Ordered](it RichIterable[T], fn func(T) V, sign int) (T, error) {
	var (
		best    T
		bestVal V
		found   bool
	)
	for item := range it.All() {
		v := fn(item)
		if !found || cmp.Compare(v, bestVal) == sign {
			best, bestVal, found = item, v, true
		}
	}
	if !found {
		return best, ErrEmptyCollection
	}
	return best, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Primitive specialisation
// ─────────────────────────────────────────────────────────────────────────────

// CollectInt maps every element to an int and returns a [primitive.IntList].
func CollectInt[T any](it RichIterable[T], fn func(T) int) *primitive.IntList {
	out := primitive.NewIntList()
	for item := range it.All() {
		out.Add(fn(item))
	}
	return out
}

// CollectDouble maps every element to a float64 and returns a
// [primitive.DoubleList].
func CollectDouble[T any](it RichIterable[T], fn func(T) float64) *primitive.DoubleList {
	out := primitive.NewDoubleList()
	for item := range it.All() {
		out.Add(fn(item))
	}
	return out
}

// CollectIntSet maps every element to an int and returns the distinct
// results as a [primitive.IntSet].
func CollectIntSet[T any](it RichIterable[T], fn func(T) int) *primitive.IntSet {
	out := primitive.NewIntSet()
	for item := range it.All() {
		out.Add(fn(item))
	}
	return out
}

// CollectDoubleSet maps every element to a float64 and returns the distinct
// results as a [primitive.DoubleSet].
func CollectDoubleSet[T any](it RichIterable[T], fn func(T) float64) *primitive.DoubleSet {
	out := primitive.NewDoubleSet()
	for item := range it.All() {
		out.Add(fn(item))
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Equality
// ─────────────────────────────────────────────────────────────────────────────

// ListsEqual reports whether a and b hold equal elements in the same order.
func ListsEqual[T comparable](a, b ListIterable[T]) bool {
	return slices.Equal(a.ToSlice(), b.ToSlice())
}

// EqualsSlice reports whether list holds exactly the elements of s, in order.
// It compares a list with a plain Go slice.
func EqualsSlice[T comparable](list ListIterable[T], s []T) bool {
	return slices.Equal(list.ToSlice(), s)
}

// MapsEqual reports whether a and b hold the same entries.
func MapsEqual[K, V comparable](a, b MapIterable[K, V]) bool {
	if a.Size() != b.Size() {
		return false
	}
	equal := true
	a.EachKeyValue(func(k K, v V) {
		if other, ok := b.Get(k); !ok || other != v {
			equal = false
		}
	})
	return equal
}
