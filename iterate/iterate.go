package iterate

import (
	"slices"

	"github.com/hasbyte1/go-collections-kata/collections"
)

// ─────────────────────────────────────────────────────────────────────────────
// Filtering & testing
// ─────────────────────────────────────────────────────────────────────────────

// Select returns the elements satisfying fn, in order.
func Select[T any](items []T, fn func(T) bool) []T {
	out := make([]T, 0)
	for _, item := range items {
		if fn(item) {
			out = append(out, item)
		}
	}
	return out
}

// Reject returns the elements that do not satisfy fn, in order.
func Reject[T any](items []T, fn func(T) bool) []T {
	return Select(items, func(item T) bool { return !fn(item) })
}

// Partition splits items into those satisfying fn and those that do not.
func Partition[T any](items []T, fn func(T) bool) (selected, rejected []T) {
	selected = make([]T, 0)
	rejected = make([]T, 0)
	for _, item := range items {
		if fn(item) {
			selected = append(selected, item)
		} else {
			rejected = append(rejected, item)
		}
	}
	return selected, rejected
}

// Detect returns the first element satisfying fn.
// Returns the zero value and false when nothing matches.
func Detect[T any](items []T, fn func(T) bool) (T, bool) {
	if i := slices.IndexFunc(items, fn); i >= 0 {
		return items[i], true
	}
	var zero T
	return zero, false
}

// DetectIndex returns the index of the first element satisfying fn, or -1.
func DetectIndex[T any](items []T, fn func(T) bool) int {
	return slices.IndexFunc(items, fn)
}

// Count returns the number of elements satisfying fn.
func Count[T any](items []T, fn func(T) bool) int {
	n := 0
	for _, item := range items {
		if fn(item) {
			n++
		}
	}
	return n
}

// AnySatisfy reports whether at least one element satisfies fn.
func AnySatisfy[T any](items []T, fn func(T) bool) bool {
	return slices.ContainsFunc(items, fn)
}

// AllSatisfy reports whether every element satisfies fn. It is true for an
// empty slice.
func AllSatisfy[T any](items []T, fn func(T) bool) bool {
	for _, item := range items {
		if !fn(item) {
			return false
		}
	}
	return true
}

// NoneSatisfy reports whether no element satisfies fn.
func NoneSatisfy[T any](items []T, fn func(T) bool) bool {
	return !AnySatisfy(items, fn)
}

// ─────────────────────────────────────────────────────────────────────────────
// Transformation
// ─────────────────────────────────────────────────────────────────────────────

// Collect applies fn to every element.
func Collect[T, V any](items []T, fn func(T) V) []V {
	out := make([]V, len(items))
	for i, item := range items {
		out[i] = fn(item)
	}
	return out
}

// FlatCollect applies fn to every element and concatenates the results.
func FlatCollect[T, V any](items []T, fn func(T) []V) []V {
	out := make([]V, 0, len(items))
	for _, item := range items {
		out = append(out, fn(item)...)
	}
	return out
}

// InjectInto folds items into a single value, starting from initial.
func InjectInto[T, V any](items []T, initial V, fn func(V, T) V) V {
	result := initial
	for _, item := range items {
		result = fn(result, item)
	}
	return result
}

// Distinct returns items without duplicates, keeping first occurrences.
func Distinct[T comparable](items []T) []T {
	seen := make(map[T]struct{}, len(items))
	out := make([]T, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item]; !ok {
			seen[item] = struct{}{}
			out = append(out, item)
		}
	}
	return out
}

// Chunk splits items into consecutive slices of at most size elements.
// A non-positive size returns nil.
func Chunk[T any](items []T, size int) [][]T {
	if size <= 0 {
		return nil
	}
	out := make([][]T, 0, (len(items)+size-1)/size)
	for chunk := range slices.Chunk(items, size) {
		out = append(out, slices.Clone(chunk))
	}
	return out
}

// Zip pairs the elements of a and b by position and stops at the shorter.
func Zip[A, B any](a []A, b []B) []collections.Pair[A, B] {
	n := min(len(a), len(b))
	out := make([]collections.Pair[A, B], n)
	for i := range n {
		out[i] = collections.PairOf(a[i], b[i])
	}
	return out
}

// Reverse returns a reversed copy of items.
func Reverse[T any](items []T) []T {
	out := slices.Clone(items)
	slices.Reverse(out)
	if out == nil {
		return []T{}
	}
	return out
}

// SortBy returns a copy of items stably sorted by cmp.
func SortBy[T any](items []T, cmp func(a, b T) int) []T {
	out := slices.Clone(items)
	slices.SortStableFunc(out, cmp)
	if out == nil {
		return []T{}
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Grouping & aggregation
// ─────────────────────────────────────────────────────────────────────────────

// GroupBy groups items by the key fn extracts. Each group keeps input order.
func GroupBy[T any, K comparable](items []T, fn func(T) K) map[K][]T {
	groups := make(map[K][]T)
	for _, item := range items {
		k := fn(item)
		groups[k] = append(groups[k], item)
	}
	return groups
}

// CountBy counts items by the key fn extracts.
func CountBy[T any, K comparable](items []T, fn func(T) K) map[K]int {
	counts := make(map[K]int)
	for _, item := range items {
		counts[fn(item)]++
	}
	return counts
}

// SumOfInt returns the sum of fn over items, widened to int64.
func SumOfInt[T any](items []T, fn func(T) int) int64 {
	var total int64
	for _, item := range items {
		total += int64(fn(item))
	}
	return total
}
