package collections

import (
	"fmt"
	"slices"
	"strings"
)

// sortedByString orders items by their fmt representation so that unordered
// containers print deterministically.
func sortedByString[T any](items []T) []T {
	keys := make([]string, len(items))
	idx := make([]int, len(items))
	for i, item := range items {
		keys[i] = fmt.Sprint(item)
		idx[i] = i
	}
	slices.SortStableFunc(idx, func(a, b int) int { return strings.Compare(keys[a], keys[b]) })
	out := make([]T, len(items))
	for i, j := range idx {
		out[i] = items[j]
	}
	return out
}
