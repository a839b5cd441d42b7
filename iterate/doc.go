// Package iterate runs rich collection operations directly on plain Go
// slices, for code that already holds a []T and does not want to wrap it:
//
//	evens  := iterate.Select([]int{1, 2, 3, 4, 5}, block.IsEven[int])
//	names  := iterate.Collect(people, (*petkata.Person).FullName)
//	chunks := iterate.Chunk([]int{1, 2, 3, 4, 5}, 2) // → [[1 2] [3 4] [5]]
//
// Every function leaves its input unchanged and returns freshly allocated
// results; nil input is treated as empty.
package iterate
