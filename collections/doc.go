// Package collections provides rich, generic lists, sets, maps, bags and
// multimaps on top of Go's built-in slices and maps.
//
// # Overview
//
// The containers expose the same vocabulary everywhere: Select and Reject
// filter, Collect maps, Detect finds, Count counts, AnySatisfy/AllSatisfy/
// NoneSatisfy test, and GroupBy builds a one-to-many index:
//
//	numbers := collections.ListOf(1, 2, 3, 4, 5)
//	evens   := numbers.Select(func(n int) bool { return n%2 == 0 })   // [2, 4]
//	strs    := collections.Collect(numbers, strconv.Itoa)              // ["1", …, "5"]
//	parts   := numbers.Partition(func(n int) bool { return n%2 == 0 })
//	parts.Selected()                                                   // [2, 4]
//	parts.Rejected()                                                   // [1, 3, 5]
//
// # Containers
//
//   - [FastList]: a mutable, ordered list.
//   - [UnifiedSet]: a mutable set of comparable elements.
//   - [UnifiedMap]: a mutable map.
//   - [HashBag]: a multiset tracking an occurrence count per element.
//   - [ListMultimap], [SetMultimap], [BagMultimap]: one key, many values.
//
// # Mutable, unmodifiable and immutable
//
// Every mutable list, set and map can hand out an unmodifiable view
// (AsUnmodifiable) that reads through to the original but rejects every
// mutation with [ErrUnsupportedOperation]. ToImmutable takes a snapshot that
// has no mutators at all; its CastToList/CastToSet/CastToMap methods return
// a view typed as the mutable interface whose mutators fail the same way:
//
//	view := collections.ListOf("Cat", "Dog").AsUnmodifiable()
//	err  := view.Add("Tiger") // errors.Is(err, collections.ErrUnsupportedOperation)
//
// # Type-changing operations
//
// Go methods cannot introduce type parameters, so operations whose result
// element type differs from the receiver's are package-level functions
// accepting any [RichIterable]: [Collect], [FlatCollect], [GroupBy],
// [GroupByEach], [SumByInt], [CountBy], [ToBag], [ToSet], [Zip] and friends.
//
// # Interop
//
// [AdaptList], [AdaptSet] and [AdaptMap] wrap an existing slice or map
// without copying. ToSlice and ToMap go the other way and always copy.
package collections
