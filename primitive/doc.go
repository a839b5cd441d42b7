// Package primitive provides containers specialised to numeric element
// types.
//
// # Overview
//
// Generic containers over `any` box every element into an interface value.
// The types in this package are instantiated with a concrete numeric type
// instead, so an [IntList] is backed by a plain []int and a [DoubleSet] by a
// map[float64]struct{}:
//
//	ages := primitive.NewIntList(2, 3, 2, 4, 1)
//	ages.Sum()                 // → 12
//	ages.Max()                 // → 4, true
//	ages.SummaryStatistics()   // count=5 sum=12 min=1 max=4 avg=2.4
//
// # Types
//
//   - [ArrayList] (aliases [IntList], [LongList], [DoubleList]): an ordered
//     list with arithmetic helpers.
//   - [HashSet] (aliases [IntSet], [LongSet], [DoubleSet]): a set of
//     distinct numbers.
//   - [ObjectLongMap]: a map from any comparable key to an int64 counter,
//     used for "sum by" style aggregations.
//
// Equality between two containers is value-based: [ArrayList.Equal] compares
// element by element, [HashSet.Equal] compares membership.
package primitive
