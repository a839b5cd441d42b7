package block

import "github.com/hasbyte1/go-collections-kata/collections"

// Identity returns its argument.
func Identity[T any](v T) T { return v }

// FixedValue returns a function that ignores its argument and returns v.
func FixedValue[T, V any](v V) func(T) V {
	return func(T) V { return v }
}

// IfElse returns a function applying then to arguments satisfying pred and
// otherwise to arguments that do not.
func IfElse[T, V any](pred func(T) bool, then, otherwise func(T) V) func(T) V {
	return func(v T) V {
		if pred(v) {
			return then(v)
		}
		return otherwise(v)
	}
}

// Compose returns g∘f.
func Compose[A, B, C any](f func(A) B, g func(B) C) func(A) C {
	return func(a A) C { return g(f(a)) }
}

// SwappedPair swaps the halves of a pair.
func SwappedPair[A, B any](p collections.Pair[A, B]) collections.Pair[B, A] {
	return p.Swap()
}

// FirstOfPair returns the first half of a pair.
func FirstOfPair[A, B any](p collections.Pair[A, B]) A { return p.First }

// SecondOfPair returns the second half of a pair.
func SecondOfPair[A, B any](p collections.Pair[A, B]) B { return p.Second }
