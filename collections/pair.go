package collections

import "fmt"

// Pair holds two values of possibly different types.
// It is the element type produced by [Zip] and accepted by [MapOf].
type Pair[A, B any] struct {
	First  A
	Second B
}

// PairOf creates a Pair.
func PairOf[A, B any](first A, second B) Pair[A, B] {
	return Pair[A, B]{First: first, Second: second}
}

// Swap returns a Pair with First and Second exchanged.
func (p Pair[A, B]) Swap() Pair[B, A] {
	return Pair[B, A]{First: p.Second, Second: p.First}
}

// String returns a human-readable representation: "first:second".
func (p Pair[A, B]) String() string {
	return fmt.Sprintf("%v:%v", p.First, p.Second)
}
