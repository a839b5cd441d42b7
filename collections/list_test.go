package collections_test

import (
	"cmp"
	"errors"
	"reflect"
	"testing"

	"github.com/hasbyte1/go-collections-kata/collections"
)

// ─────────────────────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────────────────────

func ints(ns ...int) *collections.FastList[int] { return collections.ListOf(ns...) }

func isEven(n int) bool { return n%2 == 0 }

func assertSlice[T comparable](t *testing.T, got, want []T) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("slice length: got %d want %d  (got=%v want=%v)", len(got), len(want), got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("index %d: got %v want %v", i, got[i], want[i])
		}
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

func TestListOf(t *testing.T) {
	assertSlice(t, ints(1, 2, 3).ToSlice(), []int{1, 2, 3})
}

func TestListFromCopies(t *testing.T) {
	s := []string{"a", "b", "c"}
	l := collections.ListFrom(s)
	s[0] = "z"
	if v, _ := l.GetFirst(); v != "a" {
		t.Fatal("ListFrom did not copy the slice")
	}
}

func TestAdaptListShares(t *testing.T) {
	s := []string{"a", "b", "c"}
	l := collections.AdaptList(s)
	if err := l.Set(0, "z"); err != nil {
		t.Fatal(err)
	}
	if s[0] != "z" {
		t.Fatal("AdaptList should write through to the adapted slice")
	}
	if collections.AdaptList[int](nil).Size() != 0 {
		t.Fatal("AdaptList(nil) should be empty")
	}
}

func TestNewList(t *testing.T) {
	l := collections.NewList[int]()
	if !l.IsEmpty() || l.NotEmpty() || l.Size() != 0 {
		t.Fatal("NewList should be empty")
	}
	if got := l.String(); got != "[]" {
		t.Fatalf("String() = %q; want []", got)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

func TestGet(t *testing.T) {
	l := ints(10, 20, 30)
	if v, ok := l.Get(1); !ok || v != 20 {
		t.Fatalf("Get(1) = %v, %v; want 20, true", v, ok)
	}
	if _, ok := l.Get(99); ok {
		t.Fatal("Get out of range should return false")
	}
	if _, ok := l.Get(-1); ok {
		t.Fatal("Get negative index should return false")
	}
	if v, ok := l.GetLast(); !ok || v != 30 {
		t.Fatalf("GetLast = %v, %v; want 30, true", v, ok)
	}
	if _, ok := collections.NewList[int]().GetLast(); ok {
		t.Fatal("GetLast on empty should return false")
	}
}

func TestToJSON(t *testing.T) {
	b, err := ints(1, 2, 3).ToJSON()
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "[1,2,3]" {
		t.Fatalf("ToJSON = %s; want [1,2,3]", b)
	}
}

func TestString(t *testing.T) {
	if s := collections.ListOf("Cat", "Dog").String(); s != "[Cat, Dog]" {
		t.Fatalf("String() = %q; want [Cat, Dog]", s)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Mutators
// ─────────────────────────────────────────────────────────────────────────────

func TestAddAndWith(t *testing.T) {
	l := ints(1)
	if err := l.Add(2, 3); err != nil {
		t.Fatal(err)
	}
	l.With(4).With(5)
	if err := l.AddAll(ints(6, 7)); err != nil {
		t.Fatal(err)
	}
	assertSlice(t, l.ToSlice(), []int{1, 2, 3, 4, 5, 6, 7})
}

func TestSetOutOfRange(t *testing.T) {
	err := ints(1).Set(5, 9)
	if !errors.Is(err, collections.ErrIndexOutOfRange) {
		t.Fatalf("Set(5) err = %v; want ErrIndexOutOfRange", err)
	}
}

func TestRemoveIndex(t *testing.T) {
	l := ints(1, 2, 3)
	v, err := l.RemoveIndex(1)
	if err != nil || v != 2 {
		t.Fatalf("RemoveIndex(1) = %v, %v; want 2, nil", v, err)
	}
	assertSlice(t, l.ToSlice(), []int{1, 3})

	if _, err := l.RemoveIndex(9); !errors.Is(err, collections.ErrIndexOutOfRange) {
		t.Fatalf("RemoveIndex(9) err = %v; want ErrIndexOutOfRange", err)
	}
}

func TestRemoveIf(t *testing.T) {
	l := ints(1, 2, 3, 4)
	if !l.RemoveIf(isEven) {
		t.Fatal("RemoveIf should report a removal")
	}
	assertSlice(t, l.ToSlice(), []int{1, 3})
	if l.RemoveIf(isEven) {
		t.Fatal("RemoveIf with nothing to remove should be false")
	}
}

func TestClear(t *testing.T) {
	l := ints(1, 2, 3)
	if err := l.Clear(); err != nil {
		t.Fatal(err)
	}
	if !l.IsEmpty() {
		t.Fatal("Clear should empty the list")
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Queries
// ─────────────────────────────────────────────────────────────────────────────

func TestSelectReject(t *testing.T) {
	l := ints(1, 2, 3, 4, 5)
	assertSlice(t, l.Select(isEven).ToSlice(), []int{2, 4})
	assertSlice(t, l.Reject(isEven).ToSlice(), []int{1, 3, 5})
	assertSlice(t, l.ToSlice(), []int{1, 2, 3, 4, 5})
}

func TestPartition(t *testing.T) {
	p := ints(1, 2, 3, 4, 5).Partition(isEven)
	assertSlice(t, p.Selected().ToSlice(), []int{2, 4})
	assertSlice(t, p.Rejected().ToSlice(), []int{1, 3, 5})
}

func TestCountDetectSatisfy(t *testing.T) {
	l := ints(1, 2, 3, 4, 5)

	if got := l.Count(isEven); got != 2 {
		t.Fatalf("Count = %d; want 2", got)
	}
	if v, ok := l.Detect(isEven); !ok || v != 2 {
		t.Fatalf("Detect = %v, %v; want 2, true", v, ok)
	}
	if _, ok := l.Detect(func(n int) bool { return n > 100 }); ok {
		t.Fatal("Detect with no match should return false")
	}
	if got := l.DetectIndex(isEven); got != 1 {
		t.Fatalf("DetectIndex = %d; want 1", got)
	}
	if !l.AnySatisfy(isEven) {
		t.Fatal("AnySatisfy should be true")
	}
	if l.AllSatisfy(isEven) {
		t.Fatal("AllSatisfy should be false")
	}
	if l.NoneSatisfy(isEven) {
		t.Fatal("NoneSatisfy should be false")
	}
	if !collections.NewList[int]().AllSatisfy(isEven) {
		t.Fatal("AllSatisfy on empty should be true")
	}
}

func TestTakeDrop(t *testing.T) {
	l := ints(1, 2, 3, 4, 5)
	assertSlice(t, l.Take(2).ToSlice(), []int{1, 2})
	assertSlice(t, l.Take(99).ToSlice(), []int{1, 2, 3, 4, 5})
	assertSlice(t, l.Take(-1).ToSlice(), []int{})
	assertSlice(t, l.Drop(3).ToSlice(), []int{4, 5})
	assertSlice(t, l.Drop(99).ToSlice(), []int{})
}

func TestSorting(t *testing.T) {
	l := ints(5, 3, 1, 4, 2)
	assertSlice(t, l.ToSorted(cmp.Compare[int]).ToSlice(), []int{1, 2, 3, 4, 5})
	assertSlice(t, l.ToSlice(), []int{5, 3, 1, 4, 2})
	assertSlice(t, l.ToReversed().ToSlice(), []int{2, 4, 1, 3, 5})

	l.SortThis(func(a, b int) int { return cmp.Compare(b, a) })
	assertSlice(t, l.ToSlice(), []int{5, 4, 3, 2, 1})
}

func TestTryEachStopsAtFirstError(t *testing.T) {
	boom := errors.New("boom")
	var seen []int
	err := ints(1, 2, 3).TryEach(func(n int) error {
		seen = append(seen, n)
		if n == 2 {
			return boom
		}
		return nil
	})
	if !errors.Is(err, boom) {
		t.Fatalf("TryEach err = %v; want boom", err)
	}
	assertSlice(t, seen, []int{1, 2})
}

func TestEachWithIndex(t *testing.T) {
	sum := 0
	ints(10, 20, 30).EachWithIndex(func(n, i int) { sum += n * i })
	if sum != 80 {
		t.Fatalf("EachWithIndex sum = %d; want 80", sum)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Unmodifiable and immutable
// ─────────────────────────────────────────────────────────────────────────────

func TestAsUnmodifiableReadsThrough(t *testing.T) {
	l := ints(1, 2)
	view := l.AsUnmodifiable()
	l.With(3)
	if view.Size() != 3 {
		t.Fatalf("view.Size() = %d; want 3", view.Size())
	}
}

func TestAsUnmodifiableRejectsMutation(t *testing.T) {
	view := ints(1, 2).AsUnmodifiable()

	checks := map[string]error{
		"Add":   view.Add(3),
		"Set":   view.Set(0, 9),
		"Clear": view.Clear(),
	}
	_, checks["RemoveIndex"] = view.RemoveIndex(0)

	for op, err := range checks {
		if !errors.Is(err, collections.ErrUnsupportedOperation) {
			t.Fatalf("%s err = %v; want ErrUnsupportedOperation", op, err)
		}
	}
	assertSlice(t, view.ToSlice(), []int{1, 2})
}

func TestAsUnmodifiableHidesBackingList(t *testing.T) {
	l := ints(1, 2)
	view := l.AsUnmodifiable()

	for _, v := range []any{view, collections.SetOf(1).AsUnmodifiable(), collections.NewMap[int, int]().AsUnmodifiable()} {
		typ := reflect.TypeOf(v).Elem()
		for i := range typ.NumField() {
			if typ.Field(i).IsExported() {
				t.Fatalf("%s exposes field %s", typ.Name(), typ.Field(i).Name)
			}
		}
	}

	s := view.ToSlice()
	s[0] = 9
	assertSlice(t, l.ToSlice(), []int{1, 2})
}

func TestUnmodifiableZeroValue(t *testing.T) {
	var list collections.UnmodifiableList[int]
	if !list.IsEmpty() || list.String() != "[]" {
		t.Fatalf("zero UnmodifiableList = %v; want []", list.String())
	}
	if _, ok := list.GetFirst(); ok {
		t.Fatal("zero UnmodifiableList GetFirst should report false")
	}
	var set collections.UnmodifiableSet[int]
	if set.Contains(1) || set.Size() != 0 {
		t.Fatal("zero UnmodifiableSet should be empty")
	}
	var m collections.UnmodifiableMap[string, int]
	if m.ContainsKey("a") || len(m.KeysView()) != 0 {
		t.Fatal("zero UnmodifiableMap should be empty")
	}
	if err := list.Add(1); !errors.Is(err, collections.ErrUnsupportedOperation) {
		t.Fatalf("Add err = %v; want ErrUnsupportedOperation", err)
	}
}

func TestImmutableList(t *testing.T) {
	l := ints(1, 2, 3)
	im := l.ToImmutable()
	l.With(4)
	if im.Size() != 3 {
		t.Fatal("ToImmutable should snapshot the list")
	}

	grown := im.NewWith(4, 5)
	assertSlice(t, grown.ToSlice(), []int{1, 2, 3, 4, 5})
	assertSlice(t, im.ToSlice(), []int{1, 2, 3})
	assertSlice(t, im.NewWithoutIndex(0).ToSlice(), []int{2, 3})
	if im.NewWithoutIndex(10) != im {
		t.Fatal("NewWithoutIndex out of range should return the receiver")
	}
	assertSlice(t, im.Select(isEven).ToSlice(), []int{2})
	assertSlice(t, im.Reject(isEven).ToSlice(), []int{1, 3})

	cast := im.CastToList()
	if err := cast.Add(9); !errors.Is(err, collections.ErrUnsupportedOperation) {
		t.Fatalf("CastToList().Add err = %v; want ErrUnsupportedOperation", err)
	}

	mutable := im.ToList()
	if err := mutable.Add(9); err != nil {
		t.Fatal(err)
	}
	if im.Size() != 3 {
		t.Fatal("ToList should copy")
	}
}
