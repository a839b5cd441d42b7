package collections_test

import (
	"errors"
	"testing"

	"github.com/hasbyte1/go-collections-kata/collections"
)

func animalMap() *collections.UnifiedMap[string, string] {
	return collections.MapOf(
		collections.PairOf("Animal", "Cat"),
		collections.PairOf("Bird", "Duck"),
		collections.PairOf("Insect", "Cricket"),
	)
}

func TestMapOf(t *testing.T) {
	m := animalMap()
	if m.Size() != 3 {
		t.Fatalf("Size = %d; want 3", m.Size())
	}
	if v, ok := m.Get("Bird"); !ok || v != "Duck" {
		t.Fatalf("Get(Bird) = %q, %v; want Duck, true", v, ok)
	}
	if _, ok := m.Get("Fish"); ok {
		t.Fatal("Get(Fish) should be absent")
	}
	if got := m.String(); got != "{Animal=Cat, Bird=Duck, Insect=Cricket}" {
		t.Fatalf("String = %q", got)
	}
}

func TestMapLaterPairWins(t *testing.T) {
	m := collections.MapOf(collections.PairOf("a", 1), collections.PairOf("a", 2))
	if v, _ := m.Get("a"); v != 2 {
		t.Fatalf("Get(a) = %d; want 2", v)
	}
}

func TestMapFromKeysValues(t *testing.T) {
	m, err := collections.MapFromKeysValues([]string{"a", "b"}, []int{1, 2})
	if err != nil {
		t.Fatal(err)
	}
	if v, _ := m.Get("b"); v != 2 {
		t.Fatalf("Get(b) = %d; want 2", v)
	}
	if _, err := collections.MapFromKeysValues([]string{"a"}, []int{}); !errors.Is(err, collections.ErrMismatchedLengths) {
		t.Fatalf("err = %v; want ErrMismatchedLengths", err)
	}
}

func TestMapMutation(t *testing.T) {
	m := animalMap()
	if err := m.Put("Fish", "Dolphin"); err != nil {
		t.Fatal(err)
	}
	if !m.ContainsKey("Fish") {
		t.Fatal("Put should add the key")
	}
	if err := m.RemoveKey("Fish"); err != nil || m.ContainsKey("Fish") {
		t.Fatal("RemoveKey should drop the key")
	}
	if err := m.RemoveKey("Nope"); err != nil {
		t.Fatal("RemoveKey on an absent key should not fail")
	}
	if err := m.Clear(); err != nil || m.NotEmpty() {
		t.Fatal("Clear should empty the map")
	}
}

func TestGetIfAbsent(t *testing.T) {
	m := animalMap()
	if got := m.GetIfAbsent("Fish", func() string { return "none" }); got != "none" {
		t.Fatalf("GetIfAbsent = %q; want none", got)
	}
	if m.ContainsKey("Fish") {
		t.Fatal("GetIfAbsent must not store")
	}

	calls := 0
	fn := func() string { calls++; return "Salmon" }
	m.GetIfAbsentPut("Fish", fn)
	m.GetIfAbsentPut("Fish", fn)
	if calls != 1 {
		t.Fatalf("factory called %d times; want 1", calls)
	}
	if v, _ := m.Get("Fish"); v != "Salmon" {
		t.Fatalf("Get(Fish) = %q; want Salmon", v)
	}
}

func TestMapSelectReject(t *testing.T) {
	m := collections.MapOf(collections.PairOf("a", 1), collections.PairOf("b", 2), collections.PairOf("c", 3))
	odd := func(_ string, v int) bool { return v%2 == 1 }
	if got := m.Select(odd).String(); got != "{a=1, c=3}" {
		t.Fatalf("Select = %s", got)
	}
	if got := m.Reject(odd).String(); got != "{b=2}" {
		t.Fatalf("Reject = %s", got)
	}
}

func TestAdaptMapShares(t *testing.T) {
	raw := map[string]int{"a": 1}
	m := collections.AdaptMap(raw)
	_ = m.Put("b", 2)
	if raw["b"] != 2 {
		t.Fatal("AdaptMap should write through")
	}
	cp := m.ToMap()
	cp["c"] = 3
	if m.ContainsKey("c") {
		t.Fatal("ToMap should copy")
	}
}

func TestUnmodifiableMap(t *testing.T) {
	m := animalMap()
	view := m.AsUnmodifiable()
	for op, err := range map[string]error{
		"Put":       view.Put("Fish", "Dolphin"),
		"RemoveKey": view.RemoveKey("Animal"),
		"Clear":     view.Clear(),
	} {
		if !errors.Is(err, collections.ErrUnsupportedOperation) {
			t.Fatalf("%s err = %v; want ErrUnsupportedOperation", op, err)
		}
	}
	if view.Size() != 3 {
		t.Fatalf("view.Size() = %d; want 3", view.Size())
	}
}

func TestImmutableMap(t *testing.T) {
	im := animalMap().ToImmutable()
	grown := im.NewWithKeyValue("Fish", "Dolphin")
	if im.ContainsKey("Fish") || !grown.ContainsKey("Fish") {
		t.Fatal("NewWithKeyValue should leave the receiver unchanged")
	}
	if shrunk := im.NewWithoutKey("Animal"); shrunk.Size() != 2 || im.Size() != 3 {
		t.Fatal("NewWithoutKey mismatch")
	}
	if err := im.CastToMap().Put("Fish", "Dolphin"); !errors.Is(err, collections.ErrUnsupportedOperation) {
		t.Fatalf("CastToMap().Put err = %v", err)
	}
	mutable := im.ToMutable()
	_ = mutable.Put("Fish", "Dolphin")
	if im.ContainsKey("Fish") {
		t.Fatal("ToMutable should copy")
	}
	if !collections.MapsEqual[string, string](im, animalMap()) {
		t.Fatal("MapsEqual should compare immutable and mutable maps by content")
	}
}

func TestMapZeroValue(t *testing.T) {
	var m collections.UnifiedMap[string, int]
	if _, ok := m.Get("a"); ok || !m.IsEmpty() {
		t.Fatal("zero map should be empty")
	}
	if err := m.Put("a", 1); err != nil {
		t.Fatalf("Put: %v", err)
	}
	m.WithKeyValue("b", 2)
	if got := m.GetIfAbsentPut("c", func() int { return 3 }); got != 3 {
		t.Fatalf("GetIfAbsentPut = %d; want 3", got)
	}
	if m.Size() != 3 {
		t.Fatalf("Size = %d; want 3", m.Size())
	}

	var z collections.UnifiedMap[string, int]
	if im := z.ToImmutable().NewWithKeyValue("x", 1); im.Size() != 1 {
		t.Fatalf("NewWithKeyValue on zero map size = %d; want 1", im.Size())
	}
}
