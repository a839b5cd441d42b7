package verify_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-collections-kata/collections"
	"github.com/hasbyte1/go-collections-kata/verify"
)

// recorder captures failures instead of failing the enclosing test.
type recorder struct {
	testing.TB
	failures []string
}

func (r *recorder) Errorf(format string, args ...any) {
	r.failures = append(r.failures, fmt.Sprintf(format, args...))
}

func record(t *testing.T) *recorder { return &recorder{TB: t} }

func TestListsEqual(t *testing.T) {
	r := record(t)
	assert.True(t, verify.ListsEqual[int](r, collections.ListOf(1, 2), collections.ImmutableListOf(1, 2)))
	assert.False(t, verify.ListsEqual[int](r, collections.ListOf(1, 2), collections.ListOf(2, 1)))
	assert.Len(t, r.failures, 1)
	assert.Contains(t, r.failures[0], "-want +got")
}

func TestSetsEqual(t *testing.T) {
	r := record(t)
	assert.True(t, verify.SetsEqual[string](r, collections.SetOf("a", "b"), collections.ImmutableSetOf("b", "a")))
	assert.False(t, verify.SetsEqual[string](r, collections.SetOf("a"), collections.SetOf("b")))
	assert.Len(t, r.failures, 1)
}

func TestBagsEqual(t *testing.T) {
	r := record(t)
	assert.True(t, verify.BagsEqual(r, collections.BagOf("a", "a"), collections.BagOf("a", "a")))
	assert.False(t, verify.BagsEqual(r, collections.BagOf("a", "a"), collections.BagOf("a")))
	assert.Len(t, r.failures, 1)
}

func TestMapsEqual(t *testing.T) {
	r := record(t)
	m := collections.MapOf(collections.PairOf("a", 1))
	assert.True(t, verify.MapsEqual[string, int](r, m, m.ToImmutable()))
	assert.False(t, verify.MapsEqual[string, int](r, m, collections.NewMap[string, int]()))
	assert.Len(t, r.failures, 1)
}

func TestSizeAndEmptiness(t *testing.T) {
	r := record(t)
	empty := collections.NewList[int]()
	full := collections.ListOf(1, 2, 3)

	assert.True(t, verify.IterableSize[int](r, 3, full))
	assert.True(t, verify.Empty[int](r, empty))
	assert.True(t, verify.NotEmpty[int](r, full))
	assert.True(t, verify.Contains[int](r, 2, full))
	assert.Empty(t, r.failures)

	assert.False(t, verify.IterableSize[int](r, 1, full))
	assert.False(t, verify.Empty[int](r, full))
	assert.False(t, verify.NotEmpty[int](r, empty))
	assert.False(t, verify.Contains[int](r, 9, full))
	assert.Len(t, r.failures, 4)
}

func TestUnsupported(t *testing.T) {
	r := record(t)
	view := collections.ListOf(1).AsUnmodifiable()
	assert.True(t, verify.Unsupported(r, view.Add(2)))
	assert.False(t, verify.Unsupported(r, errors.New("other")))
	assert.Len(t, r.failures, 1)
}

func TestInstanceOf(t *testing.T) {
	r := record(t)
	var it any = collections.ListOf(1).ToImmutable().CastToList()

	u, ok := verify.InstanceOf[*collections.UnmodifiableList[int]](r, it)
	assert.True(t, ok)
	assert.Equal(t, 1, u.Size())

	_, ok = verify.InstanceOf[*collections.FastList[int]](r, it)
	assert.False(t, ok)
	assert.Len(t, r.failures, 1)
}

func TestInstanceOfInterfaceMessage(t *testing.T) {
	r := record(t)
	_, ok := verify.InstanceOf[collections.MutableList[int]](r, collections.ImmutableListOf(1))
	assert.False(t, ok)
	require.Len(t, r.failures, 1)
	assert.Contains(t, r.failures[0], "collections.MutableList[int]")
	assert.NotContains(t, r.failures[0], "<nil>")
}

func TestThrows(t *testing.T) {
	r := record(t)
	assert.True(t, verify.Throws(r, func() { panic("boom") }))
	assert.False(t, verify.Throws(r, func() {}))
	assert.Len(t, r.failures, 1)
}
