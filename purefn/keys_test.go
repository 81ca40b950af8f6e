package purefn_test

import (
	"errors"
	"testing"

	"github.com/on-the-ground/funcutils/purefn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type point struct {
	X, Y int
}

type named struct {
	Tags []string
}

func (n named) String() string {
	return "named"
}

func TestHashKey_DeterministicForMaps(t *testing.T) {
	k1, err := purefn.HashKey(map[string]any{"b": 2, "a": 1, "c": 3})
	require.NoError(t, err)
	k2, err := purefn.HashKey(map[string]any{"c": 3, "a": 1, "b": 2})
	require.NoError(t, err)
	assert.Equal(t, k1, k2)
}

func TestHashKey_OrderOfPartsMatters(t *testing.T) {
	k1, _ := purefn.HashKey(1, 2)
	k2, _ := purefn.HashKey(2, 1)
	assert.NotEqual(t, k1, k2)

	// the separator keeps part boundaries apart
	k3, _ := purefn.HashKey("ab", "c")
	k4, _ := purefn.HashKey("a", "bc")
	assert.NotEqual(t, k3, k4)
}

func TestHashKey_StructsAndSlices(t *testing.T) {
	k1, _ := purefn.HashKey(point{1, 2}, []int{3})
	k2, _ := purefn.HashKey(point{1, 2}, []int{3})
	k3, _ := purefn.HashKey(point{2, 1}, []int{3})
	assert.Equal(t, k1, k2)
	assert.NotEqual(t, k1, k3)
}

func TestHashKey_StringerFallback(t *testing.T) {
	k1, _ := purefn.HashKey(named{Tags: []string{"a"}})
	k2, _ := purefn.HashKey(named{Tags: []string{"b"}})
	assert.Equal(t, k1, k2, "stringers are keyed by String()")
}

func TestHashKey_Unhashable(t *testing.T) {
	_, err := purefn.HashKey(1, make(chan int))
	require.Error(t, err)
	assert.True(t, errors.Is(err, purefn.ErrUnhashableKey))
	assert.Contains(t, err.Error(), "part 1")

	_, err = purefn.HashKey(func() {})
	assert.ErrorIs(t, err, purefn.ErrUnhashableKey)
}

func TestStringKey(t *testing.T) {
	k, err := purefn.StringKey("a", 1, point{1, 2}, named{})
	require.NoError(t, err)
	assert.Equal(t, `"a"|1|{"X":1,"Y":2}|"named"`, k)

	_, err = purefn.StringKey(make(chan int))
	assert.ErrorIs(t, err, purefn.ErrUnhashableKey)
}

func TestIdentityAndKeyBy(t *testing.T) {
	k, err := purefn.Identity("x")
	require.NoError(t, err)
	assert.Equal(t, "x", k)

	byLen := purefn.KeyBy(func(s string) int { return len(s) })
	n, err := byLen("four")
	require.NoError(t, err)
	assert.Equal(t, 4, n)
}

func TestMemoize_UnhashableKeySkipsCall(t *testing.T) {
	called := false
	fn := purefn.Wrap(func(ch chan int) (uint64, error) {
		return purefn.HashKey(ch)
	}, func(chan int) (int, error) {
		called = true
		return 1, nil
	})

	_, err := fn(make(chan int))
	assert.ErrorIs(t, err, purefn.ErrUnhashableKey)
	assert.False(t, called)
}

type hidden struct {
	n int
}

type wrapsHidden struct {
	Items []hidden
}

func TestHashKey_UnexportedFieldsTakePart(t *testing.T) {
	k1, err := purefn.HashKey(hidden{1})
	require.NoError(t, err)
	k2, err := purefn.HashKey(hidden{2})
	require.NoError(t, err)
	assert.NotEqual(t, k1, k2)

	k3, _ := purefn.HashKey(wrapsHidden{Items: []hidden{{1}}})
	k4, _ := purefn.HashKey(wrapsHidden{Items: []hidden{{2}}})
	assert.NotEqual(t, k3, k4)

	k5, _ := purefn.HashKey(hidden{1})
	assert.Equal(t, k1, k5)
}

func TestStringKey_UnexportedFields(t *testing.T) {
	k, err := purefn.StringKey(hidden{7})
	require.NoError(t, err)
	assert.Equal(t, "purefn_test.hidden{n:7}", k)
}

func TestMemoize_HashKeyDistinguishesUnexportedFields(t *testing.T) {
	fn := purefn.Wrap(func(h hidden) (uint64, error) {
		return purefn.HashKey(h)
	}, purefn.Lift(func(h hidden) int {
		return h.n
	}))

	v1, _ := fn(hidden{1})
	v2, _ := fn(hidden{2})
	assert.Equal(t, 1, v1)
	assert.Equal(t, 2, v2)
}
