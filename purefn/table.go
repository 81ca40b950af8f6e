package purefn

import (
	"sync"
	"sync/atomic"

	"github.com/on-the-ground/funcutils/shared/helper"
)

// entry boxes stored values so nil interface results survive the round trip
// through sync.Map.
type entry[V any] struct {
	value V
}

// table is the private result store of one memoized function.
// It only grows.
type table[K comparable, V any] struct {
	memo *sync.Map
	size atomic.Int64
}

func newTable[K comparable, V any]() *table[K, V] {
	return &table[K, V]{memo: &sync.Map{}}
}

func (t *table[K, V]) Load(key K) (V, bool) {
	e, ok := helper.GetTypedValueOf2[entry[V]](func() (any, bool) {
		return t.memo.Load(key)
	})
	return e.value, ok
}

// Store sets the value for key, replacing any previous one.
func (t *table[K, V]) Store(key K, value V) {
	if _, loaded := t.memo.Swap(key, entry[V]{value: value}); !loaded {
		t.size.Add(1)
	}
}

func (t *table[K, V]) Len() int {
	return int(t.size.Load())
}
