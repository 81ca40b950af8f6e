package purefn_test

import (
	"sync"
	"testing"

	"github.com/on-the-ground/funcutils/purefn"
	"github.com/stretchr/testify/assert"
)

func TestTable_BasicUsage(t *testing.T) {
	memo := purefn.NewTable[string, string]()

	memo.Store("a", "final")

	val, ok := memo.Load("a")
	assert.True(t, ok)
	assert.Equal(t, "final", val)

	_, ok = memo.Load("x")
	assert.False(t, ok)

	// overwrite existing
	memo.Store("a", "updated")
	val, ok = memo.Load("a")
	assert.True(t, ok)
	assert.Equal(t, "updated", val)
	assert.Equal(t, 1, memo.Len())
}

func TestTable_StoresZeroAndNil(t *testing.T) {
	ints := purefn.NewTable[int, int]()
	ints.Store(1, 0)
	v, ok := ints.Load(1)
	assert.True(t, ok)
	assert.Equal(t, 0, v)

	errs := purefn.NewTable[int, error]()
	errs.Store(1, nil)
	e, ok := errs.Load(1)
	assert.True(t, ok)
	assert.Nil(t, e)
}

func TestTable_ConcurrentStores(t *testing.T) {
	memo := purefn.NewTable[int, int]()

	var wg sync.WaitGroup
	for g := range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 50 {
				memo.Store(i, g)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, memo.Len())
}
