package memstore

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrdering(t *testing.T) {
	c := New[string]()
	require.NoError(t, c.Insert("1", "A"))
	require.NoError(t, c.Insert("2", "B"))
	require.NoError(t, c.Insert("3", "C"))

	assert.Equal(t, []string{"A", "B", "C"}, c.Ascending())
	assert.Equal(t, []string{"C", "B", "A"}, c.Descending())
}

func TestDuplicateID(t *testing.T) {
	c := New[int]()
	require.NoError(t, c.Insert("x", 1))
	assert.ErrorIs(t, c.Insert("x", 2), ErrDuplicateID)

	v, ok := c.Get("x")
	assert.True(t, ok)
	assert.Equal(t, 1, v)
}

func TestGetMissing(t *testing.T) {
	c := New[int]()
	_, ok := c.Get("nope")
	assert.False(t, ok)
}

func TestReplaceDeleteFind(t *testing.T) {
	c := New[string]()
	require.NoError(t, c.Insert("1", "a"))
	require.NoError(t, c.Insert("2", "b"))
	require.NoError(t, c.Insert("3", "bb"))

	assert.True(t, c.Replace("1", "z"))
	assert.False(t, c.Replace("9", "z"))

	got, ok := c.Find(func(s string) bool { return len(s) == 2 })
	assert.True(t, ok)
	assert.Equal(t, "bb", got)

	assert.True(t, c.Delete("2"))
	assert.False(t, c.Delete("2"))
	assert.Equal(t, []string{"z", "bb"}, c.Ascending())

	assert.Equal(t, 1, c.DeleteWhere(func(s string) bool { return s == "bb" }))
	assert.Equal(t, 1, c.Len())
}

func TestConcurrentInsert(t *testing.T) {
	c := New[int]()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = c.Insert(fmt.Sprintf("id-%d", i), i)
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 50, c.Len())
}

func TestUpdateIsAtomic(t *testing.T) {
	c := New[int]()
	require.NoError(t, c.Insert("n", 0))

	var wg sync.WaitGroup
	var mu sync.Mutex
	granted := 0
	for i := 0; i < 40; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, ok := c.Update("n", func(v int) (int, bool) { return v + 1, v < 5 }); ok {
				mu.Lock()
				granted++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	v, _ := c.Get("n")
	assert.Equal(t, 5, v)
	assert.Equal(t, 5, granted)

	_, ok := c.Update("missing", func(v int) (int, bool) { return v, true })
	assert.False(t, ok)
}
