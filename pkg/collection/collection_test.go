package collection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVectorPushBack(t *testing.T) {
	v := NewVector[int](0)
	for i := 0; i < 100; i++ {
		v.PushBack(i)
	}
	require.Equal(t, 100, v.Len())
	assert.Equal(t, 0, v.At(0))
	assert.Equal(t, 99, v.At(99))
	assert.Equal(t, 99, v.Back())

	v.Truncate(10)
	assert.Equal(t, 10, v.Len())
	assert.Equal(t, 9, v.Back())

	v.Reset()
	assert.Equal(t, 0, v.Len())
}

func TestDequeWrapAround(t *testing.T) {
	d := NewDeque[int](4)
	d.PushBack(1)
	d.PushBack(2)
	d.PushFront(0)
	require.Equal(t, 3, d.Len())
	assert.Equal(t, 0, d.Front())
	assert.Equal(t, 2, d.Back())

	assert.Equal(t, 0, d.PopFront())
	assert.Equal(t, 2, d.PopBack())
	assert.Equal(t, 1, d.Len())
	assert.Equal(t, 1, d.At(0))
}

func TestDequeGrows(t *testing.T) {
	d := NewDeque[int](2)
	for i := 0; i < 50; i++ {
		d.PushBack(i)
	}
	require.Equal(t, 50, d.Len())
	for i := 0; i < 50; i++ {
		assert.Equal(t, i, d.At(i))
	}
	for i := 0; i < 50; i++ {
		assert.Equal(t, i, d.PopFront())
	}
}

func TestMapSetGetDelete(t *testing.T) {
	m := NewMap[string, int](FNV1a64)
	m.Set("a", 1)
	m.Set("b", 2)
	m.Set("a", 11)

	v, ok := m.Get("a")
	require.True(t, ok)
	assert.Equal(t, 11, v)

	v, ok = m.Get("b")
	require.True(t, ok)
	assert.Equal(t, 2, v)

	_, ok = m.Get("missing")
	assert.False(t, ok)

	m.Delete("a")
	_, ok = m.Get("a")
	assert.False(t, ok)
	assert.Equal(t, 1, m.Len())
}

func TestMapGrowsAndRehashes(t *testing.T) {
	m := NewMap[int, int](func(k int) uint64 { return uint64(k) })
	for i := 0; i < 1000; i++ {
		m.Set(i, i*i)
	}
	require.Equal(t, 1000, m.Len())
	for i := 0; i < 1000; i++ {
		v, ok := m.Get(i)
		require.True(t, ok)
		assert.Equal(t, i*i, v)
	}

	// Churn deletes and re-inserts to exercise grave-ratio rehashing.
	for i := 0; i < 500; i++ {
		m.Delete(i)
	}
	for i := 0; i < 500; i++ {
		m.Set(i, -i)
	}
	require.Equal(t, 1000, m.Len())
	for i := 0; i < 500; i++ {
		v, ok := m.Get(i)
		require.True(t, ok)
		assert.Equal(t, -i, v)
	}
}

func TestMapRange(t *testing.T) {
	m := NewMap[string, int](FNV1a64)
	want := map[string]int{"a": 1, "b": 2, "c": 3}
	for k, v := range want {
		m.Set(k, v)
	}
	got := map[string]int{}
	m.Range(func(k string, v int) bool {
		got[k] = v
		return true
	})
	assert.Equal(t, want, got)
}
