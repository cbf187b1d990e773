package genarena

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlloc(t *testing.T) {
	type node struct {
		Name     string
		Children []Handle[int]
	}

	a := New[node]()
	h, p := a.Alloc()
	require.NotNil(t, p)
	assert.Equal(t, node{}, *p)

	p.Name = "root"
	v, ok := a.Get(h)
	require.True(t, ok)
	assert.Equal(t, "root", v.Name)
	assert.Same(t, a.Ref(h), p)
}

func TestInsertSlice(t *testing.T) {
	a := New[int]()
	assert.Nil(t, a.InsertSlice(nil))

	hs := a.InsertSlice([]int{1, 2, 3})
	require.Len(t, hs, 3)
	for i, h := range hs {
		v, ok := a.Get(h)
		require.True(t, ok)
		assert.Equal(t, i+1, v)
	}
}

func TestRemoveSlice(t *testing.T) {
	a := New[int]()
	hs := a.InsertSlice([]int{1, 2, 3})
	a.Remove(hs[0])

	assert.Equal(t, 2, a.RemoveSlice(hs))
	assert.Equal(t, 0, a.RemoveSlice(hs))
	assert.Equal(t, 0, a.Len())
}
