package genarena

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect[T any](a *Arena[T]) []T {
	var out []T
	for v := range a.Values() {
		out = append(out, *v)
	}
	return out
}

func TestIterCompleteness(t *testing.T) {
	a := New[int]()
	a.Insert(4)
	a.Insert(6)
	a.Insert(12)

	assert.ElementsMatch(t, []int{4, 6, 12}, collect(a))
}

func TestIterExcludesRemoved(t *testing.T) {
	a := New[int]()
	a.Insert(4)
	a.Insert(6)
	a.Insert(12)
	t1 := a.Insert(14)
	require.True(t, a.Remove(t1))

	check := map[int]bool{4: false, 6: false, 12: false}
	for v := range a.Values() {
		_, ok := check[*v]
		require.True(t, ok, "unexpected value %d", *v)
		check[*v] = true
	}
	for v, seen := range check {
		assert.True(t, seen, "value %d not visited", v)
	}
}

func TestIterIndexOrder(t *testing.T) {
	a := New[string](WithChunkSize(2))
	hs := a.InsertSlice([]string{"a", "b", "c", "d", "e"})
	require.True(t, a.Remove(hs[1]))
	a.Insert("f") // lands in slot 1

	assert.Equal(t, []string{"a", "f", "c", "d", "e"}, collect(a))

	var idx []int
	for h := range a.Handles() {
		idx = append(idx, h.Index())
	}
	assert.True(t, slices.IsSorted(idx))
	assert.Len(t, idx, 5)
}

func TestIterHandlesAreValid(t *testing.T) {
	a := New[int]()
	for i := range 10 {
		h := a.Insert(i)
		if i%3 == 0 {
			a.Remove(h)
		}
	}

	for h, p := range a.All() {
		v, ok := a.Get(h)
		require.True(t, ok)
		assert.Equal(t, *p, v)
		assert.Same(t, a.Ref(h), p)
	}
}

func TestIterMutateValues(t *testing.T) {
	a := New[int]()
	a.InsertSlice([]int{1, 2, 3})
	for v := range a.Values() {
		*v *= 10
	}
	assert.Equal(t, []int{10, 20, 30}, collect(a))
}

func TestIterRestartable(t *testing.T) {
	a := New[int]()
	a.InsertSlice([]int{1, 2, 3})

	seq := a.Values()
	n := 0
	for range seq {
		n++
	}
	for range seq {
		n++
	}
	assert.Equal(t, 6, n)
}

func TestIterEarlyBreak(t *testing.T) {
	a := New[int]()
	a.InsertSlice([]int{1, 2, 3, 4})

	var got []int
	for v := range a.Values() {
		got = append(got, *v)
		if len(got) == 2 {
			break
		}
	}
	assert.Equal(t, []int{1, 2}, got)
}

func TestIterEmpty(t *testing.T) {
	var a Arena[int]
	for range a.All() {
		t.Fatal("empty arena yielded a value")
	}
}

func TestIterSeesLaterInsertions(t *testing.T) {
	a := New[int](WithChunkSize(2))
	a.InsertSlice([]int{1, 2})

	var got []int
	for v := range a.Values() {
		got = append(got, *v)
		if *v < 4 {
			a.Insert(*v + 2) // appended past the cursor
		}
	}
	assert.Equal(t, []int{1, 2, 3, 4, 5}, got)
}

func TestIterSkipsRemovedAhead(t *testing.T) {
	a := New[int]()
	hs := a.InsertSlice([]int{1, 2, 3, 4})

	var got []int
	for h, v := range a.All() {
		got = append(got, *v)
		if h == hs[0] {
			require.True(t, a.Remove(hs[2]))
		}
	}
	assert.Equal(t, []int{1, 2, 4}, got)
}

func TestIterRemoveCurrent(t *testing.T) {
	a := New[int]()
	a.InsertSlice([]int{1, 2, 3, 4})

	var got []int
	for h, v := range a.All() {
		got = append(got, *v)
		if *v%2 == 0 {
			require.True(t, a.Remove(h))
		}
	}
	assert.Equal(t, []int{1, 2, 3, 4}, got)
	assert.Equal(t, []int{1, 3}, collect(a))
}

func TestIterReuseBehindCursorNotVisited(t *testing.T) {
	a := New[int]()
	hs := a.InsertSlice([]int{1, 2, 3})

	var got []int
	for h, v := range a.All() {
		got = append(got, *v)
		if h == hs[1] {
			require.True(t, a.Remove(hs[0]))
			a.Insert(9) // reuses slot 0, already passed
		}
	}
	assert.Equal(t, []int{1, 2, 3}, got)
	assert.ElementsMatch(t, []int{9, 2, 3}, collect(a))
}
