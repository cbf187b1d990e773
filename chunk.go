package genarena

// DefaultChunkSize is the default number of slots per storage chunk.
const DefaultChunkSize = 256

type slotState uint8

const (
	stateFree slotState = iota
	stateOccupied
	stateRetired // generation exhausted, never reused
)

// slot is a single storage cell. A fresh slot is free with generation 0.
type slot[T any] struct {
	val   T
	gen   uint32
	state slotState
}

// slot returns the i-th slot. Chunks are never reallocated, so the
// returned pointer is stable for the life of the arena.
func (a *Arena[T]) slot(i int) *slot[T] {
	return &a.chunks[i/a.chunkSize][i%a.chunkSize]
}

// EnsureCapacity allocates chunks until the arena can hold n slots
// without growing.
func (a *Arena[T]) EnsureCapacity(n int) {
	for a.Capacity() < n {
		a.grow()
	}
}

// grow appends one chunk.
func (a *Arena[T]) grow() {
	if a.chunkSize <= 0 {
		a.chunkSize = DefaultChunkSize
	}
	a.chunks = append(a.chunks, make([]slot[T], a.chunkSize))
	a.stats.growths++
	a.debug("genarena: allocated chunk",
		"chunks", len(a.chunks),
		"capacity", a.Capacity(),
	)
}

// scanFree returns the lowest free slot index, or -1.
func (a *Arena[T]) scanFree() int {
	for c, ch := range a.chunks {
		base := c * a.chunkSize
		for j := range ch {
			if base+j >= a.n {
				return -1
			}
			if ch[j].state == stateFree {
				return base + j
			}
		}
	}
	return -1
}
