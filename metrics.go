package genarena

// Len returns the number of values currently stored.
func (a *Arena[T]) Len() int {
	return a.live
}

// Slots returns the number of slots handed out so far, occupied or not.
// It never decreases.
func (a *Arena[T]) Slots() int {
	return a.n
}

// NumChunks returns the number of chunks allocated by the arena.
func (a *Arena[T]) NumChunks() int {
	return len(a.chunks)
}

// Capacity returns the number of slots the allocated chunks can hold.
func (a *Arena[T]) Capacity() int {
	return len(a.chunks) * a.chunkSize
}

// ChunkSize returns the number of slots per chunk.
func (a *Arena[T]) ChunkSize() int {
	if a.chunkSize <= 0 {
		return DefaultChunkSize
	}
	return a.chunkSize
}

// Utilization returns the ratio of stored values to slots (0.0 to 1.0).
// Returns 0.0 if no slot has been handed out.
func (a *Arena[T]) Utilization() float64 {
	if a.n == 0 {
		return 0
	}
	return float64(a.live) / float64(a.n)
}

// Metrics returns a snapshot of arena statistics.
func (a *Arena[T]) Metrics() Metrics {
	return Metrics{
		Live:        a.live,
		Slots:       a.n,
		Free:        a.n - a.live - a.retired,
		Retired:     a.retired,
		Capacity:    a.Capacity(),
		NumChunks:   len(a.chunks),
		ChunkSize:   a.ChunkSize(),
		Utilization: a.Utilization(),
		Inserts:     a.stats.inserts,
		Reuses:      a.stats.reuses,
		Removes:     a.stats.removes,
		Growths:     a.stats.growths,
	}
}

// Metrics contains statistical information about an arena.
type Metrics struct {
	Live        int     // Values currently stored
	Slots       int     // Slots handed out, occupied or not
	Free        int     // Slots waiting to be reused
	Retired     int     // Slots whose generation is exhausted
	Capacity    int     // Slots the allocated chunks can hold
	NumChunks   int     // Number of chunks
	ChunkSize   int     // Slots per chunk
	Utilization float64 // Ratio of Live to Slots (0.0-1.0)

	Inserts uint64 // Total inserts
	Reuses  uint64 // Inserts that recycled a freed slot
	Removes uint64 // Total successful removes
	Growths uint64 // Chunks allocated
}
