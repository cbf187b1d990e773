// Package genarena implements a generational-index arena.
// Typical usage: keep one arena per kind of domain object, hand out the
// returned handles instead of pointers, and let stale handles fail the
// validity check after the value is removed.
package genarena

import (
	"log/slog"
	"math"
	"strconv"
)

// maxSlots bounds the slot count so every index fits in a Handle.
const maxSlots = math.MaxUint32

// Handle refers to one occupation of one slot of an Arena[T].
// The zero Handle refers to the first occupation of slot 0.
type Handle[T any] struct {
	index uint32
	gen   uint32
}

// RawHandle rebuilds a handle from the values returned by Index and
// Generation, for callers that store handles as plain integers.
func RawHandle[T any](index, gen uint32) Handle[T] {
	return Handle[T]{index: index, gen: gen}
}

// Index returns the slot index the handle refers to.
func (h Handle[T]) Index() int { return int(h.index) }

// Generation returns the generation of the slot when the handle was issued.
func (h Handle[T]) Generation() uint32 { return h.gen }

func (h Handle[T]) String() string {
	return strconv.FormatUint(uint64(h.index), 10) + "v" + strconv.FormatUint(uint64(h.gen), 10)
}

// Arena stores values of type T and hands out handles to them.
// Not goroutine-safe. Use SafeArena for concurrent access.
//
// The zero value is an empty arena using DefaultChunkSize and the linear
// free-slot scan.
type Arena[T any] struct {
	chunks    [][]slot[T]
	chunkSize int

	n       int // slots handed out so far, free or not
	live    int
	retired int

	free *freeList // nil selects the linear scan
	log  *slog.Logger

	stats counters
}

type counters struct {
	inserts uint64
	reuses  uint64
	removes uint64
	growths uint64
}

// New creates an empty arena configured by opts.
func New[T any](opts ...Option) *Arena[T] {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	a := &Arena[T]{
		chunkSize: o.chunkSize,
		log:       o.logger,
	}
	if a.chunkSize <= 0 {
		a.chunkSize = DefaultChunkSize
	}
	if o.freeList {
		a.free = newFreeList()
	}
	if o.capacity > 0 {
		a.EnsureCapacity(o.capacity)
	}
	return a
}

// NewWithCapacity creates an empty arena with room for capacity values
// before any further storage is allocated.
func NewWithCapacity[T any](capacity int) *Arena[T] {
	return New[T](WithCapacity(capacity))
}

// Insert stores v and returns the handle for this occupation. Freed slots
// are reused, lowest index first, before storage grows. Growth never moves
// existing values.
func (a *Arena[T]) Insert(v T) Handle[T] {
	i, ok := a.reuse()
	if !ok {
		i = a.push()
	}

	s := a.slot(i)
	s.val = v
	s.state = stateOccupied

	a.live++
	a.stats.inserts++
	return Handle[T]{index: uint32(i), gen: s.gen}
}

// Remove frees the slot h refers to. It reports false, and changes
// nothing, if h is not valid.
func (a *Arena[T]) Remove(h Handle[T]) bool {
	_, ok := a.Take(h)
	return ok
}

// Take removes the value h refers to and returns it.
func (a *Arena[T]) Take(h Handle[T]) (v T, ok bool) {
	s := a.lookup(h)
	if s == nil {
		return v, false
	}
	v = s.val
	a.release(int(h.index), s)
	return v, true
}

// Get returns a copy of the value h refers to.
func (a *Arena[T]) Get(h Handle[T]) (v T, ok bool) {
	s := a.lookup(h)
	if s == nil {
		return v, false
	}
	return s.val, true
}

// Ref returns a pointer to the value h refers to, or nil if h is not valid.
// The pointer stays usable while the arena grows but must not be used
// after the value is removed.
func (a *Arena[T]) Ref(h Handle[T]) *T {
	s := a.lookup(h)
	if s == nil {
		return nil
	}
	return &s.val
}

// IsValid reports whether h refers to a value currently in the arena: its
// index is in range, its generation matches the slot, and the slot is
// occupied.
func (a *Arena[T]) IsValid(h Handle[T]) bool {
	return a.lookup(h) != nil
}

// Clear removes every value. Slot generations are kept so no outstanding
// handle becomes valid again.
func (a *Arena[T]) Clear() {
	for i := 0; i < a.n; i++ {
		if s := a.slot(i); s.state == stateOccupied {
			a.release(i, s)
		}
	}
}

func (a *Arena[T]) lookup(h Handle[T]) *slot[T] {
	if uint64(h.index) >= uint64(a.n) {
		return nil
	}
	s := a.slot(int(h.index))
	if s.gen != h.gen || s.state != stateOccupied {
		return nil
	}
	return s
}

// reuse claims a free slot and bumps its generation.
func (a *Arena[T]) reuse() (int, bool) {
	var i int
	if a.free != nil {
		idx, ok := a.free.pop()
		if !ok {
			return 0, false
		}
		i = int(idx)
	} else {
		if a.live+a.retired == a.n {
			return 0, false
		}
		if i = a.scanFree(); i < 0 {
			return 0, false
		}
	}

	a.slot(i).gen++
	a.stats.reuses++
	return i, true
}

// push appends a fresh slot with generation 0.
func (a *Arena[T]) push() int {
	if uint64(a.n) >= maxSlots {
		panic("genarena: slot index space exhausted")
	}
	if a.n == a.Capacity() {
		a.grow()
	}
	i := a.n
	a.n++
	return i
}

func (a *Arena[T]) release(i int, s *slot[T]) {
	var zero T
	s.val = zero

	a.live--
	a.stats.removes++

	if s.gen == math.MaxUint32 {
		s.state = stateRetired
		a.retired++
		a.debug("genarena: retired slot", "index", i)
		return
	}

	s.state = stateFree
	if a.free != nil {
		a.free.push(uint32(i))
	}
}

func (a *Arena[T]) debug(msg string, args ...any) {
	if a.log != nil {
		a.log.Debug(msg, args...)
	}
}
