package genarena

import "sync"

// SafeArena is a mutex-protected wrapper around Arena for concurrent access.
// All operations are thread-safe but come with the overhead of locking.
// Values are only reachable under the lock, so there is no Ref; use Update
// to modify a value in place.
//
// The zero value is an empty arena ready to use.
type SafeArena[T any] struct {
	mu sync.RWMutex
	a  Arena[T]
}

// NewSafeArena creates a new thread-safe arena configured by opts.
func NewSafeArena[T any](opts ...Option) *SafeArena[T] {
	return &SafeArena[T]{a: *New[T](opts...)}
}

// Insert thread-safely stores v and returns its handle.
func (s *SafeArena[T]) Insert(v T) Handle[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Insert(v)
}

// Remove thread-safely frees the slot h refers to.
func (s *SafeArena[T]) Remove(h Handle[T]) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Remove(h)
}

// Take thread-safely removes the value h refers to and returns it.
func (s *SafeArena[T]) Take(h Handle[T]) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Take(h)
}

// Get thread-safely returns a copy of the value h refers to.
func (s *SafeArena[T]) Get(h Handle[T]) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.a.Get(h)
}

// IsValid thread-safely reports whether h refers to a stored value.
func (s *SafeArena[T]) IsValid(h Handle[T]) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.a.IsValid(h)
}

// Update calls fn with a pointer to the value h refers to while holding the
// write lock. It reports false without calling fn if h is not valid. fn must
// not retain the pointer or call back into s.
func (s *SafeArena[T]) Update(h Handle[T], fn func(*T)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.a.Ref(h)
	if p == nil {
		return false
	}
	fn(p)
	return true
}

// Range calls fn for every stored value in ascending index order while
// holding the read lock, stopping early if fn returns false. fn must not
// call back into s.
func (s *SafeArena[T]) Range(fn func(Handle[T], T) bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for h, v := range s.a.All() {
		if !fn(h, *v) {
			return
		}
	}
}

// Clear thread-safely removes every value.
func (s *SafeArena[T]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Clear()
}

// EnsureCapacity thread-safely preallocates room for n slots.
func (s *SafeArena[T]) EnsureCapacity(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.EnsureCapacity(n)
}

// Len thread-safely returns the number of stored values.
func (s *SafeArena[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.a.Len()
}

// Metrics thread-safely returns a snapshot of arena statistics.
func (s *SafeArena[T]) Metrics() Metrics {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.a.Metrics()
}
