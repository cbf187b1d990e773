package genarena

import "iter"

// All yields the handle and a pointer to the value of every occupied slot,
// in ascending index order.
//
// The arena may be modified while iterating. Every step re-reads the slot
// count and the state of the next slot, so values inserted at indices not
// yet reached are visited, values removed before they are reached are
// skipped, and slots already visited are never revisited.
func (a *Arena[T]) All() iter.Seq2[Handle[T], *T] {
	return func(yield func(Handle[T], *T) bool) {
		for i := 0; i < a.n; i++ {
			s := a.slot(i)
			if s.state != stateOccupied {
				continue
			}
			if !yield(Handle[T]{index: uint32(i), gen: s.gen}, &s.val) {
				return
			}
		}
	}
}

// Values yields a pointer to every stored value. See All.
func (a *Arena[T]) Values() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for _, v := range a.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// Handles yields the handle of every stored value. See All.
func (a *Arena[T]) Handles() iter.Seq[Handle[T]] {
	return func(yield func(Handle[T]) bool) {
		for h := range a.All() {
			if !yield(h) {
				return
			}
		}
	}
}
