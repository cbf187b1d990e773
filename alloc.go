package genarena

// Alloc inserts the zero value of T and returns its handle together with a
// pointer to the stored value, for building large values in place.
// The pointer follows the same rules as one returned by Ref.
func (a *Arena[T]) Alloc() (Handle[T], *T) {
	var zero T
	h := a.Insert(zero)
	return h, &a.slot(int(h.index)).val
}

// InsertSlice inserts every element of vs in order and returns their
// handles. Returns nil if vs is empty.
func (a *Arena[T]) InsertSlice(vs []T) []Handle[T] {
	if len(vs) == 0 {
		return nil
	}
	hs := make([]Handle[T], len(vs))
	for i, v := range vs {
		hs[i] = a.Insert(v)
	}
	return hs
}

// RemoveSlice removes every handle in hs and returns how many were valid.
func (a *Arena[T]) RemoveSlice(hs []Handle[T]) int {
	n := 0
	for _, h := range hs {
		if a.Remove(h) {
			n++
		}
	}
	return n
}
