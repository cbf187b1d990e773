package genarena

import "github.com/RoaringBitmap/roaring/v2"

// freeList indexes free slots. pop always hands out the lowest index, the
// same slot the linear scan would find.
type freeList struct {
	bm *roaring.Bitmap
}

func newFreeList() *freeList {
	return &freeList{bm: roaring.New()}
}

func (f *freeList) push(i uint32) { f.bm.Add(i) }

func (f *freeList) pop() (uint32, bool) {
	if f.bm.IsEmpty() {
		return 0, false
	}
	i := f.bm.Minimum()
	f.bm.Remove(i)
	return i, true
}

func (f *freeList) len() int { return int(f.bm.GetCardinality()) }
