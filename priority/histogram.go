package priority

import "github.com/google/btree"

// Bucket is the number of live entries sharing one priority.
type Bucket struct {
	Priority float64
	Count    int
}

// histogram counts live entries per priority. Buckets are kept ordered by
// descending priority and a bucket is dropped as soon as its count reaches 0.
//
// Priorities are matched with ==, so +0 and -0 share a bucket and values that
// differ in the last bit do not.
type histogram struct {
	tree  *btree.BTreeG[Bucket]
	total int
}

func newHistogram() histogram {
	return histogram{
		tree: btree.NewG[Bucket](2, func(a, b Bucket) bool {
			return a.Priority > b.Priority
		}),
	}
}

func (h *histogram) increment(p float64) {
	b, _ := h.tree.Get(Bucket{Priority: p})
	b.Priority = p
	b.Count++
	h.tree.ReplaceOrInsert(b)
	h.total++
}

func (h *histogram) decrement(p float64) {
	b, ok := h.tree.Get(Bucket{Priority: p})
	if !ok {
		return
	}
	h.total--
	if b.Count <= 1 {
		h.tree.Delete(b)
		return
	}
	b.Count--
	h.tree.ReplaceOrInsert(b)
}

func (h *histogram) snapshot() map[float64]int {
	out := make(map[float64]int, h.tree.Len())
	h.tree.Ascend(func(b Bucket) bool {
		out[b.Priority] = b.Count
		return true
	})
	return out
}

func (h *histogram) buckets() []Bucket {
	out := make([]Bucket, 0, h.tree.Len())
	h.tree.Ascend(func(b Bucket) bool {
		out = append(out, b)
		return true
	})
	return out
}

func (h *histogram) clear() {
	h.tree.Clear(false)
	h.total = 0
}
