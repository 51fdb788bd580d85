package priority

import "strconv"

type refState uint8

const (
	refLive refState = iota
	refRemoved
)

// ref is the state of one issued handle: live at pos, or removed for good.
type ref struct {
	state refState
	pos   int
}

// refIndex maps every issued handle to its current store index. Handles are
// dense, so slot h-1 belongs to handle h.
type refIndex struct {
	slots []ref
}

func newRefIndex(capacity int) refIndex {
	return refIndex{slots: make([]ref, 0, capacity)}
}

func (r *refIndex) issued() int64 {
	return int64(len(r.slots))
}

// issue allocates the next handle. Its position is filled in by reindex.
func (r *refIndex) issue() Handle {
	r.slots = append(r.slots, ref{state: refLive})
	return Handle(len(r.slots))
}

// reindex rewrites the position of every entry from index from onwards.
func reindex[V any](r *refIndex, entries []*entry[V], from int) {
	for i := from; i < len(entries); i++ {
		r.slots[entries[i].handle-1].pos = i
	}
}

func (r *refIndex) tombstone(h Handle) {
	r.slots[h-1] = ref{state: refRemoved}
}

// resolve reports the store index of h. A handle that was issued and later
// removed resolves to live == false with no error; only handles that were
// never issued are an error.
func (r *refIndex) resolve(op string, h Handle) (pos int, live bool, err error) {
	if h <= 0 || int64(h) > r.issued() {
		return 0, false, &Error{
			Op:     op,
			Kind:   InvalidReference,
			Detail: "handle " + strconv.FormatInt(int64(h), 10) + " was never issued",
		}
	}
	s := r.slots[h-1]
	if s.state == refRemoved {
		return 0, false, nil
	}
	return s.pos, true, nil
}
