package priority

import (
	"iter"
	"math"
	"strconv"

	"github.com/daveomri/basic-js-priority-queue/core/monitoring"
)

const (
	opEnqueue          = "enqueue"
	opFront            = "front"
	opDequeue          = "dequeue"
	opAt               = "at"
	opPositionOf       = "position_of"
	opChangePriority   = "change_priority"
	opRemoveByHandle   = "remove_by_handle"
	opRemoveByPosition = "remove_by_position"
	opClear            = "clear"
	opForEach          = "for_each"
	opGet              = "get"
	opSetValue         = "set_value"
)

// Queue is a max-priority queue whose entries can be addressed through the
// handles returned by Enqueue. Higher priorities come out first; equal
// priorities come out in the order they were enqueued.
//
// A Queue is not safe for concurrent use. Create one with NewQueue.
type Queue[V any] struct {
	store  store[V]
	refs   refIndex
	hist   histogram
	logger monitoring.Logger
	stats  monitoring.Stats
}

// NewQueue creates an empty queue.
func NewQueue[V any](opts ...Option) *Queue[V] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Queue[V]{
		store:  newStore[V](o.capacity),
		refs:   newRefIndex(o.capacity),
		hist:   newHistogram(),
		logger: o.logger,
		stats:  o.stats,
	}
}

// Enqueue adds value with priority p and returns its handle.
// p may be any float64 except NaN.
func (q *Queue[V]) Enqueue(value V, p float64) (Handle, error) {
	if math.IsNaN(p) {
		return 0, q.fail(opEnqueue, InvalidType, "priority is NaN")
	}

	h := q.refs.issue()
	i := q.place(&entry[V]{priority: p, value: value, handle: h})
	q.done(opEnqueue, h, i+1)
	return h, nil
}

// Front returns the value that Dequeue would return, leaving it queued.
func (q *Queue[V]) Front() (V, error) {
	if q.store.len() == 0 {
		var zero V
		return zero, q.fail(opFront, EmptyQueue, "")
	}
	return q.store.entries[0].value, nil
}

// Dequeue removes and returns the highest priority value.
func (q *Queue[V]) Dequeue() (V, error) {
	if q.store.len() == 0 {
		var zero V
		return zero, q.fail(opDequeue, EmptyQueue, "")
	}

	e := q.remove(0)
	q.done(opDequeue, e.handle, 1)
	return e.value, nil
}

// Len returns the number of values currently queued.
func (q *Queue[V]) Len() int {
	return q.store.len()
}

// TotalIssued returns the number of values ever enqueued, which is also the
// highest handle issued so far.
func (q *Queue[V]) TotalIssued() int64 {
	return q.refs.issued()
}

// At returns the entry at the 1-based position. Every position from 1 to
// Len() inclusive is addressable, so At(PositionOf(h)) finds h even when h is
// last. ok is false only when position is greater than Len().
func (q *Queue[V]) At(position int) (item Item[V], ok bool, err error) {
	if position <= 0 {
		return Item[V]{}, false, q.fail(opAt, OutOfRange, positionDetail(position))
	}
	if position > q.store.len() {
		return Item[V]{}, false, nil
	}

	e := q.store.entries[position-1]
	return Item[V]{Handle: e.handle, Value: e.value}, true, nil
}

// PositionOf returns the 1-based position of h, or Stale if it has been
// removed.
func (q *Queue[V]) PositionOf(h Handle) (int, error) {
	pos, live, err := q.refs.resolve(opPositionOf, h)
	if err != nil {
		return Stale, q.reject(err)
	}
	if !live {
		return Stale, nil
	}
	return pos + 1, nil
}

// ChangePriority moves h to the place priority p belongs and returns its new
// 1-based position, or Stale if h has been removed. The entry goes behind
// every entry that already holds p, even when p is its current priority.
func (q *Queue[V]) ChangePriority(h Handle, p float64) (int, error) {
	pos, live, err := q.refs.resolve(opChangePriority, h)
	if err != nil {
		return Stale, q.reject(err)
	}
	if math.IsNaN(p) {
		return Stale, q.fail(opChangePriority, InvalidType, "priority is NaN")
	}
	if !live {
		return Stale, nil
	}

	e := q.take(pos)
	e.priority = p
	i := q.place(e)
	q.done(opChangePriority, h, i+1)
	return i + 1, nil
}

// RemoveByHandle removes h and reports whether it was still queued.
func (q *Queue[V]) RemoveByHandle(h Handle) (bool, error) {
	pos, live, err := q.refs.resolve(opRemoveByHandle, h)
	if err != nil {
		return false, q.reject(err)
	}
	if !live {
		return false, nil
	}

	q.remove(pos)
	q.done(opRemoveByHandle, h, pos+1)
	return true, nil
}

// RemoveByPosition removes the entry at the 1-based position and reports
// whether the position was occupied.
func (q *Queue[V]) RemoveByPosition(position int) (bool, error) {
	if position <= 0 {
		return false, q.fail(opRemoveByPosition, OutOfRange, positionDetail(position))
	}
	if position > q.store.len() {
		return false, nil
	}

	e := q.remove(position - 1)
	q.done(opRemoveByPosition, e.handle, position)
	return true, nil
}

// Clear removes every queued value. Their handles become stale; TotalIssued
// is unchanged.
func (q *Queue[V]) Clear() {
	for _, e := range q.store.entries {
		q.refs.tombstone(e.handle)
	}
	q.store.reset()
	q.hist.clear()
	q.done(opClear, 0, 0)
}

// ForEach calls fn for every queued value in priority order along with its
// 1-based position. The result is undefined if fn mutates the queue.
func (q *Queue[V]) ForEach(fn func(value V, position int)) error {
	if fn == nil {
		return q.fail(opForEach, InvalidType, "callback is nil")
	}
	for i := 0; i < len(q.store.entries); i++ {
		e := q.store.entries[i]
		fn(e.value, q.refs.slots[e.handle-1].pos+1)
	}
	return nil
}

// All returns an iterator over positions and values in priority order.
// The same mutation caveat as ForEach applies.
func (q *Queue[V]) All() iter.Seq2[int, V] {
	return func(yield func(int, V) bool) {
		for i := 0; i < len(q.store.entries); i++ {
			e := q.store.entries[i]
			if !yield(q.refs.slots[e.handle-1].pos+1, e.value) {
				return
			}
		}
	}
}

// Stats returns the number of queued values per priority. The map is a copy.
func (q *Queue[V]) Stats() map[float64]int {
	return q.hist.snapshot()
}

// Buckets returns the same counts as Stats, highest priority first.
func (q *Queue[V]) Buckets() []Bucket {
	return q.hist.buckets()
}

// Get returns the value held by h. ok is false if h has been removed.
func (q *Queue[V]) Get(h Handle) (value V, ok bool, err error) {
	pos, live, err := q.refs.resolve(opGet, h)
	if err != nil {
		return value, false, q.reject(err)
	}
	if !live {
		return value, false, nil
	}
	return q.store.entries[pos].value, true, nil
}

// SetValue replaces the value held by h without moving it and reports
// whether h was still queued.
func (q *Queue[V]) SetValue(h Handle, value V) (bool, error) {
	pos, live, err := q.refs.resolve(opSetValue, h)
	if err != nil {
		return false, q.reject(err)
	}
	if !live {
		return false, nil
	}

	q.store.entries[pos].value = value
	q.done(opSetValue, h, pos+1)
	return true, nil
}

// place inserts e at its sorted position and returns the index it landed on.
func (q *Queue[V]) place(e *entry[V]) int {
	i := q.store.insertionIndex(e.priority)
	q.store.insertAt(i, e)
	reindex(&q.refs, q.store.entries, i)
	q.hist.increment(e.priority)
	return i
}

// take detaches the entry at index i. Its handle still resolves to the old
// index until the caller either places or tombstones it.
func (q *Queue[V]) take(i int) *entry[V] {
	e := q.store.removeAt(i)
	reindex(&q.refs, q.store.entries, i)
	q.hist.decrement(e.priority)
	return e
}

func (q *Queue[V]) remove(i int) *entry[V] {
	e := q.take(i)
	q.refs.tombstone(e.handle)
	return e
}

func (q *Queue[V]) done(op string, h Handle, position int) {
	if q.stats != nil {
		q.stats.RecordOperation(op)
		q.stats.SetSize(q.store.len(), q.refs.issued())
	}
	if q.logger == nil || !q.logger.Enabled(monitoring.DEBUG) {
		return
	}

	details := map[string]any{
		"size":   q.store.len(),
		"issued": q.refs.issued(),
	}
	if h > 0 {
		details["handle"] = int64(h)
		details["position"] = position
	}
	q.logger.Log(monitoring.DEBUG, op, op+" completed", details)
}

func (q *Queue[V]) fail(op string, kind Kind, detail string) error {
	return q.reject(&Error{Op: op, Kind: kind, Detail: detail})
}

func (q *Queue[V]) reject(err error) error {
	if q.stats != nil {
		q.stats.RecordError(opOf(err), KindOf(err).String())
	}
	if q.logger != nil && q.logger.Enabled(monitoring.WARN) {
		q.logger.Log(monitoring.WARN, "queue_error", err.Error(), map[string]any{
			"op":   opOf(err),
			"kind": KindOf(err).String(),
		})
	}
	return err
}

func opOf(err error) string {
	if e, ok := err.(*Error); ok {
		return e.Op
	}
	return ""
}

func positionDetail(position int) string {
	return "position " + strconv.Itoa(position) + " is not positive"
}
