// Package priority implements a max-priority queue whose entries stay
// addressable through handles after any number of other insertions, removals
// and priority changes.
//
// Entries are kept in a slice ordered by descending priority; entries with the
// same priority keep the order they were enqueued in. Alongside the slice the
// queue keeps a handle index (handle to current position, or removed) and a
// histogram of live priorities. Every mutation updates all three before it
// returns. Insertion, removal and priority changes are O(n).
//
// Key features:
//   - Stable handles: 1, 2, 3, ... in enqueue order, never reused
//   - Removed handles stay known: lookups report Stale or false, not an error
//   - Handles that were never issued are rejected with ErrInvalidReference
//   - Positional access and removal with 1-based positions
//   - Per-priority counts through Stats and Buckets
//
// Basic usage:
//
//	pq := priority.NewQueue[string]()
//
//	low, _ := pq.Enqueue("low", 1)
//	pq.Enqueue("high", 2)
//
//	v, _ := pq.Front() // "high"
//
//	pos, _ := pq.ChangePriority(low, 3) // 1
//	v, _ = pq.Dequeue()                 // "low"
//
//	pos, _ = pq.PositionOf(low) // priority.Stale
//	ok, _ := pq.RemoveByHandle(low) // false
//
//	_, err := pq.PositionOf(42)
//	errors.Is(err, priority.ErrInvalidReference) // true
//
// Priorities are float64 values compared with < and counted with ==. NaN is
// rejected with ErrInvalidType. Histogram buckets are keyed by the exact
// value, so a priority computed at run time as 0.1+0.2 (0.30000000000000004)
// and the literal 0.3 count separately. Constant expressions are folded
// exactly by the compiler and do not show the difference.
//
// A Queue is not safe for concurrent use, and ForEach and All are undefined
// if the callback or loop body mutates the queue being iterated.
package priority
