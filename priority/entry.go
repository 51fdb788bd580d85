package priority

// Handle identifies one enqueued value for the lifetime of its queue.
// Handles are issued as 1, 2, 3, ... and never reused.
type Handle int64

// Stale is the position reported for a handle whose value has left the queue.
const Stale = -1

// entry is one queued value. handle never changes; priority changes only
// through ChangePriority, which also moves the entry.
type entry[V any] struct {
	priority float64
	value    V
	handle   Handle
}

// Item is the copy of a live entry returned by At.
type Item[V any] struct {
	Handle Handle
	Value  V
}
