package priority

import "errors"

// Kind classifies the contract violations a Queue reports.
type Kind uint8

const (
	// InvalidType means an argument is not of the accepted shape, such as a
	// NaN priority or a nil callback.
	InvalidType Kind = iota + 1
	// OutOfRange means a 1-based position argument is zero or negative.
	OutOfRange
	// InvalidReference means a handle was never issued by the queue.
	InvalidReference
	// EmptyQueue means Front or Dequeue was called on an empty queue.
	EmptyQueue
)

func (k Kind) String() string {
	switch k {
	case InvalidType:
		return "invalid type"
	case OutOfRange:
		return "out of range"
	case InvalidReference:
		return "invalid reference"
	case EmptyQueue:
		return "empty queue"
	default:
		return "unknown"
	}
}

// Sentinels for matching queue errors with errors.Is. Each one matches every
// *Error of the same Kind regardless of Op and Detail. They are plain values,
// so nothing a caller does to an *Error it received can change them.
var (
	ErrInvalidType      error = sentinel(InvalidType)
	ErrOutOfRange       error = sentinel(OutOfRange)
	ErrInvalidReference error = sentinel(InvalidReference)
	ErrEmptyQueue       error = sentinel(EmptyQueue)
)

type sentinel Kind

func (s sentinel) Error() string {
	return "priority: " + Kind(s).String()
}

// Error is returned by every Queue method that rejects its arguments.
// It matches the sentinel of the same Kind under errors.Is.
type Error struct {
	Op     string
	Kind   Kind
	Detail string
}

func (e *Error) Error() string {
	msg := "priority: "
	if e.Op != "" {
		msg += e.Op + ": "
	}
	msg += e.Kind.String()
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

// Is matches the sentinel of the same Kind, or an *Error of the same Kind
// whose Op is empty or equal.
func (e *Error) Is(target error) bool {
	switch t := target.(type) {
	case sentinel:
		return Kind(t) == e.Kind
	case *Error:
		return t.Kind == e.Kind && (t.Op == "" || t.Op == e.Op)
	}
	return false
}

// KindOf returns the Kind carried by err, or zero if err is not a queue error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	var s sentinel
	if errors.As(err, &s) {
		return Kind(s)
	}
	return 0
}
