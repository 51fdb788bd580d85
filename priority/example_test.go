package priority_test

import (
	"errors"
	"fmt"

	"github.com/daveomri/basic-js-priority-queue/priority"
)

// ExampleQueue walks through handles, repositioning and removal.
func ExampleQueue() {
	pq := priority.NewQueue[string]()

	first, _ := pq.Enqueue("I came here first!", 1)
	second, _ := pq.Enqueue("But I have higher priority!", 2)

	front, _ := pq.Front()
	fmt.Println(front)
	fmt.Println(pq.Stats()[2])

	pos, _ := pq.ChangePriority(first, 3)
	fmt.Println(pos)

	v, _ := pq.Dequeue()
	fmt.Println(v, pq.Len())

	item, ok, _ := pq.At(1)
	fmt.Println(item.Handle == second, item.Value, ok)

	// Output:
	// But I have higher priority!
	// 1
	// 1
	// I came here first! 1
	// true But I have higher priority! true
}

// ExampleQueue_fifo shows that equal priorities keep enqueue order.
func ExampleQueue_fifo() {
	pq := priority.NewQueue[string]()

	_, _ = pq.Enqueue("B", 2)
	_, _ = pq.Enqueue("C", -5)
	_, _ = pq.Enqueue("D", -5)
	_, _ = pq.Enqueue("D2", -5)

	_ = pq.ForEach(func(value string, position int) {
		fmt.Println(position, value)
	})

	// Output:
	// 1 B
	// 2 C
	// 3 D
	// 4 D2
}

// ExampleQueue_staleHandles shows the difference between a removed handle and
// one that was never issued.
func ExampleQueue_staleHandles() {
	pq := priority.NewQueue[int]()

	h, _ := pq.Enqueue(7, 0)

	removed, _ := pq.RemoveByHandle(h)
	fmt.Println(removed)

	removed, _ = pq.RemoveByHandle(h)
	fmt.Println(removed)

	pos, _ := pq.PositionOf(h)
	fmt.Println(pos == priority.Stale)

	_, err := pq.PositionOf(h + 1)
	fmt.Println(errors.Is(err, priority.ErrInvalidReference))

	// Output:
	// true
	// false
	// true
	// true
}

// ExampleQueue_sharedValue mirrors passing the same mutable value several
// times; the queue never copies or inspects it.
func ExampleQueue_sharedValue() {
	type object struct {
		a, b int
		c    string
	}
	shared := &object{a: 2, b: 1}
	fn := func() string { return "I am function returning a string!" }

	pq := priority.NewQueue[any]()
	_, _ = pq.Enqueue("But I have higher priority!", 2)
	_, _ = pq.Enqueue(fn, 7)
	ref1, _ := pq.Enqueue(shared, -12.123456789)
	ref2, _ := pq.Enqueue(shared, -12.123456789)
	ref3, _ := pq.Enqueue(shared, -12.123456789)

	pos, _ := pq.PositionOf(ref3)
	fmt.Println(pos)

	removed, _ := pq.RemoveByHandle(ref2)
	pos, _ = pq.PositionOf(ref3)
	fmt.Println(removed, pos, pq.TotalIssued(), pq.Len())

	removed, _ = pq.RemoveByPosition(4)
	fmt.Println(removed)
	removed, _ = pq.RemoveByPosition(4)
	fmt.Println(removed)

	shared.c = "some new property"
	pos, _ = pq.ChangePriority(ref1, 999)
	front, _ := pq.Front()
	fmt.Println(pos, front.(*object).c)

	pq.Clear()
	fmt.Println(pq.Len(), pq.TotalIssued())

	// Output:
	// 5
	// true 4 5 4
	// true
	// false
	// 1 some new property
	// 0 5
}

// ExampleQueue_Buckets lists live priorities from highest to lowest.
func ExampleQueue_Buckets() {
	pq := priority.NewQueue[string]()
	_, _ = pq.Enqueue("a", 1)
	_, _ = pq.Enqueue("b", 5)
	_, _ = pq.Enqueue("c", 1)

	for _, b := range pq.Buckets() {
		fmt.Printf("%g: %d\n", b.Priority, b.Count)
	}

	// Output:
	// 5: 1
	// 1: 2
}
