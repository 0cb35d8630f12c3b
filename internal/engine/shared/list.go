// Package shared holds the lock-free containers the editor uses to
// publish immutable snapshots from the single writer goroutine to any
// number of readers.
package shared

import (
	"fmt"
	"sync/atomic"
)

// List is an append-or-replace list of immutable snapshots. Exactly one
// goroutine may call Store; any goroutine may read through a View.
// Every Store swaps in a fresh backing slice, so a slice obtained by a
// reader is never written again.
type List[T any] struct {
	items atomic.Pointer[[]T]
}

// NewList returns an empty list.
func NewList[T any]() *List[T] {
	l := &List[T]{}
	empty := make([]T, 0)
	l.items.Store(&empty)
	return l
}

// Store publishes item at index. index must be at most the current
// length; storing at the length appends.
func (l *List[T]) Store(index int, item T) {
	cur := *l.items.Load()
	if index < 0 || index > len(cur) {
		panic(fmt.Sprintf("shared.List: store at %d with length %d", index, len(cur)))
	}
	next := make([]T, len(cur), len(cur)+1)
	copy(next, cur)
	if index == len(next) {
		next = append(next, item)
	} else {
		next[index] = item
	}
	l.items.Store(&next)
}

// Len returns the current length.
func (l *List[T]) Len() int {
	return len(*l.items.Load())
}

// View returns a read-only handle sharing this list's storage.
func (l *List[T]) View() View[T] {
	return View[T]{list: l}
}

// View is the reader side of a List. It cannot store, so handing a View
// to a goroutine cannot break the single-writer rule.
type View[T any] struct {
	list *List[T]
}

// Load returns the current snapshot slice. The slice is immutable;
// callers may hold it for as long as they like.
func (v View[T]) Load() []T {
	return *v.list.items.Load()
}

// Get returns the item at index from the current snapshot.
func (v View[T]) Get(index int) T {
	return v.Load()[index]
}

// Len returns the current length.
func (v View[T]) Len() int {
	return v.list.Len()
}
