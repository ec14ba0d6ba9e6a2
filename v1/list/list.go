package list

import (
	"container/list"
	"sort"

	"github.com/mirkobrombin/go-tbx/v1/critsect"
)

// List is a guarded doubly linked list of values of type T.
type List[T any] struct {
	items *list.List
}

// New returns an empty list.
func New[T any]() *List[T] {
	return &List[T]{items: list.New()}
}

// PushFront inserts v at the front of the list.
func (l *List[T]) PushFront(v T) {
	critsect.With(func() {
		l.items.PushFront(v)
	})
}

// PushBack inserts v at the back of the list.
func (l *List[T]) PushBack(v T) {
	critsect.With(func() {
		l.items.PushBack(v)
	})
}

// PopFront removes and returns the first value. The boolean return indicates
// whether the list was non-empty.
func (l *List[T]) PopFront() (T, bool) {
	var v T
	var ok bool
	critsect.With(func() {
		if e := l.items.Front(); e != nil {
			v, ok = l.items.Remove(e).(T), true
		}
	})
	return v, ok
}

// PopBack removes and returns the last value. The boolean return indicates
// whether the list was non-empty.
func (l *List[T]) PopBack() (T, bool) {
	var v T
	var ok bool
	critsect.With(func() {
		if e := l.items.Back(); e != nil {
			v, ok = l.items.Remove(e).(T), true
		}
	})
	return v, ok
}

// Len reports the number of values in the list.
func (l *List[T]) Len() int {
	var n int
	critsect.With(func() {
		n = l.items.Len()
	})
	return n
}

// Clear removes all values.
func (l *List[T]) Clear() {
	critsect.With(func() {
		l.items.Init()
	})
}

// Items returns a snapshot of the values in list order.
func (l *List[T]) Items() []T {
	var out []T
	critsect.With(func() {
		out = make([]T, 0, l.items.Len())
		for e := l.items.Front(); e != nil; e = e.Next() {
			out = append(out, e.Value.(T))
		}
	})
	return out
}

// Sort reorders the list so that less reports true for consecutive pairs.
// The sort is stable.
func (l *List[T]) Sort(less func(a, b T) bool) {
	critsect.With(func() {
		vals := make([]T, 0, l.items.Len())
		for e := l.items.Front(); e != nil; e = e.Next() {
			vals = append(vals, e.Value.(T))
		}
		sort.SliceStable(vals, func(i, j int) bool {
			return less(vals[i], vals[j])
		})
		l.items.Init()
		for _, v := range vals {
			l.items.PushBack(v)
		}
	})
}
