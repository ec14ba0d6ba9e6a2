package list

import (
	"testing"

	"golang.org/x/sync/errgroup"
)

func TestPushPopOrder(t *testing.T) {
	l := New[int]()
	l.PushBack(1)
	l.PushBack(2)
	l.PushFront(0)

	if n := l.Len(); n != 3 {
		t.Fatalf("len = %d, want 3", n)
	}
	for want := 0; want <= 2; want++ {
		v, ok := l.PopFront()
		if !ok || v != want {
			t.Fatalf("pop = %d ok %v, want %d", v, ok, want)
		}
	}
	if _, ok := l.PopFront(); ok {
		t.Fatal("expected empty list")
	}
}

func TestPopBack(t *testing.T) {
	l := New[string]()
	l.PushBack("a")
	l.PushBack("b")
	v, ok := l.PopBack()
	if !ok || v != "b" {
		t.Fatalf("pop back = %q ok %v", v, ok)
	}
}

func TestItemsSnapshot(t *testing.T) {
	l := New[int]()
	for i := 0; i < 5; i++ {
		l.PushBack(i)
	}
	items := l.Items()
	if len(items) != 5 {
		t.Fatalf("snapshot len = %d, want 5", len(items))
	}
	for i, v := range items {
		if v != i {
			t.Fatalf("items[%d] = %d", i, v)
		}
	}
}

func TestSort(t *testing.T) {
	l := New[int]()
	for _, v := range []int{3, 1, 4, 1, 5, 9, 2, 6} {
		l.PushBack(v)
	}
	l.Sort(func(a, b int) bool { return a < b })
	items := l.Items()
	for i := 1; i < len(items); i++ {
		if items[i-1] > items[i] {
			t.Fatalf("not sorted: %v", items)
		}
	}
}

func TestClear(t *testing.T) {
	l := New[int]()
	l.PushBack(1)
	l.Clear()
	if l.Len() != 0 {
		t.Fatal("expected empty list after clear")
	}
}

func TestConcurrentPush(t *testing.T) {
	const workers = 8
	const pushes = 500

	l := New[int]()
	var eg errgroup.Group
	for w := 0; w < workers; w++ {
		eg.Go(func() error {
			for i := 0; i < pushes; i++ {
				l.PushBack(i)
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		t.Fatalf("wait: %v", err)
	}
	if n := l.Len(); n != workers*pushes {
		t.Fatalf("len = %d, want %d", n, workers*pushes)
	}
}
