package stealpool

import (
	"sync"
	"testing"
)

func TestDequeFrontBackOrder(t *testing.T) {
	d := NewDeque[int](4)

	d.PushBack(1)
	d.PushBack(2)
	d.PushBack(3)
	d.PushFront(0)

	if got := d.Len(); got != 4 {
		t.Fatalf("Len = %d; want 4", got)
	}
	if v, ok := d.PeekFront(); !ok || v != 0 {
		t.Fatalf("PeekFront = %d,%v; want 0,true", v, ok)
	}

	for want := 0; want <= 2; want++ {
		v, ok := d.PopFront()
		if !ok || v != want {
			t.Fatalf("PopFront = %d,%v; want %d,true", v, ok, want)
		}
	}
	if v, ok := d.PopBack(); !ok || v != 3 {
		t.Fatalf("PopBack = %d,%v; want 3,true", v, ok)
	}
	if !d.Empty() {
		t.Fatal("deque not empty after draining")
	}
}

func TestDequePopEmpty(t *testing.T) {
	d := NewDeque[string](2)

	if v, ok := d.PopFront(); ok || v != "" {
		t.Fatalf("PopFront on empty = %q,%v; want \"\",false", v, ok)
	}
	if v, ok := d.PopBack(); ok || v != "" {
		t.Fatalf("PopBack on empty = %q,%v; want \"\",false", v, ok)
	}
	if _, ok := d.PeekFront(); ok {
		t.Fatal("PeekFront on empty returned true")
	}
}

func TestDequeGrowWithWrap(t *testing.T) {
	d := NewDeque[int](4)

	d.PushBack(1)
	d.PushBack(2)
	d.PushBack(3)

	// Pop one to move head, then refill past capacity to force a grow
	// while the buffer is wrapped.
	if v, _ := d.PopFront(); v != 1 {
		t.Fatalf("expected to pop 1, got %d", v)
	}
	d.PushBack(4)
	d.PushBack(5)
	d.PushBack(6)

	expected := []int{2, 3, 4, 5, 6}
	for i, want := range expected {
		v, ok := d.PopFront()
		if !ok {
			t.Fatalf("Pop %d returned false", i)
		}
		if v != want {
			t.Fatalf("FIFO order broken after grow: got %d, want %d", v, want)
		}
	}
}

func TestDequeClear(t *testing.T) {
	d := NewDeque[int](4)
	for i := 0; i < 10; i++ {
		d.PushBack(i)
	}
	d.Clear()

	if !d.Empty() || d.Len() != 0 {
		t.Fatalf("after Clear: Len = %d; want 0", d.Len())
	}
	d.PushBack(42)
	if v, ok := d.PopFront(); !ok || v != 42 {
		t.Fatalf("deque unusable after Clear: got %d,%v", v, ok)
	}
}

func TestDequeConcurrentPushers(t *testing.T) {
	const (
		pushers = 8
		perPush = 1000
	)
	d := NewDeque[int](16)

	var wg sync.WaitGroup
	wg.Add(pushers)
	for g := 0; g < pushers; g++ {
		go func() {
			defer wg.Done()
			for i := 0; i < perPush; i++ {
				d.PushBack(i)
			}
		}()
	}
	wg.Wait()

	if got := d.Len(); got != pushers*perPush {
		t.Fatalf("Len = %d; want %d", got, pushers*perPush)
	}
	count := 0
	for {
		if _, ok := d.PopFront(); !ok {
			break
		}
		count++
	}
	if count != pushers*perPush {
		t.Fatalf("drained %d; want %d", count, pushers*perPush)
	}
}
