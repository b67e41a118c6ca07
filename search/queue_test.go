package search

import "testing"

func TestOpenQueue_PopsLowestFFirst(t *testing.T) {
	q := newOpenQueue()
	a, b, c := &Node{index: 1}, &Node{index: 2}, &Node{index: 3}
	q.push(a, 5)
	q.push(b, 1)
	q.push(c, 3)

	order := []int{q.pop().node.index, q.pop().node.index, q.pop().node.index}
	want := []int{2, 3, 1}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("pop order = %v, want %v", order, want)
		}
	}
}

func TestOpenQueue_TiesBreakByInsertionOrder(t *testing.T) {
	q := newOpenQueue()
	first, second, third := &Node{index: 1}, &Node{index: 2}, &Node{index: 3}
	q.push(first, 10)
	q.push(second, 10)
	q.push(third, 10)

	if q.pop().node != first {
		t.Error("expected the first-pushed item to pop first on a tie")
	}
	if q.pop().node != second {
		t.Error("expected the second-pushed item to pop second on a tie")
	}
	if q.pop().node != third {
		t.Error("expected the third-pushed item to pop third on a tie")
	}
}

func TestOpenQueue_PushMarksNodeQueued(t *testing.T) {
	q := newOpenQueue()
	n := &Node{}
	q.push(n, 1)
	if !n.IsQueued() {
		t.Error("expected push to mark the node queued")
	}
}

func TestOpenQueue_StaleEntryIsLeftBehindNotRemoved(t *testing.T) {
	// spec §4.3: a cheaper relaxation pushes a fresh item and leaves
	// the stale one behind rather than repositioning it in the heap.
	q := newOpenQueue()
	n := &Node{index: 7}
	q.push(n, 10)
	q.push(n, 2) // cheaper f for the same node; the f=10 entry stays queued
	if q.Len() != 2 {
		t.Fatalf("expected both entries to remain in the heap, got len %d", q.Len())
	}
	if q.pop().node.index != 7 {
		t.Error("expected the cheaper entry to pop first")
	}
}
