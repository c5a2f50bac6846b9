package policy

import "testing"

func TestOrderedMapPreservesInsertionOrder(t *testing.T) {
	m := NewOrderedMap[string, int]()
	m.Set("c", 3)
	m.Set("a", 1)
	m.Set("b", 2)

	want := []string{"c", "a", "b"}
	got := m.Keys()
	if len(got) != len(want) {
		t.Fatalf("Keys() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Keys()[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	if v, ok := m.Get("a"); !ok || v != 1 {
		t.Fatalf("Get(a) = %v, %v, want 1, true", v, ok)
	}

	m.Delete("a")
	if _, ok := m.Get("a"); ok {
		t.Fatalf("Get(a) after Delete still found")
	}
	if m.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", m.Len())
	}
}

func TestSetBasics(t *testing.T) {
	s := NewSet[int]()
	s.Add(1)
	s.Add(2)
	s.Add(1)

	if s.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", s.Len())
	}
	if !s.Contains(1) || !s.Contains(2) {
		t.Fatalf("expected 1 and 2 to be members")
	}
	s.Delete(1)
	if s.Contains(1) {
		t.Fatalf("expected 1 to be removed")
	}
}

func TestDequeFIFOAndLIFOFront(t *testing.T) {
	d := NewDeque[int]()
	d.PushBack(1)
	d.PushBack(2)
	d.PushFront(0)

	// order is now 0, 1, 2
	for _, want := range []int{0, 1, 2} {
		got, ok := d.PopFront()
		if !ok || got != want {
			t.Fatalf("PopFront() = %v, %v, want %d, true", got, ok, want)
		}
	}
	if _, ok := d.PopFront(); ok {
		t.Fatalf("expected empty deque")
	}
}
