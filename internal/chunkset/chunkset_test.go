package chunkset

import "testing"

func TestInsertContainsRemove(t *testing.T) {
	s := New()
	s.Insert(100)
	s.Insert(200)

	if !s.Contains(100) || !s.Contains(200) {
		t.Fatal("expected both handles present")
	}
	if s.Contains(300) {
		t.Fatal("did not expect handle 300 present")
	}

	if !s.Remove(100) {
		t.Fatal("expected Remove(100) to report present")
	}
	if s.Contains(100) {
		t.Fatal("expected handle 100 gone after remove")
	}
	if s.Remove(100) {
		t.Fatal("expected second Remove(100) to report absent")
	}
}

func TestMinMaxTakeMin(t *testing.T) {
	s := New()
	for _, h := range []Handle{500, 100, 300, 200, 400} {
		s.Insert(h)
	}

	if min, ok := s.Min(); !ok || min != 100 {
		t.Fatalf("Min() = %d, %v; want 100, true", min, ok)
	}
	if max, ok := s.Max(); !ok || max != 500 {
		t.Fatalf("Max() = %d, %v; want 500, true", max, ok)
	}

	got, ok := s.TakeMin()
	if !ok || got != 100 {
		t.Fatalf("TakeMin() = %d, %v; want 100, true", got, ok)
	}
	if s.Contains(100) {
		t.Fatal("expected 100 removed by TakeMin")
	}
	if s.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", s.Len())
	}
}

func TestTakeMinEmpty(t *testing.T) {
	s := New()
	if _, ok := s.TakeMin(); ok {
		t.Fatal("expected TakeMin on empty set to report false")
	}
}

func TestPredecessorSuccessor(t *testing.T) {
	s := New()
	for _, h := range []Handle{100, 200, 300} {
		s.Insert(h)
	}

	if p, ok := s.Predecessor(200); !ok || p != 100 {
		t.Fatalf("Predecessor(200) = %d, %v; want 100, true", p, ok)
	}
	if p, ok := s.Predecessor(100); ok {
		t.Fatalf("Predecessor(100) = %d, %v; want none", p, ok)
	}
	if succ, ok := s.Successor(200); !ok || succ != 300 {
		t.Fatalf("Successor(200) = %d, %v; want 300, true", succ, ok)
	}
	if succ, ok := s.Successor(300); ok {
		t.Fatalf("Successor(300) = %d, %v; want none", succ, ok)
	}
}

func TestMoveRangeMovesHalfOpenInterval(t *testing.T) {
	from := New()
	to := New()
	for _, h := range []Handle{0, 256, 512, 768, 1024} {
		from.Insert(h)
	}

	n := MoveRange(from, to, 256, 1024)
	if n != 3 {
		t.Fatalf("MoveRange moved %d handles, want 3", n)
	}

	for _, h := range []Handle{256, 512, 768} {
		if from.Contains(h) {
			t.Errorf("expected %d removed from source", h)
		}
		if !to.Contains(h) {
			t.Errorf("expected %d present in destination", h)
		}
	}
	if !from.Contains(0) || !from.Contains(1024) {
		t.Error("expected handles outside the range to remain in source")
	}
}

func TestMoveRangeDiscardsWhenDestNil(t *testing.T) {
	from := New()
	from.Insert(10)
	from.Insert(20)

	n := MoveRange(from, nil, 0, 100)
	if n != 2 {
		t.Fatalf("MoveRange moved %d handles, want 2", n)
	}
	if from.Len() != 0 {
		t.Fatalf("expected source empty after discard, len = %d", from.Len())
	}
}
