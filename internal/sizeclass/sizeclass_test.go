package sizeclass

import "testing"

func TestNewValidatesStrictlyDecreasing(t *testing.T) {
	if _, err := New(4096, []uint64{1024, 2048}); err == nil {
		t.Fatal("expected error for non-decreasing class sizes")
	}
	if _, err := New(4096, []uint64{1024, 1024}); err == nil {
		t.Fatal("expected error for equal class sizes")
	}
}

func TestNewValidatesDivisibility(t *testing.T) {
	if _, err := New(4096, []uint64{3000}); err == nil {
		t.Fatal("expected error for class size not dividing page size")
	}
}

func TestNewValidatesPageSize(t *testing.T) {
	if _, err := New(4095, []uint64{256}); err == nil {
		t.Fatal("expected error for non power-of-two page size")
	}
	if _, err := New(0, []uint64{256}); err == nil {
		t.Fatal("expected error for zero page size")
	}
}

func TestNewRejectsEmpty(t *testing.T) {
	if _, err := New(4096, nil); err != ErrEmpty {
		t.Fatalf("expected ErrEmpty, got %v", err)
	}
}

func referenceTable(t *testing.T) *Table {
	t.Helper()
	tbl, err := New(4096, []uint64{2048, 1024, 256})
	if err != nil {
		t.Fatalf("unexpected error building reference table: %v", err)
	}
	return tbl
}

func TestClassOfTightestFit(t *testing.T) {
	tbl := referenceTable(t)

	cases := []struct {
		size      uint64
		wantClass int
		wantOK    bool
	}{
		{1, 2, true},
		{256, 2, true},
		{257, 1, true},
		{1024, 1, true},
		{1025, 0, true},
		{2048, 0, true},
		{2049, 0, false},
		{0, 0, false},
	}

	for _, c := range cases {
		class, ok := tbl.ClassOf(c.size)
		if ok != c.wantOK {
			t.Fatalf("ClassOf(%d): ok = %v, want %v", c.size, ok, c.wantOK)
		}
		if ok && class != c.wantClass {
			t.Fatalf("ClassOf(%d): class = %d, want %d", c.size, class, c.wantClass)
		}
	}
}

func TestChunksPerPage(t *testing.T) {
	tbl := referenceTable(t)
	if got := tbl.ChunksPerPage(0); got != 2 {
		t.Errorf("ChunksPerPage(0) = %d, want 2", got)
	}
	if got := tbl.ChunksPerPage(1); got != 4 {
		t.Errorf("ChunksPerPage(1) = %d, want 4", got)
	}
	if got := tbl.ChunksPerPage(2); got != 16 {
		t.Errorf("ChunksPerPage(2) = %d, want 16", got)
	}
}

func TestCountAndLargest(t *testing.T) {
	tbl := referenceTable(t)
	if tbl.Count() != 3 {
		t.Errorf("Count() = %d, want 3", tbl.Count())
	}
	if tbl.Largest() != 2048 {
		t.Errorf("Largest() = %d, want 2048", tbl.Largest())
	}
}
