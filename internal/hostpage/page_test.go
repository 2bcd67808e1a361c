package hostpage

import "testing"

func TestMmapSourceRoundTrip(t *testing.T) {
	src := NewMmapSource(4096)

	p, err := src.AllocPage()
	if err != nil {
		t.Fatalf("AllocPage failed: %v", err)
	}
	if p.Base == 0 {
		t.Fatal("expected a non-zero page base address")
	}

	view := p.Bytes(p.Base, 256)
	if len(view) != 256 {
		t.Fatalf("Bytes() len = %d, want 256", len(view))
	}
	view[0] = 0xAB
	if p.Bytes(p.Base, 256)[0] != 0xAB {
		t.Fatal("expected write through Bytes() view to be visible")
	}

	if err := src.FreePage(p); err != nil {
		t.Fatalf("FreePage failed: %v", err)
	}
}

func TestMmapSourceDistinctPages(t *testing.T) {
	src := NewMmapSource(4096)

	p1, err := src.AllocPage()
	if err != nil {
		t.Fatalf("AllocPage failed: %v", err)
	}
	p2, err := src.AllocPage()
	if err != nil {
		t.Fatalf("AllocPage failed: %v", err)
	}

	if p1.Base == p2.Base {
		t.Fatal("expected distinct page base addresses")
	}

	_ = src.FreePage(p1)
	_ = src.FreePage(p2)
}
