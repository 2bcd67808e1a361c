package tcps

import "testing"

func TestNormalizeConfigAppliesReferenceDefaults(t *testing.T) {
	cfg, err := normalizeConfig(Config{})
	if err != nil {
		t.Fatalf("normalizeConfig: %v", err)
	}
	if cfg.PageSize != 4096 {
		t.Fatalf("PageSize = %d, want 4096", cfg.PageSize)
	}
	if len(cfg.ClassSizes) != 3 || cfg.ClassSizes[0] != 2048 || cfg.ClassSizes[1] != 1024 || cfg.ClassSizes[2] != 256 {
		t.Fatalf("ClassSizes = %v, want [2048 1024 256]", cfg.ClassSizes)
	}
	if cfg.RetryBudget != 8 {
		t.Fatalf("RetryBudget = %d, want 8", cfg.RetryBudget)
	}
	if cfg.Source == nil {
		t.Fatal("Source should default to an mmap-backed source")
	}
}

func TestNormalizeConfigRejectsNegativeRetryBudget(t *testing.T) {
	_, err := normalizeConfig(Config{RetryBudget: -1})
	if err != errRetryBudget {
		t.Fatalf("normalizeConfig: got %v, want errRetryBudget", err)
	}
}

func TestNormalizeConfigPreservesExplicitClassSizes(t *testing.T) {
	cfg, err := normalizeConfig(Config{ClassSizes: []uint64{512, 128}})
	if err != nil {
		t.Fatalf("normalizeConfig: %v", err)
	}
	if len(cfg.ClassSizes) != 2 || cfg.ClassSizes[0] != 512 || cfg.ClassSizes[1] != 128 {
		t.Fatalf("ClassSizes = %v, want [512 128]", cfg.ClassSizes)
	}
}

func TestNewRejectsInvalidClassTable(t *testing.T) {
	_, err := New(Config{ClassSizes: []uint64{300}})
	if err == nil {
		t.Fatal("expected New to reject a class size that does not divide the page size")
	}
}
