package tcps

import (
	"errors"

	"github.com/markmansi/tcps/internal/hostpage"
)

// Ops holds the collaborator callbacks the pool consumes; see spec §6.1.
type Ops struct {
	// Evict is invoked by ReclaimOne for each still-live chunk of a victim
	// page. On success it must call Free(handle) before returning nil; on
	// failure it must not touch the chunk.
	Evict func(handle Handle) error
}

// Config configures a Pool. All fields are optional; zero values pick the
// reference configuration from spec §3 (page size 4096, classes
// {2048, 1024, 256}, retry budget 8).
type Config struct {
	// PageSize is the host page size in bytes. Defaults to 4096.
	PageSize uint64

	// ClassSizes are the fixed chunk sizes, strictly decreasing, each
	// dividing PageSize. Defaults to {2048, 1024, 256}.
	ClassSizes []uint64

	// RetryBudget is the retry count reported by Pool.DefaultRetryBudget,
	// for callers that want a default to pass to ReclaimOne; ReclaimOne
	// itself always uses the count it is given. Defaults to 8.
	RetryBudget int

	// Source supplies and receives host pages. Defaults to an mmap-backed
	// source sized to PageSize.
	Source hostpage.PageSource

	// Ops, if non-nil, enables reclamation via ReclaimOne.
	Ops *Ops
}

var errRetryBudget = errors.New("tcps: RetryBudget must be >= 0")

func normalizeConfig(cfg Config) (Config, error) {
	if cfg.PageSize == 0 {
		cfg.PageSize = defaultPageSize
	}
	if len(cfg.ClassSizes) == 0 {
		cfg.ClassSizes = defaultClassSizes(cfg.PageSize)
	}
	if cfg.RetryBudget < 0 {
		return Config{}, errRetryBudget
	}
	if cfg.RetryBudget == 0 {
		cfg.RetryBudget = defaultRetryBudget
	}
	if cfg.Source == nil {
		cfg.Source = hostpage.NewMmapSource(cfg.PageSize)
	}
	return cfg, nil
}

const (
	defaultPageSize    = 4096
	defaultRetryBudget = 8
)

// defaultClassSizes returns the reference class table from spec §3 when
// pageSize matches the reference page size, and a single-class table sized
// to the whole page otherwise (a caller supplying an unusual page size is
// expected to also supply ClassSizes).
func defaultClassSizes(pageSize uint64) []uint64 {
	if pageSize == defaultPageSize {
		return []uint64{2048, 1024, 256}
	}
	return []uint64{pageSize}
}
