//go:build darwin

package hostpage

import (
	"golang.org/x/sys/unix"
)

type mmapSource struct {
	pageSize uint64
}

func newMmapSource(pageSize uint64) *mmapSource {
	return &mmapSource{pageSize: pageSize}
}

func (s *mmapSource) AllocPage() (*Page, error) {
	mem, err := unix.Mmap(-1, 0, int(s.pageSize), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		return nil, err
	}
	return newPageFromBytes(mem), nil
}

func (s *mmapSource) FreePage(p *Page) error {
	return unix.Munmap(p.mem)
}
