package hostpage

import "unsafe"

// addrOf returns the address of the first byte backing mem. Go's garbage
// collector never moves heap objects, and mmap'd memory is not
// GC-tracked at all, so this uintptr stays valid for as long as mem itself
// stays reachable — the same assumption matrixone's fixedSizeMmapAllocator
// relies on when it stores a slab's base as unsafe.Pointer.
func addrOf(mem []byte) uintptr {
	return uintptr(unsafe.Pointer(unsafe.SliceData(mem)))
}
