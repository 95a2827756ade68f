package parquet

import "sync"

// DefaultAllocator is a sync.Pool-backed Allocator bucketing buffers by
// power-of-two size classes, mirroring the pooling pattern compress.Compressor
// and compress.Decompressor use for codec scratch space. Callers that want to
// reuse an application-level buffer pool can supply their own Allocator to
// NewPageWriteStore instead.
type DefaultAllocator struct {
	pools [32]sync.Pool
}

func sizeClass(n int) int {
	class := 0
	for (1 << class) < n {
		class++
	}
	return class
}

func (a *DefaultAllocator) Allocate(size int) []byte {
	if size <= 0 {
		return nil
	}
	class := sizeClass(size)
	if class >= len(a.pools) {
		return make([]byte, size)
	}
	if buf, _ := a.pools[class].Get().([]byte); buf != nil {
		return buf[:size]
	}
	return make([]byte, size, 1<<class)
}

func (a *DefaultAllocator) Release(buf []byte) {
	if cap(buf) == 0 {
		return
	}
	class := sizeClass(cap(buf))
	if class >= len(a.pools) || cap(buf) != 1<<class {
		return
	}
	a.pools[class].Put(buf[:0:cap(buf)]) //nolint:staticcheck
}

var _ Allocator = (*DefaultAllocator)(nil)
