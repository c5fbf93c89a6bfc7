package alloc

import "fmt"

// MaxHeapSize is the largest request the heap allocator lets through: 1 TiB on 64-bit platforms
// and 1 GiB on 32-bit ones. Anything above it is refused with [ErrOutOfMemory] instead of being
// handed to the runtime, which aborts the process on allocations it can't satisfy.
const MaxHeapSize = 1 << 30 << (10 * (^uint(0) >> 63))

type HeapAllocator struct{}

var _ Allocator = HeapAllocator{}

// Heap returns the default allocator, backed by the Go heap with no budget of its own.
//
// It only refuses requests above [MaxHeapSize]. A request below that limit but beyond what the
// machine can actually provide still reaches the runtime, which aborts the process instead of
// returning [ErrOutOfMemory]. Use [Budget] when out of memory must be reported reliably.
func Heap() HeapAllocator {
	return HeapAllocator{}
}

func (HeapAllocator) Alloc(size int) error {
	if size < 0 || size > MaxHeapSize {
		return fmt.Errorf("alloc %d bytes: %w", size, ErrOutOfMemory)
	}
	return nil
}

func (HeapAllocator) Free(int) {}
