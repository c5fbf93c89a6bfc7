package basicstring

import (
	"fmt"
	"math"
	"runtime"
	"unsafe"

	"github.com/kirillidk/basicstring/alloc"
)

// storage is a single owned buffer of capacity+1 slots together with the allocator it was
// reserved from.
//
// Its bytes are returned to the allocator either by release or, if the owner is dropped
// without being released, by a runtime cleanup attached to the backing array.
type storage[C Char] struct {
	data      []C
	bytes     int
	allocator alloc.Allocator
	cleanup   runtime.Cleanup
}

func allocate[C Char](allocator alloc.Allocator, capacity int) (storage[C], error) {
	var zero C
	width := int(unsafe.Sizeof(zero))

	if capacity < 0 || capacity > math.MaxInt/width-1 {
		return storage[C]{}, fmt.Errorf("allocate %d slots: %w", capacity, ErrOutOfMemory)
	}

	bytes := (capacity + 1) * width
	if err := allocator.Alloc(bytes); err != nil {
		return storage[C]{}, err
	}

	data := make([]C, capacity+1)
	cleanup := runtime.AddCleanup(&data[0], allocator.Free, bytes)

	return storage[C]{
		data:      data,
		bytes:     bytes,
		allocator: allocator,
		cleanup:   cleanup,
	}, nil
}

func (s *storage[C]) release() {
	if s.data == nil {
		return
	}
	s.cleanup.Stop()
	s.allocator.Free(s.bytes)
	*s = storage[C]{}
}
