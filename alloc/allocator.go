// This package contains the main [Allocator] interface and several implementations.
package alloc

import "errors"

var (
	ErrOutOfMemory = errors.New("out of memory")
)

// Allocator accounts for the memory backing string buffers.
//
// The buffer itself is always made by the Go runtime. An allocator only decides whether a
// request of the given size in bytes may proceed, and is told when that memory is given back.
//
// Implementations must be safe for concurrent use: a single allocator is usually shared by many
// strings, and Free may be called from the runtime's cleanup goroutine.
type Allocator interface {
	// Alloc reserves size bytes. It returns an error wrapping [ErrOutOfMemory] if the request
	// can't be satisfied.
	Alloc(size int) error
	// Free returns size bytes previously reserved by Alloc.
	Free(size int)
}
