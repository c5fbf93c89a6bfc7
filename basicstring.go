// Package basicstring provides a value-semantic, null-terminated character buffer that is generic
// over the width of its code units.
//
// A [BasicString] exclusively owns its buffer. Copies are always deep, assignment is done by
// copy-and-swap, and no two live strings ever share storage. Instances are not safe for
// concurrent use.
package basicstring

import (
	"errors"
	"fmt"

	"github.com/kirillidk/basicstring/alloc"
)

var (
	ErrOutOfMemory = alloc.ErrOutOfMemory
	ErrOutOfRange  = errors.New("index out of range")
)

// WChar is a wide character unit. It is 32 bits wide, like wchar_t on most Unix systems.
type WChar int32

// Char is the set of code unit types a [BasicString] can hold.
type Char interface {
	~byte | ~uint16 | ~int32
}

type (
	String    = BasicString[byte]
	WString   = BasicString[WChar]
	U16String = BasicString[uint16]
	U32String = BasicString[rune]
)

const defaultCapacity = 15

// BasicString is an owned buffer of capacity+1 code units, the last of which is always the zero
// terminator. The zero value is not usable; strings are created by [New], [Filled] or
// [BasicString.Clone].
type BasicString[C Char] struct {
	storage   storage[C]
	size      int
	capacity  int
	allocator alloc.Allocator
}

// New returns an empty string with a capacity of 15 and a zero-filled buffer.
func New[C Char](configFuncs ...ConfigFunc) (*BasicString[C], error) {
	cfg := newConfig(nil, configFuncs...)

	buf, err := allocate[C](cfg.allocator, defaultCapacity)
	if err != nil {
		return nil, fmt.Errorf("construct: %w", err)
	}

	return &BasicString[C]{
		storage:   buf,
		size:      0,
		capacity:  defaultCapacity,
		allocator: cfg.allocator,
	}, nil
}

// Filled returns a string of count copies of ch. Both its size and capacity are count.
func Filled[C Char](count int, ch C, configFuncs ...ConfigFunc) (*BasicString[C], error) {
	if count < 0 {
		panic("count can't be < 0")
	}

	cfg := newConfig(nil, configFuncs...)

	buf, err := allocate[C](cfg.allocator, count)
	if err != nil {
		return nil, fmt.Errorf("construct %d: %w", count, err)
	}

	for i := range count {
		buf.data[i] = ch
	}
	buf.data[count] = 0

	return &BasicString[C]{
		storage:   buf,
		size:      count,
		capacity:  count,
		allocator: cfg.allocator,
	}, nil
}

// Clone returns an independent deep copy of s.
//
// The copy holds exactly s.Size() code units plus the terminator, so its capacity equals
// s.Size() regardless of the capacity of s. Unless overridden by configFuncs, the copy uses the
// allocator of s.
func (s *BasicString[C]) Clone(configFuncs ...ConfigFunc) (*BasicString[C], error) {
	cfg := newConfig(s.allocator, configFuncs...)

	buf, err := allocate[C](cfg.allocator, s.size)
	if err != nil {
		return nil, fmt.Errorf("copy %d: %w", s.size, err)
	}

	copy(buf.data, s.storage.data[:s.size])
	buf.data[s.size] = 0

	return &BasicString[C]{
		storage:   buf,
		size:      s.size,
		capacity:  s.size,
		allocator: cfg.allocator,
	}, nil
}

// Assign replaces the contents of s with a deep copy of src.
//
// The copy is built from the allocator of s before anything in s is touched, so if it fails s
// is left exactly as it was. Assigning a string to itself does nothing.
func (s *BasicString[C]) Assign(src *BasicString[C]) error {
	if s == src {
		return nil
	}

	tmp, err := src.Clone(func(c *Config) { c.Allocator(s.allocator) })
	if err != nil {
		return fmt.Errorf("assign: %w", err)
	}

	s.Swap(tmp)
	tmp.Release()

	return nil
}

// Move transfers the buffer of src into s without copying its content. The previous buffer of
// s is released and src is left empty, with a size and capacity of 0.
//
// The empty buffer for src is reserved from the allocator of src before anything else happens,
// so on failure neither string is modified.
func (s *BasicString[C]) Move(src *BasicString[C]) error {
	if s == src {
		return nil
	}

	empty, err := allocate[C](src.allocator, 0)
	if err != nil {
		return fmt.Errorf("move: %w", err)
	}

	s.storage.release()
	s.storage, s.size, s.capacity = src.storage, src.size, src.capacity
	src.storage, src.size, src.capacity = empty, 0, 0

	return nil
}

// Swap exchanges the buffers of s and other. Each string keeps its own allocator for the buffers
// it creates later on.
func (s *BasicString[C]) Swap(other *BasicString[C]) {
	s.storage, other.storage = other.storage, s.storage
	s.size, other.size = other.size, s.size
	s.capacity, other.capacity = other.capacity, s.capacity
}

// Release gives the buffer back to its allocator. Using s afterwards is undefined, apart from
// calling Release again, which does nothing.
//
// Calling Release is optional: a string that becomes unreachable has its buffer released
// automatically.
func (s *BasicString[C]) Release() {
	s.storage.release()
	s.size, s.capacity = 0, 0
}

// Size returns the number of code units in the string.
func (s *BasicString[C]) Size() int {
	return s.size
}

// Capacity returns the number of code units the buffer can hold, not counting the terminator.
func (s *BasicString[C]) Capacity() int {
	return s.capacity
}

// At returns the code unit at index i.
//
// No bounds checking is performed: an index outside [0, s.Capacity()] is undefined behaviour and
// is never reported as an error. Use [BasicString.Get] for checked access.
func (s *BasicString[C]) At(i int) C {
	return s.storage.data[i]
}

// Ref returns a pointer to the code unit at index i, allowing it to be modified in place.
//
// No bounds checking is performed, as with [BasicString.At]. Writing at index s.Size() or beyond
// is allowed within the capacity, but nothing keeps the terminator at s.Size() afterwards.
func (s *BasicString[C]) Ref(i int) *C {
	return &s.storage.data[i]
}

// Get returns the code unit at index i, or [ErrOutOfRange] if i is not in [0, s.Size()).
func (s *BasicString[C]) Get(i int) (C, error) {
	if i < 0 || i >= s.size {
		return 0, fmt.Errorf("get %d of %d: %w", i, s.size, ErrOutOfRange)
	}
	return s.storage.data[i], nil
}

// Set stores ch at index i, or returns [ErrOutOfRange] if i is not in [0, s.Size()).
func (s *BasicString[C]) Set(i int, ch C) error {
	if i < 0 || i >= s.size {
		return fmt.Errorf("set %d of %d: %w", i, s.size, ErrOutOfRange)
	}
	s.storage.data[i] = ch
	return nil
}
