package alloc

import (
	"fmt"
	"sync/atomic"

	"golang.org/x/sync/semaphore"
)

// BudgetAllocator hands out at most a fixed number of bytes at a time.
//
// Requests that don't fit into what's left of the budget fail immediately; the allocator never
// waits for memory to be freed.
type BudgetAllocator struct {
	limit int64
	inUse *atomic.Int64
	sem   *semaphore.Weighted
}

var _ Allocator = (*BudgetAllocator)(nil)

func Budget(limit int64) *BudgetAllocator {
	if limit < 0 {
		panic("limit can't be < 0")
	}
	return &BudgetAllocator{
		limit: limit,
		inUse: new(atomic.Int64),
		sem:   semaphore.NewWeighted(limit),
	}
}

func (a *BudgetAllocator) Alloc(size int) error {
	if size < 0 || !a.sem.TryAcquire(int64(size)) {
		// The in use figure is read after the failed acquire and may already be stale when
		// other goroutines allocate or free concurrently.
		return fmt.Errorf("alloc %d bytes (%d of %d in use): %w",
			size, a.inUse.Load(), a.limit, ErrOutOfMemory)
	}
	a.inUse.Add(int64(size))
	return nil
}

func (a *BudgetAllocator) Free(size int) {
	a.inUse.Add(-int64(size))
	a.sem.Release(int64(size))
}

// InUse returns the number of bytes currently reserved.
func (a *BudgetAllocator) InUse() int64 {
	return a.inUse.Load()
}

// Limit returns the size of the budget.
func (a *BudgetAllocator) Limit() int64 {
	return a.limit
}
