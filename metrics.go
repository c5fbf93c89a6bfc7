package basicstring

import (
	"github.com/kirillidk/basicstring/alloc"
	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	allocations        prometheus.Counter
	allocationFailures prometheus.Counter
	frees              prometheus.Counter
	bytesInUse         prometheus.Gauge
	allocationBytes    prometheus.Histogram
}

// meteredAllocator reports every request it forwards to the wrapped allocator.
type meteredAllocator struct {
	allocator alloc.Allocator
	metrics   *metrics
}

var _ alloc.Allocator = (*meteredAllocator)(nil)

func (a *meteredAllocator) Alloc(size int) error {
	if err := a.allocator.Alloc(size); err != nil {
		a.metrics.allocationFailures.Inc()
		return err
	}
	a.metrics.allocations.Inc()
	a.metrics.bytesInUse.Add(float64(size))
	a.metrics.allocationBytes.Observe(float64(size))
	return nil
}

func (a *meteredAllocator) Free(size int) {
	a.allocator.Free(size)
	a.metrics.frees.Inc()
	a.metrics.bytesInUse.Sub(float64(size))
}
