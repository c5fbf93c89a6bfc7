package basicstring

import (
	"sync"

	"github.com/kirillidk/basicstring/alloc"
	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusConfig is a config of the Prometheus metrics provided by strings.
//
// An instance can be created only by the [Prometheus] function. The zero value is invalid.
// The same instance can be shared by any number of strings, metrics are registered once.
type PrometheusConfig struct {
	// Namespace of the metrics.
	Namespace string
	// Subsystem of the metrics.
	Subsystem string
	// Options for the allocations counter.
	Allocations prometheus.CounterOpts
	// Options for the failed allocations counter.
	AllocationFailures prometheus.CounterOpts
	// Options for the frees counter.
	Frees prometheus.CounterOpts
	// Options for the bytes in use gauge.
	BytesInUse prometheus.GaugeOpts
	// Options for the allocation size histogram.
	AllocationBytes prometheus.HistogramOpts

	registerer prometheus.Registerer
	once       sync.Once
	m          *metrics
}

// Prometheus returns a [PrometheusConfig] with the provided registerer. If registerer is nil,
// metrics will not be registered. Many default parameters can be configured by passing
// configuration functions.
func Prometheus(
	registerer prometheus.Registerer,
	configFuncs ...func(c *PrometheusConfig),
) *PrometheusConfig {
	const (
		namespace = "basicstring"
		subsystem = ""
	)

	c := PrometheusConfig{
		registerer: registerer,
		Namespace:  namespace,
		Subsystem:  subsystem,
		Allocations: prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "allocations",
			Help:      "Number of buffers allocated",
		},
		AllocationFailures: prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "allocation_failures",
			Help:      "Number of buffer allocations refused by the allocator",
		},
		Frees: prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "frees",
			Help:      "Number of buffers released",
		},
		BytesInUse: prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "bytes_in_use",
			Help:      "Number of bytes held by live buffers",
		},
		AllocationBytes: prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "allocation_bytes",
			Help:      "Size of allocated buffers in bytes",
			Buckets:   prometheus.ExponentialBuckets(16, 4, 10),
		},
	}

	for _, cf := range configFuncs {
		if cf != nil {
			cf(&c)
		}
	}

	return &c
}

func (c *PrometheusConfig) metrics() *metrics {
	c.once.Do(func() {
		m := metrics{
			allocations:        prometheus.NewCounter(c.Allocations),
			allocationFailures: prometheus.NewCounter(c.AllocationFailures),
			frees:              prometheus.NewCounter(c.Frees),
			bytesInUse:         prometheus.NewGauge(c.BytesInUse),
			allocationBytes:    prometheus.NewHistogram(c.AllocationBytes),
		}

		if c.registerer != nil {
			c.registerer.MustRegister(
				m.allocations,
				m.allocationFailures,
				m.frees,
				m.bytesInUse,
				m.allocationBytes,
			)
		}

		c.m = &m
	})

	return c.m
}

// instrument wraps allocator so that it reports to the metrics of c. An allocator already
// reporting to them is returned as is.
func (c *PrometheusConfig) instrument(allocator alloc.Allocator) alloc.Allocator {
	m := c.metrics()
	if metered, ok := allocator.(*meteredAllocator); ok && metered.metrics == m {
		return metered
	}
	return &meteredAllocator{
		allocator: allocator,
		metrics:   m,
	}
}
