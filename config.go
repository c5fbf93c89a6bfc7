package basicstring

import (
	"github.com/kirillidk/basicstring/alloc"
)

// Config is a config of a string.
//
// It's not meant to be created manually. Instead, it's passed to [ConfigFunc]s accepted by
// [New], [Filled] and [BasicString.Clone].
type Config struct {
	allocator  alloc.Allocator
	prometheus *PrometheusConfig
}

// ConfigFunc is a function that modifies the [Config].
type ConfigFunc = func(c *Config)

// Allocator sets the allocator the string reserves its buffers from.
//
// Default: [alloc.Heap], or the allocator of the source string when cloning.
func (c *Config) Allocator(allocator alloc.Allocator) {
	if allocator == nil {
		panic("allocator can't be nil")
	}
	c.allocator = allocator
}

// Prometheus enables Prometheus metrics for every allocation the string makes.
//
// Default: disabled.
func (c *Config) Prometheus(prometheus *PrometheusConfig) {
	if prometheus == nil {
		panic("prometheus can't be nil")
	}
	c.prometheus = prometheus
}

func newConfig(base alloc.Allocator, configFuncs ...ConfigFunc) *Config {
	cfg := Config{
		allocator: base,
	}
	if cfg.allocator == nil {
		cfg.allocator = alloc.Heap()
	}

	for _, cf := range configFuncs {
		if cf != nil {
			cf(&cfg)
		}
	}

	if cfg.prometheus != nil {
		cfg.allocator = cfg.prometheus.instrument(cfg.allocator)
	}

	return &cfg
}
