package basicstring_test

import (
	"testing"

	"github.com/kirillidk/basicstring"
	"github.com/kirillidk/basicstring/internal/testing/require"
)

func TestConfig(t *testing.T) {
	c := &basicstring.Config{}

	require.PanicWithError(t, "allocator can't be nil", func() {
		c.Allocator(nil)
	})

	require.PanicWithError(t, "prometheus can't be nil", func() {
		c.Prometheus(nil)
	})
}

func TestConfigNilFunc(t *testing.T) {
	s, err := basicstring.New[byte](nil)
	require.Nil(t, err)
	require.Equal(t, s.Capacity(), 15)
}
