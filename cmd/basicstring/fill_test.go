package main

import (
	"testing"

	"github.com/kirillidk/basicstring"
	"github.com/kirillidk/basicstring/internal/testing/require"
)

func TestCodeUnit(t *testing.T) {
	run(t, "Fits", func(t *testing.T) {
		b, ok := codeUnit[byte]('x')
		require.True(t, ok)
		require.Equal(t, b, byte('x'))

		b, ok = codeUnit[byte]('é')
		require.True(t, ok)
		require.Equal(t, b, byte(0xe9))

		u, ok := codeUnit[uint16]('ж')
		require.True(t, ok)
		require.Equal(t, u, uint16('ж'))

		r, ok := codeUnit[rune]('😀')
		require.True(t, ok)
		require.Equal(t, r, '😀')

		w, ok := codeUnit[basicstring.WChar]('😀')
		require.True(t, ok)
		require.Equal(t, w, basicstring.WChar('😀'))
	})

	run(t, "Too wide", func(t *testing.T) {
		_, ok := codeUnit[byte]('ж')
		require.Equal(t, ok, false)

		_, ok = codeUnit[uint16]('😀')
		require.Equal(t, ok, false)
	})
}

func TestFillRejectsNarrowing(t *testing.T) {
	err := fill[byte](3, 'ж')
	require.NotNil(t, err)
	require.Equal(t, err.Error(), `char 'ж' doesn't fit width of 8 bits`)

	err = fill[uint16](3, '😀')
	require.NotNil(t, err)
	require.Equal(t, err.Error(), `char '😀' doesn't fit width of 16 bits`)

	require.Nil(t, fill[uint16](3, 'ж'))
}

func run(t *testing.T, name string, f func(t *testing.T)) {
	t.Run(name, f)
}
