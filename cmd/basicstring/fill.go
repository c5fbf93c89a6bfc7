package main

import (
	"fmt"
	"strings"
	"unicode/utf8"
	"unsafe"

	"github.com/urfave/cli/v2"

	"github.com/kirillidk/basicstring"
)

var fillCommand = &cli.Command{
	Name:      "fill",
	Usage:     "construct a string of repeated characters",
	UsageText: "fill --count N --char X [--width 8|16|32|wide]",
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:  "count",
			Usage: "number of characters",
			Value: 5,
		},
		&cli.StringFlag{
			Name:  "char",
			Usage: "character to fill the string with",
			Value: "x",
		},
		&cli.StringFlag{
			Name:  "width",
			Usage: "code unit width: 8, 16, 32 or wide",
			Value: "8",
		},
	},
	Action: fillCmd,
}

func fillCmd(c *cli.Context) error {
	count := c.Int("count")
	if count < 0 {
		return cli.Exit("count can't be < 0", 2)
	}

	ch, n := utf8.DecodeRuneInString(c.String("char"))
	if n == 0 || n != len(c.String("char")) {
		return cli.Exit("char must be a single character", 2)
	}

	cfs := configFuncs(c)

	switch c.String("width") {
	case "8":
		return fill[byte](count, ch, cfs...)
	case "16":
		return fill[uint16](count, ch, cfs...)
	case "32":
		return fill[rune](count, ch, cfs...)
	case "wide":
		return fill[basicstring.WChar](count, ch, cfs...)
	default:
		return cli.Exit(fmt.Sprintf("unknown width %q", c.String("width")), 2)
	}
}

func fill[C basicstring.Char](count int, ch rune, configFuncs ...basicstring.ConfigFunc) error {
	unit, ok := codeUnit[C](ch)
	if !ok {
		return cli.Exit(fmt.Sprintf("char %q doesn't fit width of %d bits", ch, 8*unsafe.Sizeof(unit)), 2)
	}

	s, err := basicstring.Filled(count, unit, configFuncs...)
	if err != nil {
		return fmt.Errorf("fill: %w", err)
	}
	defer s.Release()

	log.Info().
		Int("size", s.Size()).
		Int("capacity", s.Capacity()).
		Str("content", render(s)).
		Msg("filled string")

	return nil
}

// codeUnit converts ch to a single code unit of type C. It reports false if ch needs more than
// one unit of that width.
func codeUnit[C basicstring.Char](ch rune) (C, bool) {
	unit := C(ch)
	return unit, rune(unit) == ch
}

func render[C basicstring.Char](s *basicstring.BasicString[C]) string {
	var b strings.Builder
	for i := range s.Size() {
		b.WriteRune(rune(s.At(i)))
	}
	return b.String()
}
