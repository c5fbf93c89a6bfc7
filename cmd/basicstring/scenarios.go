package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/kirillidk/basicstring"
)

var scenariosCommand = &cli.Command{
	Name:   "scenarios",
	Usage:  "run the basic construction, copy and assignment scenarios",
	Action: scenariosCmd,
}

type check struct {
	name string
	ok   bool
}

func scenariosCmd(c *cli.Context) error {
	cfs := configFuncs(c)

	s, err := basicstring.New[byte](cfs...)
	if err != nil {
		return err
	}
	defer s.Release()

	f, err := basicstring.Filled(5, byte('x'), cfs...)
	if err != nil {
		return err
	}
	defer f.Release()

	t, err := f.Clone()
	if err != nil {
		return err
	}
	defer t.Release()
	*t.Ref(0) = 'y'

	u, err := t.Clone()
	if err != nil {
		return err
	}
	defer u.Release()
	before := render(u)
	if err := u.Assign(u); err != nil {
		return err
	}

	checks := []check{
		{"default size is 0", s.Size() == 0},
		{"default capacity is 15", s.Capacity() == 15},
		{"fill size is 5", f.Size() == 5},
		{"fill capacity is 5", f.Capacity() == 5},
		{"fill content is xxxxx", render(f) == "xxxxx"},
		{"copy is independent", f.At(0) == 'x' && t.At(0) == 'y'},
		{"self assignment keeps size", u.Size() == 5},
		{"self assignment keeps capacity", u.Capacity() == 5},
		{"self assignment keeps content", render(u) == before},
	}

	failed := 0
	for _, ch := range checks {
		if ch.ok {
			log.Info().Str("check", ch.name).Msg("ok")
		} else {
			failed++
			log.Error().Str("check", ch.name).Msg("failed")
		}
	}

	if failed > 0 {
		return cli.Exit(fmt.Sprintf("%d of %d checks failed", failed, len(checks)), 1)
	}
	return nil
}
