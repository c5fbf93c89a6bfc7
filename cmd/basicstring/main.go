package main

import (
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"github.com/kirillidk/basicstring"
	"github.com/kirillidk/basicstring/alloc"
)

var (
	log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()

	registry   = prometheus.NewRegistry()
	promConfig = basicstring.Prometheus(registry)
)

func main() {
	app := &cli.App{
		Name:  "basicstring",
		Usage: "exercise null-terminated string buffers of every width",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "metrics",
				Usage: "log allocation metrics on exit",
			},
			&cli.Int64Flag{
				Name:  "budget",
				Usage: "limit buffers to this many bytes in total (0 means no limit)",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "enable debug logging",
			},
		},
		Before: func(c *cli.Context) error {
			level := zerolog.InfoLevel
			if c.Bool("debug") {
				level = zerolog.DebugLevel
			}
			log = log.Level(level)
			return nil
		},
		After: func(c *cli.Context) error {
			if c.Bool("metrics") {
				logMetrics()
			}
			return nil
		},
		Commands: []*cli.Command{
			fillCommand,
			scenariosCommand,
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("basicstring failed")
	}
}

// configFuncs builds the string config shared by all commands from the global flags.
func configFuncs(c *cli.Context) []basicstring.ConfigFunc {
	var allocator alloc.Allocator = alloc.Heap()
	if budget := c.Int64("budget"); budget > 0 {
		allocator = alloc.Budget(budget)
		log.Debug().Int64("budget", budget).Msg("using budget allocator")
	}

	return []basicstring.ConfigFunc{
		func(cfg *basicstring.Config) {
			cfg.Allocator(allocator)
			cfg.Prometheus(promConfig)
		},
	}
}

func logMetrics() {
	families, err := registry.Gather()
	if err != nil {
		log.Error().Err(err).Msg("gather metrics")
		return
	}

	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			event := log.Info().Str("metric", mf.GetName())
			switch {
			case m.GetCounter() != nil:
				event = event.Float64("value", m.GetCounter().GetValue())
			case m.GetGauge() != nil:
				event = event.Float64("value", m.GetGauge().GetValue())
			case m.GetHistogram() != nil:
				event = event.
					Uint64("count", m.GetHistogram().GetSampleCount()).
					Float64("sum", m.GetHistogram().GetSampleSum())
			}
			event.Msg("metric")
		}
	}
}
