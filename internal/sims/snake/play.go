package snake

import (
	"time"

	"ledframe/internal/core"
	"ledframe/internal/loop"
	"ledframe/internal/matrix"
)

// PlayOptions carries the optional knobs of Play. The zero value plays the
// reference configuration.
type PlayOptions struct {
	Seed   int64
	Wiring matrix.Wiring
	// Params replaces the default tunables when non-nil.
	Params *Params
	Stop   func() bool
	Logger loop.Logger
	Pacer  *core.Pacer
}

// Play runs a snake on sink until episodes have finished (zero plays forever)
// or opts.Stop returns true. It returns the accumulated statistics.
func Play(sink core.Sink, w, h int, delay time.Duration, episodes int, mode Strategy, opts PlayOptions) (Stats, error) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = w, h
	cfg.Wiring = opts.Wiring
	cfg.Strategy = mode
	cfg.Episodes = episodes
	if opts.Seed != 0 {
		cfg.Seed = opts.Seed
	}
	if opts.Params != nil {
		cfg.Params = *opts.Params
	}
	c, err := New(cfg)
	if err != nil {
		return Stats{}, err
	}
	_, err = loop.Run(sink, c, loop.Options{
		Delay:  delay,
		Seed:   cfg.Seed,
		Stop:   opts.Stop,
		Logger: opts.Logger,
		Pacer:  opts.Pacer,
	})
	return c.Stats(), err
}
