package elementary

import (
	"fmt"
	"strconv"
	"time"

	"ledframe/internal/core"
	"ledframe/internal/sims/cellular"
)

// Config holds parameters for the elementary cellular automaton.
type Config struct {
	cellular.Config
	Rule uint8
	// Random seeds the top row randomly instead of with a single cell.
	Random bool
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Config: cellular.DefaultConfig(), Rule: 110}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) (Config, error) {
	c := DefaultConfig()
	base, err := cellular.FromMap(cfg, c.Config)
	if err != nil {
		return c, err
	}
	c.Config = base
	if v, ok := cfg["rule"]; ok {
		parsed, err := strconv.ParseUint(v, 10, 8)
		if err != nil {
			return c, fmt.Errorf("%w: rule=%q", cellular.ErrBadConfig, v)
		}
		c.Rule = uint8(parsed)
	}
	if v, ok := cfg["random"]; ok {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return c, fmt.Errorf("%w: random=%q", cellular.ErrBadConfig, v)
		}
		c.Random = parsed
	}
	return c, nil
}

var palette = []core.RGB{core.Black, {R: 255, G: 140}}

// Elementary implements a one-dimensional Wolfram code scrolling down the
// panel.
type Elementary struct {
	cfg   Config
	board *cellular.Board
	cur   []uint8
	tmp   []uint8
	rng   *core.RNG
}

// New creates an automaton with the given configuration.
func New(cfg Config) (*Elementary, error) {
	b, err := cellular.NewBoard(cfg.Config)
	if err != nil {
		return nil, err
	}
	e := &Elementary{
		cfg:   cfg,
		board: b,
		cur:   make([]uint8, cfg.Width*cfg.Height),
		tmp:   make([]uint8, cfg.Width),
	}
	e.Reset(cfg.Seed)
	return e, nil
}

// Name returns the routine identifier.
func (e *Elementary) Name() string { return "elementary" }

// Size returns the grid dimensions.
func (e *Elementary) Size() core.Size { return e.board.Size() }

// Cells exposes the render buffer.
func (e *Elementary) Cells() []uint8 { return e.cur }

// Done reports whether the generation bound was reached.
func (e *Elementary) Done() bool { return e.board.Done() }

// Reset clears the grid and seeds the top row.
func (e *Elementary) Reset(seed int64) {
	if seed == 0 {
		seed = e.cfg.Seed
	}
	e.rng = core.NewRNG(seed)
	e.board.Reset()
	for i := range e.cur {
		e.cur[i] = 0
	}
	w := e.cfg.Width
	if e.cfg.Random {
		core.FillBinary(e.rng, e.cur[:w])
		return
	}
	e.cur[w/2] = 1
}

// Step computes the next generation and paints it.
func (e *Elementary) Step(sink core.Sink, _ time.Duration) error {
	e.Tick()
	return e.board.Paint(sink, e.cur, palette)
}

// Tick computes the next generation and scrolls history downwards.
func (e *Elementary) Tick() {
	w, h := e.cfg.Width, e.cfg.Height
	copy(e.tmp, e.cur[:w])
	copy(e.cur[w:], e.cur[:w*(h-1)])
	for x := 0; x < w; x++ {
		left := e.tmp[(x-1+w)%w]
		center := e.tmp[x]
		right := e.tmp[(x+1)%w]
		idx := (left << 2) | (center << 1) | right
		e.cur[x] = (e.cfg.Rule >> idx) & 1
	}
}

// Parameters implements core.ParameterProvider.
func (e *Elementary) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{Name: "Board", Params: e.board.Params()},
		{Name: "Rule", Params: []core.Parameter{
			core.IntParam("rule", "Wolfram rule", int(e.cfg.Rule)),
			core.BoolParam("random", "Random top row", e.cfg.Random),
		}},
	}}
}

func init() {
	core.Register("elementary", func(cfg map[string]string) (core.Routine, error) {
		c, err := FromMap(cfg)
		if err != nil {
			return nil, err
		}
		e, err := New(c)
		if err != nil {
			return nil, err
		}
		return e, nil
	})
}
