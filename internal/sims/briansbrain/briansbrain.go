package briansbrain

import (
	"fmt"
	"strconv"
	"time"

	"ledframe/internal/core"
	"ledframe/internal/sims/cellular"
)

const (
	stateDead  = 0
	stateOn    = 1
	stateDying = 2
)

var palette = []core.RGB{core.Black, {R: 255, G: 255, B: 255}, {B: 160}}

// Config holds the Brian's Brain parameters.
type Config struct {
	cellular.Config
	// Density is the one-in-N chance of a cell starting on.
	Density int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Config: cellular.DefaultConfig(), Density: 8}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) (Config, error) {
	c := DefaultConfig()
	base, err := cellular.FromMap(cfg, c.Config)
	if err != nil {
		return c, err
	}
	c.Config = base
	if v, ok := cfg["density"]; ok {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed <= 0 {
			return c, fmt.Errorf("%w: density=%q", cellular.ErrBadConfig, v)
		}
		c.Density = parsed
	}
	return c, nil
}

// Brain implements Brian's Brain cellular automaton.
type Brain struct {
	cfg   Config
	board *cellular.Board
	grid  *core.ByteGrid
	nxt   []uint8
	rng   *core.RNG
}

// New creates a Brain routine.
func New(cfg Config) (*Brain, error) {
	b, err := cellular.NewBoard(cfg.Config)
	if err != nil {
		return nil, err
	}
	g := core.NewByteGrid(cfg.Width, cfg.Height)
	br := &Brain{cfg: cfg, board: b, grid: g, nxt: make([]uint8, len(g.Cells()))}
	br.Reset(cfg.Seed)
	return br, nil
}

// Name identifies the routine.
func (b *Brain) Name() string { return "briansbrain" }

// Size returns the grid dimensions.
func (b *Brain) Size() core.Size { return b.board.Size() }

// Cells exposes the current state buffer.
func (b *Brain) Cells() []uint8 { return b.grid.Cells() }

// Done reports whether the generation bound was reached.
func (b *Brain) Done() bool { return b.board.Done() }

// Reset randomizes cells into dead or firing states.
func (b *Brain) Reset(seed int64) {
	if seed == 0 {
		seed = b.cfg.Seed
	}
	b.rng = core.NewRNG(seed)
	b.board.Reset()
	b.scatter()
}

func (b *Brain) scatter() {
	cells := b.grid.Cells()
	for i := range cells {
		if b.rng.IntN(b.cfg.Density) == 0 {
			cells[i] = stateOn
			continue
		}
		cells[i] = stateDead
	}
}

// Step advances the automaton and paints it.
func (b *Brain) Step(sink core.Sink, _ time.Duration) error {
	b.Tick()
	return b.board.Paint(sink, b.grid.Cells(), palette)
}

// Tick advances the automaton by one generation. Small panels burn out
// quickly, so an empty board is scattered again.
func (b *Brain) Tick() {
	g := b.grid
	cur := g.Cells()
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			idx := g.Index(x, y)
			switch cur[idx] {
			case stateOn:
				b.nxt[idx] = stateDying
			case stateDying:
				b.nxt[idx] = stateDead
			default:
				neighbors := 0
				for dy := -1; dy <= 1; dy++ {
					for dx := -1; dx <= 1; dx++ {
						if dx == 0 && dy == 0 {
							continue
						}
						if g.At(x+dx, y+dy) == stateOn {
							neighbors++
						}
					}
				}
				if neighbors == 2 {
					b.nxt[idx] = stateOn
				} else {
					b.nxt[idx] = stateDead
				}
			}
		}
	}
	copy(cur, b.nxt)
	if g.Count() == 0 {
		b.scatter()
	}
}

// Parameters implements core.ParameterProvider.
func (b *Brain) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{Name: "Board", Params: b.board.Params()},
		{Name: "Brain", Params: []core.Parameter{core.IntParam("density", "Start density 1/N", b.cfg.Density)}},
	}}
}

func init() {
	core.Register("briansbrain", func(cfg map[string]string) (core.Routine, error) {
		c, err := FromMap(cfg)
		if err != nil {
			return nil, err
		}
		b, err := New(c)
		if err != nil {
			return nil, err
		}
		return b, nil
	})
}
