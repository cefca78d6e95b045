package life

import (
	"fmt"
	"strconv"
	"time"

	"ledframe/internal/core"
	"ledframe/internal/sims/cellular"
)

// Config holds the parameters of the Life routine.
type Config struct {
	cellular.Config
	// Stale reseeds the board after this many generations without a
	// population change. Zero disables reseeding.
	Stale int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Config: cellular.DefaultConfig(), Stale: 12}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) (Config, error) {
	c := DefaultConfig()
	base, err := cellular.FromMap(cfg, c.Config)
	if err != nil {
		return c, err
	}
	c.Config = base
	if v, ok := cfg["stale"]; ok {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 0 {
			return c, fmt.Errorf("%w: stale=%q", cellular.ErrBadConfig, v)
		}
		c.Stale = parsed
	}
	return c, nil
}

var palette = []core.RGB{core.Black, {R: 40, G: 200, B: 255}}

// Life implements Conway's Game of Life with toroidal wrapping.
type Life struct {
	cfg   Config
	board *cellular.Board
	grid  *core.ByteGrid
	nxt   []uint8
	rng   *core.RNG

	population int
	unchanged  int
}

// New returns a Life routine with the provided configuration.
func New(cfg Config) (*Life, error) {
	b, err := cellular.NewBoard(cfg.Config)
	if err != nil {
		return nil, err
	}
	g := core.NewByteGrid(cfg.Width, cfg.Height)
	l := &Life{cfg: cfg, board: b, grid: g, nxt: make([]uint8, len(g.Cells()))}
	l.Reset(cfg.Seed)
	return l, nil
}

// Name returns the routine identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return l.board.Size() }

// Cells exposes the current grid values.
func (l *Life) Cells() []uint8 { return l.grid.Cells() }

// Done reports whether the generation bound was reached.
func (l *Life) Done() bool { return l.board.Done() }

// Reset randomizes the board using the provided seed.
func (l *Life) Reset(seed int64) {
	if seed == 0 {
		seed = l.cfg.Seed
	}
	l.rng = core.NewRNG(seed)
	l.board.Reset()
	l.seed()
}

func (l *Life) seed() {
	core.FillBinary(l.rng, l.grid.Cells())
	l.population = l.grid.Count()
	l.unchanged = 0
}

// Step advances one generation and paints it.
func (l *Life) Step(sink core.Sink, _ time.Duration) error {
	l.Tick()
	return l.board.Paint(sink, l.grid.Cells(), palette)
}

// Tick advances the simulation by one generation without rendering. A board
// that dies out or stops changing population is reseeded.
func (l *Life) Tick() {
	g := l.grid
	cur := g.Cells()
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			neighbors := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					neighbors += int(g.At(x+dx, y+dy))
				}
			}
			idx := g.Index(x, y)
			alive := cur[idx] == 1
			l.nxt[idx] = 0
			if (alive && (neighbors == 2 || neighbors == 3)) || (!alive && neighbors == 3) {
				l.nxt[idx] = 1
			}
		}
	}
	copy(cur, l.nxt)

	pop := g.Count()
	if pop == l.population {
		l.unchanged++
	} else {
		l.unchanged = 0
	}
	l.population = pop
	if pop == 0 || (l.cfg.Stale > 0 && l.unchanged >= l.cfg.Stale) {
		l.seed()
	}
}

// Parameters implements core.ParameterProvider.
func (l *Life) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{Name: "Board", Params: l.board.Params()},
		{Name: "Life", Params: []core.Parameter{core.IntParam("stale", "Reseed after", l.cfg.Stale)}},
	}}
}

func init() {
	core.Register("life", func(cfg map[string]string) (core.Routine, error) {
		c, err := FromMap(cfg)
		if err != nil {
			return nil, err
		}
		l, err := New(c)
		if err != nil {
			return nil, err
		}
		return l, nil
	})
}
