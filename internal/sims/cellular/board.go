// Package cellular holds what the grid automata routines share: panel
// geometry, generation bounds and palette rendering through the wiring map.
package cellular

import (
	"errors"
	"fmt"
	"strconv"

	"ledframe/internal/core"
	"ledframe/internal/matrix"
)

// ErrBadConfig reports an unusable automaton configuration.
var ErrBadConfig = errors.New("invalid automaton config")

// Config is the part of an automaton's configuration that concerns the panel.
type Config struct {
	Width  int
	Height int
	Wiring matrix.Wiring
	Seed   int64
	// Generations bounds the run; zero runs forever.
	Generations int
}

// DefaultConfig returns the 18x18 frame geometry.
func DefaultConfig() Config {
	return Config{Width: 18, Height: 18, Wiring: matrix.SerpentineEven, Seed: 1337}
}

// FromMap overlays the geometry keys of cfg onto c.
func FromMap(cfg map[string]string, c Config) (Config, error) {
	for key, dst := range map[string]*int{"w": &c.Width, "h": &c.Height, "generations": &c.Generations} {
		v, ok := cfg[key]
		if !ok {
			continue
		}
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 0 {
			return c, fmt.Errorf("%w: %s=%q", ErrBadConfig, key, v)
		}
		*dst = parsed
	}
	if v, ok := cfg["seed"]; ok {
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return c, fmt.Errorf("%w: seed=%q", ErrBadConfig, v)
		}
		c.Seed = parsed
	}
	if v, ok := cfg["wiring"]; ok {
		w, err := matrix.ParseWiring(v)
		if err != nil {
			return c, fmt.Errorf("%w: %v", ErrBadConfig, err)
		}
		c.Wiring = w
	}
	return c, nil
}

// Board renders row-major cell states onto a wired panel and counts
// generations.
type Board struct {
	cfg    Config
	mapper matrix.Mapper
	gen    int
}

// NewBoard validates the geometry.
func NewBoard(cfg Config) (*Board, error) {
	m, err := matrix.New(cfg.Width, cfg.Height, cfg.Width*cfg.Height, cfg.Wiring)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadConfig, err)
	}
	return &Board{cfg: cfg, mapper: m}, nil
}

// Config returns the board configuration.
func (b *Board) Config() Config { return b.cfg }

// Size returns the grid dimensions.
func (b *Board) Size() core.Size { return core.Size{W: b.cfg.Width, H: b.cfg.Height} }

// Generation returns how many frames have been painted since Reset.
func (b *Board) Generation() int { return b.gen }

// Reset zeroes the generation counter.
func (b *Board) Reset() { b.gen = 0 }

// Done reports whether the generation bound has been reached.
func (b *Board) Done() bool {
	return b.cfg.Generations > 0 && b.gen >= b.cfg.Generations
}

// Paint writes cells to sink using palette[v] for state v, clamping to the
// last entry, then flushes once.
func (b *Board) Paint(sink core.Sink, cells []uint8, palette []core.RGB) error {
	if sink.Len() != b.mapper.Len() {
		return fmt.Errorf("%w: sink has %d leds, grid needs %d", matrix.ErrSize, sink.Len(), b.mapper.Len())
	}
	last := len(palette) - 1
	for i, v := range cells {
		col := core.Black
		if last >= 0 {
			idx := int(v)
			if idx > last {
				idx = last
			}
			col = palette[idx]
		}
		x, y := i%b.cfg.Width, i/b.cfg.Width
		sink.SetPixel(b.mapper.ToPhysical(x, y), col)
	}
	b.gen++
	return sink.Flush()
}

// Params lists the geometry as parameters.
func (b *Board) Params() []core.Parameter {
	return []core.Parameter{
		core.IntParam("w", "Width", b.cfg.Width),
		core.IntParam("h", "Height", b.cfg.Height),
		core.StringParam("wiring", "Wiring", b.cfg.Wiring.String()),
		core.Int64Param("seed", "Seed", b.cfg.Seed),
		core.IntParam("generations", "Generations", b.cfg.Generations),
	}
}
