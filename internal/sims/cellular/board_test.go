package cellular

import (
	"errors"
	"testing"

	"ledframe/internal/core"
	"ledframe/internal/matrix"
)

func TestPaintMapsAndClampsPalette(t *testing.T) {
	b, err := NewBoard(Config{Width: 3, Height: 2, Wiring: matrix.SerpentineEven, Generations: 1})
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}
	palette := []core.RGB{core.Black, {R: 1}, {G: 2}}
	cells := []uint8{1, 0, 0, 0, 0, 9}
	fb := core.NewFrameBuffer(6)
	if err := b.Paint(fb, cells, palette); err != nil {
		t.Fatalf("Paint: %v", err)
	}
	// (0,0) lives at physical 2 on an even-reversed row.
	if got := fb.Frame()[2]; got != (core.RGB{R: 1}) {
		t.Fatalf("top-left LED %+v", got)
	}
	// (2,1) is the end of an odd row: physical 5. State 9 clamps to green.
	if got := fb.Frame()[5]; got != (core.RGB{G: 2}) {
		t.Fatalf("bottom-right LED %+v", got)
	}
	if !b.Done() || b.Generation() != 1 {
		t.Fatalf("expected the single generation to finish, gen %d", b.Generation())
	}
}

func TestPaintRejectsWrongSink(t *testing.T) {
	b, _ := NewBoard(DefaultConfig())
	if err := b.Paint(core.NewFrameBuffer(3), nil, nil); !errors.Is(err, matrix.ErrSize) {
		t.Fatalf("expected ErrSize, got %v", err)
	}
}

func TestFromMapOverlaysKeys(t *testing.T) {
	c, err := FromMap(map[string]string{"w": "8", "generations": "40", "wiring": "progressive"}, DefaultConfig())
	if err != nil {
		t.Fatalf("FromMap: %v", err)
	}
	if c.Width != 8 || c.Height != 18 || c.Generations != 40 || c.Wiring != matrix.Progressive {
		t.Fatalf("unexpected config %+v", c)
	}
	if _, err := FromMap(map[string]string{"h": "-2"}, DefaultConfig()); !errors.Is(err, ErrBadConfig) {
		t.Fatalf("expected ErrBadConfig, got %v", err)
	}
}
