// Package term emulates the LED panel in a terminal. Each LED is drawn as two
// block characters so the grid keeps a roughly square aspect.
package term

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"ledframe/internal/core"
	"ledframe/internal/matrix"
)

const ledGlyph = '█'

// Sink is a core.Sink that paints physical LED indices back at their logical
// positions on a tcell screen.
type Sink struct {
	screen tcell.Screen
	mapper matrix.Mapper
	back   []core.RGB
	status []string

	// OffsetX and OffsetY move the panel away from the top-left corner.
	OffsetX, OffsetY int

	closed bool
}

// Open initialises the terminal and returns a Sink drawing on it.
func Open(m matrix.Mapper) (*Sink, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.HideCursor()
	return New(screen, m), nil
}

// New wraps an initialised screen.
func New(screen tcell.Screen, m matrix.Mapper) *Sink {
	return &Sink{screen: screen, mapper: m, back: make([]core.RGB, m.Len())}
}

// Screen exposes the underlying tcell screen for event polling.
func (s *Sink) Screen() tcell.Screen { return s.screen }

// Len returns the LED count.
func (s *Sink) Len() int { return len(s.back) }

// SetPixel stores c for the next Flush.
func (s *Sink) SetPixel(index int, c core.RGB) {
	if index < 0 || index >= len(s.back) {
		return
	}
	s.back[index] = c
}

// SetStatus sets text drawn under the panel on the next Flush.
func (s *Sink) SetStatus(lines []string) {
	s.status = append(s.status[:0], lines...)
}

// Flush draws the frame and shows it.
func (s *Sink) Flush() error {
	if s.closed {
		return core.ErrSinkClosed
	}
	for i, c := range s.back {
		x, y, ok := s.mapper.FromPhysical(i)
		if !ok {
			return fmt.Errorf("term: led %d has no position", i)
		}
		glyph, style := ledGlyph, tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
		if c == core.Black {
			glyph, style = ' ', tcell.StyleDefault
		}
		sx, sy := s.OffsetX+2*x, s.OffsetY+y
		s.screen.SetContent(sx, sy, glyph, nil, style)
		s.screen.SetContent(sx+1, sy, glyph, nil, style)
	}
	s.drawStatus()
	s.screen.Show()
	return nil
}

func (s *Sink) drawStatus() {
	top := s.OffsetY + s.mapper.Height() + 1
	width, _ := s.screen.Size()
	for row, line := range s.status {
		col := s.OffsetX
		for _, r := range line {
			s.screen.SetContent(col, top+row, r, nil, tcell.StyleDefault)
			col++
		}
		for ; col < width; col++ {
			s.screen.SetContent(col, top+row, ' ', nil, tcell.StyleDefault)
		}
	}
}

// Close restores the terminal. Later flushes fail with core.ErrSinkClosed.
func (s *Sink) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.screen.Fini()
}
