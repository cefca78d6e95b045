package snake

import "ledframe/internal/core"

var (
	headColor = core.RGB{G: 255}
	tailColor = core.RGB{G: 120}
	failColor = core.RGB{R: 255}
	warnColor = core.RGB{R: 100, G: 100}
)

// foodPulsePeriod is the length in ticks of one food brightness cycle.
const foodPulsePeriod = 10

// foodColor returns the food colour at tick t. The green channel swings
// between 50 and 100, so the food pulses from orange to red and back.
func foodColor(t int) core.RGB {
	half := foodPulsePeriod / 2
	phase := t % foodPulsePeriod
	return core.RGB{R: 255, G: uint8(50 + 50*abs(phase-half)/half)}
}

// bodyColor shades body segment i (0 is the head) so the snake fades toward
// its tail.
func bodyColor(i, n int) core.RGB {
	switch {
	case i == 0:
		return headColor
	case i == n-1:
		return tailColor
	}
	v := 180 - i*40/n
	if v < 80 {
		v = 80
	}
	return core.RGB{G: uint8(v)}
}

// render writes the whole frame for the current tick. Nothing is flushed
// here; Step owns the single flush.
func (c *Controller) render(sink core.Sink) {
	core.Fill(sink, core.Black)
	switch c.state {
	case Running:
		c.drawBoard(sink)
	case Dead:
		// Alternate red and dark frames, starting lit.
		if c.flourish%2 == 0 {
			for _, cell := range c.snake.Body() {
				c.set(sink, cell, failColor)
			}
		}
	case Won:
		level := winPulse(c.flourish)
		for y := 0; y < c.cfg.Height; y++ {
			for x := 0; x < c.cfg.Width; x++ {
				c.set(sink, Cell{X: x, Y: y}, core.RGB{G: level})
			}
		}
	}
}

func (c *Controller) drawBoard(sink core.Sink) {
	for _, cell := range dangerCells(c.grid, c.snake) {
		c.set(sink, cell, warnColor)
	}
	if food, ok := c.grid.Food(); ok {
		c.set(sink, food, foodColor(c.stats.Ticks))
	}
	n := c.snake.Len()
	for i := n - 1; i >= 0; i-- {
		c.set(sink, c.snake.At(i), bodyColor(i, n))
	}
}

// dangerCells returns the empty cells bordering a wall or body cell that the
// head could run into next tick.
func dangerCells(g *Grid, s *Snake) []Cell {
	head := s.Head()
	var out []Cell
	seen := make(map[Cell]bool)
	for _, d := range Directions {
		hit := head.Add(d)
		if g.InBounds(hit) && !s.Contains(hit) {
			continue
		}
		for _, n := range g.Neighbors4(hit) {
			if g.Occupancy(n) == Empty && !seen[n] {
				seen[n] = true
				out = append(out, n)
			}
		}
	}
	return out
}

func (c *Controller) set(sink core.Sink, cell Cell, col core.RGB) {
	if idx := c.mapper.ToPhysical(cell.X, cell.Y); idx >= 0 {
		sink.SetPixel(idx, col)
	}
}

// winPulse ramps brightness up and down over four frames.
func winPulse(frame int) uint8 {
	steps := [...]uint8{255, 170, 85, 170}
	return steps[frame%len(steps)]
}
