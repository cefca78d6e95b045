package snake

import "ledframe/internal/core"

// Spawner places food uniformly among the cells the snake does not occupy.
type Spawner struct {
	rng  core.Source
	free []Cell
}

// NewSpawner returns a Spawner drawing from rng.
func NewSpawner(rng core.Source) *Spawner {
	return &Spawner{rng: rng}
}

// Spawn picks a free cell. It returns false when the snake fills the grid,
// which is the win condition.
func (sp *Spawner) Spawn(g *Grid) (Cell, bool) {
	sp.free = sp.free[:0]
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			c := Cell{X: x, Y: y}
			if g.snake != nil && g.snake.Contains(c) {
				continue
			}
			sp.free = append(sp.free, c)
		}
	}
	if len(sp.free) == 0 {
		return Cell{}, false
	}
	return sp.free[sp.rng.IntN(len(sp.free))], true
}
