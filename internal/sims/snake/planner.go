package snake

// Planner chooses the next direction for the snake. Implementations must be
// pure functions of their inputs; ok is false when no legal move exists.
type Planner interface {
	NextMove(g *Grid, s *Snake, t *Tour) (d Direction, ok bool)
}

// legal reports whether moving s in d is allowed: no reversal, stays on the
// grid and does not run into the body.
func legal(g *Grid, s *Snake, d Direction) bool {
	if d == s.Facing().Reverse() {
		return false
	}
	c := s.Head().Add(d)
	if !g.InBounds(c) {
		return false
	}
	food, ok := g.Food()
	return !s.Collides(c, ok && c == food)
}

// legalMoves lists the legal directions in neighbour order.
func legalMoves(g *Grid, s *Snake) []Direction {
	out := make([]Direction, 0, 3)
	for _, d := range Directions {
		if legal(g, s, d) {
			out = append(out, d)
		}
	}
	return out
}

// afterMove describes the board once the head has entered next: next is
// occupied and the tail has vacated unless the move grew the snake.
type afterMove struct {
	g    *Grid
	s    *Snake
	next Cell
	grew bool
}

func newAfterMove(g *Grid, s *Snake, next Cell) afterMove {
	food, ok := g.Food()
	return afterMove{g: g, s: s, next: next, grew: ok && next == food}
}

func (a afterMove) free(c Cell) bool {
	if !a.g.InBounds(c) || c == a.next {
		return false
	}
	if !a.s.Contains(c) {
		return true
	}
	return !a.grew && c == a.s.Tail()
}

func (a afterMove) freeNeighbors(c Cell) int {
	n := 0
	for _, d := range Directions {
		if a.free(c.Add(d)) {
			n++
		}
	}
	return n
}

// reachable counts the free cells connected to the new head.
func (a afterMove) reachable() int {
	seen := make([]bool, a.g.Area())
	queue := []Cell{a.next}
	seen[a.g.Index(a.next)] = true
	count := 0
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		count++
		for _, d := range Directions {
			n := c.Add(d)
			if !a.free(n) || seen[a.g.Index(n)] {
				continue
			}
			seen[a.g.Index(n)] = true
			queue = append(queue, n)
		}
	}
	return count
}
