package snake

// Strategic follows the tour and only cuts across it when the cut keeps the
// body inside the tour arc behind the head with room to spare. Following the
// successor alone can never collide, so it is always the fallback.
type Strategic struct {
	// Buffer is the spare tour distance kept between the new head and the
	// tail beyond the snake's own length. Values below 1 are treated as 1.
	Buffer int
	// ShortcutFill disables shortcuts once free cells drop below this share
	// of the board.
	ShortcutFill float64
}

// NextMove implements Planner. t must be non-nil.
func (p Strategic) NextMove(g *Grid, s *Snake, t *Tour) (Direction, bool) {
	head := s.Head()
	follow, ok := DirectionTo(head, t.Successor(head))
	if !ok {
		return 0, false
	}
	food, hasFood := g.Food()
	if !hasFood {
		return follow, true
	}
	n := t.Len()
	free := n - s.Len()
	if float64(free) < p.ShortcutFill*float64(n) {
		return follow, true
	}
	buffer := p.Buffer
	if buffer < 1 {
		buffer = 1
	}
	tailGap := t.Distance(head, s.Tail())
	if tailGap == 0 {
		tailGap = n
	}
	foodGap := t.Distance(head, food)

	best, bestSkip := follow, 1
	for _, d := range Directions {
		if d == s.Facing().Reverse() {
			continue
		}
		c := head.Add(d)
		if !g.InBounds(c) {
			continue
		}
		grew := c == food
		if s.Collides(c, grew) {
			continue
		}
		skip := t.Distance(head, c)
		if skip <= bestSkip || skip >= tailGap || skip > foodGap {
			continue
		}
		length := s.Len()
		if grew {
			length++
		}
		if tailGap-skip < length+buffer {
			continue
		}
		best, bestSkip = d, skip
	}
	return best, true
}
