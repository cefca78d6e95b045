package snake

import "math"

// Seek runs a best-first search from the head to the food using Manhattan
// distance as the estimate. When the food is unreachable it falls back to
// the move that keeps the most room two steps ahead.
type Seek struct {
	// FloodCheck rejects a path step that would leave fewer reachable cells
	// than the snake is long.
	FloodCheck bool
}

// NextMove implements Planner.
func (p Seek) NextMove(g *Grid, s *Snake, _ *Tour) (Direction, bool) {
	if d, ok := p.pathStep(g, s); ok {
		if !p.FloodCheck || p.roomy(g, s, d) {
			return d, true
		}
	}
	return spaceMove(g, s)
}

func (p Seek) roomy(g *Grid, s *Snake, d Direction) bool {
	a := newAfterMove(g, s, s.Head().Add(d))
	need := s.Len()
	if a.grew {
		need++
	}
	return a.reachable() >= need
}

type seekNode struct {
	idx  int
	f, h int
	turn uint8
	seq  int
}

func (a seekNode) less(b seekNode) bool {
	if a.f != b.f {
		return a.f < b.f
	}
	if a.h != b.h {
		return a.h < b.h
	}
	if a.turn != b.turn {
		return a.turn < b.turn
	}
	return a.seq < b.seq
}

type seekHeap []seekNode

func (h *seekHeap) push(n seekNode) {
	*h = append(*h, n)
	i := len(*h) - 1
	for i > 0 {
		parent := (i - 1) / 2
		if !(*h)[i].less((*h)[parent]) {
			break
		}
		(*h)[parent], (*h)[i] = (*h)[i], (*h)[parent]
		i = parent
	}
}

func (h *seekHeap) pop() seekNode {
	old := *h
	n := len(old)
	top := old[0]
	old[0] = old[n-1]
	*h = old[:n-1]

	i := 0
	for {
		left := 2*i + 1
		if left >= len(*h) {
			break
		}
		smallest := left
		if right := left + 1; right < len(*h) && (*h)[right].less((*h)[left]) {
			smallest = right
		}
		if !(*h)[smallest].less((*h)[i]) {
			break
		}
		(*h)[i], (*h)[smallest] = (*h)[smallest], (*h)[i]
		i = smallest
	}
	return top
}

// pathStep returns the first move of a shortest path to the food. Body cells
// block the search except the tail, which vacates as the snake moves.
func (p Seek) pathStep(g *Grid, s *Snake) (Direction, bool) {
	food, ok := g.Food()
	if !ok {
		return 0, false
	}
	head := s.Head()
	area := g.Area()
	cost := make([]int, area)
	for i := range cost {
		cost[i] = math.MaxInt
	}
	parent := make([]int, area)
	arrive := make([]Direction, area)
	closed := make([]bool, area)

	start := g.Index(head)
	goal := g.Index(food)
	cost[start] = 0
	parent[start] = -1
	arrive[start] = s.Facing()

	open := seekHeap{}
	seq := 0
	h0 := Manhattan(head, food)
	open.push(seekNode{idx: start, f: h0, h: h0})

	for len(open) > 0 {
		cur := open.pop()
		if closed[cur.idx] {
			continue
		}
		closed[cur.idx] = true
		if cur.idx == goal {
			return firstStep(parent, arrive, goal), true
		}
		c := g.CellAt(cur.idx)
		for _, d := range Directions {
			if cur.idx == start && d == s.Facing().Reverse() {
				continue
			}
			n := c.Add(d)
			if !g.InBounds(n) {
				continue
			}
			if s.Contains(n) && n != s.Tail() {
				continue
			}
			ni := g.Index(n)
			ng := cost[cur.idx] + 1
			if closed[ni] || ng >= cost[ni] {
				continue
			}
			cost[ni] = ng
			parent[ni] = cur.idx
			arrive[ni] = d
			var turn uint8
			if d != arrive[cur.idx] {
				turn = 1
			}
			seq++
			h := Manhattan(n, food)
			open.push(seekNode{idx: ni, f: ng + h, h: h, turn: turn, seq: seq})
		}
	}
	return 0, false
}

func firstStep(parent []int, arrive []Direction, goal int) Direction {
	i := goal
	for parent[parent[i]] != -1 {
		i = parent[i]
	}
	return arrive[i]
}

// spaceMove picks the legal move whose free neighbours have the most free
// neighbours of their own. Ties keep the current facing, then neighbour order.
func spaceMove(g *Grid, s *Snake) (Direction, bool) {
	best, bestScore := s.Facing(), -1
	for _, d := range legalMoves(g, s) {
		a := newAfterMove(g, s, s.Head().Add(d))
		score := 0
		for _, d2 := range Directions {
			if n := a.next.Add(d2); a.free(n) {
				score += a.freeNeighbors(n)
			}
		}
		if score > bestScore || (score == bestScore && d == s.Facing()) {
			best, bestScore = d, score
		}
	}
	return best, bestScore >= 0
}
