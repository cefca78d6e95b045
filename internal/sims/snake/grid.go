// Package snake implements the self-playing snake routine: grid model,
// snake entity, food spawner, the seek and strategic planners, the
// oscillation detector and the episode controller that renders it all to an
// LED sink.
package snake

import "fmt"

// Cell is a logical grid position.
type Cell struct {
	X, Y int
}

func (c Cell) String() string { return fmt.Sprintf("(%d,%d)", c.X, c.Y) }

// Add returns c moved one step in d.
func (c Cell) Add(d Direction) Cell {
	v := d.Vector()
	return Cell{X: c.X + v.X, Y: c.Y + v.Y}
}

// Manhattan returns the taxicab distance between a and b.
func Manhattan(a, b Cell) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Direction is one of the four cardinal moves.
type Direction uint8

const (
	Up Direction = iota
	Right
	Down
	Left
)

// Directions lists the moves in neighbour order: up, right, down, left.
var Directions = [4]Direction{Up, Right, Down, Left}

var dirVectors = [4]Cell{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// Vector returns the unit step for d.
func (d Direction) Vector() Cell { return dirVectors[d&3] }

// Reverse returns the opposite direction.
func (d Direction) Reverse() Direction { return (d + 2) & 3 }

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	}
	return fmt.Sprintf("direction(%d)", uint8(d))
}

// DirectionTo returns the direction of the unit step from a to b.
func DirectionTo(a, b Cell) (Direction, bool) {
	for _, d := range Directions {
		if a.Add(d) == b {
			return d, true
		}
	}
	return 0, false
}

// Occupancy is the content of a grid cell.
type Occupancy uint8

const (
	Empty Occupancy = iota
	Body
	Food
)

// Grid is a bounded occupancy view over a snake and its food. It stores no
// cell state of its own; every query is answered from the snake and food.
type Grid struct {
	w, h    int
	snake   *Snake
	food    Cell
	hasFood bool
}

// NewGrid returns an empty w x h grid.
func NewGrid(w, h int) *Grid {
	return &Grid{w: w, h: h}
}

// Width returns the grid width.
func (g *Grid) Width() int { return g.w }

// Height returns the grid height.
func (g *Grid) Height() int { return g.h }

// Area returns the number of cells.
func (g *Grid) Area() int { return g.w * g.h }

// Bind points the grid at the episode's snake and food.
func (g *Grid) Bind(s *Snake, food Cell, hasFood bool) {
	g.snake = s
	g.food = food
	g.hasFood = hasFood
}

// SetFood replaces the food cell.
func (g *Grid) SetFood(food Cell, ok bool) {
	g.food = food
	g.hasFood = ok
}

// Food returns the food cell, if any.
func (g *Grid) Food() (Cell, bool) { return g.food, g.hasFood }

// InBounds reports whether c lies on the grid.
func (g *Grid) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < g.w && c.Y >= 0 && c.Y < g.h
}

// Index returns the row-major index of an in-bounds cell.
func (g *Grid) Index(c Cell) int { return c.Y*g.w + c.X }

// CellAt inverts Index.
func (g *Grid) CellAt(i int) Cell { return Cell{X: i % g.w, Y: i / g.w} }

// Occupancy reports what occupies c. Out of bounds cells read as Empty.
func (g *Grid) Occupancy(c Cell) Occupancy {
	if !g.InBounds(c) {
		return Empty
	}
	if g.snake != nil && g.snake.Contains(c) {
		return Body
	}
	if g.hasFood && g.food == c {
		return Food
	}
	return Empty
}

// Neighbors4 returns the in-bounds neighbours of c in up, right, down, left
// order.
func (g *Grid) Neighbors4(c Cell) []Cell {
	out := make([]Cell, 0, 4)
	for _, d := range Directions {
		if n := c.Add(d); g.InBounds(n) {
			out = append(out, n)
		}
	}
	return out
}

// Counts tallies body and food cells over the whole grid.
func (g *Grid) Counts() (body, food int) {
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			switch g.Occupancy(Cell{X: x, Y: y}) {
			case Body:
				body++
			case Food:
				food++
			}
		}
	}
	return body, food
}
