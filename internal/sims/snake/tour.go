package snake

import (
	"errors"
	"fmt"
)

// ErrNoTour reports a grid that has no closed tour over every cell.
var ErrNoTour = errors.New("grid has no hamiltonian cycle")

// Tour is a fixed closed walk that visits every cell exactly once. It is
// immutable after construction and safe to share between controllers.
type Tour struct {
	w, h  int
	order []Cell
	index []int
}

// NewTour builds a tour for a w x h grid. One exists only when both sides
// are at least 2 and the cell count is even.
func NewTour(w, h int) (*Tour, error) {
	if w < 2 || h < 2 || (w*h)%2 != 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrNoTour, w, h)
	}
	var order []Cell
	if h%2 == 0 {
		order = combTour(w, h)
	} else {
		order = combTour(h, w)
		for i, c := range order {
			order[i] = Cell{X: c.Y, Y: c.X}
		}
	}
	t := &Tour{w: w, h: h, order: order, index: make([]int, w*h)}
	for i, c := range order {
		t.index[c.Y*w+c.X] = i
	}
	return t, nil
}

// combTour walks row 0 left to right, sweeps the remaining rows back and
// forth over columns 1..w-1 and returns home up column 0. h must be even.
func combTour(w, h int) []Cell {
	order := make([]Cell, 0, w*h)
	for x := 0; x < w; x++ {
		order = append(order, Cell{X: x, Y: 0})
	}
	for y := 1; y < h; y++ {
		if y%2 == 1 {
			for x := w - 1; x >= 1; x-- {
				order = append(order, Cell{X: x, Y: y})
			}
		} else {
			for x := 1; x < w; x++ {
				order = append(order, Cell{X: x, Y: y})
			}
		}
	}
	for y := h - 1; y >= 1; y-- {
		order = append(order, Cell{X: 0, Y: y})
	}
	return order
}

// Len returns the number of cells on the tour.
func (t *Tour) Len() int { return len(t.order) }

// Index returns the position of c along the tour.
func (t *Tour) Index(c Cell) int { return t.index[c.Y*t.w+c.X] }

// At returns the cell at tour position i, wrapping around.
func (t *Tour) At(i int) Cell {
	n := len(t.order)
	return t.order[((i%n)+n)%n]
}

// Successor returns the cell after c on the tour.
func (t *Tour) Successor(c Cell) Cell { return t.At(t.Index(c) + 1) }

// Distance returns how many forward tour steps lead from a to b.
func (t *Tour) Distance(a, b Cell) int {
	n := len(t.order)
	return ((t.Index(b)-t.Index(a))%n + n) % n
}
