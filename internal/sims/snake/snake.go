package snake

import (
	"errors"
	"fmt"
)

// ErrBadBody reports a body that is empty, repeats a cell, leaves the grid or
// is not 4-connected.
var ErrBadBody = errors.New("invalid snake body")

// Snake is the ordered body of the agent plus the direction it last moved.
type Snake struct {
	w, h   int
	body   []Cell // tail first, head last
	mask   []bool
	facing Direction
}

// NewSnake builds a snake on a w x h grid from cells listed head to tail.
func NewSnake(w, h int, headToTail []Cell, facing Direction) (*Snake, error) {
	if len(headToTail) == 0 {
		return nil, fmt.Errorf("%w: empty", ErrBadBody)
	}
	s := &Snake{
		w:      w,
		h:      h,
		body:   make([]Cell, 0, w*h),
		mask:   make([]bool, w*h),
		facing: facing,
	}
	for i := len(headToTail) - 1; i >= 0; i-- {
		c := headToTail[i]
		if c.X < 0 || c.X >= w || c.Y < 0 || c.Y >= h {
			return nil, fmt.Errorf("%w: %s out of bounds", ErrBadBody, c)
		}
		if s.Contains(c) {
			return nil, fmt.Errorf("%w: %s repeated", ErrBadBody, c)
		}
		if len(s.body) > 0 && Manhattan(s.body[len(s.body)-1], c) != 1 {
			return nil, fmt.Errorf("%w: %s not adjacent to %s", ErrBadBody, c, s.body[len(s.body)-1])
		}
		s.body = append(s.body, c)
		s.mask[c.Y*w+c.X] = true
	}
	return s, nil
}

// Len returns the number of body cells.
func (s *Snake) Len() int { return len(s.body) }

// Head returns the head cell.
func (s *Snake) Head() Cell { return s.body[len(s.body)-1] }

// Tail returns the last body cell.
func (s *Snake) Tail() Cell { return s.body[0] }

// Facing returns the direction of the most recent move.
func (s *Snake) Facing() Direction { return s.facing }

// At returns the i-th cell counted from the head.
func (s *Snake) At(i int) Cell { return s.body[len(s.body)-1-i] }

// Body returns a copy of the cells from head to tail.
func (s *Snake) Body() []Cell {
	out := make([]Cell, len(s.body))
	for i := range s.body {
		out[i] = s.At(i)
	}
	return out
}

// Contains reports whether c is part of the body.
func (s *Snake) Contains(c Cell) bool {
	if c.X < 0 || c.X >= s.w || c.Y < 0 || c.Y >= s.h {
		return false
	}
	return s.mask[c.Y*s.w+c.X]
}

// ProposeMove returns the cell the head would enter moving in d. A request to
// reverse onto the neck is replaced by the current facing.
func (s *Snake) ProposeMove(d Direction) (Cell, Direction) {
	if d == s.facing.Reverse() {
		d = s.facing
	}
	return s.Head().Add(d), d
}

// Collides reports whether moving the head into c runs into the body. The
// tail is safe to enter only when the move does not grow the snake, since it
// vacates that tick.
func (s *Snake) Collides(c Cell, grew bool) bool {
	if !s.Contains(c) {
		return false
	}
	return grew || c != s.Tail()
}

// ApplyMove pushes c as the new head. Without growth the tail is dropped so
// the length is unchanged.
func (s *Snake) ApplyMove(c Cell, d Direction, grew bool) {
	if !grew {
		t := s.body[0]
		s.mask[t.Y*s.w+t.X] = false
		s.body = s.body[1:]
	}
	s.body = append(s.body, c)
	s.mask[c.Y*s.w+c.X] = true
	s.facing = d
}
