package snake

// Move is one history entry: where the head landed and how it got there.
type Move struct {
	Head Cell
	Dir  Direction
}

// History is a bounded ring of recent moves used to spot the agent circling
// without progress.
type History struct {
	buf    []Move
	start  int
	n      int
	window int
	period int
}

// NewHistory keeps the last capacity moves and reports cycling when the last
// window moves repeat with a period of at most period.
func NewHistory(capacity, window, period int) *History {
	if period < 2 {
		period = 2
	}
	if window < 2*period {
		window = 2 * period
	}
	if capacity < window {
		capacity = window
	}
	return &History{buf: make([]Move, capacity), window: window, period: period}
}

// Record appends a move, evicting the oldest when full.
func (h *History) Record(head Cell, d Direction) {
	m := Move{Head: head, Dir: d}
	if h.n < len(h.buf) {
		h.buf[(h.start+h.n)%len(h.buf)] = m
		h.n++
		return
	}
	h.buf[h.start] = m
	h.start = (h.start + 1) % len(h.buf)
}

// Reset forgets every move.
func (h *History) Reset() {
	h.start = 0
	h.n = 0
}

// Len returns the number of stored moves.
func (h *History) Len() int { return h.n }

// Window returns the number of moves IsCycling inspects.
func (h *History) Window() int { return h.window }

// At returns the i-th stored move, oldest first.
func (h *History) At(i int) Move { return h.buf[(h.start+i)%len(h.buf)] }

// IsCycling reports whether the last window moves are periodic with a period
// of 2..period. A periodic head trajectory has no net displacement.
func (h *History) IsCycling() bool {
	if h.n < h.window {
		return false
	}
	from := h.n - h.window
	for p := 2; p <= h.period; p++ {
		periodic := true
		for i := from + p; i < h.n; i++ {
			if h.At(i) != h.At(i-p) {
				periodic = false
				break
			}
		}
		if periodic {
			return true
		}
	}
	return false
}
