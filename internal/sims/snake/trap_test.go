package snake

import "testing"

func recordLoop(h *History, n int) {
	loop := []Move{
		{Cell{1, 0}, Right},
		{Cell{1, 1}, Down},
		{Cell{0, 1}, Left},
		{Cell{0, 0}, Up},
	}
	for i := 0; i < n; i++ {
		m := loop[i%len(loop)]
		h.Record(m.Head, m.Dir)
	}
}

func TestHistoryDetectsSmallLoop(t *testing.T) {
	h := NewHistory(32, 16, 8)
	recordLoop(h, 15)
	if h.IsCycling() {
		t.Fatal("cycling reported before the window filled")
	}
	recordLoop(h, 1)
	if h.IsCycling() {
		t.Fatal("phase-shifted record should not complete the window yet")
	}

	h.Reset()
	recordLoop(h, 16)
	if !h.IsCycling() {
		t.Fatal("expected a 4-move loop to be detected")
	}

	h.Record(Cell{X: 2, Y: 0}, Right)
	if h.IsCycling() {
		t.Fatal("displacement should clear the cycle")
	}
}

func TestHistoryIgnoresLongLoops(t *testing.T) {
	h := NewHistory(32, 16, 8)
	// A 10-move loop exceeds the maximum period.
	for i := 0; i < 40; i++ {
		x := i % 10
		h.Record(Cell{X: x}, Right)
	}
	if h.IsCycling() {
		t.Fatal("period 10 should not count as cycling")
	}
}

func TestHistoryRingEvictsOldest(t *testing.T) {
	h := NewHistory(4, 2, 1)
	if h.Window() != 4 || h.Len() != 0 {
		t.Fatalf("expected clamped window 4, got %d", h.Window())
	}
	for i := 0; i < 6; i++ {
		h.Record(Cell{X: i}, Right)
	}
	if h.Len() != 4 {
		t.Fatalf("expected 4 moves kept, got %d", h.Len())
	}
	if h.At(0).Head.X != 2 || h.At(3).Head.X != 5 {
		t.Fatalf("unexpected ring contents %v .. %v", h.At(0), h.At(3))
	}
}
