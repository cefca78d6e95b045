package core

import "errors"

// RGB is a 24-bit LED color.
type RGB struct {
	R, G, B uint8
}

// Black is the unlit LED color.
var Black = RGB{}

// Sink receives one frame of LED colors addressed by physical strip index.
// Flush commits every SetPixel since the previous flush as a single frame.
type Sink interface {
	SetPixel(index int, c RGB)
	Flush() error
	Len() int
}

// ErrSinkClosed is returned by sinks that can no longer present frames.
var ErrSinkClosed = errors.New("sink closed")

// FrameBuffer is an in-memory Sink. Writes land in a back buffer and become
// visible through Frame only after Flush.
type FrameBuffer struct {
	back    []RGB
	front   []RGB
	flushes int
}

// NewFrameBuffer allocates a buffer for n LEDs.
func NewFrameBuffer(n int) *FrameBuffer {
	if n < 0 {
		n = 0
	}
	return &FrameBuffer{back: make([]RGB, n), front: make([]RGB, n)}
}

// SetPixel stores c at index; out of range writes are dropped.
func (f *FrameBuffer) SetPixel(index int, c RGB) {
	if index < 0 || index >= len(f.back) {
		return
	}
	f.back[index] = c
}

// Flush publishes the back buffer.
func (f *FrameBuffer) Flush() error {
	copy(f.front, f.back)
	f.flushes++
	return nil
}

// Len returns the LED count.
func (f *FrameBuffer) Len() int { return len(f.back) }

// Frame exposes the last flushed frame. Callers must not modify it.
func (f *FrameBuffer) Frame() []RGB { return f.front }

// Flushes reports how many frames have been committed.
func (f *FrameBuffer) Flushes() int { return f.flushes }

// Fill sets every LED in the back buffer to c.
func Fill(s Sink, c RGB) {
	for i := 0; i < s.Len(); i++ {
		s.SetPixel(i, c)
	}
}
