package ui

import (
	"slices"
	"testing"
	"time"

	"ledframe/internal/core"
)

type quietRoutine struct{}

func (quietRoutine) Name() string { return "quiet" }
func (quietRoutine) Size() core.Size { return core.Size{W: 1, H: 1} }
func (quietRoutine) Reset(int64) {}
func (quietRoutine) Step(core.Sink, time.Duration) error { return nil }
func (quietRoutine) Done() bool { return false }

type chattyRoutine struct{ quietRoutine }

func (chattyRoutine) StatusLines() []string { return []string{"ep 1"} }

func TestStatusLines(t *testing.T) {
	if got := StatusLines(quietRoutine{}); got != nil {
		t.Fatalf("expected no status, got %v", got)
	}
	if got := StatusLines(chattyRoutine{}); !slices.Equal(got, []string{"ep 1"}) {
		t.Fatalf("unexpected status %v", got)
	}
}
