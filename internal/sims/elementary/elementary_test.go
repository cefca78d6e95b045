package elementary

import (
	"errors"
	"slices"
	"testing"

	"ledframe/internal/sims/cellular"
)

func TestRule90Scrolls(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Config = cellular.Config{Width: 7, Height: 3}
	cfg.Rule = 90
	e, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	e.Tick()
	cells := e.Cells()
	if got, want := cells[0:7], []uint8{0, 0, 1, 0, 1, 0, 0}; !slices.Equal(got, want) {
		t.Fatalf("top row %v, want %v", got, want)
	}
	if got, want := cells[7:14], []uint8{0, 0, 0, 1, 0, 0, 0}; !slices.Equal(got, want) {
		t.Fatalf("history row %v, want %v", got, want)
	}
}

func TestFromMapRuleAndRandom(t *testing.T) {
	cfg, err := FromMap(map[string]string{"rule": "110", "random": "true"})
	if err != nil {
		t.Fatalf("FromMap: %v", err)
	}
	if cfg.Rule != 110 || !cfg.Random {
		t.Fatalf("unexpected config %+v", cfg)
	}
	for key, bad := range map[string]string{"rule": "256", "random": "sometimes"} {
		if _, err := FromMap(map[string]string{key: bad}); !errors.Is(err, cellular.ErrBadConfig) {
			t.Fatalf("%s=%q: expected ErrBadConfig, got %v", key, bad, err)
		}
	}
	if _, err := FromMap(map[string]string{"rule": "-1"}); err == nil {
		t.Fatal("negative rule should be rejected")
	}
}
