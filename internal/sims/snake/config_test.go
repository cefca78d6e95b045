package snake

import (
	"errors"
	"testing"

	"ledframe/internal/core"
	"ledframe/internal/matrix"
)

func TestFromMapParsesKeys(t *testing.T) {
	cfg, err := FromMap(map[string]string{
		"w":             "10",
		"h":             "8",
		"strategy":      "strategic",
		"wiring":        "progressive",
		"buffer":        "5",
		"shortcut_fill": "0.25",
		"flood_check":   "true",
		"random_start":  "1",
		"seed":          "42",
	})
	if err != nil {
		t.Fatalf("FromMap: %v", err)
	}
	if cfg.Width != 10 || cfg.Height != 8 || cfg.Seed != 42 {
		t.Fatalf("unexpected geometry %+v", cfg)
	}
	if cfg.Strategy != StrategyStrategic || cfg.Wiring != matrix.Progressive {
		t.Fatalf("unexpected strategy or wiring %+v", cfg)
	}
	p := cfg.Params
	if p.Buffer != 5 || p.ShortcutFill != 0.25 || !p.FloodCheck || !p.RandomStart {
		t.Fatalf("unexpected params %+v", p)
	}
}

func TestFromMapRejectsGarbage(t *testing.T) {
	cases := []map[string]string{
		{"w": "wide"},
		{"seed": "x"},
		{"shortcut_fill": "2"},
		{"flood_check": "maybe"},
		{"strategy": "greedy"},
		{"wiring": "spiral"},
	}
	for _, m := range cases {
		if _, err := FromMap(m); !errors.Is(err, ErrBadConfig) {
			t.Fatalf("%v: expected ErrBadConfig, got %v", m, err)
		}
	}
}

func TestNewValidatesGeometry(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 0
	if _, err := New(cfg); !errors.Is(err, ErrBadConfig) || !errors.Is(err, matrix.ErrSize) {
		t.Fatalf("expected size error, got %v", err)
	}

	cfg = DefaultConfig()
	cfg.Width, cfg.Height = 5, 5
	cfg.Strategy = StrategyStrategic
	if _, err := New(cfg); !errors.Is(err, ErrNoTour) {
		t.Fatalf("expected ErrNoTour for strategic 5x5, got %v", err)
	}
	cfg.Strategy = StrategySeek
	if _, err := New(cfg); err != nil {
		t.Fatalf("seek should run on 5x5: %v", err)
	}
}

func TestRegistryBuildsSnakes(t *testing.T) {
	r, err := core.Build("strategic_snake", map[string]string{"w": "4", "h": "4"})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	c, ok := r.(*Controller)
	if !ok || c.Name() != "strategic_snake" || c.Config().Strategy != StrategyStrategic {
		t.Fatalf("unexpected routine %T %s", r, r.Name())
	}
	if got := r.Size(); got != (core.Size{W: 4, H: 4}) {
		t.Fatalf("unexpected size %+v", got)
	}

	r, err = core.Build("snake", map[string]string{"strategy": "alternate"})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if r.Name() != "snake_alternate" {
		t.Fatalf("explicit strategy should win, got %s", r.Name())
	}

	if _, err := core.Build("snake", map[string]string{"w": "-1"}); err == nil {
		t.Fatal("expected an error for a negative width")
	}
}

func TestParametersRoundTrip(t *testing.T) {
	c := newController(t, func(cfg *Config) { cfg.Params.Buffer = 4 })
	flat := c.Parameters().Flatten()
	cfg, err := FromMap(flat)
	if err != nil {
		t.Fatalf("FromMap(Parameters): %v", err)
	}
	if cfg != c.Config() {
		t.Fatalf("parameters should rebuild the config: %+v vs %+v", cfg, c.Config())
	}
}
