package app

import (
	"flag"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Config holds the command line settings shared by the players.
type Config struct {
	Routine    string
	Width      int
	Height     int
	Wiring     string
	Seed       int64
	Delay      time.Duration
	Frames     int
	Duration   time.Duration
	Episodes   int
	Scale      int
	Brightness int
	Playlist   string
	Sets       Sets
}

// NewConfig returns the defaults for the 18x18 frame.
func NewConfig() Config {
	return Config{
		Routine:    "snake",
		Width:      18,
		Height:     18,
		Wiring:     "serpentine-even",
		Seed:       1337,
		Delay:      100 * time.Millisecond,
		Scale:      24,
		Brightness: 255,
		Sets:       Sets{},
	}
}

// Bind registers the flags on fs.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Routine, "routine", c.Routine, "routine to play")
	fs.IntVar(&c.Width, "w", c.Width, "panel width in LEDs")
	fs.IntVar(&c.Height, "h", c.Height, "panel height in LEDs")
	fs.StringVar(&c.Wiring, "wiring", c.Wiring, "panel wiring: serpentine-even, serpentine-odd, progressive")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random seed")
	fs.DurationVar(&c.Delay, "delay", c.Delay, "inter-frame delay")
	fs.IntVar(&c.Frames, "frames", c.Frames, "stop after this many frames (0 = unbounded)")
	fs.DurationVar(&c.Duration, "duration", c.Duration, "stop after this long (0 = unbounded)")
	fs.IntVar(&c.Episodes, "episodes", c.Episodes, "snake episodes to play (0 = forever)")
	fs.IntVar(&c.Scale, "scale", c.Scale, "window pixels per LED")
	fs.IntVar(&c.Brightness, "brightness", c.Brightness, "panel brightness 0-255")
	fs.StringVar(&c.Playlist, "playlist", c.Playlist, "comma separated routines to cycle instead of -routine")
	fs.Var(&c.Sets, "set", "routine parameter key=value (repeatable)")
}

// RoutineConfig merges the geometry flags with the -set overrides into the
// map routine factories accept.
func (c Config) RoutineConfig() map[string]string {
	out := map[string]string{
		"w":      strconv.Itoa(c.Width),
		"h":      strconv.Itoa(c.Height),
		"wiring": c.Wiring,
		"seed":   strconv.FormatInt(c.Seed, 10),
	}
	if c.Episodes > 0 {
		out["episodes"] = strconv.Itoa(c.Episodes)
	}
	for k, v := range c.Sets {
		out[k] = v
	}
	return out
}

// Routines returns the playlist entries, or the single routine when no
// playlist was given.
func (c Config) Routines() []string {
	if strings.TrimSpace(c.Playlist) == "" {
		return []string{c.Routine}
	}
	var names []string
	for _, n := range strings.Split(c.Playlist, ",") {
		if n = strings.TrimSpace(n); n != "" {
			names = append(names, n)
		}
	}
	return names
}

// Sets collects repeated key=value flags.
type Sets map[string]string

func (s Sets) String() string {
	parts := make([]string, 0, len(s))
	for k, v := range s {
		parts = append(parts, k+"="+v)
	}
	return strings.Join(parts, ",")
}

// Set implements flag.Value.
func (s Sets) Set(v string) error {
	key, val, ok := strings.Cut(v, "=")
	key = strings.TrimSpace(key)
	if !ok || key == "" {
		return fmt.Errorf("expected key=value, got %q", v)
	}
	s[key] = strings.TrimSpace(val)
	return nil
}
