package snake

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"ledframe/internal/matrix"
)

// ErrBadConfig reports a configuration the controller cannot run.
var ErrBadConfig = errors.New("invalid snake config")

// Strategy selects the planner used for an episode.
type Strategy uint8

const (
	// StrategySeek chases the food along shortest paths.
	StrategySeek Strategy = iota
	// StrategyStrategic follows the tour with guarded shortcuts.
	StrategyStrategic
	// StrategyAlternate switches between seek and strategic every episode.
	StrategyAlternate
)

func (s Strategy) String() string {
	switch s {
	case StrategySeek:
		return "seek"
	case StrategyStrategic:
		return "strategic"
	case StrategyAlternate:
		return "alternate"
	}
	return fmt.Sprintf("strategy(%d)", uint8(s))
}

// ParseStrategy accepts the names produced by Strategy.String.
func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "seek", "basic", "":
		return StrategySeek, nil
	case "strategic", "cycle":
		return StrategyStrategic, nil
	case "alternate":
		return StrategyAlternate, nil
	}
	return 0, fmt.Errorf("%w: unknown strategy %q", ErrBadConfig, s)
}

// Params holds the tunables of the agent and its episode flow.
type Params struct {
	Buffer       int
	ShortcutFill float64
	FloodCheck   bool

	History int
	Window  int
	Period  int

	// StallLimit ends an episode after this many moves without eating.
	// Zero means width*height, negative disables the guard.
	StallLimit  int
	FlashFrames int
	WinFrames   int
	RandomStart bool
}

// Config controls the snake routine.
type Config struct {
	Width  int
	Height int
	Wiring matrix.Wiring

	Seed     int64
	Strategy Strategy
	// Episodes bounds the run; zero plays forever.
	Episodes int

	Params Params
}

// DefaultConfig returns the reference 18x18 frame configuration.
func DefaultConfig() Config {
	return Config{
		Width:    18,
		Height:   18,
		Wiring:   matrix.SerpentineEven,
		Seed:     1337,
		Strategy: StrategySeek,
		Params: Params{
			Buffer:       3,
			ShortcutFill: 0.5,
			History:      32,
			Window:       16,
			Period:       8,
			FlashFrames:  6,
			WinFrames:    8,
		},
	}
}

// FromMap populates the config from a string map (flag-style key/value
// pairs). Values that do not parse are returned as ErrBadConfig.
func FromMap(cfg map[string]string) (Config, error) {
	c := DefaultConfig()
	if cfg == nil {
		return c, nil
	}
	var err error
	intKey := func(key string, dst *int) {
		v, ok := cfg[key]
		if !ok || err != nil {
			return
		}
		parsed, perr := strconv.Atoi(v)
		if perr != nil {
			err = fmt.Errorf("%w: %s=%q: %v", ErrBadConfig, key, v, perr)
			return
		}
		*dst = parsed
	}
	intKey("w", &c.Width)
	intKey("h", &c.Height)
	intKey("episodes", &c.Episodes)
	intKey("buffer", &c.Params.Buffer)
	intKey("history", &c.Params.History)
	intKey("window", &c.Params.Window)
	intKey("period", &c.Params.Period)
	intKey("stall_limit", &c.Params.StallLimit)
	intKey("flash_frames", &c.Params.FlashFrames)
	intKey("win_frames", &c.Params.WinFrames)
	if err != nil {
		return c, err
	}
	if v, ok := cfg["seed"]; ok {
		parsed, perr := strconv.ParseInt(v, 10, 64)
		if perr != nil {
			return c, fmt.Errorf("%w: seed=%q: %v", ErrBadConfig, v, perr)
		}
		c.Seed = parsed
	}
	if v, ok := cfg["shortcut_fill"]; ok {
		parsed, perr := strconv.ParseFloat(v, 64)
		if perr != nil || parsed < 0 || parsed > 1 {
			return c, fmt.Errorf("%w: shortcut_fill=%q", ErrBadConfig, v)
		}
		c.Params.ShortcutFill = parsed
	}
	for key, dst := range map[string]*bool{"flood_check": &c.Params.FloodCheck, "random_start": &c.Params.RandomStart} {
		if v, ok := cfg[key]; ok {
			parsed, perr := strconv.ParseBool(v)
			if perr != nil {
				return c, fmt.Errorf("%w: %s=%q: %v", ErrBadConfig, key, v, perr)
			}
			*dst = parsed
		}
	}
	if v, ok := cfg["strategy"]; ok {
		s, perr := ParseStrategy(v)
		if perr != nil {
			return c, perr
		}
		c.Strategy = s
	}
	if v, ok := cfg["wiring"]; ok {
		w, perr := matrix.ParseWiring(v)
		if perr != nil {
			return c, fmt.Errorf("%w: %v", ErrBadConfig, perr)
		}
		c.Wiring = w
	}
	return c, nil
}
