// Package matrix maps logical (x, y) grid positions onto physical LED strip
// indices for the supported panel wirings.
package matrix

import (
	"errors"
	"fmt"
	"strings"
)

// Wiring selects how the LED strip snakes through the panel.
type Wiring uint8

const (
	// SerpentineEven runs even rows right to left and odd rows left to right.
	// This is the reference 18x18 frame.
	SerpentineEven Wiring = iota
	// SerpentineOdd is the mirrored serpentine convention.
	SerpentineOdd
	// Progressive runs every row left to right.
	Progressive
)

// ErrSize reports dimensions that cannot describe a panel.
var ErrSize = errors.New("invalid matrix size")

func (w Wiring) String() string {
	switch w {
	case SerpentineEven:
		return "serpentine-even"
	case SerpentineOdd:
		return "serpentine-odd"
	case Progressive:
		return "progressive"
	default:
		return fmt.Sprintf("wiring(%d)", uint8(w))
	}
}

// ParseWiring accepts the names produced by Wiring.String.
func ParseWiring(s string) (Wiring, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "serpentine", "serpentine-even":
		return SerpentineEven, nil
	case "serpentine-odd":
		return SerpentineOdd, nil
	case "progressive", "row-major":
		return Progressive, nil
	}
	return 0, fmt.Errorf("unknown wiring %q", s)
}

// Mapper converts between logical cells and physical LED indices. The zero
// value is not usable; construct with New.
type Mapper struct {
	w, h   int
	wiring Wiring
}

// New validates the panel geometry. leds is the number of LEDs on the strip
// and must equal w*h.
func New(w, h, leds int, wiring Wiring) (Mapper, error) {
	if w <= 0 || h <= 0 {
		return Mapper{}, fmt.Errorf("%w: %dx%d", ErrSize, w, h)
	}
	if leds != w*h {
		return Mapper{}, fmt.Errorf("%w: %d leds for a %dx%d grid", ErrSize, leds, w, h)
	}
	if wiring > Progressive {
		return Mapper{}, fmt.Errorf("%w: unsupported %s", ErrSize, wiring)
	}
	return Mapper{w: w, h: h, wiring: wiring}, nil
}

// Width returns the logical width.
func (m Mapper) Width() int { return m.w }

// Height returns the logical height.
func (m Mapper) Height() int { return m.h }

// Len returns the number of LEDs.
func (m Mapper) Len() int { return m.w * m.h }

// Wiring returns the configured wiring.
func (m Mapper) Wiring() Wiring { return m.wiring }

func (m Mapper) reversed(y int) bool {
	switch m.wiring {
	case SerpentineEven:
		return y%2 == 0
	case SerpentineOdd:
		return y%2 == 1
	default:
		return false
	}
}

// ToPhysical returns the strip index for (x, y), or -1 when out of bounds.
func (m Mapper) ToPhysical(x, y int) int {
	if x < 0 || x >= m.w || y < 0 || y >= m.h {
		return -1
	}
	if m.reversed(y) {
		return y*m.w + (m.w - 1 - x)
	}
	return y*m.w + x
}

// FromPhysical inverts ToPhysical. ok is false for indices off the strip.
func (m Mapper) FromPhysical(i int) (x, y int, ok bool) {
	if i < 0 || i >= m.w*m.h {
		return 0, 0, false
	}
	y = i / m.w
	x = i % m.w
	if m.reversed(y) {
		x = m.w - 1 - x
	}
	return x, y, true
}
