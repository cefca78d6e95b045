package matrix

import (
	"errors"
	"testing"
)

func TestMapperIsBijection(t *testing.T) {
	sizes := []struct{ w, h int }{{18, 18}, {1, 1}, {5, 3}, {4, 7}}
	for _, wiring := range []Wiring{SerpentineEven, SerpentineOdd, Progressive} {
		for _, sz := range sizes {
			m, err := New(sz.w, sz.h, sz.w*sz.h, wiring)
			if err != nil {
				t.Fatalf("%s %dx%d: %v", wiring, sz.w, sz.h, err)
			}
			hits := make([]int, m.Len())
			for y := 0; y < sz.h; y++ {
				for x := 0; x < sz.w; x++ {
					i := m.ToPhysical(x, y)
					if i < 0 || i >= m.Len() {
						t.Fatalf("%s: (%d,%d) mapped off strip to %d", wiring, x, y, i)
					}
					hits[i]++
					bx, by, ok := m.FromPhysical(i)
					if !ok || bx != x || by != y {
						t.Fatalf("%s: round trip (%d,%d) -> %d -> (%d,%d)", wiring, x, y, i, bx, by)
					}
				}
			}
			for i, n := range hits {
				if n != 1 {
					t.Fatalf("%s %dx%d: index %d hit %d times", wiring, sz.w, sz.h, i, n)
				}
			}
		}
	}
}

func TestSerpentineReferenceLayout(t *testing.T) {
	m, err := New(18, 18, 324, SerpentineEven)
	if err != nil {
		t.Fatal(err)
	}
	cases := []struct{ x, y, want int }{
		{0, 0, 17},
		{17, 0, 0},
		{0, 1, 18},
		{17, 1, 35},
		{0, 2, 53},
	}
	for _, c := range cases {
		if got := m.ToPhysical(c.x, c.y); got != c.want {
			t.Errorf("ToPhysical(%d,%d) = %d, want %d", c.x, c.y, got, c.want)
		}
	}
	if m.ToPhysical(18, 0) != -1 {
		t.Error("out of bounds cell should map to -1")
	}
}

func TestNewRejectsBadGeometry(t *testing.T) {
	cases := []struct{ w, h, leds int }{
		{0, 18, 0},
		{18, -1, 18},
		{18, 18, 300},
	}
	for _, c := range cases {
		if _, err := New(c.w, c.h, c.leds, SerpentineEven); !errors.Is(err, ErrSize) {
			t.Errorf("New(%d,%d,%d) err = %v, want ErrSize", c.w, c.h, c.leds, err)
		}
	}
}

func TestParseWiring(t *testing.T) {
	for _, w := range []Wiring{SerpentineEven, SerpentineOdd, Progressive} {
		got, err := ParseWiring(w.String())
		if err != nil || got != w {
			t.Fatalf("ParseWiring(%q) = %v, %v", w.String(), got, err)
		}
	}
	if _, err := ParseWiring("diagonal"); err == nil {
		t.Fatal("expected error for unknown wiring")
	}
}
