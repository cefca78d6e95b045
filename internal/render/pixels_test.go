package render

import (
	"testing"

	"ledframe/internal/core"
	"ledframe/internal/matrix"
)

func TestFillRGBAUndoesSerpentine(t *testing.T) {
	m, err := matrix.New(3, 2, 6, matrix.SerpentineEven)
	if err != nil {
		t.Fatalf("mapper: %v", err)
	}
	frame := make([]core.RGB, 6)
	frame[m.ToPhysical(0, 0)] = core.RGB{R: 10}
	frame[m.ToPhysical(2, 1)] = core.RGB{B: 30}

	buf := make([]byte, 6*4)
	FillRGBA(buf, frame, m)
	if buf[0] != 10 || buf[3] != 0xff {
		t.Fatalf("top-left pixel: %v", buf[0:4])
	}
	last := (1*3 + 2) * 4
	if buf[last+2] != 30 {
		t.Fatalf("bottom-right pixel: %v", buf[last:last+4])
	}
	for _, i := range []int{4, 8, 12, 16} {
		if buf[i] != 0 || buf[i+1] != 0 || buf[i+2] != 0 {
			t.Fatalf("pixel at byte %d should be dark: %v", i, buf[i:i+4])
		}
	}
}

func TestDimScalesColour(t *testing.T) {
	buf := []byte{255, 100, 0, 255}
	Dim(buf, 0x80)
	if buf[0] != 128 || buf[1] != 50 || buf[2] != 0 || buf[3] != 255 {
		t.Fatalf("unexpected dimmed pixel %v", buf)
	}
}
