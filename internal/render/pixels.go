package render

import (
	"ledframe/internal/core"
	"ledframe/internal/matrix"
)

// FillRGBA converts a physically ordered LED frame into row-major RGBA pixels
// in buf, undoing the panel wiring. buf must hold m.Len()*4 bytes.
func FillRGBA(buf []byte, frame []core.RGB, m matrix.Mapper) {
	w := m.Width()
	for i, c := range frame {
		x, y, ok := m.FromPhysical(i)
		if !ok {
			continue
		}
		base := (y*w + x) * 4
		buf[base+0] = c.R
		buf[base+1] = c.G
		buf[base+2] = c.B
		buf[base+3] = 0xff
	}
}

// Dim scales every pixel in buf by level/255, leaving alpha alone. It mimics
// the brightness setting of a physical panel.
func Dim(buf []byte, level uint8) {
	if level == 0xff {
		return
	}
	for i := 0; i+3 < len(buf); i += 4 {
		buf[i+0] = uint8(uint16(buf[i+0]) * uint16(level) / 0xff)
		buf[i+1] = uint8(uint16(buf[i+1]) * uint16(level) / 0xff)
		buf[i+2] = uint8(uint16(buf[i+2]) * uint16(level) / 0xff)
	}
}
