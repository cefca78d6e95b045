//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"ledframe/internal/core"
	"ledframe/internal/matrix"
)

// GridPainter uploads LED frames into an ebiten image and draws it scaled.
type GridPainter struct {
	mapper     matrix.Mapper
	img        *ebiten.Image
	buf        []byte
	Brightness uint8
}

// NewGridPainter allocates an image matching the mapper's logical grid.
func NewGridPainter(m matrix.Mapper) *GridPainter {
	return &GridPainter{
		mapper:     m,
		img:        ebiten.NewImage(m.Width(), m.Height()),
		buf:        make([]byte, m.Len()*4),
		Brightness: 0xff,
	}
}

// Blit draws frame onto screen with each LED covering scale x scale pixels.
func (p *GridPainter) Blit(screen *ebiten.Image, frame []core.RGB, scale int) {
	if scale <= 0 {
		scale = 1
	}
	FillRGBA(p.buf, frame, p.mapper)
	Dim(p.buf, p.Brightness)
	p.img.WritePixels(p.buf)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	screen.DrawImage(p.img, op)
}
