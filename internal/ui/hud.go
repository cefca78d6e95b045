//go:build ebiten

package ui

import (
	"image/color"
	"strings"

	"ledframe/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	panelPadding   = 8
	headerBaseline = 13
	lineSpacing    = 15
)

var (
	titleColor = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	groupColor = color.RGBA{R: 150, G: 190, B: 150, A: 255}
	textColor  = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	mutedColor = color.RGBA{R: 160, G: 160, B: 170, A: 255}
)

// HUD renders the status and parameter panel to the right of the panel view.
type HUD struct {
	routine    core.Routine
	width      int
	panel      *ebiten.Image
	lastHeight int
	snapshot   core.ParameterSnapshot
	status     []string
	title      string
}

// NewHUD constructs a HUD for the provided routine and panel width.
func NewHUD(r core.Routine, width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{routine: r, width: width, title: Title(r)}
}

// SetRoutine points the HUD at r, for players that switch routines.
func (h *HUD) SetRoutine(r core.Routine) {
	if h == nil {
		return
	}
	h.routine = r
	h.title = Title(r)
}

// Update refreshes the cached status lines and parameter snapshot.
func (h *HUD) Update() {
	if h == nil {
		return
	}
	h.status = StatusLines(h.routine)
	if provider, ok := h.routine.(core.ParameterProvider); ok {
		h.snapshot = provider.Parameters()
	} else {
		h.snapshot = core.ParameterSnapshot{}
	}
}

// Draw paints the HUD panel at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})

	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	text.Draw(h.panel, h.title, face, panelPadding, y, titleColor)
	for _, line := range h.status {
		y += lineSpacing
		text.Draw(h.panel, line, face, panelPadding, y, textColor)
	}
	for _, g := range h.snapshot.Groups {
		y += lineSpacing + panelPadding/2
		if y > height {
			break
		}
		text.Draw(h.panel, g.Name, face, panelPadding, y, groupColor)
		for _, p := range g.Params {
			y += lineSpacing
			text.Draw(h.panel, p.Label+": "+p.Value, face, panelPadding*2, y, mutedColor)
		}
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

// Title names the routine for the panel header.
func Title(r core.Routine) string {
	if r == nil || r.Name() == "" {
		return "ledframe"
	}
	return strings.ReplaceAll(r.Name(), "_", " ")
}
