//go:build ebiten

package ui

import (
	"fmt"
	"image/color"
	"strings"

	"openlife/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	panelPadding   = 8
	headerBaseline = 12
	infoSpacing    = 18
)

// Stats is the session state shown on the HUD.
type Stats interface {
	Generation() int
	Population() int
	Size() core.Size
}

// HUD renders the status panel to the right of the map view.
type HUD struct {
	stats      Stats
	title      string
	width      int
	panel      *ebiten.Image
	lastHeight int
}

// NewHUD constructs a HUD for the provided session and panel width.
func NewHUD(stats Stats, rule string, width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{stats: stats, title: buildTitle(rule), width: width}
}

// Width returns the panel width in pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Draw paints the HUD panel at offsetX with the given height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	h.drawLines()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawLines() {
	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	text.Draw(h.panel, h.title, face, panelPadding, y, color.RGBA{R: 200, G: 200, B: 210, A: 255})
	for _, line := range h.lines() {
		y += infoSpacing
		text.Draw(h.panel, line, face, panelPadding, y, color.RGBA{R: 220, G: 220, B: 230, A: 255})
	}
	y += infoSpacing * 2
	for _, help := range []string{"N/Space  step", "R  reseed", "S  new seed", "Q  quit"} {
		text.Draw(h.panel, help, face, panelPadding, y, color.RGBA{R: 160, G: 160, B: 170, A: 255})
		y += infoSpacing
	}
}

func (h *HUD) lines() []string {
	size := h.stats.Size()
	dims := fmt.Sprintf("%dx%d", size.Columns, size.Rows)
	if size.Depth > 0 {
		dims += fmt.Sprintf("x%d", size.Depth)
	}
	return []string{
		"generation " + fmt.Sprint(h.stats.Generation()),
		"population " + fmt.Sprint(h.stats.Population()),
		"size " + dims,
	}
}

func buildTitle(rule string) string {
	if rule == "" {
		return "openlife"
	}
	return "openlife: " + strings.ToLower(rule)
}
