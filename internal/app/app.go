//go:build ebiten

package app

import (
	"image/color"
	"strings"
	"time"

	"openlife/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	hudWidth    = 180
	padding     = 8
	glyphWidth  = 7
	lineHeight  = 13
	firstLineAt = padding + 11
)

// Game adapts a Session to the ebiten.Game interface. Generations advance
// only on key presses.
type Game struct {
	session *Session
	hud     *ui.HUD
	seed    int64

	text       string
	textWidth  int
	textHeight int
}

// New constructs a Game for the provided session.
func New(session *Session, seed int64) *Game {
	g := &Game{
		session: session,
		hud:     ui.NewHUD(session, session.Rule(), hudWidth),
		seed:    seed,
	}
	g.measure()
	return g
}

// Reset reseeds the session.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.session.Seed(seed)
}

// Update handles input; each step key press evolves one generation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		return g.session.Tick()
	}
	return nil
}

// Draw renders the map drawing and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	text.Draw(screen, g.text, basicfont.Face7x13, padding, firstLineAt, color.White)
	w, h := g.Layout(0, 0)
	g.hud.Draw(screen, w-g.hud.Width(), h)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	h := g.textHeight
	if h < 240 {
		h = 240
	}
	return g.textWidth + g.hud.Width(), h
}

func (g *Game) measure() {
	g.text = g.session.Render()
	lines := strings.Split(g.text, "\n")
	widest := 0
	for _, l := range lines {
		if len(l) > widest {
			widest = len(l)
		}
	}
	g.textWidth = widest*glyphWidth + 2*padding
	g.textHeight = len(lines)*lineHeight + 2*padding
}
