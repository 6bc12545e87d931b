//go:build ebiten

package app

import (
	"image/color"
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"biolife/internal/render"
	"biolife/internal/telemetry"
)

// Game adapts a Controller to the ebiten.Game interface. Rendering runs at
// the display rate while the simulation advances on its own fixed step.
type Game struct {
	ctrl     *Controller
	renderer *render.TriangleRenderer
	ticker   *FixedStep
	stats    *telemetry.Writer

	width  int
	height int

	paused   bool
	tickOnce bool
}

// NewGame constructs the GUI shell around an existing controller. stats may
// be nil to disable telemetry.
func NewGame(ctrl *Controller, stats *telemetry.Writer, width, height, tps int) *Game {
	return &Game{
		ctrl:     ctrl,
		renderer: render.NewTriangleRenderer(),
		ticker:   NewFixedStep(tps),
		stats:    stats,
		width:    width,
		height:   height,
	}
}

// Update handles input events and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.ctrl.Reseed()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.ctrl.Randomize(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		g.ctrl.OnKey()
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		x, y := render.NormalizedPosition(mx, my, g.width, g.height)
		g.ctrl.OnClick(x, y)
	}

	if g.tickOnce || (!g.paused && g.ticker.ShouldStep()) {
		g.tickOnce = false
		stats := g.ctrl.OnTick()
		if err := g.stats.Write(stats); err != nil {
			slog.Warn("telemetry write failed", "error", err)
		}
	}
	return nil
}

// Draw clears the background and renders the last-derived vertex list.
func (g *Game) Draw(screen *ebiten.Image) {
	bg := g.ctrl.Background()
	screen.Fill(color.RGBA{
		R: uint8(bg[0] * 255),
		G: uint8(bg[1] * 255),
		B: uint8(bg[2] * 255),
		A: 255,
	})
	g.renderer.Draw(screen, g.ctrl.Vertices())
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
