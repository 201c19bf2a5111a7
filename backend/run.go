package backend

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/alderui/alder"
)

// Game drives one engine window through the ebiten game loop: input in
// Update, passes in Draw.
type Game struct {
	world   *alder.World
	window  alder.WindowID
	painter *TextPainter

	scale float64
	input inputState
}

// Run installs the signal handler, realizes the window, and blocks in the
// ebiten loop until the window closes.
func Run(world *alder.World, window alder.WindowID, painter *TextPainter) error {
	g := &Game{
		world:   world,
		window:  window,
		painter: painter,
		scale:   1,
	}
	world.OnSignal(g.handleSignal)

	size := world.WindowSize(window)
	ebiten.SetWindowSize(int(size.Width), int(size.Height))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(g)
}

// handleSignal applies window-management requests to the native window.
// Redraw and animate scheduling needs nothing here: ebiten renders every
// frame regardless.
func (g *Game) handleSignal(signal alder.Signal) {
	update, ok := signal.(alder.UpdateWindow)
	if !ok || update.Window != g.window {
		return
	}
	switch u := update.Update.(type) {
	case alder.SetTitle:
		ebiten.SetWindowTitle(u.Title)
	case alder.SetSize:
		ebiten.SetWindowSize(int(u.Size.Width), int(u.Size.Height))
	case alder.SetVisible:
		// ebiten windows cannot hide after creation; nothing to apply
	case alder.SetDecorated:
		ebiten.SetWindowDecorated(u.Decorated)
	case alder.SetCursor:
		ebiten.SetCursorShape(cursorShape(u.Cursor))
	}
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	if scale := ebiten.Monitor().DeviceScaleFactor(); scale != g.scale && scale > 0 {
		g.scale = scale
		g.world.WindowScaleChanged(g.window, scale)
	}
	ww, wh := ebiten.WindowSize()
	g.world.WindowResized(g.window, alder.Sz(float64(ww), float64(wh)))

	g.pollInput()
	g.world.Animate(g.window, time.Now())
	return nil
}

// Draw implements ebiten.Game: the three render passes in order, into a
// canvas over the screen.
func (g *Game) Draw(screen *ebiten.Image) {
	var painter alder.TextPainter
	if g.painter != nil {
		painter = g.painter
	}
	g.world.Layout(g.window, painter)
	g.world.Compose(g.window)
	g.world.Draw(g.window, NewCanvas(screen, g.painter, g.world.WindowScale(g.window)))
}

// Layout implements ebiten.Game: the screen is sized in device pixels.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(float64(outsideWidth) * g.scale), int(float64(outsideHeight) * g.scale)
}
