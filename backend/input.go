package backend

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/alderui/alder"
)

// the single mouse contact ebiten exposes
const mousePointer alder.PointerID = 1

// inputState carries the between-tick input memory the translation needs.
type inputState struct {
	mouseEntered  bool
	mousePosition alder.Point
	touchIDs      []ebiten.TouchID
	touchPos      map[ebiten.TouchID]alder.Point
}

var mouseButtons = []struct {
	ebiten ebiten.MouseButton
	alder  alder.PointerButton
}{
	{ebiten.MouseButtonLeft, alder.ButtonPrimary},
	{ebiten.MouseButtonRight, alder.ButtonSecondary},
	{ebiten.MouseButtonMiddle, alder.ButtonMiddle},
}

// pollInput translates this tick's ebiten input into engine entry points.
func (g *Game) pollInput() {
	world, window := g.world, g.window
	scale := world.WindowScale(window)

	world.SetModifiers(window, alder.Modifiers{
		Shift: ebiten.IsKeyPressed(ebiten.KeyShift),
		Ctrl:  ebiten.IsKeyPressed(ebiten.KeyControl),
		Alt:   ebiten.IsKeyPressed(ebiten.KeyAlt),
		Meta:  ebiten.IsKeyPressed(ebiten.KeyMeta),
	})

	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		world.MoveFocus(window, !ebiten.IsKeyPressed(ebiten.KeyShift))
	}

	// mouse
	cx, cy := ebiten.CursorPosition()
	pos := alder.Pt(float64(cx)/scale, float64(cy)/scale)
	if !g.input.mouseEntered {
		g.input.mouseEntered = true
		g.input.mousePosition = pos
		world.PointerEntered(window, mousePointer, pos)
	} else if pos != g.input.mousePosition {
		g.input.mousePosition = pos
		world.PointerMoved(window, mousePointer, pos)
	}
	for _, b := range mouseButtons {
		if inpututil.IsMouseButtonJustPressed(b.ebiten) {
			world.PointerButton(window, mousePointer, b.alder, true)
		}
		if inpututil.IsMouseButtonJustReleased(b.ebiten) {
			world.PointerButton(window, mousePointer, b.alder, false)
		}
	}
	if wx, wy := ebiten.Wheel(); wx != 0 || wy != 0 {
		world.PointerScrolled(window, mousePointer, alder.Off(wx, wy))
	}

	// touch
	if g.input.touchPos == nil {
		g.input.touchPos = make(map[ebiten.TouchID]alder.Point)
	}
	g.input.touchIDs = inpututil.AppendJustPressedTouchIDs(g.input.touchIDs[:0])
	for _, id := range g.input.touchIDs {
		tx, ty := ebiten.TouchPosition(id)
		p := alder.Pt(float64(tx)/scale, float64(ty)/scale)
		g.input.touchPos[id] = p
		world.TouchDown(window, alder.TouchID(id), p)
	}
	g.input.touchIDs = ebiten.AppendTouchIDs(g.input.touchIDs[:0])
	for _, id := range g.input.touchIDs {
		tx, ty := ebiten.TouchPosition(id)
		p := alder.Pt(float64(tx)/scale, float64(ty)/scale)
		if prev, ok := g.input.touchPos[id]; ok && prev == p {
			continue
		}
		g.input.touchPos[id] = p
		world.TouchMoved(window, alder.TouchID(id), p)
	}
	g.input.touchIDs = inpututil.AppendJustReleasedTouchIDs(g.input.touchIDs[:0])
	for _, id := range g.input.touchIDs {
		p := g.input.touchPos[id]
		delete(g.input.touchPos, id)
		world.TouchUp(window, alder.TouchID(id), p)
	}
}

func cursorShape(cursor alder.CursorIcon) ebiten.CursorShapeType {
	switch cursor {
	case alder.CursorPointer:
		return ebiten.CursorShapePointer
	case alder.CursorText:
		return ebiten.CursorShapeText
	case alder.CursorMove:
		return ebiten.CursorShapeMove
	case alder.CursorNotAllowed:
		return ebiten.CursorShapeNotAllowed
	default:
		return ebiten.CursorShapeDefault
	}
}
