package ui

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/nodewire/nodewire/core/editor"
	"github.com/nodewire/nodewire/core/geom"
)

// dragSlop is how far, in editor units, the pointer must travel from the
// press origin before the gesture counts as a drag instead of a click.
const dragSlop = 4.0

// gesture turns Ebiten's polled mouse and key state into the per-tick edges
// and press tracking the interaction pass expects. One read per Update.
type gesture struct {
	prevDown    editor.PointerButtons
	prevPointer geom.Vec2
	havePointer bool
	prevEscape  bool

	origin    geom.Vec2
	hasOrigin bool
	dragging  bool
}

func (gs *gesture) read(cam *Camera, winW, winH int) editor.FrameInput {
	mx, my := cursorPosition()
	pointer := cam.EditorPos(float64(mx), float64(my))

	var down editor.PointerButtons
	if isMouseButtonPressed(ebiten.MouseButtonLeft) {
		down |= editor.ButtonPrimary
	}
	if isMouseButtonPressed(ebiten.MouseButtonRight) {
		down |= editor.ButtonSecondary
	}
	if isMouseButtonPressed(ebiten.MouseButtonMiddle) {
		down |= editor.ButtonMiddle
	}
	esc := isKeyPressed(ebiten.KeyEscape)

	in := editor.FrameInput{
		Pointer:  pointer,
		Down:     down,
		Pressed:  down &^ gs.prevDown,
		Released: gs.prevDown &^ down,
		Escape:   esc && !gs.prevEscape,
		InEditor: mx >= 0 && my >= 0 && mx < winW && my < winH,
	}
	if gs.havePointer {
		in.PointerDelta = pointer.Sub(gs.prevPointer)
	}

	if in.Pressed.Has(editor.ButtonPrimary) {
		gs.origin = pointer
		gs.hasOrigin = true
		gs.dragging = false
	}
	if gs.hasOrigin {
		in.PressOrigin = gs.origin
		if down.Has(editor.ButtonPrimary) && !gs.dragging && pointer.Dist(gs.origin) > dragSlop {
			gs.dragging = true
			in.DragStarted = true
		}
		in.DragActive = gs.dragging
	}
	// The release tick still reports the gesture it ends; reset afterwards.
	if in.Released.Has(editor.ButtonPrimary) {
		gs.hasOrigin = false
		gs.dragging = false
	}

	gs.prevDown = down
	gs.prevPointer = pointer
	gs.havePointer = true
	gs.prevEscape = esc
	return in
}
