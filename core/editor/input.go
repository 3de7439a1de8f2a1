package editor

import (
	"github.com/nodewire/nodewire/core/geom"
)

// PointerButtons is a bitmask of pointer buttons.
type PointerButtons uint8

const (
	ButtonPrimary PointerButtons = 1 << iota
	ButtonSecondary
	ButtonMiddle
)

// Has reports whether every button in b is set.
func (p PointerButtons) Has(b PointerButtons) bool { return p&b == b }

// Any reports whether any button is set.
func (p PointerButtons) Any() bool { return p != 0 }

// FrameInput is everything the render surface tells the reducer about one
// tick. All positions are in editor space: the coordinate system the geometry
// side-maps (NodeRects, PortPositions, MenuRect) were recorded in. A surface
// that scales or scrolls its viewport unprojects the pointer before filling
// this in.
//
// The surface owns gesture tracking: it remembers where the primary press
// began and whether the gesture has travelled far enough to count as a drag,
// the same way it debounces its own buttons. The reducer itself keeps no
// per-gesture state beyond ConnectionInProgress and BoxSelection.
type FrameInput struct {
	// Pointer is the current pointer position; PointerDelta is its movement
	// since the previous tick.
	Pointer      geom.Vec2
	PointerDelta geom.Vec2

	// Down holds the buttons currently held; Pressed and Released hold the
	// edges that happened this tick.
	Down     PointerButtons
	Pressed  PointerButtons
	Released PointerButtons

	// PressOrigin is where the current primary gesture began. DragActive
	// reports that the gesture (including one ending this tick) travelled
	// beyond the click slop; DragStarted is true only on the tick it first
	// did so.
	PressOrigin geom.Vec2
	DragActive  bool
	DragStarted bool

	// Escape reports the escape key going down this tick.
	Escape bool

	// InEditor reports the pointer being over the editing surface.
	InEditor bool

	// MenuChoice is non-nil exactly when the surface confirmed a kind in the
	// open creation menu this tick.
	MenuChoice NodeKind
}
