package ui

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/nodewire/nodewire/core/geom"
)

// Camera owns the view scale and converts between screen pixels and the
// editor-space coordinates the interaction pass hit-tests in. Panning is not
// the camera's business: the pass applies middle-drag pan to the editor state
// itself, and node layout folds that pan in before geometry is recorded.
type Camera struct {
	Scale float64
}

func NewCamera() *Camera { return &Camera{Scale: 1.0} }

// EditorPos converts a screen point to editor space.
func (c *Camera) EditorPos(sx, sy float64) geom.Vec2 {
	return geom.V(sx/c.Scale, sy/c.Scale)
}

// ScreenPos converts an editor-space point to screen pixels.
func (c *Camera) ScreenPos(p geom.Vec2) (sx, sy float64) {
	return p.X * c.Scale, p.Y * c.Scale
}

// GeoM returns the affine transform applied to all editor-space drawings.
func (c *Camera) GeoM() ebiten.GeoM {
	var m ebiten.GeoM
	m.Scale(c.Scale, c.Scale)
	return m
}

// HandleWheel mutates Scale by reading Ebiten's wheel state and returns the
// pan correction, in editor units, that keeps the point under the cursor
// fixed. The caller adds it to the editor pan.
func (c *Camera) HandleWheel() geom.Vec2 {
	_, wheelY := wheel()
	if wheelY == 0 {
		return geom.Vec2{}
	}
	const (
		zoomFactor      = 1.05
		zoomSensitivity = 0.1
	)
	newScale := c.Scale * math.Pow(zoomFactor, wheelY*zoomSensitivity)
	const minScale, maxScale = 0.25, 4.0
	if newScale < minScale {
		newScale = minScale
	} else if newScale > maxScale {
		newScale = maxScale
	}
	if newScale == c.Scale {
		return geom.Vec2{}
	}
	mx, my := cursorPosition()
	dx := float64(mx)/newScale - float64(mx)/c.Scale
	dy := float64(my)/newScale - float64(my)/c.Scale
	c.Scale = newScale
	return geom.V(dx, dy)
}
