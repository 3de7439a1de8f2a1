package ui

import (
	"fmt"
	"image/color"
	"math"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/nodewire/nodewire/core/geom"
)

const (
	// Ebiten's debug font uses a 6x13 glyph.
	debugCharW = 6
	debugCharH = 13
)

// drawRect draws a rectangle given in editor coordinates through the camera
// transform. It is defined as a variable so tests can override it to capture
// draw calls.
var drawRect = func(dst *ebiten.Image, r geom.Rect, cam *ebiten.GeoM, c color.Color, filled bool) {
	x, y := cam.Apply(r.Min.X, r.Min.Y)
	x2, y2 := cam.Apply(r.Max.X, r.Max.Y)
	if filled {
		vector.DrawFilledRect(dst, float32(x), float32(y), float32(x2-x), float32(y2-y), c, false)
	} else {
		vector.StrokeRect(dst, float32(x), float32(y), float32(x2-x), float32(y2-y), 1, c, false)
	}
}

// drawCircle draws a filled circle centred on an editor-space point. The
// radius scales with the camera. Overridable in tests like drawRect.
var drawCircle = func(dst *ebiten.Image, p geom.Vec2, r float64, cam *ebiten.GeoM, scale float64, c color.Color) {
	x, y := cam.Apply(p.X, p.Y)
	vector.DrawFilledCircle(dst, float32(x), float32(y), float32(r*scale), c, true)
}

/* ------------------------------------------------------------------
   cache 1×1 images per colour
   ------------------------------------------------------------------ */

var pixelCache = map[string]*ebiten.Image{}

func pixelKey(c color.Color) string {
	r, g, b, a := c.RGBA()
	return fmt.Sprintf("%d_%d_%d_%d", r, g, b, a)
}

func pixel(c color.Color) *ebiten.Image {
	k := pixelKey(c)
	if img, ok := pixelCache[k]; ok {
		return img
	}
	img := ebiten.NewImage(1, 1)
	img.Fill(c)
	pixelCache[k] = img
	return img
}

/* ------------------------------------------------------------------
   drawLineCam – editor coords → line with camera transform
   ------------------------------------------------------------------ */
var lineOpt ebiten.DrawImageOptions

func drawLineCam(dst *ebiten.Image,
	x1, y1, x2, y2 float64,
	cam *ebiten.GeoM,
	col color.Color, thick float64) {

	if thick <= 0 {
		thick = 1
	}
	dx, dy := x2-x1, y2-y1
	length := math.Hypot(dx, dy)
	angle := math.Atan2(dy, dx)

	// reset GeoM in place (no new allocation)
	lineOpt.GeoM.Reset()
	lineOpt.GeoM.Scale(length, thick)
	lineOpt.GeoM.Rotate(angle)
	lineOpt.GeoM.Translate(x1, y1)
	lineOpt.GeoM.Concat(*cam)

	dst.DrawImage(pixel(col), &lineOpt)
}

// drawWire strokes a cubic bezier between two ports. fromSign and toSign are
// +1 for a port on a node's right edge and -1 for the left edge, so the wire
// leaves each port pointing away from its node whatever the orientation.
func drawWire(dst *ebiten.Image, from geom.Vec2, fromSign float64, to geom.Vec2, toSign float64, cam *ebiten.GeoM, col color.Color, thick float64) {
	reach := math.Abs(to.X-from.X) * 0.5
	if reach < 30 {
		reach = 30
	} else if reach > 120 {
		reach = 120
	}
	c1 := geom.V(from.X+fromSign*reach, from.Y)
	c2 := geom.V(to.X+toSign*reach, to.Y)

	const segments = 24
	px, py := from.X, from.Y
	for i := 1; i <= segments; i++ {
		t := float64(i) / segments
		u := 1 - t
		x := u*u*u*from.X + 3*u*u*t*c1.X + 3*u*t*t*c2.X + t*t*t*to.X
		y := u*u*u*from.Y + 3*u*u*t*c1.Y + 3*u*t*t*c2.Y + t*t*t*to.Y
		drawLineCam(dst, px, py, x, y, cam, col, thick)
		px, py = x, y
	}
}

// drawTextAt prints debug-font text at a screen position.
func drawTextAt(dst *ebiten.Image, txt string, x, y int) {
	ebitenutil.DebugPrintAt(dst, txt, x, y)
}

// drawTextCentered centres debug-font text inside a screen-space box.
func drawTextCentered(dst *ebiten.Image, txt string, x, y, w, h float64) {
	tw := float64(debugCharW * utf8.RuneCountInString(txt))
	ebitenutil.DebugPrintAt(dst, txt, int(x+(w-tw)/2), int(y+(h-debugCharH)/2))
}
