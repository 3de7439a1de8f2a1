// Package render rasterizes an editor state to a PNG. It shares the layout
// pass with the interactive surface, so an exported image shows exactly the
// geometry the editor would hit-test.
package render

import (
	"fmt"
	"image/color"
	"math"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"

	"github.com/nodewire/nodewire/core/editor"
	"github.com/nodewire/nodewire/core/geom"
	"github.com/nodewire/nodewire/core/graph"
)

// Style is the snapshot colour scheme and metrics.
type Style struct {
	Background color.Color
	Grid       color.Color
	NodeFill   color.Color
	NodeBorder color.Color
	TitleBar   color.Color
	Title      color.Color
	Label      color.Color
	Selected   color.Color

	// Padding is the margin around the graph's bounding box.
	Padding  float64
	FontSize float64
}

func DefaultStyle() Style {
	return Style{
		Background: color.RGBA{20, 20, 30, 255},
		Grid:       color.RGBA{40, 40, 52, 255},
		NodeFill:   color.RGBA{48, 48, 56, 255},
		NodeBorder: color.RGBA{80, 80, 92, 255},
		TitleBar:   color.RGBA{64, 64, 78, 255},
		Title:      color.RGBA{230, 230, 230, 255},
		Label:      color.RGBA{200, 200, 200, 255},
		Selected:   color.RGBA{255, 200, 0, 255},
		Padding:    24,
		FontSize:   12,
	}
}

var wirePalette = []color.RGBA{
	{0, 200, 255, 255},
	{40, 200, 40, 255},
	{255, 160, 40, 255},
	{200, 80, 255, 255},
	{255, 80, 120, 255},
	{160, 200, 60, 255},
}

func wireColor(t graph.DataType) color.RGBA {
	if t == nil {
		return color.RGBA{200, 200, 200, 255}
	}
	var h uint32
	for _, b := range []byte(t.Name()) {
		h = h*31 + uint32(b)
	}
	return wirePalette[h%uint32(len(wirePalette))]
}

const gridCell = 40

// Bounds is the graph's bounding box over a layout pass, before padding.
func Bounds(layouts []editor.NodeLayout) (geom.Rect, bool) {
	if len(layouts) == 0 {
		return geom.Rect{}, false
	}
	b := layouts[0].Rect
	for _, lay := range layouts[1:] {
		if lay.Rect.Min.X < b.Min.X {
			b.Min.X = lay.Rect.Min.X
		}
		if lay.Rect.Min.Y < b.Min.Y {
			b.Min.Y = lay.Rect.Min.Y
		}
		if lay.Rect.Max.X > b.Max.X {
			b.Max.X = lay.Rect.Max.X
		}
		if lay.Rect.Max.Y > b.Max.Y {
			b.Max.Y = lay.Rect.Max.Y
		}
	}
	return b, true
}

// Snapshot writes the editor's graph as a PNG. The state is read, never
// mutated; geometry comes from a fresh layout pass so headless callers need
// no prior RecordGeometry.
func Snapshot(s *editor.EditorState, path string, style Style) error {
	img, err := draw(s, style)
	if err != nil {
		return err
	}
	return img.SavePNG(path)
}

func draw(s *editor.EditorState, style Style) (*gg.Context, error) {
	layouts := editor.Relayout(s)
	bounds, ok := Bounds(layouts)
	if !ok {
		return nil, fmt.Errorf("render: nothing to export")
	}
	bounds = bounds.Expand(style.Padding)

	dc := gg.NewContext(int(math.Ceil(bounds.W())), int(math.Ceil(bounds.H())))
	dc.SetColor(style.Background)
	dc.Clear()

	ttf, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("render: parse font: %w", err)
	}
	dc.SetFontFace(truetype.NewFace(ttf, &truetype.Options{
		Size:    style.FontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	}))

	// shift editor coordinates into the image
	dc.Translate(-bounds.Min.X, -bounds.Min.Y)

	drawGrid(dc, bounds, style)

	ports := make(map[graph.AnyParameterID]geom.Vec2)
	for _, lay := range layouts {
		for _, row := range lay.Rows {
			ports[row.Param] = row.Port
		}
	}

	// wires sit under the nodes
	for _, link := range s.Graph.Connections() {
		from, okF := ports[link.Output]
		to, okT := ports[link.Input]
		if !okF || !okT {
			continue
		}
		drawWire(dc, from, to, wireColor(s.Graph.Output(link.Output).Type))
	}

	for _, lay := range layouts {
		drawNode(dc, s, lay, ports, style)
	}
	return dc, nil
}

func drawGrid(dc *gg.Context, bounds geom.Rect, style Style) {
	dc.SetColor(style.Grid)
	dc.SetLineWidth(1)
	for x := math.Floor(bounds.Min.X/gridCell) * gridCell; x <= bounds.Max.X; x += gridCell {
		dc.DrawLine(x, bounds.Min.Y, x, bounds.Max.Y)
		dc.Stroke()
	}
	for y := math.Floor(bounds.Min.Y/gridCell) * gridCell; y <= bounds.Max.Y; y += gridCell {
		dc.DrawLine(bounds.Min.X, y, bounds.Max.X, y)
		dc.Stroke()
	}
}

func drawWire(dc *gg.Context, from, to geom.Vec2, col color.Color) {
	reach := math.Abs(to.X-from.X) * 0.5
	if reach < 30 {
		reach = 30
	} else if reach > 120 {
		reach = 120
	}
	dc.SetColor(col)
	dc.SetLineWidth(2)
	dc.MoveTo(from.X, from.Y)
	dc.CubicTo(from.X+reach, from.Y, to.X-reach, to.Y, to.X, to.Y)
	dc.Stroke()
}

func drawNode(dc *gg.Context, s *editor.EditorState, lay editor.NodeLayout, ports map[graph.AnyParameterID]geom.Vec2, style Style) {
	node := s.Graph.Node(lay.Node)

	dc.SetColor(style.NodeFill)
	dc.DrawRectangle(lay.Rect.Min.X, lay.Rect.Min.Y, lay.Rect.W(), lay.Rect.H())
	dc.Fill()
	dc.SetColor(style.TitleBar)
	dc.DrawRectangle(lay.Title.Min.X, lay.Title.Min.Y, lay.Title.W(), lay.Title.H())
	dc.Fill()

	border := style.NodeBorder
	if s.Selected(lay.Node) {
		border = style.Selected
	}
	dc.SetColor(border)
	dc.SetLineWidth(1)
	dc.DrawRectangle(lay.Rect.Min.X, lay.Rect.Min.Y, lay.Rect.W(), lay.Rect.H())
	dc.Stroke()

	dc.SetColor(style.Title)
	dc.DrawStringAnchored(node.Label, lay.Title.Min.X+8, lay.Title.Center().Y, 0, 0.35)

	dc.SetColor(style.Label)
	for _, row := range lay.Rows {
		if row.Port.X <= lay.Rect.Min.X {
			dc.DrawStringAnchored(row.Name, row.Rect.Min.X+12, row.Rect.Center().Y, 0, 0.35)
		} else {
			dc.DrawStringAnchored(row.Name, row.Rect.Max.X-12, row.Rect.Center().Y, 1, 0.35)
		}
	}
	for _, row := range lay.Rows {
		typ, err := s.Graph.AnyParamType(row.Param)
		if err != nil {
			continue
		}
		p := ports[row.Param]
		dc.SetColor(wireColor(typ))
		dc.DrawCircle(p.X, p.Y, 5)
		dc.Fill()
	}
}
