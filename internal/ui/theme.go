package ui

import (
	"image/color"

	"github.com/nodewire/nodewire/core/graph"
)

var (
	colBG       = color.RGBA{20, 20, 30, 255}
	colGridLine = color.RGBA{40, 40, 52, 255}

	colNodeFill   = color.RGBA{48, 48, 56, 255}
	colNodeBorder = color.RGBA{80, 80, 92, 255}
	colTitleBar   = color.RGBA{64, 64, 78, 255}
	colSelected   = color.RGBA{255, 200, 0, 255}

	colCloseBtn = color.RGBA{200, 40, 40, 255}
	colFlipBtn  = color.RGBA{40, 160, 200, 255}

	colWireDrag = color.RGBA{200, 200, 200, 255}
	colBoxSel   = color.RGBA{0, 200, 255, 70}
	colBoxEdge  = color.RGBA{0, 200, 255, 255}

	colMenuFill   = color.RGBA{30, 30, 40, 255}
	colMenuBorder = color.RGBA{90, 90, 110, 255}
	colMenuHover  = color.RGBA{60, 60, 80, 255}

	colWidgetFill   = color.RGBA{40, 40, 40, 255}
	colWidgetBorder = color.RGBA{240, 240, 240, 255}
)

// portPalette colours ports and wires by data type so mismatched ends are
// visibly different while a drag is in flight.
var portPalette = []color.RGBA{
	{0, 200, 255, 255},
	{40, 200, 40, 255},
	{255, 160, 40, 255},
	{200, 80, 255, 255},
	{255, 80, 120, 255},
	{160, 200, 60, 255},
}

// portColor picks a stable palette entry for a data type by hashing its name.
func portColor(t graph.DataType) color.RGBA {
	if t == nil {
		return colWireDrag
	}
	var h uint32
	for _, b := range []byte(t.Name()) {
		h = h*31 + uint32(b)
	}
	return portPalette[h%uint32(len(portPalette))]
}
