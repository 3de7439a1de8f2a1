package editor

import (
	"github.com/nodewire/nodewire/core/geom"
	"github.com/nodewire/nodewire/core/graph"
)

// Layout metrics, editor-space pixels. Every render surface shares these so
// the geometry the reducer hit-tests against matches what got drawn.
const (
	NodeWidth         = 180.0
	TitleBarHeight    = 26.0
	PortRowHeight     = 22.0
	BottomPanelHeight = 48.0
	ControlSize       = 16.0

	MenuWidth     = 170.0
	MenuRowHeight = 22.0

	// SnapRadius is the circular hit target around a port, and the distance
	// within which an in-progress connection snaps to a compatible port.
	SnapRadius = 10.0
)

// PortRow is one laid-out port row.
type PortRow struct {
	Param graph.AnyParameterID
	Name  string
	// Rect is the row's body area; Port is the pin's circle center, sitting
	// on the node edge chosen by the orientation.
	Rect geom.Rect
	Port geom.Vec2
}

// NodeLayout is the deterministic geometry of one node: fixed width, a title
// strip, one row per port (inputs above outputs), and an optional bottom
// strip when the payload draws a panel.
type NodeLayout struct {
	Node  graph.NodeID
	Rect  geom.Rect
	Title geom.Rect
	Rows  []PortRow
	// Bottom is the zero rect unless the payload implements BottomPanel.
	Bottom geom.Rect
}

// LayoutNode computes id's geometry from its position, orientation and port
// list. Pan is folded in; zoom is the surface's business.
func LayoutNode(s *EditorState, id graph.NodeID) NodeLayout {
	node := s.Graph.Node(id)
	pos := s.NodePositions[id].Add(s.PanZoom.Pan)

	rows := len(node.Inputs) + len(node.Outputs)
	_, hasBottom := node.Payload.(BottomPanel)
	h := TitleBarHeight + float64(rows)*PortRowHeight
	if hasBottom {
		h += BottomPanelHeight
	}
	rect := geom.RectXYWH(pos.X, pos.Y, NodeWidth, h)

	inX, outX := rect.Min.X, rect.Max.X
	if s.NodeOrientations[id] == RightToLeft {
		inX, outX = outX, inX
	}

	lay := NodeLayout{
		Node:  id,
		Rect:  rect,
		Title: TitleRect(rect),
		Rows:  make([]PortRow, 0, rows),
	}
	y := rect.Min.Y + TitleBarHeight
	for _, p := range node.Inputs {
		lay.Rows = append(lay.Rows, PortRow{
			Param: p.ID,
			Name:  p.Name,
			Rect:  geom.RectXYWH(rect.Min.X, y, NodeWidth, PortRowHeight),
			Port:  geom.V(inX, y+PortRowHeight/2),
		})
		y += PortRowHeight
	}
	for _, p := range node.Outputs {
		lay.Rows = append(lay.Rows, PortRow{
			Param: p.ID,
			Name:  p.Name,
			Rect:  geom.RectXYWH(rect.Min.X, y, NodeWidth, PortRowHeight),
			Port:  geom.V(outX, y+PortRowHeight/2),
		})
		y += PortRowHeight
	}
	if hasBottom {
		lay.Bottom = geom.RectXYWH(rect.Min.X, y, NodeWidth, BottomPanelHeight)
	}
	return lay
}

// Relayout lays out every node in draw order.
func Relayout(s *EditorState) []NodeLayout {
	out := make([]NodeLayout, 0, len(s.NodeOrder))
	for _, id := range s.NodeOrder {
		out = append(out, LayoutNode(s, id))
	}
	return out
}

// RecordGeometry overwrites the state's geometry side-maps from a fresh
// layout pass. The surface calls this every frame after laying out; the
// reducer reads the result on the next tick.
func (s *EditorState) RecordGeometry(layouts []NodeLayout) {
	clear(s.NodeRects)
	clear(s.PortPositions)
	for _, lay := range layouts {
		s.NodeRects[lay.Node] = lay.Rect
		for _, row := range lay.Rows {
			s.PortPositions[row.Param] = row.Port
		}
	}
	if s.Menu == nil {
		s.MenuRect = geom.Rect{}
	}
}

// TitleRect is the title strip at the top of a node rect.
func TitleRect(r geom.Rect) geom.Rect {
	return geom.Rect{Min: r.Min, Max: geom.V(r.Max.X, r.Min.Y+TitleBarHeight)}
}

// CloseRect is the close control's hit box, at the right end of the title.
func CloseRect(r geom.Rect) geom.Rect {
	pad := (TitleBarHeight - ControlSize) / 2
	return geom.RectXYWH(r.Max.X-ControlSize-pad, r.Min.Y+pad, ControlSize, ControlSize)
}

// FlipRect is the orientation toggle's hit box, left of the close control.
func FlipRect(r geom.Rect) geom.Rect {
	pad := (TitleBarHeight - ControlSize) / 2
	return geom.RectXYWH(r.Max.X-2*(ControlSize+pad), r.Min.Y+pad, ControlSize, ControlSize)
}

// TitleDragRect is the part of the title strip that drags the node: the
// strip minus the control cluster.
func TitleDragRect(r geom.Rect) geom.Rect {
	t := TitleRect(r)
	t.Max.X = FlipRect(r).Min.X
	return t
}

// MenuBounds is the creation menu's rectangle for n entries, summoned at
// pos.
func MenuBounds(pos geom.Vec2, n int) geom.Rect {
	return geom.RectXYWH(pos.X, pos.Y, MenuWidth, float64(n)*MenuRowHeight)
}

// MenuRow is row i of an open menu's bounds.
func MenuRow(bounds geom.Rect, i int) geom.Rect {
	return geom.RectXYWH(bounds.Min.X, bounds.Min.Y+float64(i)*MenuRowHeight, MenuWidth, MenuRowHeight)
}
