package ui

import (
	"fmt"

	"github.com/nodewire/nodewire/core/editor"
	"github.com/nodewire/nodewire/core/geom"
	"github.com/nodewire/nodewire/core/graph"
)

const (
	widgetRowH = 16.0
	widgetPad  = 4.0

	// dragValueStep is how much one editor unit of horizontal travel changes
	// a dragged number.
	dragValueStep = 0.1
)

type widgetKind int

const (
	widgetButton widgetKind = iota
	widgetValue
	widgetText
)

// widgetCmd is one hook widget recorded during the interaction pass and
// replayed by the next Draw.
type widgetCmd struct {
	kind widgetKind
	rect geom.Rect
	text string
	hot  bool
}

// paintHost is the WidgetHost the view lends to payload hooks. Hook widgets
// stack top-down in the right half of their node's body, placed against the
// geometry recorded last frame, the same one-frame-stale geometry every other
// hit-test uses. Interactions resolve against the current tick's input.
//
// Port-name labels are already part of the node body painter, so Label is
// swallowed here rather than drawn twice.
type paintHost struct {
	state *editor.EditorState

	// per-tick input, set by begin
	pointer     geom.Vec2
	origin      geom.Vec2
	clicked     bool
	downPrimary bool
	dragActive  bool
	delta       geom.Vec2

	// per-node cursor, set by the interaction pass
	cur    graph.NodeID
	hasCur bool
	slot   int

	cmds []widgetCmd
}

func (h *paintHost) begin(in editor.FrameInput) {
	h.pointer = in.Pointer
	h.origin = in.PressOrigin
	h.clicked = in.Released.Has(editor.ButtonPrimary) && !in.DragActive
	h.downPrimary = in.Down.Has(editor.ButtonPrimary)
	h.dragActive = in.DragActive
	h.delta = in.PointerDelta
	h.cmds = h.cmds[:0]
}

func (h *paintHost) BeginNode(id graph.NodeID) { h.cur, h.hasCur, h.slot = id, true, 0 }
func (h *paintHost) EndNode()                  { h.hasCur = false }

// nextRect allocates the next widget slot inside the current node. Nodes with
// no recorded rect yet (created this frame) get no slots until next tick.
func (h *paintHost) nextRect() (geom.Rect, bool) {
	if !h.hasCur {
		return geom.Rect{}, false
	}
	base, ok := h.state.NodeRects[h.cur]
	if !ok {
		return geom.Rect{}, false
	}
	w := base.W()/2 - 2*widgetPad
	x := base.Min.X + base.W()/2 + widgetPad
	y := base.Min.Y + editor.TitleBarHeight + widgetPad + float64(h.slot)*(widgetRowH+widgetPad)
	h.slot++
	return geom.RectXYWH(x, y, w, widgetRowH), true
}

func (h *paintHost) Label(string) {}

func (h *paintHost) Button(label string) bool {
	r, ok := h.nextRect()
	if !ok {
		return false
	}
	hot := r.Contains(h.pointer)
	h.cmds = append(h.cmds, widgetCmd{kind: widgetButton, rect: r, text: label, hot: hot})
	return h.clicked && hot && r.Contains(h.origin)
}

func (h *paintHost) DragValue(label string, v *float64) bool {
	r, ok := h.nextRect()
	if !ok {
		return false
	}
	changed := false
	if h.downPrimary && h.dragActive && r.Contains(h.origin) && h.delta.X != 0 {
		*v += h.delta.X * dragValueStep
		changed = true
	}
	h.cmds = append(h.cmds, widgetCmd{
		kind: widgetValue,
		rect: r,
		text: fmt.Sprintf("%s %.2f", label, *v),
		hot:  r.Contains(h.pointer),
	})
	return changed
}

// TextInput renders the current value; the surface has no keyboard focus
// routing, so the string is display-only here.
func (h *paintHost) TextInput(label string, v *string) bool {
	r, ok := h.nextRect()
	if !ok {
		return false
	}
	h.cmds = append(h.cmds, widgetCmd{kind: widgetText, rect: r, text: label + " " + *v})
	return false
}
