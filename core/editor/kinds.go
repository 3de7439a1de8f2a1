package editor

import (
	"github.com/nodewire/nodewire/core/graph"
)

// NodeKind is one instantiable node template. The userState value threaded
// through every method is the caller's own mutable context; the editor never
// looks inside it.
type NodeKind interface {
	// Label is the node's title once instantiated.
	Label(userState any) string
	// MenuLabel is the entry shown in the creation menu.
	MenuLabel(userState any) string
	// Category groups menu entries.
	Category() string
	// Payload builds the user payload stored on a new node.
	Payload(userState any) any
	// BuildNode appends the kind's ports to a freshly created node.
	BuildNode(g *graph.Graph, userState any, id graph.NodeID)
}

// KindCatalog enumerates the instantiable kinds for the creation menu.
type KindCatalog interface {
	AllKinds() []NodeKind
}

// Kinds adapts a plain slice into a KindCatalog.
type Kinds []NodeKind

func (k Kinds) AllKinds() []NodeKind { return k }

/* ─────────────────────────── payload capabilities ─────────────────────────── */

// A node's payload may implement any of the hook interfaces below; the
// per-node pass probes for each one and calls it at its documented place in
// the node body (title bar, per-port separators, output rows, bottom panel).
// Every hook may return opaque values, which come back out of Frame wrapped
// in UserEvent, in collection order.

// TitleDecorator draws extra widgets in the title bar.
type TitleDecorator interface {
	DecorateTitle(h WidgetHost, id graph.NodeID, g *graph.Graph, userState any) []any
}

// SeparatorDecorator draws between port rows. It runs before each port's
// row, top to bottom.
type SeparatorDecorator interface {
	DecorateSeparator(h WidgetHost, id graph.NodeID, param graph.AnyParameterID) []any
}

// OutputRow replaces the default label row of an output port.
type OutputRow interface {
	OutputRow(h WidgetHost, id graph.NodeID, out graph.OutputID, name string, g *graph.Graph, userState any) []any
}

// BottomPanel draws a free-form strip under the port rows. Nodes whose
// payload implements it are laid out taller.
type BottomPanel interface {
	BottomPanel(h WidgetHost, id graph.NodeID, g *graph.Graph, userState any) []any
}

// DeleteVetoer lets a payload refuse deletion; vetoed nodes render no close
// control and never emit DeleteNodeUI.
type DeleteVetoer interface {
	CanDelete(id graph.NodeID, g *graph.Graph, userState any) bool
}

// ValueWidget is implemented by constant values that can edit themselves
// inline while their input is unconnected. The value is moved out of the
// port for the duration of the call and the returned value is written back,
// so the widget never aliases the graph that still owns its slot.
type ValueWidget interface {
	EditValue(h WidgetHost, name string, id graph.NodeID, userState any) (any, []any)
}

/* ──────────────────────────────── widget host ─────────────────────────────── */

// WidgetHost is the immediate-mode drawing handle the render surface lends
// to payload hooks for the duration of one frame. Interaction results
// (clicked, changed) refer to the current tick's input.
type WidgetHost interface {
	// Label draws static text in the current row.
	Label(text string)
	// Button draws a clickable control and reports a click this tick.
	Button(label string) bool
	// DragValue edits a number in place and reports a change this tick.
	DragValue(label string, v *float64) bool
	// TextInput edits a string in place and reports a change this tick.
	TextInput(label string, v *string) bool
}

// NodeScoped is implemented by hosts that place widgets relative to the node
// being rendered; the per-node pass brackets each node's hook calls with it.
type NodeScoped interface {
	BeginNode(id graph.NodeID)
	EndNode()
}

// NopHost discards all widget drawing and reports no interaction. It stands
// in for a real surface in headless runs.
type NopHost struct{}

func (NopHost) Label(string)                    {}
func (NopHost) Button(string) bool              { return false }
func (NopHost) DragValue(string, *float64) bool { return false }
func (NopHost) TextInput(string, *string) bool  { return false }
