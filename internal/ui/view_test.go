package ui

import (
	"io"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/nodewire/nodewire/core/editor"
	"github.com/nodewire/nodewire/core/geom"
	"github.com/nodewire/nodewire/core/graph"
	app_log "github.com/nodewire/nodewire/internal/log"
)

var testLogger = app_log.New(io.Discard, app_log.LevelError)

type dtype string

func (d dtype) Name() string { return string(d) }

const scalarT dtype = "scalar"

// testKind is a two-port template: one inline scalar input, one scalar
// output.
type testKind struct {
	name    string
	payload any
	value   any
}

func (k testKind) Label(any) string     { return k.name }
func (k testKind) MenuLabel(any) string { return k.name }
func (k testKind) Category() string     { return "test" }
func (k testKind) Payload(any) any      { return k.payload }
func (k testKind) BuildNode(g *graph.Graph, _ any, id graph.NodeID) {
	g.AddInputParam(id, "in", scalarT, k.value, graph.ConnectionOrConstant, true)
	g.AddOutputParam(id, "out", scalarT)
}

// pingPanel emits a value when its bottom-panel button is clicked.
type pingPanel struct{}

func (pingPanel) BottomPanel(h editor.WidgetHost, _ graph.NodeID, _ *graph.Graph, _ any) []any {
	if h.Button("ping") {
		return []any{"ping"}
	}
	return nil
}

// spin is an inline-editable constant.
type spin struct{ v float64 }

func (s spin) EditValue(h editor.WidgetHost, name string, _ graph.NodeID, _ any) (any, []any) {
	h.DragValue(name, &s.v)
	return s, nil
}

/* ───────────────────────── input scripting ───────────────────────── */

type step struct {
	x, y                int
	left, right, middle bool
	esc                 bool
	wheel               float64
}

// drive feeds one scripted tick per step through the view.
func drive(t *testing.T, v *View, steps []step) {
	t.Helper()
	for _, st := range steps {
		st := st
		restore := SetInputForTest(
			func() (int, int) { return st.x, st.y },
			func(b ebiten.MouseButton) bool {
				switch b {
				case ebiten.MouseButtonLeft:
					return st.left
				case ebiten.MouseButtonRight:
					return st.right
				case ebiten.MouseButtonMiddle:
					return st.middle
				}
				return false
			},
			func(k ebiten.Key) bool { return st.esc && k == ebiten.KeyEscape },
			func() (float64, float64) { return 0, st.wheel },
		)
		err := v.Update()
		restore()
		if err != nil {
			t.Fatalf("Update: %v", err)
		}
	}
}

func newView(kinds editor.KindCatalog) (*View, *editor.EditorState) {
	st := editor.NewState()
	v := New(st, kinds, nil, testLogger)
	v.Layout(640, 480)
	return v, st
}

/* ───────────────────────── tests ───────────────────────── */

func TestClickSelectsNode(t *testing.T) {
	kind := testKind{name: "n"}
	v, st := newView(editor.Kinds{kind})
	id := st.AddNodeAt(kind, geom.V(10, 10), nil)

	drive(t, v, []step{
		{x: 60, y: 70},
		{x: 60, y: 70, left: true},
		{x: 60, y: 70},
	})

	if len(st.SelectedNodes) != 1 || st.SelectedNodes[0] != id {
		t.Fatalf("selection = %v, want [%v]", st.SelectedNodes, id)
	}
}

func TestRightClickOpensMenuAndClickCreatesNode(t *testing.T) {
	kind := testKind{name: "n"}
	v, st := newView(editor.Kinds{kind})

	var created []editor.NodeResponse
	v.OnResponses = func(rs []editor.NodeResponse) { created = append(created, rs...) }

	drive(t, v, []step{
		{x: 400, y: 300},
		{x: 400, y: 300, right: true},
		{x: 400, y: 300},
	})
	if st.Menu == nil {
		t.Fatalf("menu did not open")
	}
	if st.MenuRect.W() == 0 {
		t.Fatalf("menu rect not recorded")
	}

	drive(t, v, []step{
		{x: 405, y: 305, left: true},
		{x: 405, y: 305},
	})
	if st.Menu != nil {
		t.Fatalf("menu still open after row click")
	}
	if st.Graph.NodeCount() != 1 {
		t.Fatalf("node count = %d, want 1", st.Graph.NodeCount())
	}
	found := false
	for _, r := range created {
		if _, ok := r.(editor.CreatedNode); ok {
			found = true
		}
	}
	if !found {
		t.Fatalf("no CreatedNode among %v", created)
	}
}

func TestEscapeClosesCreationMenu(t *testing.T) {
	v, st := newView(editor.Kinds{testKind{name: "n"}})

	drive(t, v, []step{
		{x: 400, y: 300},
		{x: 400, y: 300, right: true},
		{x: 400, y: 300},
		{x: 400, y: 300, esc: true},
	})
	if st.Menu != nil {
		t.Fatalf("menu survived escape")
	}
}

func TestDragWireConnects(t *testing.T) {
	kind := testKind{name: "n"}
	v, st := newView(editor.Kinds{kind})
	a := st.AddNodeAt(kind, geom.V(0, 0), nil)
	b := st.AddNodeAt(kind, geom.V(300, 0), nil)
	aOut := st.Graph.Node(a).Outputs[0].ID
	bIn := st.Graph.Node(b).Inputs[0].ID

	// output pin of a sits at (180,59); input pin of b at (300,37)
	drive(t, v, []step{
		{x: 100, y: 200},
		{x: 180, y: 59, left: true},
		{x: 240, y: 48, left: true},
		{x: 299, y: 38, left: true},
		{x: 299, y: 38},
	})

	got, ok := st.Graph.Connection(bIn)
	if !ok || got != aOut {
		t.Fatalf("connection = (%v,%t), want (%v,true)", got, ok, aOut)
	}
	if st.ConnectionInProgress != nil {
		t.Fatalf("drag still armed after release")
	}
}

func TestMiddleDragPans(t *testing.T) {
	v, st := newView(editor.Kinds{testKind{name: "n"}})

	drive(t, v, []step{
		{x: 100, y: 100},
		{x: 100, y: 100, middle: true},
		{x: 130, y: 120, middle: true},
	})
	if st.PanZoom.Pan != geom.V(30, 20) {
		t.Fatalf("pan = %v, want (30,20)", st.PanZoom.Pan)
	}
}

func TestWheelZoomKeepsCursorAnchored(t *testing.T) {
	v, st := newView(editor.Kinds{testKind{name: "n"}})

	drive(t, v, []step{
		{x: 200, y: 150},
		{x: 200, y: 150, wheel: 5},
	})
	if v.cam.Scale <= 1.0 {
		t.Fatalf("scale = %v, want > 1", v.cam.Scale)
	}
	if st.PanZoom.Zoom != v.cam.Scale {
		t.Fatalf("state zoom %v != camera scale %v", st.PanZoom.Zoom, v.cam.Scale)
	}
	// zooming in around a point right and below the origin pulls the pan
	// negative so that point stays put
	if st.PanZoom.Pan.X >= 0 || st.PanZoom.Pan.Y >= 0 {
		t.Fatalf("pan = %v, want negative correction", st.PanZoom.Pan)
	}
}

func TestBackgroundDragBoxSelects(t *testing.T) {
	kind := testKind{name: "n"}
	v, st := newView(editor.Kinds{kind})
	id := st.AddNodeAt(kind, geom.V(50, 50), nil)

	drive(t, v, []step{
		{x: 10, y: 10},
		{x: 10, y: 10, left: true},
		{x: 260, y: 140, left: true},
		{x: 261, y: 141, left: true},
		{x: 261, y: 141},
	})

	if len(st.SelectedNodes) != 1 || st.SelectedNodes[0] != id {
		t.Fatalf("selection = %v, want [%v]", st.SelectedNodes, id)
	}
	if st.BoxSelection != nil {
		t.Fatalf("rubber band still active after release")
	}
}

func TestBottomPanelButtonEmitsUserEvent(t *testing.T) {
	kind := testKind{name: "n", payload: pingPanel{}}
	v, st := newView(editor.Kinds{kind})
	st.AddNodeAt(kind, geom.V(0, 0), nil)

	var got []editor.NodeResponse
	v.OnResponses = func(rs []editor.NodeResponse) { got = append(got, rs...) }

	// widget slot 0 occupies (94,30)-(176,46)
	drive(t, v, []step{
		{x: 5, y: 200},
		{x: 100, y: 35, left: true},
		{x: 100, y: 35},
	})

	var pinged bool
	for _, r := range got {
		if u, ok := r.(editor.UserEvent); ok && u.Value == "ping" {
			pinged = true
		}
	}
	if !pinged {
		t.Fatalf("no ping among %v", got)
	}
	// the widget click shadows plain selection
	if len(st.SelectedNodes) != 0 {
		t.Fatalf("selection = %v, want empty", st.SelectedNodes)
	}
}

func TestDragValueEditsInlineConstant(t *testing.T) {
	kind := testKind{name: "n", value: spin{}}
	v, st := newView(editor.Kinds{kind})
	id := st.AddNodeAt(kind, geom.V(0, 0), nil)
	in := st.Graph.Node(id).Inputs[0].ID

	drive(t, v, []step{
		{x: 5, y: 200},
		{x: 100, y: 35, left: true},
		{x: 110, y: 35, left: true},
		{x: 110, y: 35},
	})

	val, ok := st.Graph.Input(in).Value.(spin)
	if !ok {
		t.Fatalf("value type = %T, want spin", st.Graph.Input(in).Value)
	}
	if val.v != 1.0 {
		t.Fatalf("value = %v, want 1.0 after a 10px drag", val.v)
	}
	// a body drag is not a title drag; the node must not have moved
	if st.NodePositions[id] != geom.V(0, 0) {
		t.Fatalf("node moved to %v during widget drag", st.NodePositions[id])
	}
}

func TestTitleDragMovesNode(t *testing.T) {
	kind := testKind{name: "n"}
	v, st := newView(editor.Kinds{kind})
	id := st.AddNodeAt(kind, geom.V(0, 0), nil)

	drive(t, v, []step{
		{x: 60, y: 13},
		{x: 60, y: 13, left: true},
		{x: 90, y: 33, left: true},
		{x: 90, y: 33},
	})

	if st.NodePositions[id] != geom.V(30, 20) {
		t.Fatalf("position = %v, want (30,20)", st.NodePositions[id])
	}
}
