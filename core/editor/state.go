package editor

import (
	"fmt"

	"github.com/nodewire/nodewire/core/geom"
	"github.com/nodewire/nodewire/core/graph"
)

// Orientation is the side ports lay out on.
type Orientation int

const (
	// LeftToRight puts inputs on the left edge and outputs on the right.
	LeftToRight Orientation = iota
	// RightToLeft mirrors the port sides.
	RightToLeft
)

func (o Orientation) String() string {
	if o == RightToLeft {
		return "right-to-left"
	}
	return "left-to-right"
}

// Flip returns the opposite orientation.
func (o Orientation) Flip() Orientation {
	if o == LeftToRight {
		return RightToLeft
	}
	return LeftToRight
}

// PanZoom is the view transform. Pan is in editor-space pixels; Zoom is a
// scale factor applied by the render surface around the viewport origin.
type PanZoom struct {
	Pan  geom.Vec2
	Zoom float64
}

// ConnectionDrag is an in-progress connection: the port the drag began on
// and the node that owns it.
type ConnectionDrag struct {
	Node  graph.NodeID
	Param graph.AnyParameterID
}

// CreationMenu is the open node-creation menu.
type CreationMenu struct {
	// Pos is where the menu was summoned, editor space.
	Pos geom.Vec2
}

// EditorState is everything that persists between frames. The reducer owns
// it exclusively for the duration of one Frame call; nothing else may
// mutate it while that runs.
//
// The geometry side-maps at the bottom are the one-frame-stale exchange with
// the render surface: the surface records them after laying nodes out, the
// reducer hit-tests against them on the next tick. At interactive rates the
// lag is imperceptible.
type EditorState struct {
	Graph *graph.Graph

	// NodePositions holds graph-space positions (pan not applied).
	NodePositions map[graph.NodeID]geom.Vec2

	// NodeOrder is the draw order, back of the slice on top. It must stay
	// exactly a permutation of the live node ids; Frame checks.
	NodeOrder []graph.NodeID

	NodeOrientations map[graph.NodeID]Orientation

	// SelectedNodes is ordered; box selection replaces it wholesale.
	SelectedNodes []graph.NodeID

	// ConnectionInProgress is set while a wire is being dragged.
	ConnectionInProgress *ConnectionDrag

	// BoxSelection is the drag-start corner of an active rubber band.
	BoxSelection *geom.Vec2

	PanZoom PanZoom

	// Menu is non-nil while the creation menu is open.
	Menu *CreationMenu

	// Written by the render surface after layout, read by the reducer next
	// frame. Positions and rects are editor space (pan applied).
	PortPositions map[graph.AnyParameterID]geom.Vec2
	NodeRects     map[graph.NodeID]geom.Rect
	MenuRect      geom.Rect
}

// NewState returns an editor over a fresh empty graph.
func NewState() *EditorState {
	return &EditorState{
		Graph:            graph.New(),
		NodePositions:    make(map[graph.NodeID]geom.Vec2),
		NodeOrientations: make(map[graph.NodeID]Orientation),
		PortPositions:    make(map[graph.AnyParameterID]geom.Vec2),
		NodeRects:        make(map[graph.NodeID]geom.Rect),
		PanZoom:          PanZoom{Zoom: 1},
	}
}

// AddNodeAt instantiates kind at a graph-space position: builds the node,
// records position and default orientation, and appends it to the draw
// order. Menu confirmation goes through this; programmatic callers may use
// it to seed a document.
func (s *EditorState) AddNodeAt(kind NodeKind, pos geom.Vec2, userState any) graph.NodeID {
	id := s.Graph.AddNode(kind.Label(userState), kind.Payload(userState), func(g *graph.Graph, id graph.NodeID) {
		kind.BuildNode(g, userState, id)
	})
	s.NodePositions[id] = pos
	s.NodeOrientations[id] = LeftToRight
	s.NodeOrder = append(s.NodeOrder, id)
	return id
}

// Selected reports whether id is in the selection.
func (s *EditorState) Selected(id graph.NodeID) bool {
	for _, n := range s.SelectedNodes {
		if n == id {
			return true
		}
	}
	return false
}

// checkOrder enforces the draw-order invariant: exactly the live node ids,
// no duplicates, no omissions.
func (s *EditorState) checkOrder() {
	live := s.Graph.Nodes()
	if len(live) != len(s.NodeOrder) {
		panic(fmt.Errorf("%w: draw order has %d entries for %d live nodes",
			ErrPrecondition, len(s.NodeOrder), len(live)))
	}
	seen := make(map[graph.NodeID]bool, len(s.NodeOrder))
	for _, id := range s.NodeOrder {
		if seen[id] {
			panic(fmt.Errorf("%w: duplicate %v in draw order", ErrPrecondition, id))
		}
		seen[id] = true
	}
	for _, id := range live {
		if !seen[id] {
			panic(fmt.Errorf("%w: live %v missing from draw order", ErrPrecondition, id))
		}
	}
}

// raise moves id to the top of the draw order.
func (s *EditorState) raise(id graph.NodeID) {
	for i, n := range s.NodeOrder {
		if n == id {
			s.NodeOrder = append(append(s.NodeOrder[:i], s.NodeOrder[i+1:]...), id)
			return
		}
	}
	panic(fmt.Errorf("%w: raise of %v, not in draw order", ErrPrecondition, id))
}

// moveNode shifts id by delta, dragging the rest of a multi-node selection
// along when id is part of it.
func (s *EditorState) moveNode(id graph.NodeID, delta geom.Vec2) {
	s.NodePositions[id] = s.NodePositions[id].Add(delta)
	if len(s.SelectedNodes) < 2 || !s.Selected(id) {
		return
	}
	for _, other := range s.SelectedNodes {
		if other != id {
			s.NodePositions[other] = s.NodePositions[other].Add(delta)
		}
	}
}

// forgetNode drops every editor-side record of a node that just left the
// graph: position, orientation, order, selection, cached geometry, and a
// connection drag anchored on it.
func (s *EditorState) forgetNode(id graph.NodeID, removed *graph.Node) {
	delete(s.NodePositions, id)
	delete(s.NodeOrientations, id)
	delete(s.NodeRects, id)
	for _, p := range removed.Inputs {
		delete(s.PortPositions, p.ID)
	}
	for _, p := range removed.Outputs {
		delete(s.PortPositions, p.ID)
	}
	for i, n := range s.NodeOrder {
		if n == id {
			s.NodeOrder = append(s.NodeOrder[:i], s.NodeOrder[i+1:]...)
			break
		}
	}
	for i, n := range s.SelectedNodes {
		if n == id {
			s.SelectedNodes = append(s.SelectedNodes[:i], s.SelectedNodes[i+1:]...)
			break
		}
	}
	if s.ConnectionInProgress != nil && s.ConnectionInProgress.Node == id {
		s.ConnectionInProgress = nil
	}
}

// topNodeAt finds the topmost node whose cached rect contains p.
func (s *EditorState) topNodeAt(p geom.Vec2) (graph.NodeID, bool) {
	for i := len(s.NodeOrder) - 1; i >= 0; i-- {
		id := s.NodeOrder[i]
		if r, ok := s.NodeRects[id]; ok && r.Contains(p) {
			return id, true
		}
	}
	return graph.NodeID{}, false
}
