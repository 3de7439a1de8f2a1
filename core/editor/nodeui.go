package editor

import (
	"github.com/nodewire/nodewire/core/geom"
	"github.com/nodewire/nodewire/core/graph"
)

// portHit is a resolved port hit-test against last frame's geometry.
type portHit struct {
	node  graph.NodeID
	param graph.AnyParameterID
	pos   geom.Vec2
}

// findPortNear returns the first eligible port within SnapRadius of at.
// Nodes scan in storage order, ports in display order (inputs before
// outputs). Outputs are always eligible; inputs only when their kind accepts
// a connection. typ narrows to ports of exactly that type; skip excludes one
// node. Ports with no recorded position are invisible to hit-testing.
func findPortNear(s *EditorState, at geom.Vec2, wantInputs, wantOutputs bool, typ graph.DataType, skip graph.NodeID, haveSkip bool) *portHit {
	for _, nid := range s.Graph.Nodes() {
		if haveSkip && nid == skip {
			continue
		}
		n := s.Graph.Node(nid)
		if wantInputs {
			for _, p := range n.Inputs {
				inp := s.Graph.Input(p.ID)
				if !inp.Kind.AcceptsConnection() {
					continue
				}
				if typ != nil && inp.Type != typ {
					continue
				}
				if pos, ok := s.PortPositions[p.ID]; ok && pos.Dist(at) < SnapRadius {
					return &portHit{node: nid, param: p.ID, pos: pos}
				}
			}
		}
		if wantOutputs {
			for _, p := range n.Outputs {
				if typ != nil && s.Graph.Output(p.ID).Type != typ {
					continue
				}
				if pos, ok := s.PortPositions[p.ID]; ok && pos.Dist(at) < SnapRadius {
					return &portHit{node: nid, param: p.ID, pos: pos}
				}
			}
		}
	}
	return nil
}

// releaseTarget resolves where a primary release lands the active drag: the
// first compatible opposite-role port in range on a node other than the
// drag's origin. Nil means the release lands nowhere and the drag just dies.
func releaseTarget(s *EditorState, pointer geom.Vec2) *portHit {
	drag := s.ConnectionInProgress
	typ, err := s.Graph.AnyParamType(drag.Param)
	if err != nil {
		return nil
	}
	_, fromOutput := graph.AsOutput(drag.Param)
	return findPortNear(s, pointer, fromOutput, !fromOutput, typ, drag.Node, true)
}

// resolveSnap is where the in-progress wire should visually end this frame.
func resolveSnap(s *EditorState, pointer geom.Vec2) *SnapTarget {
	drag := s.ConnectionInProgress
	typ, err := s.Graph.AnyParamType(drag.Param)
	if err != nil {
		return &SnapTarget{Pos: pointer}
	}
	_, fromOutput := graph.AsOutput(drag.Param)
	if hit := findPortNear(s, pointer, fromOutput, !fromOutput, typ, graph.NodeID{}, false); hit != nil {
		return &SnapTarget{Pos: hit.pos, Port: hit.param}
	}
	return &SnapTarget{Pos: pointer}
}

// connectEnded builds the normalized connection event from the drag source
// and the release target, whichever role each had.
func connectEnded(a, b graph.AnyParameterID) NodeResponse {
	if in, ok := graph.AsInput(a); ok {
		out, _ := graph.AsOutput(b)
		return ConnectEventEnded{Input: in, Output: out}
	}
	out, _ := graph.AsOutput(a)
	in, _ := graph.AsInput(b)
	return ConnectEventEnded{Input: in, Output: out}
}

// framePass carries one frame's resolved hit-tests through the per-node
// collection walk.
type framePass struct {
	s         *EditorState
	in        FrameInput
	host      WidgetHost
	userState any

	// dragHit is the port the primary drag started on this tick, if any;
	// relHit is the port a release lands the active drag on.
	dragHit *portHit
	relHit  *portHit

	// top is the topmost node under the press origin.
	top    graph.NodeID
	hasTop bool

	// blocked suppresses node gestures while the pointer traffic belongs to
	// the open creation menu.
	blocked bool
}

// collectNodeResponses walks every node in draw order and gathers its
// events: payload-hook user events first, then port gestures, then node
// chrome (close, flip, title drag, plain click).
func collectNodeResponses(s *EditorState, in FrameInput, host WidgetHost, userState any) []NodeResponse {
	f := framePass{s: s, in: in, host: host, userState: userState}
	if s.Menu != nil {
		f.blocked = s.MenuRect.Contains(in.Pointer) || s.MenuRect.Contains(in.PressOrigin)
	}
	if !f.blocked {
		if in.DragStarted && in.Down.Has(ButtonPrimary) {
			f.dragHit = findPortNear(s, in.PressOrigin, true, true, nil, graph.NodeID{}, false)
		}
		if in.Released.Has(ButtonPrimary) && s.ConnectionInProgress != nil {
			f.relHit = releaseTarget(s, in.Pointer)
		}
		f.top, f.hasTop = s.topNodeAt(in.PressOrigin)
	}

	var out []NodeResponse
	for _, id := range s.NodeOrder {
		out = append(out, f.node(id)...)
	}
	return out
}

// node renders one node's body through the payload hooks and resolves its
// gestures. A plain click turns into selection only when the node produced
// nothing more specific in the same pass.
func (f *framePass) node(id graph.NodeID) []NodeResponse {
	if ns, ok := f.host.(NodeScoped); ok {
		ns.BeginNode(id)
		defer ns.EndNode()
	}
	node := f.s.Graph.Node(id)
	var ev []NodeResponse
	user := func(vals []any) {
		for _, v := range vals {
			ev = append(ev, UserEvent{Value: v})
		}
	}
	sd, _ := node.Payload.(SeparatorDecorator)
	orow, _ := node.Payload.(OutputRow)

	// Title bar.
	if td, ok := node.Payload.(TitleDecorator); ok {
		user(td.DecorateTitle(f.host, id, f.s.Graph, f.userState))
	}

	// Input rows. An unconnected constant fallback edits itself inline; the
	// value moves out of the port for the duration of the call so the widget
	// never aliases the slot that owns it.
	for _, p := range node.Inputs {
		if sd != nil {
			user(sd.DecorateSeparator(f.host, id, p.ID))
		}
		inp := f.s.Graph.Input(p.ID)
		if !inp.ShownInline {
			continue
		}
		_, connected := f.s.Graph.Connection(p.ID)
		if connected || inp.Kind == graph.ConnectionOnly {
			f.host.Label(p.Name)
			continue
		}
		if w, ok := inp.Value.(ValueWidget); ok {
			inp.Value = nil
			v, evs := w.EditValue(f.host, p.Name, id, f.userState)
			f.s.Graph.Input(p.ID).Value = v
			user(evs)
		} else {
			f.host.Label(p.Name)
		}
	}

	// Output rows.
	for _, p := range node.Outputs {
		if sd != nil {
			user(sd.DecorateSeparator(f.host, id, p.ID))
		}
		if orow != nil {
			user(orow.OutputRow(f.host, id, p.ID, p.Name, f.s.Graph, f.userState))
		} else {
			f.host.Label(p.Name)
		}
	}

	// Bottom panel.
	if bp, ok := node.Payload.(BottomPanel); ok {
		user(bp.BottomPanel(f.host, id, f.s.Graph, f.userState))
	}

	// Port gestures resolved against this node.
	if f.dragHit != nil && f.dragHit.node == id {
		if out, ok := graph.AsOutput(f.dragHit.param); ok {
			ev = append(ev, ConnectEventStarted{Node: id, Param: out})
		} else if inID, ok := graph.AsInput(f.dragHit.param); ok {
			if existing, connected := f.s.Graph.Connection(inID); connected {
				// Unplug by dragging: the drag re-arms from the freed output
				// when this applies.
				ev = append(ev, DisconnectEvent{Input: inID, Output: existing})
			} else {
				ev = append(ev, ConnectEventStarted{Node: id, Param: inID})
			}
		}
	}
	if f.relHit != nil && f.relHit.node == id {
		ev = append(ev, connectEnded(f.s.ConnectionInProgress.Param, f.relHit.param))
	}

	// Node chrome, topmost node under the press origin only.
	if f.blocked || !f.hasTop || f.top != id {
		return ev
	}
	rect, ok := f.s.NodeRects[id]
	if !ok {
		return ev
	}

	clicked := f.in.Released.Has(ButtonPrimary) && !f.in.DragActive && rect.Contains(f.in.Pointer)
	canDelete := true
	if v, ok := node.Payload.(DeleteVetoer); ok {
		canDelete = v.CanDelete(id, f.s.Graph, f.userState)
	}

	consumed := false
	switch {
	case clicked && canDelete && CloseRect(rect).Contains(f.in.PressOrigin) && CloseRect(rect).Contains(f.in.Pointer):
		ev = append(ev, DeleteNodeUI{Node: id})
		consumed = true
	case clicked && FlipRect(rect).Contains(f.in.PressOrigin) && FlipRect(rect).Contains(f.in.Pointer):
		f.s.NodeOrientations[id] = f.s.NodeOrientations[id].Flip()
		consumed = true
	}

	// Title drag moves the node (and raises it) each tick it travels.
	if f.in.DragActive && f.in.Down.Has(ButtonPrimary) &&
		f.dragHit == nil && f.s.ConnectionInProgress == nil &&
		TitleDragRect(rect).Contains(f.in.PressOrigin) && !f.in.PointerDelta.IsZero() {
		ev = append(ev, MoveNode{Node: id, Delta: f.in.PointerDelta}, RaiseNode{Node: id})
	}

	if clicked && !consumed && len(ev) == 0 {
		ev = append(ev, SelectNode{Node: id}, RaiseNode{Node: id})
	}
	return ev
}
