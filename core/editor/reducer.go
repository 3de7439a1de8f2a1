// Package editor is the interaction core of the node editor: a per-frame
// reducer that turns pointer and keyboard input plus last frame's geometry
// into graph mutations and an ordered event list.
//
// Everything runs single-threaded and to completion within one Frame call.
// The render surface draws from the state afterwards, records the fresh
// geometry via RecordGeometry, and feeds next frame's input back in; no
// other concurrency is permitted while Frame runs.
package editor

import (
	"fmt"

	"github.com/nodewire/nodewire/core/geom"
	"github.com/nodewire/nodewire/core/graph"
)

// Frame advances the editor by one tick.
//
// prepend is applied through the same mutation rules before this frame's
// own interactions, so callers can feed synthesized events (a programmatic
// disconnect, a replayed user action) into the ordinary pipeline. Feeding in
// DeleteNodeFull is a precondition violation; that event only ever comes out.
//
// The returned Responses hold every event of the frame in processing order:
// prepended, then collected, then synthesized. Synthesized events (the
// disconnects and DeleteNodeFull that a DeleteNodeUI expands into) appear
// exactly once and are not routed back through the mutation rules; their
// state effects already happened inside RemoveNode.
func Frame(s *EditorState, in FrameInput, kinds KindCatalog, userState any, host WidgetHost, prepend []NodeResponse) FrameResult {
	s.checkOrder()
	if host == nil {
		host = NopHost{}
	}

	inMenu := s.Menu != nil && s.MenuRect.Contains(in.Pointer)

	// 1. Per-node collection against last frame's geometry.
	responses := make([]NodeResponse, 0, len(prepend)+8)
	responses = append(responses, prepend...)
	responses = append(responses, collectNodeResponses(s, in, host, userState)...)

	// 2. Creation-menu confirmation builds the node under the pointer. A
	// plain click on a menu row resolves against the catalog; MenuChoice
	// lets a surface with its own finder (search box, keyboard) override.
	choice := in.MenuChoice
	if choice == nil && s.Menu != nil && inMenu &&
		in.Released.Has(ButtonPrimary) && !in.DragActive && s.MenuRect.Contains(in.PressOrigin) {
		all := kinds.AllKinds()
		for i := range all {
			if MenuRow(s.MenuRect, i).Contains(in.Pointer) {
				choice = all[i]
				break
			}
		}
	}
	if s.Menu != nil && choice != nil {
		pos := in.Pointer.Sub(s.PanZoom.Pan)
		id := s.AddNodeAt(choice, pos, userState)
		responses = append(responses, CreatedNode{Node: id})
		s.Menu = nil
	}

	// 3. Snap resolution while a wire is being dragged.
	var snap *SnapTarget
	if s.ConnectionInProgress != nil {
		snap = resolveSnap(s, in.Pointer)
	}

	// 4. Apply the mutation rules in order.
	responses = apply(s, responses)

	// 5. Rubber band: selection becomes exactly the nodes whose cached rect
	// intersects the band. Replaces, never unions.
	if s.BoxSelection != nil {
		band := geom.R(*s.BoxSelection, in.Pointer)
		s.SelectedNodes = s.SelectedNodes[:0]
		for _, id := range s.NodeOrder {
			if r, ok := s.NodeRects[id]; ok && r.Intersects(band) {
				s.SelectedNodes = append(s.SelectedNodes, id)
			}
		}
	}

	// 6. Global pointer transitions.
	if in.Released.Any() {
		s.ConnectionInProgress = nil
	}
	if in.Released.Has(ButtonSecondary) && in.InEditor && !inMenu {
		s.Menu = &CreationMenu{Pos: in.Pointer}
	}
	if in.Escape {
		s.Menu = nil
	}
	if in.Down.Has(ButtonMiddle) {
		s.PanZoom.Pan = s.PanZoom.Pan.Add(in.PointerDelta)
	}
	if in.Pressed.Has(ButtonPrimary) && in.InEditor && !inMenu {
		// Ports poke past the node rect, and pressing one is not a press on
		// empty background.
		_, onNode := s.topNodeAt(in.Pointer)
		onPort := findPortNear(s, in.Pointer, true, true, nil, graph.NodeID{}, false) != nil
		if !onNode && !onPort {
			s.SelectedNodes = s.SelectedNodes[:0]
			s.Menu = nil
		}
	}
	if in.DragStarted && in.Down.Has(ButtonPrimary) && in.InEditor && !inMenu {
		if _, onNode := s.topNodeAt(in.PressOrigin); !onNode && s.ConnectionInProgress == nil {
			start := in.PressOrigin
			s.BoxSelection = &start
		}
	}
	if in.Released.Has(ButtonPrimary) {
		s.BoxSelection = nil
	}

	return FrameResult{
		Responses: responses,
		InEditor:  in.InEditor || inMenu,
		InMenu:    inMenu,
		Snap:      snap,
	}
}

// apply runs every direct response through the mutation rules, appending
// whatever they synthesize.
func apply(s *EditorState, direct []NodeResponse) []NodeResponse {
	out := direct
	for _, r := range direct {
		switch r := r.(type) {
		case ConnectEventStarted:
			s.ConnectionInProgress = &ConnectionDrag{Node: r.Node, Param: r.Param}
		case ConnectEventEnded:
			s.Graph.AddConnection(r.Output, r.Input)
		case SelectNode:
			s.SelectedNodes = append(s.SelectedNodes[:0], r.Node)
		case DeleteNodeUI:
			removed, severed := s.Graph.RemoveNode(r.Node)
			for _, l := range severed {
				out = append(out, DisconnectEvent{Input: l.Input, Output: l.Output})
			}
			out = append(out, DeleteNodeFull{Node: r.Node, Removed: removed})
			s.forgetNode(r.Node, removed)
		case DisconnectEvent:
			s.Graph.RemoveConnection(r.Input)
			// Disconnecting reseeds a live drag from the freed output.
			owner := s.Graph.Output(r.Output).Node
			s.ConnectionInProgress = &ConnectionDrag{Node: owner, Param: r.Output}
		case RaiseNode:
			s.raise(r.Node)
		case MoveNode:
			s.moveNode(r.Node, r.Delta)
		case CreatedNode:
			// State effects happened at menu confirmation.
		case UserEvent:
			// Forwarded verbatim.
		case DeleteNodeFull:
			panic(fmt.Errorf("%w: DeleteNodeFull is only ever synthesized, never supplied", ErrPrecondition))
		}
	}
	return out
}
