package editor

import (
	"github.com/nodewire/nodewire/core/geom"
	"github.com/nodewire/nodewire/core/graph"
)

// NodeResponse is one interaction event. The set of variants is closed: the
// reducer switches over all of them, and user-defined traffic travels inside
// UserEvent rather than as new variants.
type NodeResponse interface{ isNodeResponse() }

// ConnectEventStarted arms a connection drag from one port.
type ConnectEventStarted struct {
	Node  graph.NodeID
	Param graph.AnyParameterID
}

// ConnectEventEnded commits a connection. The endpoints are normalized to
// (input, output) no matter which side the drag began on.
type ConnectEventEnded struct {
	Input  graph.InputID
	Output graph.OutputID
}

// CreatedNode reports a node built from the creation menu this frame.
type CreatedNode struct{ Node graph.NodeID }

// SelectNode replaces the selection with one node.
type SelectNode struct{ Node graph.NodeID }

// DeleteNodeUI asks for a node's removal (the close control, unless vetoed).
type DeleteNodeUI struct{ Node graph.NodeID }

// DeleteNodeFull reports a completed removal, carrying the removed node. It
// is only ever synthesized by the reducer; feeding one in is a precondition
// violation.
type DeleteNodeFull struct {
	Node    graph.NodeID
	Removed *graph.Node
}

// DisconnectEvent severs the link into Input. Applying it re-arms the
// connection drag from the freed output.
type DisconnectEvent struct {
	Input  graph.InputID
	Output graph.OutputID
}

// RaiseNode moves a node to the top of the draw order.
type RaiseNode struct{ Node graph.NodeID }

// MoveNode shifts a node by Delta; when the node is part of a multi-node
// selection the whole selection shifts with it.
type MoveNode struct {
	Node  graph.NodeID
	Delta geom.Vec2
}

// UserEvent carries an opaque value emitted by a payload hook, forwarded
// verbatim with no internal effect.
type UserEvent struct{ Value any }

func (ConnectEventStarted) isNodeResponse() {}
func (ConnectEventEnded) isNodeResponse()   {}
func (CreatedNode) isNodeResponse()         {}
func (SelectNode) isNodeResponse()          {}
func (DeleteNodeUI) isNodeResponse()        {}
func (DeleteNodeFull) isNodeResponse()      {}
func (DisconnectEvent) isNodeResponse()     {}
func (RaiseNode) isNodeResponse()           {}
func (MoveNode) isNodeResponse()            {}
func (UserEvent) isNodeResponse()           {}

// SnapTarget is where an in-progress connection should visually terminate
// this frame: a compatible port within snapping distance, or the raw pointer.
type SnapTarget struct {
	Pos geom.Vec2
	// Port is nil when no port was within range.
	Port graph.AnyParameterID
}

// FrameResult is what one reducer invocation hands back to the surface.
type FrameResult struct {
	// Responses is the full ordered event list: prepended, collected, and
	// synthesized, in processing order.
	Responses []NodeResponse

	// InEditor reports the pointer over the editing surface; the open
	// creation menu counts as inside even when it pokes out of the surface.
	InEditor bool

	// InMenu reports the pointer over the open creation menu.
	InMenu bool

	// Snap is set while a connection drag is active.
	Snap *SnapTarget
}
