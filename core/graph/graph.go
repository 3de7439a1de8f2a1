// Package graph is the document model of the node editor: nodes, their
// ports, and the wires between them. It is a plain data store — it knows
// nothing about pixels, widgets or evaluation order, and it performs no type
// checking beyond what callers ask of it.
//
// All ids are generational: once a node is removed, every id minted for it or
// its ports is permanently stale, and resolving a stale id panics with
// ErrStaleID. Callers that may hold ids across removals must refresh them
// from Nodes or Connections rather than probing.
package graph

import "fmt"

// BuildFunc populates a freshly allocated node with its ports. It runs
// inside AddNode, after the node exists and before the id is returned.
type BuildFunc func(*Graph, NodeID)

// Node is a single node: a label, an opaque user payload, and its ports in
// display order.
type Node struct {
	Label   string
	Payload any
	Inputs  []NamedInput
	Outputs []NamedOutput
}

// InputNamed returns the node's input port called name.
func (n *Node) InputNamed(name string) (InputID, bool) {
	for _, p := range n.Inputs {
		if p.Name == name {
			return p.ID, true
		}
	}
	return InputID{}, false
}

// OutputNamed returns the node's output port called name.
func (n *Node) OutputNamed(name string) (OutputID, bool) {
	for _, p := range n.Outputs {
		if p.Name == name {
			return p.ID, true
		}
	}
	return OutputID{}, false
}

// Graph holds the nodes, ports and connections of one document.
//
// Connections are keyed by their input end, which is what bounds fan-in at
// one wire per input while leaving fan-out unbounded. The zero Graph is not
// usable; call New.
type Graph struct {
	nodes       arena[Node]
	inputs      arena[InputParam]
	outputs     arena[OutputParam]
	connections map[InputID]OutputID
}

// New returns an empty graph.
func New() *Graph {
	return &Graph{connections: make(map[InputID]OutputID)}
}

// AddNode allocates a node with the given label and payload, runs build to
// populate its ports, and returns its id.
func (g *Graph) AddNode(label string, payload any, build BuildFunc) NodeID {
	id := NodeID{g.nodes.alloc(Node{Label: label, Payload: payload})}
	if build != nil {
		build(g, id)
	}
	return id
}

// AddInputParam appends an input port to node and returns its id. The value
// is the port's constant fallback; kind governs whether wires, the inline
// widget, or both may feed it, and shownInline controls whether the widget
// renders in the node body.
func (g *Graph) AddInputParam(node NodeID, name string, typ DataType, value any, kind InputKind, shownInline bool) InputID {
	id := InputID{g.inputs.alloc(InputParam{
		Node:        node,
		Type:        typ,
		Value:       value,
		Kind:        kind,
		ShownInline: shownInline,
	})}
	n := g.Node(node)
	n.Inputs = append(n.Inputs, NamedInput{Name: name, ID: id})
	return id
}

// AddOutputParam appends an output port to node and returns its id.
func (g *Graph) AddOutputParam(node NodeID, name string, typ DataType) OutputID {
	id := OutputID{g.outputs.alloc(OutputParam{Node: node, Type: typ})}
	n := g.Node(node)
	n.Outputs = append(n.Outputs, NamedOutput{Name: name, ID: id})
	return id
}

// AddConnection wires output to input. An input holds at most one wire, so a
// previous wire into the same input is silently replaced; an output may feed
// any number of inputs. No type compatibility check happens here.
func (g *Graph) AddConnection(output OutputID, input InputID) {
	g.Output(output)
	g.Input(input)
	g.connections[input] = output
}

// RemoveConnection severs the wire into input, returning its output end.
// Severing an input that has no wire is a no-op and reports false.
func (g *Graph) RemoveConnection(input InputID) (OutputID, bool) {
	g.Input(input)
	out, ok := g.connections[input]
	if ok {
		delete(g.connections, input)
	}
	return out, ok
}

// Connection returns the output wired into input, if any.
func (g *Graph) Connection(input InputID) (OutputID, bool) {
	g.Input(input)
	out, ok := g.connections[input]
	return out, ok
}

// RemoveNode deletes a node, its ports, and every connection touching those
// ports. It returns a copy of the removed node and the severed links in a
// deterministic order (by the input end's storage slot). All ids for the
// node and its ports are stale from this point on.
func (g *Graph) RemoveNode(id NodeID) (*Node, []Link) {
	removed := *g.Node(id)

	var severed []Link
	g.inputs.each(func(r ref, in *InputParam) bool {
		inID := InputID{r}
		out, ok := g.connections[inID]
		if !ok {
			return true
		}
		if in.Node == id || g.Output(out).Node == id {
			delete(g.connections, inID)
			severed = append(severed, Link{Input: inID, Output: out})
		}
		return true
	})

	for _, p := range removed.Inputs {
		g.inputs.release(p.ID.ref)
	}
	for _, p := range removed.Outputs {
		g.outputs.release(p.ID.ref)
	}
	g.nodes.release(id.ref)
	return &removed, severed
}

// Nodes lists live node ids in storage order. The order is stable across
// removals of other nodes.
func (g *Graph) Nodes() []NodeID {
	ids := make([]NodeID, 0, g.nodes.count())
	g.nodes.each(func(r ref, _ *Node) bool {
		ids = append(ids, NodeID{r})
		return true
	})
	return ids
}

// Connections lists all wires, ordered by the input end's storage slot.
func (g *Graph) Connections() []Link {
	links := make([]Link, 0, len(g.connections))
	g.inputs.each(func(r ref, _ *InputParam) bool {
		inID := InputID{r}
		if out, ok := g.connections[inID]; ok {
			links = append(links, Link{Input: inID, Output: out})
		}
		return true
	})
	return links
}

// NodeCount reports the number of live nodes.
func (g *Graph) NodeCount() int { return g.nodes.count() }

// Node resolves id, panicking with ErrStaleID when the node is gone.
func (g *Graph) Node(id NodeID) *Node {
	n := g.nodes.get(id.ref)
	if n == nil {
		panic(fmt.Errorf("%w: %v", ErrStaleID, id))
	}
	return n
}

// Input resolves id, panicking with ErrStaleID when the port is gone.
func (g *Graph) Input(id InputID) *InputParam {
	p := g.inputs.get(id.ref)
	if p == nil {
		panic(fmt.Errorf("%w: %v", ErrStaleID, id))
	}
	return p
}

// Output resolves id, panicking with ErrStaleID when the port is gone.
func (g *Graph) Output(id OutputID) *OutputParam {
	p := g.outputs.get(id.ref)
	if p == nil {
		panic(fmt.Errorf("%w: %v", ErrStaleID, id))
	}
	return p
}

// AnyParamType returns the data type of either kind of port. Unlike the
// panicking single-kind lookups, it reports a stale id as an error, for
// callers probing ports that may have been removed out from under them.
func (g *Graph) AnyParamType(p AnyParameterID) (DataType, error) {
	switch id := p.(type) {
	case InputID:
		if in := g.inputs.get(id.ref); in != nil {
			return in.Type, nil
		}
	case OutputID:
		if out := g.outputs.get(id.ref); out != nil {
			return out.Type, nil
		}
	}
	return nil, fmt.Errorf("%w: %v", ErrStaleID, p)
}
