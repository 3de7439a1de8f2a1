package palette

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nodewire/nodewire/core/graph"
)

// Expr renders the expression feeding a node as an S-expression: connected
// inputs recurse into the node that owns the feeding output, unconnected ones
// print their constant. A cycle along the path prints as "...".
func Expr(g *graph.Graph, id graph.NodeID) string {
	return expr(g, id, map[graph.NodeID]bool{})
}

func expr(g *graph.Graph, id graph.NodeID, path map[graph.NodeID]bool) string {
	if path[id] {
		return "..."
	}
	path[id] = true
	defer delete(path, id)

	node := g.Node(id)
	name := strings.ToLower(node.Label)
	if len(node.Inputs) == 0 {
		return "(" + name + ")"
	}
	parts := []string{name}
	for _, p := range node.Inputs {
		if out, ok := g.Connection(p.ID); ok {
			parts = append(parts, expr(g, g.Output(out).Node, path))
			continue
		}
		parts = append(parts, literal(g.Input(p.ID).Value))
	}
	return "(" + strings.Join(parts, " ") + ")"
}

func literal(v any) string {
	switch v := v.(type) {
	case ScalarValue:
		return strconv.FormatFloat(v.V, 'g', -1, 64)
	case TextValue:
		return strconv.Quote(v.S)
	case nil:
		return "_"
	default:
		return fmt.Sprintf("%v", v)
	}
}

// Sinks lists the nodes none of whose outputs feed a connection, in storage
// order. Dumping every sink covers the whole reachable graph.
func Sinks(g *graph.Graph) []graph.NodeID {
	connected := make(map[graph.OutputID]bool)
	for _, l := range g.Connections() {
		connected[l.Output] = true
	}
	var out []graph.NodeID
	for _, id := range g.Nodes() {
		sink := true
		for _, o := range g.Node(id).Outputs {
			if connected[o.ID] {
				sink = false
				break
			}
		}
		if sink {
			out = append(out, id)
		}
	}
	return out
}
