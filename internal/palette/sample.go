package palette

import (
	"github.com/nodewire/nodewire/core/editor"
	"github.com/nodewire/nodewire/core/geom"
)

// Sample populates s with the demo graph (print (multiply (add 1 2) 3)),
// spread left to right.
func Sample(s *editor.EditorState) {
	c1 := s.AddNodeAt(Constant, geom.V(40, 40), nil)
	c2 := s.AddNodeAt(Constant, geom.V(40, 180), nil)
	add := s.AddNodeAt(Add, geom.V(300, 100), nil)
	mul := s.AddNodeAt(Multiply, geom.V(560, 140), nil)
	pr := s.AddNodeAt(Print, geom.V(820, 170), nil)

	g := s.Graph
	g.Input(g.Node(c1).Inputs[0].ID).Value = ScalarValue{V: 1}
	g.Input(g.Node(c2).Inputs[0].ID).Value = ScalarValue{V: 2}
	g.Input(g.Node(mul).Inputs[1].ID).Value = ScalarValue{V: 3}

	g.AddConnection(g.Node(c1).Outputs[0].ID, g.Node(add).Inputs[0].ID)
	g.AddConnection(g.Node(c2).Outputs[0].ID, g.Node(add).Inputs[1].ID)
	g.AddConnection(g.Node(add).Outputs[0].ID, g.Node(mul).Inputs[0].ID)
	g.AddConnection(g.Node(mul).Outputs[0].ID, g.Node(pr).Inputs[0].ID)
}
