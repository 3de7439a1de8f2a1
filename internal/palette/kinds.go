// Package palette holds the node kinds the demo binary edits with: a small
// arithmetic set built in, plus a YAML file format for declaring more.
package palette

import (
	"github.com/nodewire/nodewire/core/editor"
	"github.com/nodewire/nodewire/core/graph"
)

// DType is a named data type. Two ports connect only when their DType values
// are equal.
type DType string

func (d DType) Name() string { return string(d) }

const (
	Scalar DType = "scalar"
	Flag   DType = "flag"
	Text   DType = "text"
)

var typeByName = map[string]DType{
	"scalar": Scalar,
	"flag":   Flag,
	"text":   Text,
}

// ScalarValue is an inline-editable number constant.
type ScalarValue struct{ V float64 }

func (v ScalarValue) EditValue(h editor.WidgetHost, name string, _ graph.NodeID, _ any) (any, []any) {
	h.DragValue(name, &v.V)
	return v, nil
}

// TextValue is an inline-editable string constant.
type TextValue struct{ S string }

func (v TextValue) EditValue(h editor.WidgetHost, name string, _ graph.NodeID, _ any) (any, []any) {
	h.TextInput(name, &v.S)
	return v, nil
}

// PrintRequest is emitted when a Print node's button is clicked; the app
// answers by dumping the expression feeding that node.
type PrintRequest struct{ Node graph.NodeID }

// printPanel is the Print kind's bottom strip.
type printPanel struct{}

func (printPanel) BottomPanel(h editor.WidgetHost, id graph.NodeID, _ *graph.Graph, _ any) []any {
	if h.Button("print") {
		return []any{PrintRequest{Node: id}}
	}
	return nil
}

/* ───────────────────────── kind ───────────────────────── */

// Port declares one port of a Kind.
type Port struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
	// Default seeds scalar ports; Text seeds text ports.
	Default float64 `yaml:"default"`
	Text    string  `yaml:"text"`
	// Mode is "constant", "connection" or empty for both.
	Mode string `yaml:"mode"`
}

func (p Port) kind() graph.InputKind {
	switch p.Mode {
	case "constant":
		return graph.ConstantOnly
	case "connection":
		return graph.ConnectionOnly
	default:
		return graph.ConnectionOrConstant
	}
}

func (p Port) value() any {
	switch typeByName[p.Type] {
	case Scalar:
		return ScalarValue{V: p.Default}
	case Text:
		return TextValue{S: p.Text}
	default:
		return nil
	}
}

// Kind is a declarative node template.
type Kind struct {
	Name    string `yaml:"label"`
	Group   string `yaml:"category"`
	Inputs  []Port `yaml:"inputs"`
	Outputs []Port `yaml:"outputs"`

	payload any
}

var _ editor.NodeKind = Kind{}

func (k Kind) Label(any) string     { return k.Name }
func (k Kind) MenuLabel(any) string { return k.Name }
func (k Kind) Category() string     { return k.Group }
func (k Kind) Payload(any) any      { return k.payload }

func (k Kind) BuildNode(g *graph.Graph, _ any, id graph.NodeID) {
	for _, p := range k.Inputs {
		g.AddInputParam(id, p.Name, typeByName[p.Type], p.value(), p.kind(), true)
	}
	for _, p := range k.Outputs {
		g.AddOutputParam(id, p.Name, typeByName[p.Type])
	}
}

/* ───────────────────────── builtins ───────────────────────── */

var (
	Constant = Kind{
		Name: "Constant", Group: "Math",
		Inputs:  []Port{{Name: "value", Type: "scalar", Mode: "constant"}},
		Outputs: []Port{{Name: "out", Type: "scalar"}},
	}
	Add = Kind{
		Name: "Add", Group: "Math",
		Inputs:  []Port{{Name: "a", Type: "scalar"}, {Name: "b", Type: "scalar"}},
		Outputs: []Port{{Name: "out", Type: "scalar"}},
	}
	Multiply = Kind{
		Name: "Multiply", Group: "Math",
		Inputs:  []Port{{Name: "a", Type: "scalar"}, {Name: "b", Type: "scalar"}},
		Outputs: []Port{{Name: "out", Type: "scalar"}},
	}
	Compare = Kind{
		Name: "Compare", Group: "Logic",
		Inputs:  []Port{{Name: "a", Type: "scalar"}, {Name: "b", Type: "scalar"}},
		Outputs: []Port{{Name: "equal", Type: "flag"}},
	}
	Print = Kind{
		Name: "Print", Group: "Output",
		Inputs:  []Port{{Name: "in", Type: "scalar"}},
		payload: printPanel{},
	}
)

// Builtin is the demo catalog.
func Builtin() editor.Kinds {
	return editor.Kinds{Constant, Add, Multiply, Compare, Print}
}
