package graph

// DataType tags a port with a user-defined value type. The store compares
// types only by interface equality; whether two types are compatible for a
// connection is the caller's business. Implementations are typically small
// comparable structs or pointers shared across the palette.
type DataType interface {
	// Name is the type's display name, shown on connection errors and
	// tooltips.
	Name() string
}

// InputKind tells the editor how an input may receive its value.
type InputKind int

const (
	// ConnectionOnly inputs take values from a wire and render no inline
	// widget.
	ConnectionOnly InputKind = iota
	// ConstantOnly inputs hold an inline constant and never accept a wire.
	ConstantOnly
	// ConnectionOrConstant inputs use the inline constant as a fallback
	// while unconnected.
	ConnectionOrConstant
)

func (k InputKind) String() string {
	switch k {
	case ConnectionOnly:
		return "connection-only"
	case ConstantOnly:
		return "constant-only"
	case ConnectionOrConstant:
		return "connection-or-constant"
	}
	return "unknown"
}

// AcceptsConnection reports whether a wire may terminate at an input of this
// kind.
func (k InputKind) AcceptsConnection() bool { return k != ConstantOnly }

// InputParam is one input port. Value is the constant fallback edited inline
// while the port is unconnected; it is never consulted by the store itself.
type InputParam struct {
	Node        NodeID
	Type        DataType
	Value       any
	Kind        InputKind
	ShownInline bool
}

// OutputParam is one output port.
type OutputParam struct {
	Node NodeID
	Type DataType
}

// NamedInput pairs an input port with its display name, in the order ports
// were added to the node.
type NamedInput struct {
	Name string
	ID   InputID
}

// NamedOutput pairs an output port with its display name.
type NamedOutput struct {
	Name string
	ID   OutputID
}

// Link is one connection, identified by the input end; an input holds at
// most one incoming wire.
type Link struct {
	Input  InputID
	Output OutputID
}
