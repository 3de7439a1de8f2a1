package editor

import "errors"

// ErrPrecondition signals reducer misuse: a RaiseNode for an id absent from
// the draw order, a DeleteNodeFull supplied from outside, or a draw order
// that drifted from the live node set. These are caller bugs and panic; no
// recoverable error originates inside the reducer.
var ErrPrecondition = errors.New("editor: precondition violation")
