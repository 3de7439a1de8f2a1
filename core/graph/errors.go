package graph

import "errors"

// ErrStaleID signals a lookup through an identifier whose slot has been
// released (and possibly reused) since the id was handed out. The store keeps
// ports, nodes and connections in lockstep, so hitting this means the caller
// held on to an id across a removal — a bug, not a recoverable condition.
// All stale lookups panic with an error wrapping this sentinel.
var ErrStaleID = errors.New("graph: stale identifier")
