package graph

import "fmt"

// ref is the raw (slot, generation) pair behind every id kind. Generations
// start at 1 and bump on every release, so the zero ref never resolves and a
// reused slot invalidates all ids minted for its previous occupant.
type ref struct {
	idx int32
	gen uint32
}

// NodeID identifies a node. Ids are stable for the lifetime of the node:
// removing other nodes never moves or renumbers the survivors.
type NodeID struct{ ref }

// InputID identifies one input port of some node.
type InputID struct{ ref }

// OutputID identifies one output port of some node.
type OutputID struct{ ref }

func (id NodeID) String() string   { return fmt.Sprintf("node(%d.%d)", id.idx, id.gen) }
func (id InputID) String() string  { return fmt.Sprintf("in(%d.%d)", id.idx, id.gen) }
func (id OutputID) String() string { return fmt.Sprintf("out(%d.%d)", id.idx, id.gen) }

// AnyParameterID holds either an InputID or an OutputID. The two id spaces
// are distinct; this union exists for code that treats ports uniformly, such
// as the pin position table kept by the render layer. Only InputID and
// OutputID satisfy it.
type AnyParameterID interface {
	fmt.Stringer
	anyParameter()
}

func (InputID) anyParameter()  {}
func (OutputID) anyParameter() {}

// AsInput reports whether p is an input id, and returns it when so.
func AsInput(p AnyParameterID) (InputID, bool) {
	id, ok := p.(InputID)
	return id, ok
}

// AsOutput reports whether p is an output id, and returns it when so.
func AsOutput(p AnyParameterID) (OutputID, bool) {
	id, ok := p.(OutputID)
	return id, ok
}

/* ───────────────────────── generational slot store ───────────────────────── */

type slot[T any] struct {
	val  T
	gen  uint32
	live bool
}

// arena is a generational slot store. Allocation reuses freed slots in LIFO
// order; iteration walks slots in index order, which fixes the observable
// ordering of Nodes and Connections.
type arena[T any] struct {
	slots []slot[T]
	free  []int32
}

func (a *arena[T]) alloc(v T) ref {
	if n := len(a.free); n > 0 {
		i := a.free[n-1]
		a.free = a.free[:n-1]
		s := &a.slots[i]
		s.val = v
		s.live = true
		return ref{idx: i, gen: s.gen}
	}
	a.slots = append(a.slots, slot[T]{val: v, gen: 1, live: true})
	return ref{idx: int32(len(a.slots) - 1), gen: 1}
}

// get resolves r to the stored value, or nil when r is stale.
func (a *arena[T]) get(r ref) *T {
	if r.idx < 0 || int(r.idx) >= len(a.slots) {
		return nil
	}
	s := &a.slots[r.idx]
	if !s.live || s.gen != r.gen {
		return nil
	}
	return &s.val
}

// release frees the slot behind r. The generation bump makes every
// outstanding id for this slot stale immediately, not just after reuse.
func (a *arena[T]) release(r ref) {
	s := a.get(r)
	if s == nil {
		panic(fmt.Errorf("%w: release of %d.%d", ErrStaleID, r.idx, r.gen))
	}
	var zero T
	sl := &a.slots[r.idx]
	sl.val = zero
	sl.live = false
	sl.gen++
	a.free = append(a.free, r.idx)
}

// each visits live slots in index order. Return false to stop early.
func (a *arena[T]) each(fn func(ref, *T) bool) {
	for i := range a.slots {
		s := &a.slots[i]
		if !s.live {
			continue
		}
		if !fn(ref{idx: int32(i), gen: s.gen}, &s.val) {
			return
		}
	}
}

func (a *arena[T]) count() int {
	return len(a.slots) - len(a.free)
}
