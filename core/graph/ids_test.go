package graph

import "testing"

func TestArenaReusesFreedSlotsLIFO(t *testing.T) {
	var a arena[string]
	r0 := a.alloc("zero")
	r1 := a.alloc("one")
	r2 := a.alloc("two")

	a.release(r1)
	a.release(r0)

	// Last freed, first reused.
	r3 := a.alloc("three")
	if r3.idx != r0.idx {
		t.Fatalf("reused slot = %d, want %d", r3.idx, r0.idx)
	}
	if r3.gen == r0.gen {
		t.Fatalf("reused slot kept generation %d", r3.gen)
	}
	if got := a.get(r3); got == nil || *got != "three" {
		t.Fatalf("get(r3) = %v, want three", got)
	}
	if a.get(r0) != nil {
		t.Fatalf("old ref resolved after reuse")
	}
	if got := a.get(r2); got == nil || *got != "two" {
		t.Fatalf("get(r2) = %v, want two", got)
	}
}

func TestArenaReleaseStalesImmediately(t *testing.T) {
	var a arena[int]
	r := a.alloc(7)
	a.release(r)
	if a.get(r) != nil {
		t.Fatalf("released ref still resolves")
	}
	if a.count() != 0 {
		t.Fatalf("count = %d, want 0", a.count())
	}
}

func TestArenaGetRejectsOutOfRange(t *testing.T) {
	var a arena[int]
	a.alloc(1)
	if a.get(ref{idx: -1, gen: 1}) != nil {
		t.Fatalf("negative index resolved")
	}
	if a.get(ref{idx: 9, gen: 1}) != nil {
		t.Fatalf("out-of-range index resolved")
	}
	if a.get(ref{idx: 0, gen: 0}) != nil {
		t.Fatalf("zero ref resolved")
	}
}

func TestArenaEachWalksIndexOrder(t *testing.T) {
	var a arena[int]
	r0 := a.alloc(10)
	a.alloc(20)
	r2 := a.alloc(30)
	a.release(r0)

	var got []int
	a.each(func(_ ref, v *int) bool {
		got = append(got, *v)
		return true
	})
	if len(got) != 2 || got[0] != 20 || got[1] != 30 {
		t.Fatalf("each visited %v, want [20 30]", got)
	}

	// Early stop.
	n := 0
	a.each(func(_ ref, _ *int) bool {
		n++
		return false
	})
	if n != 1 {
		t.Fatalf("each visited %d slots after stop, want 1", n)
	}
	_ = r2
}
