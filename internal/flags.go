package internal

// Flags is the bitset carried by every node. Transitions are constant-time
// mask ops; this is deliberately not an object-per-flag abstraction.
type Flags uint32

const (
	FlagNone Flags = 0

	// Mutable marks a node that may invalidate its subscribers (sources,
	// derived). Never set on an Effect.
	FlagMutable Flags = 1 << iota

	// Watching marks a subscriber-side node that receives propagation
	// notifications directly (effects).
	FlagWatching

	// RecursedCheck is set for the duration of start..end tracking for
	// this node; it is how recompute detects a reentrant self-read.
	FlagRecursedCheck

	// Recursed marks a node visited by propagation while a recursion
	// through it is still unwinding.
	FlagRecursed

	// Dirty means a direct dependency has a known new value; a recompute
	// must run before this node's value can be trusted.
	FlagDirty

	// Pending means some transitive dependency might have changed; the
	// node must run check_dirty on next read to find out.
	FlagPending

	// EffectQueued guards against double-enqueueing into the flush queue.
	FlagEffectQueued
)

func (f Flags) has(flag Flags) bool { return f&flag != 0 }

// Kind tags which of the four node variants a Node is. Dispatch on Kind,
// not on a type switch or an interface — the tag already determines the
// branch on every hot path.
type Kind uint8

const (
	KindSource Kind = iota
	KindDerived
	KindEffect
	KindScope
)
