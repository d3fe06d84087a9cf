// Package reactor is a fine-grained, push/pull reactive signal graph:
// read-write Signals, lazily-recomputed Computeds, and side-effecting
// Effects wired together by an internal dependency-link engine that only
// recomputes and re-runs what a change actually reaches.
package reactor

import "github.com/anatolelucet/reactor/internal"

// as converts an internal engine value (boxed as any) back to its
// generic type, treating a nil box as the type's zero value — the
// shape every node starts in before its first compute.
func as[T any](v any) T {
	if v == nil {
		var zero T
		return zero
	}
	return v.(T)
}

// SignalOption configures a Signal at construction time.
type SignalOption func(*signalConfig)

type signalConfig struct {
	compare     func(a, b any) bool
	autoDispose bool
}

// WithEquals replaces the default == comparison used to suppress
// no-op writes.
func WithEquals[T any](eq func(a, b T) bool) SignalOption {
	return func(c *signalConfig) {
		c.compare = func(a, b any) bool { return eq(as[T](a), as[T](b)) }
	}
}

// WithNeverEqual disables equality suppression entirely, so every Write
// propagates regardless of the prior value. Use this for a signal whose
// value is a mutable collection mutated in place and then re-assigned to
// itself — plain == would otherwise see two equal-looking references and
// swallow the update.
func WithNeverEqual() SignalOption {
	return func(c *signalConfig) {
		c.compare = func(a, b any) bool { return false }
	}
}

// WithAutoDispose opts a Signal into disposing itself the instant it
// loses its last subscriber, instead of living until something disposes
// it explicitly.
func WithAutoDispose() SignalOption {
	return func(c *signalConfig) { c.autoDispose = true }
}

// Signal is a read-write reactive value.
type Signal[T any] struct {
	node *internal.Node
}

// NewSignal creates a signal holding initial.
func NewSignal[T any](initial T, opts ...SignalOption) *Signal[T] {
	var cfg signalConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Signal[T]{
		node: internal.GetRuntime().NewSource(initial, cfg.compare, cfg.autoDispose),
	}
}

// Read the current value, tracking a dependency if called from within a
// reactive body (an Effect or a Computed's getter). The dependency edge
// is recorded against the calling goroutine's runtime, so Read must be
// called from the same goroutine whose reactive graph the Signal
// belongs to.
func (s *Signal[T]) Read() T { return as[T](internal.GetRuntime().ReadSource(s.node)) }

// Peek reads the current value without tracking a dependency.
func (s *Signal[T]) Peek() T { return as[T](internal.GetRuntime().PeekSource(s.node)) }

// Write a new value, propagating to dependents unless it compares equal
// to the current value.
func (s *Signal[T]) Write(v T) { internal.GetRuntime().WriteSource(s.node, v) }

// Notify forces propagation to dependents even if the value is
// unchanged — for signals holding a mutable collection that was mutated
// in place without a matching Write.
func (s *Signal[T]) Notify() { internal.GetRuntime().NotifySource(s.node) }

// Dispose tears the signal down; further Read/Write panics.
func (s *Signal[T]) Dispose() { internal.GetRuntime().Dispose(s.node) }

// OnDispose registers a callback run when the signal is disposed.
func (s *Signal[T]) OnDispose(fn func()) { s.node.OnDispose(fn) }

// Computed is a lazily-recomputed, cached derivation of other reactive
// values.
type Computed[T any] struct {
	node *internal.Node
}

// NewComputed creates a computed value from get. get runs lazily, only
// on the first Read after creation or after a dependency actually
// changes — never eagerly and never more than once per change.
func NewComputed[T any](get func() T) *Computed[T] {
	return &Computed[T]{
		node: internal.GetRuntime().NewDerived(func() any { return get() }, nil),
	}
}

// Read the current value, recomputing first if stale, and tracking a
// dependency if called from within a reactive body.
func (c *Computed[T]) Read() T { return as[T](internal.GetRuntime().ReadDerived(c.node)) }

// Peek reads without tracking a dependency, but may still recompute if
// stale.
func (c *Computed[T]) Peek() T { return as[T](internal.GetRuntime().PeekDerived(c.node)) }

// Dispose tears the computed down; further reads panic.
func (c *Computed[T]) Dispose() { internal.GetRuntime().Dispose(c.node) }

// OnDispose registers a callback run when the computed is disposed.
func (c *Computed[T]) OnDispose(fn func()) { c.node.OnDispose(fn) }

// WritableComputed is a Computed with a paired setter (spec's
// write-through Derived): writing it runs set, which is expected to
// write to the Signals get reads from, batched so the whole write
// appears atomic.
type WritableComputed[T any] struct {
	Computed[T]
}

// NewWritableComputed creates a write-through computed value.
func NewWritableComputed[T any](get func() T, set func(T)) *WritableComputed[T] {
	node := internal.GetRuntime().NewDerived(func() any { return get() }, func(v any) { set(as[T](v)) })
	return &WritableComputed[T]{Computed[T]{node: node}}
}

// Write invokes the setter inside a batch.
func (c *WritableComputed[T]) Write(v T) { internal.GetRuntime().WriteDerived(c.node, v) }

// Batch suspends effect flushing for the duration of fn, so a burst of
// writes produces at most one run per affected effect.
func Batch(fn func()) { internal.GetRuntime().Batch(fn) }

// Untracked runs fn without recording any reactive dependencies, even if
// called from inside an Effect or Computed body.
func Untracked(fn func()) { internal.GetRuntime().Untracked(fn) }

// UntrackedScope runs fn with no owning scope installed, so reactive
// nodes it creates are not cascade-disposed by whatever Scope is
// currently active.
func UntrackedScope(fn func()) { internal.GetRuntime().UntrackedScope(fn) }

// NotifyAll runs f, tracking every Signal/Computed it reads as a
// throwaway dependency, then marks their subscribers stale the way Notify
// does (direct subscribers Dirty, the rest Pending) — without changing
// any value. Use this after a bulk external
// mutation (e.g. restoring a snapshot into several Signals via Peek)
// where no single Write/Notify call is the natural trigger.
func NotifyAll(f func()) { internal.GetRuntime().NotifyAll(f) }

// OnCleanup registers fn to run immediately before the next re-run of
// the enclosing Effect, and once more at its disposal. It is a no-op
// outside an Effect body.
func OnCleanup(fn func()) {
	rt := internal.GetRuntime()
	if n := rt.CurrentSub(); n != nil && n.Kind() == internal.KindEffect {
		rt.OnCleanup(n, fn)
	}
}

// SetObserver installs a debug/devtools hook on the calling goroutine's
// runtime; runtimes of other goroutines are not affected. Pass nil to
// remove one.
func SetObserver(o internal.Observer) { internal.GetRuntime().SetObserver(o) }
