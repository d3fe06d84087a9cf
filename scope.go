package reactor

import "github.com/anatolelucet/reactor/internal"

// Scope owns a set of reactive nodes created while it is active, so a
// single Dispose tears all of them down together, LIFO, instead of each
// needing to be disposed by hand.
type Scope struct {
	node *internal.Node
}

// NewScope creates a scope. If created while another scope or an
// Effect/Computed body is active, it is itself owned by that enclosing
// context and disposed along with it.
func NewScope() *Scope {
	return &Scope{node: internal.GetRuntime().NewScope()}
}

// Run installs the scope as the owner of every reactive node fn
// creates.
func (s *Scope) Run(fn func()) { internal.GetRuntime().RunInScope(s.node, fn) }

// Dispose cascades to every owned node (LIFO creation order) and then
// clears the scope itself.
func (s *Scope) Dispose() { internal.GetRuntime().Dispose(s.node) }

// OnDispose registers a callback run when the scope is disposed.
func (s *Scope) OnDispose(fn func()) { s.node.OnDispose(fn) }

// OnError registers a catcher for panics raised by fn in Run, in
// registration order. If the scope has no catchers, a panic from Run
// propagates to the caller unchanged.
func (s *Scope) OnError(fn func(any)) { s.node.OnError(fn) }
