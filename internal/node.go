package internal

// Node is the single polymorphic graph vertex for all four variants
// (Source, Derived, Effect, Scope). Per the design notes, this avoids a
// v-table/interface split on the hot path: the Kind tag already
// determines which fields are meaningful and which branch to take.
type Node struct {
	rt   *Runtime
	kind Kind

	flags    Flags
	disposed bool

	depsHead, depsTail *Link
	subsHead, subsTail *Link

	// Owner tree, for cascade disposal (invariant P10). New children are
	// prepended, so walking childrenHead -> nextSibling visits them in
	// LIFO creation order.
	parent       *Node
	prevSibling  *Node
	nextSibling  *Node
	childrenHead *Node

	// Source
	value         any
	previousValue any
	compare       func(a, b any) bool
	autoDispose   bool

	// Derived
	cached    any
	hasCached bool
	getter    func() any
	setter    func(any)

	// Effect
	body      func()
	cleanups  []func()
	scheduler func(run func()) (handled bool)
	paused    bool
	lazy      bool
	ranOnce   bool

	// generic lifecycle hooks (on_dispose), LIFO
	disposers []func()

	// Scope: panic catchers registered via OnError, tried in registration
	// order by RunInScope's recover.
	catchers []func(any)
}

func (n *Node) hasFlag(f Flags) bool { return n.flags.has(f) }
func (n *Node) addFlag(f Flags)      { n.flags |= f }
func (n *Node) clearFlag(f Flags)    { n.flags &^= f }

// Deps iterates the node's dependency chain in order.
func (n *Node) Deps() []*Node {
	var out []*Node
	for l := n.depsHead; l != nil; l = l.nextDep {
		out = append(out, l.dep)
	}
	return out
}

// Subs iterates the node's subscriber chain in order.
func (n *Node) Subs() []*Node {
	var out []*Node
	for l := n.subsHead; l != nil; l = l.nextSub {
		out = append(out, l.sub)
	}
	return out
}

// Disposed reports whether the node has been torn down.
func (n *Node) Disposed() bool { return n.disposed }

// Kind exposes the node variant, for observer/devtools consumers.
func (n *Node) Kind() Kind { return n.kind }

func (n *Node) addChild(child *Node) {
	child.parent = n
	child.prevSibling = nil
	child.nextSibling = n.childrenHead
	if n.childrenHead != nil {
		n.childrenHead.prevSibling = child
	}
	n.childrenHead = child
}

func (n *Node) removeFromParent() {
	if n.parent == nil {
		return
	}
	if n.prevSibling != nil {
		n.prevSibling.nextSibling = n.nextSibling
	} else {
		n.parent.childrenHead = n.nextSibling
	}
	if n.nextSibling != nil {
		n.nextSibling.prevSibling = n.prevSibling
	}
	n.parent = nil
	n.prevSibling = nil
	n.nextSibling = nil
}

// OnDispose registers a disposer callback run (LIFO, errors swallowed)
// when the node is disposed.
func (n *Node) OnDispose(fn func()) {
	n.disposers = append(n.disposers, fn)
}

// OnError registers a panic catcher for RunInScope to hand recovered
// panics to, in registration order.
func (n *Node) OnError(fn func(any)) {
	n.catchers = append(n.catchers, fn)
}

func compareValues(n *Node, a, b any) bool {
	if n.compare != nil {
		return n.compare(a, b)
	}
	return a == b
}
