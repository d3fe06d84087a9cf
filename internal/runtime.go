package internal

// Runtime is the whole engine for one logical task: the link tracker, the
// batch/flush scheduler, and the optional observer hook. GetRuntime()
// (runtime_default.go / runtime_wasm.go) hands back the runtime owned by
// the calling goroutine.
type Runtime struct {
	tracker   *Tracker
	scheduler *Scheduler
	observer  Observer
}

func NewRuntime() *Runtime {
	return &Runtime{
		tracker:   newTracker(),
		scheduler: newScheduler(),
		observer:  NullObserver{},
	}
}

// SetObserver installs a debug/devtools observer. Pass NullObserver{} to
// remove one.
func (rt *Runtime) SetObserver(o Observer) {
	if o == nil {
		o = NullObserver{}
	}
	rt.observer = o
}

func (rt *Runtime) newNode(kind Kind) *Node {
	n := &Node{rt: rt, kind: kind}
	rt.observer.OnCreate(n)
	return n
}

// onUnwatched fires when a dep's subs chain becomes empty: a derived
// wipes its cache and re-arms for lazy recompute, a source auto-disposes
// if it opted in, an effect has no meaningful unwatched state (nothing
// ever depends on an effect's "value").
func (rt *Runtime) onUnwatched(dep *Node) {
	switch dep.kind {
	case KindDerived:
		dep.hasCached = false
		dep.cached = nil
		dep.clearFlag(FlagPending)
		dep.addFlag(FlagDirty)
	case KindSource:
		if dep.autoDispose {
			rt.Dispose(dep)
		}
	case KindEffect:
		// unreachable in practice: nothing ever depends on an effect.
	}
}

// failIfDisposed panics with a *DisposedAccessError if n has been torn down.
func (rt *Runtime) failIfDisposed(n *Node) {
	if n.disposed {
		panic(&DisposedAccessError{Node: n})
	}
}

// runCleanups runs and clears an effect's registered cleanup callbacks in
// LIFO order (P9).
func (rt *Runtime) runCleanups(n *Node) {
	for i := len(n.cleanups) - 1; i >= 0; i-- {
		n.cleanups[i]()
	}
	n.cleanups = nil
}

// disposeChildren tears down every child owned by n, in LIFO creation
// order (P10), without disposing n itself.
func (rt *Runtime) disposeChildren(n *Node) {
	child := n.childrenHead
	for child != nil {
		next := child.nextSibling
		rt.Dispose(child)
		child = next
	}
	n.childrenHead = nil
}

// Dispose idempotently tears down n: cascades to owned children (LIFO),
// runs cleanups then on_dispose disposers (LIFO, disposer errors
// swallowed), unlinks every edge touching n, and zeroes its flags
// (invariant 6).
func (rt *Runtime) Dispose(n *Node) {
	if n.disposed {
		return
	}
	n.disposed = true

	rt.disposeChildren(n)
	rt.runCleanups(n)

	for i := len(n.disposers) - 1; i >= 0; i-- {
		rt.runDisposer(n, n.disposers[i])
	}
	n.disposers = nil

	if n.depsHead != nil {
		rt.clearTrack(n.depsHead)
	}
	n.depsHead, n.depsTail = nil, nil

	for l := n.subsHead; l != nil; {
		next := l.nextSub
		rt.unlink(l)
		l = next
	}
	n.subsHead, n.subsTail = nil, nil

	n.flags = FlagNone
	n.removeFromParent()

	rt.observer.OnDispose(n)
}

func (rt *Runtime) runDisposer(n *Node, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			rt.observer.OnDisposerFault(n, r)
		}
	}()
	fn()
}
