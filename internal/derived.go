package internal

// NewDerived creates a lazily-computed node. Nothing runs at creation:
// deps materialize on first read inside a tracked context (spec §3
// Lifecycle). getter is mandatory; setter is non-nil only for a
// WritableDerived (write-through).
func (rt *Runtime) NewDerived(getter func() any, setter func(any)) *Node {
	n := rt.newNode(KindDerived)
	n.flags = FlagMutable | FlagDirty // Dirty so the first read recomputes
	n.getter = getter
	n.setter = setter

	if owner := rt.tracker.owner(); owner != nil {
		owner.addChild(n)
	}

	return n
}

// ReadDerived pulls the node's value, tracking it as a dependency of the
// active subscriber and recomputing if flags demand it. A reentrant
// self-read during this node's own recompute (RecursedCheck set) is the
// CycleGuard case: it returns the last cached value (zero value if none
// yet) and notifies the observer instead of recursing.
func (rt *Runtime) ReadDerived(n *Node) any {
	rt.failIfDisposed(n)
	rt.tracker.track(n)

	if n.flags.has(FlagRecursedCheck) {
		rt.observer.OnCycleGuard(n)
		return n.cached
	}

	rt.ensureFresh(n)
	return n.cached
}

// PeekDerived pulls without tracking a dependency, but may still
// recompute if stale.
func (rt *Runtime) PeekDerived(n *Node) any {
	rt.failIfDisposed(n)
	if n.flags.has(FlagRecursedCheck) {
		rt.observer.OnCycleGuard(n)
		return n.cached
	}
	rt.ensureFresh(n)
	return n.cached
}

// PeekCachedDerived returns the last cached value without triggering a
// recompute, even if Dirty/Pending.
func (rt *Runtime) PeekCachedDerived(n *Node) any {
	rt.failIfDisposed(n)
	return n.cached
}

// NotifyDerived forces a recompute and propagates to subs regardless of
// whether the recomputed value compares equal to the cached one (the
// same "treat as changed" override Notify gives a Source).
func (rt *Runtime) NotifyDerived(n *Node) {
	rt.failIfDisposed(n)
	n.addFlag(FlagDirty)
	rt.recomputeDerived(n)
	if n.subsHead != nil {
		propagate(n.subsHead)
		shallowPropagate(n)
	}
	rt.observer.OnNotify(n)
	rt.scheduleFlush()
}

// WriteDerived invokes a WritableDerived's setter. Per the spec's open
// question recommendation, it always runs inside a batch so a setter
// that writes multiple upstream sources appears atomic to observers,
// regardless of the caller's own batch depth.
func (rt *Runtime) WriteDerived(n *Node, v any) {
	rt.failIfDisposed(n)
	if n.setter == nil {
		panic(&InvalidContextError{Reason: "Write called on a read-only Derived"})
	}
	rt.Batch(func() {
		n.setter(v)
	})
}

// recomputeDerived runs the getter inside start/end tracking, disposing
// any children (nested effects) from the previous run first, compares
// the result against the cached value, and shallow-propagates on change.
// It returns whether the value actually changed.
func (rt *Runtime) recomputeDerived(n *Node) bool {
	rt.disposeChildren(n)

	rt.tracker.startTracking(n)
	var newValue any
	rt.tracker.withActiveSub(n, func() {
		defer rt.endTracking(n)
		newValue = n.getter()
	})

	n.clearFlag(FlagDirty)

	changed := !n.hasCached || !compareValues(n, n.cached, newValue)
	if changed {
		old := n.cached
		n.cached = newValue
		n.hasCached = true
		shallowPropagate(n)
		rt.observer.OnUpdate(n, newValue, old)
	}
	return changed
}
