package internal

// NewSource creates a mutable reactive source node. compare, if non-nil,
// replaces the default equality check used to suppress redundant writes
// — mutable-collection wrappers install a predicate that always returns
// false so every Notify()/Write() is treated as a change.
func (rt *Runtime) NewSource(initial any, compare func(a, b any) bool, autoDispose bool) *Node {
	n := rt.newNode(KindSource)
	n.flags = FlagMutable
	n.value = initial
	n.compare = compare
	n.autoDispose = autoDispose
	return n
}

// Read returns the source's current value, establishing a dependency
// edge to the active subscriber if one is tracking.
func (rt *Runtime) ReadSource(n *Node) any {
	rt.failIfDisposed(n)
	rt.tracker.track(n)
	return n.value
}

// Peek returns the value without establishing a dependency.
func (rt *Runtime) PeekSource(n *Node) any {
	rt.failIfDisposed(n)
	return n.value
}

// WriteSource sets a new value. If it compares equal to the current
// value, nothing happens (P7). Otherwise propagation marks every
// transitive subscriber and, outside a batch, flushes immediately.
func (rt *Runtime) WriteSource(n *Node, v any) {
	rt.failIfDisposed(n)

	if compareValues(n, n.value, v) {
		return
	}

	n.previousValue = n.value
	n.value = v

	if n.subsHead != nil {
		// propagate marks every transitive subscriber Pending; since a
		// source's own "recompute" is trivial and we already know the
		// value changed, its direct subscribers can be promoted straight
		// to Dirty instead of waiting on a check_dirty walk to confirm it.
		propagate(n.subsHead)
		shallowPropagate(n)
	}
	rt.observer.OnUpdate(n, v, n.previousValue)
	rt.scheduleFlush()
}

// NotifySource forces propagation even if the value is unchanged (used
// by mutable-collection wrappers after an in-place mutation).
func (rt *Runtime) NotifySource(n *Node) {
	rt.failIfDisposed(n)

	if n.subsHead != nil {
		propagate(n.subsHead)
		shallowPropagate(n)
	}
	rt.observer.OnNotify(n)
	rt.scheduleFlush()
}
