package internal

// Link is one directed dependency edge, from dep to sub. It threads two
// intrusive doubly-linked lists at once: sub's deps chain and dep's subs
// chain. Links are owned by the graph; creation and destruction is the
// sole responsibility of the tracker and the disposal path.
type Link struct {
	dep *Node
	sub *Node

	version uint64

	prevDep, nextDep *Link
	prevSub, nextSub *Link
}

// link establishes (or renews) an edge from dep to sub in the context of
// the tracker's current version. See spec §4.1: this is the version-
// stamped reuse algorithm that lets a node read twice in one pass avoid
// duplicate edges, and lets stale edges be identified by position (they
// trail depsTail) without a hash set.
func (t *Tracker) link(dep, sub *Node) {
	if sub == dep {
		// a node never depends on itself through the link pool; the cycle
		// guard for self-reads is handled at the read site (RecursedCheck).
		return
	}

	if tail := sub.depsTail; tail != nil && tail.dep == dep {
		return
	}

	var nextDep *Link
	if sub.depsTail != nil {
		nextDep = sub.depsTail.nextDep
	} else {
		nextDep = sub.depsHead
	}

	if nextDep != nil && nextDep.dep == dep {
		nextDep.version = t.currentVersion
		sub.depsTail = nextDep
		return
	}

	if prevSub := dep.subsTail; prevSub != nil && prevSub.sub == sub && prevSub.version == t.currentVersion {
		return
	}

	l := &Link{
		dep:     dep,
		sub:     sub,
		version: t.currentVersion,
		prevDep: sub.depsTail,
		nextDep: nextDep,
	}

	if sub.depsTail != nil {
		sub.depsTail.nextDep = l
	} else {
		sub.depsHead = l
	}
	sub.depsTail = l
	if nextDep != nil {
		nextDep.prevDep = l
	}

	l.prevSub = dep.subsTail
	if dep.subsTail != nil {
		dep.subsTail.nextSub = l
	} else {
		dep.subsHead = l
	}
	dep.subsTail = l
}

// unlink removes l from both chains and returns the link that followed it
// in sub's deps chain (so callers can keep walking while unlinking). If
// dep's subs chain becomes empty, onUnwatched(dep) fires.
func (rt *Runtime) unlink(l *Link) *Link {
	dep, sub := l.dep, l.sub
	nextDep, prevDep := l.nextDep, l.prevDep
	nextSub, prevSub := l.nextSub, l.prevSub

	if nextDep != nil {
		nextDep.prevDep = prevDep
	} else {
		sub.depsTail = prevDep
	}
	if prevDep != nil {
		prevDep.nextDep = nextDep
	} else {
		sub.depsHead = nextDep
	}

	if nextSub != nil {
		nextSub.prevSub = prevSub
	} else {
		dep.subsTail = prevSub
	}
	if prevSub != nil {
		prevSub.nextSub = nextSub
	} else {
		dep.subsHead = nextSub
	}

	l.prevDep, l.nextDep, l.prevSub, l.nextSub = nil, nil, nil, nil

	if dep.subsHead == nil {
		rt.onUnwatched(dep)
	}

	return nextDep
}

// clearTrack unlinks every link in the chain starting at l (a stale-edge
// sweep run at the end of a tracking pass).
func (rt *Runtime) clearTrack(l *Link) {
	for l != nil {
		next := l.nextDep
		rt.unlink(l)
		l = next
	}
}

// validLink reports whether l is still present on sub's deps chain. Used
// by propagate's reentrancy guard: a concurrent unlink during traversal
// (triggered by a getter/body disposing a node mid-propagation) must not
// be followed into.
func validLink(l *Link, sub *Node) bool {
	for c := sub.depsHead; c != nil; c = c.nextDep {
		if c == l {
			return true
		}
	}
	return false
}
