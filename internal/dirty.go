package internal

// checkDirty is the pull-phase dirty-check (spec §4.5). It walks sub's
// dep chain; any Mutable dep that is already Dirty is recomputed in
// place, and any Mutable dep that is only Pending is itself checked
// (depth-first). It reports whether anything reachable under sub
// actually changed value.
//
// The spec calls for an explicit frame stack to bound recursion depth in
// a systems-language target; Go's goroutine stacks grow dynamically, so
// this is implemented as ordinary recursion — see DESIGN.md's Open
// Question log for that deviation.
func (rt *Runtime) checkDirty(sub *Node) bool {
	changed := false

	for l := sub.depsHead; l != nil; l = l.nextDep {
		dep := l.dep
		if !dep.flags.has(FlagMutable) {
			continue
		}

		switch {
		case dep.flags.has(FlagDirty):
			if dep.kind == KindDerived {
				if rt.recomputeDerived(dep) {
					changed = true
				}
			} else {
				changed = true
			}

		case dep.flags.has(FlagPending):
			if dep.kind == KindDerived {
				if rt.checkDirty(dep) {
					dep.addFlag(FlagDirty)
					if rt.recomputeDerived(dep) {
						changed = true
					}
				} else {
					dep.clearFlag(FlagPending)
				}
			} else {
				dep.clearFlag(FlagPending)
			}
		}
	}

	return changed
}

// ensureFresh resolves a Pending/Dirty node to an up-to-date cached value
// before it is read.
func (rt *Runtime) ensureFresh(node *Node) {
	if node.flags.has(FlagDirty) {
		rt.recomputeDerived(node)
		return
	}
	if node.flags.has(FlagPending) {
		if rt.checkDirty(node) {
			node.addFlag(FlagDirty)
			rt.recomputeDerived(node)
		} else {
			node.clearFlag(FlagPending)
		}
	}
}
