package internal

// NotifyAll runs f as a throwaway tracked subscriber, then propagates from
// every dependency it read the way NotifySource does (direct subscribers
// become Dirty, transitive ones Pending) — without touching any value and
// without the throwaway subscriber itself sticking around afterwards
// (spec §4.2). This is how a batch of external mutations that bypassed
// Write (e.g. a restored snapshot) can force every affected subscriber to
// re-check on next read, without picking a single node to call Notify on.
func (rt *Runtime) NotifyAll(f func()) {
	probe := &Node{rt: rt, kind: KindEffect}

	rt.tracker.startTracking(probe)
	rt.tracker.withActiveSub(probe, func() {
		defer rt.endTracking(probe)
		f()
	})

	for l := probe.depsHead; l != nil; l = l.nextDep {
		dep := l.dep
		if dep.subsHead != nil {
			propagate(dep.subsHead)
			shallowPropagate(dep)
		}
	}

	// Detach the probe from every dep's subs chain; it must not persist
	// as a real subscriber once this call returns.
	if probe.depsHead != nil {
		rt.clearTrack(probe.depsHead)
	}

	rt.scheduleFlush()
}
