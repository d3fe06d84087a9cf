package internal

// NewEffect creates an effect node. If lazy is false, the body runs once
// immediately (eager); if lazy is true, Watching is still armed so a
// later propagation (or an explicit Run call) triggers the first run.
// scheduler, if non-nil, lets a caller override "run immediately on
// flush" (used by frame-synchronized effects).
func (rt *Runtime) NewEffect(body func(), lazy bool, scheduler func(run func()) (handled bool)) *Node {
	n := rt.newNode(KindEffect)
	n.flags = FlagWatching
	n.body = body
	n.lazy = lazy
	n.scheduler = scheduler

	if owner := rt.tracker.owner(); owner != nil {
		owner.addChild(n)
	}

	if !lazy {
		rt.executeEffect(n)
	}

	return n
}

// RunEffect forces an immediate body execution regardless of dirty
// state — used both for the public Run() capability and to trigger a
// lazy effect's first run.
func (rt *Runtime) RunEffect(n *Node) {
	rt.failIfDisposed(n)
	rt.executeEffect(n)
}

// PauseEffect suppresses future body runs; deps keep being tracked by
// whatever run already happened, but the engine will not invoke the
// body again until Resume.
func (rt *Runtime) PauseEffect(n *Node) {
	n.paused = true
}

// ResumeEffect re-arms body runs and immediately catches up on any
// change that arrived while paused.
func (rt *Runtime) ResumeEffect(n *Node) {
	n.paused = false
	if n.flags.has(FlagDirty) || n.flags.has(FlagPending) {
		rt.runEffectBody(n)
	}
}

// OnCleanup registers a callback run (LIFO) immediately before the next
// body run and at disposal.
func (rt *Runtime) OnCleanup(n *Node, fn func()) {
	n.cleanups = append(n.cleanups, fn)
}
