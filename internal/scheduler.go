package internal

// Scheduler owns batching depth and the FIFO effect queue (spec §4.9).
// Only one flush is ever in-flight: Flush drains by index rather than by
// popping, so effects enqueued while flushing (cascading writes) are
// appended and processed within the same pass.
type Scheduler struct {
	batchDepth int

	queue       []*Node
	notifyIndex int
}

func newScheduler() *Scheduler {
	return &Scheduler{}
}

func (s *Scheduler) isBatching() bool { return s.batchDepth > 0 }

func (s *Scheduler) enqueue(n *Node) {
	s.queue = append(s.queue, n)
}

// Batch runs fn with flushing suspended; nested calls only increment
// depth, and the flush at depth 0 runs each affected effect exactly
// once (P6).
func (rt *Runtime) Batch(fn func()) {
	rt.scheduler.batchDepth++
	defer func() {
		rt.scheduler.batchDepth--
		if rt.scheduler.batchDepth == 0 {
			rt.Flush()
		}
	}()
	fn()
}

// scheduleFlush flushes immediately unless a batch is in progress, in
// which case the queued effects wait for the outermost batch to end.
func (rt *Runtime) scheduleFlush() {
	if !rt.scheduler.isBatching() {
		rt.Flush()
	}
}

// Flush drains the effect queue in FIFO enqueue order.
func (rt *Runtime) Flush() {
	q := rt.scheduler
	// Hold the batch depth up while draining, so a write made by a running
	// effect only enqueues instead of starting a nested Flush.
	q.batchDepth++
	defer func() { q.batchDepth-- }()
	for q.notifyIndex < len(q.queue) {
		n := q.queue[q.notifyIndex]
		q.notifyIndex++

		n.clearFlag(FlagEffectQueued)
		if n.disposed {
			continue // a disposed queued effect is a no-op (cancellation)
		}
		rt.runEffect(n)
	}
	q.queue = q.queue[:0]
	q.notifyIndex = 0
}

// runEffect executes an effect's scheduler hook if it has one; the hook
// owns the responsibility of eventually invoking runEffectBody itself if
// it defers the run. Otherwise it runs the body inline now.
func (rt *Runtime) runEffect(n *Node) {
	if n.scheduler != nil {
		if handled := n.scheduler(func() { rt.runEffectBody(n) }); handled {
			return
		}
	}
	rt.runEffectBody(n)
}

// runEffectBody re-runs the effect's body if Dirty, or walks deps via
// check_dirty if only Pending (skipping the body when nothing changed).
func (rt *Runtime) runEffectBody(n *Node) {
	if n.paused {
		return
	}
	if n.flags.has(FlagDirty) {
		rt.executeEffect(n)
		return
	}
	if n.flags.has(FlagPending) {
		if rt.checkDirty(n) {
			rt.executeEffect(n)
		} else {
			n.clearFlag(FlagPending)
		}
	}
}

// executeEffect disposes owned children, runs cleanups, re-tracks deps,
// and invokes the body. Unlike runEffectBody it ignores the paused flag,
// since it also backs the forced Run() capability.
func (rt *Runtime) executeEffect(n *Node) {
	rt.disposeChildren(n)
	rt.runCleanups(n)

	rt.tracker.startTracking(n)
	rt.tracker.withActiveSub(n, func() {
		defer rt.endTracking(n)
		n.body()
	})

	n.clearFlag(FlagDirty | FlagPending)
	n.ranOnce = true
}
