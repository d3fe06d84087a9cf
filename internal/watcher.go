package internal

// Watcher wraps an effect that tracks a single source (the watched node
// read via watch) and invokes callback with the new and old value
// whenever it changes, instead of running arbitrary reactive code. It is
// built on top of Effect rather than duplicating scheduling, matching
// the "watch as a specialized effect" shape (spec §8 scenario 6).
type Watcher struct {
	node *Node

	watch    func() any
	callback func(newValue, oldValue any)

	immediately bool
	once        bool
	when        func(newValue, oldValue any) bool

	fired      bool
	hasOld     bool
	old        any
	disposedCB bool
	suppressed bool
}

// NewWatcher creates a watcher over watch. The backing effect always
// runs eagerly so watch's reads establish the dependency edge right
// away; immediately controls only whether that first run also delivers
// a callback (with old=nil) or just silently records the baseline value
// to compare the first real change against.
func (rt *Runtime) NewWatcher(watch func() any, callback func(newValue, oldValue any), immediately bool, once bool, when func(newValue, oldValue any) bool) *Watcher {
	w := &Watcher{
		watch:       watch,
		callback:    callback,
		immediately: immediately,
		once:        once,
		when:        when,
	}

	w.node = rt.NewEffect(func() {
		w.runBody(rt)
	}, false, nil)

	return w
}

func (w *Watcher) runBody(rt *Runtime) {
	if w.disposedCB {
		return
	}

	newValue := w.watch()

	if !w.hasOld {
		w.hasOld = true
		w.old = newValue
		if w.immediately && !w.suppressed {
			w.deliver(rt, newValue, nil, true)
		}
		return
	}

	old := w.old
	w.old = newValue
	if w.suppressed {
		return
	}
	w.deliver(rt, newValue, old, false)
}

// deliver applies the when predicate (if any) and the once flag, then
// invokes callback. first is true for the immediately-triggered initial
// call, which always bypasses when (there is no prior value to compare).
func (w *Watcher) deliver(rt *Runtime, newValue, old any, first bool) {
	if w.once && w.fired {
		return
	}
	if !first && w.when != nil && !w.when(newValue, old) {
		return
	}

	w.fired = true
	w.callback(newValue, old)

	if w.once {
		w.disposedCB = true
		rt.PauseEffect(w.node)
	}
}

// Node exposes the backing effect node, for pause/resume/dispose/OnDispose.
func (w *Watcher) Node() *Node { return w.node }

// Pause suspends future callback invocations without losing tracked state.
func (rt *Runtime) PauseWatcher(w *Watcher) { rt.PauseEffect(w.node) }

// Resume re-arms a paused watcher and immediately catches up if the
// watched value changed while paused.
func (rt *Runtime) ResumeWatcher(w *Watcher) { rt.ResumeEffect(w.node) }

// IgnoreUpdates runs fn with the callback disarmed: the backing effect
// still runs synchronously (as any write normally triggers) and `old`
// still advances to the latest value, but deliver is skipped, so the
// change is silently absorbed instead of firing the callback.
func (rt *Runtime) IgnoreUpdates(w *Watcher, fn func()) {
	w.suppressed = true
	defer func() { w.suppressed = false }()
	rt.tracker.untracked(fn)
}
