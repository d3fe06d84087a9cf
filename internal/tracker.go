package internal

// Tracker holds the process-wide (here: per-runtime, so per-goroutine —
// see runtime_default.go) "current" pointers: the active subscriber whose
// reads are being recorded, and the active scope collecting newly created
// effects/scopes for cascade disposal. There is no locking: the engine is
// single-threaded per §5, and every nested context is saved/restored
// around the call that installed it.
type Tracker struct {
	currentVersion uint64

	activeSub   *Node
	activeScope *Node

	tracking bool
}

func newTracker() *Tracker {
	return &Tracker{tracking: true}
}

// owner resolves which node should cascade-own a newly created
// effect/derived/scope: the active scope if one is set, else the active
// subscriber (an effect or derived body creating a nested reactive node),
// else nil (a top-level, unowned node).
func (t *Tracker) owner() *Node {
	if t.activeScope != nil {
		return t.activeScope
	}
	return t.activeSub
}

// track links dep into the active subscriber's deps chain, provided we
// are currently inside a tracked context.
func (t *Tracker) track(dep *Node) {
	if !t.tracking || t.activeSub == nil {
		return
	}
	t.link(dep, t.activeSub)
}

// startTracking begins a tracking pass for sub: bumps the shared version
// counter, clears the flags a fresh recompute must not carry over, sets
// RecursedCheck so a reentrant self-read can be detected, and rewinds
// depsTail so link() starts scanning for reuse from the chain head.
func (t *Tracker) startTracking(sub *Node) {
	t.currentVersion++
	sub.flags = (sub.flags &^ (FlagRecursed | FlagDirty | FlagPending)) | FlagRecursedCheck
	sub.depsTail = nil
}

// endTracking sweeps every link past depsTail (deps not re-visited this
// pass) and clears RecursedCheck.
func (rt *Runtime) endTracking(sub *Node) {
	if sub.depsTail != nil {
		if sub.depsTail.nextDep != nil {
			rt.clearTrack(sub.depsTail.nextDep)
			sub.depsTail.nextDep = nil
		}
	} else if sub.depsHead != nil {
		rt.clearTrack(sub.depsHead)
		sub.depsHead = nil
	}
	sub.clearFlag(FlagRecursedCheck)
}

// withActiveSub installs sub as the active subscriber, with tracking
// enabled, for the duration of fn, restoring both on every exit path
// (including panics). Re-enabling tracking keeps a recompute or effect run
// that happens inside an untracked region recording its own deps.
func (t *Tracker) withActiveSub(sub *Node, fn func()) {
	prev, prevTracking := t.activeSub, t.tracking
	t.activeSub, t.tracking = sub, true
	defer func() { t.activeSub, t.tracking = prev, prevTracking }()
	fn()
}

// withActiveScope installs scope as the active scope for the duration of
// fn.
func (t *Tracker) withActiveScope(scope *Node, fn func()) {
	prev := t.activeScope
	t.activeScope = scope
	defer func() { t.activeScope = prev }()
	fn()
}

// untracked runs fn with tracking suspended: reads inside fn establish no
// dependency edges.
func (t *Tracker) untracked(fn func()) {
	prev := t.tracking
	t.tracking = false
	defer func() { t.tracking = prev }()
	fn()
}

// untrackedScope runs fn with no active scope, so nodes created inside
// are not owned by (and therefore not cascade-disposed with) whatever
// scope is currently active.
func (t *Tracker) untrackedScope(fn func()) {
	prev := t.activeScope
	t.activeScope = nil
	defer func() { t.activeScope = prev }()
	fn()
}

// Untracked runs fn with tracking suspended: reads inside fn establish no
// dependency edges on whatever subscriber is currently active.
func (rt *Runtime) Untracked(fn func()) {
	rt.tracker.untracked(fn)
}

// UntrackedScope runs fn with no active scope, so nodes created inside
// are not cascade-owned by whatever scope is currently active.
func (rt *Runtime) UntrackedScope(fn func()) {
	rt.tracker.untrackedScope(fn)
}

// TrackWithEffect primes effect's dependency chain with the reads fn
// performs (spec §6's track_with_effect(f, effect, purge)). If purge is
// true, effect's existing deps are cleared first, so fn's reads become
// its entire dependency set; otherwise they are added alongside
// whatever deps effect already had.
func (rt *Runtime) TrackWithEffect(effect *Node, fn func(), purge bool) {
	if purge && effect.depsHead != nil {
		rt.clearTrack(effect.depsHead)
		effect.depsHead, effect.depsTail = nil, nil
	}
	rt.tracker.trackWith(effect, fn)
}

// CurrentSub returns the subscriber currently being tracked, or nil
// outside any reactive body — used by the package-level OnCleanup helper
// to find which effect a bare OnCleanup(fn) call belongs to.
func (rt *Runtime) CurrentSub() *Node {
	return rt.tracker.activeSub
}

// CurrentScope returns the active scope, or nil if none is installed.
func (rt *Runtime) CurrentScope() *Node {
	return rt.tracker.activeScope
}

// trackWith temporarily makes effect the active subscriber for fn without
// running start/endTracking, so it primes the initial edge set without
// purging existing deps. Re-runs of the effect still perform full
// re-tracking afterwards (see DESIGN.md's open questions).
func (t *Tracker) trackWith(effect *Node, fn func()) {
	prev := t.activeSub
	t.activeSub = effect
	defer func() { t.activeSub = prev }()
	fn()
}
