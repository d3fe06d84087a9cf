package reactor

import "github.com/anatolelucet/reactor/internal"

// EffectOption configures an Effect at construction time.
type EffectOption func(*effectConfig)

type effectConfig struct {
	lazy      bool
	scheduler func(run func()) (handled bool)
}

// Lazy defers an Effect's first run until something schedules it
// (a dependency change, or an explicit Run), instead of running the body
// immediately at creation.
func Lazy() EffectOption {
	return func(c *effectConfig) { c.lazy = true }
}

// WithScheduler overrides how a flush-triggered run is dispatched: the
// hook receives a run callback and returns whether it took ownership of
// calling it (true), or declined so the engine runs it inline (false).
// This is how a consumer can defer an effect to, say, the next animation
// frame instead of running synchronously during Flush.
func WithScheduler(scheduler func(run func()) (handled bool)) EffectOption {
	return func(c *effectConfig) { c.scheduler = scheduler }
}

// Effect is a reactive side effect: its body re-runs whenever a Signal
// or Computed it read last time changes.
type Effect struct {
	node *internal.Node
}

// NewEffect creates and (unless Lazy is passed) immediately runs body.
func NewEffect(body func(), opts ...EffectOption) *Effect {
	var cfg effectConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Effect{
		node: internal.GetRuntime().NewEffect(body, cfg.lazy, cfg.scheduler),
	}
}

// Run forces an immediate body execution, regardless of dirty state or
// pause.
func (e *Effect) Run() { internal.GetRuntime().RunEffect(e.node) }

// Pause suppresses future automatic runs until Resume.
func (e *Effect) Pause() { internal.GetRuntime().PauseEffect(e.node) }

// Resume re-arms automatic runs and immediately catches up if a
// dependency changed while paused.
func (e *Effect) Resume() { internal.GetRuntime().ResumeEffect(e.node) }

// OnCleanup registers a callback run (LIFO) before the next body run and
// at disposal.
func (e *Effect) OnCleanup(fn func()) { internal.GetRuntime().OnCleanup(e.node, fn) }

// TrackWith primes the effect's dependency chain with the reads fn
// performs, without running the effect's own body. If purge is true,
// the effect's existing deps are cleared first, so fn's reads become
// its entire dependency set; otherwise they are added alongside
// whatever deps the effect already had.
func (e *Effect) TrackWith(fn func(), purge bool) {
	internal.GetRuntime().TrackWithEffect(e.node, fn, purge)
}

// Dispose tears the effect down, running any pending cleanups first.
func (e *Effect) Dispose() { internal.GetRuntime().Dispose(e.node) }

// OnDispose registers a callback run when the effect is disposed.
func (e *Effect) OnDispose(fn func()) { e.node.OnDispose(fn) }
