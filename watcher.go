package reactor

import "github.com/anatolelucet/reactor/internal"

// WatcherOption configures a Watcher at construction time.
type WatcherOption[T any] func(*watcherConfig[T])

type watcherConfig[T any] struct {
	immediately bool
	once        bool
	when        func(newValue, oldValue T) bool
}

// Immediately fires the callback once synchronously at creation, with
// (currentValue, zero value), before waiting for the first change.
func Immediately[T any]() WatcherOption[T] {
	return func(c *watcherConfig[T]) { c.immediately = true }
}

// Once stops the callback after its first qualifying invocation: the
// backing effect is paused rather than disposed, and the callback never
// fires again, even after Resume.
func Once[T any]() WatcherOption[T] {
	return func(c *watcherConfig[T]) { c.once = true }
}

// When gates callback invocation on a predicate over (newValue,
// oldValue); changes that don't satisfy it are silently skipped.
func When[T any](pred func(newValue, oldValue T) bool) WatcherOption[T] {
	return func(c *watcherConfig[T]) { c.when = pred }
}

// Watcher observes a single reactive read and calls back with the new
// and previous value whenever it changes, instead of re-running
// arbitrary code like an Effect.
type Watcher[T any] struct {
	w *internal.Watcher
}

// NewWatcher watches the value read produces and invokes callback on
// every change (subject to the Once/When options).
func NewWatcher[T any](read func() T, callback func(newValue, oldValue T), opts ...WatcherOption[T]) *Watcher[T] {
	var cfg watcherConfig[T]
	for _, opt := range opts {
		opt(&cfg)
	}

	var when func(newValue, oldValue any) bool
	if cfg.when != nil {
		when = func(newValue, oldValue any) bool {
			return cfg.when(as[T](newValue), as[T](oldValue))
		}
	}

	w := internal.GetRuntime().NewWatcher(
		func() any { return read() },
		func(newValue, oldValue any) { callback(as[T](newValue), as[T](oldValue)) },
		cfg.immediately,
		cfg.once,
		when,
	)

	return &Watcher[T]{w: w}
}

// Pause suspends future callback invocations without losing tracked
// state.
func (w *Watcher[T]) Pause() { internal.GetRuntime().PauseWatcher(w.w) }

// Resume re-arms a paused watcher, immediately catching up if the
// watched value changed while paused.
func (w *Watcher[T]) Resume() { internal.GetRuntime().ResumeWatcher(w.w) }

// IgnoreUpdates runs fn with the callback disarmed: changes fn makes to
// the watched source update the watcher's remembered old value but don't
// trigger the callback. The watcher keeps tracking; reads fn itself makes
// are untracked.
func (w *Watcher[T]) IgnoreUpdates(fn func()) { internal.GetRuntime().IgnoreUpdates(w.w, fn) }

// Dispose tears down the backing effect; the callback will not fire
// again.
func (w *Watcher[T]) Dispose() { internal.GetRuntime().Dispose(w.w.Node()) }

// OnDispose registers a callback run when the watcher is disposed.
func (w *Watcher[T]) OnDispose(fn func()) { w.w.Node().OnDispose(fn) }
