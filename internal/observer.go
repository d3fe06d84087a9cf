package internal

// Observer is the engine's one piece of configuration (spec §6), held per
// Runtime: a debug/devtools hook notified of node creation, value updates,
// forced notifications, and disposal, plus two failure-kind events that
// are otherwise invisible to callers (spec §7): CycleGuard and
// DisposerFault.
type Observer interface {
	OnCreate(node *Node)
	OnUpdate(node *Node, newValue, oldValue any)
	OnNotify(node *Node)
	OnDispose(node *Node)
	OnCycleGuard(node *Node)
	OnDisposerFault(node *Node, recovered any)
}

// NullObserver implements Observer with no-op methods; it is the default
// and the base type debug observers embed.
type NullObserver struct{}

func (NullObserver) OnCreate(*Node)            {}
func (NullObserver) OnUpdate(*Node, any, any)  {}
func (NullObserver) OnNotify(*Node)            {}
func (NullObserver) OnDispose(*Node)           {}
func (NullObserver) OnCycleGuard(*Node)        {}
func (NullObserver) OnDisposerFault(*Node, any) {}
