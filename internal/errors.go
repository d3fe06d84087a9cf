package internal

import "fmt"

// DisposedAccessError is the DisposedAccess failure kind (spec §7): a
// read, write, or link was attempted on a node that has already been
// disposed. It is a fail-fast panic rather than a returned error so that
// generic capability methods (Read() T, Write(T)) keep their simple
// signatures; a Scope's OnError catcher can recover it like any other
// BodyFault.
type DisposedAccessError struct {
	Node *Node
}

func (e *DisposedAccessError) Error() string {
	return fmt.Sprintf("reactor: operation on disposed %s node", kindName(e.Node.kind))
}

// InvalidContextError is the InvalidContext failure kind. WriteDerived
// raises it when Write is called on a Derived that has no setter; no
// other check of the calling context is made.
type InvalidContextError struct {
	Reason string
}

func (e *InvalidContextError) Error() string {
	return "reactor: invalid context: " + e.Reason
}

func kindName(k Kind) string {
	switch k {
	case KindSource:
		return "source"
	case KindDerived:
		return "derived"
	case KindEffect:
		return "effect"
	case KindScope:
		return "scope"
	default:
		return "node"
	}
}
