package internal

import (
	"fmt"
	"log/slog"

	"github.com/m1gwings/treedrawer/tree"
)

// GraphDumper is an Observer that logs structured lifecycle events through
// slog and can render the current dependency graph as an ASCII tree
// rooted at an arbitrary node, for debug/devtools consumers (SPEC_FULL
// §10.4). It embeds NullObserver so callers only need to override the
// events they actually want.
type GraphDumper struct {
	NullObserver
	logger *slog.Logger
}

// NewGraphDumper wraps logger (or the slog default, if nil) as an
// Observer that reports every engine event: lifecycle events at debug
// level, cycle-guard events at warn level, disposer faults at error level.
func NewGraphDumper(logger *slog.Logger) *GraphDumper {
	if logger == nil {
		logger = slog.Default()
	}
	return &GraphDumper{logger: logger}
}

func (g *GraphDumper) OnCreate(n *Node) {
	g.logger.Debug("node created", "kind", kindName(n.kind))
}

func (g *GraphDumper) OnUpdate(n *Node, newValue, oldValue any) {
	g.logger.Debug("node updated", "kind", kindName(n.kind), "new", newValue, "old", oldValue)
}

func (g *GraphDumper) OnNotify(n *Node) {
	g.logger.Debug("node force-notified", "kind", kindName(n.kind))
}

func (g *GraphDumper) OnDispose(n *Node) {
	g.logger.Debug("node disposed", "kind", kindName(n.kind))
}

func (g *GraphDumper) OnCycleGuard(n *Node) {
	g.logger.Warn("cycle guard triggered, returning cached value", "kind", kindName(n.kind))
}

func (g *GraphDumper) OnDisposerFault(n *Node, recovered any) {
	g.logger.Error("disposer panicked", "kind", kindName(n.kind), "recovered", recovered)
}

// Dump renders root's subscriber tree (who depends on root, transitively)
// as an ASCII tree, for attaching to a log line or printing during
// debugging.
func Dump(root *Node) string {
	t := buildSubTree(root, make(map[*Node]bool))
	if t == nil {
		return ""
	}
	return t.String()
}

func buildSubTree(n *Node, visited map[*Node]bool) *tree.Tree {
	if visited[n] {
		return nil
	}
	visited[n] = true

	label := fmt.Sprintf("%s(flags=%08b)", kindName(n.kind), uint32(n.flags))
	t := tree.NewTree(tree.NodeString(label))

	for l := n.subsHead; l != nil; l = l.nextSub {
		if child := buildSubTree(l.sub, visited); child != nil {
			grafted := t.AddChild(child.Val())
			for _, grandchild := range child.Children() {
				graft(grafted, grandchild)
			}
		}
	}

	return t
}

func graft(parent *tree.Tree, child *tree.Tree) {
	newChild := parent.AddChild(child.Val())
	for _, grandchild := range child.Children() {
		graft(newChild, grandchild)
	}
}
