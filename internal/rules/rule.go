package rules

import (
	"github.com/babyhome/solidity-gas-optimizer/internal/ast"
)

// Rule is one detector. Rules register callbacks for the node types they care
// about; the analyzer merges the callbacks of all rules into a single walk.
// Rules read scope state from and report issues to the Context they were
// built with.
type Rule interface {
	Name() string
	Description() string
	Visitors() ast.Visitors
}

// Setuper is implemented by rules that keep private state between callbacks.
// Setup runs before every walk.
type Setuper interface {
	Setup()
}

// Cleaner is implemented by rules that need to finish work after the walk.
type Cleaner interface {
	Cleanup()
}

// position converts a node's start into the 1-based line and column used by
// issues. Nodes without a position report 0, 0.
func position(n ast.Node) (int, int) {
	if n == nil {
		return 0, 0
	}
	pos := n.NodePos()
	return pos.Line, pos.Column
}
