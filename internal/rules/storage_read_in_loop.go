package rules

import (
	"fmt"

	"github.com/babyhome/solidity-gas-optimizer/internal/ast"
	"github.com/babyhome/solidity-gas-optimizer/internal/issue"
)

const StorageReadInLoopName = "storage-read-in-loop"

// StorageReadInLoop flags state variable reads inside loops. Reads that feed
// the loop condition and array length reads are the most expensive since they
// repeat on every iteration.
type StorageReadInLoop struct {
	ctx *Context

	// cached holds names ("total" or "items.length") that were copied into a
	// local during this run. They are never invalidated.
	cached map[string]bool

	// bases holds identifiers already reported through their enclosing
	// length or index access.
	bases map[*ast.Identifier]bool
}

func NewStorageReadInLoop(ctx *Context) *StorageReadInLoop {
	return &StorageReadInLoop{ctx: ctx, cached: map[string]bool{}, bases: map[*ast.Identifier]bool{}}
}

func (r *StorageReadInLoop) Name() string        { return StorageReadInLoopName }
func (r *StorageReadInLoop) Description() string { return describe(StorageReadInLoopName) }

func (r *StorageReadInLoop) Setup() {
	r.cached = map[string]bool{}
	r.bases = map[*ast.Identifier]bool{}
}

func (r *StorageReadInLoop) Visitors() ast.Visitors {
	return ast.Visitors{
		ast.On(ast.FOR_STATEMENT): func(n ast.Node) {
			r.enterLoop(n.(*ast.ForStatement).ConditionExpression)
		},
		ast.On(ast.WHILE_STATEMENT): func(n ast.Node) {
			r.enterLoop(n.(*ast.WhileStatement).Condition)
		},
		ast.On(ast.DO_WHILE_STATEMENT): func(n ast.Node) {
			r.enterLoop(n.(*ast.DoWhileStatement).Condition)
		},
		ast.On(ast.IDENTIFIER):    r.checkIdentifier,
		ast.On(ast.MEMBER_ACCESS): r.checkMemberAccess,
		ast.On(ast.INDEX_ACCESS):  r.checkIndexAccess,

		// Caching takes effect once the assigned value has been visited.
		ast.OnExit(ast.BINARY_OPERATION):               r.trackAssignment,
		ast.OnExit(ast.VARIABLE_DECLARATION_STATEMENT): r.trackDeclaration,
	}
}

// enterLoop records the storage reads of the condition of the loop the
// analyzer just pushed. Only the condition subtree is scanned.
func (r *StorageReadInLoop) enterLoop(cond ast.Expr) {
	loop := r.ctx.CurrentLoop()
	if loop == nil || cond == nil {
		return
	}

	ast.Inspect(cond, func(n ast.Node) bool {
		switch n := n.(type) {
		case *ast.Identifier:
			if r.ctx.IsStorageVariable(n.Name) {
				loop.ConditionReads[n.Name] = true
			}
		case *ast.MemberAccess:
			if name, ok := r.storageLength(n); ok {
				loop.ConditionReads[name] = true
			}
		}
		return true
	})
}

// storageLength matches "<storage>.length" and returns "<storage>.length".
func (r *StorageReadInLoop) storageLength(n *ast.MemberAccess) (string, bool) {
	if n.MemberName != "length" {
		return "", false
	}
	base, ok := n.Expression.(*ast.Identifier)
	if !ok || !r.ctx.IsStorageVariable(base.Name) {
		return "", false
	}
	return base.Name + ".length", true
}

func (r *StorageReadInLoop) checkIdentifier(n ast.Node) {
	id := n.(*ast.Identifier)
	if r.bases[id] {
		delete(r.bases, id)
		return
	}
	if !r.ctx.IsInLoop() || !r.ctx.IsStorageVariable(id.Name) || r.cached[id.Name] {
		return
	}

	loop := r.ctx.CurrentLoop()
	inCondition := loop.ConditionReads[id.Name]

	where := fmt.Sprintf("a %s loop", loop.Kind)
	severity := issue.Medium
	if inCondition {
		where = fmt.Sprintf("a %s loop condition", loop.Kind)
		severity = issue.High
	} else {
		loop.BodyReads[id.Name] = true
	}

	line, col := position(id)
	r.ctx.AddIssue(issue.Issue{
		Type:       issue.StorageReadInLoop,
		Severity:   severity,
		Line:       line,
		Column:     col,
		Message:    fmt.Sprintf("Storage variable '%s' is being read inside %s", id.Name, where),
		Suggestion: fmt.Sprintf("Cache '%s' in a local variable before the loop: 'uint256 _%s = %s;'", id.Name, id.Name, id.Name),
	})
}

func (r *StorageReadInLoop) checkMemberAccess(n ast.Node) {
	if !r.ctx.IsInLoop() {
		return
	}
	access := n.(*ast.MemberAccess)
	name, ok := r.storageLength(access)
	if !ok {
		return
	}
	base := access.Expression.(*ast.Identifier)
	r.bases[base] = true
	if r.cached[name] {
		return
	}

	loop := r.ctx.CurrentLoop()
	inCondition := loop.ConditionReads[name]

	message := fmt.Sprintf("Storage array length '%s' is being read inside a loop", name)
	gasImpact := "~800 gas per read"
	if inCondition {
		message += " condition (very inefficient!)"
		gasImpact = "~2100 gas per iteration"
	} else {
		loop.BodyReads[name] = true
	}

	line, col := position(access)
	r.ctx.AddIssue(issue.Issue{
		Type:       issue.StorageReadInLoop,
		Severity:   issue.High,
		Line:       line,
		Column:     col,
		Message:    message,
		Suggestion: fmt.Sprintf("Cache the array length before the loop: 'uint256 %sLength = %s;'", base.Name, name),
		GasImpact:  gasImpact,
	})
}

func (r *StorageReadInLoop) checkIndexAccess(n ast.Node) {
	if !r.ctx.IsInLoop() {
		return
	}
	access := n.(*ast.IndexAccess)
	base, ok := access.Base.(*ast.Identifier)
	if !ok || !r.ctx.IsStorageVariable(base.Name) {
		return
	}

	r.bases[base] = true

	info, _ := r.ctx.StateVariable(base.Name)
	accessType := "storage"
	suggestion := "Cache mapping values in local variables when accessing the same keys multiple times"
	severity := issue.Medium
	switch {
	case info.IsArray:
		accessType = "array"
		suggestion = "Consider caching array elements if accessing the same indices multiple times"
		severity = issue.High
	case info.IsMapping:
		accessType = "mapping"
	}

	r.ctx.CurrentLoop().BodyReads[base.Name] = true

	line, col := position(access)
	r.ctx.AddIssue(issue.Issue{
		Type:       issue.StorageReadInLoop,
		Severity:   severity,
		Line:       line,
		Column:     col,
		Message:    fmt.Sprintf("Storage %s '%s' is being accessed inside a loop", accessType, base.Name),
		Suggestion: suggestion,
	})
}

// trackAssignment marks "local = storageVar" and "local = storageArr.length"
// as cached so later reads of that exact name are not flagged.
func (r *StorageReadInLoop) trackAssignment(n ast.Node) {
	op := n.(*ast.BinaryOperation)
	if op.Operator != "=" {
		return
	}
	left, ok := op.Left.(*ast.Identifier)
	if !ok || !r.ctx.IsLocal(left.Name) {
		return
	}
	r.markCached(op.Right)
}

// trackDeclaration treats "uint256 n = storageVar;" like an assignment to
// the new local.
func (r *StorageReadInLoop) trackDeclaration(n ast.Node) {
	decl := n.(*ast.VariableDeclarationStatement)
	if len(decl.Variables) != 1 || decl.Variables[0] == nil {
		return
	}
	r.markCached(decl.InitialValue)
}

func (r *StorageReadInLoop) markCached(value ast.Expr) {
	switch right := value.(type) {
	case *ast.Identifier:
		if r.ctx.IsStorageVariable(right.Name) {
			r.cached[right.Name] = true
		}
	case *ast.MemberAccess:
		if name, ok := r.storageLength(right); ok {
			r.cached[name] = true
		}
	}
}
