package rules

import (
	"slices"

	"github.com/babyhome/solidity-gas-optimizer/internal/ast"
	"github.com/babyhome/solidity-gas-optimizer/internal/issue"
)

// VariableInfo describes one state variable. Type is a display label:
// the elementary or user-defined name, "<base>[]" for arrays, "mapping",
// "complex" for anything else and "unknown" when no type was parsed.
type VariableInfo struct {
	Name       string
	Type       string
	IsArray    bool
	IsMapping  bool
	Visibility string
}

// LoopKind is the syntactic form of a loop.
type LoopKind string

const (
	ForLoop     LoopKind = "for"
	WhileLoop   LoopKind = "while"
	DoWhileLoop LoopKind = "do-while"
)

// LoopContext is one entry of the loop stack.
type LoopContext struct {
	Kind  LoopKind
	Depth int // 1-based position on the stack
	Node  ast.Node

	// ConditionReads holds storage names read by the loop condition,
	// including "<array>.length" entries.
	ConditionReads map[string]bool

	// BodyReads holds storage names flagged inside the loop body.
	BodyReads map[string]bool
}

// Context is the state shared by every rule during one file's analysis.
// It is not safe for concurrent use; each analysis owns its own Context.
type Context struct {
	stateVars     map[string]VariableInfo
	locals        map[string]bool
	function      string
	inFunction    bool
	loops         []*LoopContext
	internalCalls map[string]bool
	contractName  string

	issues []issue.Issue
	seen   map[issue.Key]bool
}

func NewContext() *Context {
	c := &Context{}
	c.Reset()
	return c
}

// Reset empties every table. It runs at the start of each analysis.
func (c *Context) Reset() {
	c.stateVars = map[string]VariableInfo{}
	c.locals = map[string]bool{}
	c.function = ""
	c.inFunction = false
	c.loops = nil
	c.internalCalls = map[string]bool{}
	c.contractName = ""
	c.issues = nil
	c.seen = map[issue.Key]bool{}
}

// IsStorageVariable reports whether name is a state variable that is not
// shadowed by a parameter or local of the current function.
func (c *Context) IsStorageVariable(name string) bool {
	_, ok := c.stateVars[name]
	return ok && !c.locals[name]
}

func (c *Context) IsInLoop() bool {
	return len(c.loops) > 0
}

// CurrentLoop returns the innermost active loop, or nil outside loops.
func (c *Context) CurrentLoop() *LoopContext {
	if len(c.loops) == 0 {
		return nil
	}
	return c.loops[len(c.loops)-1]
}

// LoopDepth is the number of loops enclosing the current node.
func (c *Context) LoopDepth() int {
	return len(c.loops)
}

// AddIssue records is unless an issue with the same line, column and type
// was already recorded. It reports whether the issue was added.
func (c *Context) AddIssue(is issue.Issue) bool {
	key := is.Key()
	if c.seen[key] {
		return false
	}
	c.seen[key] = true
	c.issues = append(c.issues, is)
	return true
}

// Issues returns a copy of the recorded issues in discovery order.
func (c *Context) Issues() []issue.Issue {
	return slices.Clone(c.issues)
}

func (c *Context) AddStateVariable(info VariableInfo) {
	c.stateVars[info.Name] = info
}

func (c *Context) StateVariable(name string) (VariableInfo, bool) {
	info, ok := c.stateVars[name]
	return info, ok
}

// StateVariableCount returns how many state variables are known.
func (c *Context) StateVariableCount() int {
	return len(c.stateVars)
}

// EnterFunction starts a new function scope whose locals are its parameters.
func (c *Context) EnterFunction(name string, params []string) {
	c.function = name
	c.inFunction = true
	c.locals = map[string]bool{}
	for _, p := range params {
		if p != "" {
			c.locals[p] = true
		}
	}
}

func (c *Context) ExitFunction() {
	c.function = ""
	c.inFunction = false
	c.locals = map[string]bool{}
}

// CurrentFunction returns the name of the function being walked. The name is
// "constructor", "fallback" or "receive" for the unnamed special functions.
func (c *Context) CurrentFunction() (string, bool) {
	return c.function, c.inFunction
}

// DeclareLocal adds name to the current function's locals. It is a no-op
// outside functions.
func (c *Context) DeclareLocal(name string) {
	if !c.inFunction || name == "" {
		return
	}
	c.locals[name] = true
}

func (c *Context) IsLocal(name string) bool {
	return c.locals[name]
}

// PushLoop opens a loop scope one level deeper than the current one.
func (c *Context) PushLoop(kind LoopKind, node ast.Node) *LoopContext {
	loop := &LoopContext{
		Kind:           kind,
		Depth:          len(c.loops) + 1,
		Node:           node,
		ConditionReads: map[string]bool{},
		BodyReads:      map[string]bool{},
	}
	c.loops = append(c.loops, loop)
	return loop
}

func (c *Context) PopLoop() {
	if len(c.loops) > 0 {
		c.loops = c.loops[:len(c.loops)-1]
	}
}

func (c *Context) AddInternalCall(name string) {
	if name != "" {
		c.internalCalls[name] = true
	}
}

func (c *Context) IsInternallyCalled(name string) bool {
	return c.internalCalls[name]
}

func (c *Context) SetContractName(name string) {
	c.contractName = name
}

func (c *Context) ContractName() string {
	return c.contractName
}
