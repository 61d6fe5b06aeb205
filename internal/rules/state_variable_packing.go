package rules

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/babyhome/solidity-gas-optimizer/internal/ast"
	"github.com/babyhome/solidity-gas-optimizer/internal/issue"
)

const StateVariablePackingName = "state-variable-packing"

const (
	// SlotBytes is the size of one storage slot.
	SlotBytes = 32

	// slotDeploymentGas approximates the cost of initializing one extra slot.
	slotDeploymentGas = 20000
)

// StorageVar is a state variable as laid out in storage.
type StorageVar struct {
	Name   string
	Size   int
	Line   int
	Column int
}

// Slot is one 32-byte storage slot and the variables assigned to it.
type Slot struct {
	Vars []StorageVar
	Used int
}

// StateVariablePacking simulates the storage layout of each contract and
// reports small variables that sit in partly used slots when a reordering
// would use fewer slots.
type StateVariablePacking struct {
	ctx  *Context
	vars []StorageVar
}

func NewStateVariablePacking(ctx *Context) *StateVariablePacking {
	return &StateVariablePacking{ctx: ctx}
}

func (r *StateVariablePacking) Name() string        { return StateVariablePackingName }
func (r *StateVariablePacking) Description() string { return describe(StateVariablePackingName) }

func (r *StateVariablePacking) Setup() {
	r.vars = nil
}

func (r *StateVariablePacking) Visitors() ast.Visitors {
	return ast.Visitors{
		ast.On(ast.CONTRACT_DEFINITION):        func(ast.Node) { r.vars = nil },
		ast.OnExit(ast.CONTRACT_DEFINITION):    func(ast.Node) { r.analyzeLayout() },
		ast.On(ast.STATE_VARIABLE_DECLARATION): r.collect,
	}
}

func (r *StateVariablePacking) collect(n ast.Node) {
	decl := n.(*ast.StateVariableDeclaration)
	for _, v := range decl.Variables {
		if v == nil || v.IsDeclaredConst || v.IsImmutable {
			continue
		}
		line, col := position(v)
		r.vars = append(r.vars, StorageVar{
			Name:   identName(v.Name),
			Size:   SlotSize(v.TypeName),
			Line:   line,
			Column: col,
		})
	}
}

func (r *StateVariablePacking) analyzeLayout() {
	vars := r.vars
	r.vars = nil
	if len(vars) < 2 {
		return
	}

	current := Layout(vars)
	optimal := OptimalLayout(vars)
	saved := len(current) - len(optimal)
	if saved <= 0 {
		return
	}

	severity := issue.Medium
	if saved > 2 {
		severity = issue.High
	}
	plural := ""
	if saved > 1 {
		plural = "s"
	}
	suggestion := packingSuggestion(vars)
	gasImpact := fmt.Sprintf("Can save %d storage slot%s (~%d gas on deployment)", saved, plural, saved*slotDeploymentGas)

	for _, v := range inefficientVars(current) {
		r.ctx.AddIssue(issue.Issue{
			Type:       issue.StateVariablePacking,
			Severity:   severity,
			Line:       v.Line,
			Column:     v.Column,
			Message:    fmt.Sprintf("State variable '%s' (%d bytes) is not efficiently packed", v.Name, v.Size),
			Suggestion: suggestion,
			GasImpact:  gasImpact,
		})
	}
}

// Layout assigns vars to slots greedily in the given order. A variable that
// does not fit in the remaining space of the current slot starts a new one.
func Layout(vars []StorageVar) []Slot {
	var slots []Slot
	var cur Slot
	for _, v := range vars {
		if cur.Used+v.Size > SlotBytes && len(cur.Vars) > 0 {
			slots = append(slots, cur)
			cur = Slot{}
		}
		cur.Vars = append(cur.Vars, v)
		cur.Used += v.Size
	}
	if len(cur.Vars) > 0 {
		slots = append(slots, cur)
	}
	return slots
}

// OptimalLayout lays vars out in bucket order and returns that layout when it
// uses fewer slots than declaration order, otherwise the declaration-order
// layout. The result never uses more slots than Layout(vars).
func OptimalLayout(vars []StorageVar) []Slot {
	current := Layout(vars)
	if reordered := Layout(OptimalOrder(vars)); len(reordered) < len(current) {
		return reordered
	}
	return current
}

// OptimalOrder groups vars into full-slot, 17-31, 9-16 and up to 8 byte
// buckets, keeping declaration order within each bucket.
func OptimalOrder(vars []StorageVar) []StorageVar {
	var full, large, medium, small []StorageVar
	for _, v := range vars {
		switch {
		case v.Size >= SlotBytes:
			full = append(full, v)
		case v.Size > 16:
			large = append(large, v)
		case v.Size > 8:
			medium = append(medium, v)
		default:
			small = append(small, v)
		}
	}

	out := make([]StorageVar, 0, len(vars))
	out = append(out, full...)
	out = append(out, large...)
	out = append(out, medium...)
	return append(out, small...)
}

func inefficientVars(slots []Slot) []StorageVar {
	var out []StorageVar
	for _, slot := range slots {
		if slot.Used >= SlotBytes {
			continue
		}
		for _, v := range slot.Vars {
			if v.Size < SlotBytes {
				out = append(out, v)
			}
		}
	}
	return out
}

func packingSuggestion(vars []StorageVar) string {
	bySize := map[int][]string{}
	for _, v := range vars {
		bySize[v.Size] = append(bySize[v.Size], v.Name)
	}

	lines := []string{
		"Reorder state variables to pack them efficiently:",
		"1. Group 32-byte variables together (uint256, bytes32, etc.)",
		"2. Pack smaller variables together:",
	}
	groups := []struct {
		size  int
		label string
	}{
		{1, "bool/uint8/bytes1"},
		{16, "uint128/bytes16"},
		{20, "address"},
	}
	for _, g := range groups {
		if names := bySize[g.size]; len(names) > 0 {
			lines = append(lines, fmt.Sprintf("   - %s: %s", g.label, strings.Join(names, ", ")))
		}
	}
	return strings.Join(lines, "\n")
}

// SlotSize returns the number of storage bytes a variable of type t occupies.
// Only elementary types can share a slot; everything else takes a full one.
func SlotSize(t ast.TypeName) int {
	elem, ok := t.(*ast.ElementaryTypeName)
	if !ok {
		return SlotBytes
	}
	return elementarySize(elem.Name)
}

func elementarySize(name string) int {
	switch name {
	case "bool":
		return 1
	case "address":
		return 20
	case "uint", "int":
		return SlotBytes
	}

	for _, prefix := range []string{"uint", "int"} {
		if bits, ok := strings.CutPrefix(name, prefix); ok {
			n, err := strconv.Atoi(bits)
			if err != nil || n < 8 || n > 256 || n%8 != 0 {
				return SlotBytes
			}
			return n / 8
		}
	}

	if length, ok := strings.CutPrefix(name, "bytes"); ok && length != "" {
		n, err := strconv.Atoi(length)
		if err != nil || n < 1 || n > SlotBytes {
			return SlotBytes
		}
		return n
	}

	return SlotBytes
}

func identName(id *ast.Ident) string {
	if id == nil {
		return ""
	}
	return id.Value
}
