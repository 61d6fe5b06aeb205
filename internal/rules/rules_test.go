package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/babyhome/solidity-gas-optimizer/internal/ast"
	"github.com/babyhome/solidity-gas-optimizer/internal/issue"
)

func TestContextShadowing(t *testing.T) {
	ctx := NewContext()
	ctx.AddStateVariable(VariableInfo{Name: "owner", Type: "address", Visibility: "public"})
	ctx.AddStateVariable(VariableInfo{Name: "total", Type: "uint256", Visibility: "internal"})

	assert.True(t, ctx.IsStorageVariable("owner"))

	ctx.EnterFunction("setOwner", []string{"owner", ""})
	assert.False(t, ctx.IsStorageVariable("owner"), "parameter should shadow state variable")
	assert.True(t, ctx.IsStorageVariable("total"))

	ctx.DeclareLocal("total")
	assert.False(t, ctx.IsStorageVariable("total"), "local should shadow state variable")

	name, ok := ctx.CurrentFunction()
	assert.True(t, ok)
	assert.Equal(t, "setOwner", name)

	ctx.ExitFunction()
	assert.True(t, ctx.IsStorageVariable("owner"))
	assert.True(t, ctx.IsStorageVariable("total"))
	_, ok = ctx.CurrentFunction()
	assert.False(t, ok)

	ctx.DeclareLocal("owner")
	assert.True(t, ctx.IsStorageVariable("owner"), "declarations outside functions are not locals")
}

func TestContextLoopStack(t *testing.T) {
	ctx := NewContext()
	assert.False(t, ctx.IsInLoop())
	assert.Nil(t, ctx.CurrentLoop())

	outer := ctx.PushLoop(ForLoop, nil)
	inner := ctx.PushLoop(WhileLoop, nil)

	assert.True(t, ctx.IsInLoop())
	assert.Equal(t, 2, ctx.LoopDepth())
	assert.Same(t, inner, ctx.CurrentLoop())
	assert.Equal(t, 1, outer.Depth)
	assert.Equal(t, 2, inner.Depth)

	ctx.PopLoop()
	assert.Same(t, outer, ctx.CurrentLoop())
	ctx.PopLoop()
	ctx.PopLoop()
	assert.False(t, ctx.IsInLoop())
}

func TestContextAddIssueDeduplicates(t *testing.T) {
	ctx := NewContext()
	first := issue.Issue{Type: issue.StorageReadInLoop, Line: 3, Column: 9, Message: "first"}

	assert.True(t, ctx.AddIssue(first))
	assert.False(t, ctx.AddIssue(issue.Issue{Type: issue.StorageReadInLoop, Line: 3, Column: 9, Message: "second"}))
	assert.True(t, ctx.AddIssue(issue.Issue{Type: issue.UseCustomErrors, Line: 3, Column: 9}))

	issues := ctx.Issues()
	require.Len(t, issues, 2)
	assert.Equal(t, "first", issues[0].Message)

	ctx.Reset()
	assert.Empty(t, ctx.Issues())
	assert.True(t, ctx.AddIssue(first), "Reset should forget seen keys")
}

func TestResolveNames(t *testing.T) {
	t.Run("empty selects defaults", func(t *testing.T) {
		names, err := ResolveNames(nil)
		require.NoError(t, err)
		assert.Equal(t, DefaultNames(), names)
		assert.NotContains(t, names, UncheckedMathName)
	})

	t.Run("all", func(t *testing.T) {
		names, err := ResolveNames([]string{"all"})
		require.NoError(t, err)
		assert.Len(t, names, len(Catalog()))
	})

	t.Run("catalog order", func(t *testing.T) {
		names, err := ResolveNames([]string{UseCustomErrorsName, " " + StorageReadInLoopName})
		require.NoError(t, err)
		assert.Equal(t, []string{StorageReadInLoopName, UseCustomErrorsName}, names)
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := ResolveNames([]string{"no-such-rule"})
		assert.ErrorContains(t, err, "no-such-rule")
	})
}

func TestCatalogConstructors(t *testing.T) {
	ctx := NewContext()
	for _, e := range Catalog() {
		r := e.New(ctx)
		assert.Equal(t, e.Name, r.Name())
		assert.Equal(t, e.Description, r.Description())
		assert.NotEmpty(t, r.Visitors(), "%s registers no visitors", e.Name)
	}
}

func TestSlotSize(t *testing.T) {
	tests := []struct {
		name string
		typ  ast.TypeName
		want int
	}{
		{"bool", &ast.ElementaryTypeName{Name: "bool"}, 1},
		{"uint8", &ast.ElementaryTypeName{Name: "uint8"}, 1},
		{"int64", &ast.ElementaryTypeName{Name: "int64"}, 8},
		{"uint128", &ast.ElementaryTypeName{Name: "uint128"}, 16},
		{"uint248", &ast.ElementaryTypeName{Name: "uint248"}, 31},
		{"uint", &ast.ElementaryTypeName{Name: "uint"}, 32},
		{"address", &ast.ElementaryTypeName{Name: "address"}, 20},
		{"address payable", &ast.ElementaryTypeName{Name: "address", StateMutability: "payable"}, 20},
		{"bytes4", &ast.ElementaryTypeName{Name: "bytes4"}, 4},
		{"bytes32", &ast.ElementaryTypeName{Name: "bytes32"}, 32},
		{"dynamic bytes", &ast.ElementaryTypeName{Name: "bytes"}, 32},
		{"string", &ast.ElementaryTypeName{Name: "string"}, 32},
		{"malformed width", &ast.ElementaryTypeName{Name: "uint7"}, 32},
		{"struct", &ast.UserDefinedTypeName{NamePath: "Position"}, 32},
		{"array of bools", &ast.ArrayTypeName{BaseTypeName: &ast.ElementaryTypeName{Name: "bool"}}, 32},
		{"mapping", &ast.Mapping{}, 32},
		{"missing", nil, 32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SlotSize(tt.typ))
		})
	}
}

func vars(sizes ...int) []StorageVar {
	out := make([]StorageVar, len(sizes))
	for i, size := range sizes {
		out[i] = StorageVar{Name: string(rune('a' + i)), Size: size}
	}
	return out
}

func TestLayout(t *testing.T) {
	current := Layout(vars(1, 32, 1))
	require.Len(t, current, 3)

	optimal := OptimalLayout(vars(1, 32, 1))
	require.Len(t, optimal, 2)
	assert.Equal(t, 32, optimal[0].Used)
	assert.Equal(t, 2, optimal[1].Used)
	assert.Equal(t, []string{"a", "c"}, []string{optimal[1].Vars[0].Name, optimal[1].Vars[1].Name})

	assert.Empty(t, Layout(nil))
	assert.Len(t, Layout(vars(20, 12, 16, 16)), 2, "exact fits share a slot")
}

func TestOptimalLayoutNeverWorse(t *testing.T) {
	sequences := [][]int{
		{16, 16, 20, 12},
		{1, 32, 1},
		{20, 20, 20},
		{8, 24, 8, 24},
		{31, 1, 31, 1},
		{17, 15, 17, 15, 32},
		{2, 4, 8, 16, 30},
		{32, 32},
		{1},
	}

	for _, sizes := range sequences {
		in := vars(sizes...)
		assert.LessOrEqual(t, len(OptimalLayout(in)), len(Layout(in)), "sizes %v", sizes)
	}
}

func TestErrorName(t *testing.T) {
	tests := []struct {
		message string
		want    string
	}{
		{"Insufficient balance", "InsufficientBalance"},
		{"Vault: insufficient funds for withdrawal", "InsufficientFunds"},
		{"Caller is not owner", "NotOwner"},
		{"Contract is not paused", "NotPaused"},
		{"Pausable: paused", "ContractPaused"},
		{"Array length mismatch", "ArrayLengthMismatch"},
		{"transfer_failed-badly", "TransferFailedBadly"},
		{"Token: cap exceeded!", "TokenCapExceeded"},
		{"1st call only", "Error1stCallOnly"},
		{"", "Error"},
	}

	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			assert.Equal(t, tt.want, ErrorName(tt.message))
		})
	}
}

func TestErrorParams(t *testing.T) {
	sig := func(message string) string {
		return errorSignature(ErrorName(message), errorParams(message))
	}

	assert.Equal(t, "InsufficientBalance(uint256,uint256)", sig("insufficient balance"))
	assert.Equal(t, "ZeroAddress(address)", sig("zero address"))
	assert.Equal(t, "DeadlineExpired(uint256,uint256)", sig("deadline expired"))
	assert.Equal(t, "ArrayLengthMismatch(uint256,uint256)", sig("array length mismatch"))
	assert.Equal(t, "NotOwner()", sig("not owner"))
}

func TestErrorSelector(t *testing.T) {
	assert.Equal(t, "0x08c379a0", ErrorSelector("Error(string)"))
	assert.Equal(t, "0x4e487b71", ErrorSelector("Panic(uint256)"))
}

func TestTruncateMessage(t *testing.T) {
	short := "not owner"
	assert.Equal(t, short, truncateMessage(short))

	long := "this message is definitely longer than fifty characters in total"
	got := truncateMessage(long)
	assert.Equal(t, long[:50]+"...", got)
}
