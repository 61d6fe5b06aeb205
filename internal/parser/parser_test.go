package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/babyhome/solidity-gas-optimizer/internal/ast"
)

func parseContract(t *testing.T, source string) *ast.ContractDefinition {
	t.Helper()
	unit, parseErrors, scanErrors := ParseSource("test.sol", source)
	require.Empty(t, scanErrors, "Should have no scan errors")
	require.Empty(t, parseErrors, "Should have no parse errors")
	require.Len(t, unit.Children, 1)

	contract, ok := unit.Children[0].(*ast.ContractDefinition)
	require.True(t, ok, "Top-level item should be a contract")
	return contract
}

func functionBody(t *testing.T, contract *ast.ContractDefinition, index int) []ast.Statement {
	t.Helper()
	fn, ok := contract.SubNodes[index].(*ast.FunctionDefinition)
	require.True(t, ok, "Contract item should be a function")
	require.NotNil(t, fn.Body)
	return fn.Body.Statements
}

func TestParseEmptyContract(t *testing.T) {
	contract := parseContract(t, `contract Empty {
}`)

	assert.Equal(t, "Empty", contract.Name.Value)
	assert.Equal(t, "contract", contract.Kind)
	assert.Empty(t, contract.SubNodes, "Empty contract should have no items")
}

func TestParseDirectives(t *testing.T) {
	source := `pragma solidity ^0.8.20;
pragma solidity >=0.8.0 <0.9.0;
import "./IERC20.sol";
import {Ownable} from "./Ownable.sol";
abstract contract Base is Ownable(msg.sender), Pausable {}
interface IVault {}
library Math {}`

	unit, parseErrors, _ := ParseSource("test.sol", source)
	require.Empty(t, parseErrors)
	require.Len(t, unit.Children, 7)

	pragma := unit.Children[0].(*ast.PragmaDirective)
	assert.Equal(t, "solidity", pragma.Name)
	assert.Equal(t, "^0.8.20", pragma.Value)
	assert.Equal(t, ">=0.8.0 <0.9.0", unit.Children[1].(*ast.PragmaDirective).Value)

	assert.Equal(t, "./IERC20.sol", unit.Children[2].(*ast.ImportDirective).Path)
	assert.Equal(t, "./Ownable.sol", unit.Children[3].(*ast.ImportDirective).Path)

	base := unit.Children[4].(*ast.ContractDefinition)
	assert.Equal(t, "abstract", base.Kind)
	require.Len(t, base.BaseContracts, 2)
	assert.Equal(t, "Ownable", base.BaseContracts[0].BaseName.NamePath)
	assert.Len(t, base.BaseContracts[0].Arguments, 1)
	assert.Equal(t, "Pausable", base.BaseContracts[1].BaseName.NamePath)

	assert.Equal(t, "interface", unit.Children[5].(*ast.ContractDefinition).Kind)
	assert.Equal(t, "library", unit.Children[6].(*ast.ContractDefinition).Kind)
}

func TestParseStateVariables(t *testing.T) {
	contract := parseContract(t, `contract Vault {
    uint256 public total;
    address private owner;
    mapping(address => uint256) balances;
    uint256[] items;
    uint256 constant MAX = 100;
    bytes32 immutable salt;
    address payable treasury;
}`)

	require.Len(t, contract.SubNodes, 7)

	vars := make([]*ast.VariableDeclaration, 0, len(contract.SubNodes))
	for _, part := range contract.SubNodes {
		decl, ok := part.(*ast.StateVariableDeclaration)
		require.True(t, ok, "Every item should be a state variable")
		require.Len(t, decl.Variables, 1)
		assert.True(t, decl.Variables[0].IsStateVar)
		vars = append(vars, decl.Variables[0])
	}

	assert.Equal(t, "total", vars[0].Name.Value)
	assert.Equal(t, "public", vars[0].Visibility)
	assert.Equal(t, "uint256", vars[0].TypeName.(*ast.ElementaryTypeName).Name)

	assert.Equal(t, "private", vars[1].Visibility)
	assert.Equal(t, "", vars[2].Visibility, "Omitted visibility stays empty")

	mapping, ok := vars[2].TypeName.(*ast.Mapping)
	require.True(t, ok, "balances should be a mapping")
	assert.Equal(t, "address", mapping.KeyType.(*ast.ElementaryTypeName).Name)

	array, ok := vars[3].TypeName.(*ast.ArrayTypeName)
	require.True(t, ok, "items should be an array")
	assert.Nil(t, array.Length)

	assert.True(t, vars[4].IsDeclaredConst)
	assert.NotNil(t, vars[4].Expression)
	assert.True(t, vars[5].IsImmutable)
	assert.Equal(t, "payable", vars[6].TypeName.(*ast.ElementaryTypeName).StateMutability)
}

func TestParseFunctionHeaders(t *testing.T) {
	contract := parseContract(t, `contract C {
    constructor() {}
    function deposit(uint256 amount) external payable onlyOwner nonReentrant returns (bool ok) {
        return true;
    }
    function get() public view returns (uint256) { return 1; }
    function hook() internal virtual;
    function plain() {}
    fallback() external {}
    receive() external payable {}
}`)

	require.Len(t, contract.SubNodes, 7)
	fns := make([]*ast.FunctionDefinition, len(contract.SubNodes))
	for i, part := range contract.SubNodes {
		fn, ok := part.(*ast.FunctionDefinition)
		require.True(t, ok)
		fns[i] = fn
	}

	assert.True(t, fns[0].IsConstructor)
	assert.Nil(t, fns[0].Name)
	assert.Equal(t, "default", fns[0].Visibility)

	deposit := fns[1]
	assert.Equal(t, "deposit", deposit.FunctionName())
	assert.Equal(t, "external", deposit.Visibility)
	assert.Equal(t, "payable", deposit.StateMutability)
	require.Len(t, deposit.Modifiers, 2)
	assert.Equal(t, "onlyOwner", deposit.Modifiers[0].Name)
	assert.Equal(t, "nonReentrant", deposit.Modifiers[1].Name)
	require.Len(t, deposit.Parameters, 1)
	assert.Equal(t, "amount", deposit.Parameters[0].Name.Value)
	require.Len(t, deposit.ReturnParameters, 1)
	assert.Equal(t, "ok", deposit.ReturnParameters[0].Name.Value)

	assert.Equal(t, "view", fns[2].StateMutability)
	assert.Nil(t, fns[2].ReturnParameters[0].Name, "Unnamed return parameter")

	assert.Nil(t, fns[3].Body, "Declaration without implementation")
	assert.True(t, fns[3].IsVirtual)

	assert.Equal(t, "default", fns[4].Visibility)
	assert.True(t, fns[5].IsFallback)
	assert.True(t, fns[6].IsReceiveEther)
}

func TestParseDeclarations(t *testing.T) {
	contract := parseContract(t, `contract C {
    error Unauthorized(address caller);
    event Transfer(address indexed from, address indexed to, uint256 value);
    struct Position { uint128 size; uint64 openedAt; }
    enum Status { Active, Paused }
    using SafeMath for uint256;
    modifier onlyOwner() { require(msg.sender == owner); _; }
}`)

	require.Len(t, contract.SubNodes, 6)

	customErr := contract.SubNodes[0].(*ast.CustomErrorDefinition)
	assert.Equal(t, "Unauthorized", customErr.Name.Value)
	assert.Len(t, customErr.Parameters, 1)

	event := contract.SubNodes[1].(*ast.EventDefinition)
	require.Len(t, event.Parameters, 3)
	assert.True(t, event.Parameters[0].IsIndexed)
	assert.False(t, event.Parameters[2].IsIndexed)

	st := contract.SubNodes[2].(*ast.StructDefinition)
	require.Len(t, st.Members, 2)
	assert.Equal(t, "openedAt", st.Members[1].Name.Value)

	enum := contract.SubNodes[3].(*ast.EnumDefinition)
	require.Len(t, enum.Members, 2)
	assert.Equal(t, "Paused", enum.Members[1].Name)

	using := contract.SubNodes[4].(*ast.UsingForDeclaration)
	assert.Equal(t, "SafeMath", using.LibraryName)

	mod := contract.SubNodes[5].(*ast.ModifierDefinition)
	assert.Equal(t, "onlyOwner", mod.Name.Value)
	assert.Len(t, mod.Body.Statements, 2)
}

func TestParseStatements(t *testing.T) {
	contract := parseContract(t, `contract S {
    function run(uint256[] memory items) external {
        uint256 total = 0;
        for (uint256 i = 0; i < items.length; i++) {
            total += items[i];
        }
        while (total > 10) { total -= 1; }
        do { total++; } while (total < 5);
        if (total == 0) { revert("empty"); } else { total = 1; }
        unchecked { ++total; }
        (uint256 a, , uint256 b) = split(total);
        emit Done(a + b);
        revert Failed(total);
    }
}`)

	stmts := functionBody(t, contract, 0)
	require.Len(t, stmts, 9)

	t.Run("declaration", func(t *testing.T) {
		decl, ok := stmts[0].(*ast.VariableDeclarationStatement)
		require.True(t, ok)
		require.Len(t, decl.Variables, 1)
		assert.Equal(t, "total", decl.Variables[0].Name.Value)
		assert.NotNil(t, decl.InitialValue)
	})

	t.Run("for loop", func(t *testing.T) {
		loop, ok := stmts[1].(*ast.ForStatement)
		require.True(t, ok)
		_, ok = loop.InitExpression.(*ast.VariableDeclarationStatement)
		assert.True(t, ok, "Init should be a declaration")

		cond := loop.ConditionExpression.(*ast.BinaryOperation)
		assert.Equal(t, "<", cond.Operator)
		member := cond.Right.(*ast.MemberAccess)
		assert.Equal(t, "length", member.MemberName)

		post := loop.LoopExpression.Expression.(*ast.UnaryOperation)
		assert.Equal(t, "++", post.Operator)
		assert.False(t, post.IsPrefix)
	})

	t.Run("other loops", func(t *testing.T) {
		_, ok := stmts[2].(*ast.WhileStatement)
		assert.True(t, ok)
		_, ok = stmts[3].(*ast.DoWhileStatement)
		assert.True(t, ok)
	})

	t.Run("if with string revert", func(t *testing.T) {
		ifStmt := stmts[4].(*ast.IfStatement)
		require.NotNil(t, ifStmt.FalseBody)
		body := ifStmt.TrueBody.(*ast.Block)
		call := body.Statements[0].(*ast.ExpressionStatement).Expression.(*ast.FunctionCall)
		assert.Equal(t, "revert", call.Expression.(*ast.Identifier).Name)
		assert.Equal(t, "empty", call.Arguments[0].(*ast.StringLiteral).Value)
	})

	t.Run("unchecked", func(t *testing.T) {
		block := stmts[5].(*ast.UncheckedStatement)
		assert.Len(t, block.Block.Statements, 1)
	})

	t.Run("tuple declaration", func(t *testing.T) {
		decl := stmts[6].(*ast.VariableDeclarationStatement)
		require.Len(t, decl.Variables, 3)
		assert.Equal(t, "a", decl.Variables[0].Name.Value)
		assert.Nil(t, decl.Variables[1])
		assert.Equal(t, "b", decl.Variables[2].Name.Value)
	})

	t.Run("emit and custom revert", func(t *testing.T) {
		emit := stmts[7].(*ast.EmitStatement)
		assert.Equal(t, "Done", emit.EventCall.Expression.(*ast.Identifier).Name)
		revert := stmts[8].(*ast.RevertStatement)
		assert.Equal(t, "Failed", revert.RevertCall.Expression.(*ast.Identifier).Name)
	})
}

func TestParseTryAndAssembly(t *testing.T) {
	contract := parseContract(t, `contract T {
    function f() external {
        try oracle.latest() returns (uint256 p) {
            price = p;
        } catch Error(string memory reason) {
            emit Failed(reason);
        } catch {
            price = 0;
        }
        assembly { let x := sload(0) }
    }
}`)

	stmts := functionBody(t, contract, 0)
	require.Len(t, stmts, 2)

	try := stmts[0].(*ast.TryStatement)
	assert.Len(t, try.ReturnParameters, 1)
	require.Len(t, try.CatchClauses, 2)
	assert.Equal(t, "Error", try.CatchClauses[0].Kind)
	assert.Equal(t, "", try.CatchClauses[1].Kind)

	asm := stmts[1].(*ast.InlineAssemblyStatement)
	assert.Contains(t, asm.Body, "sload")
}

func TestParseExpressions(t *testing.T) {
	contract := parseContract(t, `contract E {
    function f() external {
        x = a + b * c;
        y = ok ? a : b;
        to.call{value: amount}("");
        orders.push(Order({maker: a, size: 1}));
        z = data[4:];
        w = 2 ** 3 ** 2;
        v = 1 ether;
    }
}`)

	stmts := functionBody(t, contract, 0)
	require.Len(t, stmts, 7)
	expr := func(i int) ast.Expr {
		return stmts[i].(*ast.ExpressionStatement).Expression
	}

	t.Run("precedence", func(t *testing.T) {
		assign := expr(0).(*ast.BinaryOperation)
		assert.Equal(t, "=", assign.Operator)
		sum := assign.Right.(*ast.BinaryOperation)
		assert.Equal(t, "+", sum.Operator)
		assert.Equal(t, "*", sum.Right.(*ast.BinaryOperation).Operator)
	})

	t.Run("conditional", func(t *testing.T) {
		assign := expr(1).(*ast.BinaryOperation)
		_, ok := assign.Right.(*ast.Conditional)
		assert.True(t, ok)
	})

	t.Run("call options", func(t *testing.T) {
		call := expr(2).(*ast.FunctionCall)
		opts := call.Expression.(*ast.NameValueList)
		assert.Equal(t, []string{"value"}, opts.Names)
	})

	t.Run("named arguments", func(t *testing.T) {
		push := expr(3).(*ast.FunctionCall)
		order := push.Arguments[0].(*ast.FunctionCall)
		assert.Equal(t, []string{"maker", "size"}, order.Names)
		assert.Len(t, order.Arguments, 2)
	})

	t.Run("slice", func(t *testing.T) {
		assign := expr(4).(*ast.BinaryOperation)
		rng := assign.Right.(*ast.IndexRangeAccess)
		assert.NotNil(t, rng.IndexStart)
		assert.Nil(t, rng.IndexEnd)
	})

	t.Run("exponent is right associative", func(t *testing.T) {
		assign := expr(5).(*ast.BinaryOperation)
		pow := assign.Right.(*ast.BinaryOperation)
		assert.Equal(t, "**", pow.Operator)
		_, ok := pow.Right.(*ast.BinaryOperation)
		assert.True(t, ok)
	})

	t.Run("subdenomination", func(t *testing.T) {
		assign := expr(6).(*ast.BinaryOperation)
		lit := assign.Right.(*ast.NumberLiteral)
		assert.Equal(t, "ether", lit.Subdenomination)
	})
}

func TestParsePositions(t *testing.T) {
	contract := parseContract(t, `contract A {
    function f() public {
        for (uint256 i = 0; i < n; i++) {}
    }
}`)

	fn := contract.SubNodes[0].(*ast.FunctionDefinition)
	assert.Equal(t, 2, fn.Pos.Line)
	assert.Equal(t, 5, fn.Pos.Column)
	assert.Equal(t, 14, fn.Name.Pos.Column)
	assert.Equal(t, "test.sol", fn.Pos.Filename)

	loop := fn.Body.Statements[0].(*ast.ForStatement)
	assert.Equal(t, 3, loop.Pos.Line)
	assert.Equal(t, 9, loop.Pos.Column)
}

func TestParseComments(t *testing.T) {
	unit, parseErrors, _ := ParseSource("test.sol", `// gasopt-disable-next-line
/** @notice vault */
contract A {}`)

	require.Empty(t, parseErrors)
	require.Len(t, unit.Comments, 2)
	assert.Equal(t, "// gasopt-disable-next-line", unit.Comments[0].Text)
	assert.False(t, unit.Comments[0].Doc)
	assert.True(t, unit.Comments[1].Doc)
	assert.True(t, unit.Comments[1].Block)
	assert.Len(t, unit.Children, 1)
}

func TestParseRecovery(t *testing.T) {
	t.Run("bad state variable", func(t *testing.T) {
		unit, parseErrors, _ := ParseSource("test.sol", `contract A {
    uint256 ;
    function f() public {}
}`)
		assert.NotEmpty(t, parseErrors)
		contract := unit.Children[0].(*ast.ContractDefinition)
		require.Len(t, contract.SubNodes, 2)
		_, ok := contract.SubNodes[0].(*ast.BadContractPart)
		assert.True(t, ok)
		_, ok = contract.SubNodes[1].(*ast.FunctionDefinition)
		assert.True(t, ok)
	})

	t.Run("missing semicolon", func(t *testing.T) {
		unit, parseErrors, _ := ParseSource("test.sol", `contract A {
    function f() public { x = 1 }
    function g() public {}
}`)
		assert.NotEmpty(t, parseErrors)
		contract := unit.Children[0].(*ast.ContractDefinition)
		assert.Len(t, contract.SubNodes, 2)
	})

	t.Run("unterminated contract", func(t *testing.T) {
		unit, parseErrors, _ := ParseSource("test.sol", `contract A { function f() public {`)
		assert.NotEmpty(t, parseErrors)
		assert.Len(t, unit.Children, 1)
	})
}
