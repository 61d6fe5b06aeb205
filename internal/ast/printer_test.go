package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpressionString(t *testing.T) {
	t.Run("member and index access", func(t *testing.T) {
		expr := &IndexAccess{
			Base:  &MemberAccess{Expression: &Identifier{Name: "pool"}, MemberName: "shares"},
			Index: &Identifier{Name: "i"},
		}
		assert.Equal(t, "pool.shares[i]", expr.String())
	})

	t.Run("binary operation keeps parenthesized tuple", func(t *testing.T) {
		expr := &BinaryOperation{
			Operator: "*",
			Left: &TupleExpression{Components: []Expr{
				&BinaryOperation{Operator: "+", Left: &Identifier{Name: "a"}, Right: &Identifier{Name: "b"}},
			}},
			Right: &NumberLiteral{Number: "2"},
		}
		assert.Equal(t, "(a + b) * 2", expr.String())
	})

	t.Run("postfix and prefix unary", func(t *testing.T) {
		assert.Equal(t, "i++", (&UnaryOperation{Operator: "++", SubExpression: &Identifier{Name: "i"}}).String())
		assert.Equal(t, "!paused", (&UnaryOperation{Operator: "!", SubExpression: &Identifier{Name: "paused"}, IsPrefix: true}).String())
		assert.Equal(t, "delete owner", (&UnaryOperation{Operator: "delete", SubExpression: &Identifier{Name: "owner"}, IsPrefix: true}).String())
	})

	t.Run("call with options and named arguments", func(t *testing.T) {
		call := &FunctionCall{
			Expression: &NameValueList{
				Expression: &MemberAccess{Expression: &Identifier{Name: "to"}, MemberName: "call"},
				Names:      []string{"value"},
				Values:     []Expr{&Identifier{Name: "amount"}},
			},
			Arguments: []Expr{&StringLiteral{Value: ""}},
		}
		assert.Equal(t, `to.call{value: amount}("")`, call.String())

		named := &FunctionCall{
			Expression: &Identifier{Name: "Order"},
			Arguments:  []Expr{&Identifier{Name: "a"}, &NumberLiteral{Number: "1"}},
			Names:      []string{"maker", "size"},
		}
		assert.Equal(t, "Order({maker: a, size: 1})", named.String())
	})

	t.Run("literals", func(t *testing.T) {
		assert.Equal(t, "30 days", (&NumberLiteral{Number: "30", Subdenomination: "days"}).String())
		assert.Equal(t, `"Not owner"`, (&StringLiteral{Value: "Not owner"}).String())
		assert.Equal(t, "true", (&BooleanLiteral{Value: true}).String())
		assert.Equal(t, "[1, 2]", (&TupleExpression{IsArray: true, Components: []Expr{&NumberLiteral{Number: "1"}, &NumberLiteral{Number: "2"}}}).String())
	})
}

func TestTypeNameString(t *testing.T) {
	m := &Mapping{
		KeyType:   &ElementaryTypeName{Name: "address"},
		ValueType: &ArrayTypeName{BaseTypeName: &ElementaryTypeName{Name: "uint256"}},
	}
	assert.Equal(t, "mapping(address => uint256[])", m.String())

	fixed := &ArrayTypeName{BaseTypeName: &UserDefinedTypeName{NamePath: "Pool.Slot"}, Length: &NumberLiteral{Number: "4"}}
	assert.Equal(t, "Pool.Slot[4]", fixed.String())

	assert.Equal(t, "address payable", (&ElementaryTypeName{Name: "address", StateMutability: "payable"}).String())
}

func TestStatementString(t *testing.T) {
	loop := &ForStatement{
		InitExpression: &VariableDeclarationStatement{
			Variables:    []*VariableDeclaration{{TypeName: &ElementaryTypeName{Name: "uint256"}, Name: &Ident{Value: "i"}}},
			InitialValue: &NumberLiteral{Number: "0"},
		},
		ConditionExpression: &BinaryOperation{Operator: "<", Left: &Identifier{Name: "i"}, Right: &Identifier{Name: "n"}},
		LoopExpression:      &ExpressionStatement{Expression: &UnaryOperation{Operator: "++", SubExpression: &Identifier{Name: "i"}}},
		Body:                &Block{},
	}
	assert.Equal(t, "for (uint256 i = 0; i < n; i++) {}", loop.String())

	ret := &ReturnStatement{}
	assert.Equal(t, "return;", ret.String())
}

func TestContractDefinitionString(t *testing.T) {
	contract := &ContractDefinition{
		Name: Ident{Value: "Vault"},
		Kind: "contract",
		SubNodes: []ContractPart{
			&StateVariableDeclaration{Variables: []*VariableDeclaration{{
				TypeName:   &ElementaryTypeName{Name: "uint256"},
				Visibility: "public",
				Name:       &Ident{Value: "total"},
				IsStateVar: true,
			}}},
		},
	}

	assert.Equal(t, "contract Vault {\n  uint256 public total;\n}", contract.String())
}
