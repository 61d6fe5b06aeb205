package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleFunction() *FunctionDefinition {
	return &FunctionDefinition{
		Name:       &Ident{Value: "sum"},
		Visibility: "public",
		Parameters: []*VariableDeclaration{{Name: &Ident{Value: "n"}, TypeName: &ElementaryTypeName{Name: "uint256"}}},
		Body: &Block{Statements: []Statement{
			&WhileStatement{
				Condition: &BinaryOperation{Operator: "<", Left: &Identifier{Name: "i"}, Right: &Identifier{Name: "n"}},
				Body: &ExpressionStatement{Expression: &UnaryOperation{
					Operator:      "++",
					SubExpression: &Identifier{Name: "i"},
				}},
			},
		}},
	}
}

func TestVisitOrder(t *testing.T) {
	var events []string
	record := func(prefix string) func(Node) {
		return func(n Node) { events = append(events, prefix+n.NodeType().String()) }
	}

	Visit(sampleFunction(), Visitors{
		On(FUNCTION_DEFINITION):     record("enter "),
		OnExit(FUNCTION_DEFINITION): record("exit "),
		On(WHILE_STATEMENT):         record("enter "),
		OnExit(WHILE_STATEMENT):     record("exit "),
		On(IDENTIFIER):              record("id "),
	})

	assert.Equal(t, []string{
		"enter FunctionDefinition",
		"enter WhileStatement",
		"id Identifier",
		"id Identifier",
		"id Identifier",
		"exit WhileStatement",
		"exit FunctionDefinition",
	}, events)
}

func TestInspectSkipsChildren(t *testing.T) {
	var names []string
	Inspect(sampleFunction(), func(n Node) bool {
		if _, ok := n.(*WhileStatement); ok {
			return false
		}
		if id, ok := n.(*Identifier); ok {
			names = append(names, id.Name)
		}
		return true
	})

	assert.Empty(t, names, "identifiers live under the skipped loop")
}

func TestChildrenIgnoresNilFields(t *testing.T) {
	stmt := &IfStatement{
		Condition: &Identifier{Name: "ok"},
		TrueBody:  &Block{},
	}
	children := Children(stmt)
	assert.Len(t, children, 2)

	ret := &ReturnStatement{}
	assert.Empty(t, Children(ret))
}

func TestChildrenOfStateVariableSkipsDuplicateInitializer(t *testing.T) {
	init := &NumberLiteral{Number: "1"}
	decl := &StateVariableDeclaration{
		Variables: []*VariableDeclaration{{
			Name:       &Ident{Value: "x"},
			TypeName:   &ElementaryTypeName{Name: "uint8"},
			IsStateVar: true,
			Expression: init,
		}},
		InitialValue: init,
	}

	count := 0
	Inspect(decl, func(n Node) bool {
		if n == Node(init) {
			count++
		}
		return true
	})
	assert.Equal(t, 1, count)
}

func TestNodeTypeString(t *testing.T) {
	assert.Equal(t, "ForStatement", FOR_STATEMENT.String())
	assert.Equal(t, "Identifier", IDENTIFIER.String())
	assert.Equal(t, "NodeType(?)", NodeType(-1).String())
}
