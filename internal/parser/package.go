package parser

import (
	"fmt"
	"os"

	"github.com/babyhome/solidity-gas-optimizer/internal/ast"
)

// ParseSource scans and parses Solidity source. It always returns a tree;
// unparseable regions become Bad* nodes and are reported in the error slices.
func ParseSource(path string, source string) (*ast.SourceUnit, []ParseError, []ScanError) {
	scanner := NewScanner(source)
	tokens := scanner.ScanTokens()

	parser := NewParser(path, tokens)
	unit := parser.ParseSourceUnit()

	return unit, parser.errors, scanner.errors
}

// ParseFile reads path and parses it. The returned error covers I/O only.
func ParseFile(path string) (*ast.SourceUnit, []ParseError, []ScanError, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to read file: %w", err)
	}

	unit, parseErrors, scanErrors := ParseSource(path, string(source))
	return unit, parseErrors, scanErrors, nil
}
