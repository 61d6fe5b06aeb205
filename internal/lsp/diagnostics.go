package lsp

import (
	"strings"
	"unicode/utf8"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/babyhome/solidity-gas-optimizer/internal/issue"
	"github.com/babyhome/solidity-gas-optimizer/internal/parser"
	"github.com/babyhome/solidity-gas-optimizer/internal/suppress"
)

const (
	sourceParser    = "gasopt-parser"
	sourceScanner   = "gasopt-scanner"
	sourceDirective = "gasopt-directive"
	sourceAnalyzer  = "gasopt"
)

// ConvertParseErrors transforms parser errors into error diagnostics.
func ConvertParseErrors(parseErrors []parser.ParseError) []protocol.Diagnostic {
	var diagnostics []protocol.Diagnostic

	for _, parseErr := range parseErrors {
		diagnostics = append(diagnostics, protocol.Diagnostic{
			Range:    pointRange(parseErr.Position.Line, parseErr.Position.Column, 6),
			Severity: ptrSeverity(protocol.DiagnosticSeverityError),
			Source:   ptrString(sourceParser),
			Message:  parseErr.Message,
		})
	}

	return diagnostics
}

// ConvertScanErrors transforms scanner errors into error diagnostics, using
// the error's Length for the span when it has one.
func ConvertScanErrors(scanErrors []parser.ScanError) []protocol.Diagnostic {
	var diagnostics []protocol.Diagnostic

	for _, scanErr := range scanErrors {
		length := scanErr.Length
		if length == 0 {
			length = 4
		}
		diagnostics = append(diagnostics, protocol.Diagnostic{
			Range:    pointRange(scanErr.Position.Line, scanErr.Position.Column, length),
			Severity: ptrSeverity(protocol.DiagnosticSeverityError),
			Source:   ptrString(sourceScanner),
			Message:  scanErr.Message,
		})
	}

	return diagnostics
}

// ConvertDirectiveErrors reports malformed suppression comments as warnings.
func ConvertDirectiveErrors(errs []error) []protocol.Diagnostic {
	var diagnostics []protocol.Diagnostic

	for _, err := range errs {
		d := protocol.Diagnostic{
			Range:    pointRange(0, 0, 1),
			Severity: ptrSeverity(protocol.DiagnosticSeverityWarning),
			Source:   ptrString(sourceDirective),
			Message:  err.Error(),
		}
		if de, ok := err.(suppress.DirectiveError); ok {
			d.Range = pointRange(de.Position.Line, de.Position.Column, 2)
			d.Message = de.Err.Error()
		}
		diagnostics = append(diagnostics, d)
	}

	return diagnostics
}

// ConvertIssues turns gas issues into diagnostics spanning from the issue
// column to the end of its line in content.
func ConvertIssues(result issue.AnalysisResult, content string) []protocol.Diagnostic {
	lines := strings.Split(content, "\n")
	var diagnostics []protocol.Diagnostic

	for _, is := range result.Issues {
		length := 1
		if is.Line > 0 && is.Line <= len(lines) {
			line := strings.TrimRight(lines[is.Line-1], "\r")
			length = max(1, utf8.RuneCountInString(line)-max(0, is.Column-1))
		}

		message := is.Message
		if is.GasImpact != "" {
			message += " (" + is.GasImpact + ")"
		}

		diagnostics = append(diagnostics, protocol.Diagnostic{
			Range:    pointRange(is.Line, is.Column, length),
			Severity: ptrSeverity(severityOf(is.Severity)),
			Code:     &protocol.IntegerOrString{Value: is.Type.Code()},
			Source:   ptrString(sourceAnalyzer),
			Message:  message,
		})
	}

	return diagnostics
}

func severityOf(s issue.Severity) protocol.DiagnosticSeverity {
	switch s {
	case issue.High:
		return protocol.DiagnosticSeverityWarning
	case issue.Medium:
		return protocol.DiagnosticSeverityInformation
	default:
		return protocol.DiagnosticSeverityHint
	}
}

// pointRange converts a 1-based line and column into a 0-based range of
// length characters on that line. Unknown positions map to the file start.
func pointRange(line, column, length int) protocol.Range {
	l := uint32(max(0, line-1))
	c := uint32(max(0, column-1))
	return protocol.Range{
		Start: protocol.Position{Line: l, Character: c},
		End:   protocol.Position{Line: l, Character: c + uint32(max(1, length))},
	}
}

func ptrSeverity(s protocol.DiagnosticSeverity) *protocol.DiagnosticSeverity {
	return &s
}

func ptrString(s string) *string {
	return &s
}
