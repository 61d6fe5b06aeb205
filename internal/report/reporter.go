package report

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/babyhome/solidity-gas-optimizer/internal/ast"
	"github.com/babyhome/solidity-gas-optimizer/internal/issue"
	"github.com/babyhome/solidity-gas-optimizer/internal/parser"
)

// Level is the label printed in a diagnostic header.
type Level string

const (
	LevelError  Level = "error"
	LevelHigh   Level = Level(issue.High)
	LevelMedium Level = Level(issue.Medium)
	LevelLow    Level = Level(issue.Low)
)

// Diagnostic is one located message rendered with source context.
type Diagnostic struct {
	Level    Level
	Code     string // GAS001, empty for parse errors
	Message  string
	Position ast.Position
	Length   int // marked region, at least 1

	Suggestion string // may span several lines
	Note       string
}

// FromIssue converts a gas issue into a diagnostic.
func FromIssue(is issue.Issue) Diagnostic {
	return Diagnostic{
		Level:      Level(is.Severity),
		Code:       is.Type.Code(),
		Message:    is.Message,
		Position:   ast.Position{Line: is.Line, Column: is.Column},
		Suggestion: is.Suggestion,
		Note:       is.GasImpact,
	}
}

// Reporter formats diagnostics against the source of one file.
type Reporter struct {
	filename string
	lines    []string
}

func NewReporter(filename, source string) *Reporter {
	return &Reporter{
		filename: filename,
		lines:    strings.Split(source, "\n"),
	}
}

// FormatIssue renders a gas issue.
func (r *Reporter) FormatIssue(is issue.Issue) string {
	return r.Format(FromIssue(is))
}

// Format renders d in the style:
//
//	high[GAS001]: message
//	   --> file:line:col
//	    │
//	 12 │ source line
//	    │     ^
//	    = help: suggestion
//	    = note: gas impact
func (r *Reporter) Format(d Diagnostic) string {
	var out strings.Builder

	paint := levelColor(d.Level)
	bold := color.New(color.Bold).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()

	if d.Code != "" {
		out.WriteString(fmt.Sprintf("%s[%s]: %s\n", paint(string(d.Level)), d.Code, bold(d.Message)))
	} else {
		out.WriteString(fmt.Sprintf("%s: %s\n", paint(string(d.Level)), bold(d.Message)))
	}

	width := lineNumberWidth(d.Position.Line)
	indent := strings.Repeat(" ", width)

	out.WriteString(fmt.Sprintf("%s %s %s:%d:%d\n", indent, dim("-->"), r.filename, d.Position.Line, d.Position.Column))

	if d.Position.Line > 0 && d.Position.Line <= len(r.lines) {
		out.WriteString(fmt.Sprintf("%s %s\n", indent, dim("│")))

		if d.Position.Line > 1 {
			out.WriteString(fmt.Sprintf("%s %s %s\n",
				dim(fmt.Sprintf("%*d", width, d.Position.Line-1)), dim("│"), r.lines[d.Position.Line-2]))
		}

		out.WriteString(fmt.Sprintf("%s %s %s\n",
			bold(fmt.Sprintf("%*d", width, d.Position.Line)), dim("│"), r.lines[d.Position.Line-1]))
		out.WriteString(fmt.Sprintf("%s %s %s\n", indent, dim("│"), marker(d.Position.Column, d.Length, paint)))

		if d.Position.Line < len(r.lines) {
			out.WriteString(fmt.Sprintf("%s %s %s\n",
				dim(fmt.Sprintf("%*d", width, d.Position.Line+1)), dim("│"), r.lines[d.Position.Line]))
		}
	}

	if d.Suggestion != "" {
		help := color.New(color.FgCyan).SprintFunc()
		continuation := fmt.Sprintf("\n%s %s       ", indent, dim("│"))
		out.WriteString(fmt.Sprintf("%s %s %s %s\n",
			indent, dim("="), help("help:"), strings.ReplaceAll(d.Suggestion, "\n", continuation)))
	}

	if d.Note != "" {
		note := color.New(color.FgGreen).SprintFunc()
		out.WriteString(fmt.Sprintf("%s %s %s %s\n", indent, dim("="), note("note:"), d.Note))
	}

	out.WriteString("\n")
	return out.String()
}

func levelColor(level Level) func(...interface{}) string {
	switch level {
	case LevelHigh, LevelError:
		return color.New(color.FgRed, color.Bold).SprintFunc()
	case LevelMedium:
		return color.New(color.FgYellow, color.Bold).SprintFunc()
	case LevelLow:
		return color.New(color.FgBlue, color.Bold).SprintFunc()
	default:
		return color.New(color.Bold).SprintFunc()
	}
}

func marker(column, length int, paint func(...interface{}) string) string {
	if length <= 0 {
		length = 1
	}
	return strings.Repeat(" ", max(0, column-1)) + paint(strings.Repeat("^", length))
}

func lineNumberWidth(line int) int {
	return max(3, len(fmt.Sprintf("%d", line)))
}

// FromParseError converts a parse error into a diagnostic.
func FromParseError(err parser.ParseError) Diagnostic {
	return Diagnostic{
		Level:    LevelError,
		Message:  err.Message,
		Position: ast.Position{Line: err.Position.Line, Column: err.Position.Column, Offset: err.Position.Offset},
	}
}

// FromScanError converts a scanner error into a diagnostic.
func FromScanError(err parser.ScanError) Diagnostic {
	return Diagnostic{
		Level:    LevelError,
		Message:  err.Message,
		Position: ast.Position{Line: err.Position.Line, Column: err.Position.Column, Offset: err.Position.Offset},
		Length:   err.Length,
	}
}
