package issue

import (
	"fmt"
	"strings"
)

// Type tags what kind of gas problem an issue describes.
type Type string

const (
	StorageReadInLoop    Type = "storage-read-in-loop"
	PublicVsExternal     Type = "public-vs-external"
	StateVariablePacking Type = "state-variable-packing"
	UseCustomErrors      Type = "use-custom-errors"

	// Reserved tags. Only UncheckedMath has a rule behind it.
	ArrayLengthCaching Type = "array-length-caching"
	StructCaching      Type = "struct-caching"
	MappingReadInLoop  Type = "mapping-read-in-loop"
	UncheckedMath      Type = "unchecked-math"
	Other              Type = "other"
)

// Types lists every tag in catalog order.
var Types = []Type{
	StorageReadInLoop,
	PublicVsExternal,
	StateVariablePacking,
	UseCustomErrors,
	ArrayLengthCaching,
	StructCaching,
	MappingReadInLoop,
	UncheckedMath,
	Other,
}

// Severity ranks how much gas an issue is likely to waste.
type Severity string

const (
	High   Severity = "high"
	Medium Severity = "medium"
	Low    Severity = "low"
)

// Severities lists severities from most to least severe.
var Severities = []Severity{High, Medium, Low}

func (s Severity) rank() int {
	switch s {
	case High:
		return 3
	case Medium:
		return 2
	case Low:
		return 1
	}
	return 0
}

// AtLeast reports whether s is as severe as min or more.
func (s Severity) AtLeast(min Severity) bool {
	return s.rank() >= min.rank()
}

// ParseSeverity accepts "high", "medium" or "low" in any case.
func ParseSeverity(value string) (Severity, error) {
	s := Severity(strings.ToLower(strings.TrimSpace(value)))
	if s.rank() == 0 {
		return "", fmt.Errorf("unknown severity %q (want high, medium or low)", value)
	}
	return s, nil
}

// Issue is a single finding. Line and Column are 1-based; 0 means unknown.
type Issue struct {
	Type       Type     `json:"type"`
	Severity   Severity `json:"severity"`
	Line       int      `json:"line"`
	Column     int      `json:"column"`
	Message    string   `json:"message"`
	Suggestion string   `json:"suggestion"`
	GasImpact  string   `json:"gasImpact,omitempty"`
	Pattern    string   `json:"pattern,omitempty"`
}

// Key identifies an issue for de-duplication. Message text is not part of it.
type Key struct {
	Line   int
	Column int
	Type   Type
}

func (i Issue) Key() Key {
	return Key{Line: i.Line, Column: i.Column, Type: i.Type}
}

// Summary aggregates an issue list.
type Summary struct {
	TotalIssues        int              `json:"totalIssues"`
	ByType             map[Type]int     `json:"byType"`
	BySeverity         map[Severity]int `json:"bySeverity"`
	EstimatedGasSaving int              `json:"estimatedGasSaving"`
}

// AnalysisResult is the outcome of analyzing one file. Issues keep discovery order.
type AnalysisResult struct {
	File    string  `json:"file"`
	Issues  []Issue `json:"issues"`
	Summary Summary `json:"summary"`
}

// Summarize counts issues by type and severity and sums the heuristic gas
// saving: 2100 for a high storage-read-in-loop, 800 for any other
// storage-read-in-loop and 100 for everything else.
func Summarize(issues []Issue) Summary {
	summary := Summary{
		TotalIssues: len(issues),
		ByType:      map[Type]int{},
		BySeverity:  map[Severity]int{},
	}

	for _, is := range issues {
		summary.ByType[is.Type]++
		summary.BySeverity[is.Severity]++

		switch {
		case is.Type == StorageReadInLoop && is.Severity == High:
			summary.EstimatedGasSaving += 2100
		case is.Type == StorageReadInLoop:
			summary.EstimatedGasSaving += 800
		default:
			summary.EstimatedGasSaving += 100
		}
	}

	return summary
}

// NewResult builds a result and its summary. A nil issue list becomes empty.
func NewResult(file string, issues []Issue) AnalysisResult {
	if issues == nil {
		issues = []Issue{}
	}
	return AnalysisResult{
		File:    file,
		Issues:  issues,
		Summary: Summarize(issues),
	}
}

// Filter returns a new result holding only issues that keep accepts, with the
// summary recomputed.
func (r AnalysisResult) Filter(keep func(Issue) bool) AnalysisResult {
	kept := make([]Issue, 0, len(r.Issues))
	for _, is := range r.Issues {
		if keep(is) {
			kept = append(kept, is)
		}
	}
	return NewResult(r.File, kept)
}

// Score is 100 minus 10 per high, 5 per medium and 2 per low issue, floored at 0.
func Score(issues []Issue) int {
	score := 100
	for _, is := range issues {
		switch is.Severity {
		case High:
			score -= 10
		case Medium:
			score -= 5
		case Low:
			score -= 2
		}
	}
	return max(0, score)
}
