package suppress

import (
	"fmt"
	"sort"

	"github.com/babyhome/solidity-gas-optimizer/grammar"
	"github.com/babyhome/solidity-gas-optimizer/internal/ast"
	"github.com/babyhome/solidity-gas-optimizer/internal/issue"
)

// DirectiveError is a comment that starts like a directive but does not parse.
type DirectiveError struct {
	Position ast.Position
	Err      error
}

func (e DirectiveError) Error() string {
	return fmt.Sprintf("%d:%d: %v", e.Position.Line, e.Position.Column, e.Err)
}

func (e DirectiveError) Unwrap() error {
	return e.Err
}

type lineDirective struct {
	line      int
	directive *grammar.Directive
}

// Set holds the suppression directives of one file.
type Set struct {
	lines   []lineDirective // disable-line and disable-next-line, by target line
	regions []lineDirective // disable and enable, in source order
}

// FromComments collects the directives found in comments. Malformed
// directives are returned as DirectiveErrors and otherwise ignored.
func FromComments(comments []*ast.Comment) (*Set, []error) {
	s := &Set{}
	var errs []error

	for _, c := range comments {
		if c == nil {
			continue
		}
		d, err := grammar.ParseComment(c.Text)
		if err != nil {
			errs = append(errs, DirectiveError{Position: c.Pos, Err: err})
			continue
		}
		if d == nil {
			continue
		}

		switch d.Kind() {
		case grammar.DisableLine:
			s.lines = append(s.lines, lineDirective{line: c.Pos.Line, directive: d})
		case grammar.DisableNextLine:
			s.lines = append(s.lines, lineDirective{line: c.EndPos.Line + 1, directive: d})
		case grammar.Disable, grammar.Enable:
			s.regions = append(s.regions, lineDirective{line: c.Pos.Line, directive: d})
		}
	}

	sort.SliceStable(s.regions, func(i, j int) bool {
		return s.regions[i].line < s.regions[j].line
	})
	return s, errs
}

// Len returns the number of directives in the set.
func (s *Set) Len() int {
	return len(s.lines) + len(s.regions)
}

// Suppressed reports whether is is silenced by a directive. Rule names in
// directives match issue types.
func (s *Set) Suppressed(is issue.Issue) bool {
	rule := string(is.Type)

	for _, ld := range s.lines {
		if ld.line == is.Line && ld.directive.Covers(rule) {
			return true
		}
	}

	disabled := false
	for _, ld := range s.regions {
		if ld.line > is.Line {
			break
		}
		if ld.directive.Covers(rule) {
			disabled = ld.directive.Kind() == grammar.Disable
		}
	}
	return disabled
}

// Apply drops suppressed issues from result. The summary is recomputed.
func Apply(result issue.AnalysisResult, comments []*ast.Comment) (issue.AnalysisResult, []error) {
	set, errs := FromComments(comments)
	if set.Len() == 0 {
		return result, errs
	}
	return result.Filter(func(is issue.Issue) bool { return !set.Suppressed(is) }), errs
}
