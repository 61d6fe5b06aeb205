package grammar

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// Directive is an inline suppression comment body.
// Example: "gasopt-disable-next-line public-vs-external, use-custom-errors -- ABI compatibility"
type Directive struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Action string   `@Action`
	Rules  []string `( @Name ( "," @Name )* )?`
	Reason string   `@Reason?`
}

// Action is what a directive does to the lines it covers.
type Action string

const (
	DisableNextLine Action = "gasopt-disable-next-line"
	DisableLine     Action = "gasopt-disable-line"
	Disable         Action = "gasopt-disable"
	Enable          Action = "gasopt-enable"
)

func (d *Directive) Kind() Action {
	return Action(d.Action)
}

// AllRules reports whether the directive applies to every rule. A directive
// without a rule list and one naming "all" are equivalent.
func (d *Directive) AllRules() bool {
	if len(d.Rules) == 0 {
		return true
	}
	for _, r := range d.Rules {
		if r == "all" {
			return true
		}
	}
	return false
}

// Covers reports whether the directive applies to rule.
func (d *Directive) Covers(rule string) bool {
	if d.AllRules() {
		return true
	}
	for _, r := range d.Rules {
		if r == rule {
			return true
		}
	}
	return false
}
