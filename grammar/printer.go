package grammar

import (
	"strings"
)

// String renders the directive in canonical form.
func (d *Directive) String() string {
	var b strings.Builder
	b.WriteString(d.Action)
	if len(d.Rules) > 0 {
		b.WriteString(" " + strings.Join(d.Rules, ", "))
	}
	if d.Reason != "" {
		b.WriteString(" -- " + d.Reason)
	}
	return b.String()
}
