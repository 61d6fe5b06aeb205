package grammar

import (
	"github.com/alecthomas/participle/v2/lexer"
)

var DirectiveLexer = lexer.MustSimple([]lexer.SimpleRule{
	// Actions (longest first)
	{Name: "Action", Pattern: `gasopt-(disable-next-line|disable-line|disable|enable)\b`},

	// Rule names such as "storage-read-in-loop"
	{Name: "Name", Pattern: `[a-zA-Z][a-zA-Z0-9_-]*`},

	// Free text after "--" documents the suppression
	{Name: "Reason", Pattern: `--[^\n]*`},

	{Name: "Punctuation", Pattern: `,`},
	{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
})
