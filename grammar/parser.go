package grammar

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Prefix starts every directive.
const Prefix = "gasopt-"

var directiveParser = participle.MustBuild[Directive](
	participle.Lexer(DirectiveLexer),
	participle.Elide("Whitespace"),
	participle.Map(trimReason, "Reason"),
)

func trimReason(tok lexer.Token) (lexer.Token, error) {
	tok.Value = strings.TrimSpace(strings.TrimPrefix(tok.Value, "--"))
	return tok, nil
}

// ParseComment parses the text of a Solidity comment, delimiters included.
// Comments that do not start with the directive prefix are not directives
// and yield nil without an error.
func ParseComment(text string) (*Directive, error) {
	body := StripDelimiters(text)
	if !strings.HasPrefix(body, Prefix) {
		return nil, nil
	}
	return ParseDirective(body)
}

// ParseDirective parses a bare directive such as "gasopt-disable-line".
func ParseDirective(body string) (*Directive, error) {
	d, err := directiveParser.ParseString("", body)
	if err != nil {
		return nil, fmt.Errorf("invalid suppression directive %q: %w", body, err)
	}
	return d, nil
}

// StripDelimiters removes the comment markers and any leading "*" of a
// block comment, then surrounding whitespace.
func StripDelimiters(text string) string {
	switch {
	case strings.HasPrefix(text, "/*"):
		text = strings.TrimSuffix(strings.TrimPrefix(text, "/*"), "*/")
		text = strings.TrimLeft(text, "*")
	case strings.HasPrefix(text, "//"):
		text = strings.TrimLeft(text, "/")
	}
	return strings.TrimSpace(text)
}
