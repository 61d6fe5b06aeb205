package rules

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

// errorPhrases maps common revert message phrases to custom error names.
// The first phrase contained in the message wins, so longer phrases that
// contain a shorter one come first.
var errorPhrases = []struct {
	phrase string
	name   string
}{
	{"insufficient balance", "InsufficientBalance"},
	{"insufficient funds", "InsufficientFunds"},
	{"not authorized", "Unauthorized"},
	{"not owner", "NotOwner"},
	{"only owner", "OnlyOwner"},
	{"invalid address", "InvalidAddress"},
	{"zero address", "ZeroAddress"},
	{"invalid amount", "InvalidAmount"},
	{"amount too large", "AmountTooLarge"},
	{"amount too small", "AmountTooSmall"},
	{"already initialized", "AlreadyInitialized"},
	{"not initialized", "NotInitialized"},
	{"not paused", "NotPaused"},
	{"paused", "ContractPaused"},
	{"deadline expired", "DeadlineExpired"},
	{"invalid signature", "InvalidSignature"},
	{"array length mismatch", "ArrayLengthMismatch"},
}

var wordSeparators = regexp.MustCompile(`[\s_-]+`)

// ErrorName derives a PascalCase custom error name from a revert message.
func ErrorName(message string) string {
	lower := strings.ToLower(message)
	for _, p := range errorPhrases {
		if strings.Contains(lower, p.phrase) {
			return p.name
		}
	}

	var b strings.Builder
	for _, word := range wordSeparators.Split(message, -1) {
		word = strings.Map(func(r rune) rune {
			if r < utf8.RuneSelf && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
				return r
			}
			return -1
		}, word)
		if word == "" {
			continue
		}
		b.WriteString(strings.ToUpper(word[:1]))
		b.WriteString(strings.ToLower(word[1:]))
	}

	name := b.String()
	if name == "" || unicode.IsDigit(rune(name[0])) {
		name = "Error" + name
	}
	return name
}

// errorParam is a suggested custom error parameter together with the
// expression passed for it at the revert site.
type errorParam struct {
	decl  string
	value string
}

// errorParams guesses parameters for a custom error from keywords in the
// message. Only the first matching keyword group is used.
func errorParams(message string) []errorParam {
	lower := strings.ToLower(message)
	switch {
	case strings.Contains(lower, "balance") || strings.Contains(lower, "amount"):
		return []errorParam{
			{"uint256 required", "requiredAmount"},
			{"uint256 available", "availableAmount"},
		}
	case strings.Contains(lower, "address"):
		return []errorParam{{"address account", "msg.sender"}}
	case strings.Contains(lower, "deadline") || strings.Contains(lower, "expired"):
		return []errorParam{
			{"uint256 deadline", "deadline"},
			{"uint256 timestamp", "block.timestamp"},
		}
	case strings.Contains(lower, "length"):
		return []errorParam{
			{"uint256 expected", "expectedLength"},
			{"uint256 actual", "actualLength"},
		}
	}
	return nil
}

// errorSignature renders the canonical signature used for selectors,
// e.g. "InsufficientBalance(uint256,uint256)".
func errorSignature(name string, params []errorParam) string {
	types := make([]string, 0, len(params))
	for _, p := range params {
		typ, _, _ := strings.Cut(p.decl, " ")
		types = append(types, typ)
	}
	return fmt.Sprintf("%s(%s)", name, strings.Join(types, ","))
}

// ErrorSelector returns the 4-byte selector of a custom error signature as
// a 0x-prefixed hex string.
func ErrorSelector(signature string) string {
	return hexutil.Encode(crypto.Keccak256([]byte(signature))[:4])
}

// truncateMessage shortens long messages for display.
func truncateMessage(message string) string {
	const maxRunes = 50
	if utf8.RuneCountInString(message) <= maxRunes {
		return message
	}
	return string([]rune(message)[:maxRunes]) + "..."
}
