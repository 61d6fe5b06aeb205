package cli

import "errors"

var (
	// ErrNotSolidity is returned for inputs without a .sol extension.
	ErrNotSolidity = errors.New("not a Solidity file")

	// ErrFileNotFound is returned when an input does not exist.
	ErrFileNotFound = errors.New("file not found")

	// ErrSyntax is returned when an input does not parse.
	ErrSyntax = errors.New("syntax errors")

	// ErrThresholdMet is returned when an issue reaches the --fail-on severity.
	ErrThresholdMet = errors.New("fail-on threshold met")
)
