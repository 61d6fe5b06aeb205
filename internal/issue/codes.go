package issue

// Issue codes for the gas optimizer
// These codes appear in terminal output, SARIF rule ids and LSP diagnostics
// so a finding can be referenced independently of its message text.
//
// Code ranges:
// GAS001-GAS099: Storage access patterns
// GAS100-GAS199: Function visibility
// GAS200-GAS299: Storage layout
// GAS300-GAS399: Revert data
// GAS400-GAS499: Arithmetic
// GAS900-GAS999: Uncategorized

const (
	// GAS001: Storage variable read inside a loop
	CodeStorageReadInLoop = "GAS001"

	// GAS002: Array length re-read on every iteration
	CodeArrayLengthCaching = "GAS002"

	// GAS003: Struct member re-read from storage
	CodeStructCaching = "GAS003"

	// GAS004: Mapping value re-read inside a loop
	CodeMappingReadInLoop = "GAS004"

	// GAS101: Public function that could be external
	CodePublicVsExternal = "GAS101"

	// GAS201: State variables that could share storage slots
	CodeStateVariablePacking = "GAS201"

	// GAS301: String revert reason instead of a custom error
	CodeUseCustomErrors = "GAS301"

	// GAS401: Arithmetic that cannot overflow
	CodeUncheckedMath = "GAS401"

	// GAS999: Anything else
	CodeOther = "GAS999"
)

var typeCodes = map[Type]string{
	StorageReadInLoop:    CodeStorageReadInLoop,
	ArrayLengthCaching:   CodeArrayLengthCaching,
	StructCaching:        CodeStructCaching,
	MappingReadInLoop:    CodeMappingReadInLoop,
	PublicVsExternal:     CodePublicVsExternal,
	StateVariablePacking: CodeStateVariablePacking,
	UseCustomErrors:      CodeUseCustomErrors,
	UncheckedMath:        CodeUncheckedMath,
	Other:                CodeOther,
}

var typeTitles = map[Type]string{
	StorageReadInLoop:    "Storage Reads in Loops",
	ArrayLengthCaching:   "Array Length Caching",
	StructCaching:        "Struct Caching",
	MappingReadInLoop:    "Mapping Reads in Loops",
	PublicVsExternal:     "Public vs External",
	StateVariablePacking: "State Variable Packing",
	UseCustomErrors:      "Use Custom Errors",
	UncheckedMath:        "Unchecked Math",
	Other:                "Other",
}

// Code returns the stable code for t, or CodeOther for unknown tags.
func (t Type) Code() string {
	if code, ok := typeCodes[t]; ok {
		return code
	}
	return CodeOther
}

// Title returns a human readable name, falling back to the raw tag.
func (t Type) Title() string {
	if title, ok := typeTitles[t]; ok {
		return title
	}
	return string(t)
}
