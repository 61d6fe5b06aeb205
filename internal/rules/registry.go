package rules

import (
	"fmt"
	"slices"
	"strings"
)

// Entry describes a rule in the catalog.
type Entry struct {
	Name        string
	Description string
	Default     bool // part of the rule set used when none is selected
	New         func(ctx *Context) Rule
}

// catalog is the single place rules are registered. Order here is the order
// in which rule callbacks fire for the same node.
var catalog = []Entry{
	{
		Name:        StorageReadInLoopName,
		Description: "Detects storage variable reads inside loops",
		Default:     true,
		New:         func(ctx *Context) Rule { return NewStorageReadInLoop(ctx) },
	},
	{
		Name:        PublicVsExternalName,
		Description: "Suggests changing public functions to external when not called internally",
		Default:     true,
		New:         func(ctx *Context) Rule { return NewPublicVsExternal(ctx) },
	},
	{
		Name:        StateVariablePackingName,
		Description: "Detects state variable ordering that wastes storage slots",
		Default:     true,
		New:         func(ctx *Context) Rule { return NewStateVariablePacking(ctx) },
	},
	{
		Name:        UseCustomErrorsName,
		Description: "Suggests using custom errors instead of string revert messages",
		Default:     true,
		New:         func(ctx *Context) Rule { return NewUseCustomErrors(ctx) },
	},
	{
		Name:        UncheckedMathName,
		Description: "Suggests unchecked blocks for loop arithmetic that cannot overflow",
		Default:     false,
		New:         func(ctx *Context) Rule { return NewUncheckedMath(ctx) },
	},
}

// Catalog returns every known rule in registration order.
func Catalog() []Entry {
	return slices.Clone(catalog)
}

// Lookup finds a catalog entry by name.
func Lookup(name string) (Entry, bool) {
	for _, e := range catalog {
		if e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}

// DefaultNames returns the names of the default rule set.
func DefaultNames() []string {
	var names []string
	for _, e := range catalog {
		if e.Default {
			names = append(names, e.Name)
		}
	}
	return names
}

func describe(name string) string {
	if e, ok := Lookup(name); ok {
		return e.Description
	}
	return ""
}

// ResolveNames expands a selection into catalog order. An empty selection
// means the default set and "all" means every rule. Unknown names are errors.
func ResolveNames(selection []string) ([]string, error) {
	if len(selection) == 0 {
		return DefaultNames(), nil
	}

	wanted := map[string]bool{}
	for _, raw := range selection {
		name := strings.TrimSpace(raw)
		switch {
		case name == "":
			continue
		case name == "all":
			for _, e := range catalog {
				wanted[e.Name] = true
			}
		default:
			if _, ok := Lookup(name); !ok {
				return nil, fmt.Errorf("unknown rule %q", name)
			}
			wanted[name] = true
		}
	}

	var names []string
	for _, e := range catalog {
		if wanted[e.Name] {
			names = append(names, e.Name)
		}
	}
	return names, nil
}

// New builds the named rules against ctx, in catalog order.
func New(ctx *Context, names ...string) ([]Rule, error) {
	resolved, err := ResolveNames(names)
	if err != nil {
		return nil, err
	}

	built := make([]Rule, 0, len(resolved))
	for _, name := range resolved {
		e, _ := Lookup(name)
		built = append(built, e.New(ctx))
	}
	return built, nil
}
