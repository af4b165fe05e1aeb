// Package modelbuilder offers small, free-function constructors for
// assembling model.VCD values by hand: short top-level helpers instead
// of a fluent chain. It exists for tests — nothing in pkgs/machine or
// cmd/vcdload uses it.
package modelbuilder

import "github.com/brennanmoore/vcdload/pkgs/model"

// VCD assembles a model.VCD from its top-level fields and a list of
// variables, keying each by its AsciiIdentifier.
func VCD(date, version string, timescale model.TimeScale, comments []string, vars ...*model.Variable) *model.VCD {
	v := model.New()
	v.Date = date
	v.Version = version
	v.Timescale = timescale
	v.Comments = comments
	for _, variable := range vars {
		v.Variables[variable.AsciiIdentifier] = variable
	}
	return v
}

// TS is shorthand for a model.TimeScale literal.
func TS(value int, unit model.TimeUnit) model.TimeScale {
	return model.TimeScale{Value: value, Unit: unit}
}

// Scope is shorthand for a model.Scope literal.
func Scope(t model.ScopeType, identifier string) model.Scope {
	return model.Scope{Type: t, Identifier: identifier}
}

// Var assembles a declared variable with no transitions recorded yet.
func Var(scope []model.Scope, varType model.VarType, bitWidth int, asciiIdentifier, reference string) *model.Variable {
	return &model.Variable{
		Scope:           scope,
		VarType:         varType,
		BitWidth:        bitWidth,
		AsciiIdentifier: asciiIdentifier,
		Reference:       reference,
		Transitions:     make(map[int]model.LogicalValue),
	}
}

// At records a transition on v at the given time and returns v, so calls
// chain: Var(...).
func At(v *model.Variable, time int, value model.LogicalValue) *model.Variable {
	v.Transitions[time] = value
	return v
}
