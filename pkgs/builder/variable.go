package builder

import (
	"strconv"

	"github.com/brennanmoore/vcdload/pkgs/model"
	"github.com/brennanmoore/vcdload/pkgs/vcderrors"
)

type variableStage int

const (
	variableStageVarType variableStage = iota
	variableStageSize
	variableStageIdentifier
	variableStageReference
	variableStageDone
)

// Variable builds a model.Variable from the four positional words a $var
// command carries: type, bit width, compact identifier, and reference
// name. Its Scope field is set once, at construction, to a snapshot of
// the scope stack at the moment $var opened — it is never part of the
// positional grammar itself.
type Variable struct {
	scope           []model.Scope
	varType         model.VarType
	bitWidth        int
	asciiIdentifier string
	reference       string
	stage           variableStage
}

// NewVariable returns an empty Variable builder carrying the given scope
// snapshot.
func NewVariable(scope []model.Scope) *Variable {
	return &Variable{scope: scope}
}

// Append feeds the next word to the builder.
func (b *Variable) Append(word string, line int) error {
	switch b.stage {
	case variableStageVarType:
		t, ok := model.VarTypeFromString(word)
		if !ok {
			return vcderrors.NewInvalidParameterForCommandError(line, "$var", word)
		}
		b.varType = t
	case variableStageSize:
		n, err := strconv.Atoi(word)
		if err != nil || n <= 0 {
			return vcderrors.NewInvalidParameterForCommandError(line, "$var", word)
		}
		b.bitWidth = n
	case variableStageIdentifier:
		b.asciiIdentifier = word
	case variableStageReference:
		b.reference = word
	default:
		return vcderrors.NewTooManyParametersError(line, "var")
	}
	b.stage++
	return nil
}

// Done reports whether all four words have been consumed.
func (b *Variable) Done() bool {
	return b.stage >= variableStageDone
}

// Build returns the finalized Variable. Callers must only call this once
// Done reports true.
func (b *Variable) Build() *model.Variable {
	return &model.Variable{
		Scope:           b.scope,
		VarType:         b.varType,
		BitWidth:        b.bitWidth,
		AsciiIdentifier: b.asciiIdentifier,
		Reference:       b.reference,
		Transitions:     make(map[int]model.LogicalValue),
	}
}
