// Package builder implements small staged builders for $scope,
// $timescale, and $var: each consumes positional words one at a time and
// reports when it has enough to finalize.
package builder

import (
	"github.com/brennanmoore/vcdload/pkgs/model"
	"github.com/brennanmoore/vcdload/pkgs/vcderrors"
)

type scopeStage int

const (
	scopeStageType scopeStage = iota
	scopeStageIdentifier
	scopeStageDone
)

// Scope builds a model.Scope from the two words a $scope command carries:
// a scope-type keyword and an identifier.
type Scope struct {
	scopeType  model.ScopeType
	identifier string
	stage      scopeStage
}

// NewScope returns an empty Scope builder, ready for its first word.
func NewScope() *Scope {
	return &Scope{}
}

// Append feeds the next word to the builder.
func (b *Scope) Append(word string, line int) error {
	switch b.stage {
	case scopeStageType:
		t, ok := model.ScopeTypeFromString(word)
		if !ok {
			return vcderrors.NewInvalidParameterForCommandError(line, "$scope", word)
		}
		b.scopeType = t
	case scopeStageIdentifier:
		b.identifier = word
	default:
		return vcderrors.NewTooManyParametersError(line, "$scope")
	}
	b.stage++
	return nil
}

// Done reports whether the builder has consumed both words.
func (b *Scope) Done() bool {
	return b.stage >= scopeStageDone
}

// Build returns the Scope assembled from the words consumed so far. It
// does not check Done: a word that never arrived keeps its zero value,
// and its absence is not separately diagnosed.
func (b *Scope) Build() model.Scope {
	return model.Scope{Type: b.scopeType, Identifier: b.identifier}
}
