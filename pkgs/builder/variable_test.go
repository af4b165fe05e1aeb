package builder

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/brennanmoore/vcdload/pkgs/model"
	"github.com/brennanmoore/vcdload/pkgs/vcderrors"
)

func TestVariableAppend(t *testing.T) {
	scope := []model.Scope{{Type: model.ScopeModule, Identifier: "top"}}
	b := NewVariable(scope)

	words := []string{"wire", "1", "!", "clk"}
	for _, w := range words {
		if err := b.Append(w, 1); err != nil {
			t.Fatalf("Append(%q): unexpected error %v", w, err)
		}
	}
	if !b.Done() {
		t.Fatalf("Done() = false after four words")
	}

	want := &model.Variable{
		Scope:           scope,
		VarType:         model.Wire,
		BitWidth:        1,
		AsciiIdentifier: "!",
		Reference:       "clk",
		Transitions:     map[int]model.LogicalValue{},
	}
	if diff := cmp.Diff(want, b.Build()); diff != "" {
		t.Errorf("Build() mismatch (-want +got):\n%s", diff)
	}
}

func TestVariableAppendInvalidType(t *testing.T) {
	b := NewVariable(nil)
	err := b.Append("bogus", 1)
	if !vcderrors.Is(err, vcderrors.InvalidParameterForCommand) {
		t.Fatalf("Append(bogus type) error = %v, want InvalidParameterForCommand", err)
	}
}

func TestVariableAppendInvalidWidth(t *testing.T) {
	b := NewVariable(nil)
	_ = b.Append("wire", 1)
	err := b.Append("0", 1)
	if !vcderrors.Is(err, vcderrors.InvalidParameterForCommand) {
		t.Fatalf("Append(0 width) error = %v, want InvalidParameterForCommand", err)
	}
}

func TestVariableAppendTooMany(t *testing.T) {
	b := NewVariable(nil)
	for _, w := range []string{"wire", "1", "!", "clk"} {
		_ = b.Append(w, 1)
	}
	err := b.Append("extra", 1)
	if !vcderrors.Is(err, vcderrors.TooManyParameters) {
		t.Fatalf("Append(extra) error = %v, want TooManyParameters", err)
	}
}

func TestVariableNotDoneBeforeFourWords(t *testing.T) {
	b := NewVariable(nil)
	_ = b.Append("wire", 1)
	if b.Done() {
		t.Fatalf("Done() = true after one word")
	}
}
