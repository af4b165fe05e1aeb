package machine

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/brennanmoore/vcdload/pkgs/model"
	"github.com/brennanmoore/vcdload/pkgs/token"
	"github.com/brennanmoore/vcdload/pkgs/vcderrors"
)

func run(t *testing.T, input string) *model.VCD {
	t.Helper()
	vcd, err := Run(token.ScanString(input))
	if err != nil {
		t.Fatalf("Run(%q): unexpected error %v", input, err)
	}
	return vcd
}

func TestMinimalMetadata(t *testing.T) {
	vcd := run(t, "$date Date text $end")
	if vcd.Date != "Date text" {
		t.Errorf("Date = %q, want %q", vcd.Date, "Date text")
	}
	if vcd.Version != "" || len(vcd.Comments) != 0 || len(vcd.Variables) != 0 {
		t.Errorf("non-date fields should be zero, got %+v", vcd)
	}
}

func TestMissingEndForVersion(t *testing.T) {
	input := "$version\n            This version has no end"
	_, err := Run(token.ScanString(input))
	ve, ok := err.(*vcderrors.VCDError)
	if !ok {
		t.Fatalf("Run(%q) error = %v, want *vcderrors.VCDError", input, err)
	}
	if ve.Kind != vcderrors.MissingEnd || ve.Command != "version" || ve.Line != 2 {
		t.Errorf("error = %+v, want {Kind: MissingEnd, Command: version, Line: 2}", ve)
	}
}

func TestTimescale(t *testing.T) {
	vcd := run(t, "$timescale 1 ps $end")
	want := model.TimeScale{Value: 1, Unit: model.PS}
	if diff := cmp.Diff(want, vcd.Timescale); diff != "" {
		t.Errorf("Timescale mismatch (-want +got):\n%s", diff)
	}
}

func TestOneScopeOneVariable(t *testing.T) {
	input := "$scope module lvl_1 $end\n$var wire 8 # data $end"
	vcd := run(t, input)

	want := &model.Variable{
		Scope:           []model.Scope{{Type: model.ScopeModule, Identifier: "lvl_1"}},
		VarType:         model.Wire,
		BitWidth:        8,
		AsciiIdentifier: "#",
		Reference:       "data",
		Transitions:     map[int]model.LogicalValue{},
	}
	if diff := cmp.Diff(want, vcd.Variables["#"]); diff != "" {
		t.Errorf("Variables[\"#\"] mismatch (-want +got):\n%s", diff)
	}
}

func TestPreSimulationDump(t *testing.T) {
	input := `$timescale 1 ps $end
$scope module top_mod $end
$var wire 1 * my_bit $end
$enddefinitions $end
$dumpvars
0*
$end`
	vcd := run(t, input)

	want := map[int]model.LogicalValue{model.DumpVarsTime: model.Value(0)}
	if diff := cmp.Diff(want, vcd.Variables["*"].Transitions); diff != "" {
		t.Errorf("Transitions mismatch (-want +got):\n%s", diff)
	}
}

func TestMultipleTimedTransitions(t *testing.T) {
	input := `$timescale 1 ps $end
$scope module top_mod $end
$var wire 1 * my_bit $end
$enddefinitions $end
#0
0*
#1
1*
#2
x*`
	vcd := run(t, input)

	want := map[int]model.LogicalValue{0: model.Value(0), 1: model.Value(1), 2: model.X}
	if diff := cmp.Diff(want, vcd.Variables["*"].Transitions); diff != "" {
		t.Errorf("Transitions mismatch (-want +got):\n%s", diff)
	}
}

func TestDumpoffCoverageViolation(t *testing.T) {
	input := `$scope module top $end
$var wire 1 ^ a $end
$var wire 1 ( b $end
$enddefinitions $end
$dumpoff
1^
1(
$end`
	_, err := Run(token.ScanString(input))
	ve, ok := err.(*vcderrors.VCDError)
	if !ok {
		t.Fatalf("Run error = %v, want *vcderrors.VCDError", err)
	}
	if ve.Kind != vcderrors.DumpoffWithNonX {
		t.Fatalf("error kind = %v, want DumpoffWithNonX", ve.Kind)
	}
	// "1^" is the sixth line of the input.
	if ve.Line != 6 {
		t.Errorf("error line = %d, want 6 (the line of the first non-X value)", ve.Line)
	}
}

func TestDumpvarsCoverageViolation(t *testing.T) {
	input := `$scope module top $end
$var wire 1 ^ a $end
$var wire 1 ( b $end
$enddefinitions $end
$dumpvars
0^
$end`
	_, err := Run(token.ScanString(input))
	ve, ok := err.(*vcderrors.VCDError)
	if !ok {
		t.Fatalf("Run error = %v, want *vcderrors.VCDError", err)
	}
	if ve.Kind != vcderrors.VarDumpMissingVariables {
		t.Fatalf("error kind = %v, want VarDumpMissingVariables", ve.Kind)
	}
	// $end is the seventh line of the input.
	if ve.Line != 7 {
		t.Errorf("error line = %d, want 7 (the $end line)", ve.Line)
	}
}

func TestSingularCommandRejectsSecondOccurrence(t *testing.T) {
	input := "$date first $end\n$version v1 $end\n$date second $end"
	_, err := Run(token.ScanString(input))
	if !vcderrors.Is(err, vcderrors.InvalidMultipleCommand) {
		t.Fatalf("error = %v, want InvalidMultipleCommand", err)
	}
}

func TestVarOutsideScopeFails(t *testing.T) {
	_, err := Run(token.ScanString("$var wire 1 ! clk $end"))
	if !vcderrors.Is(err, vcderrors.ScopeStackEmpty) {
		t.Fatalf("error = %v, want ScopeStackEmpty", err)
	}
}

func TestUpscopeOutsideScopeFails(t *testing.T) {
	_, err := Run(token.ScanString("$upscope $end"))
	if !vcderrors.Is(err, vcderrors.ScopeStackEmpty) {
		t.Fatalf("error = %v, want ScopeStackEmpty", err)
	}
}

func TestDumpoffFailsOnFirstNonXValueNotAtEnd(t *testing.T) {
	input := `$scope module top $end
$var wire 1 ^ a $end
$enddefinitions $end
$dumpoff
1^
$end`
	_, err := Run(token.ScanString(input))
	ve, ok := err.(*vcderrors.VCDError)
	if !ok {
		t.Fatalf("Run error = %v, want *vcderrors.VCDError", err)
	}
	if ve.Kind != vcderrors.DumpoffWithNonX {
		t.Fatalf("error kind = %v, want DumpoffWithNonX", ve.Kind)
	}
	if ve.Line != 5 {
		t.Errorf("error line = %d, want 5, the offending value's own line", ve.Line)
	}
}

func TestDumpBeforeEnddefinitionsFails(t *testing.T) {
	_, err := Run(token.ScanString("$dumpvars\n$end"))
	if !vcderrors.Is(err, vcderrors.DumpWithoutEnddefinitions) {
		t.Fatalf("error = %v, want DumpWithoutEnddefinitions", err)
	}
}

func TestDanglingEndFails(t *testing.T) {
	_, err := Run(token.ScanString("$end"))
	if !vcderrors.Is(err, vcderrors.DanglingEnd) {
		t.Fatalf("error = %v, want DanglingEnd", err)
	}
}

func TestVectorDumpWord(t *testing.T) {
	input := `$scope module top $end
$var reg 4 & counter $end
$enddefinitions $end
$dumpvars
b1010 &
$end`
	vcd := run(t, input)
	want := map[int]model.LogicalValue{model.DumpVarsTime: model.Value(10)}
	if diff := cmp.Diff(want, vcd.Variables["&"].Transitions); diff != "" {
		t.Errorf("Transitions mismatch (-want +got):\n%s", diff)
	}
}

func TestDumponSkipsCoverageCheck(t *testing.T) {
	input := `$scope module top $end
$var wire 1 ^ a $end
$var wire 1 ( b $end
$enddefinitions $end
$dumpon
1^
$end`
	if _, err := Run(token.ScanString(input)); err != nil {
		t.Fatalf("Run: unexpected error %v (dumpon must not enforce coverage)", err)
	}
}

func TestCommentsAccumulateMultiWordBodies(t *testing.T) {
	vcd := run(t, "$comment this is   a comment $end")
	want := []string{"this is a comment"}
	if diff := cmp.Diff(want, vcd.Comments); diff != "" {
		t.Errorf("Comments mismatch (-want +got):\n%s", diff)
	}
}
