// Package vcderrors implements the error taxonomy a VCD load can fail
// with: a closed set of kinds, each carrying a 1-based line number and
// whatever additional context that kind needs. FileOpen carries the path and OS
// error text instead of a line.
package vcderrors

import "fmt"

// Kind identifies one of the ways a load can fail.
type Kind int

const (
	FileOpen Kind = iota
	FileRead
	MissingEnd
	InvalidMultipleCommand
	DanglingEnd
	InvalidParameterForCommand
	TooFewParameters
	TooManyParameters
	ScopeStackEmpty
	InvalidTimeValue
	InvalidTimeScale
	InvalidVarDump
	InvalidTimestamp
	DumpWithoutEnddefinitions
	VarDumpMissingVariables
	DumpoffWithNonX
)

var kindNames = [...]string{
	FileOpen:                   "file open failed",
	FileRead:                   "file read failed",
	MissingEnd:                 "missing $end",
	InvalidMultipleCommand:     "invalid multiple command",
	DanglingEnd:                "dangling $end",
	InvalidParameterForCommand: "invalid parameter for command",
	TooFewParameters:           "too few parameters",
	TooManyParameters:          "too many parameters",
	ScopeStackEmpty:            "scope stack empty",
	InvalidTimeValue:           "invalid time value",
	InvalidTimeScale:           "invalid time scale",
	InvalidVarDump:             "invalid var dump",
	InvalidTimestamp:           "invalid timestamp",
	DumpWithoutEnddefinitions:  "dump without enddefinitions",
	VarDumpMissingVariables:    "var dump missing variables",
	DumpoffWithNonX:            "dumpoff with non-X vars",
}

func (k Kind) String() string {
	if int(k) >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// VCDError is the single error type pkgs/builder, pkgs/dumpword,
// pkgs/machine, and pkgs/vcdio return.
// Only the fields relevant to Kind are populated; the rest are zero.
type VCDError struct {
	Kind Kind
	Line int

	Path    string // FileOpen
	OSError string // FileOpen
	// Command is set by MissingEnd, InvalidMultipleCommand, TooFewParameters,
	// TooManyParameters, ScopeStackEmpty, InvalidParameterForCommand, and
	// VarDumpMissingVariables.
	Command   string
	Parameter string // InvalidParameterForCommand
	Value     string // InvalidTimeValue, InvalidTimestamp
	TimeScale string // InvalidTimeScale
}

func (e *VCDError) Error() string {
	switch e.Kind {
	case FileOpen:
		return fmt.Sprintf("error opening file %s: %s", e.Path, e.OSError)
	case FileRead:
		return fmt.Sprintf("line %d: error reading file at this point", e.Line)
	case MissingEnd:
		return fmt.Sprintf("line %d: %s missing an $end", e.Line, e.Command)
	case InvalidMultipleCommand:
		return fmt.Sprintf("line %d: more than one %s command is invalid", e.Line, e.Command)
	case DanglingEnd:
		return fmt.Sprintf("line %d: dangling $end", e.Line)
	case InvalidParameterForCommand:
		return fmt.Sprintf("line %d: invalid parameter %s for command %s", e.Line, e.Parameter, e.Command)
	case TooFewParameters:
		return fmt.Sprintf("line %d: %s has too few parameters", e.Line, e.Command)
	case TooManyParameters:
		return fmt.Sprintf("line %d: %s has too many parameters", e.Line, e.Command)
	case ScopeStackEmpty:
		return fmt.Sprintf("line %d: %s declared with empty scope", e.Line, e.Command)
	case InvalidTimeValue:
		return fmt.Sprintf("line %d: found time value %s, expected integer", e.Line, e.Value)
	case InvalidTimeScale:
		return fmt.Sprintf("line %d: found timescale %s, expected one of: [ ms us ns ps ]", e.Line, e.TimeScale)
	case InvalidVarDump:
		return fmt.Sprintf("line %d: variable dump formatted improperly", e.Line)
	case InvalidTimestamp:
		return fmt.Sprintf("line %d: invalid timestamp %s", e.Line, e.Value)
	case DumpWithoutEnddefinitions:
		return fmt.Sprintf("line %d: tried to dump variables before $enddefinitions", e.Line)
	case VarDumpMissingVariables:
		return fmt.Sprintf("line %d: %s does not cover every declared variable", e.Line, e.Command)
	case DumpoffWithNonX:
		return fmt.Sprintf("line %d: $dumpoff drove a variable to a value other than x", e.Line)
	default:
		return fmt.Sprintf("line %d: %s", e.Line, e.Kind)
	}
}

// Constructors. One per kind, named for the failure rather than the
// struct.

func NewFileOpenError(path, osErr string) *VCDError {
	return &VCDError{Kind: FileOpen, Path: path, OSError: osErr}
}

func NewFileReadError(line int) *VCDError {
	return &VCDError{Kind: FileRead, Line: line}
}

func NewMissingEndError(line int, command string) *VCDError {
	return &VCDError{Kind: MissingEnd, Line: line, Command: command}
}

func NewInvalidMultipleCommandError(line int, command string) *VCDError {
	return &VCDError{Kind: InvalidMultipleCommand, Line: line, Command: command}
}

func NewDanglingEndError(line int) *VCDError {
	return &VCDError{Kind: DanglingEnd, Line: line}
}

func NewInvalidParameterForCommandError(line int, command, parameter string) *VCDError {
	return &VCDError{Kind: InvalidParameterForCommand, Line: line, Command: command, Parameter: parameter}
}

func NewTooFewParametersError(line int, command string) *VCDError {
	return &VCDError{Kind: TooFewParameters, Line: line, Command: command}
}

func NewTooManyParametersError(line int, command string) *VCDError {
	return &VCDError{Kind: TooManyParameters, Line: line, Command: command}
}

func NewScopeStackEmptyError(line int, command string) *VCDError {
	return &VCDError{Kind: ScopeStackEmpty, Line: line, Command: command}
}

func NewInvalidTimeValueError(line int, value string) *VCDError {
	return &VCDError{Kind: InvalidTimeValue, Line: line, Value: value}
}

func NewInvalidTimeScaleError(line int, timeScale string) *VCDError {
	return &VCDError{Kind: InvalidTimeScale, Line: line, TimeScale: timeScale}
}

func NewInvalidVarDumpError(line int) *VCDError {
	return &VCDError{Kind: InvalidVarDump, Line: line}
}

func NewInvalidTimestampError(line int, value string) *VCDError {
	return &VCDError{Kind: InvalidTimestamp, Line: line, Value: value}
}

func NewDumpWithoutEnddefinitionsError(line int) *VCDError {
	return &VCDError{Kind: DumpWithoutEnddefinitions, Line: line}
}

func NewVarDumpMissingVariablesError(line int, command string) *VCDError {
	return &VCDError{Kind: VarDumpMissingVariables, Line: line, Command: command}
}

func NewDumpoffWithNonXError(line int) *VCDError {
	return &VCDError{Kind: DumpoffWithNonX, Line: line}
}

// Is reports whether err is a *VCDError of the given kind, for callers
// that want to branch on failure category without a type switch.
func Is(err error, kind Kind) bool {
	ve, ok := err.(*VCDError)
	return ok && ve.Kind == kind
}
