// Package machine implements the state machine at the heart of a VCD
// load: it consumes the token stream produced by pkgs/token, dispatches
// to the staged builders in pkgs/builder, applies the dump-word
// classifier in pkgs/dumpword, and enforces every cross-command
// invariant (singular commands, non-empty scope stack, header-before-body
// ordering, full-variable coverage in dump blocks). It is the only
// component that sees the full token stream.
package machine

import (
	"strconv"
	"strings"

	"github.com/brennanmoore/vcdload/pkgs/builder"
	"github.com/brennanmoore/vcdload/pkgs/dumpword"
	"github.com/brennanmoore/vcdload/pkgs/model"
	"github.com/brennanmoore/vcdload/pkgs/token"
	"github.com/brennanmoore/vcdload/pkgs/vcderrors"
)

// command identifies the machine's current state: stateEnd is the
// neutral, between-commands state; everything else names an open
// command block.
type command int

const (
	stateEnd command = iota
	stateComment
	stateDate
	stateVersion
	stateTimescale
	stateScope
	stateUpscope
	stateVar
	stateDumpall
	stateDumpoff
	stateDumpon
	stateDumpvars
	stateEnddefinitions
)

// keywordToState is the total, compile-time-fixed mapping from a
// recognized $command keyword to the state it opens.
var keywordToState = map[string]command{
	"$comment":        stateComment,
	"$date":           stateDate,
	"$version":        stateVersion,
	"$timescale":      stateTimescale,
	"$scope":          stateScope,
	"$upscope":        stateUpscope,
	"$var":            stateVar,
	"$dumpall":        stateDumpall,
	"$dumpoff":        stateDumpoff,
	"$dumpon":         stateDumpon,
	"$dumpvars":       stateDumpvars,
	"$enddefinitions": stateEnddefinitions,
}

// commandNames gives each state's bare name (no leading $): generic,
// cross-cutting errors (missing $end, multiple singular commands, empty
// scope stack) name the command without its sigil, while a builder's own
// parameter errors name it however pkgs/builder does (see that package).
var commandNames = map[command]string{
	stateComment:        "comment",
	stateDate:           "date",
	stateVersion:        "version",
	stateTimescale:      "timescale",
	stateScope:          "scope",
	stateUpscope:        "upscope",
	stateVar:            "var",
	stateDumpall:        "dumpall",
	stateDumpoff:        "dumpoff",
	stateDumpon:         "dumpon",
	stateDumpvars:       "dumpvars",
	stateEnddefinitions: "enddefinitions",
}

func (c command) name() string {
	if n, ok := commandNames[c]; ok {
		return n
	}
	return "end"
}

func isDumpCommand(c command) bool {
	switch c {
	case stateDumpall, stateDumpoff, stateDumpon, stateDumpvars:
		return true
	default:
		return false
	}
}

// singular marks the three commands that may appear at most once.
func singular(c command) bool {
	switch c {
	case stateDate, stateVersion, stateTimescale:
		return true
	default:
		return false
	}
}

// dumpContext parametrizes how a dump word, once classified, is recorded:
// which simulation time it is attached at, whether it counts toward the
// enclosing command's coverage requirement, and whether a non-X value is
// an error ($dumpoff only).
type dumpContext struct {
	time          int
	trackCoverage bool
	enforceXOnly  bool
}

// pendingVector holds a "bBBB"/"rDDD" token while the classifier waits
// for the identifier token that follows it — the two-token vector
// lookahead.
type pendingVector struct {
	word string
	line int
	ctx  dumpContext
}

type machine struct {
	vcd *model.VCD

	state         command
	scopeStack    []model.Scope
	singularSeen  map[command]bool
	parsingHeader bool
	currentTime   int
	seenDumpIDs   map[string]bool

	scopeBuilder     *builder.Scope
	timeScaleBuilder *builder.TimeScale
	varBuilder       *builder.Variable
	commentAccum     string
	dateAccum        string
	versionAccum     string

	pending  *pendingVector
	lastLine int
}

func newMachine() *machine {
	return &machine{
		vcd:           model.New(),
		state:         stateEnd,
		singularSeen:  make(map[command]bool),
		parsingHeader: true,
	}
}

// Run drives the state machine over tokens and returns the fully
// populated model, or the first error encountered. The first error
// aborts the entire parse; no partial model is ever returned.
func Run(tokens []token.Token) (*model.VCD, error) {
	m := newMachine()
	for _, tok := range tokens {
		m.lastLine = tok.Line
		if err := m.feed(tok.Word, tok.Line); err != nil {
			return nil, err
		}
	}
	if err := m.cleanup(); err != nil {
		return nil, err
	}
	return m.vcd, nil
}

func (m *machine) feed(word string, line int) error {
	if strings.HasPrefix(word, "$") {
		return m.transition(word, line)
	}
	return m.work(word, line)
}

func (m *machine) transition(word string, line int) error {
	if m.pending != nil {
		return vcderrors.NewInvalidVarDumpError(m.pending.line)
	}

	if word == "$end" {
		if m.state == stateEnd {
			return vcderrors.NewDanglingEndError(line)
		}
		return m.closeCommand(line)
	}

	next, ok := keywordToState[word]
	if !ok {
		// Not one of the closed, compile-time-fixed command set:
		// well-formed VCD never produces this, so fall back to treating
		// it as an ordinary word for whatever is currently open.
		return m.work(word, line)
	}

	if m.state != stateEnd {
		return vcderrors.NewMissingEndError(line, m.state.name())
	}
	return m.openCommand(next, line)
}

func (m *machine) openCommand(next command, line int) error {
	if singular(next) {
		if m.singularSeen[next] {
			return vcderrors.NewInvalidMultipleCommandError(line, next.name())
		}
		m.singularSeen[next] = true
	}

	switch next {
	case stateVar:
		if len(m.scopeStack) == 0 {
			return vcderrors.NewScopeStackEmptyError(line, "var")
		}
		snapshot := append([]model.Scope(nil), m.scopeStack...)
		m.varBuilder = builder.NewVariable(snapshot)
	case stateScope:
		m.scopeBuilder = builder.NewScope()
	case stateTimescale:
		m.timeScaleBuilder = builder.NewTimeScale()
	case stateComment:
		m.commentAccum = ""
	case stateDate:
		m.dateAccum = ""
	case stateVersion:
		m.versionAccum = ""
	}

	if isDumpCommand(next) {
		if m.parsingHeader {
			return vcderrors.NewDumpWithoutEnddefinitionsError(line)
		}
		m.seenDumpIDs = make(map[string]bool)
	}

	m.state = next
	return nil
}

func (m *machine) closeCommand(line int) error {
	switch m.state {
	case stateVar:
		if !m.varBuilder.Done() {
			return vcderrors.NewTooFewParametersError(line, "var")
		}
		v := m.varBuilder.Build()
		m.vcd.Variables[v.AsciiIdentifier] = v
	case stateScope:
		m.scopeStack = append(m.scopeStack, m.scopeBuilder.Build())
	case stateUpscope:
		if len(m.scopeStack) == 0 {
			return vcderrors.NewScopeStackEmptyError(line, "upscope")
		}
		m.scopeStack = m.scopeStack[:len(m.scopeStack)-1]
	case stateComment:
		m.vcd.Comments = append(m.vcd.Comments, m.commentAccum)
	case stateDate:
		m.vcd.Date = m.dateAccum
	case stateVersion:
		m.vcd.Version = m.versionAccum
	case stateTimescale:
		m.vcd.Timescale = m.timeScaleBuilder.Build()
	case stateEnddefinitions:
		m.parsingHeader = false
	case stateDumpall:
		if !m.coverageSatisfied() {
			return vcderrors.NewVarDumpMissingVariablesError(line, stateDumpall.name())
		}
	case stateDumpoff:
		if !m.coverageSatisfied() {
			return vcderrors.NewVarDumpMissingVariablesError(line, stateDumpoff.name())
		}
	case stateDumpvars:
		if !m.coverageSatisfied() {
			return vcderrors.NewVarDumpMissingVariablesError(line, stateDumpvars.name())
		}
	case stateDumpon:
		// Coverage is not enforced for $dumpon, unlike the other three
		// dump commands — an intentional asymmetry.
	}

	if isDumpCommand(m.state) {
		m.seenDumpIDs = nil
	}
	m.state = stateEnd
	return nil
}

func (m *machine) coverageSatisfied() bool {
	if len(m.seenDumpIDs) != len(m.vcd.Variables) {
		return false
	}
	for id := range m.vcd.Variables {
		if !m.seenDumpIDs[id] {
			return false
		}
	}
	return true
}

func (m *machine) work(word string, line int) error {
	if m.state == stateEnd {
		if m.parsingHeader {
			// No open command and still in the header: there's no
			// defined grammar for a bare word here (never produced by
			// well-formed VCD), so it's simply ignored.
			return nil
		}
		return m.workBody(word, line)
	}

	switch m.state {
	case stateComment:
		m.commentAccum = appendWord(m.commentAccum, word)
	case stateDate:
		m.dateAccum = appendWord(m.dateAccum, word)
	case stateVersion:
		m.versionAccum = appendWord(m.versionAccum, word)
	case stateScope:
		return m.scopeBuilder.Append(word, line)
	case stateTimescale:
		return m.timeScaleBuilder.Append(word, line)
	case stateVar:
		return m.varBuilder.Append(word, line)
	case stateDumpall:
		return m.classifyDumpWord(word, line, dumpContext{time: m.currentTime, trackCoverage: true})
	case stateDumpoff:
		return m.classifyDumpWord(word, line, dumpContext{time: m.currentTime, trackCoverage: true, enforceXOnly: true})
	case stateDumpon:
		return m.classifyDumpWord(word, line, dumpContext{time: m.currentTime, trackCoverage: false})
	case stateDumpvars:
		return m.classifyDumpWord(word, line, dumpContext{time: model.DumpVarsTime, trackCoverage: true})
	case stateUpscope, stateEnddefinitions:
		return vcderrors.NewInvalidParameterForCommandError(line, m.state.name(), word)
	}
	return nil
}

func (m *machine) workBody(word string, line int) error {
	if strings.HasPrefix(word, "#") {
		n, err := strconv.Atoi(word[1:])
		if err != nil {
			return vcderrors.NewInvalidTimestampError(line, word)
		}
		m.currentTime = n
		return nil
	}
	return m.classifyDumpWord(word, line, dumpContext{time: m.currentTime, trackCoverage: false})
}

func (m *machine) classifyDumpWord(word string, line int, ctx dumpContext) error {
	if m.pending != nil {
		pv := m.pending
		m.pending = nil
		res, err := dumpword.ClassifyVector(pv.word, word, pv.line)
		if err != nil {
			return err
		}
		return m.recordDumpResult(res, pv.line, pv.ctx)
	}

	if dumpword.IsVector(word) {
		m.pending = &pendingVector{word: word, line: line, ctx: ctx}
		return nil
	}

	res, err := dumpword.ClassifyScalar(word, line)
	if err != nil {
		return err
	}
	return m.recordDumpResult(res, line, ctx)
}

func (m *machine) recordDumpResult(res dumpword.Result, line int, ctx dumpContext) error {
	if ctx.trackCoverage {
		m.seenDumpIDs[res.Identifier] = true
	}
	if ctx.enforceXOnly && !res.Value.IsX() {
		return vcderrors.NewDumpoffWithNonXError(line)
	}

	v, ok := m.vcd.Variables[res.Identifier]
	if !ok {
		// Unknown identifiers are silently ignored outside the coverage
		// check.
		return nil
	}
	v.Transitions[ctx.time] = res.Value
	return nil
}

func (m *machine) cleanup() error {
	if m.pending != nil {
		return vcderrors.NewInvalidVarDumpError(m.pending.line)
	}
	if m.state != stateEnd {
		return vcderrors.NewMissingEndError(m.lastLine, m.state.name())
	}
	return nil
}

// appendWord joins word onto acc with a single separating space, never a
// leading space before the first word — the accumulator rule for
// $date/$version/$comment bodies, ported from
// original_source/src/string_helpers.rs::append_word.
func appendWord(acc, word string) string {
	if acc == "" {
		return word
	}
	return acc + " " + word
}
