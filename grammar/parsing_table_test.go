package grammar

import (
	"errors"
	"testing"
)

const testSrcAcceptReduce = `
NonTerminals: S, A
Terminals: a
StartSymbol: S
Productions:
S -> a | A
A -> S
`

func TestBuildTableSLR1(t *testing.T) {
	gram := genTestGrammar(t, testSrcExpr)
	ptab, err := gram.BuildTable(ModeSLR1)
	if err != nil {
		t.Fatalf("failed to build a parsing table: %v", err)
	}

	if ptab.Mode() != ModeSLR1 {
		t.Fatalf("unexpected mode; want: %v, got: %v", ModeSLR1, ptab.Mode())
	}
	if ptab.StateCount() != 12 {
		t.Fatalf("unexpected number of states; want: %v, got: %v", 12, ptab.StateCount())
	}
	if ptab.InitialState != stateNumInitial {
		t.Fatalf("unexpected initial state; want: %v, got: %v", stateNumInitial, ptab.InitialState)
	}
	if len(ptab.Warnings()) > 0 {
		t.Fatalf("warnings must be empty: %v", ptab.Warnings())
	}

	act, ok := ptab.Action(0, "id")
	if !ok || act.Type != ActionTypeShift {
		t.Fatalf("the initial state must shift on id; got: %#v", act)
	}
	if _, ok := ptab.Action(0, "+"); ok {
		t.Fatal("the initial state must have no action on +")
	}
	if _, ok := ptab.Action(0, "E"); ok {
		t.Fatal("a non-terminal must not resolve an action")
	}
	if _, ok := ptab.Action(0, "unknown"); ok {
		t.Fatal("an unknown symbol must not resolve an action")
	}

	acceptState, ok := ptab.GoTo(0, "E")
	if !ok {
		t.Fatal("a GOTO entry on the start symbol was not found")
	}
	if _, ok := ptab.GoTo(0, "id"); ok {
		t.Fatal("a terminal must not resolve a GOTO entry")
	}

	// The accept action must appear in exactly one cell, at the end
	// marker column of the state the start symbol leads to.
	acceptCount := 0
	for state := 0; state < ptab.StateCount(); state++ {
		act, ok := ptab.Action(state, symbolTextEOF)
		if !ok || act.Type != ActionTypeAccept {
			continue
		}
		acceptCount++
		if state != acceptState {
			t.Fatalf("unexpected accept state; want: %v, got: %v", acceptState, state)
		}
	}
	if acceptCount != 1 {
		t.Fatalf("unexpected number of accept cells; want: %v, got: %v", 1, acceptCount)
	}
}

func TestBuildTableLR0RecordsConflictsAsWarnings(t *testing.T) {
	tests := []struct {
		caption  string
		src      string
		warnings int
	}{
		{
			caption:  "a reducible state with an outgoing shift conflicts on the shift symbols",
			src:      testSrcExpr,
			warnings: 2,
		},
		{
			caption:  "two reducible productions conflict on every terminal",
			src:      testSrcReduceReduce,
			warnings: 2,
		},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			gram := genTestGrammar(t, tt.src)
			ptab, err := gram.BuildTable(ModeLR0)
			if err != nil {
				t.Fatalf("failed to build a parsing table: %v", err)
			}
			if ptab.Mode() != ModeLR0 {
				t.Fatalf("unexpected mode; want: %v, got: %v", ModeLR0, ptab.Mode())
			}
			if len(ptab.Warnings()) != tt.warnings {
				t.Fatalf("unexpected number of warnings; want: %v, got: %v", tt.warnings, ptab.Warnings())
			}
		})
	}
}

func TestBuildTableResolvesShiftReduceSilentlyInSLR1(t *testing.T) {
	gram := genTestGrammar(t, testSrcDivergent)

	lr0Tab, err := gram.BuildTable(ModeLR0)
	if err != nil {
		t.Fatalf("failed to build a parsing table: %v", err)
	}
	if len(lr0Tab.Warnings()) == 0 {
		t.Fatal("the LR(0) build must record conflicts")
	}

	slrTab, err := gram.BuildTable(ModeSLR1)
	if err != nil {
		t.Fatalf("failed to build a parsing table: %v", err)
	}
	if len(slrTab.Warnings()) > 0 {
		t.Fatalf("warnings must be empty: %v", slrTab.Warnings())
	}
}

func TestBuildTableFailsOnReduceReduceConflict(t *testing.T) {
	gram := genTestGrammar(t, testSrcReduceReduce)
	ptab, err := gram.BuildTable(ModeSLR1)
	if err == nil {
		t.Fatal("an error must occur")
	}
	if ptab != nil {
		t.Fatal("a table must not be returned")
	}

	var convErr *ConflictError
	if !errors.As(err, &convErr) {
		t.Fatalf("unexpected error type: %v", err)
	}
	if convErr.Kind != ConflictKindReduceReduce {
		t.Fatalf("unexpected conflict kind; want: %v, got: %v", ConflictKindReduceReduce, convErr.Kind)
	}
	if convErr.Lookahead != symbolTextEOF {
		t.Fatalf("unexpected lookahead; want: %v, got: %v", symbolTextEOF, convErr.Lookahead)
	}
	if len(convErr.Productions) != 2 {
		t.Fatalf("unexpected conflicting productions: %v", convErr.Productions)
	}
}

func TestBuildTableFailsOnAcceptReduceConflict(t *testing.T) {
	gram := genTestGrammar(t, testSrcAcceptReduce)
	_, err := gram.BuildTable(ModeSLR1)
	if err == nil {
		t.Fatal("an error must occur")
	}

	var convErr *ConflictError
	if !errors.As(err, &convErr) {
		t.Fatalf("unexpected error type: %v", err)
	}
	if convErr.Kind != ConflictKindAcceptReduce {
		t.Fatalf("unexpected conflict kind; want: %v, got: %v", ConflictKindAcceptReduce, convErr.Kind)
	}
	if convErr.Lookahead != symbolTextEOF {
		t.Fatalf("unexpected lookahead; want: %v, got: %v", symbolTextEOF, convErr.Lookahead)
	}
}

func TestBuildTableRejectsUnknownMode(t *testing.T) {
	gram := genTestGrammar(t, testSrcExpr)
	if _, err := gram.BuildTable(Mode("LALR(1)")); err == nil {
		t.Fatal("an error must occur")
	}
}

func TestParsingTableProductionInfo(t *testing.T) {
	gram := genTestGrammar(t, testSrcEpsilon)
	ptab, err := gram.BuildTable(ModeSLR1)
	if err != nil {
		t.Fatalf("failed to build a parsing table: %v", err)
	}

	tests := []struct {
		num    int
		lhs    string
		rhsLen int
		text   string
	}{
		{num: 0, lhs: "S'", rhsLen: 1, text: "S' -> S "},
		{num: 1, lhs: "S", rhsLen: 2, text: "S -> A b "},
		{num: 2, lhs: "A", rhsLen: 1, text: "A -> a "},
		{num: 3, lhs: "A", rhsLen: 0, text: "A -> ε "},
	}
	for _, tt := range tests {
		info, ok := ptab.ProductionInfo(tt.num)
		if !ok {
			t.Fatalf("a production was not found; number: %v", tt.num)
		}
		if info.LHS != tt.lhs || info.RHSLen != tt.rhsLen || info.Text != tt.text {
			t.Fatalf("unexpected production info; want: %v/%v/%q, got: %v/%v/%q", tt.lhs, tt.rhsLen, tt.text, info.LHS, info.RHSLen, info.Text)
		}
	}

	if _, ok := ptab.ProductionInfo(-1); ok {
		t.Fatal("a negative production number must not resolve")
	}
	if _, ok := ptab.ProductionInfo(4); ok {
		t.Fatal("an out-of-range production number must not resolve")
	}
}
