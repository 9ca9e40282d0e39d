package grammar

import (
	"testing"
)

type follow struct {
	nt      string
	symbols []string
	eof     bool
}

func TestGenFollowSet(t *testing.T) {
	tests := []struct {
		caption string
		src     string
		follow  []follow
	}{
		{
			caption: "productions contain only non-empty productions",
			src:     testSrcExpr,
			follow: []follow{
				{nt: "E", symbols: []string{"+", ")"}, eof: true},
				{nt: "T", symbols: []string{"+", "*", ")"}, eof: true},
				{nt: "F", symbols: []string{"+", "*", ")"}, eof: true},
			},
		},
		{
			caption: "productions contain an empty production",
			src:     testSrcEpsilon,
			follow: []follow{
				{nt: "S", symbols: []string{}, eof: true},
				{nt: "A", symbols: []string{"b"}, eof: false},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			gram := genTestGrammar(t, tt.src)
			fst, err := genFirstSet(gram.productionSet)
			if err != nil {
				t.Fatalf("failed to generate a FIRST set: %v", err)
			}
			flw, err := genFollowSet(gram.productionSet, fst, gram.startSymbol)
			if err != nil {
				t.Fatalf("failed to generate a FOLLOW set: %v", err)
			}

			genSym := newTestSymbolGenerator(t, gram.symbolTable.reader())
			for _, f := range tt.follow {
				entry, err := flw.find(genSym(f.nt))
				if err != nil {
					t.Fatalf("failed to find a FOLLOW entry: %v", err)
				}
				testFollowEntry(t, genSym, entry, f)
			}
		})
	}
}

func TestGenFollowSetSeedsEOFAtOriginalStart(t *testing.T) {
	gram := genTestGrammar(t, testSrcExpr)
	fst, err := genFirstSet(gram.productionSet)
	if err != nil {
		t.Fatalf("failed to generate a FIRST set: %v", err)
	}
	flw, err := genFollowSet(gram.productionSet, fst, gram.startSymbol)
	if err != nil {
		t.Fatalf("failed to generate a FOLLOW set: %v", err)
	}

	entry, err := flw.find(gram.startSymbol)
	if err != nil {
		t.Fatalf("failed to find a FOLLOW entry: %v", err)
	}
	if !entry.eof {
		t.Fatal("the FOLLOW set of the start symbol must contain the end marker")
	}
}

func testFollowEntry(t *testing.T, genSym testSymbolGenerator, entry *followEntry, expected follow) {
	t.Helper()

	if entry.eof != expected.eof {
		t.Fatalf("unexpected eof attribute; non-terminal: %v, want: %v, got: %v", expected.nt, expected.eof, entry.eof)
	}
	if len(entry.symbols) != len(expected.symbols) {
		t.Fatalf("unexpected number of symbols; non-terminal: %v, want: %v, got: %v", expected.nt, len(expected.symbols), len(entry.symbols))
	}
	for _, text := range expected.symbols {
		if _, ok := entry.symbols[genSym(text)]; !ok {
			t.Fatalf("a symbol was not found in the FOLLOW entry; non-terminal: %v, symbol: %v", expected.nt, text)
		}
	}
}
