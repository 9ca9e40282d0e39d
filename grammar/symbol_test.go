package grammar

import "testing"

func TestSymbol(t *testing.T) {
	symTab := newSymbolTable()
	w := symTab.writer()
	_, err := w.registerStartSymbol("expr'")
	if err != nil {
		t.Fatalf("failed to register a start symbol: %v", err)
	}
	for _, text := range []string{"expr", "term"} {
		if _, err := w.registerNonTerminalSymbol(text); err != nil {
			t.Fatalf("failed to register a non-terminal symbol: %v", err)
		}
	}
	for _, text := range []string{"add", "id"} {
		if _, err := w.registerTerminalSymbol(text); err != nil {
			t.Fatalf("failed to register a terminal symbol: %v", err)
		}
	}

	r := symTab.reader()
	tests := []struct {
		text          string
		isNonTerminal bool
		isTerminal    bool
		isStart       bool
		isEOF         bool
	}{
		{text: "expr'", isNonTerminal: true, isStart: true},
		{text: "expr", isNonTerminal: true},
		{text: "term", isNonTerminal: true},
		{text: "add", isTerminal: true},
		{text: "id", isTerminal: true},
		{text: symbolTextEOF, isTerminal: true, isEOF: true},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			sym, ok := r.toSymbol(tt.text)
			if !ok {
				t.Fatalf("a symbol was not found: %v", tt.text)
			}
			if sym.isNil() {
				t.Fatalf("a registered symbol must be non-nil: %v", tt.text)
			}
			if sym.isNonTerminal() != tt.isNonTerminal {
				t.Fatalf("unexpected non-terminal attribute; want: %v, got: %v", tt.isNonTerminal, sym.isNonTerminal())
			}
			if sym.isTerminal() != tt.isTerminal {
				t.Fatalf("unexpected terminal attribute; want: %v, got: %v", tt.isTerminal, sym.isTerminal())
			}
			if sym.isStart() != tt.isStart {
				t.Fatalf("unexpected start attribute; want: %v, got: %v", tt.isStart, sym.isStart())
			}
			if sym.isEOF() != tt.isEOF {
				t.Fatalf("unexpected EOF attribute; want: %v, got: %v", tt.isEOF, sym.isEOF())
			}

			text, ok := r.toText(sym)
			if !ok || text != tt.text {
				t.Fatalf("unexpected text; want: %v, got: %v", tt.text, text)
			}
		})
	}
}

func TestSymbolTableCounts(t *testing.T) {
	symTab := newSymbolTable()
	w := symTab.writer()
	if _, err := w.registerStartSymbol("S'"); err != nil {
		t.Fatalf("failed to register a start symbol: %v", err)
	}
	if _, err := w.registerNonTerminalSymbol("S"); err != nil {
		t.Fatalf("failed to register a non-terminal symbol: %v", err)
	}
	if _, err := w.registerTerminalSymbol("a"); err != nil {
		t.Fatalf("failed to register a terminal symbol: %v", err)
	}

	r := symTab.reader()

	// The counts include the reserved slots, so they are usable directly
	// as the row widths of the ACTION and GOTO tables.
	if r.terminalCount() != 3 {
		t.Fatalf("unexpected terminal count; want: %v, got: %v", 3, r.terminalCount())
	}
	if r.nonTerminalCount() != 3 {
		t.Fatalf("unexpected non-terminal count; want: %v, got: %v", 3, r.nonTerminalCount())
	}

	terms := r.terminalSymbols()
	if len(terms) != 2 {
		t.Fatalf("unexpected number of terminal symbols; want: %v, got: %v", 2, len(terms))
	}
	for i := 0; i+1 < len(terms); i++ {
		if terms[i] >= terms[i+1] {
			t.Fatalf("terminal symbols must be sorted: %v", terms)
		}
	}
	nonTerms := r.nonTerminalSymbols()
	if len(nonTerms) != 2 {
		t.Fatalf("unexpected number of non-terminal symbols; want: %v, got: %v", 2, len(nonTerms))
	}
}

func TestSymbolTableRegistrationRules(t *testing.T) {
	symTab := newSymbolTable()
	w := symTab.writer()
	if _, err := w.registerStartSymbol(""); err == nil {
		t.Fatal("an error must occur")
	}
	if _, err := w.registerStartSymbol(symbolTextEOF); err == nil {
		t.Fatal("an error must occur")
	}

	sym1, err := w.registerTerminalSymbol("a")
	if err != nil {
		t.Fatalf("failed to register a terminal symbol: %v", err)
	}
	sym2, err := w.registerTerminalSymbol("a")
	if err != nil {
		t.Fatalf("failed to register a terminal symbol: %v", err)
	}
	if sym1 != sym2 {
		t.Fatalf("re-registering a symbol must return the same symbol; got: %v and %v", sym1, sym2)
	}
}

func TestNewSymbol(t *testing.T) {
	if _, err := newSymbol(symbolKindTerminal, true, 2); err == nil {
		t.Fatal("an error must occur")
	}
	if _, err := newSymbol(symbolKindNonTerminal, false, symbolNumMax+1); err == nil {
		t.Fatal("an error must occur")
	}
	sym, err := newSymbol(symbolKindNonTerminal, false, 2)
	if err != nil {
		t.Fatalf("failed to create a symbol: %v", err)
	}
	if sym.num() != 2 {
		t.Fatalf("unexpected symbol number; want: %v, got: %v", 2, sym.num())
	}
}
