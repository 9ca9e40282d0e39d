package grammar

import (
	"strings"
	"testing"
)

const testSrcExpr = `
NonTerminals: E, T, F
Terminals: +, *, (, ), id
StartSymbol: E
Productions:
E -> E + T | T
T -> T * F | F
F -> ( E ) | id
`

const testSrcEpsilon = `
NonTerminals: S, A
Terminals: a, b
StartSymbol: S
Productions:
S -> A b
A -> a | ε
`

const testSrcDivergent = `
NonTerminals: S, A
Terminals: a, b, c, d
StartSymbol: S
Productions:
S -> A a | b A c | d c | b d a
A -> d
`

const testSrcReduceReduce = `
NonTerminals: S, A, B
Terminals: a
StartSymbol: S
Productions:
S -> A | B
A -> a
B -> a
`

func genTestGrammar(t *testing.T, src string) *Grammar {
	t.Helper()

	gram, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("failed to build a grammar: %v", err)
	}
	return gram
}

type testSymbolGenerator func(text string) symbol

func newTestSymbolGenerator(t *testing.T, symTab *symbolTableReader) testSymbolGenerator {
	return func(text string) symbol {
		t.Helper()

		sym, ok := symTab.toSymbol(text)
		if !ok {
			t.Fatalf("symbol was not found: %v", text)
		}
		return sym
	}
}

type testProductionGenerator func(lhs string, rhs ...string) *production

func newTestProductionGenerator(t *testing.T, genSym testSymbolGenerator) testProductionGenerator {
	return func(lhs string, rhs ...string) *production {
		t.Helper()

		rhsSym := []symbol{}
		for _, text := range rhs {
			rhsSym = append(rhsSym, genSym(text))
		}
		prod, err := newProduction(genSym(lhs), rhsSym)
		if err != nil {
			t.Fatalf("failed to create a production: %v", err)
		}

		return prod
	}
}

type testLR0ItemGenerator func(lhs string, dot int, rhs ...string) *lrItem

func newTestLR0ItemGenerator(t *testing.T, genProd testProductionGenerator) testLR0ItemGenerator {
	return func(lhs string, dot int, rhs ...string) *lrItem {
		t.Helper()

		prod := genProd(lhs, rhs...)
		item, err := newLR0Item(prod, dot)
		if err != nil {
			t.Fatalf("failed to create a LR0 item: %v", err)
		}

		return item
	}
}
