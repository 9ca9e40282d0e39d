package grammar

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
)

// ErrInvalidGrammar is returned when a grammar definition is unusable,
// that is, when it has no start symbol or a production whose LHS is not
// a declared non-terminal.
var ErrInvalidGrammar = errors.New("invalid grammar")

const symbolTextEpsilon = "ε"

// Grammar is an augmented context-free grammar. It is built once by a
// GrammarBuilder and never mutated afterwards.
type Grammar struct {
	symbolTable          *symbolTable
	productionSet        *productionSet
	startSymbol          symbol
	augmentedStartSymbol symbol
}

// GrammarBuilder builds a Grammar from a sectioned text definition.
//
// The definition consists of lines. A line containing `NonTerminals:`
// or `Terminals:` declares a comma-separated symbol list, a line
// containing `StartSymbol:` names the start symbol, and a line
// containing `Productions:` opens the production section, in which each
// non-empty line has the form `LHS -> α1 | α2`. Section headers are
// recognized by substring, so a production whose text contains a header
// keyword is misread. Unrecognized lines are ignored.
type GrammarBuilder struct {
	Lines []string
}

type rawProduction struct {
	lhs  string
	alts [][]string
}

func (b *GrammarBuilder) Build() (*Grammar, error) {
	var nonTermTexts []string
	var termTexts []string
	var startText string
	var rawProds []*rawProduction

	declared := map[string]struct{}{}
	appendSymbols := func(dst []string, csv string) []string {
		for _, text := range splitAndTrim(csv, ",") {
			if _, ok := declared[text]; ok {
				continue
			}
			declared[text] = struct{}{}
			dst = append(dst, text)
		}
		return dst
	}

	inProductions := false
	for _, line := range b.Lines {
		switch {
		case strings.Contains(line, "NonTerminals:"):
			nonTermTexts = appendSymbols(nonTermTexts, afterColon(line))
		case strings.Contains(line, "Terminals:"):
			termTexts = appendSymbols(termTexts, afterColon(line))
		case strings.Contains(line, "StartSymbol:"):
			fields := splitAndTrim(afterColon(line), " ")
			if len(fields) > 0 {
				startText = fields[0]
			}
		case strings.Contains(line, "Productions:"):
			inProductions = true
		case inProductions && strings.TrimSpace(line) != "":
			prod, ok := parseProductionLine(line)
			if !ok {
				continue
			}
			rawProds = append(rawProds, prod)
		}
	}

	if startText == "" {
		return nil, fmt.Errorf("%w: no start symbol", ErrInvalidGrammar)
	}

	symTab := newSymbolTable()
	w := symTab.writer()

	augStartText := startText + "'"
	augStartSym, err := w.registerStartSymbol(augStartText)
	if err != nil {
		return nil, err
	}

	nonTermSet := map[string]struct{}{}
	for _, text := range nonTermTexts {
		if text == symbolTextEpsilon {
			continue
		}
		if _, err := w.registerNonTerminalSymbol(text); err != nil {
			return nil, err
		}
		nonTermSet[text] = struct{}{}
	}
	if _, ok := nonTermSet[startText]; !ok {
		if _, err := w.registerNonTerminalSymbol(startText); err != nil {
			return nil, err
		}
		nonTermSet[startText] = struct{}{}
	}
	for _, text := range termTexts {
		if text == symbolTextEpsilon || text == symbolTextEOF {
			continue
		}
		if _, ok := nonTermSet[text]; ok {
			continue
		}
		if _, err := w.registerTerminalSymbol(text); err != nil {
			return nil, err
		}
	}

	r := symTab.reader()
	startSym, _ := r.toSymbol(startText)

	prods := newProductionSet()
	augProd, err := newProduction(augStartSym, []symbol{startSym})
	if err != nil {
		return nil, err
	}
	prods.append(augProd)

	for _, raw := range rawProds {
		lhsSym, ok := r.toSymbol(raw.lhs)
		if !ok || !lhsSym.isNonTerminal() {
			return nil, fmt.Errorf("%w: the LHS %v is not a declared non-terminal", ErrInvalidGrammar, raw.lhs)
		}
		for _, alt := range raw.alts {
			rhsSyms := make([]symbol, 0, len(alt))
			for _, text := range alt {
				sym, ok := r.toSymbol(text)
				if !ok {
					// Symbols that appear only on a RHS are treated as terminals,
					// the way an undeclared token name usually is.
					sym, err = w.registerTerminalSymbol(text)
					if err != nil {
						return nil, err
					}
				}
				rhsSyms = append(rhsSyms, sym)
			}
			prod, err := newProduction(lhsSym, rhsSyms)
			if err != nil {
				return nil, err
			}
			prods.append(prod)
		}
	}

	return &Grammar{
		symbolTable:          symTab,
		productionSet:        prods,
		startSymbol:          startSym,
		augmentedStartSymbol: augStartSym,
	}, nil
}

// Parse reads a grammar definition line by line and builds a Grammar.
func Parse(src io.Reader) (*Grammar, error) {
	var lines []string
	scanner := bufio.NewScanner(src)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	b := &GrammarBuilder{
		Lines: lines,
	}
	return b.Build()
}

func parseProductionLine(line string) (*rawProduction, bool) {
	arrowPos := strings.Index(line, "->")
	if arrowPos < 0 {
		return nil, false
	}

	lhs := strings.Join(strings.Fields(line[:arrowPos]), "")
	if lhs == "" {
		return nil, false
	}

	var alts [][]string
	for _, altText := range strings.Split(line[arrowPos+2:], "|") {
		alt := []string{}
		for _, text := range strings.Fields(altText) {
			if text == symbolTextEpsilon {
				// The ε literal denotes an empty RHS and discards any
				// other symbols of the alternative.
				alt = alt[:0]
				break
			}
			alt = append(alt, text)
		}
		alts = append(alts, alt)
	}

	return &rawProduction{
		lhs:  lhs,
		alts: alts,
	}, true
}

func afterColon(line string) string {
	colonPos := strings.Index(line, ":")
	if colonPos < 0 {
		return ""
	}
	return line[colonPos+1:]
}

func splitAndTrim(s string, sep string) []string {
	var elems []string
	for _, elem := range strings.Split(s, sep) {
		elem = strings.TrimSpace(elem)
		if elem == "" {
			continue
		}
		elems = append(elems, elem)
	}
	return elems
}

// StartSymbol returns the text of the original start symbol.
func (g *Grammar) StartSymbol() string {
	text, _ := g.symbolTable.reader().toText(g.startSymbol)
	return text
}

// AugmentedStartSymbol returns the text of the augmented start symbol.
func (g *Grammar) AugmentedStartSymbol() string {
	text, _ := g.symbolTable.reader().toText(g.augmentedStartSymbol)
	return text
}

// Terminals returns the terminal texts in sorted order, the end marker
// included.
func (g *Grammar) Terminals() []string {
	return sortedTexts(g.symbolTable.reader(), g.symbolTable.reader().terminalSymbols())
}

// NonTerminals returns the non-terminal texts in sorted order, the
// augmented start symbol included.
func (g *Grammar) NonTerminals() []string {
	return sortedTexts(g.symbolTable.reader(), g.symbolTable.reader().nonTerminalSymbols())
}

// ProductionStrings returns all productions rendered as
// `i: A -> X Y Z ` in index order. An empty RHS is rendered as the ε
// literal.
func (g *Grammar) ProductionStrings() []string {
	r := g.symbolTable.reader()
	prods := g.productionSet.inOrder()
	texts := make([]string, 0, len(prods))
	for _, prod := range prods {
		texts = append(texts, fmt.Sprintf("%v: %v", prod.num.Int(), describeProduction(r, prod)))
	}
	return texts
}

// describeProduction renders a production as `A -> X Y Z ` with a
// trailing space, the form the trace and the report use.
func describeProduction(r *symbolTableReader, prod *production) string {
	var b strings.Builder
	lhsText, _ := r.toText(prod.lhs)
	fmt.Fprintf(&b, "%v -> ", lhsText)
	if prod.isEmpty() {
		fmt.Fprintf(&b, "%v ", symbolTextEpsilon)
		return b.String()
	}
	for _, sym := range prod.rhs {
		text, _ := r.toText(sym)
		fmt.Fprintf(&b, "%v ", text)
	}
	return b.String()
}

func sortedTexts(r *symbolTableReader, syms []symbol) []string {
	texts := make([]string, 0, len(syms))
	for _, sym := range syms {
		text, ok := r.toText(sym)
		if !ok {
			continue
		}
		texts = append(texts, text)
	}
	sort.Strings(texts)
	return texts
}
