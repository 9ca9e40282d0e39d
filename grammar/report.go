package grammar

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/ajisai/lrkit/report"
)

// Report flattens the table and the artifacts it was derived from into
// the export structure. The trace fields are left empty; the caller
// attaches the steps and the result of a parse run.
func (t *ParsingTable) Report() *report.Report {
	rep := &report.Report{
		AugmentedStartSymbol: t.textOf(symbolStart),
		NonTerminals:         sortedTexts(t.symTab, t.symTab.nonTerminalSymbols()),
		Terminals:            sortedTexts(t.symTab, t.symTab.terminalSymbols()),
		FirstSet:             map[string][]string{},
		FollowSet:            map[string][]string{},
		ActionTable:          map[string]map[string]string{},
		GoToTable:            map[string]map[string]int{},
		ParseSteps:           []*report.Step{},
		ParserType:           string(t.mode),
	}

	if augProd, ok := t.prods.findByNum(productionNumStart); ok {
		rep.StartSymbol = t.textOf(augProd.rhs[0])
	}

	for _, prod := range t.prods.inOrder() {
		rep.Productions = append(rep.Productions, fmt.Sprintf("%v: %v", prod.num.Int(), describeProduction(t.symTab, prod)))
	}

	for _, sym := range t.symTab.nonTerminalSymbols() {
		if sym.isStart() {
			continue
		}
		if e := t.first.findBySymbol(sym); e != nil {
			rep.FirstSet[t.textOf(sym)] = t.describeFirstEntry(e)
		}
		if e, err := t.follow.find(sym); err == nil {
			rep.FollowSet[t.textOf(sym)] = t.describeFollowEntry(e)
		}
	}

	t.automaton.eachState(func(s *lrState) {
		items := make([]string, 0, len(s.items))
		for _, item := range s.items {
			items = append(items, t.describeItem(item))
		}
		rep.ItemSets = append(rep.ItemSets, &report.ItemSet{
			State: s.num.Int(),
			Items: items,
		})

		stateKey := strconv.Itoa(s.num.Int())
		for _, sym := range t.symTab.terminalSymbols() {
			e := t.readAction(s.num.Int(), sym.num().Int())
			if e.isEmpty() {
				continue
			}
			if rep.ActionTable[stateKey] == nil {
				rep.ActionTable[stateKey] = map[string]string{}
			}
			rep.ActionTable[stateKey][t.textOf(sym)] = describeActionEntry(e)
		}
		for _, sym := range t.symTab.nonTerminalSymbols() {
			ty, nextState := t.getGoTo(s.num, sym.num())
			if ty != GoToTypeRegistered {
				continue
			}
			if rep.GoToTable[stateKey] == nil {
				rep.GoToTable[stateKey] = map[string]int{}
			}
			rep.GoToTable[stateKey][t.textOf(sym)] = nextState.Int()
		}
	})

	return rep
}

// describeItem renders an item as `A -> α . β`, each symbol followed
// by a space, with a bare dot appended when the dot is at the end.
func (t *ParsingTable) describeItem(item *lrItem) string {
	prod, ok := t.prods.findByID(item.prod)
	if !ok {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%v -> ", t.textOf(prod.lhs))
	for i, sym := range prod.rhs {
		if i == item.dot {
			b.WriteString(". ")
		}
		fmt.Fprintf(&b, "%v ", t.textOf(sym))
	}
	if item.dot == prod.rhsLen {
		b.WriteString(".")
	}
	return b.String()
}

func (t *ParsingTable) describeFirstEntry(e *firstEntry) []string {
	texts := make([]string, 0, len(e.symbols)+1)
	for sym := range e.symbols {
		texts = append(texts, t.textOf(sym))
	}
	if e.empty {
		texts = append(texts, symbolTextEpsilon)
	}
	sort.Strings(texts)
	return texts
}

func (t *ParsingTable) describeFollowEntry(e *followEntry) []string {
	texts := make([]string, 0, len(e.symbols)+1)
	for sym := range e.symbols {
		texts = append(texts, t.textOf(sym))
	}
	if e.eof {
		texts = append(texts, symbolTextEOF)
	}
	sort.Strings(texts)
	return texts
}

func (t *ParsingTable) textOf(sym symbol) string {
	text, _ := t.symTab.toText(sym)
	return text
}
