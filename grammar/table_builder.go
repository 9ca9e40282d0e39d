package grammar

import (
	"fmt"
	"sort"
)

type lrTableBuilder struct {
	automaton    *lr0Automaton
	prods        *productionSet
	termCount    int
	nonTermCount int
	symTab       *symbolTableReader
	follow       *followSet
	mode         Mode

	conflicts []conflict
	warnings  []string
}

// BuildTable generates the canonical LR(0) collection for the grammar
// and fills the ACTION and GOTO tables under the given mode.
//
// In LR(0) mode a reducible state reduces on every terminal. A cell
// collision is resolved by keeping the entry written last, and each
// collision is recorded as a warning. In SLR(1) mode a reduction is
// registered only on the FOLLOW set of the production's LHS; a
// shift/reduce collision keeps the shift, and a reduce/reduce or
// accept/reduce collision aborts the build with a ConflictError.
func (g *Grammar) BuildTable(mode Mode) (*ParsingTable, error) {
	if mode != ModeLR0 && mode != ModeSLR1 {
		return nil, fmt.Errorf("unknown table mode: %v", mode)
	}

	automaton, err := genLR0Automaton(g.productionSet, g.augmentedStartSymbol)
	if err != nil {
		return nil, err
	}

	fst, err := genFirstSet(g.productionSet)
	if err != nil {
		return nil, err
	}
	flw, err := genFollowSet(g.productionSet, fst, g.startSymbol)
	if err != nil {
		return nil, err
	}

	r := g.symbolTable.reader()
	b := &lrTableBuilder{
		automaton:    automaton,
		prods:        g.productionSet,
		termCount:    r.terminalCount(),
		nonTermCount: r.nonTerminalCount(),
		symTab:       r,
		follow:       flw,
		mode:         mode,
	}
	ptab, err := b.build()
	if err != nil {
		return nil, err
	}

	ptab.mode = mode
	ptab.symTab = r
	ptab.prods = g.productionSet
	ptab.automaton = automaton
	ptab.first = fst
	ptab.follow = flw
	ptab.conflicts = b.conflicts
	ptab.warnings = b.warnings

	return ptab, nil
}

func (b *lrTableBuilder) build() (*ParsingTable, error) {
	ptab := &ParsingTable{
		actionTable:      make([]actionEntry, b.automaton.stateCount()*b.termCount),
		goToTable:        make([]goToEntry, b.automaton.stateCount()*b.nonTermCount),
		stateCount:       b.automaton.stateCount(),
		terminalCount:    b.termCount,
		nonTerminalCount: b.nonTermCount,
		InitialState:     b.automaton.states[b.automaton.initialState].num,
	}

	b.automaton.eachTransition(func(tr *transition) {
		if tr.sym.isTerminal() {
			ptab.writeAction(tr.from.Int(), tr.sym.num().Int(), newShiftActionEntry(tr.to))
		} else {
			ptab.writeGoTo(tr.from, tr.sym, tr.to)
		}
	})

	var fatal error
	b.automaton.eachState(func(s *lrState) {
		if fatal != nil {
			return
		}
		for _, prodNum := range s.reducible {
			if prodNum == productionNumStart {
				if err := b.writeAccept(ptab, s.num); err != nil {
					fatal = err
					return
				}
				continue
			}
			if err := b.writeReduce(ptab, s.num, prodNum); err != nil {
				fatal = err
				return
			}
		}
	})
	if fatal != nil {
		return nil, fatal
	}

	return ptab, nil
}

// writeAccept registers the accept action at the end marker column. In
// SLR(1) mode a cell already holding a reduction is fatal.
func (b *lrTableBuilder) writeAccept(ptab *ParsingTable, state stateNum) error {
	col := symbolEOF.num().Int()
	old := ptab.readAction(state.Int(), col)
	if !old.isEmpty() && b.mode == ModeSLR1 {
		_, _, oldProd := old.describe()
		return &ConflictError{
			Kind:        ConflictKindAcceptReduce,
			State:       state.Int(),
			Lookahead:   symbolTextEOF,
			Productions: []int{productionNumStart.Int(), oldProd.Int()},
		}
	}
	ptab.writeAction(state.Int(), col, actionEntryAccept)
	return nil
}

func (b *lrTableBuilder) writeReduce(ptab *ParsingTable, state stateNum, prodNum productionNum) error {
	if b.mode == ModeLR0 {
		for _, sym := range b.symTab.terminalSymbols() {
			b.writeLR0Reduce(ptab, state, sym, prodNum)
		}
		return nil
	}

	prod, ok := b.prods.findByNum(prodNum)
	if !ok {
		return fmt.Errorf("a production was not found; production number: %v", prodNum)
	}
	flw, err := b.follow.find(prod.lhs)
	if err != nil {
		return err
	}
	for _, sym := range followLookaheads(flw) {
		if err := b.writeSLRReduce(ptab, state, sym, prodNum); err != nil {
			return err
		}
	}
	return nil
}

// writeLR0Reduce fills one ACTION cell under the LR(0) policy: the new
// reduction always wins, and a non-empty cell becomes a warning.
func (b *lrTableBuilder) writeLR0Reduce(ptab *ParsingTable, state stateNum, sym symbol, prodNum productionNum) {
	act := newReduceActionEntry(prodNum)
	old := ptab.readAction(state.Int(), sym.num().Int())
	if !old.isEmpty() && old != act {
		b.recordLR0Conflict(state, sym, old, prodNum)
	}
	ptab.writeAction(state.Int(), sym.num().Int(), act)
}

// writeSLRReduce fills one ACTION cell under the SLR(1) policy: a shift
// wins over the reduction, and the other collisions are fatal.
func (b *lrTableBuilder) writeSLRReduce(ptab *ParsingTable, state stateNum, sym symbol, prodNum productionNum) error {
	old := ptab.readAction(state.Int(), sym.num().Int())
	if old.isEmpty() {
		ptab.writeAction(state.Int(), sym.num().Int(), newReduceActionEntry(prodNum))
		return nil
	}

	lookahead, _ := b.symTab.toText(sym)
	ty, nextState, oldProd := old.describe()
	switch ty {
	case ActionTypeShift:
		b.conflicts = append(b.conflicts, &shiftReduceConflict{
			state:     state,
			sym:       sym,
			nextState: nextState,
			prodNum:   prodNum,
		})
		return nil
	case ActionTypeReduce:
		if oldProd == prodNum {
			return nil
		}
		b.conflicts = append(b.conflicts, &reduceReduceConflict{
			state:    state,
			sym:      sym,
			prodNum1: oldProd,
			prodNum2: prodNum,
		})
		return &ConflictError{
			Kind:        ConflictKindReduceReduce,
			State:       state.Int(),
			Lookahead:   lookahead,
			Productions: []int{oldProd.Int(), prodNum.Int()},
		}
	case ActionTypeAccept:
		return &ConflictError{
			Kind:        ConflictKindAcceptReduce,
			State:       state.Int(),
			Lookahead:   lookahead,
			Productions: []int{productionNumStart.Int(), prodNum.Int()},
		}
	}
	return nil
}

func (b *lrTableBuilder) recordLR0Conflict(state stateNum, sym symbol, old actionEntry, prodNum productionNum) {
	ty, nextState, oldProd := old.describe()
	switch ty {
	case ActionTypeShift:
		b.conflicts = append(b.conflicts, &shiftReduceConflict{
			state:     state,
			sym:       sym,
			nextState: nextState,
			prodNum:   prodNum,
		})
	default:
		b.conflicts = append(b.conflicts, &reduceReduceConflict{
			state:    state,
			sym:      sym,
			prodNum1: oldProd,
			prodNum2: prodNum,
		})
	}

	lookahead, _ := b.symTab.toText(sym)
	b.warnings = append(b.warnings, fmt.Sprintf(
		"LR(0) conflict in state %v, symbol %v: %v vs %v",
		state, lookahead, describeActionEntry(old), describeActionEntry(newReduceActionEntry(prodNum)),
	))
}

// followLookaheads returns the lookahead symbols of a FOLLOW entry in
// ascending symbol order, the end marker last.
func followLookaheads(flw *followEntry) []symbol {
	syms := make([]symbol, 0, len(flw.symbols)+1)
	for sym := range flw.symbols {
		syms = append(syms, sym)
	}
	if flw.eof {
		syms = append(syms, symbolEOF)
	}
	sort.Slice(syms, func(i, j int) bool {
		return syms[i] < syms[j]
	})
	return syms
}

// describeActionEntry renders a cell the way the tables are exported:
// sN for a shift, rN for a reduction, and acc.
func describeActionEntry(e actionEntry) string {
	ty, state, prod := e.describe()
	switch ty {
	case ActionTypeShift:
		return fmt.Sprintf("s%v", state)
	case ActionTypeReduce:
		return fmt.Sprintf("r%v", prod)
	case ActionTypeAccept:
		return "acc"
	}
	return ""
}
