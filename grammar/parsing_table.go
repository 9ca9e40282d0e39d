package grammar

// Mode selects the reduce policy of the table builder.
type Mode string

const (
	ModeLR0  = Mode("LR(0)")
	ModeSLR1 = Mode("SLR(1)")
)

type ActionType string

const (
	ActionTypeShift  = ActionType("shift")
	ActionTypeReduce = ActionType("reduce")
	ActionTypeAccept = ActionType("accept")
	ActionTypeError  = ActionType("error")
)

// actionEntry packs one ACTION cell into an integer: shift is encoded
// negative, reduce positive, 0 means the cell is empty. Accept has a
// dedicated sentinel because the augmented production number is 0.
type actionEntry int

const (
	actionEntryEmpty  = actionEntry(0)
	actionEntryAccept = actionEntry(1 << 30)
)

func newShiftActionEntry(state stateNum) actionEntry {
	return actionEntry(state * -1)
}

func newReduceActionEntry(prod productionNum) actionEntry {
	return actionEntry(prod)
}

func (e actionEntry) isEmpty() bool {
	return e == actionEntryEmpty
}

func (e actionEntry) describe() (ActionType, stateNum, productionNum) {
	if e == actionEntryEmpty {
		return ActionTypeError, stateNumInitial, productionNumStart
	}
	if e == actionEntryAccept {
		return ActionTypeAccept, stateNumInitial, productionNumStart
	}
	if e < 0 {
		return ActionTypeShift, stateNum(e * -1), productionNumStart
	}
	return ActionTypeReduce, stateNumInitial, productionNum(e)
}

type GoToType string

const (
	GoToTypeRegistered = GoToType("registered")
	GoToTypeError      = GoToType("error")
)

type goToEntry uint

const goToEntryEmpty = goToEntry(0)

func newGoToEntry(state stateNum) goToEntry {
	return goToEntry(state + 1)
}

func (e goToEntry) describe() (GoToType, stateNum) {
	if e == goToEntryEmpty {
		return GoToTypeError, stateNumInitial
	}
	return GoToTypeRegistered, stateNum(e - 1)
}

// Action is one resolved ACTION cell.
type Action struct {
	Type       ActionType
	State      int
	Production int
}

// ProductionInfo is the driver-facing view of a production.
type ProductionInfo struct {
	Num    int
	LHS    string
	RHS    []string
	RHSLen int
	Text   string
}

// ParsingTable holds the ACTION and GOTO tables of one build, the
// automaton and FIRST/FOLLOW sets they were derived from, and the
// conflicts observed while filling the tables.
type ParsingTable struct {
	actionTable      []actionEntry
	goToTable        []goToEntry
	stateCount       int
	terminalCount    int
	nonTerminalCount int

	InitialState stateNum

	mode      Mode
	symTab    *symbolTableReader
	prods     *productionSet
	automaton *lr0Automaton
	first     *firstSet
	follow    *followSet
	conflicts []conflict
	warnings  []string
}

func (t *ParsingTable) getAction(state stateNum, sym symbolNum) (ActionType, stateNum, productionNum) {
	pos := state.Int()*t.terminalCount + sym.Int()
	return t.actionTable[pos].describe()
}

func (t *ParsingTable) getGoTo(state stateNum, sym symbolNum) (GoToType, stateNum) {
	pos := state.Int()*t.nonTerminalCount + sym.Int()
	return t.goToTable[pos].describe()
}

func (t *ParsingTable) readAction(row int, col int) actionEntry {
	return t.actionTable[row*t.terminalCount+col]
}

func (t *ParsingTable) writeAction(row int, col int, act actionEntry) {
	t.actionTable[row*t.terminalCount+col] = act
}

func (t *ParsingTable) writeGoTo(state stateNum, sym symbol, nextState stateNum) {
	pos := state.Int()*t.nonTerminalCount + sym.num().Int()
	t.goToTable[pos] = newGoToEntry(nextState)
}

// Mode returns the mode the table was built in.
func (t *ParsingTable) Mode() Mode {
	return t.mode
}

// StateCount returns the number of states of the canonical collection.
func (t *ParsingTable) StateCount() int {
	return t.stateCount
}

// Warnings returns the human-readable conflict diagnostics recorded
// during an LR(0) build. It is empty after a successful SLR(1) build.
func (t *ParsingTable) Warnings() []string {
	return t.warnings
}

// Action resolves the ACTION cell for a state and a terminal text. The
// second return value is false when the terminal is unknown or the cell
// is empty.
func (t *ParsingTable) Action(state int, terminal string) (*Action, bool) {
	sym, ok := t.symTab.toSymbol(terminal)
	if !ok || !sym.isTerminal() {
		return nil, false
	}
	ty, nextState, prod := t.getAction(stateNum(state), sym.num())
	switch ty {
	case ActionTypeShift:
		return &Action{Type: ActionTypeShift, State: nextState.Int()}, true
	case ActionTypeReduce:
		return &Action{Type: ActionTypeReduce, Production: prod.Int()}, true
	case ActionTypeAccept:
		return &Action{Type: ActionTypeAccept}, true
	}
	return nil, false
}

// GoTo resolves the GOTO cell for a state and a non-terminal text. The
// second return value is false when the cell is empty.
func (t *ParsingTable) GoTo(state int, nonTerminal string) (int, bool) {
	sym, ok := t.symTab.toSymbol(nonTerminal)
	if !ok || !sym.isNonTerminal() {
		return 0, false
	}
	ty, nextState := t.getGoTo(stateNum(state), sym.num())
	if ty != GoToTypeRegistered {
		return 0, false
	}
	return nextState.Int(), true
}

// ProductionInfo returns the driver-facing view of the production with
// the given number.
func (t *ParsingTable) ProductionInfo(num int) (*ProductionInfo, bool) {
	if num < 0 {
		return nil, false
	}
	prod, ok := t.prods.findByNum(productionNum(num))
	if !ok {
		return nil, false
	}
	lhsText, _ := t.symTab.toText(prod.lhs)
	rhs := make([]string, 0, prod.rhsLen)
	for _, sym := range prod.rhs {
		text, _ := t.symTab.toText(sym)
		rhs = append(rhs, text)
	}
	return &ProductionInfo{
		Num:    num,
		LHS:    lhsText,
		RHS:    rhs,
		RHSLen: prod.rhsLen,
		Text:   describeProduction(t.symTab, prod),
	}, true
}
