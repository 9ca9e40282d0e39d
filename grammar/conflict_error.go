package grammar

import "fmt"

type ConflictKind string

const (
	ConflictKindReduceReduce = ConflictKind("reduce/reduce")
	ConflictKindAcceptReduce = ConflictKind("accept/reduce")
)

// ConflictError is a fatal table-construction conflict. Only the SLR(1)
// mode raises it; the LR(0) mode records conflicts as warnings instead.
type ConflictError struct {
	Kind        ConflictKind
	State       int
	Lookahead   string
	Productions []int
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%v conflict in state %v, symbol %v (productions %v)", e.Kind, e.State, e.Lookahead, e.Productions)
}

// conflict is a non-fatal conflict observed while filling the ACTION
// table.
type conflict interface {
	conflict()
}

type shiftReduceConflict struct {
	state     stateNum
	sym       symbol
	nextState stateNum
	prodNum   productionNum
}

func (c *shiftReduceConflict) conflict() {
}

type reduceReduceConflict struct {
	state    stateNum
	sym      symbol
	prodNum1 productionNum
	prodNum2 productionNum
}

func (c *reduceReduceConflict) conflict() {
}

var (
	_ conflict = &shiftReduceConflict{}
	_ conflict = &reduceReduceConflict{}
)
