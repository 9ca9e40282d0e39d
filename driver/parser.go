package driver

import (
	"fmt"
	"strings"

	"github.com/ajisai/lrkit/grammar"
)

// ParseStep is a snapshot of the driver taken before each action. The
// stack fields list entries bottom to top with a trailing space, the
// form the trace is exported in.
type ParseStep struct {
	Step           int    `json:"step"`
	StateStack     string `json:"state_stack"`
	SymbolStack    string `json:"symbol_stack"`
	CurrentInput   string `json:"current_input"`
	RemainingInput string `json:"remaining_input"`
	Action         string `json:"action"`
}

const (
	actionTextAccept        = "Accept"
	actionTextNoActionEntry = "Error: No ACTION entry"
	actionTextNoGoToEntry   = "Error: No GOTO entry"
)

// Parser runs table-driven shift/reduce parses. It keeps the trace and
// the result of the last Parse call only.
type Parser struct {
	ptab        *grammar.ParsingTable
	stateStack  []int
	symbolStack []string
	steps       []*ParseStep
	result      bool
}

func NewParser(ptab *grammar.ParsingTable) *Parser {
	return &Parser{
		ptab: ptab,
	}
}

// Parse consumes a string of whitespace-separated terminal texts and
// reports whether the input belongs to the grammar's language. The
// trace of the run replaces the one of the previous run. The error
// return is reserved for a corrupted table; a plain rejection is
// (false, nil), with the reason recorded as the last trace step.
func (p *Parser) Parse(input string) (bool, error) {
	p.steps = nil
	p.result = false
	p.stateStack = p.stateStack[:0]
	p.symbolStack = p.symbolStack[:0]
	p.push(p.ptab.InitialState.Int(), endMarker)

	stream := newTokenStream(input)
	step := 1

	for {
		tok := stream.current()

		ps := &ParseStep{
			Step:           step,
			StateStack:     stackText(p.stateStack),
			SymbolStack:    stackText(p.symbolStack),
			CurrentInput:   tok,
			RemainingInput: stream.remaining(),
		}
		p.steps = append(p.steps, ps)

		act, ok := p.ptab.Action(p.top(), tok)
		if !ok {
			ps.Action = actionTextNoActionEntry
			return false, nil
		}

		switch act.Type {
		case grammar.ActionTypeAccept:
			ps.Action = actionTextAccept
			p.result = true
			return true, nil
		case grammar.ActionTypeShift:
			p.push(act.State, tok)
			stream.advance()
			ps.Action = fmt.Sprintf("Shift to state %v", act.State)
		case grammar.ActionTypeReduce:
			prod, ok := p.ptab.ProductionInfo(act.Production)
			if !ok {
				return false, fmt.Errorf("a production was not found; production number: %v", act.Production)
			}
			p.pop(prod.RHSLen)
			nextState, ok := p.ptab.GoTo(p.top(), prod.LHS)
			if !ok {
				ps.Action = actionTextNoGoToEntry
				return false, nil
			}
			p.push(nextState, prod.LHS)
			ps.Action = fmt.Sprintf("Reduce: %v", prod.Text)
		}

		step++
	}
}

// Steps returns the trace of the last Parse call.
func (p *Parser) Steps() []*ParseStep {
	return p.steps
}

// Result reports whether the last Parse call accepted its input.
func (p *Parser) Result() bool {
	return p.result
}

func (p *Parser) top() int {
	return p.stateStack[len(p.stateStack)-1]
}

func (p *Parser) push(state int, sym string) {
	p.stateStack = append(p.stateStack, state)
	p.symbolStack = append(p.symbolStack, sym)
}

func (p *Parser) pop(n int) {
	p.stateStack = p.stateStack[:len(p.stateStack)-n]
	p.symbolStack = p.symbolStack[:len(p.symbolStack)-n]
}

func stackText[E any](stack []E) string {
	var b strings.Builder
	for _, e := range stack {
		fmt.Fprintf(&b, "%v ", e)
	}
	return b.String()
}
