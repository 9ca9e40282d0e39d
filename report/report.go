// Package report defines the language-neutral export structure of a
// table build and a parse run. The structs carry no behavior; they
// exist to pin the JSON field names and value formats of the wire
// format.
package report

// Step is one trace record of a parse run. The stack fields list
// entries bottom to top, separated and terminated by single spaces.
type Step struct {
	Step           int    `json:"step"`
	StateStack     string `json:"state_stack"`
	SymbolStack    string `json:"symbol_stack"`
	CurrentInput   string `json:"current_input"`
	RemainingInput string `json:"remaining_input"`
	Action         string `json:"action"`
}

// ItemSet is one state of the canonical collection with its items
// rendered as dotted production strings.
type ItemSet struct {
	State int      `json:"state"`
	Items []string `json:"items"`
}

// Report is the full export of a parser instance. ACTION cells are
// serialized as sN, rN, and acc; GOTO cells as plain state indices.
// FIRST and FOLLOW omit the augmented start symbol.
type Report struct {
	StartSymbol          string                       `json:"start_symbol"`
	AugmentedStartSymbol string                       `json:"augmented_start_symbol"`
	NonTerminals         []string                     `json:"non_terminals"`
	Terminals            []string                     `json:"terminals"`
	Productions          []string                     `json:"productions"`
	FirstSet             map[string][]string          `json:"first_set"`
	FollowSet            map[string][]string          `json:"follow_set"`
	ItemSets             []*ItemSet                   `json:"item_sets"`
	ActionTable          map[string]map[string]string `json:"action_table"`
	GoToTable            map[string]map[string]int    `json:"goto_table"`
	ParseSteps           []*Step                      `json:"parse_steps"`
	ParseResult          bool                         `json:"parse_result"`
	ParserType           string                       `json:"parser_type"`
}
