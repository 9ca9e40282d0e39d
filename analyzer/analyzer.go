// Package analyzer wraps the analysis pipeline behind a small mutable
// facade: load a grammar, build a table, parse inputs, export the
// derived artifacts, clear everything, repeat.
package analyzer

import (
	"errors"

	"github.com/ajisai/lrkit/driver"
	"github.com/ajisai/lrkit/grammar"
	"github.com/ajisai/lrkit/report"
)

var (
	// ErrNoGrammar is returned when a table build is requested before any
	// grammar has been loaded.
	ErrNoGrammar = errors.New("no grammar loaded")

	// ErrNoTable is returned when a parse is requested before a table has
	// been built.
	ErrNoTable = errors.New("no parse table built")
)

// Analyzer is one parser instance. It is not safe for concurrent use;
// callers that share an instance must serialize access themselves.
type Analyzer struct {
	mode   grammar.Mode
	gram   *grammar.Grammar
	ptab   *grammar.ParsingTable
	parser *driver.Parser
}

func New(mode grammar.Mode) *Analyzer {
	return &Analyzer{
		mode: mode,
	}
}

// Mode returns the table mode the instance builds in.
func (a *Analyzer) Mode() grammar.Mode {
	return a.mode
}

// LoadGrammar discards all cached state and loads a new grammar from
// the definition lines. On failure the instance is left empty.
func (a *Analyzer) LoadGrammar(lines []string) error {
	a.ClearCache()
	b := &grammar.GrammarBuilder{
		Lines: lines,
	}
	gram, err := b.Build()
	if err != nil {
		return err
	}
	a.gram = gram
	return nil
}

// BuildTable derives the item sets, the FIRST/FOLLOW sets, and the
// ACTION/GOTO tables from the loaded grammar. On failure the previous
// table, if any, is discarded.
func (a *Analyzer) BuildTable() error {
	if a.gram == nil {
		return ErrNoGrammar
	}
	a.ptab = nil
	a.parser = nil
	ptab, err := a.gram.BuildTable(a.mode)
	if err != nil {
		return err
	}
	a.ptab = ptab
	a.parser = driver.NewParser(ptab)
	return nil
}

// Parse runs the driver over the input. A rejection is (false, nil);
// the trace of the run is available through Export.
func (a *Analyzer) Parse(input string) (bool, error) {
	if a.parser == nil {
		return false, ErrNoTable
	}
	return a.parser.Parse(input)
}

// Warnings returns the conflict diagnostics of the last table build.
func (a *Analyzer) Warnings() []string {
	if a.ptab == nil {
		return nil
	}
	return a.ptab.Warnings()
}

// ClearCache resets the instance to its post-construction state: no
// grammar, no table, no trace.
func (a *Analyzer) ClearCache() {
	a.gram = nil
	a.ptab = nil
	a.parser = nil
}

// Export flattens the current state into the report structure. Fields
// whose artifacts have not been derived yet are left empty, so an
// export is valid at every point of the load/build/parse cycle.
func (a *Analyzer) Export() *report.Report {
	if a.ptab == nil {
		rep := &report.Report{
			FirstSet:    map[string][]string{},
			FollowSet:   map[string][]string{},
			ItemSets:    []*report.ItemSet{},
			ActionTable: map[string]map[string]string{},
			GoToTable:   map[string]map[string]int{},
			ParseSteps:  []*report.Step{},
			ParserType:  string(a.mode),
		}
		if a.gram != nil {
			rep.StartSymbol = a.gram.StartSymbol()
			rep.AugmentedStartSymbol = a.gram.AugmentedStartSymbol()
			rep.NonTerminals = a.gram.NonTerminals()
			rep.Terminals = a.gram.Terminals()
			rep.Productions = a.gram.ProductionStrings()
		}
		return rep
	}

	rep := a.ptab.Report()
	if a.parser != nil {
		rep.ParseResult = a.parser.Result()
		for _, s := range a.parser.Steps() {
			rep.ParseSteps = append(rep.ParseSteps, &report.Step{
				Step:           s.Step,
				StateStack:     s.StateStack,
				SymbolStack:    s.SymbolStack,
				CurrentInput:   s.CurrentInput,
				RemainingInput: s.RemainingInput,
				Action:         s.Action,
			})
		}
	}
	return rep
}
