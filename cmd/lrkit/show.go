package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/ajisai/lrkit/analyzer"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var showFlags = struct {
	mode *string
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "show <grammar file path>",
		Short:   "Build a parsing table and print the derived artifacts",
		Example: `  lrkit show grammar.txt --mode lr0`,
		Args:    cobra.ExactArgs(1),
		RunE:    runShow,
	}
	showFlags.mode = registerModeFlag(cmd.Flags())
	rootCmd.AddCommand(cmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	an, err := newAnalyzerFromFile(args[0], *showFlags.mode)
	if err != nil {
		return err
	}
	rep := an.Export()

	pterm.DefaultSection.Println("Grammar")
	pterm.Printfln("start symbol:           %v", rep.StartSymbol)
	pterm.Printfln("augmented start symbol: %v", rep.AugmentedStartSymbol)
	pterm.Printfln("non-terminals:          %v", strings.Join(rep.NonTerminals, " "))
	pterm.Printfln("terminals:              %v", strings.Join(rep.Terminals, " "))

	pterm.DefaultSection.Println("Productions")
	for _, prod := range rep.Productions {
		pterm.Println(prod)
	}

	pterm.DefaultSection.Println("FIRST / FOLLOW")
	ffData := pterm.TableData{{"Symbol", "FIRST", "FOLLOW"}}
	for _, nt := range rep.NonTerminals {
		if nt == rep.AugmentedStartSymbol {
			continue
		}
		ffData = append(ffData, []string{
			nt,
			strings.Join(rep.FirstSet[nt], " "),
			strings.Join(rep.FollowSet[nt], " "),
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(ffData).Render()

	pterm.DefaultSection.Println("Item sets")
	for _, set := range rep.ItemSets {
		pterm.Printfln("I%v:", set.State)
		for _, item := range set.Items {
			pterm.Printfln("    %v", item)
		}
	}

	pterm.DefaultSection.Printfln("%v table", an.Mode())
	nonTerms := make([]string, 0, len(rep.NonTerminals))
	for _, nt := range rep.NonTerminals {
		if nt == rep.AugmentedStartSymbol {
			continue
		}
		nonTerms = append(nonTerms, nt)
	}
	header := append([]string{"State"}, rep.Terminals...)
	header = append(header, nonTerms...)
	tblData := pterm.TableData{header}
	for _, set := range rep.ItemSets {
		stateKey := strconv.Itoa(set.State)
		row := []string{stateKey}
		for _, term := range rep.Terminals {
			row = append(row, rep.ActionTable[stateKey][term])
		}
		for _, nt := range nonTerms {
			if to, ok := rep.GoToTable[stateKey][nt]; ok {
				row = append(row, strconv.Itoa(to))
			} else {
				row = append(row, "")
			}
		}
		tblData = append(tblData, row)
	}
	pterm.DefaultTable.WithHasHeader().WithData(tblData).Render()

	for _, warn := range an.Warnings() {
		pterm.Warning.Println(warn)
	}

	return nil
}

// newAnalyzerFromFile loads a grammar definition file into a fresh
// analyzer and builds its table in the given mode.
func newAnalyzerFromFile(path string, modeText string) (*analyzer.Analyzer, error) {
	mode, err := resolveMode(modeText)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read the grammar file %s: %w", path, err)
	}
	an := analyzer.New(mode)
	if err := an.LoadGrammar(strings.Split(string(data), "\n")); err != nil {
		return nil, err
	}
	if err := an.BuildTable(); err != nil {
		return nil, err
	}
	return an, nil
}
