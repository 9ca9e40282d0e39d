package main

import (
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var parseFlags = struct {
	mode  *string
	input *string
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "parse <grammar file path>",
		Short:   "Parse a token string and print the step trace",
		Example: `  lrkit parse grammar.txt --input "id + id * id"`,
		Args:    cobra.ExactArgs(1),
		RunE:    runParse,
	}
	parseFlags.mode = registerModeFlag(cmd.Flags())
	parseFlags.input = cmd.Flags().StringP("input", "i", "", "whitespace-separated terminal symbols to parse")
	cobra.CheckErr(cmd.MarkFlagRequired("input"))
	rootCmd.AddCommand(cmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	an, err := newAnalyzerFromFile(args[0], *parseFlags.mode)
	if err != nil {
		return err
	}

	accepted, err := an.Parse(*parseFlags.input)
	if err != nil {
		return err
	}
	rep := an.Export()

	data := pterm.TableData{{"Step", "State stack", "Symbol stack", "Input", "Remaining", "Action"}}
	for _, s := range rep.ParseSteps {
		data = append(data, []string{
			strconv.Itoa(s.Step),
			s.StateStack,
			s.SymbolStack,
			s.CurrentInput,
			s.RemainingInput,
			s.Action,
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()

	if accepted {
		pterm.Success.Println("the input was accepted")
	} else {
		pterm.Error.Println("the input was rejected")
	}

	return nil
}
