package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/ajisai/lrkit/grammar"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var rootCmd = &cobra.Command{
	Use:   "lrkit",
	Short: "Build LR(0)/SLR(1) parsing tables and run table-driven parses",
	Long: `lrkit reads a context-free grammar, derives its LR(0) item sets and
an LR(0) or SLR(1) parsing table, and runs shift/reduce parses that
produce a step-by-step trace. It can also serve the whole pipeline as
an HTTP/JSON API.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return err
	}
	return nil
}

// registerModeFlag adds the table-mode flag shared by the show and
// parse subcommands.
func registerModeFlag(fs *pflag.FlagSet) *string {
	return fs.String("mode", "slr1", "table construction mode (lr0 or slr1)")
}

func resolveMode(text string) (grammar.Mode, error) {
	switch strings.ToLower(text) {
	case "lr0":
		return grammar.ModeLR0, nil
	case "slr1":
		return grammar.ModeSLR1, nil
	}
	return "", fmt.Errorf("invalid mode %v; specify lr0 or slr1", text)
}
