package main

import (
	"github.com/ajisai/lrkit/server"
	"github.com/spf13/cobra"
)

var serveFlags = struct {
	addr   *string
	origin *string
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "serve",
		Short:   "Serve the analysis pipeline as an HTTP/JSON API",
		Example: `  lrkit serve --addr :8080`,
		Args:    cobra.NoArgs,
		RunE:    runServe,
	}
	serveFlags.addr = cmd.Flags().String("addr", ":8080", "listen address")
	serveFlags.origin = cmd.Flags().String("origin", "*", "value of the Access-Control-Allow-Origin header")
	rootCmd.AddCommand(cmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	s := server.New()
	s.Origin = *serveFlags.origin
	return s.ListenAndServe(*serveFlags.addr)
}
