package cmd

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/aliarasea/sudoku/internal/api"
)

var addr string

func init() {
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the generator and solver over HTTP",
		Long: `Start a JSON HTTP API exposing puzzle generation and solving.

Endpoints:
  POST /api/v1/generate  {"difficulty": "hard", "seed": 42}
  POST /api/v1/solve     {"grid": "53..7...", "count": false}`,
		RunE: runServe,
	}

	serveCmd.Flags().StringVarP(&addr, "addr", "a", ":8080", "Listen address")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	e := api.NewRouter()
	log.Info().Str("addr", addr).Msg("starting server")
	return e.Run(addr)
}
