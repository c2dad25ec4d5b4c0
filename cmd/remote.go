/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>
*/
package cmd

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/taxodb/internal/iobrowser"
	"github.com/gnames/taxodb/internal/iolookup"
	"github.com/gnames/taxodb/internal/ioserver"
	"github.com/gnames/taxodb/pkg/config"
	"github.com/spf13/cobra"
)

// getLookupCmd returns the lookup command.
func getLookupCmd() *cobra.Command {
	lookupCmd := &cobra.Command{
		Use:   "lookup <taxon-id | name-pattern>",
		Short: "Look up taxa in the Ensembl REST service",
		Long: `Query the Ensembl REST service by a taxon ID, or by a name pattern
where '%' matches any number of characters.

Examples:
  taxodb lookup 9606
  taxodb lookup "Homo%"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runLookup(cmd, strings.Join(args, " "))
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}
	return lookupCmd
}

func runLookup(cmd *cobra.Command, query string) error {
	l := iolookup.New(cfg)

	if id, err := strconv.Atoi(query); err == nil {
		res, err := l.ByID(cmd.Context(), id)
		if err != nil {
			return err
		}
		return output(cmd, res)
	}

	res, err := l.ByName(cmd.Context(), query)
	if err != nil {
		return err
	}
	return output(cmd, res)
}

// getWebCmd returns the web command.
func getWebCmd() *cobra.Command {
	var printOnly bool

	webCmd := &cobra.Command{
		Use:   "web <taxon-id>",
		Short: "Open the UniProt page of a taxon",
		Long: `Check that the UniProt taxonomy page of a taxon exists and open it in
a web browser.

Examples:
  taxodb web 9606
  taxodb web 9606 --url`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runWeb(cmd, args[0], printOnly)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	webCmd.Flags().BoolVarP(
		&printOnly, "url", "u", false,
		"print the page URL instead of opening it",
	)
	return webCmd
}

func runWeb(cmd *cobra.Command, arg string, printOnly bool) error {
	id, err := parseID(arg)
	if err != nil {
		return err
	}

	v := iobrowser.New(cfg)
	if printOnly {
		return output(cmd, v.URL(id))
	}
	return v.Open(cmd.Context(), id)
}

// getServeCmd returns the serve command.
func getServeCmd() *cobra.Command {
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		Long: `Start a read-only JSON API over the taxonomy flat file. The file is
loaded on the first request. Press Ctrl-C to stop the server.

Routes:
  GET /api/v1/ping
  GET /api/v1/taxa/{id}
  GET /api/v1/lineage/{id}?ranks=true
  GET /api/v1/children/{id}
  GET /api/v1/tree/{id}?limit=100&method=bfs
  GET /api/v1/search?q=Homo%25

Examples:
  taxodb serve --port 8787`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := runServe(cmd.Context(), cmd)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	serveCmd.Flags().IntP("port", "p", 0, "port of the HTTP API")
	return serveCmd
}

func runServe(ctx context.Context, cmd *cobra.Command) error {
	if cmd.Flags().Changed("port") {
		port, _ := cmd.Flags().GetInt("port")
		cfg.Update([]config.Option{config.OptServerPort(port)})
	}

	// progress bars would mix with request logs
	cfg.Update([]config.Option{config.OptWithProgress(false)})

	gn.Info("Taxodb API is available at <em>http://localhost:%d/api/v1</em>",
		cfg.Server.Port)
	slog.Info("Starting HTTP API", "port", cfg.Server.Port)
	return ioserver.New(cfg, newStore()).Run(ctx)
}
