/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>
*/
package cmd

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/gnames/taxodb/internal/iocorpus"
	"github.com/spf13/cobra"
)

// getFetchCmd returns the fetch command.
func getFetchCmd() *cobra.Command {
	var overwrite bool

	fetchCmd := &cobra.Command{
		Use:   "fetch",
		Short: "Download the taxonomy flat file",
		Long: `Download the EBI taxonomy flat file to ~/.cache/taxodb/corpus.

An existing download is reused unless --overwrite is given. If
'corpus.url' is a path to a local file, the file is used in place.

Examples:
  taxodb fetch
  taxodb fetch --overwrite`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := iocorpus.New(cfg).Fetch(cmd.Context(), overwrite)
			if err != nil {
				gn.PrintErrorMessage(err)
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}

	fetchCmd.Flags().BoolVarP(
		&overwrite, "overwrite", "o", false,
		"download the file again",
	)
	return fetchCmd
}

// getLoadCmd returns the load command.
func getLoadCmd() *cobra.Command {
	var overwrite bool

	loadCmd := &cobra.Command{
		Use:   "load",
		Short: "Load the taxonomy flat file and show statistics",
		Long: `Parse all records of the taxonomy flat file and report how many
records were loaded, skipped as malformed or replaced as duplicates.

Examples:
  taxodb load
  taxodb load --overwrite --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			st := newStore()
			err := st.Load(cmd.Context(), overwrite)
			if err != nil {
				gn.PrintErrorMessage(err)
				return err
			}

			stats := st.Stats()
			gn.Info("Loaded <em>%s</em> records in %s",
				humanize.Comma(int64(stats.Records)),
				gnfmt.TimeString(stats.Seconds))
			return output(cmd, stats)
		},
	}

	loadCmd.Flags().BoolVarP(
		&overwrite, "overwrite", "o", false,
		"download the flat file again before loading",
	)
	return loadCmd
}
