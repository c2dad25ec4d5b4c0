/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>
*/
package cmd

import (
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/taxodb/pkg/taxon"
	"github.com/gnames/taxodb/pkg/taxonomy"
	"github.com/spf13/cobra"
)

// getSearchCmd returns the search command.
func getSearchCmd() *cobra.Command {
	searchCmd := &cobra.Command{
		Use:   "search <name-pattern>",
		Short: "Find taxa by scientific name in the flat file",
		Long: `Find taxa which scientific names match a pattern. Matching is
case-insensitive. '%' matches any number of characters, '_' matches one
character. Without wildcards, names with authors are also compared by
their canonical form.

Examples:
  taxodb search "Homo sapiens"
  taxodb search "Pan %"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runSearch(cmd, strings.Join(args, " "))
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}
	return searchCmd
}

func runSearch(cmd *cobra.Command, pattern string) error {
	recs, err := taxonomy.Search(cmd.Context(), newStore(), pattern)
	if err != nil {
		return err
	}

	res := make([]taxon.Summary, len(recs))
	for i := range recs {
		res[i] = recs[i].Summary()
	}
	return output(cmd, res)
}
