/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>
*/
package cmd

import (
	"github.com/gnames/gn"
	"github.com/gnames/taxodb/pkg/taxonomy"
	"github.com/spf13/cobra"
)

// getLineageCmd returns the lineage command.
func getLineageCmd() *cobra.Command {
	var withRanks bool

	lineageCmd := &cobra.Command{
		Use:   "lineage <taxon-id>",
		Short: "Show the lineage of a taxon",
		Long: `Show names of the ancestors of a taxon, from the oldest ancestor below
the top level down to the taxon itself.

With --ranks every name is followed by its rank, and text output is
indented one space per level.

Examples:
  taxodb lineage 9606
  taxodb lineage 9606 --ranks`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runLineage(cmd, args[0], withRanks)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	lineageCmd.Flags().BoolVarP(
		&withRanks, "ranks", "r", false,
		"show ranks of taxa",
	)
	return lineageCmd
}

func runLineage(cmd *cobra.Command, arg string, withRanks bool) error {
	id, err := parseID(arg)
	if err != nil {
		return err
	}

	st := newStore()
	if withRanks {
		res, err := taxonomy.LineageAndRank(cmd.Context(), st, id)
		if err != nil {
			return err
		}
		return output(cmd, res)
	}

	res, err := taxonomy.Lineage(cmd.Context(), st, id)
	if err != nil {
		return err
	}
	return output(cmd, res)
}

// getChildrenCmd returns the children command.
func getChildrenCmd() *cobra.Command {
	childrenCmd := &cobra.Command{
		Use:   "children <taxon-id>",
		Short: "Show IDs of direct children of a taxon",
		Long: `Show IDs of taxa that have the given taxon as their parent, in the
order they appear in the flat file. ID 0 shows top-level taxa.

Examples:
  taxodb children 9604`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runChildren(cmd, args[0])
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}
	return childrenCmd
}

func runChildren(cmd *cobra.Command, arg string) error {
	id, err := parseID(arg)
	if err != nil {
		return err
	}

	res, err := taxonomy.Children(cmd.Context(), newStore(), id)
	if err != nil {
		return err
	}
	return output(cmd, res)
}
