/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>
*/
package cmd

import (
	"github.com/gnames/gn"
	"github.com/gnames/taxodb/pkg/taxonomy"
	"github.com/spf13/cobra"
)

// getTreeCmd returns the tree command.
func getTreeCmd() *cobra.Command {
	treeCmd := &cobra.Command{
		Use:   "tree <taxon-id>",
		Short: "Show the family tree of a taxon",
		Long: `Expand descendants of a taxon breadth-first and show discovered
parent/child pairs.

Expansion stops after the first round of children that brings the number
of pairs over the limit, so the output can be larger than the limit.

Examples:
  taxodb tree 9604
  taxodb tree 9604 --limit 1000 --format json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runTree(cmd, args[0])
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	treeCmd.Flags().IntP("limit", "l", 0, "number of edges to stop after")
	treeCmd.Flags().StringP("method", "m", "", "traversal method (bfs)")
	return treeCmd
}

func runTree(cmd *cobra.Command, arg string) error {
	id, err := parseID(arg)
	if err != nil {
		return err
	}

	opts := taxonomy.TreeOptions{Limit: cfg.Tree.Limit, Method: cfg.Tree.Method}
	flags := cmd.Flags()
	if flags.Changed("limit") {
		opts.Limit, _ = flags.GetInt("limit")
	}
	if flags.Changed("method") {
		opts.Method, _ = flags.GetString("method")
	}

	tree, err := taxonomy.FamilyTree(cmd.Context(), newStore(), id, opts)
	if err != nil {
		return err
	}

	if tree.LimitReached {
		gn.Warn("Tree of <em>%d</em> is truncated after %d edges",
			id, len(tree.Edges))
	}
	return output(cmd, tree)
}
