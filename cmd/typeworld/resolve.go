package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/conneroisu/typeworld"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve PATH...",
	Short: "Print the filesystem identity of each path",
	Long: `Computes the 128-bit identity of the entity behind each path. Two paths
that reach the same underlying file (hardlinks, symlinks, relative vs.
canonical spellings) print the same identity.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runResolve,
}

func runResolve(cmd *cobra.Command, args []string) error {
	var firstErr error
	for _, path := range args {
		id, err := typeworld.IdentityOf(path)
		if err != nil {
			fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", path, err)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", path, id)
	}
	return firstErr
}
