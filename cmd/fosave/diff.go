package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/fosave/fosave/fosave"
)

func newDiffCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diff <file-a> <file-b>",
		Short: "Diff two saves' Snapshot fields by name",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			a := openDocument(cmd, args[0])
			b := openDocument(cmd, args[1])

			diffs := fosave.DiffFields(a, b)

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			if err := enc.Encode(diffs); err != nil {
				fail(ExitCodeRenderFailed, "Failed to encode diff: %v", err)
			}
		},
	}
	return cmd
}
