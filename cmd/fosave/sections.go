package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/fosave/fosave/fosave"
)

type sectionView struct {
	ID    string `json:"id"`
	Start int    `json:"start"`
	End   int    `json:"end"`
	Len   int    `json:"len"`
}

func newSectionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sections <file>",
		Short: "List the recovered section layout as JSON",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			d := openDocument(cmd, args[0])
			out := sectionsToView(d.Sections())

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			if err := enc.Encode(out); err != nil {
				fail(ExitCodeRenderFailed, "Failed to encode sections: %v", err)
			}
		},
	}
	return cmd
}

func sectionsToView(sections []fosave.SectionLayout) []sectionView {
	out := make([]sectionView, 0, len(sections))
	for _, s := range sections {
		out = append(out, sectionView{
			ID:    s.ID.String(),
			Start: s.Range.Start,
			End:   s.Range.End,
			Len:   s.Range.Len(),
		})
	}
	return out
}
