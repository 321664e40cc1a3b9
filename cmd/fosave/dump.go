package main

import (
	"os"

	"github.com/spf13/cobra"
)

func newDumpCmd() *cobra.Command {
	var outFile string

	cmd := &cobra.Command{
		Use:   "dump <file> <section-id>",
		Short: "Dump one section's raw bytes (e.g. \"header\", \"tail\", \"6\")",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			d := openDocument(cmd, args[0])

			id, err := parseSectionID(args[1])
			if err != nil {
				fail(ExitCodeUsage, "Invalid section id: %v", err)
			}

			data, err := d.SectionBytes(id)
			if err != nil {
				fail(ExitCodeParseFailed, "Failed to dump section: %v", err)
			}

			destination := os.Stdout
			if outFile != "" {
				f, err := os.Create(outFile)
				if err != nil {
					fail(ExitCodeWriteFailed, "Failed to create output file: %v", err)
				}
				defer f.Close()
				destination = f
			}

			if _, err := destination.Write(data); err != nil {
				fail(ExitCodeWriteFailed, "Failed to write section bytes: %v", err)
			}
		},
	}
	cmd.Flags().StringVar(&outFile, "out", "", "optional output file name (default stdout)")
	return cmd
}
