// CLI wiring, grounded on icza/screp's cmd/screp/screp.go for the
// ExitCode*/stderr-and-exit convention, generalized from one flag-parsed
// binary into github.com/spf13/cobra subcommands (info, get, set,
// sections, dump, diff) per the multi-verb CLI this spec needs.

package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fosave/fosave/fosave"
	"github.com/fosave/fosave/internal/logx"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           appName,
		Short:         "Inspect and edit Game A / Game B character save files",
		Version:       appVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String("game", "auto", "game hint: auto, a, b")
	root.AddCommand(newInfoCmd())
	root.AddCommand(newGetCmd())
	root.AddCommand(newSetCmd())
	root.AddCommand(newSectionsCmd())
	root.AddCommand(newDumpCmd())
	root.AddCommand(newDiffCmd())
	return root
}

func fail(code int, format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(code)
}

func parseHint(raw string) (fosave.Hint, error) {
	switch strings.ToLower(raw) {
	case "", "auto":
		return fosave.HintAuto, nil
	case "a", "gamea":
		return fosave.HintGameA, nil
	case "b", "gameb":
		return fosave.HintGameB, nil
	default:
		return fosave.HintAuto, fmt.Errorf("unrecognized game hint %q", raw)
	}
}

// openDocument reads path and parses it under the hint named by the
// command's --game flag, exiting the process on failure the way the
// teacher's main() does for a failed replay parse.
func openDocument(cmd *cobra.Command, path string) *fosave.Document {
	gameFlag, _ := cmd.Flags().GetString("game")
	hint, err := parseHint(gameFlag)
	if err != nil {
		fail(ExitCodeUsage, "Invalid --game: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		fail(ExitCodeOpenFailed, "Failed to read %s: %v", path, err)
	}

	d, err := fosave.Open(data, hint)
	if err != nil {
		logx.L.Error().Err(err).Str("file", path).Msg("parse failed")
		fail(ExitCodeParseFailed, "Failed to parse %s: %v", path, err)
	}
	return d
}

// parseSectionID accepts "header", "tail", a bare handler number ("6"),
// or "handler(6)" / "handler:6", matching the shape SectionID.String()
// itself prints.
func parseSectionID(raw string) (fosave.SectionID, error) {
	trimmed := strings.TrimSpace(raw)
	switch strings.ToLower(trimmed) {
	case "header":
		return fosave.HeaderSectionID, nil
	case "tail":
		return fosave.TailSectionID, nil
	}

	lower := strings.ToLower(trimmed)
	lower = strings.TrimPrefix(lower, "handler")
	lower = strings.TrimPrefix(lower, "(")
	lower = strings.TrimPrefix(lower, ":")
	lower = strings.TrimSuffix(lower, ")")

	n, err := strconv.Atoi(lower)
	if err != nil {
		return fosave.SectionID{}, fmt.Errorf("unrecognized section id %q", raw)
	}
	return fosave.HandlerSectionID(n), nil
}
