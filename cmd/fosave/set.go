// "set" subcommands wrap every Document mutator from fosave/edit.go. Each
// one opens the file, applies one edit, and re-emits the modified bytes
// (Game A only; Game B documents reject every one of these with
// KindUnsupportedOperation).

package main

import (
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fosave/fosave/fosave"
)

func newSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Apply one edit to a Game A save and re-emit the modified bytes",
	}
	cmd.AddCommand(
		newSetSimpleCmd("age", "Set the player's age", func(d *fosave.Document, v string) error {
			n, err := parseInt32(v)
			if err != nil {
				return err
			}
			return d.SetAge(n)
		}),
		newSetSimpleCmd("level", "Set the player's level", func(d *fosave.Document, v string) error {
			n, err := parseInt32(v)
			if err != nil {
				return err
			}
			return d.SetLevel(n)
		}),
		newSetSimpleCmd("experience", "Set the player's experience", func(d *fosave.Document, v string) error {
			n, err := parseInt32(v)
			if err != nil {
				return err
			}
			return d.SetExperience(n)
		}),
		newSetSimpleCmd("skillpoints", "Set the player's unspent skill points", func(d *fosave.Document, v string) error {
			n, err := parseInt32(v)
			if err != nil {
				return err
			}
			return d.SetSkillPoints(n)
		}),
		newSetSimpleCmd("reputation", "Set the player's reputation", func(d *fosave.Document, v string) error {
			n, err := parseInt32(v)
			if err != nil {
				return err
			}
			return d.SetReputation(n)
		}),
		newSetSimpleCmd("karma", "Set the player's karma", func(d *fosave.Document, v string) error {
			n, err := parseInt32(v)
			if err != nil {
				return err
			}
			return d.SetKarma(n)
		}),
		newSetSimpleCmd("hp", "Set the player's current HP", func(d *fosave.Document, v string) error {
			n, err := parseInt32(v)
			if err != nil {
				return err
			}
			return d.SetHP(n)
		}),
		newSetSimpleCmd("gender", "Set the player's gender (male, female, or a raw stat value)", func(d *fosave.Document, v string) error {
			return d.SetGender(parseGender(v))
		}),
		newSetIndexedCmd("basestat", "Set a SPECIAL/derived base stat by index", func(d *fosave.Document, idx int, v string) error {
			n, err := parseInt32(v)
			if err != nil {
				return err
			}
			return d.SetBaseStat(idx, n)
		}),
		newSetIndexedCmd("trait", "Set (or clear, with value \"clear\") a trait slot", func(d *fosave.Document, slot int, v string) error {
			if strings.EqualFold(v, "clear") {
				return d.ClearTrait(slot)
			}
			n, err := parseInt32(v)
			if err != nil {
				return err
			}
			return d.SetTrait(slot, n)
		}),
		newSetIndexedCmd("perk", "Set (or clear, with value \"clear\") a perk's rank by index", func(d *fosave.Document, idx int, v string) error {
			if strings.EqualFold(v, "clear") {
				return d.ClearPerk(idx)
			}
			n, err := parseInt32(v)
			if err != nil {
				return err
			}
			return d.SetPerkRank(idx, n)
		}),
		newInventoryCmd("inventory", "Set an inventory item's quantity outright (0 removes it)", func(d *fosave.Document, pid, v int32) error {
			return d.SetInventoryQuantity(pid, v)
		}),
		newInventoryCmd("inventory-add", "Add to an existing inventory item's quantity (fails if the pid is not present)", func(d *fosave.Document, pid, v int32) error {
			return d.AddInventoryItem(pid, v)
		}),
		newInventoryCmd("inventory-remove", "Remove from an inventory item's quantity", func(d *fosave.Document, pid, v int32) error {
			return d.RemoveInventoryItem(pid, v)
		}),
	)
	return cmd
}

func parseInt32(v string) (int32, error) {
	n, err := strconv.ParseInt(v, 10, 32)
	return int32(n), err
}

func parseGender(v string) fosave.Gender {
	switch strings.ToLower(v) {
	case "male":
		return fosave.GenderMale
	case "female":
		return fosave.GenderFemale
	default:
		n, _ := parseInt32(v)
		return fosave.GenderFromRaw(n)
	}
}

func newSetSimpleCmd(name, short string, apply func(*fosave.Document, string) error) *cobra.Command {
	var outFile string
	cmd := &cobra.Command{
		Use:   name + " <file> <value>",
		Short: short,
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			d := openDocument(cmd, args[0])
			if err := apply(d, args[1]); err != nil {
				fail(ExitCodeEditFailed, "Failed to apply edit: %v", err)
			}
			writeModified(d, args[0], outFile)
		},
	}
	cmd.Flags().StringVar(&outFile, "out", "", "output file (default: overwrite the input file)")
	return cmd
}

func newSetIndexedCmd(name, short string, apply func(*fosave.Document, int, string) error) *cobra.Command {
	var outFile string
	cmd := &cobra.Command{
		Use:   name + " <file> <index> <value>",
		Short: short,
		Args:  cobra.ExactArgs(3),
		Run: func(cmd *cobra.Command, args []string) {
			idx, err := strconv.Atoi(args[1])
			if err != nil {
				fail(ExitCodeUsage, "Invalid index %q: %v", args[1], err)
			}
			d := openDocument(cmd, args[0])
			if err := apply(d, idx, args[2]); err != nil {
				fail(ExitCodeEditFailed, "Failed to apply edit: %v", err)
			}
			writeModified(d, args[0], outFile)
		},
	}
	cmd.Flags().StringVar(&outFile, "out", "", "output file (default: overwrite the input file)")
	return cmd
}

func newInventoryCmd(name, short string, apply func(d *fosave.Document, pid, v int32) error) *cobra.Command {
	var outFile string
	cmd := &cobra.Command{
		Use:   name + " <file> <pid> <value>",
		Short: short,
		Args:  cobra.ExactArgs(3),
		Run: func(cmd *cobra.Command, args []string) {
			pid, err := parseInt32(args[1])
			if err != nil {
				fail(ExitCodeUsage, "Invalid pid %q: %v", args[1], err)
			}
			value, err := parseInt32(args[2])
			if err != nil {
				fail(ExitCodeUsage, "Invalid value %q: %v", args[2], err)
			}
			d := openDocument(cmd, args[0])
			if err := apply(d, pid, value); err != nil {
				fail(ExitCodeEditFailed, "Failed to apply edit: %v", err)
			}
			writeModified(d, args[0], outFile)
		},
	}
	cmd.Flags().StringVar(&outFile, "out", "", "output file (default: overwrite the input file)")
	return cmd
}

func writeModified(d *fosave.Document, inputPath, outFile string) {
	data, err := d.ToBytesModified()
	if err != nil {
		fail(ExitCodeEditFailed, "Failed to re-emit modified save: %v", err)
	}
	target := outFile
	if target == "" {
		target = inputPath
	}
	if err := os.WriteFile(target, data, 0o644); err != nil {
		fail(ExitCodeWriteFailed, "Failed to write %s: %v", target, err)
	}
}
