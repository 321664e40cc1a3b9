package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fosave/fosave/render"
)

func newInfoCmd() *cobra.Command {
	var sheet bool
	var selectFields string

	cmd := &cobra.Command{
		Use:   "info <file>",
		Short: "Print a save's header-level info, as JSON or a classic character sheet",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			d := openDocument(cmd, args[0])

			if sheet {
				fmt.Print(render.CharacterSheet(d))
				return
			}

			var out []byte
			var err error
			if selectFields != "" {
				fields, ferr := parseFieldSelection(selectFields)
				if ferr != nil {
					fail(ExitCodeUsage, "Invalid --select: %v", ferr)
				}
				out, err = render.JSONSelected(d, fields, render.CanonicalV1)
			} else {
				out, err = render.JSON(d, render.CanonicalV1)
			}
			if err != nil {
				fail(ExitCodeRenderFailed, "Failed to render JSON: %v", err)
			}
			fmt.Println(string(out))
		},
	}
	cmd.Flags().BoolVar(&sheet, "sheet", false, "print the classic text character sheet instead of JSON")
	cmd.Flags().StringVar(&selectFields, "select", "", "comma-separated field names to include (omit for all fields)")
	return cmd
}

var fieldSelectionNames = map[string]func(*render.FieldSelection){
	"name":          func(f *render.FieldSelection) { f.Name = true },
	"description":   func(f *render.FieldSelection) { f.Description = true },
	"gender":        func(f *render.FieldSelection) { f.Gender = true },
	"age":           func(f *render.FieldSelection) { f.Age = true },
	"level":         func(f *render.FieldSelection) { f.Level = true },
	"xp":            func(f *render.FieldSelection) { f.XP = true },
	"karma":         func(f *render.FieldSelection) { f.Karma = true },
	"reputation":    func(f *render.FieldSelection) { f.Reputation = true },
	"skillpoints":   func(f *render.FieldSelection) { f.SkillPoints = true },
	"map":           func(f *render.FieldSelection) { f.MapFilename = true },
	"elevation":     func(f *render.FieldSelection) { f.Elevation = true },
	"gamedate":      func(f *render.FieldSelection) { f.GameDate = true },
	"savedate":      func(f *render.FieldSelection) { f.SaveDate = true },
	"traits":        func(f *render.FieldSelection) { f.Traits = true },
	"hp":            func(f *render.FieldSelection) { f.HP = true },
	"maxhp":         func(f *render.FieldSelection) { f.MaxHP = true },
	"nextlevelxp":   func(f *render.FieldSelection) { f.NextLevelXP = true },
	"gametime":      func(f *render.FieldSelection) { f.GameTime = true },
	"special":       func(f *render.FieldSelection) { f.Special = true },
	"derivedstats":  func(f *render.FieldSelection) { f.DerivedStats = true },
	"skills":        func(f *render.FieldSelection) { f.Skills = true },
	"perks":         func(f *render.FieldSelection) { f.Perks = true },
	"kills":         func(f *render.FieldSelection) { f.Kills = true },
	"inventory":     func(f *render.FieldSelection) { f.Inventory = true },
}

func parseFieldSelection(raw string) (render.FieldSelection, error) {
	var f render.FieldSelection
	for _, name := range strings.Split(raw, ",") {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		set, ok := fieldSelectionNames[name]
		if !ok {
			return f, fmt.Errorf("unknown field %q", name)
		}
		set(&f)
	}
	return f, nil
}
