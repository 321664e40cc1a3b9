// Classic text character-sheet rendering, grounded on
// ali-raheem/fallout-se's crates/fallout_render/src/lib.rs
// (render_classic_sheet_impl): a fixed-column layout built by padding
// strings to target widths, the same "build a human string from struct
// fields with a small format helper" shape as icza/screp's
// rep.Header.Matchup/PlayerNames.

package render

import (
	"fmt"
	"strings"

	"github.com/fosave/fosave/fosave"
)

// TextStyle selects a text rendering shape. ClassicFallout is the only
// variant today.
type TextStyle int

const (
	ClassicFallout TextStyle = iota
)

// CharacterSheet renders d as the classic Fallout character sheet text.
func CharacterSheet(d *fosave.Document) string {
	return Text(d, ClassicFallout)
}

// Text renders d with the given TextStyle.
func Text(d *fosave.Document, style TextStyle) string {
	switch style {
	default:
		return renderClassicSheet(d)
	}
}

var specialNames = [7]string{
	"Strength", "Perception", "Endurance", "Charisma",
	"Intelligence", "Agility", "Luck",
}

type middleCol struct {
	idx   int
	label string
}

type rightCol struct {
	idx   int
	label string
}

var middleCols = [7]middleCol{
	{7, "Hit Points"},
	{9, "Armor Class"},
	{8, "Action Points"},
	{11, "Melee Damage"},
	{24, "Damage Res."},
	{31, "Radiation Res."},
	{32, "Poison Res."},
}

var rightCols = [4]rightCol{
	{13, "Sequence"},
	{14, "Healing Rate"},
	{15, "Critical Chance"},
	{12, "Carry Weight"},
}

func padLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", width-len(s)) + s
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

func center(s string, width int) string {
	if len(s) >= width {
		return s
	}
	total := width - len(s)
	left := total / 2
	right := total - left
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}

func padToLen(s string, target int) string {
	if len(s) >= target {
		return s
	}
	return s + strings.Repeat(" ", target-len(s))
}

func renderClassicSheet(d *fosave.Document) string {
	s := d.Snapshot()

	title := "FALLOUT"
	subtitle := "VAULT-13 PERSONNEL RECORD"
	if s.Game == fosave.GameB {
		title = "FALLOUT II"
		subtitle = "PERSONNEL RECORD"
	}

	dateTimeStr := fmt.Sprintf("%02d %s %d  %s hours",
		s.GameDate.Day, monthToName(s.GameDate.Month), s.GameDate.Year, formatGameTime(s.GameTime))

	var out strings.Builder
	out.WriteString("\n\n")
	out.WriteString(center(title, 76) + "\n")
	out.WriteString(center(subtitle, 76) + "\n")
	out.WriteString(center(dateTimeStr, 76) + "\n")
	out.WriteString("\n")

	nameSection := "  Name: " + padRight(s.CharacterName, 19)
	ageSection := "Age: " + padRight(fmt.Sprintf("%d", d.Age()), 17)
	fmt.Fprintf(&out, "%s%sGender: %s\n", nameSection, ageSection, s.Gender.String())

	levelSection := padRight(fmt.Sprintf(" Level: %02d", s.Level), 27)
	xpStr := formatNumberWithCommas(s.Experience)
	nextXPStr := formatNumberWithCommas(d.NextLevelXP())
	expSection := "Exp: " + padRight(xpStr, 13)
	fmt.Fprintf(&out, "%s%sNext Level: %s\n", levelSection, expSection, nextXPStr)
	out.WriteString("\n")

	currentHP := int32(0)
	if hp := d.CurrentHP(); hp != nil {
		currentHP = *hp
	}
	maxHP := d.MaxHP()

	for row := 0; row < 7; row++ {
		specialVal := d.Stat(row).Total
		line := padLeft(specialNames[row], 15) + ": " + fmt.Sprintf("%02d", specialVal)

		mid := middleCols[row]
		var midVal string
		switch row {
		case 0:
			midVal = fmt.Sprintf("%03d/%03d", currentHP, maxHP)
		case 1:
			midVal = fmt.Sprintf("%03d", d.Stat(mid.idx).Total)
		case 2, 3:
			midVal = fmt.Sprintf("%02d", d.Stat(mid.idx).Total)
		case 4, 5, 6:
			midVal = fmt.Sprintf("%03d%%", d.Stat(mid.idx).Total)
		}
		line = padToLen(line, 38-len(mid.label)) + mid.label + ": " + midVal

		if row < len(rightCols) {
			right := rightCols[row]
			var rightVal string
			switch row {
			case 0, 1:
				rightVal = fmt.Sprintf("%02d", d.Stat(right.idx).Total)
			case 2:
				rightVal = fmt.Sprintf("%03d%%", d.Stat(right.idx).Total)
			case 3:
				rightVal = fmt.Sprintf("%d lbs.", d.Stat(right.idx).Total)
			}
			line = padToLen(line, 64-len(right.label)) + right.label + ": " + rightVal
		}

		out.WriteString(line + "\n")
	}
	out.WriteString("\n\n")

	traits := d.SelectedTraitEntries()
	perks := d.ActivePerks()

	out.WriteString(" ::: Traits :::           ::: Perks :::           ::: Karma :::\n")
	for _, t := range traits {
		out.WriteString("  " + t.Name + "\n")
	}

	if len(perks) > 0 {
		out.WriteString(" ::: Skills :::                ::: Kills :::\n")
		for _, p := range perks {
			if p.Rank > 1 {
				fmt.Fprintf(&out, "  %s (%d)\n", p.Name, p.Rank)
			} else {
				out.WriteString("  " + p.Name + "\n")
			}
		}
	}
	out.WriteString("\n")

	return out.String()
}
