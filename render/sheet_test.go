package render

import (
	"strings"
	"testing"

	"github.com/fosave/fosave/fosave"
	"github.com/stretchr/testify/assert"
)

func TestCharacterSheetIncludesTitleAndName(t *testing.T) {
	d := minimalSheetDocument()
	sheet := CharacterSheet(d)

	assert.Contains(t, sheet, "FALLOUT")
	assert.Contains(t, sheet, "Chosen One")
	assert.Contains(t, sheet, "Strength")
}

func TestCharacterSheetGameBUsesFalloutIITitle(t *testing.T) {
	d := minimalSheetDocument()
	d.Save.Game = fosave.GameB
	sheet := CharacterSheet(d)

	assert.Contains(t, sheet, "FALLOUT II")
	assert.NotContains(t, sheet, "VAULT-13")
}

func TestCharacterSheetListsSelectedTraits(t *testing.T) {
	d := minimalSheetDocument()
	d.Save.SelectedTraits = [2]int32{0, -1}
	sheet := CharacterSheet(d)

	assert.Contains(t, sheet, fosave.TraitNames[0])
}

func TestCharacterSheetOmitsPerksSectionWhenNoneActive(t *testing.T) {
	d := minimalSheetDocument()
	sheet := CharacterSheet(d)
	assert.False(t, strings.Contains(sheet, "::: Skills :::"))
}

func TestCharacterSheetShowsPerkRankWhenAboveOne(t *testing.T) {
	d := minimalSheetDocument()
	d.Save.Perks[0] = 2
	sheet := CharacterSheet(d)

	assert.Contains(t, sheet, "(2)")
}

func TestFormatNumberWithCommas(t *testing.T) {
	assert.Equal(t, "1,234,567", formatNumberWithCommas(1234567))
	assert.Equal(t, "42", formatNumberWithCommas(42))
	assert.Equal(t, "-1,000", formatNumberWithCommas(-1000))
}

func TestFormatGameTime(t *testing.T) {
	assert.Equal(t, "0000", formatGameTime(0))
	assert.Equal(t, "0130", formatGameTime(900))
}

func TestMonthToName(t *testing.T) {
	assert.Equal(t, "January", monthToName(1))
	assert.Equal(t, "December", monthToName(12))
	assert.Equal(t, "Unknown", monthToName(13))
}
