package fosave

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNameTableLengths(t *testing.T) {
	assert.Len(t, StatNames, SaveableStatCount)
	assert.Len(t, SkillNames, SkillCount)
	assert.Len(t, PerkNames, PerkCount)
	assert.Len(t, TraitNames, TraitCount)
	assert.Len(t, KillTypeNamesGameA, KillTypeCountGameA)
}

func TestKillTypeName(t *testing.T) {
	assert.Equal(t, "Man", KillTypeName(GameA, 0))
	assert.Equal(t, "(Unused)", KillTypeName(GameA, 15))
	assert.Equal(t, "Kill Type 16", KillTypeName(GameB, 16))
	assert.Equal(t, "Kill Type 18", KillTypeName(GameB, KillTypeCountGameB-1))
}

func TestPerkName(t *testing.T) {
	assert.Equal(t, "Awareness", PerkName(GameA, 0))
	assert.Equal(t, "Tag!", PerkName(GameB, 51))
	assert.Equal(t, "Perk 117", PerkName(GameB, 117))
}
