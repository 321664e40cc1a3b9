package fosave

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func baseSaveGameB() *SaveGame {
	s := &SaveGame{
		Game:           GameB,
		SelectedTraits: [2]int32{-1, -1},
	}
	for i := range s.TaggedSkills {
		s.TaggedSkills[i] = -1
	}
	s.Perks = make([]int32, PerkCountGameB)
	return s
}

func TestEffectiveSkillValueUntaggedBaseline(t *testing.T) {
	s := baseSaveGameB()
	// Small Guns: default 5, statModifier 4 * agility, no stat2.
	s.CritterData.BaseStats[statAgility] = 5
	got := s.EffectiveSkillValue(skillSmallGuns)
	assert.Equal(t, int32(5+4*5), got)
}

func TestEffectiveSkillValueTaggedAddsBaseAndTwenty(t *testing.T) {
	untagged := baseSaveGameB()
	untagged.CritterData.BaseStats[statAgility] = 5
	untaggedValue := untagged.EffectiveSkillValue(skillSmallGuns)

	tagged := baseSaveGameB()
	tagged.CritterData.BaseStats[statAgility] = 5
	tagged.TaggedSkills[0] = skillSmallGuns
	taggedValue := tagged.EffectiveSkillValue(skillSmallGuns)

	// Tagging adds the base value again (baseValue=0 here since
	// CritterData.Skills is untouched) plus the flat +20 tag bonus.
	assert.Equal(t, untaggedValue+20, taggedValue)
}

func TestEffectiveSkillValueTagPerkSuppressesBonusOnFourthTag(t *testing.T) {
	s := baseSaveGameB()
	s.CritterData.BaseStats[statAgility] = 5
	s.TaggedSkills[3] = skillSmallGuns // the 4th tag slot, granted by the Tag! perk
	s.Perks[perkTag] = 1

	withoutTagPerk := baseSaveGameB()
	withoutTagPerk.CritterData.BaseStats[statAgility] = 5
	withoutTagPerk.TaggedSkills[3] = skillSmallGuns

	withTagPerk := s.EffectiveSkillValue(skillSmallGuns)
	withoutIt := withoutTagPerk.EffectiveSkillValue(skillSmallGuns)

	// Having the Tag! perk AND this being its bonus tag slot must suppress
	// the usual +20, so the perk-holder's value is lower.
	assert.Equal(t, withoutIt-20, withTagPerk)
}

func TestEffectiveSkillValueGiftedTraitPenalty(t *testing.T) {
	plain := baseSaveGameB().EffectiveSkillValue(skillSmallGuns)

	gifted := baseSaveGameB()
	gifted.SelectedTraits[0] = traitGifted
	got := gifted.EffectiveSkillValue(skillSmallGuns)

	assert.Equal(t, plain-10, got)
}

func TestEffectiveSkillValueGoodNaturedSplitsCombatAndNonCombat(t *testing.T) {
	s := baseSaveGameB()
	s.SelectedTraits[0] = traitGoodNatured

	combat := s.EffectiveSkillValue(skillSmallGuns)
	plainCombat := baseSaveGameB().EffectiveSkillValue(skillSmallGuns)
	assert.Equal(t, plainCombat-10, combat)

	nonCombat := s.EffectiveSkillValue(skillFirstAid)
	plainNonCombat := baseSaveGameB().EffectiveSkillValue(skillFirstAid)
	assert.Equal(t, plainNonCombat+15, nonCombat)
}

func TestEffectiveSkillValuePerkModifier(t *testing.T) {
	s := baseSaveGameB()
	s.Perks[perkMedic] = 1
	got := s.EffectiveSkillValue(skillFirstAid)
	plain := baseSaveGameB().EffectiveSkillValue(skillFirstAid)
	assert.Equal(t, plain+10, got)
}

func TestEffectiveSkillValueDifficultyModifier(t *testing.T) {
	hard := baseSaveGameB()
	hard.GameDifficulty = gameDifficultyHard
	easy := baseSaveGameB()
	easy.GameDifficulty = gameDifficultyEasy
	normal := baseSaveGameB()
	normal.GameDifficulty = 1 // neither gameDifficultyEasy(0) nor gameDifficultyHard(2)

	assert.Equal(t, normal.EffectiveSkillValue(skillLockpick)-10, hard.EffectiveSkillValue(skillLockpick))
	assert.Equal(t, normal.EffectiveSkillValue(skillLockpick)+20, easy.EffectiveSkillValue(skillLockpick))
	// Combat skills are excluded from the difficulty modifier.
	assert.Equal(t, normal.EffectiveSkillValue(skillSmallGuns), hard.EffectiveSkillValue(skillSmallGuns))
}

func TestEffectiveSkillValueClampsTo300(t *testing.T) {
	s := baseSaveGameB()
	s.CritterData.BaseStats[statAgility] = 10
	s.CritterData.Skills[skillSmallGuns] = 1000
	got := s.EffectiveSkillValue(skillSmallGuns)
	assert.Equal(t, int32(300), got)
}

func TestEffectiveSkillValueOutOfRangeIndex(t *testing.T) {
	s := baseSaveGameB()
	assert.Equal(t, int32(0), s.EffectiveSkillValue(-1))
	assert.Equal(t, int32(0), s.EffectiveSkillValue(SkillCount))
}

func TestHasPerkRankBoundsCheck(t *testing.T) {
	s := baseSaveGameB()
	assert.False(t, s.hasPerkRank(-1))
	assert.False(t, s.hasPerkRank(len(s.Perks)))
	s.Perks[perkExpertExcrementExpeditor] = 1
	assert.True(t, s.hasPerkRank(perkExpertExcrementExpeditor))
}
