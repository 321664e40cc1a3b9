// This file implements Game B's effective-skill formula: a per-skill
// base/stat/tag formula, then trait, perk, and difficulty modifiers
// layered on top and clamped to 300.
//
// Grounded verbatim on ali-raheem/fallout-se's
// crates/fallout_core/src/fallout2/mod.rs (SKILL_FORMULAS and
// SaveGame::effective_skill_value plus its six private helpers). Game A
// has no equivalent: its saved skill values already include every
// modifier, there being no engine-side formula to reproduce.

package fosave

const statInvalid = -1

const (
	statStrength = iota
	statPerception
	statEndurance
	statCharisma
	statIntelligence
	statAgility
	statLuck
)

const (
	skillSmallGuns = iota
	skillBigGuns
	skillEnergyWeapons
	skillUnarmed
	skillMeleeWeapons
	skillThrowing
	skillFirstAid
	skillDoctor
	skillSneak
	skillLockpick
	skillSteal
	skillTraps
	skillScience
	skillRepair
	skillSpeech
	skillBarter
	skillGambling
	skillOutdoorsman
)

const (
	traitGoodNatured = 10
	traitGifted      = 15
)

const (
	gameDifficultyEasy = 0
	gameDifficultyHard = 2
)

const (
	perkSurvivalist             = 16
	perkMrFixit                 = 31
	perkMedic                   = 32
	perkMasterThief             = 33
	perkSpeaker                 = 34
	perkGhost                   = 38
	perkRanger                  = 47
	perkTag                     = 51
	perkGambler                 = 84
	perkHarmless                = 92
	perkLivingAnatomy           = 98
	perkNegotiator              = 100
	perkSalesman                = 104
	perkThief                   = 106
	perkVaultCityTraining       = 108
	perkExpertExcrementExpeditor = 117
)

type skillFormula struct {
	defaultValue  int32
	statModifier  int32
	stat1         int
	stat2         int32 // statInvalid when unused
	baseValueMult int32
}

// skillFormulas is indexed by skill, values taken verbatim from the
// grounding source.
var skillFormulas = [SkillCount]skillFormula{
	{5, 4, statAgility, statInvalid, 1},                 // Small Guns
	{0, 2, statAgility, statInvalid, 1},                 // Big Guns
	{0, 2, statAgility, statInvalid, 1},                 // Energy Weapons
	{30, 2, statAgility, statStrength, 1},                // Unarmed
	{20, 2, statAgility, statStrength, 1},                // Melee Weapons
	{0, 4, statAgility, statInvalid, 1},                 // Throwing
	{0, 2, statPerception, statIntelligence, 1},          // First Aid
	{5, 1, statPerception, statIntelligence, 1},          // Doctor
	{5, 3, statAgility, statInvalid, 1},                 // Sneak
	{10, 1, statPerception, statAgility, 1},              // Lockpick
	{0, 3, statAgility, statInvalid, 1},                 // Steal
	{10, 1, statPerception, statAgility, 1},              // Traps
	{0, 4, statIntelligence, statInvalid, 1},             // Science
	{0, 3, statIntelligence, statInvalid, 1},             // Repair
	{0, 5, statCharisma, statInvalid, 1},                 // Speech
	{0, 4, statCharisma, statInvalid, 1},                 // Barter
	{0, 5, statLuck, statInvalid, 1},                     // Gambling
	{0, 2, statEndurance, statIntelligence, 1},           // Outdoorsman
}

// EffectiveSkillValue computes skill_index's in-engine value for a Game B
// save: default + stat-modifier*stat-total, doubled and (usually) +20 if
// tagged, then trait/perk/difficulty modifiers, clamped to 300.
func (s *SaveGame) EffectiveSkillValue(skillIndex int) int32 {
	if skillIndex < 0 || skillIndex >= SkillCount {
		return 0
	}

	formula := skillFormulas[skillIndex]
	statSum := s.totalStat(formula.stat1)
	if formula.stat2 != statInvalid {
		statSum += s.totalStat(int(formula.stat2))
	}

	baseValue := s.CritterData.Skills[skillIndex]
	value := formula.defaultValue + formula.statModifier*statSum + baseValue*formula.baseValueMult

	if s.isSkillTagged(skillIndex) {
		value += baseValue * formula.baseValueMult

		hasTagPerk := s.hasPerkRank(perkTag)
		if !hasTagPerk || int32(skillIndex) != s.TaggedSkills[3] {
			value += 20
		}
	}

	value += s.traitSkillModifier(skillIndex)
	value += s.perkSkillModifier(skillIndex)
	value += s.gameDifficultySkillModifier(skillIndex)

	if value > 300 {
		value = 300
	}
	return value
}

func (s *SaveGame) totalStat(statIndex int) int32 {
	return s.CritterData.BaseStats[statIndex] + s.CritterData.BonusStats[statIndex]
}

func (s *SaveGame) isSkillTagged(skillIndex int) bool {
	for _, v := range s.TaggedSkills {
		if v >= 0 && int(v) == skillIndex {
			return true
		}
	}
	return false
}

func (s *SaveGame) hasPerkRank(perkIndex int) bool {
	if perkIndex < 0 || perkIndex >= len(s.Perks) {
		return false
	}
	return s.Perks[perkIndex] > 0
}

func (s *SaveGame) hasTrait(traitIndex int32) bool {
	for _, v := range s.SelectedTraits {
		if v == traitIndex {
			return true
		}
	}
	return false
}

func (s *SaveGame) traitSkillModifier(skillIndex int) int32 {
	var modifier int32

	if s.hasTrait(traitGifted) {
		modifier -= 10
	}

	if s.hasTrait(traitGoodNatured) {
		switch skillIndex {
		case skillSmallGuns, skillBigGuns, skillEnergyWeapons, skillUnarmed,
			skillMeleeWeapons, skillThrowing:
			modifier -= 10
		case skillFirstAid, skillDoctor, skillSpeech, skillBarter:
			modifier += 15
		}
	}

	return modifier
}

func (s *SaveGame) perkSkillModifier(skillIndex int) int32 {
	var modifier int32

	switch skillIndex {
	case skillFirstAid:
		if s.hasPerkRank(perkMedic) {
			modifier += 10
		}
		if s.hasPerkRank(perkVaultCityTraining) {
			modifier += 5
		}
	case skillDoctor:
		if s.hasPerkRank(perkMedic) {
			modifier += 10
		}
		if s.hasPerkRank(perkLivingAnatomy) {
			modifier += 10
		}
		if s.hasPerkRank(perkVaultCityTraining) {
			modifier += 5
		}
	case skillSneak, skillLockpick, skillSteal, skillTraps:
		// Ghost depends on dynamic light level, unavailable from a save file.
		if s.hasPerkRank(perkThief) {
			modifier += 10
		}
		if (skillIndex == skillLockpick || skillIndex == skillSteal) && s.hasPerkRank(perkMasterThief) {
			modifier += 15
		}
		if skillIndex == skillSteal && s.hasPerkRank(perkHarmless) {
			modifier += 20
		}
		_ = s.hasPerkRank(perkGhost)
	case skillScience, skillRepair:
		if s.hasPerkRank(perkMrFixit) {
			modifier += 10
		}
	case skillSpeech, skillBarter:
		if skillIndex == skillSpeech {
			if s.hasPerkRank(perkSpeaker) {
				modifier += 20
			}
			if s.hasPerkRank(perkExpertExcrementExpeditor) {
				modifier += 5
			}
		}
		if s.hasPerkRank(perkNegotiator) {
			modifier += 10
		}
		if skillIndex == skillBarter && s.hasPerkRank(perkSalesman) {
			modifier += 20
		}
	case skillGambling:
		if s.hasPerkRank(perkGambler) {
			modifier += 20
		}
	case skillOutdoorsman:
		if s.hasPerkRank(perkRanger) {
			modifier += 15
		}
		if s.hasPerkRank(perkSurvivalist) {
			modifier += 25
		}
	}

	return modifier
}

func (s *SaveGame) gameDifficultySkillModifier(skillIndex int) int32 {
	switch skillIndex {
	case skillFirstAid, skillDoctor, skillSneak, skillLockpick, skillSteal, skillTraps,
		skillScience, skillRepair, skillSpeech, skillBarter, skillGambling, skillOutdoorsman:
	default:
		return 0
	}

	switch s.GameDifficulty {
	case gameDifficultyHard:
		return -10
	case gameDifficultyEasy:
		return 20
	default:
		return 0
	}
}
