// This file collects the format's fixed-size constants and display-name
// tables. Values are taken verbatim from ali-raheem/fallout-se's
// crates/fallout_core/src/fallout1/types.rs, which is shared ground truth
// for both games except where noted.
//
// Game B's own fallout2::types module was not present in the retrieval
// pack handed to this project (only fallout2/mod.rs and fallout2/sections.rs
// were available), so KillTypeCountGameB is inferred from mod.rs's "kill
// counts (76 bytes)" comment: 76 / 4 = 19.

package fosave

import "fmt"

const (
	SignatureText = "FALLOUT SAVE FILE"
	PreviewSize   = 29792 // 224x133 thumbnail
	HeaderPadding = 128

	SaveableStatCount = 35
	SkillCount        = 18
	PerkCount         = 63
	TraitCount        = 16
	PCStatCount       = 5
	TaggedSkillCount  = 4

	KillTypeCountGameA = 16
	KillTypeCountGameB = 19 // inferred: "kill counts (76 bytes)" / 4

	// PerkCountGameB is Game B's own perk array width, wider than Game A's
	// PerkCount; only the first PerkCount indices have names (see PerkName).
	PerkCountGameB = 121

	ObjTypeScenery = 2

	StatAgeIndex    = 33
	StatGenderIndex = 34
)

// StatNames names the 35 saveable character stats by index.
var StatNames = [SaveableStatCount]string{
	"Strength", "Perception", "Endurance", "Charisma", "Intelligence",
	"Agility", "Luck", "Max HP", "Max AP", "Armor Class", "Unarmed Damage",
	"Melee Damage", "Carry Weight", "Sequence", "Healing Rate",
	"Critical Chance", "Better Criticals", "DT Normal", "DT Laser",
	"DT Fire", "DT Plasma", "DT Electrical", "DT EMP", "DT Explosion",
	"DR Normal", "DR Laser", "DR Fire", "DR Plasma", "DR Electrical",
	"DR EMP", "DR Explosion", "Radiation Resistance", "Poison Resistance",
	"Age", "Gender",
}

// SkillNames names the 18 skills by index.
var SkillNames = [SkillCount]string{
	"Small Guns", "Big Guns", "Energy Weapons", "Unarmed", "Melee Weapons",
	"Throwing", "First Aid", "Doctor", "Sneak", "Lockpick", "Steal",
	"Traps", "Science", "Repair", "Speech", "Barter", "Gambling",
	"Outdoorsman",
}

// PerkNames names the 63 perk slots by index, including the trailing
// pseudo-perks used for addiction and weapon/armor mod tracking.
var PerkNames = [PerkCount]string{
	"Awareness", "Bonus HtH Attacks", "Bonus HtH Damage", "Bonus Move",
	"Bonus Ranged Damage", "Bonus Rate of Fire", "Earlier Sequence",
	"Faster Healing", "More Criticals", "Night Vision", "Presence",
	"Rad Resistance", "Toughness", "Strong Back", "Sharpshooter",
	"Silent Running", "Survivalist", "Master Trader", "Educated", "Healer",
	"Fortune Finder", "Better Criticals", "Empathy", "Slayer", "Sniper",
	"Silent Death", "Action Boy", "Mental Block", "Lifegiver", "Dodger",
	"Snakeater", "Mr. Fixit", "Medic", "Master Thief", "Speaker",
	"Heave Ho!", "Friendly Foe", "Pickpocket", "Ghost",
	"Cult of Personality", "Scrounger", "Explorer", "Flower Child",
	"Pathfinder", "Animal Friend", "Scout", "Mysterious Stranger",
	"Ranger", "Quick Pockets", "Smooth Talker", "Swift Learner", "Tag!",
	"Mutate!",
	"Nuka-Cola Addiction", "Buffout Addiction", "Mentats Addiction",
	"Psycho Addiction", "Radaway Addiction", "Weapon Long Range",
	"Weapon Accurate", "Weapon Penetrate", "Weapon Knockback",
	"Powered Armor",
}

// TraitNames names the 16 selectable traits by index.
var TraitNames = [TraitCount]string{
	"Fast Metabolism", "Bruiser", "Small Frame", "One Hander", "Finesse",
	"Kamikaze", "Heavy Handed", "Fast Shot", "Bloody Mess", "Jinxed",
	"Good Natured", "Chem Reliant", "Chem Resistant", "Night Person",
	"Skilled", "Gifted",
}

// KillTypeNamesGameA names Game A's 16 kill-count buckets by index.
var KillTypeNamesGameA = [KillTypeCountGameA]string{
	"Man", "Woman", "Child", "Super Mutant", "Ghoul", "Brahmin",
	"Radscorpion", "Rat", "Floater", "Centaur", "Robot", "Dog", "Mantis",
	"Deathclaw", "Plant", "(Unused)",
}

// KillTypeName returns the display name for kill bucket index i under the
// given game. Game B extends Game A's 16 named buckets to 19 slots; the
// three additional buckets' names were not available in the retrieval
// source, so they fall back to a positional label rather than a guess.
func KillTypeName(game Game, i int) string {
	if i >= 0 && i < len(KillTypeNamesGameA) {
		return KillTypeNamesGameA[i]
	}
	if game == GameB && i >= 0 && i < KillTypeCountGameB {
		return fmt.Sprintf("Kill Type %d", i)
	}
	return fmt.Sprintf("Kill Type %d", i)
}

// PerkName returns the display name for perk index i under the given
// game. Game B's perk table is wider than Game A's and its extra names
// were not available in the retrieval source (see PerkCountGameB), so
// indices beyond PerkNames fall back to a positional label.
func PerkName(game Game, i int) string {
	if i >= 0 && i < len(PerkNames) {
		return PerkNames[i]
	}
	return fmt.Sprintf("Perk %d", i)
}
