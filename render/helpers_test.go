package render

import "github.com/fosave/fosave/fosave"

// minimalSheetDocument builds a Document with just enough populated to
// exercise the renderers without needing a real parsed save file (none
// are available to test against).
func minimalSheetDocument() *fosave.Document {
	save := &fosave.SaveGame{
		Game:   fosave.GameA,
		Header: &fosave.Header{CharacterName: "Chosen One", Description: "Vault 13", MapFile: "ARTEMPLE.MAP", Map: 42},
		PlayerObject: &fosave.GameObject{
			InventoryLength: -1,
			Data:            fosave.CritterPayload{HP: 25},
		},
		SelectedTraits: [2]int32{-1, -1},
		Perks:          make([]int32, fosave.PerkCount),
		KillCounts:     make([]int32, fosave.KillTypeCountGameA),
		PCStats:        fosave.PCStats{Level: 3, Experience: 1500},
	}
	for i := range save.TaggedSkills {
		save.TaggedSkills[i] = -1
	}
	save.CritterData.BaseStats[0] = 5
	save.CritterData.BaseStats[7] = 20 // hit points
	return &fosave.Document{Save: save}
}
