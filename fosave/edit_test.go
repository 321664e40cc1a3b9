package fosave

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fosave/fosave/internal/breader"
)

// newEditableDocument builds a Game A document with just enough section
// blobs (sized by the offset constants in edit.go) to exercise every
// mutator without needing a real save file.
func newEditableDocument() *Document {
	sizes := []struct {
		id   SectionID
		size int
	}{
		{HeaderSectionID, 4},
		{HandlerSectionID(5), 200},
		{HandlerSectionID(6), 400},
		{HandlerSectionID(10), 300},
		{HandlerSectionID(13), 24},
		{HandlerSectionID(16), 16},
		{TailSectionID, 4},
	}
	var sections []SectionLayout
	var blobs [][]byte
	pos := 0
	for _, s := range sizes {
		sections = append(sections, SectionLayout{ID: s.id, Range: ByteRange{Start: pos, End: pos + s.size}})
		blobs = append(blobs, make([]byte, s.size))
		pos += s.size
	}

	save := &SaveGame{
		Game:           GameA,
		Perks:          make([]int32, PerkCount),
		SelectedTraits: [2]int32{-1, -1},
		PlayerObject: &GameObject{
			InventoryLength: -1,
			Data:            CritterPayload{HP: 20},
		},
	}

	return &Document{
		Save:            save,
		layout:          Layout{FileLen: pos, Sections: sections},
		sectionBlobs:    blobs,
		supportsEditing: true,
	}
}

func readI32At(t *testing.T, blob []byte, offset int) int32 {
	t.Helper()
	r := breader.New(blob)
	require.NoError(t, r.Seek(offset))
	v, err := r.I32()
	require.NoError(t, err)
	return v
}

func TestSetHPPatchesBlobAndSnapshot(t *testing.T) {
	d := newEditableDocument()
	require.NoError(t, d.SetHP(99))

	idx, _ := d.sectionIndex(HandlerSectionID(5))
	assert.Equal(t, int32(99), readI32At(t, d.sectionBlobs[idx], playerHPOffsetInHandler5))
	assert.Equal(t, int32(99), d.Save.PlayerObject.Data.(CritterPayload).HP)
}

func TestSetBaseStatPatchesHandler6(t *testing.T) {
	d := newEditableDocument()
	require.NoError(t, d.SetBaseStat(0, 8))

	idx, _ := d.sectionIndex(HandlerSectionID(6))
	offset := critterProtoBaseStatsOffset + 0*i32Width
	assert.Equal(t, int32(8), readI32At(t, d.sectionBlobs[idx], offset))
	assert.Equal(t, int32(8), d.Save.CritterData.BaseStats[0])
}

func TestSetBaseStatRejectsInvalidIndex(t *testing.T) {
	d := newEditableDocument()
	assert.Error(t, d.SetBaseStat(-1, 1))
	assert.Error(t, d.SetBaseStat(SaveableStatCount, 1))
}

func TestSetAgePatchesAgeSlot(t *testing.T) {
	d := newEditableDocument()
	require.NoError(t, d.SetAge(40))

	idx, _ := d.sectionIndex(HandlerSectionID(6))
	assert.Equal(t, int32(40), readI32At(t, d.sectionBlobs[idx], critterProtoAgeOffset))
	assert.Equal(t, int32(40), d.Save.CritterData.BaseStats[StatAgeIndex])
}

func TestSetGenderPatchesGenderSlotAndEnum(t *testing.T) {
	d := newEditableDocument()
	require.NoError(t, d.SetGender(GenderFemale))

	idx, _ := d.sectionIndex(HandlerSectionID(6))
	assert.Equal(t, int32(1), readI32At(t, d.sectionBlobs[idx], genderOffsetInHandler6))
	assert.Equal(t, GenderFemale, d.Save.Gender)
}

func TestSetLevelPatchesHandler13(t *testing.T) {
	d := newEditableDocument()
	require.NoError(t, d.SetLevel(12))

	idx, _ := d.sectionIndex(HandlerSectionID(13))
	assert.Equal(t, int32(12), readI32At(t, d.sectionBlobs[idx], pcStatsLevelOffset))
	assert.Equal(t, int32(12), d.Save.PCStats.Level)
}

func TestSetExperiencePatchesBothHandlers(t *testing.T) {
	d := newEditableDocument()
	require.NoError(t, d.SetExperience(5000))

	idx6, _ := d.sectionIndex(HandlerSectionID(6))
	idx13, _ := d.sectionIndex(HandlerSectionID(13))
	assert.Equal(t, int32(5000), readI32At(t, d.sectionBlobs[idx6], critterProtoExperienceOffset))
	assert.Equal(t, int32(5000), readI32At(t, d.sectionBlobs[idx13], pcStatsExperienceOffset))
	assert.Equal(t, int32(5000), d.Save.CritterData.Experience)
	assert.Equal(t, int32(5000), d.Save.PCStats.Experience)
}

func TestSetSkillPointsReputationKarma(t *testing.T) {
	d := newEditableDocument()
	require.NoError(t, d.SetSkillPoints(3))
	require.NoError(t, d.SetReputation(-5))
	require.NoError(t, d.SetKarma(200))

	idx, _ := d.sectionIndex(HandlerSectionID(13))
	assert.Equal(t, int32(3), readI32At(t, d.sectionBlobs[idx], pcStatsUnspentSkillPointsOffset))
	assert.Equal(t, int32(-5), readI32At(t, d.sectionBlobs[idx], pcStatsReputationOffset))
	assert.Equal(t, int32(200), readI32At(t, d.sectionBlobs[idx], pcStatsKarmaOffset))
	assert.Equal(t, int32(3), d.Save.PCStats.UnspentSkillPoints)
	assert.Equal(t, int32(-5), d.Save.PCStats.Reputation)
	assert.Equal(t, int32(200), d.Save.PCStats.Karma)
}

func TestSetTraitAndClearTrait(t *testing.T) {
	d := newEditableDocument()
	require.NoError(t, d.SetTrait(0, 5))

	idx, _ := d.sectionIndex(HandlerSectionID(16))
	assert.Equal(t, int32(5), readI32At(t, d.sectionBlobs[idx], 0))
	assert.Equal(t, int32(5), d.Save.SelectedTraits[0])

	require.NoError(t, d.ClearTrait(0))
	assert.Equal(t, int32(-1), readI32At(t, d.sectionBlobs[idx], 0))
	assert.Equal(t, int32(-1), d.Save.SelectedTraits[0])
}

func TestSetTraitRejectsOutOfRange(t *testing.T) {
	d := newEditableDocument()
	assert.Error(t, d.SetTrait(2, 0))
	assert.Error(t, d.SetTrait(0, TraitCount))
}

func TestSetPerkRankAndClearPerk(t *testing.T) {
	d := newEditableDocument()
	require.NoError(t, d.SetPerkRank(4, 3))

	idx, _ := d.sectionIndex(HandlerSectionID(10))
	assert.Equal(t, int32(3), readI32At(t, d.sectionBlobs[idx], 4*i32Width))
	assert.Equal(t, int32(3), d.Save.Perks[4])

	require.NoError(t, d.ClearPerk(4))
	assert.Equal(t, int32(0), d.Save.Perks[4])
}

func TestSetPerkRankRejectsOutOfRangeRank(t *testing.T) {
	d := newEditableDocument()
	assert.Error(t, d.SetPerkRank(0, -1))
	assert.Error(t, d.SetPerkRank(0, 21))
}

func TestSetPerkRankRejectsOutOfRangeIndex(t *testing.T) {
	d := newEditableDocument()
	assert.Error(t, d.SetPerkRank(-1, 1))
	assert.Error(t, d.SetPerkRank(len(d.Save.Perks), 1))
}

func TestMutatorsRejectReadOnlyDocument(t *testing.T) {
	d := newEditableDocument()
	d.supportsEditing = false

	assert.Error(t, d.SetHP(1))
	assert.Error(t, d.SetBaseStat(0, 1))
	assert.Error(t, d.SetLevel(1))
	assert.Error(t, d.SetTrait(0, 0))
	assert.Error(t, d.SetPerkRank(0, 1))
	assert.Error(t, d.SetInventoryQuantity(1, 1))
	assert.Error(t, d.AddInventoryItem(1, 1))
	assert.Error(t, d.RemoveInventoryItem(1, 1))
}

func newItem(pid, qty int32) InventoryItem {
	return InventoryItem{
		Quantity: qty,
		Object: &GameObject{
			PID:             pid,
			InventoryLength: -1,
			Data:            ItemPayload{ExtraData: []byte{}},
		},
	}
}

func TestSetInventoryQuantityUpdatesExistingSlot(t *testing.T) {
	d := newEditableDocument()
	d.Save.PlayerObject.Inventory = []InventoryItem{newItem(100, 3), newItem(200, 1)}

	require.NoError(t, d.SetInventoryQuantity(100, 9))

	require.Len(t, d.Save.PlayerObject.Inventory, 2)
	assert.Equal(t, int32(9), d.Save.PlayerObject.Inventory[0].Quantity)
	require.NoError(t, d.layout.Validate())
}

func TestSetInventoryQuantityZeroRemovesSlot(t *testing.T) {
	d := newEditableDocument()
	d.Save.PlayerObject.Inventory = []InventoryItem{newItem(100, 3), newItem(200, 1)}

	require.NoError(t, d.SetInventoryQuantity(100, 0))

	require.Len(t, d.Save.PlayerObject.Inventory, 1)
	assert.Equal(t, int32(200), d.Save.PlayerObject.Inventory[0].Object.PID)
}

func TestSetInventoryQuantityMissingPidErrors(t *testing.T) {
	d := newEditableDocument()
	d.Save.PlayerObject.Inventory = []InventoryItem{newItem(200, 1)}

	assert.Error(t, d.SetInventoryQuantity(999, 1))
}

func TestAddInventoryItemIncrementsExistingSlot(t *testing.T) {
	d := newEditableDocument()
	d.Save.PlayerObject.Inventory = []InventoryItem{newItem(100, 3)}

	require.NoError(t, d.AddInventoryItem(100, 5))
	assert.Equal(t, int32(8), d.Save.PlayerObject.Inventory[0].Quantity)
}

func TestAddInventoryItemRejectsUnknownPid(t *testing.T) {
	d := newEditableDocument()
	d.Save.PlayerObject.Inventory = []InventoryItem{newItem(100, 3)}

	assert.Error(t, d.AddInventoryItem(999, 1))
}

func TestAddInventoryItemRejectsNonPositiveQuantity(t *testing.T) {
	d := newEditableDocument()
	d.Save.PlayerObject.Inventory = []InventoryItem{newItem(100, 3)}

	assert.Error(t, d.AddInventoryItem(100, 0))
	assert.Error(t, d.AddInventoryItem(100, -1))
}

func TestRemoveInventoryItemPartial(t *testing.T) {
	d := newEditableDocument()
	d.Save.PlayerObject.Inventory = []InventoryItem{newItem(100, 10)}

	require.NoError(t, d.RemoveInventoryItem(100, 4))
	require.Len(t, d.Save.PlayerObject.Inventory, 1)
	assert.Equal(t, int32(6), d.Save.PlayerObject.Inventory[0].Quantity)
}

func TestRemoveInventoryItemNegativeMeansRemoveAll(t *testing.T) {
	d := newEditableDocument()
	d.Save.PlayerObject.Inventory = []InventoryItem{newItem(100, 10)}

	require.NoError(t, d.RemoveInventoryItem(100, -1))
	assert.Empty(t, d.Save.PlayerObject.Inventory)
}

func TestRemoveInventoryItemMissingPidErrors(t *testing.T) {
	d := newEditableDocument()
	d.Save.PlayerObject.Inventory = []InventoryItem{newItem(200, 1)}

	assert.Error(t, d.RemoveInventoryItem(999, 1))
}
