// This file implements Game A's surgical edit mutators: each patches one
// or more i32 fields directly inside a captured section blob, then
// mirrors the same value into the in-memory SaveGame snapshot so readers
// never need to re-parse after an edit. Inventory mutators instead
// re-emit the whole player object and replace handler 5 wholesale, since
// an item add/remove changes that section's length.
//
// Grounded verbatim on ali-raheem/fallout-se's fallout1/mod.rs: every
// offset constant and the patch_handler6_i32/patch_handler13_i32/
// patch_trait_slot/rewrite_handler5_from_player_object helpers.

package fosave

import "github.com/fosave/fosave/internal/breader"

const (
	i32Width = 4

	critterProtoBaseStatsOffset = 8
	critterProtoAgeOffset       = critterProtoBaseStatsOffset + StatAgeIndex*i32Width
	genderOffsetInHandler6      = critterProtoBaseStatsOffset + StatGenderIndex*i32Width
	critterProtoExperienceOffset = critterProtoBaseStatsOffset +
		SaveableStatCount*i32Width + SaveableStatCount*i32Width + SkillCount*i32Width + i32Width

	pcStatsUnspentSkillPointsOffset = 0
	pcStatsLevelOffset              = i32Width
	pcStatsExperienceOffset         = i32Width * 2
	pcStatsReputationOffset         = i32Width * 3
	pcStatsKarmaOffset              = i32Width * 4

	playerHPOffsetInHandler5 = 116
)

// SetHP patches the player object's current HP both in handler 5's blob
// and in the in-memory critter payload.
func (d *Document) SetHP(hp int32) error {
	if err := d.requireEditing(); err != nil {
		return err
	}
	idx, err := d.sectionIndex(HandlerSectionID(5))
	if err != nil {
		return err
	}
	if err := patchI32InBlob(d.sectionBlobs[idx], playerHPOffsetInHandler5, hp); err != nil {
		return err
	}
	if critter, ok := d.Save.PlayerObject.Data.(CritterPayload); ok {
		critter.HP = hp
		d.Save.PlayerObject.Data = critter
	}
	return nil
}

func (d *Document) patchHandler6I32(offset int, raw int32) error {
	return d.patchHandlerI32(6, offset, raw)
}

func (d *Document) patchHandler13I32(offset int, raw int32) error {
	return d.patchHandlerI32(13, offset, raw)
}

// SetBaseStat patches one of the 35 base stat slots in the critter proto
// data.
func (d *Document) SetBaseStat(statIndex int, value int32) error {
	if err := d.requireEditing(); err != nil {
		return err
	}
	if statIndex < 0 || statIndex >= SaveableStatCount {
		return unsupportedErrorf("invalid stat index")
	}
	offset := critterProtoBaseStatsOffset + statIndex*i32Width
	if err := d.patchHandler6I32(offset, value); err != nil {
		return err
	}
	d.Save.CritterData.BaseStats[statIndex] = value
	return nil
}

// SetAge patches the age base stat.
func (d *Document) SetAge(age int32) error {
	if err := d.requireEditing(); err != nil {
		return err
	}
	if err := d.patchHandler6I32(critterProtoAgeOffset, age); err != nil {
		return err
	}
	d.Save.CritterData.BaseStats[StatAgeIndex] = age
	return nil
}

// SetGender patches the gender base stat.
func (d *Document) SetGender(gender Gender) error {
	if err := d.requireEditing(); err != nil {
		return err
	}
	if err := d.patchHandler6I32(genderOffsetInHandler6, gender.Raw); err != nil {
		return err
	}
	d.Save.CritterData.BaseStats[StatGenderIndex] = gender.Raw
	d.Save.Gender = GenderFromRaw(gender.Raw)
	return nil
}

// SetLevel patches the PC's level.
func (d *Document) SetLevel(level int32) error {
	if err := d.requireEditing(); err != nil {
		return err
	}
	if err := d.patchHandler13I32(pcStatsLevelOffset, level); err != nil {
		return err
	}
	d.Save.PCStats.Level = level
	return nil
}

// SetExperience patches experience in both handler 6 (critter proto) and
// handler 13 (PC stats), which must otherwise be kept in sync by hand.
func (d *Document) SetExperience(experience int32) error {
	if err := d.requireEditing(); err != nil {
		return err
	}
	if err := d.patchHandler6I32(critterProtoExperienceOffset, experience); err != nil {
		return err
	}
	if err := d.patchHandler13I32(pcStatsExperienceOffset, experience); err != nil {
		return err
	}
	d.Save.CritterData.Experience = experience
	d.Save.PCStats.Experience = experience
	return nil
}

// SetSkillPoints patches the unspent skill point pool.
func (d *Document) SetSkillPoints(skillPoints int32) error {
	if err := d.requireEditing(); err != nil {
		return err
	}
	if err := d.patchHandler13I32(pcStatsUnspentSkillPointsOffset, skillPoints); err != nil {
		return err
	}
	d.Save.PCStats.UnspentSkillPoints = skillPoints
	return nil
}

// SetReputation patches the PC's reputation score.
func (d *Document) SetReputation(reputation int32) error {
	if err := d.requireEditing(); err != nil {
		return err
	}
	if err := d.patchHandler13I32(pcStatsReputationOffset, reputation); err != nil {
		return err
	}
	d.Save.PCStats.Reputation = reputation
	return nil
}

// SetKarma patches the PC's karma score.
func (d *Document) SetKarma(karma int32) error {
	if err := d.requireEditing(); err != nil {
		return err
	}
	if err := d.patchHandler13I32(pcStatsKarmaOffset, karma); err != nil {
		return err
	}
	d.Save.PCStats.Karma = karma
	return nil
}

func (d *Document) patchTraitSlot(slot int, value int32) error {
	offset := slot * i32Width
	return d.patchHandlerI32(16, offset, value)
}

// SetTrait assigns traitIndex to the given selected-trait slot (0 or 1).
func (d *Document) SetTrait(slot int, traitIndex int32) error {
	if err := d.requireEditing(); err != nil {
		return err
	}
	if slot < 0 || slot >= len(d.Save.SelectedTraits) {
		return unsupportedErrorf("invalid trait slot")
	}
	if traitIndex < 0 || traitIndex >= TraitCount {
		return unsupportedErrorf("invalid trait index")
	}
	if err := d.patchTraitSlot(slot, traitIndex); err != nil {
		return err
	}
	d.Save.SelectedTraits[slot] = traitIndex
	return nil
}

// ClearTrait resets a selected-trait slot to the unselected sentinel (-1).
func (d *Document) ClearTrait(slot int) error {
	if err := d.requireEditing(); err != nil {
		return err
	}
	if slot < 0 || slot >= len(d.Save.SelectedTraits) {
		return unsupportedErrorf("invalid trait slot")
	}
	if err := d.patchTraitSlot(slot, -1); err != nil {
		return err
	}
	d.Save.SelectedTraits[slot] = -1
	return nil
}

// SetPerkRank patches one perk's rank (0..20).
func (d *Document) SetPerkRank(perkIndex int, rank int32) error {
	if err := d.requireEditing(); err != nil {
		return err
	}
	if perkIndex < 0 || perkIndex >= len(d.Save.Perks) {
		return unsupportedErrorf("invalid perk index")
	}
	if rank < 0 || rank > 20 {
		return unsupportedErrorf("invalid perk rank")
	}
	if err := d.patchHandlerI32(10, perkIndex*i32Width, rank); err != nil {
		return err
	}
	d.Save.Perks[perkIndex] = rank
	return nil
}

// ClearPerk resets a perk's rank to 0.
func (d *Document) ClearPerk(perkIndex int) error {
	return d.SetPerkRank(perkIndex, 0)
}

func (d *Document) rewriteHandler5FromPlayerObject() error {
	objBytes, err := d.Save.PlayerObject.EmitBytes()
	if err != nil {
		return err
	}
	w := breader.NewWriter()
	w.RawBytes(objBytes)
	w.I32(d.Save.CenterTile)
	return d.replaceSectionBlob(HandlerSectionID(5), w.Bytes())
}

// SetInventoryQuantity sets the player object's total held quantity of
// pid to quantity (0 removes it). If more than one inventory slot holds
// pid, the first slot absorbs the new total and the rest are dropped.
func (d *Document) SetInventoryQuantity(pid int32, quantity int32) error {
	if err := d.requireEditing(); err != nil {
		return err
	}
	if quantity < 0 {
		return unsupportedErrorf("invalid inventory quantity")
	}

	found := false
	assigned := false
	kept := d.Save.PlayerObject.Inventory[:0]
	for _, item := range d.Save.PlayerObject.Inventory {
		if item.Object.PID != pid {
			kept = append(kept, item)
			continue
		}
		found = true
		if quantity == 0 || assigned {
			continue
		}
		item.Quantity = quantity
		assigned = true
		kept = append(kept, item)
	}
	d.Save.PlayerObject.Inventory = kept

	if !found {
		return unsupportedErrorf("inventory item not found")
	}
	return d.rewriteHandler5FromPlayerObject()
}

// AddInventoryItem increments the held quantity of an existing inventory
// pid. Items with no existing slot cannot be added: this format carries
// no proto catalog to synthesize one from.
func (d *Document) AddInventoryItem(pid int32, quantity int32) error {
	if err := d.requireEditing(); err != nil {
		return err
	}
	if quantity <= 0 {
		return unsupportedErrorf("invalid inventory quantity")
	}

	found := false
	for i := range d.Save.PlayerObject.Inventory {
		item := &d.Save.PlayerObject.Inventory[i]
		if item.Object.PID != pid {
			continue
		}
		newQty := int64(item.Quantity) + int64(quantity)
		if newQty > (1<<31 - 1) {
			return unsupportedErrorf("inventory quantity overflow")
		}
		item.Quantity = int32(newQty)
		found = true
		break
	}
	if !found {
		return unsupportedErrorf("cannot add new inventory pid: no existing template item in save")
	}
	return d.rewriteHandler5FromPlayerObject()
}

// RemoveInventoryItem reduces the held quantity of pid by quantity (or
// removes it entirely if quantity is nil-equivalent: pass a negative
// value to mean "remove all").
func (d *Document) RemoveInventoryItem(pid int32, quantity int32) error {
	if err := d.requireEditing(); err != nil {
		return err
	}

	var totalBefore int64
	for _, item := range d.Save.PlayerObject.Inventory {
		if item.Object.PID == pid {
			totalBefore += int64(item.Quantity)
		}
	}
	if totalBefore == 0 {
		return unsupportedErrorf("inventory item not found")
	}

	var targetTotal int64
	if quantity < 0 {
		targetTotal = 0
	} else if quantity == 0 {
		return unsupportedErrorf("invalid inventory removal quantity")
	} else {
		targetTotal = totalBefore - int64(quantity)
		if targetTotal < 0 {
			targetTotal = 0
		}
	}

	reassigned := false
	kept := d.Save.PlayerObject.Inventory[:0]
	for _, item := range d.Save.PlayerObject.Inventory {
		if item.Object.PID != pid {
			kept = append(kept, item)
			continue
		}
		if reassigned || targetTotal <= 0 {
			continue
		}
		item.Quantity = int32(targetTotal)
		reassigned = true
		kept = append(kept, item)
	}
	d.Save.PlayerObject.Inventory = kept

	return d.rewriteHandler5FromPlayerObject()
}
