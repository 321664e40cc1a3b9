// This file implements the read-only query surface a renderer or CLI
// drives: a flattened Snapshot for the common header-level fields, plus
// per-category entry lists (stats, skills, perks, traits, kill counts,
// inventory) and the capability report a caller uses to decide what an
// edit command is allowed to do.
//
// Grounded verbatim on ali-raheem/fallout-se's
// crates/fallout_core/src/core_api/{engine.rs,types.rs}: the Session
// query methods and their exact entry shapes, collapsed onto Document
// directly since fosave has no separate per-game Document enum to route
// through (Document already picks its game-specific codecs at parse
// time, the way Session's LoadedDocument match arms do there).

package fosave

// DateParts is a day/month/year triple, used for both the file save date
// and the in-game date.
type DateParts struct {
	Day, Month, Year int16
}

// Snapshot is the flattened, read-only header-level view of a save.
type Snapshot struct {
	Game                Game
	CharacterName        string
	Description          string
	MapFilename          string
	MapID                int16
	Elevation            int16
	FileDate             DateParts
	GameDate             DateParts
	Gender               Gender
	Level                int32
	Experience           int32
	UnspentSkillPoints   int32
	Karma                int32
	Reputation           int32
	GlobalVarCount       int
	SelectedTraits       [2]int32
	HP                   *int32
	GameTime             uint32
}

// Snapshot builds the flattened header-level view of this save.
func (d *Document) Snapshot() Snapshot {
	s := d.Save
	return Snapshot{
		Game:               s.Game,
		CharacterName:      s.Header.CharacterName,
		Description:        s.Header.Description,
		MapFilename:        s.Header.MapFile,
		MapID:              s.Header.Map,
		Elevation:          s.Header.Elevation,
		FileDate:           DateParts{s.Header.FileDay, s.Header.FileMonth, s.Header.FileYear},
		GameDate:           DateParts{s.Header.GameDay, s.Header.GameMonth, s.Header.GameYear},
		Gender:             s.Gender,
		Level:              s.PCStats.Level,
		Experience:         s.PCStats.Experience,
		UnspentSkillPoints: s.PCStats.UnspentSkillPoints,
		Karma:              s.PCStats.Karma,
		Reputation:         s.PCStats.Reputation,
		GlobalVarCount:     s.GlobalVarCount,
		SelectedTraits:     s.SelectedTraits,
		HP:                 extractHP(s.PlayerObject),
		GameTime:           s.Header.GameTime,
	}
}

// CapabilityIssue flags a reason a document's capabilities are reduced
// from the full query+plan+apply set.
type CapabilityIssue int

const (
	// CapabilityEditingNotImplemented marks a Game B document: Game B
	// supports queries only, never edits.
	CapabilityEditingNotImplemented CapabilityIssue = iota
	// CapabilityLowConfidenceLayout marks a Game B document whose
	// handler-10-17 search scored at or below zero: the recovered layout
	// is present but should be treated with suspicion.
	CapabilityLowConfidenceLayout
)

func (c CapabilityIssue) String() string {
	switch c {
	case CapabilityEditingNotImplemented:
		return "EditingNotImplemented"
	case CapabilityLowConfidenceLayout:
		return "LowConfidenceLayout"
	default:
		return "Unknown"
	}
}

// Capabilities reports what a caller may do with this document.
type Capabilities struct {
	CanQuery     bool
	CanPlanEdits bool
	CanApplyEdits bool
	Issues       []CapabilityIssue
}

// Capabilities reports this document's query/edit capabilities.
func (d *Document) Capabilities() Capabilities {
	if d.supportsEditing {
		return Capabilities{CanQuery: true, CanPlanEdits: true, CanApplyEdits: true}
	}
	issues := []CapabilityIssue{CapabilityEditingNotImplemented}
	if d.Save.LayoutDetectionScore <= 0 {
		issues = append(issues, CapabilityLowConfidenceLayout)
	}
	return Capabilities{CanQuery: true, Issues: issues}
}

// StatEntry is one named stat's base/bonus/total triple.
type StatEntry struct {
	Index             int
	Name              string
	Base, Bonus, Total int32
}

func collectStatEntries(names []string, base, bonus []int32, lo, hi int, hideZeroTotals bool) []StatEntry {
	var out []StatEntry
	for i := lo; i < hi; i++ {
		b, bo := base[i], bonus[i]
		total := b + bo
		if hideZeroTotals && total == 0 && bo == 0 {
			continue
		}
		out = append(out, StatEntry{Index: i, Name: names[i], Base: b, Bonus: bo, Total: total})
	}
	return out
}

// SpecialStats returns the 7 SPECIAL stats (indices 0-6). The same
// StatNames table is used for both games: Game B's own stat-name table
// (fallout2/types.rs) is absent from the retrieval pack, and the two
// games' saveable stats share layout and order, so Game A's names stand
// in rather than leaving the field unlabeled.
func (d *Document) SpecialStats() []StatEntry {
	s := d.Save
	return collectStatEntries(StatNames[:], s.CritterData.BaseStats[:], s.CritterData.BonusStats[:], 0, 7, false)
}

// DerivedStatsNonzero returns every non-SPECIAL stat whose total and
// bonus are not both zero.
func (d *Document) DerivedStatsNonzero() []StatEntry {
	s := d.Save
	return collectStatEntries(StatNames[:], s.CritterData.BaseStats[:], s.CritterData.BonusStats[:], 7, SaveableStatCount, true)
}

// AllDerivedStats returns every non-SPECIAL stat regardless of value.
func (d *Document) AllDerivedStats() []StatEntry {
	s := d.Save
	return collectStatEntries(StatNames[:], s.CritterData.BaseStats[:], s.CritterData.BonusStats[:], 7, SaveableStatCount, false)
}

// Stat returns the single stat entry at index.
func (d *Document) Stat(index int) StatEntry {
	s := d.Save
	base, bonus := s.CritterData.BaseStats[index], s.CritterData.BonusStats[index]
	return StatEntry{Index: index, Name: StatNames[index], Base: base, Bonus: bonus, Total: base + bonus}
}

// SkillEntry is one named skill's in-engine value and tag status.
type SkillEntry struct {
	Index  int
	Name   string
	Value  int32
	Tagged bool
}

func (s *SaveGame) skillIsTagged(index int) bool {
	for _, v := range s.TaggedSkills {
		if v >= 0 && int(v) == index {
			return true
		}
	}
	return false
}

// Skills returns every skill's in-engine value: the raw stored value for
// Game A, the computed effective value for Game B.
func (d *Document) Skills() []SkillEntry {
	s := d.Save
	out := make([]SkillEntry, 0, SkillCount)
	for i, name := range SkillNames {
		value := s.CritterData.Skills[i]
		if s.Game == GameB {
			value = s.EffectiveSkillValue(i)
		}
		out = append(out, SkillEntry{Index: i, Name: name, Value: value, Tagged: s.skillIsTagged(i)})
	}
	return out
}

// PerkEntry is one perk with a positive rank.
type PerkEntry struct {
	Index int
	Name  string
	Rank  int32
}

// ActivePerks returns every perk with rank > 0.
func (d *Document) ActivePerks() []PerkEntry {
	var out []PerkEntry
	for i, rank := range d.Save.Perks {
		if rank <= 0 {
			continue
		}
		out = append(out, PerkEntry{Index: i, Name: PerkName(d.Save.Game, i), Rank: rank})
	}
	return out
}

// TraitEntry is one selected trait's index and name.
type TraitEntry struct {
	Index int
	Name  string
}

// SelectedTraitEntries returns the named entries for this save's selected
// traits, omitting unselected slots (sentinel values outside [0, TraitCount)).
func (d *Document) SelectedTraitEntries() []TraitEntry {
	var out []TraitEntry
	for _, v := range d.Save.SelectedTraits {
		if v < 0 || int(v) >= len(TraitNames) {
			continue
		}
		out = append(out, TraitEntry{Index: int(v), Name: TraitNames[v]})
	}
	return out
}

// KillCountEntry is one kill-type bucket with a positive count.
type KillCountEntry struct {
	Index int
	Name  string
	Count int32
}

// NonzeroKillCounts returns every kill-type bucket with count > 0.
func (d *Document) NonzeroKillCounts() []KillCountEntry {
	var out []KillCountEntry
	for i, count := range d.Save.KillCounts {
		if count <= 0 {
			continue
		}
		out = append(out, KillCountEntry{Index: i, Name: KillTypeName(d.Save.Game, i), Count: count})
	}
	return out
}

// InventoryEntry is one flattened (pid, quantity) inventory slot.
type InventoryEntry struct {
	Quantity int32
	PID      int32
}

// Inventory returns the player object's top-level inventory, flattened to
// (pid, quantity) pairs.
func (d *Document) Inventory() []InventoryEntry {
	items := d.Save.PlayerObject.Inventory
	out := make([]InventoryEntry, 0, len(items))
	for _, item := range items {
		out = append(out, InventoryEntry{Quantity: item.Quantity, PID: item.Object.PID})
	}
	return out
}

// MapFiles returns the save's referenced map filenames.
func (d *Document) MapFiles() []string {
	return d.Save.MapFiles
}

// Age returns the player's age base stat.
func (d *Document) Age() int32 {
	return d.Save.CritterData.BaseStats[StatAgeIndex]
}

// CurrentHP returns the player object's current HP, if it carries a
// critter payload.
func (d *Document) CurrentHP() *int32 {
	return extractHP(d.Save.PlayerObject)
}

// MaxHP returns the player's total (base+bonus) HP stat, stat index 7.
func (d *Document) MaxHP() int32 {
	return d.Stat(7).Total
}

// NextLevelXP returns the experience threshold for the next level.
func (d *Document) NextLevelXP() int32 {
	l := d.Save.PCStats.Level
	return (l + 1) * l / 2 * 1000
}

func extractHP(obj *GameObject) *int32 {
	if obj == nil {
		return nil
	}
	if critter, ok := obj.Data.(CritterPayload); ok {
		hp := critter.HP
		return &hp
	}
	return nil
}
