// JSON rendering of a parsed save, grounded on ali-raheem/fallout-se's
// crates/fallout_render/src/lib.rs (render_json_full, render_json_selected,
// selected_json, default_json and their per-category helpers), reshaped
// onto fosave.Document's query surface (fosave/query.go). Encoding itself
// mirrors icza/screp's cmd/screp CLI usage of encoding/json with
// enc.SetIndent("", "  ").

package render

import (
	"bytes"
	"encoding/json"

	"github.com/fosave/fosave/fosave"
)

// JsonStyle selects a JSON output shape. CanonicalV1 is the only variant
// today; the type exists so a future shape can be added without breaking
// callers.
type JsonStyle int

const (
	CanonicalV1 JsonStyle = iota
)

// FieldSelection picks which top-level fields JSONSelected includes.
// Zero value selects nothing.
type FieldSelection struct {
	Name         bool
	Description  bool
	Gender       bool
	Age          bool
	Level        bool
	XP           bool
	Karma        bool
	Reputation   bool
	SkillPoints  bool
	MapFilename  bool
	Elevation    bool
	GameDate     bool
	SaveDate     bool
	Traits       bool
	HP           bool
	MaxHP        bool
	NextLevelXP  bool
	GameTime     bool
	Special      bool
	DerivedStats bool
	Skills       bool
	Perks        bool
	Kills        bool
	Inventory    bool
}

// IsAnySelected reports whether at least one field is selected.
func (f FieldSelection) IsAnySelected() bool {
	return f.Name || f.Description || f.Gender || f.Age || f.Level || f.XP ||
		f.Karma || f.Reputation || f.SkillPoints || f.MapFilename || f.Elevation ||
		f.GameDate || f.SaveDate || f.Traits || f.HP || f.MaxHP || f.NextLevelXP ||
		f.GameTime || f.Special || f.DerivedStats || f.Skills || f.Perks ||
		f.Kills || f.Inventory
}

// JSON renders every field of d, indented, as the CanonicalV1 shape.
func JSON(d *fosave.Document, style JsonStyle) ([]byte, error) {
	switch style {
	case CanonicalV1:
		return encodeIndented(defaultJSON(d))
	default:
		return encodeIndented(defaultJSON(d))
	}
}

// JSONSelected renders only the fields set in fields.
func JSONSelected(d *fosave.Document, fields FieldSelection, style JsonStyle) ([]byte, error) {
	switch style {
	case CanonicalV1:
		return encodeIndented(selectedJSON(d, fields))
	default:
		return encodeIndented(selectedJSON(d, fields))
	}
}

func encodeIndented(v map[string]interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func selectedJSON(d *fosave.Document, f FieldSelection) map[string]interface{} {
	s := d.Snapshot()
	out := map[string]interface{}{}

	if f.Description {
		out["description"] = s.Description
	}
	if f.GameDate {
		out["game_date"] = formatDate(s.GameDate.Year, s.GameDate.Month, s.GameDate.Day)
	}
	if f.SaveDate {
		out["save_date"] = formatDate(s.FileDate.Year, s.FileDate.Month, s.FileDate.Day)
	}
	if f.GameTime {
		out["game_time"] = formatGameTime(s.GameTime)
	}
	if f.Name {
		out["name"] = s.CharacterName
	}
	if f.Age {
		out["age"] = d.Age()
	}
	if f.Gender {
		out["gender"] = s.Gender.String()
	}
	if f.Level {
		out["level"] = s.Level
	}
	if f.XP {
		out["xp"] = s.Experience
	}
	if f.NextLevelXP {
		out["next_level_xp"] = d.NextLevelXP()
	}
	if f.SkillPoints {
		out["skill_points"] = s.UnspentSkillPoints
	}
	if f.MapFilename {
		out["map"] = s.MapFilename
	}
	if f.Elevation {
		out["elevation"] = s.Elevation
	}
	if f.Special {
		out["special"] = statEntriesToJSON(d.SpecialStats())
	}
	if f.HP {
		out["hp"] = hpToJSON(d.CurrentHP())
	}
	if f.MaxHP {
		out["max_hp"] = d.MaxHP()
	}
	if f.DerivedStats {
		out["derived_stats"] = statEntriesToJSON(d.AllDerivedStats())
	}
	if f.Traits {
		out["traits"] = traitsToJSON(d.SelectedTraitEntries())
	}
	if f.Perks {
		out["perks"] = perksToJSON(d.ActivePerks())
	}
	if f.Karma {
		out["karma"] = s.Karma
	}
	if f.Reputation {
		out["reputation"] = s.Reputation
	}
	if f.Skills {
		out["skills"] = skillsToJSON(d.Skills())
	}
	if f.Kills {
		out["kill_counts"] = killCountsToJSON(d.NonzeroKillCounts())
	}
	if f.Inventory {
		out["inventory"] = inventoryToJSON(d.Inventory())
	}

	return out
}

func defaultJSON(d *fosave.Document) map[string]interface{} {
	s := d.Snapshot()
	out := map[string]interface{}{
		"game":              s.Game.String(),
		"description":       s.Description,
		"game_date":         formatDate(s.GameDate.Year, s.GameDate.Month, s.GameDate.Day),
		"save_date":         formatDate(s.FileDate.Year, s.FileDate.Month, s.FileDate.Day),
		"game_time":         formatGameTime(s.GameTime),
		"name":              s.CharacterName,
		"age":                d.Age(),
		"gender":            s.Gender.String(),
		"level":             s.Level,
		"xp":                s.Experience,
		"next_level_xp":     d.NextLevelXP(),
		"skill_points":      s.UnspentSkillPoints,
		"map":               s.MapFilename,
		"map_id":            s.MapID,
		"elevation":         s.Elevation,
		"global_var_count":  s.GlobalVarCount,
		"special":           statEntriesToJSON(d.SpecialStats()),
		"hp":                hpToJSON(d.CurrentHP()),
		"max_hp":            d.MaxHP(),
		"derived_stats":     statEntriesToJSON(d.AllDerivedStats()),
		"traits":            traitsToJSON(d.SelectedTraitEntries()),
		"perks":             perksToJSON(d.ActivePerks()),
		"karma":             s.Karma,
		"reputation":        s.Reputation,
		"skills":            skillsToJSON(d.Skills()),
		"kill_counts":       killCountsToJSON(d.NonzeroKillCounts()),
		"inventory":         inventoryToJSON(d.Inventory()),
	}
	return out
}

func hpToJSON(hp *int32) interface{} {
	if hp == nil {
		return nil
	}
	return *hp
}

func statEntriesToJSON(entries []fosave.StatEntry) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(entries))
	for _, e := range entries {
		out = append(out, map[string]interface{}{
			"name":  e.Name,
			"base":  e.Base,
			"bonus": e.Bonus,
			"total": e.Total,
		})
	}
	return out
}

func skillsToJSON(entries []fosave.SkillEntry) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(entries))
	for _, e := range entries {
		out = append(out, map[string]interface{}{
			"name":   e.Name,
			"value":  e.Value,
			"tagged": e.Tagged,
		})
	}
	return out
}

func perksToJSON(entries []fosave.PerkEntry) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(entries))
	for _, e := range entries {
		out = append(out, map[string]interface{}{
			"name": e.Name,
			"rank": e.Rank,
		})
	}
	return out
}

func killCountsToJSON(entries []fosave.KillCountEntry) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(entries))
	for _, e := range entries {
		out = append(out, map[string]interface{}{
			"name":  e.Name,
			"count": e.Count,
		})
	}
	return out
}

func inventoryToJSON(entries []fosave.InventoryEntry) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(entries))
	for _, e := range entries {
		out = append(out, map[string]interface{}{
			"quantity": e.Quantity,
			"pid":      e.PID,
		})
	}
	return out
}

func traitsToJSON(entries []fosave.TraitEntry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Name)
	}
	return out
}
