// This file holds the record types shared by both games' handler codecs:
// critter proto data, combat state, and PC stats. Game B's combat state additionally carries one CombatAIInfo
// entry per combatant; Game A's combat state leaves that slice nil.
//
// Grounded on fallout1/sections.rs's CritterProtoData/CombatState/
// CombatData/PcStats and fallout2/sections.rs's identically-named structs
// (which add CombatAiInfo).

package fosave

import "github.com/fosave/fosave/internal/breader"

// CritterProtoData is the 372-byte handler 6 payload: base/bonus stat
// arrays, the skill array, and a handful of scalar fields.
type CritterProtoData struct {
	SneakWorking int32
	Flags        int32
	BaseStats    [SaveableStatCount]int32
	BonusStats   [SaveableStatCount]int32
	Skills       [SkillCount]int32
	BodyType     int32
	Experience   int32
	KillType     int32
}

func parseCritterProtoData(r *breader.Reader) (CritterProtoData, error) {
	var d CritterProtoData
	var err error
	if d.SneakWorking, err = r.I32(); err != nil {
		return d, parseErrorf(err, "critter proto sneak_working")
	}
	if d.Flags, err = r.I32(); err != nil {
		return d, parseErrorf(err, "critter proto flags")
	}
	base, err := r.I32Slice(SaveableStatCount)
	if err != nil {
		return d, parseErrorf(err, "critter proto base_stats")
	}
	copy(d.BaseStats[:], base)
	bonus, err := r.I32Slice(SaveableStatCount)
	if err != nil {
		return d, parseErrorf(err, "critter proto bonus_stats")
	}
	copy(d.BonusStats[:], bonus)
	skills, err := r.I32Slice(SkillCount)
	if err != nil {
		return d, parseErrorf(err, "critter proto skills")
	}
	copy(d.Skills[:], skills)
	if d.BodyType, err = r.I32(); err != nil {
		return d, parseErrorf(err, "critter proto body_type")
	}
	if d.Experience, err = r.I32(); err != nil {
		return d, parseErrorf(err, "critter proto experience")
	}
	if d.KillType, err = r.I32(); err != nil {
		return d, parseErrorf(err, "critter proto kill_type")
	}
	return d, nil
}

func (d CritterProtoData) emit(w *breader.Writer) {
	w.I32(d.SneakWorking)
	w.I32(d.Flags)
	w.I32Slice(d.BaseStats[:])
	w.I32Slice(d.BonusStats[:])
	w.I32Slice(d.Skills[:])
	w.I32(d.BodyType)
	w.I32(d.Experience)
	w.I32(d.KillType)
}

// CombatAIInfo is one per-combatant AI memory record, Game B only.
type CombatAIInfo struct {
	FriendlyDeadID int32
	LastTargetID   int32
	LastItemID     int32
	LastMove       int32
}

// CombatData is the body of an in-combat CombatState: present only when
// CombatState.Flags has bit 0x01 set.
type CombatData struct {
	TurnRunning    int32
	FreeMove       int32
	Exps           int32
	ListCom        int32
	ListNoncom     int32
	ListTotal      int32
	DudeCID        int32
	CombatantCIDs  []int32
	// AIInfo is populated only for Game B; it stays nil for Game A, which
	// has no per-combatant AI memory block.
	AIInfo []CombatAIInfo
}

// CombatState is handler 11's payload: a flags word, plus CombatData when
// bit 0x01 ("in combat") is set.
type CombatState struct {
	Flags uint32
	Data  *CombatData
}

const combatInCombatBit = 0x01

// parseCombatStateGameA parses handler 11 the way Game A writes it: no
// validation on the list counters, no AI info block.
func parseCombatStateGameA(r *breader.Reader) (CombatState, error) {
	flags, err := r.U32()
	if err != nil {
		return CombatState{}, parseErrorf(err, "combat state flags")
	}
	if flags&combatInCombatBit == 0 {
		return CombatState{Flags: flags}, nil
	}

	d := &CombatData{}
	if d.TurnRunning, err = r.I32(); err != nil {
		return CombatState{}, parseErrorf(err, "combat turn_running")
	}
	if d.FreeMove, err = r.I32(); err != nil {
		return CombatState{}, parseErrorf(err, "combat free_move")
	}
	if d.Exps, err = r.I32(); err != nil {
		return CombatState{}, parseErrorf(err, "combat exps")
	}
	if d.ListCom, err = r.I32(); err != nil {
		return CombatState{}, parseErrorf(err, "combat list_com")
	}
	if d.ListNoncom, err = r.I32(); err != nil {
		return CombatState{}, parseErrorf(err, "combat list_noncom")
	}
	if d.ListTotal, err = r.I32(); err != nil {
		return CombatState{}, parseErrorf(err, "combat list_total")
	}
	if d.DudeCID, err = r.I32(); err != nil {
		return CombatState{}, parseErrorf(err, "combat dude_cid")
	}
	if d.ListTotal < 0 {
		return CombatState{}, parseErrorf(nil, "negative combat list_total")
	}
	if d.CombatantCIDs, err = r.I32Slice(int(d.ListTotal)); err != nil {
		return CombatState{}, parseErrorf(err, "combat combatant_cids")
	}
	return CombatState{Flags: flags, Data: d}, nil
}

const maxCombatListTotal = 500

// parseCombatStateGameB parses handler 11 the way Game B writes it: the
// list counters are validated and must be consistent, and each combatant
// has a trailing 4-word AI info record.
func parseCombatStateGameB(r *breader.Reader) (CombatState, error) {
	flags, err := r.U32()
	if err != nil {
		return CombatState{}, parseErrorf(err, "combat state flags")
	}
	if flags&combatInCombatBit == 0 {
		return CombatState{Flags: flags}, nil
	}

	d := &CombatData{}
	if d.TurnRunning, err = r.I32(); err != nil {
		return CombatState{}, parseErrorf(err, "combat turn_running")
	}
	if d.FreeMove, err = r.I32(); err != nil {
		return CombatState{}, parseErrorf(err, "combat free_move")
	}
	if d.Exps, err = r.I32(); err != nil {
		return CombatState{}, parseErrorf(err, "combat exps")
	}
	if d.ListCom, err = r.I32(); err != nil {
		return CombatState{}, parseErrorf(err, "combat list_com")
	}
	if d.ListNoncom, err = r.I32(); err != nil {
		return CombatState{}, parseErrorf(err, "combat list_noncom")
	}
	if d.ListTotal, err = r.I32(); err != nil {
		return CombatState{}, parseErrorf(err, "combat list_total")
	}
	if d.DudeCID, err = r.I32(); err != nil {
		return CombatState{}, parseErrorf(err, "combat dude_cid")
	}
	if d.ListCom < 0 || d.ListNoncom < 0 || d.ListTotal < 0 || d.ListTotal > maxCombatListTotal {
		return CombatState{}, parseErrorf(nil, "invalid combat list counters")
	}
	if d.ListCom+d.ListNoncom != d.ListTotal {
		return CombatState{}, parseErrorf(nil, "inconsistent combat list counters")
	}
	if d.CombatantCIDs, err = r.I32Slice(int(d.ListTotal)); err != nil {
		return CombatState{}, parseErrorf(err, "combat combatant_cids")
	}
	d.AIInfo = make([]CombatAIInfo, d.ListTotal)
	for i := range d.AIInfo {
		if d.AIInfo[i].FriendlyDeadID, err = r.I32(); err != nil {
			return CombatState{}, parseErrorf(err, "combat ai_info friendly_dead_id")
		}
		if d.AIInfo[i].LastTargetID, err = r.I32(); err != nil {
			return CombatState{}, parseErrorf(err, "combat ai_info last_target_id")
		}
		if d.AIInfo[i].LastItemID, err = r.I32(); err != nil {
			return CombatState{}, parseErrorf(err, "combat ai_info last_item_id")
		}
		if d.AIInfo[i].LastMove, err = r.I32(); err != nil {
			return CombatState{}, parseErrorf(err, "combat ai_info last_move")
		}
	}
	return CombatState{Flags: flags, Data: d}, nil
}

func (s CombatState) emit(w *breader.Writer) {
	w.U32(s.Flags)
	if s.Data == nil {
		return
	}
	d := s.Data
	w.I32(d.TurnRunning)
	w.I32(d.FreeMove)
	w.I32(d.Exps)
	w.I32(d.ListCom)
	w.I32(d.ListNoncom)
	w.I32(d.ListTotal)
	w.I32(d.DudeCID)
	w.I32Slice(d.CombatantCIDs)
	for _, info := range d.AIInfo {
		w.I32(info.FriendlyDeadID)
		w.I32(info.LastTargetID)
		w.I32(info.LastItemID)
		w.I32(info.LastMove)
	}
}

// PCStats is handler 13's fixed 5-word payload.
type PCStats struct {
	UnspentSkillPoints int32
	Level              int32
	Experience         int32
	Reputation         int32
	Karma              int32
}

func parsePCStats(r *breader.Reader) (PCStats, error) {
	vals, err := r.I32Slice(PCStatCount)
	if err != nil {
		return PCStats{}, parseErrorf(err, "pc stats")
	}
	return PCStats{
		UnspentSkillPoints: vals[0],
		Level:              vals[1],
		Experience:         vals[2],
		Reputation:         vals[3],
		Karma:              vals[4],
	}, nil
}

func (s PCStats) emit(w *breader.Writer) {
	w.I32(s.UnspentSkillPoints)
	w.I32(s.Level)
	w.I32(s.Experience)
	w.I32(s.Reputation)
	w.I32(s.Karma)
}
