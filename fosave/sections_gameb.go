// This file implements Game B's per-handler codecs that diverge from
// Game A: a stricter global-variable-count detection (handler 4 must
// duplicate handler 2 exactly), a critter-proto alignment scan (handler 6
// has no reliable anchor because Game B's inventory items carry proto
// metadata this parser does not have access to), and a combined search
// over handlers 10-13 that solves for both the party member count and the
// AI packet count at once.
//
// Grounded verbatim on ali-raheem/fallout-se's
// crates/fallout_core/src/fallout2/sections.rs.

package fosave

import (
	"strings"

	"github.com/fosave/fosave/internal/breader"
	"github.com/fosave/fosave/internal/logx"
)

const (
	gameBGlobalVarSearchMax = 5000
	gameBMapFileCountMax    = 512
	gameBMaxPartyMembers    = 64
	gameBAIPacketIntCount   = 45
	gameBTraitsSelectedMax  = 2
)

// detectGlobalVarCountGameB tries candidate counts n in [1, 5000) by
// fully parsing handlers 2-4 at each candidate and requiring handler 4's
// duplicate block to equal handler 2's.
func detectGlobalVarCountGameB(r *breader.Reader, handler2Start int) (int, error) {
	for n := 1; n < gameBGlobalVarSearchMax; n++ {
		if err := r.Seek(handler2Start); err != nil {
			return 0, parseErrorf(err, "global var probe seek")
		}
		globals, err := r.I32Slice(n)
		if err != nil {
			continue
		}
		mapSection, err := parseMapFileListGameB(r)
		if err != nil {
			continue
		}
		if len(mapSection.MapFiles) == 0 || len(mapSection.MapFiles) > gameBMapFileCountMax {
			continue
		}
		if !allMapFilenamesValid(mapSection.MapFiles) {
			continue
		}
		if mapSection.AutomapSize < 0 || mapSection.AutomapSize > 200_000_000 {
			continue
		}
		duplicate, err := r.I32Slice(n)
		if err != nil || !int32SliceEqual(duplicate, globals) {
			continue
		}
		logx.L.Debug().Int("candidate", n).Msg("detectGlobalVarCountGameB: chosen")
		return n, nil
	}
	logx.L.Debug().Int("tried_max", gameBGlobalVarSearchMax).
		Msg("detectGlobalVarCountGameB: no candidate validated")
	return 0, parseErrorf(nil, "could not detect Game B global variable count")
}

func allMapFilenamesValid(names []string) bool {
	for _, name := range names {
		if name == "" || !strings.HasSuffix(strings.ToUpper(name), ".SAV") {
			return false
		}
	}
	return true
}

func int32SliceEqual(a, b []int32) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func parseGameGlobalVarsGameB(r *breader.Reader) (GlobalVarsSection, error) {
	startPos := r.Tell()
	n, err := detectGlobalVarCountGameB(r, startPos)
	if err != nil {
		return GlobalVarsSection{}, err
	}
	if err := r.Seek(startPos); err != nil {
		return GlobalVarsSection{}, parseErrorf(err, "global vars rewind")
	}
	vars, err := r.I32Slice(n)
	if err != nil {
		return GlobalVarsSection{}, parseErrorf(err, "global vars")
	}
	return GlobalVarsSection{GlobalVars: vars}, nil
}

// parseMapFileListGameB reads handler 3, bounding the file count and
// rejecting empty filenames the way Game A's (unbounded) reader does not
// need to, since Game B's detector calls this at every candidate n.
func parseMapFileListGameB(r *breader.Reader) (MapFileListSection, error) {
	fileCount, err := r.I32()
	if err != nil {
		return MapFileListSection{}, parseErrorf(err, "map file count")
	}
	if fileCount <= 0 || fileCount > int32(gameBMapFileCountMax) {
		return MapFileListSection{}, parseErrorf(nil, "invalid map file count")
	}
	files := make([]string, 0, fileCount)
	for i := int32(0); i < fileCount; i++ {
		name, err := r.NullTerminatedString(mapFilenameFieldLen)
		if err != nil {
			return MapFileListSection{}, parseErrorf(err, "map filename")
		}
		if name == "" {
			return MapFileListSection{}, parseErrorf(nil, "empty map filename")
		}
		files = append(files, name)
	}
	automapSize, err := r.I32()
	if err != nil {
		return MapFileListSection{}, parseErrorf(err, "automap size")
	}
	return MapFileListSection{MapFiles: files, AutomapSize: automapSize}, nil
}

const critterProtoRecordLen = 372 // sneak_working + flags + 2*35 stats + 18 skills + 3 scalars, all i32

// parseCritterProtoNearby recovers handler 6's position by scanning every
// 4-byte-aligned offset within [-256, 1024] of the reader's current guess
// and scoring each candidate against the kill-counts/tagged-skills blocks
// that immediately follow it. The highest-scoring candidate at or above
// the acceptance threshold wins.
func parseCritterProtoNearby(r *breader.Reader) (CritterProtoData, error) {
	guessedPos := r.Tell()
	fileLen := r.Len()

	bestPos := -1
	bestScore := int32(-1 << 31)

	for delta := -256; delta <= 1024; delta++ {
		if delta%4 != 0 {
			continue
		}
		pos := guessedPos + delta
		if pos < 0 {
			continue
		}
		if pos+critterProtoRecordLen > fileLen {
			continue
		}

		if err := r.Seek(pos); err != nil {
			continue
		}
		candidate, err := parseCritterProtoData(r)
		if err != nil {
			continue
		}
		kills, err := parseKillCountsGameB(r)
		if err != nil {
			continue
		}
		tagged, err := parseTaggedSkills(r)
		if err != nil {
			continue
		}

		score := scoreCritterProtoCandidate(candidate, kills, tagged)
		logx.L.Trace().Int("delta", delta).Int("pos", pos).Int32("score", score).
			Msg("parseCritterProtoNearby: candidate")
		if score > bestScore {
			bestScore = score
			bestPos = pos
		}
	}

	const acceptThreshold = 12
	if bestPos < 0 || bestScore < acceptThreshold {
		logx.L.Debug().Int("best_pos", bestPos).Int32("best_score", bestScore).
			Msg("parseCritterProtoNearby: no candidate reached the acceptance threshold")
		return CritterProtoData{}, parseErrorf(nil, "could not align Game B critter proto section")
	}

	logx.L.Debug().Int("pos", bestPos).Int32("score", bestScore).
		Msg("parseCritterProtoNearby: chosen")
	if err := r.Seek(bestPos); err != nil {
		return CritterProtoData{}, parseErrorf(err, "critter proto seek")
	}
	return parseCritterProtoData(r)
}

func scoreCritterProtoCandidate(c CritterProtoData, kills [KillTypeCountGameB]int32, tagged [TaggedSkillCount]int32) int32 {
	var score int32

	specialOK := true
	for i := 0; i < 7; i++ {
		if c.BaseStats[i] < 1 || c.BaseStats[i] > 10 {
			specialOK = false
			break
		}
	}
	if specialOK {
		score += 12
	}

	skillsOK := true
	for _, v := range c.Skills {
		if v < 0 || v > 400 {
			skillsOK = false
			break
		}
	}
	if skillsOK {
		score += 6
	}

	if c.Experience >= 0 && c.Experience <= 100_000_000 {
		score += 2
	}
	if c.BodyType >= 0 && c.BodyType <= 64 {
		score += 1
	}

	killsOK := true
	for _, v := range kills {
		if v < 0 || v > 1_000_000 {
			killsOK = false
			break
		}
	}
	if killsOK {
		score += 3
	}

	taggedOK := true
	nonNegative := 0
	for _, v := range tagged {
		if v != -1 && (v < 0 || v >= SkillCount) {
			taggedOK = false
			break
		}
		if v >= 0 {
			nonNegative++
		}
	}
	if taggedOK {
		score += 4
	}
	if nonNegative > 0 {
		score += 2
	}
	if taggedUnique(tagged) {
		score += 2
	}

	return score
}

func taggedUnique(tagged [TaggedSkillCount]int32) bool {
	seen := map[int32]bool{}
	count := 0
	for _, v := range tagged {
		if v < 0 {
			continue
		}
		count++
		seen[v] = true
	}
	return len(seen) == count
}

func parseKillCountsGameB(r *breader.Reader) ([KillTypeCountGameB]int32, error) {
	var out [KillTypeCountGameB]int32
	vals, err := r.I32Slice(KillTypeCountGameB)
	if err != nil {
		return out, parseErrorf(err, "kill counts")
	}
	copy(out[:], vals)
	return out, nil
}

func parseTaggedSkills(r *breader.Reader) ([TaggedSkillCount]int32, error) {
	var out [TaggedSkillCount]int32
	vals, err := r.I32Slice(TaggedSkillCount)
	if err != nil {
		return out, parseErrorf(err, "tagged skills")
	}
	copy(out[:], vals)
	return out, nil
}

func parsePerksArray(r *breader.Reader, count int) ([]int32, error) {
	vals, err := r.I32Slice(count)
	if err != nil {
		return nil, parseErrorf(err, "perks")
	}
	return vals, nil
}

// postTaggedSections is the combined result of the handlers 10-13(+17
// prefix) search: perks, combat state, pc stats, traits, difficulty, and
// the winning (party_member_count, ai_packet_count) pair together with
// the byte offsets each handler ended at, for layout capture.
type postTaggedSections struct {
	Perks             []int32
	Combat            CombatState
	PCStats           PCStats
	SelectedTraits    [gameBTraitsSelectedMax]int32
	GameDifficulty    int32
	PartyMemberCount  int
	AIPacketCount     int
	DetectionScore    int32
	H10End, H11End    int
	H12End, H13End    int
	H15End, H16End    int
	H17PrefixEnd      int
}

type postPCSections struct {
	SelectedTraits [gameBTraitsSelectedMax]int32
	GameDifficulty int32
}

// parsePostPCSections reads the fixed-width run right after handler 13:
// the 2-word trait pair (handler 15), the 1-word automap flags (handler
// 16), and the first 5 words of the preferences block (handler 17),
// stopping once game_difficulty and friends are captured.
func parsePostPCSections(r *breader.Reader) (postPCSections, error) {
	traits, err := parseTraitPair(r)
	if err != nil {
		return postPCSections{}, err
	}
	if _, err := r.I32(); err != nil { // automap flags
		return postPCSections{}, parseErrorf(err, "automap flags")
	}
	gameDifficulty, err := r.I32()
	if err != nil {
		return postPCSections{}, parseErrorf(err, "game difficulty")
	}
	for i := 0; i < 4; i++ { // combat_difficulty, violence_level, target_highlight, combat_looks
		if _, err := r.I32(); err != nil {
			return postPCSections{}, parseErrorf(err, "preferences prefix")
		}
	}
	return postPCSections{
		SelectedTraits: [gameBTraitsSelectedMax]int32{traits[0], traits[1]},
		GameDifficulty: gameDifficulty,
	}, nil
}

func parsePerksWithPartyCopies(r *breader.Reader, partyMemberCount int) ([]int32, error) {
	if partyMemberCount == 0 {
		return nil, parseErrorf(nil, "invalid party member count")
	}
	perks, err := parsePerksArray(r, PerkCountGameB)
	if err != nil {
		return perks, err
	}
	skipBytes := (partyMemberCount - 1) * PerkCountGameB * 4
	if skipBytes > 0 {
		if err := r.SkipN(skipBytes); err != nil {
			return perks, parseErrorf(err, "perk party copies")
		}
	}
	return perks, nil
}

const (
	postTaggedScoreFloor = -(1 << 30)
	maxCombatListTotalB  = maxCombatListTotal
)

// parsePostTaggedSections solves for handlers 10-13 simultaneously: it
// tries every party_member_count in [1, 64] and, for each, every
// ai_packet_count in [0, party_member_count], replaying the parse and
// scoring the result. The single best-scoring combination is replayed one
// final time to leave the reader positioned after handler 13's
// continuation (the preferences prefix), and to produce the byte offsets
// each handler ended at for layout capture.
func parsePostTaggedSections(r *breader.Reader) (postTaggedSections, error) {
	startPos := r.Tell()
	fileLen := r.Len()

	bestScore := int32(postTaggedScoreFloor)
	bestParty, bestAI := 0, 0
	var bestCombat CombatState
	var bestPC PCStats
	found := false

	for party := 1; party <= gameBMaxPartyMembers; party++ {
		if err := r.Seek(startPos); err != nil {
			return postTaggedSections{}, parseErrorf(err, "post-tagged probe seek")
		}
		perks, err := parsePerksWithPartyCopies(r, party)
		if err != nil {
			continue
		}
		combat, err := parseCombatStateGameB(r)
		if err != nil {
			continue
		}
		afterCombatPos := r.Tell()

		for ai := 0; ai <= party; ai++ {
			pcStatsPos := afterCombatPos + ai*gameBAIPacketIntCount*4
			if pcStatsPos+32 > fileLen {
				break
			}
			if err := r.Seek(pcStatsPos); err != nil {
				continue
			}
			pcStats, err := parsePCStats(r)
			if err != nil {
				continue
			}
			postPC, err := parsePostPCSections(r)
			if err != nil {
				continue
			}
			score, ok := scorePostTaggedCandidate(perks, combat, pcStats, postPC, party, ai)
			if !ok {
				continue
			}
			logx.L.Trace().Int("party", party).Int("ai", ai).Int32("score", score).
				Msg("parsePostTaggedSections: candidate")
			if score > bestScore {
				bestScore = score
				bestParty = party
				bestAI = ai
				bestCombat = combat
				bestPC = pcStats
				found = true
			}
		}
	}

	if !found {
		logx.L.Debug().Msg("parsePostTaggedSections: no party/AI combination validated")
		return postTaggedSections{}, parseErrorf(nil, "could not detect Game B handlers 10-13 layout")
	}
	logx.L.Debug().Int("party", bestParty).Int("ai", bestAI).Int32("score", bestScore).
		Msg("parsePostTaggedSections: chosen")
	_ = bestCombat
	_ = bestPC

	// Replay the winning path to leave the reader positioned correctly
	// and to record each handler's end offset.
	if err := r.Seek(startPos); err != nil {
		return postTaggedSections{}, parseErrorf(err, "post-tagged replay seek")
	}
	perks, err := parsePerksWithPartyCopies(r, bestParty)
	if err != nil {
		return postTaggedSections{}, err
	}
	h10End := r.Tell()

	combat, err := parseCombatStateGameB(r)
	if err != nil {
		return postTaggedSections{}, err
	}
	h11End := r.Tell()

	if err := r.SkipN(bestAI * gameBAIPacketIntCount * 4); err != nil {
		return postTaggedSections{}, parseErrorf(err, "ai packet skip")
	}
	h12End := r.Tell()

	pcStats, err := parsePCStats(r)
	if err != nil {
		return postTaggedSections{}, err
	}
	h13End := r.Tell()

	postPC, err := parsePostPCSections(r)
	if err != nil {
		return postTaggedSections{}, err
	}
	h17PrefixEnd := r.Tell()
	h15End := h13End + 8
	h16End := h15End + 4

	return postTaggedSections{
		Perks:            perks,
		Combat:           combat,
		PCStats:          pcStats,
		SelectedTraits:   postPC.SelectedTraits,
		GameDifficulty:   postPC.GameDifficulty,
		PartyMemberCount: bestParty,
		AIPacketCount:    bestAI,
		DetectionScore:   bestScore,
		H10End:           h10End,
		H11End:           h11End,
		H12End:           h12End,
		H13End:           h13End,
		H15End:           h15End,
		H16End:           h16End,
		H17PrefixEnd:     h17PrefixEnd,
	}, nil
}

func scorePostTaggedCandidate(perks []int32, combat CombatState, pc PCStats, postPC postPCSections, party, ai int) (int32, bool) {
	for _, rank := range perks {
		if rank < -1 || rank > 20 {
			return 0, false
		}
	}
	if pc.Level < 1 || pc.Level > 99 {
		return 0, false
	}
	if pc.Experience < 0 || pc.Experience > 100_000_000 {
		return 0, false
	}
	if pc.Reputation < -10_000 || pc.Reputation > 10_000 {
		return 0, false
	}
	if pc.Karma < -100_000 || pc.Karma > 100_000 {
		return 0, false
	}

	score := int32(50)
	score -= int32(party) / 4
	score -= int32(ai) / 2

	if ai <= party {
		score += 4
	}
	if combat.Data == nil {
		score += 2
	}
	if combat.Flags == 0x02 {
		score += 2
	}
	if pc.UnspentSkillPoints <= 10_000 {
		score += 2
	}
	allNonNegative := true
	for _, rank := range perks {
		if rank < 0 {
			allNonNegative = false
			break
		}
	}
	if allNonNegative {
		score += 1
	}

	if postPC.GameDifficulty >= 0 && postPC.GameDifficulty <= 2 {
		score += 2
	}
	if postPC.SelectedTraits[0] == -1 || postPC.SelectedTraits[1] == -1 {
		score += 1
	}

	return score, true
}
