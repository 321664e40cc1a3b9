// This file implements Game A's per-handler codecs that are not shared
// with Game B: the global-variable-count detection heuristic, the map
// file list, the event queue skip, and the trait pair.
//
// Grounded verbatim on ali-raheem/fallout-se's
// crates/fallout_core/src/fallout1/sections.rs.

package fosave

import (
	"strings"

	"github.com/fosave/fosave/internal/breader"
	"github.com/fosave/fosave/internal/logx"
)

const (
	gameAGlobalVarSearchMin = 100
	gameAGlobalVarSearchMax = 2000
	gameAMapFileCountMax    = 200
	mapFilenameFieldLen     = 16
)

// detectGlobalVarCountGameA tries candidate global-variable counts n in
// [100, 2000) until handler 3 (the map file list immediately following)
// validates: a plausible file count followed by an all-ASCII ".SAV"
// filename.
func detectGlobalVarCountGameA(r *breader.Reader, handler2Start int) (int, error) {
	for n := gameAGlobalVarSearchMin; n < gameAGlobalVarSearchMax; n++ {
		handler3Pos := handler2Start + n*4 + 1
		if err := r.Seek(handler3Pos); err != nil {
			continue
		}
		fileCount, err := r.I32()
		if err != nil || fileCount <= 0 || fileCount >= int32(gameAMapFileCountMax) {
			continue
		}
		filename, err := r.NullTerminatedString(mapFilenameFieldLen)
		if err != nil || filename == "" || !isASCII(filename) {
			continue
		}
		if !strings.HasSuffix(strings.ToUpper(filename), ".SAV") {
			continue
		}
		logx.L.Debug().Int("candidate", n).Str("filename", filename).
			Msg("detectGlobalVarCountGameA: chosen")
		return n, nil
	}
	logx.L.Debug().Int("tried_min", gameAGlobalVarSearchMin).Int("tried_max", gameAGlobalVarSearchMax).
		Msg("detectGlobalVarCountGameA: no candidate validated")
	return 0, parseErrorf(nil, "could not detect global variable count")
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] > 127 {
			return false
		}
	}
	return true
}

// GlobalVarsSection is handler 2's payload: an int32 vector whose length
// is recovered by detectGlobalVarCountGameA, plus a trailing flag byte.
type GlobalVarsSection struct {
	GlobalVars        []int32
	WaterMoviePlayed  bool
}

func parseGameGlobalVarsGameA(r *breader.Reader) (GlobalVarsSection, error) {
	startPos := r.Tell()
	n, err := detectGlobalVarCountGameA(r, startPos)
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
	waterFlag, err := r.U8()
	if err != nil {
		return GlobalVarsSection{}, parseErrorf(err, "water movie flag")
	}
	return GlobalVarsSection{GlobalVars: vars, WaterMoviePlayed: waterFlag != 0}, nil
}

// MapFileListSection is handler 3's payload in both games: a list of
// NUL-terminated filenames (at most 16 bytes each, with no padding after
// the terminator), plus a trailing automap size word.
type MapFileListSection struct {
	MapFiles    []string
	AutomapSize int32
}

// parseMapFileListGameA reads handler 3 without bounding the file count
// (Game A's detection heuristic already validated it upstream).
func parseMapFileListGameA(r *breader.Reader) (MapFileListSection, error) {
	fileCount, err := r.I32()
	if err != nil {
		return MapFileListSection{}, parseErrorf(err, "map file count")
	}
	files := make([]string, 0, fileCount)
	for i := int32(0); i < fileCount; i++ {
		name, err := r.NullTerminatedString(mapFilenameFieldLen)
		if err != nil {
			return MapFileListSection{}, parseErrorf(err, "map filename")
		}
		files = append(files, name)
	}
	automapSize, err := r.I32()
	if err != nil {
		return MapFileListSection{}, parseErrorf(err, "automap size")
	}
	return MapFileListSection{MapFiles: files, AutomapSize: automapSize}, nil
}

const eventQueueMaxCount = 10000

// eventQueueTailBytes maps an event's type word to the size of its
// type-specific tail payload, taken from fallout1-ce's q_func readProc
// handler table.
var eventQueueTailBytes = map[int32]int{
	0: 24, // DrugEffectEvent: stats[3] + modifiers[3]
	1: 0,  // Knockout
	2: 12, // WithdrawalEvent: field_0 + pid + perk
	3: 8,  // ScriptEvent: sid + fixedParam
	4: 0,  // Game time
	5: 0,  // Poison
	6: 8,  // RadiationEvent: radiationLevel + isHealing
	7: 0,  // Flare
	8: 0,  // Explosion
	9: 0,  // Item trickle
	10: 0, // Sneak
	11: 0, // Explosion failure
	12: 0, // Map update event
}

// skipEventQueue consumes handler 15's variable-length queue: a count,
// then that many (time, type, objectId) triples with a type-dependent
// tail.
func skipEventQueue(r *breader.Reader) error {
	count, err := r.I32()
	if err != nil {
		return parseErrorf(err, "event queue count")
	}
	if count < 0 || count > eventQueueMaxCount {
		return parseErrorf(nil, "invalid event queue count")
	}
	for i := int32(0); i < count; i++ {
		if _, err := r.I32(); err != nil { // time
			return parseErrorf(err, "event time")
		}
		eventType, err := r.I32()
		if err != nil {
			return parseErrorf(err, "event type")
		}
		if _, err := r.I32(); err != nil { // objectId
			return parseErrorf(err, "event object id")
		}
		extra, ok := eventQueueTailBytes[eventType]
		if !ok {
			return parseErrorf(nil, "unknown event type")
		}
		if err := r.SkipN(extra); err != nil {
			return parseErrorf(err, "event tail")
		}
	}
	return nil
}

func isTraitValueValid(v int32) bool {
	return v == -1 || (v >= 0 && v < TraitCount)
}

// parseTraitPair reads the two-word selected-traits field, validating each
// word is either -1 (unselected) or a trait index.
func parseTraitPair(r *breader.Reader) ([2]int32, error) {
	var traits [2]int32
	var err error
	if traits[0], err = r.I32(); err != nil {
		return traits, parseErrorf(err, "trait 1")
	}
	if traits[1], err = r.I32(); err != nil {
		return traits, parseErrorf(err, "trait 2")
	}
	if !isTraitValueValid(traits[0]) || !isTraitValueValid(traits[1]) {
		return traits, parseErrorf(nil, "invalid trait values")
	}
	return traits, nil
}
