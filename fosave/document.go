// This file implements the top-level SaveGame snapshot and the editable
// Document wrapper around it: the handler-by-handler parse orchestrator
// for both games, and (Game A only) the section-blob patch-and-shift
// mutators used to re-emit a modified file.
//
// Grounded on ali-raheem/fallout-se's fallout1/mod.rs and fallout2/mod.rs:
// both games' parse_internal handler sequences, Document's Game A
// mutators (patch_i32_in_blob, replace_section_blob, the trait-parse
// rollback guard), and Game B's read-only Document (to_bytes_unmodified
// only, no to_bytes_modified — see supports_editing()).

package fosave

import (
	"github.com/pkg/errors"

	"github.com/fosave/fosave/internal/breader"
	"github.com/fosave/fosave/internal/logx"
)

// SaveGame is the parsed, read-only projection of one save file. Fields
// that only one game populates are left at their zero value for the
// other: MapFiles/AutomapSize/CombatState etc. are common, but
// GameDifficulty, PartyMemberCount, AIPacketCount and
// LayoutDetectionScore are Game B only.
type SaveGame struct {
	Game Game

	Header         *Header
	PlayerCombatID int32
	GlobalVarCount int
	MapFiles       []string
	AutomapSize    int32

	PlayerObject *GameObject
	CenterTile   int32

	CritterData CritterProtoData
	Gender      Gender

	KillCounts   []int32
	TaggedSkills [TaggedSkillCount]int32
	// Perks is PerkCount long for Game A, PerkCountGameB long for Game B:
	// the two games do not share a perk array width (see PerkCountGameB).
	Perks        []int32
	Combat       CombatState
	PCStats      PCStats

	SelectedTraits [2]int32

	// Game B only.
	GameDifficulty       int32
	PartyMemberCount     int
	AIPacketCount        int
	LayoutDetectionScore int32
}

// Document is a parsed save file plus its recovered byte layout. Game A
// documents support surgical edits (SupportsEditing reports true); Game B
// documents are read-only because their handler 10-17 span is recovered
// by best-effort search rather than an exact offset computation, so there
// is no reliable place to grow or shrink a section.
type Document struct {
	Save *SaveGame

	layout          Layout
	sectionBlobs    [][]byte
	origSectionBlobs [][]byte
	origFileLen     int
	supportsEditing bool
}

// Layout returns the document's recovered section layout.
func (d *Document) Layout() Layout {
	return d.layout
}

// SupportsEditing reports whether this document's game supports the Set*/
// Clear*/Add*/Remove* mutators and ToBytesModified.
func (d *Document) SupportsEditing() bool {
	return d.supportsEditing
}

// ParseWithLayout parses data under the given game, recording every
// handler's byte range as it is produced. The trailing unparsed bytes (if
// any) become a single Tail section.
//
// The heuristic scans in sections_gamea.go/sections_gameb.go do arithmetic
// on untrusted offsets, so a single recover boundary sits here the way
// icza/screp's repparser.parseProtected recovers around its whole parse: a
// panic is logged with the section after the last one successfully
// captured (the one it most likely occurred in) and turned
// into a Parse-kind *Error instead of crossing the package boundary.
func ParseWithLayout(data []byte, game Game) (doc *Document, err error) {
	cap := newCapture()
	defer func() {
		rec := recover()
		if rec == nil {
			return
		}
		sectionID := nextSectionID(cap)
		logx.L.Error().
			Str("section", sectionID.String()).
			Interface("panic", rec).
			Msg("recovered panic while parsing save file")
		doc, err = nil, parseErrorf(errors.Errorf("%v", rec), "panic while parsing "+sectionID.String())
	}()
	return parseWithLayout(data, game, cap)
}

// nextSectionID reports the section a panic most likely occurred in: the
// one immediately after the last one capture successfully recorded.
func nextSectionID(cap *capture) SectionID {
	n := len(cap.sections)
	if n == 0 {
		return HeaderSectionID
	}
	last := cap.sections[n-1].ID
	switch last.Kind {
	case "Header":
		return HandlerSectionID(1)
	case "Handler":
		return HandlerSectionID(last.Handler + 1)
	default:
		return TailSectionID
	}
}

func parseWithLayout(data []byte, game Game, cap *capture) (*Document, error) {
	r := breader.New(data)

	var save *SaveGame
	var err error
	switch game {
	case GameA:
		save, err = parseInternalGameA(r, data, cap)
	case GameB:
		save, err = parseInternalGameB(r, data, cap)
	default:
		return nil, parseErrorf(nil, "unknown game")
	}
	if err != nil {
		return nil, err
	}

	consumed := r.Tell()
	fileLen := len(data)
	if consumed < fileLen {
		if err := cap.record(TailSectionID, data, consumed, fileLen); err != nil {
			return nil, err
		}
	}

	layout := cap.layout(fileLen)
	if err := layout.Validate(); err != nil {
		return nil, err
	}

	blobs := append([][]byte(nil), cap.blobs...)
	doc := &Document{
		Save:            save,
		layout:          layout,
		sectionBlobs:    blobs,
		origFileLen:     fileLen,
		supportsEditing: game == GameA,
	}
	if doc.supportsEditing {
		doc.origSectionBlobs = make([][]byte, len(cap.blobs))
		for i, b := range cap.blobs {
			doc.origSectionBlobs[i] = append([]byte(nil), b...)
		}
	}
	return doc, nil
}

// Open parses data, trying the game(s) indicated by hint. HintAuto tries
// both and fails with KindGameDetectionAmbiguous if both succeed.
func Open(data []byte, hint Hint) (*Document, error) {
	switch hint {
	case HintGameA:
		doc, err := ParseWithLayout(data, GameA)
		if err != nil {
			return nil, parseErrorf(err, "as Game A")
		}
		return doc, nil
	case HintGameB:
		doc, err := ParseWithLayout(data, GameB)
		if err != nil {
			return nil, parseErrorf(err, "as Game B")
		}
		return doc, nil
	}

	docA, errA := ParseWithLayout(data, GameA)
	docB, errB := ParseWithLayout(data, GameB)
	switch {
	case errA == nil && errB == nil:
		return nil, ambiguousErrorf("save parses successfully as both Game A and Game B")
	case errA == nil:
		return docA, nil
	case errB == nil:
		return docB, nil
	default:
		return nil, parseErrorf(errA, "not a recognized save file")
	}
}

func recordSection(cap *capture, id SectionID, data []byte, start, end int) error {
	if cap == nil {
		return nil
	}
	return cap.record(id, data, start, end)
}

// parseInternalGameA runs Game A's fixed handler sequence.
func parseInternalGameA(r *breader.Reader, data []byte, cap *capture) (*SaveGame, error) {
	headerStart := r.Tell()
	header, err := parseHeader(r)
	if err != nil {
		return nil, err
	}
	if err := recordSection(cap, HeaderSectionID, data, headerStart, r.Tell()); err != nil {
		return nil, err
	}

	h1Start := r.Tell()
	playerCombatID, err := r.I32()
	if err != nil {
		return nil, parseErrorf(err, "player combat id")
	}
	if err := recordSection(cap, HandlerSectionID(1), data, h1Start, r.Tell()); err != nil {
		return nil, err
	}

	h2Start := r.Tell()
	globals, err := parseGameGlobalVarsGameA(r)
	if err != nil {
		return nil, err
	}
	globalVarCount := len(globals.GlobalVars)
	if err := recordSection(cap, HandlerSectionID(2), data, h2Start, r.Tell()); err != nil {
		return nil, err
	}

	h3Start := r.Tell()
	mapList, err := parseMapFileListGameA(r)
	if err != nil {
		return nil, err
	}
	if err := recordSection(cap, HandlerSectionID(3), data, h3Start, r.Tell()); err != nil {
		return nil, err
	}

	h4Start := r.Tell()
	if err := r.SkipN(globalVarCount*4 + 1); err != nil {
		return nil, parseErrorf(err, "global vars duplicate skip")
	}
	if err := recordSection(cap, HandlerSectionID(4), data, h4Start, r.Tell()); err != nil {
		return nil, err
	}

	h5Start := r.Tell()
	playerObject, err := parseGameObject(r)
	if err != nil {
		return nil, err
	}
	centerTile, err := r.I32()
	if err != nil {
		return nil, parseErrorf(err, "center tile")
	}
	if err := recordSection(cap, HandlerSectionID(5), data, h5Start, r.Tell()); err != nil {
		return nil, err
	}

	h6Start := r.Tell()
	critterData, err := parseCritterProtoData(r)
	if err != nil {
		return nil, err
	}
	gender := GenderFromRaw(critterData.BaseStats[StatGenderIndex])
	if err := recordSection(cap, HandlerSectionID(6), data, h6Start, r.Tell()); err != nil {
		return nil, err
	}

	h7Start := r.Tell()
	killCounts, err := r.I32Slice(KillTypeCountGameA)
	if err != nil {
		return nil, parseErrorf(err, "kill counts")
	}
	if err := recordSection(cap, HandlerSectionID(7), data, h7Start, r.Tell()); err != nil {
		return nil, err
	}

	h8Start := r.Tell()
	taggedSkills, err := parseTaggedSkills(r)
	if err != nil {
		return nil, err
	}
	if err := recordSection(cap, HandlerSectionID(8), data, h8Start, r.Tell()); err != nil {
		return nil, err
	}

	h9Pos := r.Tell()
	if err := recordSection(cap, HandlerSectionID(9), data, h9Pos, h9Pos); err != nil {
		return nil, err
	}

	h10Start := r.Tell()
	perks, err := parsePerksArray(r, PerkCount)
	if err != nil {
		return nil, err
	}
	if err := recordSection(cap, HandlerSectionID(10), data, h10Start, r.Tell()); err != nil {
		return nil, err
	}

	h11Start := r.Tell()
	combat, err := parseCombatStateGameA(r)
	if err != nil {
		return nil, err
	}
	if err := recordSection(cap, HandlerSectionID(11), data, h11Start, r.Tell()); err != nil {
		return nil, err
	}

	h12Pos := r.Tell()
	if err := recordSection(cap, HandlerSectionID(12), data, h12Pos, h12Pos); err != nil {
		return nil, err
	}

	h13Start := r.Tell()
	pcStats, err := parsePCStats(r)
	if err != nil {
		return nil, err
	}
	if err := recordSection(cap, HandlerSectionID(13), data, h13Start, r.Tell()); err != nil {
		return nil, err
	}

	// Handlers 14-16: try to parse the event queue and trait pair; on
	// failure, roll back the reader and drop any partial capture entries
	// recorded for 14-16, then record 14-16 as empty ranges at the rollback
	// position (the unparsed bytes fold into the trailing Tail section
	// recorded by the caller).
	preTraitsPos := r.Tell()
	preTraitsLen := -1
	if cap != nil {
		preTraitsLen = len(cap.sections)
	}
	selectedTraits, traitsErr := parseHandlers14To16GameA(r, data, cap)
	if traitsErr != nil {
		if err := r.Seek(preTraitsPos); err != nil {
			return nil, parseErrorf(err, "trait guard rewind")
		}
		if cap != nil && preTraitsLen >= 0 {
			cap.truncateTo(preTraitsLen)
		}
		for h := 14; h <= 16; h++ {
			if err := recordSection(cap, HandlerSectionID(h), data, preTraitsPos, preTraitsPos); err != nil {
				return nil, err
			}
		}
		selectedTraits = [2]int32{-1, -1}
	}

	return &SaveGame{
		Game:           GameA,
		Header:         header,
		PlayerCombatID: playerCombatID,
		GlobalVarCount: globalVarCount,
		MapFiles:       mapList.MapFiles,
		AutomapSize:    mapList.AutomapSize,
		PlayerObject:   playerObject,
		CenterTile:     centerTile,
		CritterData:    critterData,
		Gender:         gender,
		KillCounts:     killCounts,
		TaggedSkills:   taggedSkills,
		Perks:          perks,
		Combat:         combat,
		PCStats:        pcStats,
		SelectedTraits: selectedTraits,
	}, nil
}

func parseHandlers14To16GameA(r *breader.Reader, data []byte, cap *capture) ([2]int32, error) {
	h14Pos := r.Tell()
	if err := recordSection(cap, HandlerSectionID(14), data, h14Pos, h14Pos); err != nil {
		return [2]int32{}, err
	}

	h15Start := r.Tell()
	if err := skipEventQueue(r); err != nil {
		return [2]int32{}, err
	}
	if err := recordSection(cap, HandlerSectionID(15), data, h15Start, r.Tell()); err != nil {
		return [2]int32{}, err
	}

	h16Start := r.Tell()
	traits, err := parseTraitPair(r)
	if err != nil {
		return [2]int32{}, err
	}
	if err := recordSection(cap, HandlerSectionID(16), data, h16Start, r.Tell()); err != nil {
		return [2]int32{}, err
	}

	return traits, nil
}

// parseInternalGameB runs Game B's handler sequence: identical in shape
// through handler 9, then a combined search recovers handlers 10-17.
func parseInternalGameB(r *breader.Reader, data []byte, cap *capture) (*SaveGame, error) {
	headerStart := r.Tell()
	header, err := parseHeader(r)
	if err != nil {
		return nil, err
	}
	if err := recordSection(cap, HeaderSectionID, data, headerStart, r.Tell()); err != nil {
		return nil, err
	}

	h1Start := r.Tell()
	playerCombatID, err := r.I32()
	if err != nil {
		return nil, parseErrorf(err, "player combat id")
	}
	if err := recordSection(cap, HandlerSectionID(1), data, h1Start, r.Tell()); err != nil {
		return nil, err
	}

	h2Start := r.Tell()
	globals, err := parseGameGlobalVarsGameB(r)
	if err != nil {
		return nil, err
	}
	globalVarCount := len(globals.GlobalVars)
	if err := recordSection(cap, HandlerSectionID(2), data, h2Start, r.Tell()); err != nil {
		return nil, err
	}

	h3Start := r.Tell()
	mapInfo, err := parseMapFileListGameB(r)
	if err != nil {
		return nil, err
	}
	if err := recordSection(cap, HandlerSectionID(3), data, h3Start, r.Tell()); err != nil {
		return nil, err
	}

	h4Start := r.Tell()
	if err := r.SkipN(globalVarCount * 4); err != nil {
		return nil, parseErrorf(err, "global vars duplicate skip")
	}
	if err := recordSection(cap, HandlerSectionID(4), data, h4Start, r.Tell()); err != nil {
		return nil, err
	}

	h5Start := r.Tell()
	playerObject, err := parseGameObject(r)
	if err != nil {
		return nil, err
	}
	centerTile, err := r.I32()
	if err != nil {
		return nil, parseErrorf(err, "center tile")
	}
	if err := recordSection(cap, HandlerSectionID(5), data, h5Start, r.Tell()); err != nil {
		return nil, err
	}

	h6Start := r.Tell()
	critterData, err := parseCritterProtoNearby(r)
	if err != nil {
		return nil, err
	}
	gender := GenderFromRaw(critterData.BaseStats[StatGenderIndex])
	if err := recordSection(cap, HandlerSectionID(6), data, h6Start, r.Tell()); err != nil {
		return nil, err
	}

	h7Start := r.Tell()
	killCountsArr, err := parseKillCountsGameB(r)
	if err != nil {
		return nil, err
	}
	if err := recordSection(cap, HandlerSectionID(7), data, h7Start, r.Tell()); err != nil {
		return nil, err
	}

	h8Start := r.Tell()
	taggedSkills, err := parseTaggedSkills(r)
	if err != nil {
		return nil, err
	}
	if err := recordSection(cap, HandlerSectionID(8), data, h8Start, r.Tell()); err != nil {
		return nil, err
	}

	h9Pos := r.Tell()
	if err := recordSection(cap, HandlerSectionID(9), data, h9Pos, h9Pos); err != nil {
		return nil, err
	}

	postStart := h9Pos
	post, err := parsePostTaggedSections(r)
	if err != nil {
		return nil, err
	}

	if cap != nil {
		if err := cap.record(HandlerSectionID(10), data, postStart, post.H10End); err != nil {
			return nil, err
		}
		if err := cap.record(HandlerSectionID(11), data, post.H10End, post.H11End); err != nil {
			return nil, err
		}
		if err := cap.record(HandlerSectionID(12), data, post.H11End, post.H12End); err != nil {
			return nil, err
		}
		if err := cap.record(HandlerSectionID(13), data, post.H12End, post.H13End); err != nil {
			return nil, err
		}
		if err := cap.record(HandlerSectionID(14), data, post.H13End, post.H13End); err != nil {
			return nil, err
		}
		if err := cap.record(HandlerSectionID(15), data, post.H13End, post.H15End); err != nil {
			return nil, err
		}
		if err := cap.record(HandlerSectionID(16), data, post.H15End, post.H16End); err != nil {
			return nil, err
		}
		if err := cap.record(HandlerSectionID(17), data, post.H16End, post.H17PrefixEnd); err != nil {
			return nil, err
		}
	}

	return &SaveGame{
		Game:                 GameB,
		Header:               header,
		PlayerCombatID:       playerCombatID,
		GlobalVarCount:       globalVarCount,
		MapFiles:             mapInfo.MapFiles,
		AutomapSize:          mapInfo.AutomapSize,
		PlayerObject:         playerObject,
		CenterTile:           centerTile,
		CritterData:          critterData,
		Gender:               gender,
		KillCounts:           killCountsArr[:],
		TaggedSkills:         taggedSkills,
		Perks:                post.Perks,
		Combat:               post.Combat,
		PCStats:              post.PCStats,
		SelectedTraits:       post.SelectedTraits,
		GameDifficulty:       post.GameDifficulty,
		PartyMemberCount:     post.PartyMemberCount,
		AIPacketCount:        post.AIPacketCount,
		LayoutDetectionScore: post.DetectionScore,
	}, nil
}

// ToBytesUnmodified re-emits the document exactly as captured, with no
// edits applied.
func (d *Document) ToBytesUnmodified() ([]byte, error) {
	blobs := d.sectionBlobs
	fileLen := d.origFileLen
	if d.supportsEditing {
		blobs = d.origSectionBlobs
	}
	return emitFromBlobs(blobs, fileLen, "unmodified")
}

// ToBytesModified re-emits the document with every edit applied. Only
// Game A documents support this; Game B returns KindUnsupportedOperation.
func (d *Document) ToBytesModified() ([]byte, error) {
	if !d.supportsEditing {
		return nil, unsupportedErrorf("Game B save files do not support editing")
	}
	if err := d.validateModifiedState(); err != nil {
		return nil, err
	}
	return emitFromBlobs(d.sectionBlobs, d.layout.FileLen, "modified")
}

func emitFromBlobs(blobs [][]byte, expectedLen int, modeLabel string) ([]byte, error) {
	out := make([]byte, 0, expectedLen)
	for _, b := range blobs {
		out = append(out, b...)
	}
	if len(out) != expectedLen {
		return nil, parseErrorf(nil, modeLabel+" emit length mismatch")
	}
	return out, nil
}

func (d *Document) validateModifiedState() error {
	if len(d.layout.Sections) != len(d.sectionBlobs) {
		return parseErrorf(nil, "layout/blob section count mismatch")
	}
	for i, sec := range d.layout.Sections {
		if sec.Range.Len() != len(d.sectionBlobs[i]) {
			return parseErrorf(nil, "section/blob length mismatch")
		}
	}
	return d.layout.Validate()
}

func (d *Document) sectionIndex(id SectionID) (int, error) {
	idx := d.layout.IndexOf(id)
	if idx < 0 {
		return 0, parseErrorf(nil, "missing section "+id.String())
	}
	return idx, nil
}

func (d *Document) requireEditing() error {
	if !d.supportsEditing {
		return unsupportedErrorf("Game B save files do not support editing")
	}
	return nil
}

func patchI32InBlob(blob []byte, offset int, raw int32) error {
	const width = 4
	if len(blob) < offset+width {
		return parseErrorf(nil, "blob too short for patch")
	}
	w := breader.NewWriter()
	w.I32(raw)
	copy(blob[offset:offset+width], w.Bytes())
	return nil
}

func (d *Document) patchHandlerI32(handler int, offset int, raw int32) error {
	idx, err := d.sectionIndex(HandlerSectionID(handler))
	if err != nil {
		return err
	}
	return patchI32InBlob(d.sectionBlobs[idx], offset, raw)
}

// replaceSectionBlob swaps in bytes for the section at id, shifting every
// later section's start/end (and the overall file length) by the
// resulting length delta. Arithmetic overflow is a fatal parse error.
func (d *Document) replaceSectionBlob(id SectionID, bytes []byte) error {
	idx, err := d.sectionIndex(id)
	if err != nil {
		return err
	}
	oldLen := d.layout.Sections[idx].Range.Len()
	newLen := len(bytes)
	d.layout.Sections[idx].Range.End = d.layout.Sections[idx].Range.Start + newLen

	if newLen != oldLen {
		delta := newLen - oldLen
		if err := d.layout.Shift(idx, delta); err != nil {
			return err
		}
	}
	d.sectionBlobs[idx] = bytes
	return nil
}
