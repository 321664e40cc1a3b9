package fosave

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fosave/fosave/internal/breader"
)

func TestAllMapFilenamesValid(t *testing.T) {
	assert.True(t, allMapFilenamesValid([]string{"ONE.SAV", "two.sav"}))
	assert.False(t, allMapFilenamesValid([]string{"ONE.SAV", ""}))
	assert.False(t, allMapFilenamesValid([]string{"ONE.MAP"}))
}

func TestInt32SliceEqual(t *testing.T) {
	assert.True(t, int32SliceEqual([]int32{1, 2, 3}, []int32{1, 2, 3}))
	assert.False(t, int32SliceEqual([]int32{1, 2}, []int32{1, 2, 3}))
	assert.False(t, int32SliceEqual([]int32{1, 2, 3}, []int32{1, 2, 4}))
}

func TestTaggedUnique(t *testing.T) {
	assert.True(t, taggedUnique([TaggedSkillCount]int32{0, 1, -1, -1}))
	assert.False(t, taggedUnique([TaggedSkillCount]int32{0, 0, -1, -1}))
	assert.True(t, taggedUnique([TaggedSkillCount]int32{-1, -1, -1, -1}))
}

func TestParseMapFileListGameBValid(t *testing.T) {
	w := breader.NewWriter()
	w.I32(2)
	w.RawBytes([]byte("ONE.SAV\x00"))
	w.RawBytes([]byte("TWO.SAV\x00"))
	w.I32(777)

	r := breader.New(w.Bytes())
	got, err := parseMapFileListGameB(r)
	require.NoError(t, err)
	assert.Equal(t, []string{"ONE.SAV", "TWO.SAV"}, got.MapFiles)
	assert.Equal(t, int32(777), got.AutomapSize)
}

func TestParseMapFileListGameBRejectsTooManyFiles(t *testing.T) {
	w := breader.NewWriter()
	w.I32(int32(gameBMapFileCountMax) + 1)
	r := breader.New(w.Bytes())
	_, err := parseMapFileListGameB(r)
	assert.Error(t, err)
}

func TestParseMapFileListGameBRejectsEmptyFilename(t *testing.T) {
	w := breader.NewWriter()
	w.I32(1)
	w.Zero(mapFilenameFieldLen)

	r := breader.New(w.Bytes())
	_, err := parseMapFileListGameB(r)
	assert.Error(t, err)
}

// buildGameBGlobalsBuffer lays out handlers 2-4 with n global vars (all
// zero so every candidate count below n reads a zero, invalid fileCount
// and is rejected before it can false-positive), followed by a valid
// handler 3 map file list and a duplicate of the globals block.
func buildGameBGlobalsBuffer(n int) []byte {
	w := breader.NewWriter()
	w.I32Slice(make([]int32, n))
	w.I32(2)
	w.RawBytes([]byte("A.SAV\x00"))
	w.RawBytes([]byte("B.SAV\x00"))
	w.I32(500)
	w.I32Slice(make([]int32, n))
	return w.Bytes()
}

func TestDetectGlobalVarCountGameBFindsValidCandidate(t *testing.T) {
	const n = 10
	buf := buildGameBGlobalsBuffer(n)

	r := breader.New(buf)
	got, err := detectGlobalVarCountGameB(r, 0)
	require.NoError(t, err)
	assert.Equal(t, n, got)
}

func TestParseGameGlobalVarsGameBRoundTrip(t *testing.T) {
	const n = 10
	buf := buildGameBGlobalsBuffer(n)

	r := breader.New(buf)
	got, err := parseGameGlobalVarsGameB(r)
	require.NoError(t, err)
	assert.Len(t, got.GlobalVars, n)
	assert.Equal(t, n*4, r.Tell())
}

func TestParseKillCountsGameBRoundTrip(t *testing.T) {
	vals := make([]int32, KillTypeCountGameB)
	for i := range vals {
		vals[i] = int32(i)
	}
	w := breader.NewWriter()
	w.I32Slice(vals)

	r := breader.New(w.Bytes())
	got, err := parseKillCountsGameB(r)
	require.NoError(t, err)
	assert.Equal(t, vals, got[:])
}

func TestParseTaggedSkillsRoundTrip(t *testing.T) {
	w := breader.NewWriter()
	w.I32Slice([]int32{2, 5, -1, -1})

	r := breader.New(w.Bytes())
	got, err := parseTaggedSkills(r)
	require.NoError(t, err)
	assert.Equal(t, [TaggedSkillCount]int32{2, 5, -1, -1}, got)
}

func TestParsePerksArray(t *testing.T) {
	vals := make([]int32, PerkCountGameB)
	vals[3] = 2
	w := breader.NewWriter()
	w.I32Slice(vals)

	r := breader.New(w.Bytes())
	got, err := parsePerksArray(r, PerkCountGameB)
	require.NoError(t, err)
	assert.Equal(t, vals, got)
}

func TestParsePerksWithPartyCopiesSkipsTrailingCopies(t *testing.T) {
	w := breader.NewWriter()
	w.I32Slice(make([]int32, PerkCountGameB))   // party member 0's perks (the ones returned)
	w.I32Slice(make([]int32, PerkCountGameB*2)) // 2 more party members' copies, skipped

	r := breader.New(w.Bytes())
	got, err := parsePerksWithPartyCopies(r, 3)
	require.NoError(t, err)
	assert.Len(t, got, PerkCountGameB)
	assert.Equal(t, len(w.Bytes()), r.Tell())
}

func TestParsePerksWithPartyCopiesRejectsZeroParty(t *testing.T) {
	r := breader.New(make([]byte, PerkCountGameB*4))
	_, err := parsePerksWithPartyCopies(r, 0)
	assert.Error(t, err)
}

func TestParsePostPCSectionsRoundTrip(t *testing.T) {
	w := breader.NewWriter()
	w.I32(-1) // trait 0
	w.I32(3)  // trait 1
	w.I32(0)  // automap flags
	w.I32(2)  // game difficulty
	w.I32(0)  // combat difficulty
	w.I32(0)  // violence level
	w.I32(0)  // target highlight
	w.I32(0)  // combat looks

	r := breader.New(w.Bytes())
	got, err := parsePostPCSections(r)
	require.NoError(t, err)
	assert.Equal(t, [gameBTraitsSelectedMax]int32{-1, 3}, got.SelectedTraits)
	assert.Equal(t, int32(2), got.GameDifficulty)
	assert.Equal(t, len(w.Bytes()), r.Tell())
}

func TestScoreCritterProtoCandidateRewardsPlausibleData(t *testing.T) {
	var c CritterProtoData
	for i := 0; i < 7; i++ {
		c.BaseStats[i] = 5
	}
	c.Experience = 1000
	c.BodyType = 1

	kills := [KillTypeCountGameB]int32{}
	tagged := [TaggedSkillCount]int32{0, 1, 2, -1}

	score := scoreCritterProtoCandidate(c, kills, tagged)
	assert.Greater(t, score, int32(12))
}

func TestScoreCritterProtoCandidatePenalizesBadSpecial(t *testing.T) {
	var c CritterProtoData
	c.BaseStats[0] = 99 // out of [1,10], fails the SPECIAL check
	c.Skills[0] = 999   // out of [0,400], fails the skills check
	c.Experience = -1   // out of range
	c.BodyType = 999    // out of range

	kills := [KillTypeCountGameB]int32{}
	kills[0] = -1 // out of range, fails the kill-counts check
	tagged := [TaggedSkillCount]int32{-1, -1, -1, -1}

	score := scoreCritterProtoCandidate(c, kills, tagged)
	assert.Less(t, score, int32(12))
}
