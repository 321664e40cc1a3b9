package fosave

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fosave/fosave/internal/breader"
)

func sampleCritterProtoData() CritterProtoData {
	var d CritterProtoData
	d.SneakWorking = 1
	d.Flags = 2
	for i := range d.BaseStats {
		d.BaseStats[i] = int32(i)
	}
	for i := range d.BonusStats {
		d.BonusStats[i] = int32(i * 2)
	}
	for i := range d.Skills {
		d.Skills[i] = int32(i * 3)
	}
	d.BodyType = 1
	d.Experience = 12345
	d.KillType = 0
	return d
}

func TestCritterProtoDataRoundTrip(t *testing.T) {
	d := sampleCritterProtoData()
	w := breader.NewWriter()
	d.emit(w)

	r := breader.New(w.Bytes())
	got, err := parseCritterProtoData(r)
	require.NoError(t, err)
	assert.Equal(t, d, got)
	assert.Equal(t, len(w.Bytes()), r.Tell())
}

func TestPCStatsRoundTrip(t *testing.T) {
	s := PCStats{UnspentSkillPoints: 3, Level: 5, Experience: 8000, Reputation: -2, Karma: 100}
	w := breader.NewWriter()
	s.emit(w)

	r := breader.New(w.Bytes())
	got, err := parsePCStats(r)
	require.NoError(t, err)
	assert.Equal(t, s, got)
}

func TestCombatStateGameANotInCombat(t *testing.T) {
	w := breader.NewWriter()
	w.U32(0)

	r := breader.New(w.Bytes())
	got, err := parseCombatStateGameA(r)
	require.NoError(t, err)
	assert.Equal(t, uint32(0), got.Flags)
	assert.Nil(t, got.Data)
}

func TestCombatStateGameAInCombatRoundTrip(t *testing.T) {
	w := breader.NewWriter()
	w.U32(combatInCombatBit)
	w.I32(1) // turn_running
	w.I32(0) // free_move
	w.I32(100)
	w.I32(2) // list_com
	w.I32(4) // list_noncom
	w.I32(5) // list_total (Game A never validates com+noncom==total)
	w.I32(42)
	w.I32Slice([]int32{1, 2, 3, 4, 5})

	r := breader.New(w.Bytes())
	got, err := parseCombatStateGameA(r)
	require.NoError(t, err)
	require.NotNil(t, got.Data)
	assert.Equal(t, int32(5), got.Data.ListTotal)
	assert.Equal(t, []int32{1, 2, 3, 4, 5}, got.Data.CombatantCIDs)
	assert.Nil(t, got.Data.AIInfo)
}

func buildCombatStateGameBBytes(listCom, listNoncom, listTotal int32, cids []int32) []byte {
	w := breader.NewWriter()
	w.U32(combatInCombatBit)
	w.I32(1)
	w.I32(0)
	w.I32(100)
	w.I32(listCom)
	w.I32(listNoncom)
	w.I32(listTotal)
	w.I32(42)
	w.I32Slice(cids)
	for range cids {
		w.I32(0)
		w.I32(0)
		w.I32(0)
		w.I32(0)
	}
	return w.Bytes()
}

func TestCombatStateGameBRoundTrip(t *testing.T) {
	buf := buildCombatStateGameBBytes(2, 1, 3, []int32{10, 20, 30})
	r := breader.New(buf)
	got, err := parseCombatStateGameB(r)
	require.NoError(t, err)
	require.NotNil(t, got.Data)
	assert.Equal(t, []int32{10, 20, 30}, got.Data.CombatantCIDs)
	assert.Len(t, got.Data.AIInfo, 3)
	assert.Equal(t, len(buf), r.Tell())
}

func TestCombatStateGameBRejectsInconsistentCounters(t *testing.T) {
	buf := buildCombatStateGameBBytes(2, 1, 4, []int32{10, 20, 30, 40})
	r := breader.New(buf)
	_, err := parseCombatStateGameB(r)
	assert.Error(t, err)
}

func TestCombatStateGameBRejectsOverMaxListTotal(t *testing.T) {
	w := breader.NewWriter()
	w.U32(combatInCombatBit)
	w.I32(0)
	w.I32(0)
	w.I32(0)
	w.I32(0)
	w.I32(0)
	w.I32(maxCombatListTotal + 1)
	w.I32(0)

	r := breader.New(w.Bytes())
	_, err := parseCombatStateGameB(r)
	assert.Error(t, err)
}
