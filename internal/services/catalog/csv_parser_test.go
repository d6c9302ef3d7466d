package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aircon-subsidy-engine/internal/models"
)

const japaneseHeaderCSV = `型番,機器販売価格,基本工事費,多段階評価点,定格能力
S224ATES-W,130000,20000,3.0,2.2
S254ATES-W,150000,20000,3.2,2.5
S284ATES-W,170000,20000,3.4,2.8
`

func TestLoad_JapaneseHeaders(t *testing.T) {
	cat, err := Load(japaneseHeaderCSV)
	require.NoError(t, err)
	require.Equal(t, 3, cat.Len())

	entry, err := cat.FindByCode("S254ATES-W")
	require.NoError(t, err)
	assert.Equal(t, 150000, entry.UnitPrice)
	assert.Equal(t, 20000, entry.InstallCost)
	assert.Equal(t, 3.2, entry.EfficiencyScore)
	assert.Equal(t, 2.5, entry.RatedCoolingCapacityKW)
}

func TestLoad_EnglishHeaderAliases(t *testing.T) {
	content := `Model,Price,Install Cost,Efficiency,Capacity_KW
S224ATES-W,130000,20000,3.0,2.2
`
	cat, err := Load(content)
	require.NoError(t, err)

	entry, err := cat.FindByCode("S224ATES-W")
	require.NoError(t, err)
	assert.Equal(t, 130000, entry.UnitPrice)
	assert.Equal(t, 2.2, entry.RatedCoolingCapacityKW)
}

func TestLoad_PreservesFileOrder(t *testing.T) {
	cat, err := Load(japaneseHeaderCSV)
	require.NoError(t, err)

	entries := cat.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, "S224ATES-W", entries[0].ModelCode)
	assert.Equal(t, "S254ATES-W", entries[1].ModelCode)
	assert.Equal(t, "S284ATES-W", entries[2].ModelCode)
}

func TestFindByCode_UnknownModel(t *testing.T) {
	cat, err := Load(japaneseHeaderCSV)
	require.NoError(t, err)

	_, err = cat.FindByCode("X999ZZZ")
	assert.ErrorIs(t, err, models.ErrUnknownModel)
}

func TestParseEntries_MissingColumns(t *testing.T) {
	parser := NewCSVParser()
	_, errs := parser.ParseEntries("型番,機器販売価格\nS224ATES-W,130000\n")
	require.NotEmpty(t, errs)
	assert.ErrorIs(t, errs[0], ErrMissingColumns)
}

func TestParseEntries_EmptyContent(t *testing.T) {
	parser := NewCSVParser()
	_, errs := parser.ParseEntries("   \n")
	require.NotEmpty(t, errs)
	assert.ErrorIs(t, errs[0], ErrEmptyCSV)
}

func TestParseEntries_BadRowSkippedAndReported(t *testing.T) {
	content := `型番,機器販売価格,基本工事費,多段階評価点,定格能力
S224ATES-W,130000,20000,3.0,2.2
S999BAD-W,not-a-price,20000,3.0,2.2
`
	parser := NewCSVParser()
	entries, errs := parser.ParseEntries(content)

	require.Len(t, entries, 1)
	assert.Equal(t, "S224ATES-W", entries[0].ModelCode)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "line 3")
}

func TestParseEntries_FormattedNumbers(t *testing.T) {
	content := `型番,機器販売価格,基本工事費,多段階評価点,定格能力
S254ATES-W,"150,000円","20,000円",3.2,2.5kW
`
	parser := NewCSVParser()
	entries, errs := parser.ParseEntries(content)
	require.Empty(t, errs)
	require.Len(t, entries, 1)

	assert.Equal(t, 150000, entries[0].UnitPrice)
	assert.Equal(t, 20000, entries[0].InstallCost)
	assert.Equal(t, 2.5, entries[0].RatedCoolingCapacityKW)
}

func TestLoad_NoUsableRows(t *testing.T) {
	_, err := Load("型番,機器販売価格,基本工事費,多段階評価点,定格能力\n")
	assert.Error(t, err)
}
