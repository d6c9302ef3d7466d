package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aircon-subsidy-engine/internal/models"
)

const sampleExtraction = `{
	"型番": "AN22YLS-W",
	"製造年": "2008年",
	"定格能力(冷房)": "2.5kW",
	"定格能力(暖房標準)": "2.8kW",
	"定格能力(暖房低温)": "3.2kW",
	"定格消費電力(冷房)": "635W",
	"定格消費電力(暖房標準)": "555W",
	"定格消費電力(暖房低温)": "1480W"
}`

func TestDecodeExtraction_PlainJSON(t *testing.T) {
	info, err := DecodeExtraction(sampleExtraction)
	require.NoError(t, err)

	assert.Equal(t, "AN22YLS-W", info.ModelNumber)
	assert.Equal(t, "2008年", info.ManufactureYear)
	assert.Equal(t, "2.5kW", info.RatedCoolingCapacity)
	assert.Equal(t, "1480W", info.RatedPowerHeatingLow)
}

func TestDecodeExtraction_CodeFenced(t *testing.T) {
	wrapped := "```json\n" + sampleExtraction + "\n```"
	info, err := DecodeExtraction(wrapped)
	require.NoError(t, err)
	assert.Equal(t, "AN22YLS-W", info.ModelNumber)
}

func TestDecodeExtraction_BareFenceAndWhitespace(t *testing.T) {
	wrapped := "\n\n```\n" + sampleExtraction + "\n```  \n"
	info, err := DecodeExtraction(wrapped)
	require.NoError(t, err)
	assert.Equal(t, "2.5kW", info.RatedCoolingCapacity)
}

func TestDecodeExtraction_PartialFields(t *testing.T) {
	info, err := DecodeExtraction(`{"型番": "AN22YLS-W", "製造年": null}`)
	require.NoError(t, err)
	assert.Equal(t, "AN22YLS-W", info.ModelNumber)
	assert.Empty(t, info.ManufactureYear)
	assert.Empty(t, info.RatedCoolingCapacity)
}

func TestDecodeExtraction_Empty(t *testing.T) {
	_, err := DecodeExtraction("")
	assert.ErrorIs(t, err, models.ErrExtractionFormat)
}

func TestDecodeExtraction_OnlyFences(t *testing.T) {
	_, err := DecodeExtraction("```json\n```")
	assert.ErrorIs(t, err, models.ErrExtractionFormat)
}

func TestDecodeExtraction_Prose(t *testing.T) {
	_, err := DecodeExtraction("画像からは情報を読み取れませんでした。")
	assert.ErrorIs(t, err, models.ErrExtractionFormat)
}

func TestDecodeExtraction_Truncated(t *testing.T) {
	_, err := DecodeExtraction(`{"型番": "AN22YLS-W", "製造年": "20`)
	assert.ErrorIs(t, err, models.ErrExtractionFormat)
}

func TestDecodeExtraction_JSONArray(t *testing.T) {
	_, err := DecodeExtraction(`["型番", "製造年"]`)
	assert.ErrorIs(t, err, models.ErrExtractionFormat)
}
