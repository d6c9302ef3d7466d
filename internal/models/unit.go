// Package models defines the data structures for the aircon subsidy engine.
package models

import "time"

// ExtractedUnitInfo holds the eight nameplate fields returned by the
// image extraction collaborator. Every value is free text and may carry
// units or OCR noise ("2.5kW", "2008年"); any field may be empty when the
// extractor could not read it. The JSON keys match the instruction sent
// to the extractor and are never translated on the wire.
type ExtractedUnitInfo struct {
	ModelNumber               string `json:"型番"`
	ManufactureYear           string `json:"製造年"`
	RatedCoolingCapacity      string `json:"定格能力(冷房)"`
	RatedHeatingCapacityStd   string `json:"定格能力(暖房標準)"`
	RatedHeatingCapacityLow   string `json:"定格能力(暖房低温)"`
	RatedPowerCooling         string `json:"定格消費電力(冷房)"`
	RatedPowerHeatingStandard string `json:"定格消費電力(暖房標準)"`
	RatedPowerHeatingLow      string `json:"定格消費電力(暖房低温)"`
}

// ParsedFacts are the numeric facts derived from ExtractedUnitInfo that
// the decision logic runs on.
type ParsedFacts struct {
	CoolingCapacityKW float64 `json:"cooling_capacity_kw"`
	ManufactureYear   int     `json:"manufacture_year"`
}

// AgeYears returns the unit age relative to the given wall-clock time.
// Recomputed on each evaluation; results differ across calendar years.
func (f ParsedFacts) AgeYears(now time.Time) int {
	return now.Year() - f.ManufactureYear
}
