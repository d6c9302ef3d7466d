// Package models defines the data structures for the aircon subsidy engine.
package models

// CatalogEntry is one row of the static replacement-model catalog.
// The catalog is loaded once at startup and read-only afterwards.
type CatalogEntry struct {
	ModelCode              string  `json:"model_code"`
	UnitPrice              int     `json:"unit_price"`
	InstallCost            int     `json:"install_cost"`
	EfficiencyScore        float64 `json:"efficiency_score"`
	RatedCoolingCapacityKW float64 `json:"rated_cooling_capacity_kw"`
}

// SelectionItem is a catalog entry as presented to the user, annotated
// with its room-size equivalent.
type SelectionItem struct {
	ModelCode      string `json:"model_code"`
	RoomSizeTatami int    `json:"room_size_tatami"`
	UnitPrice      int    `json:"unit_price"`
}
