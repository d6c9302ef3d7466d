// Package models defines the data structures for the aircon subsidy engine.
package models

// SubsidyResult is the outcome of the eligibility evaluation: a point
// amount, or not eligible. Amount is meaningful only when Eligible is
// true.
type SubsidyResult struct {
	Amount   int  `json:"amount"`
	Eligible bool `json:"eligible"`
}

// Subsidy returns an eligible result with the given amount.
func Subsidy(amount int) SubsidyResult {
	return SubsidyResult{Amount: amount, Eligible: true}
}

// NotEligible is the sentinel result for units below the efficiency
// floor.
func NotEligible() SubsidyResult {
	return SubsidyResult{}
}

// Quote is the out-of-pocket price for a selected replacement model.
type Quote struct {
	ModelCode   string `json:"model_code"`
	UnitPrice   int    `json:"unit_price"`
	InstallCost int    `json:"install_cost"`
	Subsidy     int    `json:"subsidy"`
	NetCost     int    `json:"net_cost"`
}
