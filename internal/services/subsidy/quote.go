package subsidy

import "aircon-subsidy-engine/internal/models"

// Compose combines a selected catalog entry with an evaluated subsidy
// into the out-of-pocket quote: unit price + install cost - subsidy.
// A net cost is undefined for a non-eligible unit, so Compose returns
// ErrNotEligible and the caller presents a distinct message instead of
// treating the subsidy as zero.
func Compose(entry models.CatalogEntry, result models.SubsidyResult) (models.Quote, error) {
	if !result.Eligible {
		return models.Quote{}, models.ErrNotEligible
	}

	return models.Quote{
		ModelCode:   entry.ModelCode,
		UnitPrice:   entry.UnitPrice,
		InstallCost: entry.InstallCost,
		Subsidy:     result.Amount,
		NetCost:     entry.UnitPrice + entry.InstallCost - result.Amount,
	}, nil
}
