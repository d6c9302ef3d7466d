package subsidy

import "aircon-subsidy-engine/internal/models"

// Age threshold separating the high and low subsidy tiers.
const oldUnitAgeYears = 15

// Evaluate applies the subsidy decision table to a replacement model's
// efficiency score and cooling capacity plus the age of the unit being
// replaced. Pure and deterministic; a non-eligible outcome is a valid
// result, not an error.
//
// Tiers nest efficiency first, then capacity, then age:
//
//	efficiency >= 3.0:   capacity >= 3.6       -> 70000 / 23000
//	                     2.4 <= capacity < 3.6 -> 60000 / 18000
//	                     capacity < 2.4        -> 50000 / 15000
//	2.0 <= eff < 3.0:    capacity >= 3.6       -> 40000 / 23000
//	                     2.4 <= capacity < 3.6 -> 30000 / 10000
//	                     capacity < 2.4        -> 20000 /  9000
//	efficiency < 2.0:    not eligible
//
// (first amount: age >= 15 years, second: age < 15). The 23000 amount
// legitimately appears in two cells; do not collapse them.
func Evaluate(efficiencyScore, coolingCapacityKW float64, ageYears int) models.SubsidyResult {
	old := ageYears >= oldUnitAgeYears

	switch {
	case efficiencyScore >= 3.0:
		switch {
		case coolingCapacityKW >= 3.6:
			if old {
				return models.Subsidy(70000)
			}
			return models.Subsidy(23000)
		case coolingCapacityKW >= 2.4:
			if old {
				return models.Subsidy(60000)
			}
			return models.Subsidy(18000)
		default:
			if old {
				return models.Subsidy(50000)
			}
			return models.Subsidy(15000)
		}
	case efficiencyScore >= 2.0:
		switch {
		case coolingCapacityKW >= 3.6:
			if old {
				return models.Subsidy(40000)
			}
			return models.Subsidy(23000)
		case coolingCapacityKW >= 2.4:
			if old {
				return models.Subsidy(30000)
			}
			return models.Subsidy(10000)
		default:
			if old {
				return models.Subsidy(20000)
			}
			return models.Subsidy(9000)
		}
	default:
		return models.NotEligible()
	}
}
