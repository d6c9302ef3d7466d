package subsidy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"aircon-subsidy-engine/internal/models"
)

// validAmounts is the closed set of amounts the decision table can
// produce.
var validAmounts = map[int]bool{
	9000:  true,
	10000: true,
	15000: true,
	18000: true,
	20000: true,
	23000: true,
	30000: true,
	40000: true,
	50000: true,
	60000: true,
	70000: true,
}

func TestEvaluate_FullDecisionTable(t *testing.T) {
	tests := []struct {
		name       string
		efficiency float64
		capacity   float64
		age        int
		want       models.SubsidyResult
	}{
		{"high eff, large capacity, old", 3.5, 4.0, 20, models.Subsidy(70000)},
		{"high eff, large capacity, recent", 3.5, 4.0, 10, models.Subsidy(23000)},
		{"high eff, mid capacity, old", 3.5, 2.8, 20, models.Subsidy(60000)},
		{"high eff, mid capacity, recent", 3.5, 2.8, 10, models.Subsidy(18000)},
		{"high eff, small capacity, old", 3.5, 2.2, 20, models.Subsidy(50000)},
		{"high eff, small capacity, recent", 3.5, 2.2, 10, models.Subsidy(15000)},
		{"mid eff, large capacity, old", 2.5, 4.0, 20, models.Subsidy(40000)},
		{"mid eff, large capacity, recent", 2.5, 4.0, 10, models.Subsidy(23000)},
		{"mid eff, mid capacity, old", 2.5, 2.8, 20, models.Subsidy(30000)},
		{"mid eff, mid capacity, recent", 2.5, 2.8, 10, models.Subsidy(10000)},
		{"mid eff, small capacity, old", 2.5, 2.2, 20, models.Subsidy(20000)},
		{"mid eff, small capacity, recent", 2.5, 2.2, 10, models.Subsidy(9000)},
		{"low eff, large capacity, old", 1.5, 4.0, 20, models.NotEligible()},
		{"low eff, small capacity, recent", 1.5, 2.2, 10, models.NotEligible()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Evaluate(tt.efficiency, tt.capacity, tt.age)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEvaluate_EfficiencyBoundaries(t *testing.T) {
	// Exactly 3.0 belongs to the high tier.
	assert.Equal(t, models.Subsidy(70000), Evaluate(3.0, 4.0, 20))
	// Just below 3.0 belongs to the mid tier.
	assert.Equal(t, models.Subsidy(40000), Evaluate(2.99, 4.0, 20))
	// Exactly 2.0 belongs to the mid tier.
	assert.Equal(t, models.Subsidy(40000), Evaluate(2.0, 4.0, 20))
	// Just below 2.0 is not eligible.
	assert.Equal(t, models.NotEligible(), Evaluate(1.99, 4.0, 20))
}

func TestEvaluate_CapacityBoundaries(t *testing.T) {
	// Exactly 3.6 belongs to the large tier.
	assert.Equal(t, models.Subsidy(70000), Evaluate(3.2, 3.6, 20))
	// Just below 3.6 belongs to the mid tier.
	assert.Equal(t, models.Subsidy(60000), Evaluate(3.2, 3.59, 20))
	// Exactly 2.4 belongs to the mid tier.
	assert.Equal(t, models.Subsidy(60000), Evaluate(3.2, 2.4, 20))
	// Just below 2.4 belongs to the small tier.
	assert.Equal(t, models.Subsidy(50000), Evaluate(3.2, 2.39, 20))
}

func TestEvaluate_AgeBoundary(t *testing.T) {
	// Exactly 15 years counts as old.
	assert.Equal(t, models.Subsidy(60000), Evaluate(3.2, 2.5, 15))
	assert.Equal(t, models.Subsidy(18000), Evaluate(3.2, 2.5, 14))
}

func TestEvaluate_DuplicateAmountCells(t *testing.T) {
	// Two distinct cells both pay 23000 for recent large-capacity units.
	// The duplication comes from the authoring table and is preserved.
	high := Evaluate(3.5, 4.0, 10)
	mid := Evaluate(2.5, 4.0, 10)
	assert.Equal(t, models.Subsidy(23000), high)
	assert.Equal(t, models.Subsidy(23000), mid)
}

func TestEvaluate_LowEfficiencyAlwaysNotEligible(t *testing.T) {
	for _, capacity := range []float64{0.5, 2.4, 3.6, 10.0} {
		for _, age := range []int{0, 14, 15, 40} {
			got := Evaluate(1.9, capacity, age)
			assert.False(t, got.Eligible, "capacity=%v age=%d", capacity, age)
		}
	}
}

func TestEvaluate_AmountsStayInValidSet(t *testing.T) {
	efficiencies := []float64{1.0, 1.99, 2.0, 2.5, 2.99, 3.0, 4.5}
	capacities := []float64{0.8, 2.39, 2.4, 3.0, 3.59, 3.6, 6.3}
	ages := []int{-1, 0, 5, 14, 15, 16, 30}

	for _, e := range efficiencies {
		for _, c := range capacities {
			for _, a := range ages {
				got := Evaluate(e, c, a)
				if got.Eligible {
					assert.True(t, validAmounts[got.Amount],
						"Evaluate(%v, %v, %d) produced amount %d outside the table", e, c, a, got.Amount)
				} else {
					assert.Zero(t, got.Amount)
				}
			}
		}
	}
}

func TestEvaluate_Deterministic(t *testing.T) {
	first := Evaluate(3.2, 2.5, 16)
	second := Evaluate(3.2, 2.5, 16)
	assert.Equal(t, first, second)
}
