// Package subsidy implements the eligibility decision and quote logic.
package subsidy

// RoomSizeTatami maps a rated cooling capacity in kW to the tatami count
// of the room the unit is sized for. Buckets are inclusive on their
// upper bound: exactly 2.2 kW is a 6-tatami unit. Total over all real
// inputs; used for display only, never for the subsidy decision.
func RoomSizeTatami(coolingCapacityKW float64) int {
	switch {
	case coolingCapacityKW <= 2.2:
		return 6
	case coolingCapacityKW <= 2.5:
		return 8
	case coolingCapacityKW <= 2.8:
		return 10
	case coolingCapacityKW <= 3.6:
		return 12
	case coolingCapacityKW <= 4.5:
		return 14
	default:
		return 16
	}
}
