package repairkit

import (
	"math"

	"github.com/osse101/GearRepair_Go/internal/domain"
)

// RepairValueFunc returns a material's repair value against the gear being
// repaired. Values of zero or less mean the material does not apply.
type RepairValueFunc func(m domain.MaterialInstance) int

// PlanRepair decides which stored materials to consume to repair damage.
//
// Entries are visited in the order given, which must be ascending tier so
// that cheaper materials are spent first. Each entry restores at most
// round(repairValue * amount * gearEfficiency * kitEfficiency) and only the
// share of the amount needed for the damage left is consumed. The plan is
// empty when either efficiency is not positive.
func PlanRepair(damage int, gearEfficiency float64, entries []LedgerEntry, kitEfficiency float64, repairValue RepairValueFunc) domain.RepairPlan {
	plan := domain.RepairPlan{}
	if damage <= 0 || gearEfficiency <= 0 || kitEfficiency <= 0 || repairValue == nil {
		return plan
	}

	damageLeft := damage
	for _, entry := range entries {
		if damageLeft <= 0 {
			break
		}
		if entry.Amount <= 0 {
			continue
		}

		value := repairValue(entry.Material)
		if value <= 0 {
			continue
		}

		restored := RestoredBy(value, entry.Amount, gearEfficiency, kitEfficiency)
		if restored > damageLeft {
			restored = damageLeft
		}
		if restored <= 0 {
			continue
		}

		consumed := float64(restored) / gearEfficiency / kitEfficiency / float64(value)
		if consumed > entry.Amount {
			consumed = entry.Amount
		}

		damageLeft -= restored
		plan.Consumptions = append(plan.Consumptions, domain.MaterialConsumption{
			Material: entry.Material,
			Amount:   consumed,
			Restored: restored,
		})
	}

	plan.DurabilityRestored = damage - damageLeft
	return plan
}

// RestoredBy is the durability an amount of material restores at the given
// efficiencies, rounded half away from zero and clamped to the int range.
func RestoredBy(repairValue int, amount, gearEfficiency, kitEfficiency float64) int {
	v := math.Round(float64(repairValue) * amount * gearEfficiency * kitEfficiency)
	switch {
	case math.IsNaN(v) || v <= 0:
		return 0
	case v >= math.MaxInt32:
		return math.MaxInt32
	default:
		return int(v)
	}
}

// PlanDirectRepair plans a repair from loose material rather than a kit. The
// configured factor for the repair context stands in for kit efficiency.
func PlanDirectRepair(damage int, gearEfficiency float64, m domain.MaterialInstance, amount, factor float64, repairValue RepairValueFunc) domain.RepairPlan {
	return PlanRepair(damage, gearEfficiency, []LedgerEntry{{Material: m, Amount: amount}}, factor, repairValue)
}

// ApplyConsumption removes a plan's materials from the ledger. Applying the
// same plan twice removes the materials twice.
func ApplyConsumption(ledger *Ledger, plan domain.RepairPlan) {
	for _, c := range plan.Consumptions {
		ledger.Remove(c.Material, c.Amount)
	}
}
