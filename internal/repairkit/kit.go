package repairkit

import (
	"github.com/osse101/GearRepair_Go/internal/domain"
)

// MaterialCatalog is the material lookup a kit needs to order and value its
// stored materials.
type MaterialCatalog interface {
	MaterialOrder
	Known(m domain.MaterialInstance) bool
	RepairValue(m domain.MaterialInstance, gear *domain.Gear) int
}

// Kit is a repair kit of a configured tier holding a ledger of materials
type Kit struct {
	tier   domain.KitTier
	ledger *Ledger
}

// NewKit creates a kit. A nil ledger starts empty.
func NewKit(tier domain.KitTier, ledger *Ledger) *Kit {
	if ledger == nil {
		ledger = NewLedger()
	}
	return &Kit{tier: tier, ledger: ledger}
}

// Tier returns the kit's configured tier
func (k *Kit) Tier() domain.KitTier {
	return k.tier
}

// Ledger returns the kit's stored materials
func (k *Kit) Ledger() *Ledger {
	return k.ledger
}

// Capacity returns the maximum total amount the kit can hold
func (k *Kit) Capacity() float64 {
	return k.tier.Capacity
}

// StoredAmount returns the total amount held
func (k *Kit) StoredAmount() float64 {
	return k.ledger.Total()
}

// CanAccept reports whether value more material fits. Filling the kit
// exactly to capacity is allowed.
func (k *Kit) CanAccept(value float64) bool {
	if !validAmount(value) || value <= 0 {
		return false
	}
	return k.StoredAmount() <= k.tier.Capacity-value
}

// AddMaterial stores one unit of material in the given form. It returns
// false, leaving the ledger unchanged, when the form is unknown or the kit
// is too full.
func (k *Kit) AddMaterial(m domain.MaterialInstance, form domain.MaterialForm) bool {
	value, ok := form.Value()
	if !ok {
		return false
	}
	return k.AddAmount(m, value)
}

// AddAmount stores value of a material if it fits
func (k *Kit) AddAmount(m domain.MaterialInstance, value float64) bool {
	if !k.CanAccept(value) {
		return false
	}
	k.ledger.Add(m, value)
	return true
}

// Efficiency returns the kit's base efficiency plus the context bonus
func (k *Kit) Efficiency(repairType domain.RepairContextType) float64 {
	return k.tier.Efficiency + repairType.BonusEfficiency()
}

// DurabilityForDisplay returns the empty fraction of the kit: 1 when empty,
// 0 when full.
func (k *Kit) DurabilityForDisplay() float64 {
	if k.tier.Capacity <= 0 {
		return 0
	}
	fraction := 1 - k.StoredAmount()/k.tier.Capacity
	switch {
	case fraction < 0:
		return 0
	case fraction > 1:
		return 1
	default:
		return fraction
	}
}

// PlanRepair plans a repair of gear from this kit without changing it
func (k *Kit) PlanRepair(gear *domain.Gear, repairType domain.RepairContextType, catalog MaterialCatalog) domain.RepairPlan {
	return PlanRepair(
		gear.Damage,
		gear.RepairEfficiency,
		k.ledger.Entries(catalog),
		k.Efficiency(repairType),
		func(m domain.MaterialInstance) int { return catalog.RepairValue(m, gear) },
	)
}

// Consume removes a previously computed plan's materials from the kit
func (k *Kit) Consume(plan domain.RepairPlan) {
	ApplyConsumption(k.ledger, plan)
}
