package domain

import (
	"fmt"
	"strings"
)

// RepairContextType is the mode a repair is performed in
type RepairContextType string

const (
	RepairContextQuick RepairContextType = "QUICK"
	RepairContextAnvil RepairContextType = "ANVIL"
)

// Bonus efficiency added to a kit's base efficiency for each context
const (
	QuickRepairBonusEfficiency = 0.0
	AnvilRepairBonusEfficiency = 0.15
)

// BonusEfficiency returns the fixed efficiency bonus of the context
func (t RepairContextType) BonusEfficiency() float64 {
	switch t {
	case RepairContextAnvil:
		return AnvilRepairBonusEfficiency
	default:
		return QuickRepairBonusEfficiency
	}
}

// ParseRepairContextType parses a context name (case-insensitive). Empty means QUICK.
func ParseRepairContextType(s string) (RepairContextType, error) {
	switch RepairContextType(strings.ToUpper(strings.TrimSpace(s))) {
	case "", RepairContextQuick:
		return RepairContextQuick, nil
	case RepairContextAnvil:
		return RepairContextAnvil, nil
	default:
		return "", fmt.Errorf("%w: unknown repair type %q", ErrInvalidInput, s)
	}
}

// MaterialConsumption is one step of a repair plan
type MaterialConsumption struct {
	Material MaterialInstance `json:"material"`
	Amount   float64          `json:"amount"`
	Restored int              `json:"restored"`
}

// RepairPlan lists the materials to consume, in consumption order, and the
// total durability restored.
type RepairPlan struct {
	Consumptions       []MaterialConsumption `json:"consumptions"`
	DurabilityRestored int                   `json:"durability_restored"`
}

// IsEmpty reports whether the plan consumes nothing
func (p RepairPlan) IsEmpty() bool {
	return len(p.Consumptions) == 0
}

// Amounts returns the per-material amounts to remove from a ledger
func (p RepairPlan) Amounts() map[MaterialInstance]float64 {
	amounts := make(map[MaterialInstance]float64, len(p.Consumptions))
	for _, c := range p.Consumptions {
		amounts[c.Material] += c.Amount
	}
	return amounts
}
