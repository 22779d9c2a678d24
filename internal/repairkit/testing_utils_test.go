package repairkit

import (
	"math"

	"github.com/osse101/GearRepair_Go/internal/domain"
)

var (
	flint   = domain.NewMaterialInstance("flint")
	iron    = domain.NewMaterialInstance("iron")
	ironA   = iron.WithGrade(domain.GradeA)
	gold    = domain.NewMaterialInstance("gold")
	twine   = domain.NewMaterialInstance("string")
	diamond = domain.NewMaterialInstance("diamond")
)

// stubCatalog is a fixed material table for allocator and kit tests
type stubCatalog struct {
	tiers  map[string]int
	names  map[string]string
	values map[domain.MaterialInstance]int
}

func newStubCatalog() *stubCatalog {
	return &stubCatalog{
		tiers: map[string]int{
			"flint":   0,
			"string":  0,
			"iron":    2,
			"gold":    2,
			"diamond": 4,
		},
		names: map[string]string{
			"flint":   "Flint",
			"string":  "String",
			"iron":    "Iron",
			"gold":    "Gold",
			"diamond": "Diamond",
		},
		values: map[domain.MaterialInstance]int{
			flint:   4,
			twine:   0,
			iron:    10,
			ironA:   13,
			gold:    6,
			diamond: 40,
		},
	}
}

func (c *stubCatalog) Tier(m domain.MaterialInstance) int {
	if tier, ok := c.tiers[m.MaterialID]; ok {
		return tier
	}
	return math.MaxInt
}

func (c *stubCatalog) DisplayName(m domain.MaterialInstance) string {
	if name, ok := c.names[m.MaterialID]; ok {
		return name
	}
	return m.MaterialID
}

func (c *stubCatalog) Known(m domain.MaterialInstance) bool {
	_, ok := c.tiers[m.MaterialID]
	return ok
}

func (c *stubCatalog) RepairValue(m domain.MaterialInstance, _ *domain.Gear) int {
	return c.values[m]
}

func (c *stubCatalog) repairValueFn() RepairValueFunc {
	return func(m domain.MaterialInstance) int { return c.values[m] }
}

func ledgerOf(amounts map[domain.MaterialInstance]float64) *Ledger {
	l := NewLedger()
	for m, amount := range amounts {
		l.Add(m, amount)
	}
	return l
}

func testTier(capacity, efficiency float64) domain.KitTier {
	return domain.KitTier{Name: "test", Capacity: capacity, Efficiency: efficiency}
}
