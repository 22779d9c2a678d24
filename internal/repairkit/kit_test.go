package repairkit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/GearRepair_Go/internal/domain"
)

func TestKit_FillsExactlyToCapacity(t *testing.T) {
	kit := NewKit(testTier(8, 0.3), nil)

	for i := 0; i < 8; i++ {
		require.True(t, kit.AddMaterial(iron, domain.MaterialFormItem), "unit %d should fit", i+1)
	}
	assert.InDelta(t, 8.0, kit.StoredAmount(), 1e-9)

	assert.False(t, kit.AddMaterial(iron, domain.MaterialFormItem))
	assert.False(t, kit.AddMaterial(iron, domain.MaterialFormFragment))
	assert.InDelta(t, 8.0, kit.StoredAmount(), 1e-9)
}

func TestKit_FragmentsFillExactly(t *testing.T) {
	kit := NewKit(testTier(1, 0.3), nil)

	for i := 0; i < 8; i++ {
		require.True(t, kit.AddMaterial(flint, domain.MaterialFormFragment))
	}
	assert.InDelta(t, 1.0, kit.Ledger().Amount(flint), 1e-9)
	assert.False(t, kit.AddMaterial(flint, domain.MaterialFormFragment))
}

func TestKit_RejectsFragmentWithSmallHeadroom(t *testing.T) {
	kit := NewKit(testTier(8, 0.3), nil)
	require.True(t, kit.AddAmount(iron, 7.95))
	before := kit.Ledger().Encode()

	assert.False(t, kit.AddMaterial(flint, domain.MaterialFormFragment))
	assert.Equal(t, before, kit.Ledger().Encode(), "a rejected add leaves the ledger unchanged")

	tiny := NewKit(testTier(0.05, 0.3), nil)
	assert.False(t, tiny.AddMaterial(flint, domain.MaterialFormFragment))
	assert.True(t, tiny.Ledger().IsEmpty())
}

func TestKit_CanAccept(t *testing.T) {
	kit := NewKit(testTier(2, 0.3), nil)
	require.True(t, kit.AddAmount(iron, 1.875))

	assert.True(t, kit.CanAccept(0.125))
	assert.False(t, kit.CanAccept(0.25))
	assert.False(t, kit.CanAccept(0))
	assert.False(t, kit.CanAccept(-1))
}

func TestKit_AddMaterialUnknownForm(t *testing.T) {
	kit := NewKit(testTier(8, 0.3), nil)
	assert.False(t, kit.AddMaterial(iron, domain.MaterialForm("ingot")))
	assert.True(t, kit.Ledger().IsEmpty())
}

func TestKit_Efficiency(t *testing.T) {
	kit := NewKit(testTier(8, 0.3), nil)
	assert.InDelta(t, 0.30, kit.Efficiency(domain.RepairContextQuick), 1e-9)
	assert.InDelta(t, 0.45, kit.Efficiency(domain.RepairContextAnvil), 1e-9)
}

func TestKit_DurabilityForDisplay(t *testing.T) {
	kit := NewKit(testTier(8, 0.3), nil)
	assert.Equal(t, 1.0, kit.DurabilityForDisplay())

	require.True(t, kit.AddAmount(iron, 2))
	assert.InDelta(t, 0.75, kit.DurabilityForDisplay(), 1e-9)

	require.True(t, kit.AddAmount(iron, 6))
	assert.Equal(t, 0.0, kit.DurabilityForDisplay())

	broken := NewKit(testTier(0, 0.3), nil)
	assert.Equal(t, 0.0, broken.DurabilityForDisplay())
}

func TestKit_PlanAndConsume(t *testing.T) {
	catalog := newStubCatalog()
	kit := NewKit(testTier(32, 0.35), ledgerOf(map[domain.MaterialInstance]float64{flint: 4, iron: 6}))
	gear := &domain.Gear{ID: "g1", GearType: "pickaxe", Damage: 40, MaxDamage: 250, RepairEfficiency: 1}

	// ANVIL: 0.35 + 0.15 = 0.5
	plan := kit.PlanRepair(gear, domain.RepairContextAnvil, catalog)

	require.Len(t, plan.Consumptions, 2)
	assert.Equal(t, flint, plan.Consumptions[0].Material)
	assert.Equal(t, 8, plan.Consumptions[0].Restored)
	assert.Equal(t, iron, plan.Consumptions[1].Material)
	assert.Equal(t, 30, plan.Consumptions[1].Restored)
	assert.Equal(t, 38, plan.DurabilityRestored)
	assert.InDelta(t, 10.0, kit.StoredAmount(), 1e-9, "planning does not consume")

	kit.Consume(plan)

	assert.Equal(t, 0.0, kit.Ledger().Amount(flint))
	assert.Equal(t, 0.0, kit.Ledger().Amount(iron))
	assert.True(t, kit.Ledger().IsEmpty())
}

func TestKit_PlanPartialConsumption(t *testing.T) {
	catalog := newStubCatalog()
	kit := NewKit(testTier(32, 0.5), ledgerOf(map[domain.MaterialInstance]float64{iron: 6}))
	gear := &domain.Gear{ID: "g1", GearType: "sword", Damage: 12, MaxDamage: 250, RepairEfficiency: 0.8}

	plan := kit.PlanRepair(gear, domain.RepairContextQuick, catalog)
	kit.Consume(plan)

	assert.Equal(t, 12, plan.DurabilityRestored)
	assert.InDelta(t, 3.0, kit.Ledger().Amount(iron), 1e-9)
}
