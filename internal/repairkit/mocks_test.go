package repairkit

import (
	"context"
	"errors"
	"sync"

	"github.com/osse101/GearRepair_Go/internal/domain"
	"github.com/osse101/GearRepair_Go/internal/material"
	"github.com/osse101/GearRepair_Go/internal/repository"
)

// MockRepository is an in-memory repair kit store with row locking simulation
type MockRepository struct {
	sync.RWMutex
	kits map[string]*domain.RepairKit
	gear map[string]*domain.Gear

	// Row locks held by open transactions
	rowLocks   map[string]*sync.Mutex
	rowLocksMu sync.Mutex

	// Error injection for testing
	beginTxError    error
	commitError     error
	updateKitError  error
	updateGearError error

	commits int
}

func NewMockRepository() *MockRepository {
	return &MockRepository{
		kits:     make(map[string]*domain.RepairKit),
		gear:     make(map[string]*domain.Gear),
		rowLocks: make(map[string]*sync.Mutex),
	}
}

func (m *MockRepository) rowLock(key string) *sync.Mutex {
	m.rowLocksMu.Lock()
	defer m.rowLocksMu.Unlock()
	if _, ok := m.rowLocks[key]; !ok {
		m.rowLocks[key] = &sync.Mutex{}
	}
	return m.rowLocks[key]
}

func (m *MockRepository) putKit(kit *domain.RepairKit) {
	m.Lock()
	defer m.Unlock()
	m.kits[kit.ID] = copyKit(kit)
}

func (m *MockRepository) putGear(gear *domain.Gear) {
	m.Lock()
	defer m.Unlock()
	g := *gear
	m.gear[gear.ID] = &g
}

func (m *MockRepository) storage(kitID string) map[string]float64 {
	m.RLock()
	defer m.RUnlock()
	if kit, ok := m.kits[kitID]; ok {
		return copyKit(kit).Storage
	}
	return nil
}

func (m *MockRepository) damage(gearID string) int {
	m.RLock()
	defer m.RUnlock()
	return m.gear[gearID].Damage
}

func (m *MockRepository) CreateKit(ctx context.Context, kit *domain.RepairKit) error {
	m.putKit(kit)
	return nil
}

func (m *MockRepository) GetKit(ctx context.Context, kitID string) (*domain.RepairKit, error) {
	m.RLock()
	defer m.RUnlock()
	kit, ok := m.kits[kitID]
	if !ok {
		return nil, nil
	}
	return copyKit(kit), nil
}

func (m *MockRepository) CreateGear(ctx context.Context, gear *domain.Gear) error {
	m.putGear(gear)
	return nil
}

func (m *MockRepository) GetGear(ctx context.Context, gearID string) (*domain.Gear, error) {
	m.RLock()
	defer m.RUnlock()
	gear, ok := m.gear[gearID]
	if !ok {
		return nil, nil
	}
	g := *gear
	return &g, nil
}

func (m *MockRepository) BeginTx(ctx context.Context) (repository.RepairKitTx, error) {
	m.RLock()
	defer m.RUnlock()
	if m.beginTxError != nil {
		return nil, m.beginTxError
	}
	return &MockTx{
		repo:    m,
		storage: make(map[string]map[string]float64),
		damage:  make(map[string]int),
	}, nil
}

func copyKit(kit *domain.RepairKit) *domain.RepairKit {
	c := *kit
	c.Storage = make(map[string]float64, len(kit.Storage))
	for k, v := range kit.Storage {
		c.Storage[k] = v
	}
	return &c
}

// MockTx buffers writes until Commit
type MockTx struct {
	repo    *MockRepository
	held    []*sync.Mutex
	storage map[string]map[string]float64
	damage  map[string]int
	closed  bool
}

func (t *MockTx) lockRow(key string) {
	lock := t.repo.rowLock(key)
	lock.Lock()
	t.held = append(t.held, lock)
}

func (t *MockTx) release() {
	for i := len(t.held) - 1; i >= 0; i-- {
		t.held[i].Unlock()
	}
	t.held = nil
	t.closed = true
}

func (t *MockTx) GetKitForUpdate(ctx context.Context, kitID string) (*domain.RepairKit, error) {
	t.lockRow("kit:" + kitID)
	return t.repo.GetKit(ctx, kitID)
}

func (t *MockTx) UpdateKitStorage(ctx context.Context, kitID string, storage map[string]float64) error {
	if t.repo.updateKitError != nil {
		return t.repo.updateKitError
	}
	t.storage[kitID] = storage
	return nil
}

func (t *MockTx) GetGearForUpdate(ctx context.Context, gearID string) (*domain.Gear, error) {
	t.lockRow("gear:" + gearID)
	return t.repo.GetGear(ctx, gearID)
}

func (t *MockTx) UpdateGearDamage(ctx context.Context, gearID string, damage int) error {
	if t.repo.updateGearError != nil {
		return t.repo.updateGearError
	}
	t.damage[gearID] = damage
	return nil
}

func (t *MockTx) Commit(ctx context.Context) error {
	if t.closed {
		return errors.New(domain.ErrMsgTxClosed)
	}
	if t.repo.commitError != nil {
		return t.repo.commitError
	}

	t.repo.Lock()
	for kitID, storage := range t.storage {
		if kit, ok := t.repo.kits[kitID]; ok {
			kit.Storage = storage
		}
	}
	for gearID, damage := range t.damage {
		if gear, ok := t.repo.gear[gearID]; ok {
			gear.Damage = damage
		}
	}
	t.repo.commits++
	t.repo.Unlock()

	t.release()
	return nil
}

func (t *MockTx) Rollback(ctx context.Context) error {
	if t.closed {
		return errors.New(domain.ErrMsgTxClosed)
	}
	t.release()
	return nil
}

func testMaterialCatalog() *material.Catalog {
	return material.NewCatalog(&material.Config{
		Version: "1.0",
		Materials: []material.Def{
			{ID: "flint", Tier: 0, RepairValue: 4},
			{ID: "string", Tier: 0, RepairValue: 0},
			{ID: "iron", DisplayName: "Iron", Tier: 2, RepairValue: 10, RepairOverrides: map[string]int{"armor": 8}},
			{ID: "gold", Tier: 2, RepairValue: 6},
			{ID: "diamond", Tier: 4, RepairValue: 40},
		},
	})
}

func testSettings() Settings {
	return Settings{
		KitTiers: map[string]domain.KitTier{
			"very_crude": {Name: "very_crude", Capacity: 8, Efficiency: 0.30},
			"crude":      {Name: "crude", Capacity: 16, Efficiency: 0.35},
		},
		RepairFactorQuick: 0.35,
		RepairFactorAnvil: 0.5,
	}
}
