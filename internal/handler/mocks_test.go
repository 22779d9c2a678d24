package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/GearRepair_Go/internal/domain"
	"github.com/osse101/GearRepair_Go/internal/material"
	"github.com/osse101/GearRepair_Go/internal/repairkit"
)

// MockRepairKitService mocks repairkit.Service
type MockRepairKitService struct {
	mock.Mock
}

func (m *MockRepairKitService) CreateKit(ctx context.Context, tier string) (*repairkit.KitView, error) {
	args := m.Called(ctx, tier)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repairkit.KitView), args.Error(1)
}

func (m *MockRepairKitService) GetKit(ctx context.Context, kitID string) (*repairkit.KitView, error) {
	args := m.Called(ctx, kitID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repairkit.KitView), args.Error(1)
}

func (m *MockRepairKitService) AddMaterial(ctx context.Context, kitID, materialKey string, form domain.MaterialForm, count int) (*repairkit.AddMaterialResult, error) {
	args := m.Called(ctx, kitID, materialKey, form, count)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repairkit.AddMaterialResult), args.Error(1)
}

func (m *MockRepairKitService) RegisterGear(ctx context.Context, gear *domain.Gear) (*domain.Gear, error) {
	args := m.Called(ctx, gear)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Gear), args.Error(1)
}

func (m *MockRepairKitService) GetGear(ctx context.Context, gearID string) (*domain.Gear, error) {
	args := m.Called(ctx, gearID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Gear), args.Error(1)
}

func (m *MockRepairKitService) PreviewRepair(ctx context.Context, kitID, gearID string, repairType domain.RepairContextType) (*domain.RepairPlan, error) {
	args := m.Called(ctx, kitID, gearID, repairType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RepairPlan), args.Error(1)
}

func (m *MockRepairKitService) Repair(ctx context.Context, kitID, gearID string, repairType domain.RepairContextType) (*repairkit.RepairResult, error) {
	args := m.Called(ctx, kitID, gearID, repairType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repairkit.RepairResult), args.Error(1)
}

func (m *MockRepairKitService) DirectRepair(ctx context.Context, gearID, materialKey string, form domain.MaterialForm, count int, repairType domain.RepairContextType, commit bool) (*repairkit.DirectRepairResult, error) {
	args := m.Called(ctx, gearID, materialKey, form, count, repairType, commit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repairkit.DirectRepairResult), args.Error(1)
}

// MockDBPool mocks the database.Pool interface
type MockDBPool struct {
	mock.Mock
}

func (m *MockDBPool) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDBPool) Close() {
	m.Called()
}

// stubCatalog serves a fixed material list
type stubCatalog struct {
	defs []material.Def
}

func (c stubCatalog) Materials() []material.Def {
	return c.defs
}

func (c stubCatalog) Len() int {
	return len(c.defs)
}
