package repository

import (
	"context"

	"github.com/osse101/GearRepair_Go/internal/domain"
)

// RepairKit defines the interface for repair kit and gear persistence
type RepairKit interface {
	CreateKit(ctx context.Context, kit *domain.RepairKit) error
	GetKit(ctx context.Context, kitID string) (*domain.RepairKit, error)
	CreateGear(ctx context.Context, gear *domain.Gear) error
	GetGear(ctx context.Context, gearID string) (*domain.Gear, error)
	// BeginTx starts a transaction for kit mutations
	BeginTx(ctx context.Context) (RepairKitTx, error)
}

// RepairKitTx defines the interface for repair kit transactions.
// The ForUpdate reads lock the returned rows until commit or rollback.
type RepairKitTx interface {
	Tx
	GetKitForUpdate(ctx context.Context, kitID string) (*domain.RepairKit, error)
	UpdateKitStorage(ctx context.Context, kitID string, storage map[string]float64) error
	GetGearForUpdate(ctx context.Context, gearID string) (*domain.Gear, error)
	UpdateGearDamage(ctx context.Context, gearID string, damage int) error
}
