package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/GearRepair_Go/internal/domain"
	"github.com/osse101/GearRepair_Go/internal/repository"
)

const (
	selectKitSQL = `
		SELECT kit_id::text, tier, storage, created_at, updated_at
		FROM repair_kits
		WHERE kit_id = $1`

	selectGearSQL = `
		SELECT gear_id::text, name, gear_type, damage, max_damage, repair_efficiency, created_at, updated_at
		FROM gear
		WHERE gear_id = $1`
)

// querier is the subset of pgx shared by the pool and a transaction
type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// RepairKitRepository implements repository.RepairKit for PostgreSQL
type RepairKitRepository struct {
	db *pgxpool.Pool
}

// NewRepairKitRepository creates a new RepairKitRepository
func NewRepairKitRepository(db *pgxpool.Pool) *RepairKitRepository {
	return &RepairKitRepository{db: db}
}

// RepairKitTx implements repository.RepairKitTx
type RepairKitTx struct {
	tx pgx.Tx
}

// BeginTx starts a new transaction
func (r *RepairKitRepository) BeginTx(ctx context.Context) (repository.RepairKitTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	return &RepairKitTx{tx: tx}, nil
}

// Commit commits the transaction
func (t *RepairKitTx) Commit(ctx context.Context) error {
	if err := t.tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCommitTransaction, err)
	}
	return nil
}

// Rollback rolls back the transaction
func (t *RepairKitTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

// CreateKit inserts a new repair kit
func (r *RepairKitRepository) CreateKit(ctx context.Context, kit *domain.RepairKit) error {
	storage, err := marshalStorage(kit.Storage)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO repair_kits (kit_id, tier, storage, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`,
		kit.ID, kit.Tier, storage, kit.CreatedAt, kit.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == PgErrorCodeUniqueViolation {
			return fmt.Errorf("%s: %s: %w", ErrMsgKitAlreadyExists, kit.ID, err)
		}
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertKit, err)
	}
	return nil
}

// GetKit returns a repair kit, or nil if it does not exist
func (r *RepairKitRepository) GetKit(ctx context.Context, kitID string) (*domain.RepairKit, error) {
	kit, err := getKit(ctx, r.db, selectKitSQL, kitID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetKit, err)
	}
	return kit, nil
}

// GetKitForUpdate returns a repair kit and locks its row until the transaction ends
func (t *RepairKitTx) GetKitForUpdate(ctx context.Context, kitID string) (*domain.RepairKit, error) {
	kit, err := getKit(ctx, t.tx, selectKitSQL+" FOR UPDATE", kitID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetKitForUpdate, err)
	}
	return kit, nil
}

// UpdateKitStorage replaces the kit's stored materials
func (t *RepairKitTx) UpdateKitStorage(ctx context.Context, kitID string, storage map[string]float64) error {
	data, err := marshalStorage(storage)
	if err != nil {
		return err
	}

	tag, err := t.tx.Exec(ctx, `
		UPDATE repair_kits SET storage = $2, updated_at = NOW()
		WHERE kit_id = $1`,
		kitID, data)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateKitStorage, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", domain.ErrKitNotFound, kitID)
	}
	return nil
}

// CreateGear inserts a new gear item
func (r *RepairKitRepository) CreateGear(ctx context.Context, gear *domain.Gear) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO gear (gear_id, name, gear_type, damage, max_damage, repair_efficiency, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		gear.ID, gear.Name, gear.GearType, gear.Damage, gear.MaxDamage, gear.RepairEfficiency, gear.CreatedAt, gear.UpdatedAt)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertGear, err)
	}
	return nil
}

// GetGear returns a gear item, or nil if it does not exist
func (r *RepairKitRepository) GetGear(ctx context.Context, gearID string) (*domain.Gear, error) {
	gear, err := getGear(ctx, r.db, selectGearSQL, gearID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetGear, err)
	}
	return gear, nil
}

// GetGearForUpdate returns a gear item and locks its row until the transaction ends
func (t *RepairKitTx) GetGearForUpdate(ctx context.Context, gearID string) (*domain.Gear, error) {
	gear, err := getGear(ctx, t.tx, selectGearSQL+" FOR UPDATE", gearID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetGearForUpdate, err)
	}
	return gear, nil
}

// UpdateGearDamage sets the gear's current damage
func (t *RepairKitTx) UpdateGearDamage(ctx context.Context, gearID string, damage int) error {
	tag, err := t.tx.Exec(ctx, `
		UPDATE gear SET damage = $2, updated_at = NOW()
		WHERE gear_id = $1`,
		gearID, damage)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == PgErrorCodeCheckViolation {
			return fmt.Errorf("%s: %w", ErrMsgGearDamageOutOfRange, domain.ErrInvalidInput)
		}
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateGearDamage, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", domain.ErrGearNotFound, gearID)
	}
	return nil
}

func getKit(ctx context.Context, q querier, sql, kitID string) (*domain.RepairKit, error) {
	// Ids that are not UUIDs cannot exist
	if _, err := uuid.Parse(kitID); err != nil {
		return nil, nil
	}

	var (
		kit     domain.RepairKit
		storage []byte
	)
	err := q.QueryRow(ctx, sql, kitID).Scan(&kit.ID, &kit.Tier, &storage, &kit.CreatedAt, &kit.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	kit.Storage = make(map[string]float64)
	if err := json.Unmarshal(storage, &kit.Storage); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToUnmarshalStorage, err)
	}
	return &kit, nil
}

func getGear(ctx context.Context, q querier, sql, gearID string) (*domain.Gear, error) {
	if _, err := uuid.Parse(gearID); err != nil {
		return nil, nil
	}

	var gear domain.Gear
	err := q.QueryRow(ctx, sql, gearID).Scan(
		&gear.ID,
		&gear.Name,
		&gear.GearType,
		&gear.Damage,
		&gear.MaxDamage,
		&gear.RepairEfficiency,
		&gear.CreatedAt,
		&gear.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &gear, nil
}

func marshalStorage(storage map[string]float64) ([]byte, error) {
	if len(storage) == 0 {
		return []byte(EmptyStorageJSON), nil
	}
	data, err := json.Marshal(storage)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToMarshalStorage, err)
	}
	return data, nil
}
