package repairkit

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/GearRepair_Go/internal/concurrency"
	"github.com/osse101/GearRepair_Go/internal/domain"
	"github.com/osse101/GearRepair_Go/internal/logger"
	"github.com/osse101/GearRepair_Go/internal/metrics"
	"github.com/osse101/GearRepair_Go/internal/repository"
)

// Catalog is the material catalog used by the service
type Catalog interface {
	MaterialCatalog
	Resolve(key string) (domain.MaterialInstance, error)
	DisplayNameWithGrade(m domain.MaterialInstance) string
}

// Settings holds the tunable repair configuration
type Settings struct {
	KitTiers          map[string]domain.KitTier
	RepairFactorQuick float64
	RepairFactorAnvil float64
}

// RepairFactor returns the configured effectiveness of a repair context.
// Zero disables the context.
func (s Settings) RepairFactor(repairType domain.RepairContextType) float64 {
	if repairType == domain.RepairContextAnvil {
		return s.RepairFactorAnvil
	}
	return s.RepairFactorQuick
}

// StoredMaterialView is one ledger entry as returned to callers
type StoredMaterialView struct {
	Key    string  `json:"key"`
	Name   string  `json:"name"`
	Tier   int     `json:"tier"`
	Grade  string  `json:"grade"`
	Amount float64 `json:"amount"`
}

// KitView is the caller-facing state of a repair kit
type KitView struct {
	ID                string               `json:"kit_id"`
	Tier              string               `json:"tier"`
	Capacity          float64              `json:"capacity"`
	Stored            float64              `json:"stored"`
	EfficiencyPercent int                  `json:"efficiency_percent"`
	EmptyFraction     float64              `json:"empty_fraction"`
	Materials         []StoredMaterialView `json:"materials"`
}

// AddMaterialResult reports how many units were admitted
type AddMaterialResult struct {
	Kit      *KitView `json:"kit"`
	Added    int      `json:"added"`
	Rejected int      `json:"rejected"`
}

// RepairResult is the outcome of a committed repair
type RepairResult struct {
	Plan domain.RepairPlan `json:"plan"`
	Gear *domain.Gear      `json:"gear"`
	Kit  *KitView          `json:"kit,omitempty"`
}

// DirectRepairResult is the outcome of a repair with loose material
type DirectRepairResult struct {
	Plan          domain.RepairPlan `json:"plan"`
	Gear          *domain.Gear      `json:"gear"`
	UnitsConsumed int               `json:"units_consumed"`
}

// Service defines the interface for repair kit operations
type Service interface {
	CreateKit(ctx context.Context, tier string) (*KitView, error)
	GetKit(ctx context.Context, kitID string) (*KitView, error)
	AddMaterial(ctx context.Context, kitID, materialKey string, form domain.MaterialForm, count int) (*AddMaterialResult, error)
	RegisterGear(ctx context.Context, gear *domain.Gear) (*domain.Gear, error)
	GetGear(ctx context.Context, gearID string) (*domain.Gear, error)
	PreviewRepair(ctx context.Context, kitID, gearID string, repairType domain.RepairContextType) (*domain.RepairPlan, error)
	Repair(ctx context.Context, kitID, gearID string, repairType domain.RepairContextType) (*RepairResult, error)
	DirectRepair(ctx context.Context, gearID, materialKey string, form domain.MaterialForm, count int, repairType domain.RepairContextType, commit bool) (*DirectRepairResult, error)
}

type service struct {
	repo        repository.RepairKit
	catalog     Catalog
	lockManager *concurrency.LockManager
	settings    Settings
}

// NewService creates a new repair kit service
func NewService(repo repository.RepairKit, catalog Catalog, lockManager *concurrency.LockManager, settings Settings) Service {
	return &service{
		repo:        repo,
		catalog:     catalog,
		lockManager: lockManager,
		settings:    settings,
	}
}

// CreateKit creates an empty repair kit of the given tier
func (s *service) CreateKit(ctx context.Context, tier string) (*KitView, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgCreateKitCalled, "tier", tier)

	kitTier, err := s.kitTier(tier)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	record := &domain.RepairKit{
		ID:        uuid.NewString(),
		Tier:      kitTier.Name,
		Storage:   map[string]float64{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.CreateKit(ctx, record); err != nil {
		return nil, fmt.Errorf(ErrMsgCreateKitFailed, err)
	}

	log.Info(LogMsgKitCreated, "kit_id", record.ID, "tier", record.Tier)
	return s.view(record.ID, NewKit(kitTier, nil)), nil
}

// GetKit returns the current state of a repair kit
func (s *service) GetKit(ctx context.Context, kitID string) (*KitView, error) {
	if err := validateID(kitID, ErrMsgEmptyKitID); err != nil {
		return nil, err
	}

	record, err := s.repo.GetKit(ctx, kitID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetKitFailed, err)
	}
	if record == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrKitNotFound, kitID)
	}

	kit, err := s.buildKit(ctx, record)
	if err != nil {
		return nil, err
	}
	return s.view(record.ID, kit), nil
}

// AddMaterial stores up to count units of a material in a kit. Units are
// admitted one at a time until the kit rejects one.
func (s *service) AddMaterial(ctx context.Context, kitID, materialKey string, form domain.MaterialForm, count int) (*AddMaterialResult, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgAddMaterialCalled, "kit_id", kitID, "material", materialKey, "form", form, "count", count)

	if err := validateID(kitID, ErrMsgEmptyKitID); err != nil {
		return nil, err
	}
	if err := validateCount(count); err != nil {
		return nil, err
	}
	if _, ok := form.Value(); !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidForm, form)
	}
	material, err := s.catalog.Resolve(materialKey)
	if err != nil {
		return nil, err
	}

	lock := s.lockManager.GetLock(LockPrefixKit + kitID)
	lock.Lock()
	defer lock.Unlock()

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	record, err := tx.GetKitForUpdate(ctx, kitID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetKitFailed, err)
	}
	if record == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrKitNotFound, kitID)
	}

	kit, err := s.buildKit(ctx, record)
	if err != nil {
		return nil, err
	}

	added := 0
	for added < count && kit.AddMaterial(material, form) {
		added++
	}
	if added < count {
		metrics.KitFullRejections.Inc()
	}
	if added == 0 {
		log.Warn(LogMsgKitFull, "kit_id", kitID, "stored", kit.StoredAmount(), "capacity", kit.Capacity())
		return nil, fmt.Errorf("%w: %s", domain.ErrKitFull, kitID)
	}

	if err := tx.UpdateKitStorage(ctx, kitID, kit.Ledger().Encode()); err != nil {
		return nil, fmt.Errorf(ErrMsgUpdateKitStorageFailed, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}

	value, _ := form.Value()
	metrics.MaterialsAdded.WithLabelValues(string(formOrDefault(form))).Add(value * float64(added))

	log.Info(LogMsgMaterialAdded, "kit_id", kitID, "material", material.Shorthand(), "added", added, "rejected", count-added)
	return &AddMaterialResult{
		Kit:      s.view(kitID, kit),
		Added:    added,
		Rejected: count - added,
	}, nil
}

// RegisterGear stores a new damageable gear item
func (s *service) RegisterGear(ctx context.Context, gear *domain.Gear) (*domain.Gear, error) {
	log := logger.FromContext(ctx)
	if gear == nil {
		return nil, fmt.Errorf("%w: gear is nil", domain.ErrInvalidInput)
	}
	log.Info(LogMsgRegisterGearCalled, "name", gear.Name, "gear_type", gear.GearType)

	if strings.TrimSpace(gear.GearType) == "" {
		return nil, fmt.Errorf("%s: %w", ErrMsgEmptyGearType, domain.ErrInvalidInput)
	}
	if gear.MaxDamage <= 0 {
		return nil, fmt.Errorf("%s: %w", ErrMsgInvalidMaxDamage, domain.ErrInvalidInput)
	}
	if gear.Damage < 0 || gear.Damage > gear.MaxDamage {
		return nil, fmt.Errorf(ErrMsgInvalidDamageFmt+": %w", gear.MaxDamage, gear.Damage, domain.ErrInvalidInput)
	}

	now := time.Now().UTC()
	created := *gear
	created.ID = uuid.NewString()
	created.CreatedAt = now
	created.UpdatedAt = now

	if err := s.repo.CreateGear(ctx, &created); err != nil {
		return nil, fmt.Errorf(ErrMsgCreateGearFailed, err)
	}

	log.Info(LogMsgGearRegistered, "gear_id", created.ID)
	return &created, nil
}

// GetGear returns a gear item by id
func (s *service) GetGear(ctx context.Context, gearID string) (*domain.Gear, error) {
	if err := validateID(gearID, ErrMsgEmptyGearID); err != nil {
		return nil, err
	}
	gear, err := s.repo.GetGear(ctx, gearID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetGearFailed, err)
	}
	if gear == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrGearNotFound, gearID)
	}
	return gear, nil
}

// PreviewRepair computes the plan a repair would follow without changing anything
func (s *service) PreviewRepair(ctx context.Context, kitID, gearID string, repairType domain.RepairContextType) (*domain.RepairPlan, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgPreviewRepairCalled, "kit_id", kitID, "gear_id", gearID, "repair_type", repairType)

	if err := validateID(kitID, ErrMsgEmptyKitID); err != nil {
		return nil, err
	}
	if err := s.checkRepairType(repairType); err != nil {
		return nil, err
	}

	record, err := s.repo.GetKit(ctx, kitID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetKitFailed, err)
	}
	if record == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrKitNotFound, kitID)
	}
	kit, err := s.buildKit(ctx, record)
	if err != nil {
		return nil, err
	}

	gear, err := s.GetGear(ctx, gearID)
	if err != nil {
		return nil, err
	}

	plan := kit.PlanRepair(gear, repairType, s.catalog)
	return &plan, nil
}

// Repair plans and commits a repair: the kit loses the planned materials
// and the gear loses the restored damage in one transaction.
func (s *service) Repair(ctx context.Context, kitID, gearID string, repairType domain.RepairContextType) (*RepairResult, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgRepairCalled, "kit_id", kitID, "gear_id", gearID, "repair_type", repairType)

	if err := validateID(kitID, ErrMsgEmptyKitID); err != nil {
		return nil, err
	}
	if err := validateID(gearID, ErrMsgEmptyGearID); err != nil {
		return nil, err
	}
	if err := s.checkRepairType(repairType); err != nil {
		return nil, err
	}

	// Kit before gear, always, so concurrent repairs cannot deadlock
	unlock := s.lockManager.LockInOrder(LockPrefixKit+kitID, LockPrefixGear+gearID)
	defer unlock()

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	record, err := tx.GetKitForUpdate(ctx, kitID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetKitFailed, err)
	}
	if record == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrKitNotFound, kitID)
	}
	gear, err := tx.GetGearForUpdate(ctx, gearID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetGearFailed, err)
	}
	if gear == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrGearNotFound, gearID)
	}

	kit, err := s.buildKit(ctx, record)
	if err != nil {
		return nil, err
	}

	plan := kit.PlanRepair(gear, repairType, s.catalog)
	if plan.IsEmpty() {
		log.Info(LogMsgNothingRepaired, "kit_id", kitID, "gear_id", gearID, "damage", gear.Damage)
		return &RepairResult{Plan: plan, Gear: gear, Kit: s.view(kitID, kit)}, nil
	}

	kit.Consume(plan)
	gear.Repair(plan.DurabilityRestored)

	if err := tx.UpdateKitStorage(ctx, kitID, kit.Ledger().Encode()); err != nil {
		return nil, fmt.Errorf(ErrMsgUpdateKitStorageFailed, err)
	}
	if err := tx.UpdateGearDamage(ctx, gearID, gear.Damage); err != nil {
		return nil, fmt.Errorf(ErrMsgUpdateGearDamageFailed, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}

	recordRepairMetrics(metrics.SourceKit, repairType, plan)
	log.Info(LogMsgGearRepaired,
		"kit_id", kitID,
		"gear_id", gearID,
		"restored", plan.DurabilityRestored,
		"materials", len(plan.Consumptions),
		"damage_left", gear.Damage)

	return &RepairResult{Plan: plan, Gear: gear, Kit: s.view(kitID, kit)}, nil
}

// DirectRepair repairs gear with count units of loose material, using the
// context's configured factor as efficiency. With commit false it only
// previews the plan.
func (s *service) DirectRepair(ctx context.Context, gearID, materialKey string, form domain.MaterialForm, count int, repairType domain.RepairContextType, commit bool) (*DirectRepairResult, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgDirectRepairCalled, "gear_id", gearID, "material", materialKey, "count", count, "repair_type", repairType, "commit", commit)

	if err := validateID(gearID, ErrMsgEmptyGearID); err != nil {
		return nil, err
	}
	if err := validateCount(count); err != nil {
		return nil, err
	}
	if err := s.checkRepairType(repairType); err != nil {
		return nil, err
	}
	unitValue, ok := form.Value()
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidForm, form)
	}
	material, err := s.catalog.Resolve(materialKey)
	if err != nil {
		return nil, err
	}

	if !commit {
		gear, err := s.GetGear(ctx, gearID)
		if err != nil {
			return nil, err
		}
		plan := s.planDirect(gear, material, unitValue*float64(count), repairType)
		return &DirectRepairResult{Plan: plan, Gear: gear, UnitsConsumed: unitsFor(plan, unitValue)}, nil
	}

	gearLock := s.lockManager.GetLock(LockPrefixGear + gearID)
	gearLock.Lock()
	defer gearLock.Unlock()

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	gear, err := tx.GetGearForUpdate(ctx, gearID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetGearFailed, err)
	}
	if gear == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrGearNotFound, gearID)
	}

	plan := s.planDirect(gear, material, unitValue*float64(count), repairType)
	result := &DirectRepairResult{Plan: plan, Gear: gear, UnitsConsumed: unitsFor(plan, unitValue)}
	if plan.IsEmpty() {
		return result, nil
	}

	gear.Repair(plan.DurabilityRestored)
	if err := tx.UpdateGearDamage(ctx, gearID, gear.Damage); err != nil {
		return nil, fmt.Errorf(ErrMsgUpdateGearDamageFailed, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}

	recordRepairMetrics(metrics.SourceDirect, repairType, plan)
	log.Info(LogMsgGearRepaired, "gear_id", gearID, "restored", plan.DurabilityRestored, "units", result.UnitsConsumed)
	return result, nil
}

func (s *service) planDirect(gear *domain.Gear, material domain.MaterialInstance, amount float64, repairType domain.RepairContextType) domain.RepairPlan {
	return PlanDirectRepair(
		gear.Damage,
		gear.RepairEfficiency,
		material,
		amount,
		s.settings.RepairFactor(repairType),
		func(m domain.MaterialInstance) int { return s.catalog.RepairValue(m, gear) },
	)
}

func (s *service) kitTier(name string) (domain.KitTier, error) {
	tier, ok := s.settings.KitTiers[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return domain.KitTier{}, fmt.Errorf("%w: %q", domain.ErrUnknownKitTier, name)
	}
	return tier, nil
}

func (s *service) checkRepairType(repairType domain.RepairContextType) error {
	if repairType != domain.RepairContextQuick && repairType != domain.RepairContextAnvil {
		return fmt.Errorf("%w: unknown repair type %q", domain.ErrInvalidInput, repairType)
	}
	if s.settings.RepairFactor(repairType) <= 0 {
		return fmt.Errorf("%w: %s", domain.ErrRepairDisabled, repairType)
	}
	return nil
}

// buildKit decodes a persisted kit. Storage keys that do not decode or name
// materials missing from the catalog stay in storage but are not used.
func (s *service) buildKit(ctx context.Context, record *domain.RepairKit) (*Kit, error) {
	tier, err := s.kitTier(record.Tier)
	if err != nil {
		return nil, err
	}

	ledger, badKeys := DecodeLedger(record.Storage)
	dropped := ledger.Retain(s.catalog.Known)
	if len(badKeys) > 0 || len(dropped) > 0 {
		logger.FromContext(ctx).Warn(LogMsgUnresolvedStorageKeys,
			"kit_id", record.ID,
			"undecodable", badKeys,
			"unknown_materials", len(dropped))
	}
	return NewKit(tier, ledger), nil
}

func (s *service) view(kitID string, kit *Kit) *KitView {
	entries := kit.Ledger().Entries(s.catalog)
	materials := make([]StoredMaterialView, 0, len(entries))
	for _, e := range entries {
		materials = append(materials, StoredMaterialView{
			Key:    e.Material.Shorthand(),
			Name:   s.catalog.DisplayNameWithGrade(e.Material),
			Tier:   e.Tier,
			Grade:  e.Material.Grade.String(),
			Amount: e.Amount,
		})
	}

	return &KitView{
		ID:                kitID,
		Tier:              kit.Tier().Name,
		Capacity:          kit.Capacity(),
		Stored:            kit.StoredAmount(),
		EfficiencyPercent: int(math.Round(kit.Efficiency(domain.RepairContextQuick) * 100)),
		EmptyFraction:     kit.DurabilityForDisplay(),
		Materials:         materials,
	}
}

func recordRepairMetrics(source string, repairType domain.RepairContextType, plan domain.RepairPlan) {
	metrics.RepairsTotal.WithLabelValues(source, string(repairType)).Inc()
	metrics.DurabilityRestored.WithLabelValues(source, string(repairType)).Add(float64(plan.DurabilityRestored))
	metrics.RepairPlanMaterials.Observe(float64(len(plan.Consumptions)))
	for _, c := range plan.Consumptions {
		metrics.MaterialsConsumed.WithLabelValues(c.Material.MaterialID).Add(c.Amount)
	}
}

// unitsFor converts a plan's consumed amount into whole units of loose material
func unitsFor(plan domain.RepairPlan, unitValue float64) int {
	total := 0.0
	for _, c := range plan.Consumptions {
		total += c.Amount
	}
	if total <= 0 {
		return 0
	}
	units := int(math.Ceil((total - EmptyThreshold) / unitValue))
	if units < 1 {
		return 1
	}
	return units
}

func formOrDefault(form domain.MaterialForm) domain.MaterialForm {
	if form == "" {
		return domain.MaterialFormItem
	}
	return form
}

func validateID(id, msg string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%s: %w", msg, domain.ErrInvalidInput)
	}
	return nil
}

func validateCount(count int) error {
	if count < 1 || count > MaxUnitsPerAdd {
		return fmt.Errorf(ErrMsgCountOutOfRangeFmt+": %w", MaxUnitsPerAdd, count, domain.ErrInvalidInput)
	}
	return nil
}

// IsNotFound reports whether err is a missing kit or gear
func IsNotFound(err error) bool {
	return errors.Is(err, domain.ErrKitNotFound) || errors.Is(err, domain.ErrGearNotFound)
}
