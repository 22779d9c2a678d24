package repairkit

// Service input limits
const (
	// MaxUnitsPerAdd caps how many units a single add request may insert
	MaxUnitsPerAdd = 64
)

// Lock key prefixes for per-entity serialization
const (
	LockPrefixKit  = "kit:"
	LockPrefixGear = "gear:"
)

// Validation error messages
const (
	ErrMsgEmptyKitID         = "kit id cannot be empty"
	ErrMsgEmptyGearID        = "gear id cannot be empty"
	ErrMsgEmptyGearType      = "gear type cannot be empty"
	ErrMsgCountOutOfRangeFmt = "count must be between 1 and %d (got %d)"
	ErrMsgInvalidDamageFmt   = "damage must be between 0 and max damage %d (got %d)"
	ErrMsgInvalidMaxDamage   = "max damage must be positive"
)

// Database operation error messages
const (
	ErrMsgGetKitFailed            = "failed to get repair kit: %w"
	ErrMsgCreateKitFailed         = "failed to create repair kit: %w"
	ErrMsgGetGearFailed           = "failed to get gear: %w"
	ErrMsgCreateGearFailed        = "failed to create gear: %w"
	ErrMsgBeginTransactionFailed  = "failed to begin transaction: %w"
	ErrMsgUpdateKitStorageFailed  = "failed to update repair kit storage: %w"
	ErrMsgUpdateGearDamageFailed  = "failed to update gear damage: %w"
	ErrMsgCommitTransactionFailed = "failed to commit transaction: %w"
)

// Service operation log messages
const (
	LogMsgCreateKitCalled       = "CreateKit called"
	LogMsgKitCreated            = "Repair kit created"
	LogMsgAddMaterialCalled     = "AddMaterial called"
	LogMsgMaterialAdded         = "Material added to repair kit"
	LogMsgKitFull               = "Repair kit is full"
	LogMsgPreviewRepairCalled   = "PreviewRepair called"
	LogMsgRepairCalled          = "Repair called"
	LogMsgGearRepaired          = "Gear repaired"
	LogMsgNothingRepaired       = "Repair restored no durability"
	LogMsgDirectRepairCalled    = "DirectRepair called"
	LogMsgRegisterGearCalled    = "RegisterGear called"
	LogMsgGearRegistered        = "Gear registered"
	LogMsgUnresolvedStorageKeys = "Repair kit storage has unresolved keys, leaving them untouched"
)
