package config

import "time"

// Configuration file paths
const (
	ConfigPathMaterials = "configs/materials/materials.json"
	MigrationsDir       = "migrations"
)

// Defaults
const (
	DefaultPort              = 8080
	DefaultLogLevel          = "info"
	DefaultLogFormat         = "text"
	DefaultEnvironment       = "dev"
	DefaultServiceName       = "gear-repair"
	DefaultVersion           = "dev"
	DefaultDBName            = "gearrepair"
	DefaultDBMaxConns        = 20
	DefaultRepairFactorQuick = 0.35
	DefaultRepairFactorAnvil = 0.5
	DefaultShutdownTimeout   = 10 * time.Second
)

// DefaultKitTiers is the REPAIR_KIT_TIERS value used when none is set
const DefaultKitTiers = "very_crude:8:0.30,crude:16:0.35,sturdy:32:0.40,crimson:48:0.45,azure:64:0.50"

// Error messages
const (
	ErrMsgAPIKeyRequired     = "API_KEY environment variable must be set for security"
	ErrMsgInvalidPort        = "invalid PORT value: %w"
	ErrMsgInvalidFloatFmt    = "invalid %s value %q: %w"
	ErrMsgInvalidKitTierFmt  = "invalid kit tier %q: want name:capacity:efficiency"
	ErrMsgDuplicateKitTier   = "duplicate kit tier %q"
	ErrMsgNoKitTiers         = "at least one kit tier must be configured"
	ErrMsgInvalidKitTierSpec = "invalid kit tier %q: %w"
)
