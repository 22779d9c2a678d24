package material

import "time"

// SchemaName is the name the catalog schema is registered under
const SchemaName = "materials.schema.json"

// Repair value cache settings
const (
	DefaultRepairValueCacheSize = 1024
	DefaultRepairValueCacheTTL  = 10 * time.Minute
)

// Suggestions are offered for unknown ids within this edit distance
const MaxSuggestionDistance = 3

// File operation error messages
const (
	ErrMsgReadConfigFileFailed = "failed to read materials config file: %w"
	ErrMsgParseConfigFailed    = "failed to parse materials config: %w"
	ErrMsgSchemaFailedFmt      = "schema validation failed for %s: %w"
)

// Validation error messages
const (
	ErrMsgConfigNil          = "config is nil"
	ErrMsgNoMaterialsDefined = "no materials defined"
	ErrFmtEmptyID            = "%w: material at index %d has empty id"
	ErrFmtInvalidID          = "%w: material id %q contains %q"
	ErrFmtNegativeTier       = "%w: material %q has negative tier"
)

// Log messages
const (
	LogMsgCatalogLoaded   = "Material catalog loaded"
	LogMsgCatalogReloaded = "Material catalog reloaded"
)
