package handler

// Generic HTTP error messages for client responses.
// These messages do not expose internal error details.
// Both handlers and tests should reference these constants.
const (
	// HTTP status messages
	ErrMsgMethodNotAllowed      = "Method not allowed"
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgMissingPathParam      = "Missing %s path parameter"

	// Query parameter error messages
	ErrMsgInvalidTierParam = "Invalid tier query parameter"

	// Repair kit operation error messages
	ErrMsgCreateKitFailed     = "Failed to create repair kit"
	ErrMsgGetKitFailed        = "Failed to get repair kit"
	ErrMsgAddMaterialFailed   = "Failed to add material"
	ErrMsgPreviewRepairFailed = "Failed to preview repair"
	ErrMsgRepairFailed        = "Failed to repair gear"

	// Gear operation error messages
	ErrMsgRegisterGearFailed = "Failed to register gear"
	ErrMsgGetGearFailed      = "Failed to get gear"
	ErrMsgDirectRepairFailed = "Failed to repair gear with material"

	// Health messages
	ErrMsgDatabaseUnavailable = "database connection failed"
	ErrMsgCatalogEmpty        = "no materials loaded"
)

// Log messages
const (
	LogMsgCreateKitRequest    = "Create kit request"
	LogMsgGetKitRequest       = "Get kit request"
	LogMsgAddMaterialRequest  = "Add material request"
	LogMsgPreviewRequest      = "Preview repair request"
	LogMsgRepairRequest       = "Repair request"
	LogMsgRegisterGearRequest = "Register gear request"
	LogMsgGetGearRequest      = "Get gear request"
	LogMsgDirectRepairRequest = "Direct repair request"
	LogMsgListMaterials       = "List materials request"
	LogMsgReadinessFailed     = "Readiness check failed"
)

// Health status values
const (
	HealthStatusOK          = "ok"
	HealthStatusUnavailable = "unavailable"
)
