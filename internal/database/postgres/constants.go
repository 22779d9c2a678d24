package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation = "23505"
	// PgErrorCodeCheckViolation is raised when gear damage breaks its range check
	PgErrorCodeCheckViolation = "23514"
)

// EmptyStorageJSON is the stored form of an empty repair kit
const EmptyStorageJSON = `{}`

// Error Messages - Transaction Operations
const (
	ErrMsgFailedToBeginTransaction  = "failed to begin transaction"
	ErrMsgFailedToCommitTransaction = "failed to commit transaction"
)

// Error Messages - Repair Kit Operations
const (
	ErrMsgFailedToInsertKit        = "failed to insert repair kit"
	ErrMsgFailedToGetKit           = "failed to get repair kit"
	ErrMsgFailedToGetKitForUpdate  = "failed to get repair kit for update"
	ErrMsgFailedToUpdateKitStorage = "failed to update repair kit storage"
	ErrMsgFailedToMarshalStorage   = "failed to marshal repair kit storage"
	ErrMsgFailedToUnmarshalStorage = "failed to unmarshal repair kit storage"
	ErrMsgKitAlreadyExists         = "repair kit already exists"
	ErrMsgFailedToInsertGear       = "failed to insert gear"
	ErrMsgFailedToGetGear          = "failed to get gear"
	ErrMsgFailedToGetGearForUpdate = "failed to get gear for update"
	ErrMsgFailedToUpdateGearDamage = "failed to update gear damage"
	ErrMsgGearDamageOutOfRange     = "gear damage out of range"
)
