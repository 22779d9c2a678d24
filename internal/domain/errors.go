package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Kit errors
	ErrMsgKitNotFound    = "repair kit not found"
	ErrMsgKitFull        = "repair kit is full"
	ErrMsgUnknownKitTier = "unknown repair kit tier"
	ErrMsgRepairDisabled = "repairs are disabled for this repair type"

	// Gear errors
	ErrMsgGearNotFound = "gear not found"

	// Material errors
	ErrMsgUnknownMaterial = "unknown material"
	ErrMsgInvalidForm     = "invalid material form"

	// Input errors
	ErrMsgInvalidInput = "invalid input"

	// Transaction errors
	ErrMsgTxClosed = "tx is closed"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrKitNotFound    = errors.New(ErrMsgKitNotFound)
	ErrKitFull        = errors.New(ErrMsgKitFull)
	ErrUnknownKitTier = errors.New(ErrMsgUnknownKitTier)
	ErrRepairDisabled = errors.New(ErrMsgRepairDisabled)

	ErrGearNotFound = errors.New(ErrMsgGearNotFound)

	ErrUnknownMaterial = errors.New(ErrMsgUnknownMaterial)
	ErrInvalidForm     = errors.New(ErrMsgInvalidForm)

	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
