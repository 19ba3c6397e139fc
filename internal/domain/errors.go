package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Registry errors
	ErrMsgMaterialNotFound = "material not found"

	// Descriptor errors
	ErrMsgInvalidDescriptor = "invalid item descriptor"

	// Update check errors
	ErrMsgUpdateCheckFailed  = "update check failed"
	ErrMsgUpdateCheckDisable = "update checker is disabled"

	// Configuration errors
	ErrMsgInvalidConfig = "invalid configuration"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrMaterialNotFound = errors.New(ErrMsgMaterialNotFound)

	ErrInvalidDescriptor = errors.New(ErrMsgInvalidDescriptor)

	ErrUpdateCheckFailed   = errors.New(ErrMsgUpdateCheckFailed)
	ErrUpdateCheckDisabled = errors.New(ErrMsgUpdateCheckDisable)

	ErrInvalidConfig = errors.New(ErrMsgInvalidConfig)
)
