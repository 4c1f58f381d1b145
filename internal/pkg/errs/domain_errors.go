package errs

import "errors"

// Domain-specific sentinel errors for CQRS usecase layers
var (
	// Receipt errors
	ErrReceiptNotFound  = errors.New("receipt not found")
	ErrDuplicateReceipt = errors.New("duplicate receipt")

	// Auth errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAdminNotApproved   = errors.New("admin not approved")
	ErrAdminNotFound      = errors.New("admin not found")
	ErrForbidden          = errors.New("forbidden")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
