package commands

import "suitenest/internal/pkg/errs"

// Shared by every command; handlers map them to 400 and 500.
var (
	ErrDomainValidation        = errs.New("domain validation error")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)
