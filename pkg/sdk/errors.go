package sysdisco

import "github.com/kailas-cloud/sysdisco/internal/domain"

// Sentinel errors re-exported from the domain layer.
// Use errors.Is() to check.
var (
	ErrNotFound        = domain.ErrNotFound
	ErrAlreadyExists   = domain.ErrAlreadyExists
	ErrValidation      = domain.ErrValidation
	ErrProjectNotFound = domain.ErrProjectNotFound
	ErrSystemNotFound  = domain.ErrSystemNotFound
)

// ValidationError names the offending field. Use errors.As() to inspect it.
type ValidationError = domain.ValidationError

// InternalError wraps a storage failure during discovery.
type InternalError = domain.InternalError
