package domain

import "errors"

// Failure taxonomy. Persistence, export and clipboard failures are degraded
// continuations: they surface as notifications, never corrupt in-memory state
// and never abort the request flow that triggered them.
var (
	ErrInvalidFormat      = errors.New("invalid mobile number format")
	ErrNotAuthorized      = errors.New("mobile number is not authorized")
	ErrStorageUnavailable = errors.New("storage unavailable")
	ErrExportFailure      = errors.New("image export failed")
	ErrClipboardFailure   = errors.New("clipboard copy failed")
	ErrNotFound           = errors.New("not found")
)
