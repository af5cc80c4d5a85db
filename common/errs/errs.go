package errs

import "github.com/cockroachdb/errors"

// ErrorKind identifies a kind of internal error.
// fully support for errors.Is and errors.As.
type ErrorKind string

// Forge domain errors.
const (
	// Unauthorized is returned when the caller is not allowed to perform the operation.
	Unauthorized = ErrorKind("unauthorized")
	// AlreadyInitialized is returned when the forge ledger already exists.
	AlreadyInitialized = ErrorKind("already initialized")
	// AlreadyClaimed is returned when a claim record already exists for the asset.
	AlreadyClaimed = ErrorKind("asset already claimed")
	// ProgramPaused is returned when claims are attempted while the forge is paused.
	ProgramPaused = ErrorKind("program paused")
	// InvalidAssetMetadata is returned when the asset is not bound to the presented metadata.
	InvalidAssetMetadata = ErrorKind("invalid asset metadata")
	// InsufficientBalance is returned when the claimer cannot cover the burn.
	InsufficientBalance = ErrorKind("insufficient balance")
)

const (
	// NotFound is returned when a requested item is not found.
	NotFound = ErrorKind("not found")
	// Unavailable is returned when a remote dependency cannot serve the request right now.
	Unavailable = ErrorKind("unavailable")
	// Conflict is returned when a storage transaction lost a write race and may be retried.
	Conflict        = ErrorKind("conflict")
	InvalidArgument = ErrorKind("invalid argument")
	Unsupported     = ErrorKind("unsupported")
	Timeout         = ErrorKind("timeout")
	OverflowUint64  = ErrorKind("overflow uint64")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// KindOf returns the outermost ErrorKind in err's chain, or an empty kind.
func KindOf(err error) ErrorKind {
	var kind ErrorKind
	if errors.As(err, &kind) {
		return kind
	}
	return ""
}
