package errs

import "errors"

// Sentinel errors shared across the usecase and handler layers
var (
	// Join pipeline errors
	ErrInvalidJoinEvent   = errors.New("invalid join event")
	ErrAlreadyAdjudicated = errors.New("join already adjudicated")
	ErrCommitConflict     = errors.New("commit precondition failed")
	ErrStoreUnavailable   = errors.New("voucher store unavailable")

	// Inventory errors
	ErrInvalidVoucherBatch = errors.New("invalid voucher batch")

	// Query errors
	ErrLedgerEntryNotFound = errors.New("ledger entry not found")
	ErrInvalidCursor       = errors.New("invalid cursor")
)
