package ledger

import "errors"

// Domain errors surfaced to the presentation layer. The ledger itself never
// logs, retries or swallows them; a failed call leaves persisted state
// untouched.
var (
	// ErrClientNotFound means the referenced client id does not exist.
	ErrClientNotFound = errors.New("client not found")

	// ErrInsufficientFunds means the debited balance is below the requested
	// amount.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrSelfTransfer means source and target of a transfer are the same
	// client.
	ErrSelfTransfer = errors.New("source and target clients are the same")
)
