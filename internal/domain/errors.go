package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	// ErrNotFound means the requested recipient, quota, or request does not exist
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists means a quota grant already exists for the recipient
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput means the caller supplied malformed or out-of-range data
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidTransition means the caller attempted an illegal lifecycle move
	// (e.g. reviving a rejected request)
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrBusy means the decision scope for the (nik, fertilizer type) pair could
	// not be acquired in time; the call is safe to retry
	ErrBusy = errors.New("decision scope busy")

	// ErrRecipientNotVerified means the recipient exists but has not passed
	// verification and may not submit requests
	ErrRecipientNotVerified = errors.New("recipient is not verified")
)

// InsufficientQuotaError is returned when approving a request would push the
// committed amount past the granted allowance. Remaining carries the amount
// still available so the caller can surface it.
type InsufficientQuotaError struct {
	Type      FertilizerType
	Remaining decimal.Decimal
}

func (e *InsufficientQuotaError) Error() string {
	return fmt.Sprintf("insufficient %s quota: remaining %skg", e.Type, e.Remaining.String())
}

// OverCommittedError is returned at submission time when the requested amount,
// added to the recipient's outstanding (pending plus approved) requests of the
// same fertilizer type, would exceed the granted allowance.
type OverCommittedError struct {
	Type        FertilizerType
	Outstanding decimal.Decimal
	Granted     decimal.Decimal
}

func (e *OverCommittedError) Error() string {
	return fmt.Sprintf("request over-commits %s quota: %skg of %skg already pending or approved",
		e.Type, e.Outstanding.String(), e.Granted.String())
}
