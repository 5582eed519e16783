package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// QuotaRecord represents the durable allowance state for one
// (recipient, fertilizer type) pair.
// Invariant: 0 <= CommittedKg <= GrantedKg at all times.
type QuotaRecord struct {
	NIK            string
	FertilizerType FertilizerType
	GrantedKg      decimal.Decimal
	CommittedKg    decimal.Decimal

	// Denormalized recipient fields for read models (may be empty on writes)
	RecipientName string
	FarmerGroup   string
}

// RemainingKg is the allowance still available for approval
func (q *QuotaRecord) RemainingKg() decimal.Decimal {
	return q.GrantedKg.Sub(q.CommittedKg)
}

// Validate ensures the quota record adheres to domain rules
func (q *QuotaRecord) Validate() error {
	if q.NIK == "" {
		return fmt.Errorf("%w: quota record NIK cannot be empty", ErrInvalidInput)
	}
	if !q.FertilizerType.Valid() {
		return fmt.Errorf("%w: unknown fertilizer type %q", ErrInvalidInput, q.FertilizerType)
	}
	if q.GrantedKg.IsNegative() {
		return fmt.Errorf("%w: granted amount cannot be negative", ErrInvalidInput)
	}
	if q.CommittedKg.IsNegative() {
		return fmt.Errorf("%w: committed amount cannot be negative", ErrInvalidInput)
	}
	if q.CommittedKg.GreaterThan(q.GrantedKg) {
		return fmt.Errorf("%w: committed amount exceeds granted amount", ErrInvalidInput)
	}
	return nil
}

// QuotaTotals is the system-wide rollup for one fertilizer type
type QuotaTotals struct {
	FertilizerType FertilizerType
	GrantedKg      decimal.Decimal
	CommittedKg    decimal.Decimal
}

// RemainingKg is the system-wide allowance still available
func (t *QuotaTotals) RemainingKg() decimal.Decimal {
	return t.GrantedKg.Sub(t.CommittedKg)
}
