package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RequestStatus represents the lifecycle state of a distribution request
type RequestStatus string

const (
	StatusPending  RequestStatus = "PENDING"
	StatusApproved RequestStatus = "APPROVED"
	StatusRejected RequestStatus = "REJECTED"
)

// Valid reports whether the status is one of the closed set
func (s RequestStatus) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// Decision is an approver's verdict on a request
type Decision string

const (
	DecisionApprove Decision = "APPROVE"
	DecisionReject  Decision = "REJECT"
)

// Valid reports whether the decision is one of the closed set
func (d Decision) Valid() bool {
	return d == DecisionApprove || d == DecisionReject
}

// CanTransition reports whether a status change is one of the legal moves:
// PENDING -> APPROVED, PENDING -> REJECTED, APPROVED -> REJECTED (reversal).
// REJECTED is terminal; a rejected request cannot be revived.
func CanTransition(from, to RequestStatus) bool {
	switch from {
	case StatusPending:
		return to == StatusApproved || to == StatusRejected
	case StatusApproved:
		return to == StatusRejected
	}
	return false
}

// Request represents one consumption attempt against a quota record.
// Requests are never deleted; they form the audit trail.
type Request struct {
	ID             int64
	NIK            string
	DistributorID  uuid.UUID
	FertilizerType FertilizerType
	AmountKg       decimal.Decimal
	Status         RequestStatus
	SubmittedAt    time.Time
	DecidedAt      *time.Time

	// Denormalized read-model fields (may be empty on writes)
	RecipientName   string
	FarmerGroup     string
	DistributorName string
}

// Validate ensures the request adheres to domain rules
func (r *Request) Validate() error {
	if r.NIK == "" {
		return fmt.Errorf("%w: request NIK cannot be empty", ErrInvalidInput)
	}
	if r.DistributorID == uuid.Nil {
		return fmt.Errorf("%w: request distributor ID cannot be empty", ErrInvalidInput)
	}
	if !r.FertilizerType.Valid() {
		return fmt.Errorf("%w: unknown fertilizer type %q", ErrInvalidInput, r.FertilizerType)
	}
	if r.AmountKg.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: requested amount must be positive", ErrInvalidInput)
	}
	if !r.Status.Valid() {
		return fmt.Errorf("%w: unknown request status %q", ErrInvalidInput, r.Status)
	}
	return nil
}

// RequestFilter narrows a request listing. Zero values mean "no constraint".
type RequestFilter struct {
	NIK      string
	Status   RequestStatus
	DateFrom time.Time
	DateTo   time.Time
	Limit    int
}
