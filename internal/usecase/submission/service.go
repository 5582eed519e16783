package submission

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Dhani2612/RPL-PupukKu/internal/domain"
)

// SubmitInput represents the input for submitting a distribution request
type SubmitInput struct {
	NIK            string
	DistributorID  uuid.UUID
	FertilizerType domain.FertilizerType
	AmountKg       decimal.Decimal
}

// Service handles request submission and the request read paths. Submission
// validates against the quota ledger but never mutates it; only the approval
// coordinator commits allowance.
type Service struct {
	RecipientRepo   domain.RecipientRepository
	DistributorRepo domain.DistributorRepository
	QuotaRepo       domain.QuotaRepository
	RequestRepo     domain.RequestRepository

	now func() time.Time
}

// NewService creates a new submission Service instance
func NewService(
	recipientRepo domain.RecipientRepository,
	distributorRepo domain.DistributorRepository,
	quotaRepo domain.QuotaRepository,
	requestRepo domain.RequestRepository,
) *Service {
	return &Service{
		RecipientRepo:   recipientRepo,
		DistributorRepo: distributorRepo,
		QuotaRepo:       quotaRepo,
		RequestRepo:     requestRepo,
		now:             time.Now,
	}
}

// Submit creates a pending distribution request.
// Logic:
//  1. Validate amount and fertilizer type
//  2. Fetch the recipient; unverified recipients may not submit
//  3. Fetch the distributor fulfilling the request
//  4. Fetch the recipient's quota record for the type
//  5. Over-commit check: the requested amount plus the recipient's
//     outstanding (pending and approved) requests of the same type must
//     fit within the granted allowance
//  6. Persist the request as PENDING
//
// The over-commit check is a best-effort read; it does not take the
// coordinator's serialization scope. The authoritative guard remains the
// reserve performed at approval time.
func (s *Service) Submit(ctx context.Context, input SubmitInput) (*domain.Request, error) {
	// 1. Validate input
	if input.AmountKg.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: requested amount must be positive", domain.ErrInvalidInput)
	}
	if !input.FertilizerType.Valid() {
		return nil, fmt.Errorf("%w: unknown fertilizer type %q", domain.ErrInvalidInput, input.FertilizerType)
	}

	// 2. Fetch and check the recipient
	recipient, err := s.RecipientRepo.GetByNIK(ctx, input.NIK)
	if err != nil {
		return nil, err
	}
	if !recipient.Verified {
		return nil, fmt.Errorf("%w: NIK %s", domain.ErrRecipientNotVerified, input.NIK)
	}

	// 3. Fetch the distributor
	if _, err := s.DistributorRepo.GetByID(ctx, input.DistributorID); err != nil {
		return nil, err
	}

	// 4. Fetch the quota record for the requested type
	quotas, err := s.QuotaRepo.GetByNIK(ctx, input.NIK)
	if err != nil {
		return nil, err
	}
	var quota *domain.QuotaRecord
	for _, q := range quotas {
		if q.FertilizerType == input.FertilizerType {
			quota = q
			break
		}
	}
	if quota == nil {
		return nil, fmt.Errorf("%s quota for NIK %s: %w", input.FertilizerType, input.NIK, domain.ErrNotFound)
	}

	// 5. Over-commit check against outstanding requests
	outstanding, err := s.RequestRepo.SumAmounts(ctx, input.NIK, input.FertilizerType,
		domain.StatusPending, domain.StatusApproved)
	if err != nil {
		return nil, err
	}
	if outstanding.Add(input.AmountKg).GreaterThan(quota.GrantedKg) {
		return nil, &domain.OverCommittedError{
			Type:        input.FertilizerType,
			Outstanding: outstanding,
			Granted:     quota.GrantedKg,
		}
	}

	// 6. Persist as PENDING
	req := &domain.Request{
		NIK:            input.NIK,
		DistributorID:  input.DistributorID,
		FertilizerType: input.FertilizerType,
		AmountKg:       input.AmountKg,
		Status:         domain.StatusPending,
		SubmittedAt:    s.now(),
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := s.RequestRepo.Create(ctx, req); err != nil {
		return nil, err
	}

	return req, nil
}

// GetRequest retrieves a single request by ID
func (s *Service) GetRequest(ctx context.Context, id int64) (*domain.Request, error) {
	return s.RequestRepo.GetByID(ctx, id)
}

// ListRequests retrieves requests matching the filter, newest-first
func (s *Service) ListRequests(ctx context.Context, filter domain.RequestFilter) ([]*domain.Request, error) {
	if filter.Limit < 0 {
		return nil, fmt.Errorf("%w: limit cannot be negative", domain.ErrInvalidInput)
	}
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown request status %q", domain.ErrInvalidInput, filter.Status)
	}
	return s.RequestRepo.List(ctx, filter)
}
