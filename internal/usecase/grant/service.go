package grant

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/Dhani2612/RPL-PupukKu/internal/domain"
)

// CreateInput represents the input for granting a recipient's allowance.
// Types absent from Grants are created with a zero allowance so the
// recipient always ends up with one record per fertilizer type.
type CreateInput struct {
	NIK    string
	Grants map[domain.FertilizerType]decimal.Decimal
}

// Service handles quota grant operations: creating a recipient's allowance
// records and reading ledger state. It never touches committed amounts.
type Service struct {
	QuotaRepo     domain.QuotaRepository
	RecipientRepo domain.RecipientRepository
}

// NewService creates a new grant Service instance
func NewService(quotaRepo domain.QuotaRepository, recipientRepo domain.RecipientRepository) *Service {
	return &Service{
		QuotaRepo:     quotaRepo,
		RecipientRepo: recipientRepo,
	}
}

// Create grants allowance records for a recipient, one per fertilizer type,
// all created together.
// Logic:
//  1. Validate the recipient exists and is verified
//  2. Validate every grant amount is non-negative and every type is known
//  3. Build one record per fertilizer type (zero for absent types)
//  4. Persist as a single unit; fails with ErrAlreadyExists if the
//     recipient already has records
func (s *Service) Create(ctx context.Context, input CreateInput) ([]*domain.QuotaRecord, error) {
	if input.NIK == "" {
		return nil, fmt.Errorf("%w: NIK cannot be empty", domain.ErrInvalidInput)
	}

	recipient, err := s.RecipientRepo.GetByNIK(ctx, input.NIK)
	if err != nil {
		return nil, err
	}
	if !recipient.Verified {
		return nil, fmt.Errorf("%w: NIK %s", domain.ErrRecipientNotVerified, input.NIK)
	}

	for t, amount := range input.Grants {
		if !t.Valid() {
			return nil, fmt.Errorf("%w: unknown fertilizer type %q", domain.ErrInvalidInput, t)
		}
		if amount.IsNegative() {
			return nil, fmt.Errorf("%w: %s grant cannot be negative", domain.ErrInvalidInput, t)
		}
	}

	records := make([]*domain.QuotaRecord, 0, len(domain.FertilizerTypes))
	for _, t := range domain.FertilizerTypes {
		granted := decimal.Zero
		if amount, ok := input.Grants[t]; ok {
			granted = amount
		}
		record := &domain.QuotaRecord{
			NIK:            input.NIK,
			FertilizerType: t,
			GrantedKg:      granted,
			CommittedKg:    decimal.Zero,
		}
		if err := record.Validate(); err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	if err := s.QuotaRepo.CreateGrants(ctx, records); err != nil {
		return nil, err
	}

	return records, nil
}

// Get retrieves the recipient's quota records.
// Fails with ErrNotFound when no allowance has been granted.
func (s *Service) Get(ctx context.Context, nik string) ([]*domain.QuotaRecord, error) {
	if nik == "" {
		return nil, fmt.Errorf("%w: NIK cannot be empty", domain.ErrInvalidInput)
	}
	return s.QuotaRepo.GetByNIK(ctx, nik)
}

// Aggregate returns the system-wide per-type rollup for reporting
func (s *Service) Aggregate(ctx context.Context) ([]*domain.QuotaTotals, error) {
	return s.QuotaRepo.Aggregate(ctx)
}
