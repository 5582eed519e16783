package grant

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Dhani2612/RPL-PupukKu/internal/domain"
)

// MockQuotaRepository is a mock implementation of QuotaRepository for testing
type MockQuotaRepository struct {
	mock.Mock
}

func (m *MockQuotaRepository) GetByNIK(ctx context.Context, nik string) ([]*domain.QuotaRecord, error) {
	args := m.Called(ctx, nik)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.QuotaRecord), args.Error(1)
}

func (m *MockQuotaRepository) CreateGrants(ctx context.Context, records []*domain.QuotaRecord) error {
	args := m.Called(ctx, records)
	return args.Error(0)
}

func (m *MockQuotaRepository) Aggregate(ctx context.Context) ([]*domain.QuotaTotals, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.QuotaTotals), args.Error(1)
}

// MockRecipientRepository is a mock implementation of RecipientRepository for testing
type MockRecipientRepository struct {
	mock.Mock
}

func (m *MockRecipientRepository) GetByNIK(ctx context.Context, nik string) (*domain.Recipient, error) {
	args := m.Called(ctx, nik)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Recipient), args.Error(1)
}

func (m *MockRecipientRepository) Create(ctx context.Context, r *domain.Recipient) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func verifiedRecipient(nik string) *domain.Recipient {
	return &domain.Recipient{
		NIK:         nik,
		Name:        "Slamet Riyadi",
		FarmerGroup: "Tani Makmur",
		Verified:    true,
	}
}

func TestCreate_AllTypesCreatedTogether(t *testing.T) {
	ctx := context.Background()
	mockQuotaRepo := new(MockQuotaRepository)
	mockRecipientRepo := new(MockRecipientRepository)

	service := NewService(mockQuotaRepo, mockRecipientRepo)

	nik := "3201011203990001"
	mockRecipientRepo.On("GetByNIK", ctx, nik).Return(verifiedRecipient(nik), nil)

	mockQuotaRepo.On("CreateGrants", ctx, mock.MatchedBy(func(records []*domain.QuotaRecord) bool {
		if len(records) != len(domain.FertilizerTypes) {
			return false
		}
		seen := make(map[domain.FertilizerType]decimal.Decimal)
		for _, r := range records {
			if r.NIK != nik || !r.CommittedKg.IsZero() {
				return false
			}
			seen[r.FertilizerType] = r.GrantedKg
		}
		// Urea and phonska as requested, organik defaulted to zero
		return seen[domain.FertilizerUrea].Equal(decimal.NewFromInt(100)) &&
			seen[domain.FertilizerPhonska].Equal(decimal.NewFromInt(50)) &&
			seen[domain.FertilizerOrganik].IsZero()
	})).Return(nil)

	records, err := service.Create(ctx, CreateInput{
		NIK: nik,
		Grants: map[domain.FertilizerType]decimal.Decimal{
			domain.FertilizerUrea:    decimal.NewFromInt(100),
			domain.FertilizerPhonska: decimal.NewFromInt(50),
		},
	})

	assert.NoError(t, err)
	assert.Len(t, records, 3)

	mockRecipientRepo.AssertExpectations(t)
	mockQuotaRepo.AssertExpectations(t)
}

func TestCreate_NegativeGrant(t *testing.T) {
	ctx := context.Background()
	mockQuotaRepo := new(MockQuotaRepository)
	mockRecipientRepo := new(MockRecipientRepository)

	service := NewService(mockQuotaRepo, mockRecipientRepo)

	nik := "3201011203990001"
	mockRecipientRepo.On("GetByNIK", ctx, nik).Return(verifiedRecipient(nik), nil)

	records, err := service.Create(ctx, CreateInput{
		NIK: nik,
		Grants: map[domain.FertilizerType]decimal.Decimal{
			domain.FertilizerUrea: decimal.NewFromInt(-10),
		},
	})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Nil(t, records)
	mockQuotaRepo.AssertNotCalled(t, "CreateGrants")
}

func TestCreate_UnverifiedRecipient(t *testing.T) {
	ctx := context.Background()
	mockQuotaRepo := new(MockQuotaRepository)
	mockRecipientRepo := new(MockRecipientRepository)

	service := NewService(mockQuotaRepo, mockRecipientRepo)

	nik := "3201011203990002"
	unverified := verifiedRecipient(nik)
	unverified.Verified = false
	mockRecipientRepo.On("GetByNIK", ctx, nik).Return(unverified, nil)

	records, err := service.Create(ctx, CreateInput{
		NIK:    nik,
		Grants: map[domain.FertilizerType]decimal.Decimal{domain.FertilizerUrea: decimal.NewFromInt(10)},
	})

	assert.ErrorIs(t, err, domain.ErrRecipientNotVerified)
	assert.Nil(t, records)
	mockQuotaRepo.AssertNotCalled(t, "CreateGrants")
}

func TestCreate_AlreadyExists(t *testing.T) {
	ctx := context.Background()
	mockQuotaRepo := new(MockQuotaRepository)
	mockRecipientRepo := new(MockRecipientRepository)

	service := NewService(mockQuotaRepo, mockRecipientRepo)

	nik := "3201011203990001"
	mockRecipientRepo.On("GetByNIK", ctx, nik).Return(verifiedRecipient(nik), nil)
	mockQuotaRepo.On("CreateGrants", ctx, mock.Anything).Return(domain.ErrAlreadyExists)

	records, err := service.Create(ctx, CreateInput{
		NIK:    nik,
		Grants: map[domain.FertilizerType]decimal.Decimal{domain.FertilizerUrea: decimal.NewFromInt(10)},
	})

	assert.ErrorIs(t, err, domain.ErrAlreadyExists)
	assert.Nil(t, records)
}

func TestGet_NotFound(t *testing.T) {
	ctx := context.Background()
	mockQuotaRepo := new(MockQuotaRepository)
	mockRecipientRepo := new(MockRecipientRepository)

	service := NewService(mockQuotaRepo, mockRecipientRepo)

	mockQuotaRepo.On("GetByNIK", ctx, "9999").Return(nil, domain.ErrNotFound)

	records, err := service.Get(ctx, "9999")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Nil(t, records)

	// Empty NIK is rejected before reaching the repository
	_, err = service.Get(ctx, "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAggregate_Passthrough(t *testing.T) {
	ctx := context.Background()
	mockQuotaRepo := new(MockQuotaRepository)
	mockRecipientRepo := new(MockRecipientRepository)

	service := NewService(mockQuotaRepo, mockRecipientRepo)

	totals := []*domain.QuotaTotals{
		{FertilizerType: domain.FertilizerUrea, GrantedKg: decimal.NewFromInt(300), CommittedKg: decimal.NewFromInt(120)},
	}
	mockQuotaRepo.On("Aggregate", ctx).Return(totals, nil)

	result, err := service.Aggregate(ctx)
	assert.NoError(t, err)
	assert.Len(t, result, 1)
	assert.True(t, decimal.NewFromInt(180).Equal(result[0].RemainingKg()))
}
