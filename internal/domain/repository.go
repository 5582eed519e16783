package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// QuotaRepository defines the interface for quota ledger persistence.
// Committed amounts are never written through this interface; only the
// DecisionStore mutates them.
type QuotaRepository interface {
	// GetByNIK retrieves all quota records for a recipient.
	// Returns ErrNotFound if no allowance has ever been granted.
	GetByNIK(ctx context.Context, nik string) ([]*QuotaRecord, error)

	// CreateGrants creates the recipient's quota records, one per fertilizer
	// type, as a single unit. Returns ErrAlreadyExists if any already exist.
	CreateGrants(ctx context.Context, records []*QuotaRecord) error

	// Aggregate returns the system-wide per-type rollup. The two summed
	// quantities must come from a single consistent snapshot.
	Aggregate(ctx context.Context) ([]*QuotaTotals, error)
}

// RequestRepository defines the interface for distribution request persistence
type RequestRepository interface {
	// Create persists a new request. The store assigns the monotonic ID.
	Create(ctx context.Context, req *Request) error

	// GetByID retrieves a request by its ID. Returns ErrNotFound if absent.
	GetByID(ctx context.Context, id int64) (*Request, error)

	// List retrieves requests matching the filter, newest-first
	List(ctx context.Context, filter RequestFilter) ([]*Request, error)

	// SumAmounts returns the total requested amount over the recipient's
	// requests of the given type currently in one of the given statuses
	SumAmounts(ctx context.Context, nik string, ftype FertilizerType, statuses ...RequestStatus) (decimal.Decimal, error)
}

// ApplyDecisionParams describes the storage side of one approval decision
type ApplyDecisionParams struct {
	RequestID  int64
	FromStatus RequestStatus
	ToStatus   RequestStatus
	DecidedAt  time.Time

	// QuotaDelta is added to the committed amount of the request's quota
	// record: positive reserves allowance, negative releases it, zero leaves
	// the ledger untouched.
	QuotaDelta decimal.Decimal
}

// DecisionStore executes the storage side of an approval decision as a single
// atomic unit: the request's status change and the quota ledger adjustment
// become visible together, or neither does. It is the only writer of
// committed amounts and of request statuses.
//
// Returns ErrNotFound if the request is absent, ErrInvalidTransition if the
// request is no longer in FromStatus, and *InsufficientQuotaError if the
// delta would push the committed amount past the granted amount. On any
// error both stores are left exactly as they were.
type DecisionStore interface {
	ApplyDecision(ctx context.Context, p ApplyDecisionParams) (*Request, error)
}

// RecipientRepository defines the interface for recipient persistence.
// Provisioning is owned by the surrounding application; the core only needs
// lookups plus Create for wiring and tests.
type RecipientRepository interface {
	GetByNIK(ctx context.Context, nik string) (*Recipient, error)
	Create(ctx context.Context, r *Recipient) error
}

// DistributorRepository defines the interface for distributor persistence
type DistributorRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*Distributor, error)
	Create(ctx context.Context, d *Distributor) error
}
