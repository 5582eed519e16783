package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Dhani2612/RPL-PupukKu/internal/domain"
)

// Store is an in-memory implementation of every persistence interface the
// core consumes, exposed as one repository per aggregate sharing the same
// data. A single mutex guards all maps, so ApplyDecision is trivially
// atomic. Used by unit and concurrency tests and for local runs without a
// database.
type Store struct {
	mu           sync.RWMutex
	quotas       map[quotaKey]*domain.QuotaRecord
	requests     map[int64]*domain.Request
	recipients   map[string]*domain.Recipient
	distributors map[uuid.UUID]*domain.Distributor
	nextID       int64
}

type quotaKey struct {
	nik   string
	ftype domain.FertilizerType
}

// NewStore creates an empty in-memory store
func NewStore() *Store {
	return &Store{
		quotas:       make(map[quotaKey]*domain.QuotaRecord),
		requests:     make(map[int64]*domain.Request),
		recipients:   make(map[string]*domain.Recipient),
		distributors: make(map[uuid.UUID]*domain.Distributor),
	}
}

// Quotas returns the quota ledger view of the store
func (s *Store) Quotas() domain.QuotaRepository { return &quotaRepo{s} }

// Requests returns the request store view of the store
func (s *Store) Requests() domain.RequestRepository { return &requestRepo{s} }

// Decisions returns the atomic decision view of the store
func (s *Store) Decisions() domain.DecisionStore { return &decisionStore{s} }

// Recipients returns the recipient registry view of the store
func (s *Store) Recipients() domain.RecipientRepository { return &recipientRepo{s} }

// Distributors returns the distributor registry view of the store
func (s *Store) Distributors() domain.DistributorRepository { return &distributorRepo{s} }

// quotaRepo implements domain.QuotaRepository
type quotaRepo struct{ s *Store }

// GetByNIK retrieves all quota records for a recipient
func (r *quotaRepo) GetByNIK(ctx context.Context, nik string) ([]*domain.QuotaRecord, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var records []*domain.QuotaRecord
	for _, t := range domain.FertilizerTypes {
		if q, ok := r.s.quotas[quotaKey{nik, t}]; ok {
			records = append(records, r.s.quotaReadModel(q))
		}
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("fertilizer quota for NIK %s: %w", nik, domain.ErrNotFound)
	}
	return records, nil
}

// CreateGrants creates the recipient's quota records as a single unit
func (r *quotaRepo) CreateGrants(ctx context.Context, records []*domain.QuotaRecord) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, rec := range records {
		if _, ok := r.s.quotas[quotaKey{rec.NIK, rec.FertilizerType}]; ok {
			return fmt.Errorf("fertilizer quota for NIK %s: %w", rec.NIK, domain.ErrAlreadyExists)
		}
	}
	for _, rec := range records {
		cp := *rec
		r.s.quotas[quotaKey{rec.NIK, rec.FertilizerType}] = &cp
	}
	return nil
}

// Aggregate returns the per-type rollup. The single lock makes the snapshot
// consistent by construction.
func (r *quotaRepo) Aggregate(ctx context.Context) ([]*domain.QuotaTotals, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	byType := make(map[domain.FertilizerType]*domain.QuotaTotals)
	for _, t := range domain.FertilizerTypes {
		byType[t] = &domain.QuotaTotals{
			FertilizerType: t,
			GrantedKg:      decimal.Zero,
			CommittedKg:    decimal.Zero,
		}
	}
	for _, q := range r.s.quotas {
		totals := byType[q.FertilizerType]
		totals.GrantedKg = totals.GrantedKg.Add(q.GrantedKg)
		totals.CommittedKg = totals.CommittedKg.Add(q.CommittedKg)
	}

	result := make([]*domain.QuotaTotals, 0, len(domain.FertilizerTypes))
	for _, t := range domain.FertilizerTypes {
		result = append(result, byType[t])
	}
	return result, nil
}

// requestRepo implements domain.RequestRepository
type requestRepo struct{ s *Store }

// Create persists a new request and assigns its monotonic ID
func (r *requestRepo) Create(ctx context.Context, req *domain.Request) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.nextID++
	req.ID = r.s.nextID
	cp := *req
	r.s.requests[cp.ID] = &cp
	return nil
}

// GetByID retrieves a request by its ID
func (r *requestRepo) GetByID(ctx context.Context, id int64) (*domain.Request, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	req, ok := r.s.requests[id]
	if !ok {
		return nil, fmt.Errorf("request %d: %w", id, domain.ErrNotFound)
	}
	return r.s.requestReadModel(req), nil
}

// List retrieves requests matching the filter, newest-first
func (r *requestRepo) List(ctx context.Context, filter domain.RequestFilter) ([]*domain.Request, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var result []*domain.Request
	for _, req := range r.s.requests {
		if filter.NIK != "" && req.NIK != filter.NIK {
			continue
		}
		if filter.Status != "" && req.Status != filter.Status {
			continue
		}
		if !filter.DateFrom.IsZero() && req.SubmittedAt.Before(filter.DateFrom) {
			continue
		}
		if !filter.DateTo.IsZero() && req.SubmittedAt.After(filter.DateTo) {
			continue
		}
		result = append(result, r.s.requestReadModel(req))
	}

	sort.Slice(result, func(i, j int) bool {
		if !result[i].SubmittedAt.Equal(result[j].SubmittedAt) {
			return result[i].SubmittedAt.After(result[j].SubmittedAt)
		}
		return result[i].ID > result[j].ID
	})

	if filter.Limit > 0 && len(result) > filter.Limit {
		result = result[:filter.Limit]
	}
	return result, nil
}

// SumAmounts totals the recipient's requests of one type in the given statuses
func (r *requestRepo) SumAmounts(ctx context.Context, nik string, ftype domain.FertilizerType, statuses ...domain.RequestStatus) (decimal.Decimal, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	sum := decimal.Zero
	for _, req := range r.s.requests {
		if req.NIK != nik || req.FertilizerType != ftype {
			continue
		}
		for _, status := range statuses {
			if req.Status == status {
				sum = sum.Add(req.AmountKg)
				break
			}
		}
	}
	return sum, nil
}

// decisionStore implements domain.DecisionStore
type decisionStore struct{ s *Store }

// ApplyDecision transitions a request and adjusts the quota ledger under one
// lock; both mutations become visible together or not at all
func (d *decisionStore) ApplyDecision(ctx context.Context, p domain.ApplyDecisionParams) (*domain.Request, error) {
	d.s.mu.Lock()
	defer d.s.mu.Unlock()

	req, ok := d.s.requests[p.RequestID]
	if !ok {
		return nil, fmt.Errorf("request %d: %w", p.RequestID, domain.ErrNotFound)
	}
	if req.Status != p.FromStatus {
		return nil, fmt.Errorf("%w: request %d is %s, expected %s",
			domain.ErrInvalidTransition, p.RequestID, req.Status, p.FromStatus)
	}

	if !p.QuotaDelta.IsZero() {
		q, ok := d.s.quotas[quotaKey{req.NIK, req.FertilizerType}]
		if !ok {
			return nil, fmt.Errorf("fertilizer quota for NIK %s: %w", req.NIK, domain.ErrNotFound)
		}
		newCommitted := q.CommittedKg.Add(p.QuotaDelta)
		if newCommitted.GreaterThan(q.GrantedKg) {
			return nil, &domain.InsufficientQuotaError{
				Type:      q.FertilizerType,
				Remaining: q.RemainingKg(),
			}
		}
		if newCommitted.IsNegative() {
			return nil, fmt.Errorf("%w: release exceeds committed amount", domain.ErrInvalidTransition)
		}
		q.CommittedKg = newCommitted
	}

	req.Status = p.ToStatus
	decidedAt := p.DecidedAt
	req.DecidedAt = &decidedAt
	return d.s.requestReadModel(req), nil
}

// recipientRepo implements domain.RecipientRepository
type recipientRepo struct{ s *Store }

func (r *recipientRepo) GetByNIK(ctx context.Context, nik string) (*domain.Recipient, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	rec, ok := r.s.recipients[nik]
	if !ok {
		return nil, fmt.Errorf("recipient %s: %w", nik, domain.ErrNotFound)
	}
	cp := *rec
	return &cp, nil
}

func (r *recipientRepo) Create(ctx context.Context, rec *domain.Recipient) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.recipients[rec.NIK]; ok {
		return fmt.Errorf("recipient %s: %w", rec.NIK, domain.ErrAlreadyExists)
	}
	cp := *rec
	r.s.recipients[rec.NIK] = &cp
	return nil
}

// distributorRepo implements domain.DistributorRepository
type distributorRepo struct{ s *Store }

func (r *distributorRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Distributor, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	d, ok := r.s.distributors[id]
	if !ok {
		return nil, fmt.Errorf("distributor %s: %w", id, domain.ErrNotFound)
	}
	cp := *d
	return &cp, nil
}

func (r *distributorRepo) Create(ctx context.Context, d *domain.Distributor) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.distributors[d.ID]; ok {
		return fmt.Errorf("distributor %s: %w", d.ID, domain.ErrAlreadyExists)
	}
	cp := *d
	r.s.distributors[d.ID] = &cp
	return nil
}

// quotaReadModel copies a record and joins the recipient fields.
// Caller must hold at least the read lock.
func (s *Store) quotaReadModel(q *domain.QuotaRecord) *domain.QuotaRecord {
	cp := *q
	if r, ok := s.recipients[q.NIK]; ok {
		cp.RecipientName = r.Name
		cp.FarmerGroup = r.FarmerGroup
	}
	return &cp
}

// requestReadModel copies a request and joins recipient and distributor
// fields. Caller must hold at least the read lock.
func (s *Store) requestReadModel(req *domain.Request) *domain.Request {
	cp := *req
	if r, ok := s.recipients[req.NIK]; ok {
		cp.RecipientName = r.Name
		cp.FarmerGroup = r.FarmerGroup
	}
	if d, ok := s.distributors[req.DistributorID]; ok {
		cp.DistributorName = d.Name
	}
	return &cp
}
