package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/Dhani2612/RPL-PupukKu/internal/domain"
)

// decisionStore implements domain.DecisionStore
type decisionStore struct {
	db       *DB
	requests domain.RequestRepository
}

// NewDecisionStore creates a new decision store. The request repository is
// used to return the joined read model after the commit.
func NewDecisionStore(db *DB, requests domain.RequestRepository) domain.DecisionStore {
	return &decisionStore{db: db, requests: requests}
}

// ApplyDecision runs the storage side of one approval decision in a database
// transaction. The request row and the matching quota row are locked with
// SELECT ... FOR UPDATE, so decisions racing on the same (nik, fertilizer
// type) pair serialize at the database even across processes. Any failure
// rolls the whole unit back.
func (s *decisionStore) ApplyDecision(ctx context.Context, p domain.ApplyDecisionParams) (*domain.Request, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer dbTx.Rollback()

	// Lock the request row and re-check its status: the caller's view may
	// be stale
	var nik, ftypeStr, status string
	err = dbTx.QueryRowContext(ctx, `
		SELECT nik, fertilizer_type, status
		FROM distribution_requests
		WHERE id = $1
		FOR UPDATE
	`, p.RequestID).Scan(&nik, &ftypeStr, &status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("request %d: %w", p.RequestID, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to lock request row: %w", err)
	}
	if domain.RequestStatus(status) != p.FromStatus {
		return nil, fmt.Errorf("%w: request %d is %s, expected %s",
			domain.ErrInvalidTransition, p.RequestID, status, p.FromStatus)
	}

	if !p.QuotaDelta.IsZero() {
		// Lock the quota row; this is the serialization point for decisions
		// on the same (nik, fertilizer type) pair
		var grantedStr, committedStr string
		err = dbTx.QueryRowContext(ctx, `
			SELECT granted_kg, committed_kg
			FROM quota_grants
			WHERE nik = $1 AND fertilizer_type = $2
			FOR UPDATE
		`, nik, ftypeStr).Scan(&grantedStr, &committedStr)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, fmt.Errorf("%s quota for NIK %s: %w", ftypeStr, nik, domain.ErrNotFound)
			}
			return nil, fmt.Errorf("failed to lock quota row: %w", err)
		}

		granted, err := decimal.NewFromString(grantedStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse granted_kg: %w", err)
		}
		committed, err := decimal.NewFromString(committedStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse committed_kg: %w", err)
		}

		newCommitted := committed.Add(p.QuotaDelta)
		if newCommitted.GreaterThan(granted) {
			return nil, &domain.InsufficientQuotaError{
				Type:      domain.FertilizerType(ftypeStr),
				Remaining: granted.Sub(committed),
			}
		}
		if newCommitted.IsNegative() {
			return nil, fmt.Errorf("%w: release exceeds committed amount", domain.ErrInvalidTransition)
		}

		_, err = dbTx.ExecContext(ctx, `
			UPDATE quota_grants
			SET committed_kg = $1
			WHERE nik = $2 AND fertilizer_type = $3
		`, newCommitted.String(), nik, ftypeStr)
		if err != nil {
			return nil, fmt.Errorf("failed to update quota record: %w", err)
		}
	}

	_, err = dbTx.ExecContext(ctx, `
		UPDATE distribution_requests
		SET status = $1, decided_at = $2
		WHERE id = $3
	`, string(p.ToStatus), p.DecidedAt, p.RequestID)
	if err != nil {
		return nil, fmt.Errorf("failed to update request status: %w", err)
	}

	if err := dbTx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return s.requests.GetByID(ctx, p.RequestID)
}
