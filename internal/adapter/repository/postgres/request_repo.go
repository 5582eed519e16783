package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/Dhani2612/RPL-PupukKu/internal/domain"
)

// requestRepository implements domain.RequestRepository
type requestRepository struct {
	db *DB
}

// NewRequestRepository creates a new request repository
func NewRequestRepository(db *DB) domain.RequestRepository {
	return &requestRepository{db: db}
}

const requestColumns = `
	d.id, d.nik, d.distributor_id, d.fertilizer_type, d.amount_kg,
	d.status, d.submitted_at, d.decided_at,
	p.name, p.farmer_group, dist.name
`

const requestJoins = `
	FROM distribution_requests d
	JOIN recipients p ON d.nik = p.nik
	JOIN distributors dist ON d.distributor_id = dist.id
`

// Create persists a new request; the database assigns the monotonic ID
func (r *requestRepository) Create(ctx context.Context, req *domain.Request) error {
	query := `
		INSERT INTO distribution_requests (nik, distributor_id, fertilizer_type, amount_kg, status, submitted_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	err := r.db.QueryRowContext(ctx, query,
		req.NIK,
		req.DistributorID,
		string(req.FertilizerType),
		req.AmountKg.String(),
		string(req.Status),
		req.SubmittedAt,
	).Scan(&req.ID)
	if err != nil {
		return fmt.Errorf("failed to insert request: %w", err)
	}
	return nil
}

// GetByID retrieves a request with its recipient and distributor names
func (r *requestRepository) GetByID(ctx context.Context, id int64) (*domain.Request, error) {
	query := `SELECT ` + requestColumns + requestJoins + ` WHERE d.id = $1`

	req, err := scanRequest(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("request %d: %w", id, domain.ErrNotFound)
		}
		return nil, err
	}
	return req, nil
}

// List retrieves requests matching the filter, newest-first
func (r *requestRepository) List(ctx context.Context, filter domain.RequestFilter) ([]*domain.Request, error) {
	var conditions []string
	var args []interface{}

	addCondition := func(clause string, value interface{}) {
		args = append(args, value)
		conditions = append(conditions, fmt.Sprintf(clause, len(args)))
	}

	if filter.NIK != "" {
		addCondition("d.nik = $%d", filter.NIK)
	}
	if filter.Status != "" {
		addCondition("d.status = $%d", string(filter.Status))
	}
	if !filter.DateFrom.IsZero() {
		addCondition("d.submitted_at >= $%d", filter.DateFrom)
	}
	if !filter.DateTo.IsZero() {
		addCondition("d.submitted_at <= $%d", filter.DateTo)
	}

	query := `SELECT ` + requestColumns + requestJoins
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY d.submitted_at DESC, d.id DESC"
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query requests: %w", err)
	}
	defer rows.Close()

	var requests []*domain.Request
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate requests: %w", err)
	}
	return requests, nil
}

// SumAmounts totals the recipient's requests of one type in the given statuses
func (r *requestRepository) SumAmounts(ctx context.Context, nik string, ftype domain.FertilizerType, statuses ...domain.RequestStatus) (decimal.Decimal, error) {
	if len(statuses) == 0 {
		return decimal.Zero, nil
	}

	statusStrings := make([]string, 0, len(statuses))
	for _, s := range statuses {
		statusStrings = append(statusStrings, string(s))
	}

	query := `
		SELECT COALESCE(SUM(amount_kg), 0)
		FROM distribution_requests
		WHERE nik = $1 AND fertilizer_type = $2 AND status = ANY($3)
	`

	var sumStr string
	err := r.db.QueryRowContext(ctx, query, nik, string(ftype), pq.Array(statusStrings)).Scan(&sumStr)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum request amounts: %w", err)
	}

	sum, err := decimal.NewFromString(sumStr)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse request amount sum: %w", err)
	}
	return sum, nil
}

// scanRequest reads one joined request row
func scanRequest(row interface {
	Scan(dest ...interface{}) error
}) (*domain.Request, error) {
	var req domain.Request
	var ftype, status, amountStr string
	var decidedAt sql.NullTime

	err := row.Scan(
		&req.ID,
		&req.NIK,
		&req.DistributorID,
		&ftype,
		&amountStr,
		&status,
		&req.SubmittedAt,
		&decidedAt,
		&req.RecipientName,
		&req.FarmerGroup,
		&req.DistributorName,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan request: %w", err)
	}

	req.FertilizerType = domain.FertilizerType(ftype)
	req.Status = domain.RequestStatus(status)

	amount, err := decimal.NewFromString(amountStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse amount_kg: %w", err)
	}
	req.AmountKg = amount

	if decidedAt.Valid {
		t := decidedAt.Time.UTC()
		req.DecidedAt = &t
	}

	return &req, nil
}
