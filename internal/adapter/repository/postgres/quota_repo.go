package postgres

import (
	"context"
	"fmt"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/Dhani2612/RPL-PupukKu/internal/domain"
)

// uniqueViolation is the PostgreSQL error code for duplicate keys
const uniqueViolation = "23505"

// quotaRepository implements domain.QuotaRepository
type quotaRepository struct {
	db *DB
}

// NewQuotaRepository creates a new quota repository
func NewQuotaRepository(db *DB) domain.QuotaRepository {
	return &quotaRepository{db: db}
}

// GetByNIK retrieves all quota records for a recipient, joined with the
// recipient's name and farmer group
func (r *quotaRepository) GetByNIK(ctx context.Context, nik string) ([]*domain.QuotaRecord, error) {
	query := `
		SELECT q.nik, q.fertilizer_type, q.granted_kg, q.committed_kg, p.name, p.farmer_group
		FROM quota_grants q
		JOIN recipients p ON q.nik = p.nik
		WHERE q.nik = $1
		ORDER BY q.fertilizer_type
	`

	rows, err := r.db.QueryContext(ctx, query, nik)
	if err != nil {
		return nil, fmt.Errorf("failed to query quota records: %w", err)
	}
	defer rows.Close()

	var records []*domain.QuotaRecord
	for rows.Next() {
		record, err := scanQuotaRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate quota records: %w", err)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("fertilizer quota for NIK %s: %w", nik, domain.ErrNotFound)
	}
	return records, nil
}

// CreateGrants creates the recipient's quota records in a database transaction
func (r *quotaRepository) CreateGrants(ctx context.Context, records []*domain.QuotaRecord) error {
	dbTx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer dbTx.Rollback()

	query := `
		INSERT INTO quota_grants (nik, fertilizer_type, granted_kg, committed_kg)
		VALUES ($1, $2, $3, $4)
	`

	for _, record := range records {
		_, err := dbTx.ExecContext(ctx, query,
			record.NIK,
			string(record.FertilizerType),
			record.GrantedKg.String(),
			record.CommittedKg.String(),
		)
		if err != nil {
			if pqErr, ok := err.(*pq.Error); ok && string(pqErr.Code) == uniqueViolation {
				return fmt.Errorf("fertilizer quota for NIK %s: %w", record.NIK, domain.ErrAlreadyExists)
			}
			return fmt.Errorf("failed to insert quota record: %w", err)
		}
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// Aggregate returns the system-wide per-type rollup. Both sums come from one
// statement, so the snapshot is consistent by construction.
func (r *quotaRepository) Aggregate(ctx context.Context) ([]*domain.QuotaTotals, error) {
	query := `
		SELECT fertilizer_type, COALESCE(SUM(granted_kg), 0), COALESCE(SUM(committed_kg), 0)
		FROM quota_grants
		GROUP BY fertilizer_type
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query quota totals: %w", err)
	}
	defer rows.Close()

	byType := make(map[domain.FertilizerType]*domain.QuotaTotals)
	for rows.Next() {
		var ftype string
		var grantedStr, committedStr string
		if err := rows.Scan(&ftype, &grantedStr, &committedStr); err != nil {
			return nil, fmt.Errorf("failed to scan quota totals: %w", err)
		}

		granted, err := decimal.NewFromString(grantedStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse granted total: %w", err)
		}
		committed, err := decimal.NewFromString(committedStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse committed total: %w", err)
		}

		byType[domain.FertilizerType(ftype)] = &domain.QuotaTotals{
			FertilizerType: domain.FertilizerType(ftype),
			GrantedKg:      granted,
			CommittedKg:    committed,
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate quota totals: %w", err)
	}

	// Types nobody holds yet still show up in the rollup, as zero
	totals := make([]*domain.QuotaTotals, 0, len(domain.FertilizerTypes))
	for _, t := range domain.FertilizerTypes {
		if total, ok := byType[t]; ok {
			totals = append(totals, total)
			continue
		}
		totals = append(totals, &domain.QuotaTotals{
			FertilizerType: t,
			GrantedKg:      decimal.Zero,
			CommittedKg:    decimal.Zero,
		})
	}
	return totals, nil
}

// scanQuotaRecord reads one joined quota row
func scanQuotaRecord(rows interface {
	Scan(dest ...interface{}) error
}) (*domain.QuotaRecord, error) {
	var record domain.QuotaRecord
	var ftype, grantedStr, committedStr string

	if err := rows.Scan(&record.NIK, &ftype, &grantedStr, &committedStr,
		&record.RecipientName, &record.FarmerGroup); err != nil {
		return nil, fmt.Errorf("failed to scan quota record: %w", err)
	}

	record.FertilizerType = domain.FertilizerType(ftype)

	granted, err := decimal.NewFromString(grantedStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse granted_kg: %w", err)
	}
	record.GrantedKg = granted

	committed, err := decimal.NewFromString(committedStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse committed_kg: %w", err)
	}
	record.CommittedKg = committed

	return &record, nil
}
