package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/Dhani2612/RPL-PupukKu/internal/domain"
)

// recipientRepository implements domain.RecipientRepository
type recipientRepository struct {
	db *DB
}

// NewRecipientRepository creates a new recipient repository
func NewRecipientRepository(db *DB) domain.RecipientRepository {
	return &recipientRepository{db: db}
}

func (r *recipientRepository) GetByNIK(ctx context.Context, nik string) (*domain.Recipient, error) {
	var recipient domain.Recipient
	err := r.db.QueryRowContext(ctx, `
		SELECT nik, name, farmer_group, verified
		FROM recipients
		WHERE nik = $1
	`, nik).Scan(&recipient.NIK, &recipient.Name, &recipient.FarmerGroup, &recipient.Verified)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("recipient %s: %w", nik, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get recipient: %w", err)
	}
	return &recipient, nil
}

func (r *recipientRepository) Create(ctx context.Context, recipient *domain.Recipient) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO recipients (nik, name, farmer_group, verified)
		VALUES ($1, $2, $3, $4)
	`, recipient.NIK, recipient.Name, recipient.FarmerGroup, recipient.Verified)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
			return fmt.Errorf("recipient %s: %w", recipient.NIK, domain.ErrAlreadyExists)
		}
		return fmt.Errorf("failed to create recipient: %w", err)
	}
	return nil
}
