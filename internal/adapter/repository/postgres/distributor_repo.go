package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/Dhani2612/RPL-PupukKu/internal/domain"
)

// distributorRepository implements domain.DistributorRepository
type distributorRepository struct {
	db *DB
}

// NewDistributorRepository creates a new distributor repository
func NewDistributorRepository(db *DB) domain.DistributorRepository {
	return &distributorRepository{db: db}
}

func (r *distributorRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Distributor, error) {
	var distributor domain.Distributor
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name
		FROM distributors
		WHERE id = $1
	`, id).Scan(&distributor.ID, &distributor.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("distributor %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get distributor: %w", err)
	}
	return &distributor, nil
}

func (r *distributorRepository) Create(ctx context.Context, distributor *domain.Distributor) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO distributors (id, name)
		VALUES ($1, $2)
	`, distributor.ID, distributor.Name)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
			return fmt.Errorf("distributor %s: %w", distributor.ID, domain.ErrAlreadyExists)
		}
		return fmt.Errorf("failed to create distributor: %w", err)
	}
	return nil
}
