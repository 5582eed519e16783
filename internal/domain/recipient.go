package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// Recipient represents a registered fertilizer recipient (pelanggan),
// keyed by national ID number (NIK). Only verified recipients may submit
// distribution requests.
type Recipient struct {
	NIK         string
	Name        string
	FarmerGroup string
	Verified    bool
}

// Validate ensures the recipient adheres to domain rules
func (r *Recipient) Validate() error {
	if r.NIK == "" {
		return fmt.Errorf("%w: recipient NIK cannot be empty", ErrInvalidInput)
	}
	if r.Name == "" {
		return fmt.Errorf("%w: recipient name cannot be empty", ErrInvalidInput)
	}
	return nil
}

// Distributor represents a fertilizer distributor fulfilling requests
type Distributor struct {
	ID   uuid.UUID
	Name string
}

// Validate ensures the distributor adheres to domain rules
func (d *Distributor) Validate() error {
	if d.ID == uuid.Nil {
		return fmt.Errorf("%w: distributor ID cannot be empty", ErrInvalidInput)
	}
	if d.Name == "" {
		return fmt.Errorf("%w: distributor name cannot be empty", ErrInvalidInput)
	}
	return nil
}
