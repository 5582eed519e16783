package approval

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Dhani2612/RPL-PupukKu/internal/domain"
)

// DefaultAcquireTimeout bounds how long a decision waits for its
// (NIK, fertilizer type) scope before failing with domain.ErrBusy
const DefaultAcquireTimeout = 5 * time.Second

// Coordinator moves distribution requests between lifecycle states while
// keeping the quota ledger consistent. It is the single writer of
// cross-entity state: decisions on the same (NIK, fertilizer type) pair are
// serialized through a keyed mutex, and the storage mutation itself runs as
// one atomic unit in the DecisionStore.
type Coordinator struct {
	Requests  domain.RequestRepository
	Decisions domain.DecisionStore

	// AcquireTimeout overrides DefaultAcquireTimeout when positive
	AcquireTimeout time.Duration

	locks *keyMutex
	now   func() time.Time
}

// NewCoordinator creates a new Coordinator instance
func NewCoordinator(requests domain.RequestRepository, decisions domain.DecisionStore) *Coordinator {
	return &Coordinator{
		Requests:  requests,
		Decisions: decisions,
		locks:     newKeyMutex(),
		now:       time.Now,
	}
}

// Decide applies an approver's verdict to a request.
// Logic:
//  1. Load the request to learn its (NIK, fertilizer type) scope
//  2. Acquire the scope within the bounded wait (ErrBusy on timeout)
//  3. Re-read the request under the scope and determine the transition:
//     - PENDING  + APPROVE: reserve the requested amount
//     - PENDING  + REJECT:  no ledger effect
//     - APPROVED + REJECT:  release the previously committed amount (reversal)
//     - APPROVED + APPROVE: idempotent no-op, the request is returned unchanged
//     - REJECTED + anything: ErrInvalidTransition (rejected is terminal)
//  4. Apply the status change and the ledger delta as one atomic unit
//
// InsufficientQuota from the reserve aborts the whole unit; the request
// stays PENDING and the error carries the remaining amount.
func (c *Coordinator) Decide(ctx context.Context, requestID int64, decision domain.Decision) (*domain.Request, error) {
	if !decision.Valid() {
		return nil, fmt.Errorf("%w: unknown decision %q", domain.ErrInvalidInput, decision)
	}

	// 1. Load the request to learn the serialization scope
	req, err := c.Requests.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	// 2. Acquire the per-key scope with a bounded wait
	timeout := c.AcquireTimeout
	if timeout <= 0 {
		timeout = DefaultAcquireTimeout
	}
	release, err := c.locks.acquire(ctx, scopeKey(req.NIK, req.FertilizerType), timeout)
	if err != nil {
		return nil, err
	}
	defer release()

	// 3. Re-read under the scope: the status may have changed while waiting
	req, err = c.Requests.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	var toStatus domain.RequestStatus
	delta := decimal.Zero

	switch {
	case req.Status == domain.StatusPending && decision == domain.DecisionApprove:
		toStatus = domain.StatusApproved
		delta = req.AmountKg
	case req.Status == domain.StatusPending && decision == domain.DecisionReject:
		toStatus = domain.StatusRejected
	case req.Status == domain.StatusApproved && decision == domain.DecisionReject:
		// Reversal: the amount was committed by the earlier approval, so the
		// release always fits
		toStatus = domain.StatusRejected
		delta = req.AmountKg.Neg()
	case req.Status == domain.StatusApproved && decision == domain.DecisionApprove:
		// Already approved; approving again must not double-commit
		return req, nil
	default:
		return nil, fmt.Errorf("%w: request %d is %s, %s not allowed",
			domain.ErrInvalidTransition, requestID, req.Status, decision)
	}

	// 4. Commit status change and ledger delta atomically
	return c.Decisions.ApplyDecision(ctx, domain.ApplyDecisionParams{
		RequestID:  requestID,
		FromStatus: req.Status,
		ToStatus:   toStatus,
		DecidedAt:  c.now(),
		QuotaDelta: delta,
	})
}

func scopeKey(nik string, ftype domain.FertilizerType) string {
	return nik + "/" + string(ftype)
}
