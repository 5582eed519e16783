package approval

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dhani2612/RPL-PupukKu/internal/adapter/repository/memory"
	"github.com/Dhani2612/RPL-PupukKu/internal/domain"
)

const testNIK = "3201011203990001"

// seedStore creates a store holding one verified recipient, one distributor,
// and a urea grant of the given size
func seedStore(t *testing.T, grantedUrea int64) (*memory.Store, uuid.UUID) {
	t.Helper()
	ctx := context.Background()
	store := memory.NewStore()

	require.NoError(t, store.Recipients().Create(ctx, &domain.Recipient{
		NIK:         testNIK,
		Name:        "Slamet Riyadi",
		FarmerGroup: "Tani Makmur",
		Verified:    true,
	}))

	distributorID := uuid.New()
	require.NoError(t, store.Distributors().Create(ctx, &domain.Distributor{
		ID:   distributorID,
		Name: "UD Subur Jaya",
	}))

	require.NoError(t, store.Quotas().CreateGrants(ctx, []*domain.QuotaRecord{
		{
			NIK:            testNIK,
			FertilizerType: domain.FertilizerUrea,
			GrantedKg:      decimal.NewFromInt(grantedUrea),
			CommittedKg:    decimal.Zero,
		},
	}))

	return store, distributorID
}

// submitPending creates a pending urea request directly in the store
func submitPending(t *testing.T, store *memory.Store, distributorID uuid.UUID, amount int64) *domain.Request {
	t.Helper()
	req := &domain.Request{
		NIK:            testNIK,
		DistributorID:  distributorID,
		FertilizerType: domain.FertilizerUrea,
		AmountKg:       decimal.NewFromInt(amount),
		Status:         domain.StatusPending,
		SubmittedAt:    time.Now(),
	}
	require.NoError(t, store.Requests().Create(context.Background(), req))
	return req
}

// ureaQuota fetches the recipient's urea record
func ureaQuota(t *testing.T, store *memory.Store) *domain.QuotaRecord {
	t.Helper()
	records, err := store.Quotas().GetByNIK(context.Background(), testNIK)
	require.NoError(t, err)
	for _, r := range records {
		if r.FertilizerType == domain.FertilizerUrea {
			return r
		}
	}
	t.Fatal("urea quota record missing")
	return nil
}

// checkLedgerInvariant asserts that the committed amount equals the sum of
// currently approved request amounts and stays within the granted bound
func checkLedgerInvariant(t *testing.T, store *memory.Store) {
	t.Helper()
	quota := ureaQuota(t, store)

	approved, err := store.Requests().SumAmounts(context.Background(), testNIK,
		domain.FertilizerUrea, domain.StatusApproved)
	require.NoError(t, err)

	assert.True(t, quota.CommittedKg.Equal(approved),
		"committed %s != sum of approved %s", quota.CommittedKg, approved)
	assert.False(t, quota.CommittedKg.IsNegative())
	assert.True(t, quota.CommittedKg.LessThanOrEqual(quota.GrantedKg))
}

func TestDecide_ApproveReservesQuota(t *testing.T) {
	ctx := context.Background()
	store, distributorID := seedStore(t, 100)
	req := submitPending(t, store, distributorID, 40)

	coordinator := NewCoordinator(store.Requests(), store.Decisions())
	decided, err := coordinator.Decide(ctx, req.ID, domain.DecisionApprove)

	require.NoError(t, err)
	assert.Equal(t, domain.StatusApproved, decided.Status)
	require.NotNil(t, decided.DecidedAt)

	quota := ureaQuota(t, store)
	assert.True(t, decimal.NewFromInt(40).Equal(quota.CommittedKg))
	assert.True(t, decimal.NewFromInt(60).Equal(quota.RemainingKg()))
	checkLedgerInvariant(t, store)
}

func TestDecide_RejectHasNoLedgerEffect(t *testing.T) {
	ctx := context.Background()
	store, distributorID := seedStore(t, 100)
	req := submitPending(t, store, distributorID, 40)

	coordinator := NewCoordinator(store.Requests(), store.Decisions())
	decided, err := coordinator.Decide(ctx, req.ID, domain.DecisionReject)

	require.NoError(t, err)
	assert.Equal(t, domain.StatusRejected, decided.Status)

	quota := ureaQuota(t, store)
	assert.True(t, quota.CommittedKg.IsZero())
	checkLedgerInvariant(t, store)
}

// Reversal round-trip: PENDING -> APPROVED -> REJECTED must leave the ledger
// exactly as it was before the approval, and a previously blocked request
// becomes approvable again
func TestDecide_ReversalRestoresQuota(t *testing.T) {
	ctx := context.Background()
	store, distributorID := seedStore(t, 50)
	first := submitPending(t, store, distributorID, 50)
	second := submitPending(t, store, distributorID, 1)

	coordinator := NewCoordinator(store.Requests(), store.Decisions())

	_, err := coordinator.Decide(ctx, first.ID, domain.DecisionApprove)
	require.NoError(t, err)
	assert.True(t, ureaQuota(t, store).RemainingKg().IsZero())

	// The 1kg request no longer fits
	_, err = coordinator.Decide(ctx, second.ID, domain.DecisionApprove)
	var insufficient *domain.InsufficientQuotaError
	require.ErrorAs(t, err, &insufficient)
	assert.True(t, insufficient.Remaining.IsZero())

	// Reverse the first approval
	reversed, err := coordinator.Decide(ctx, first.ID, domain.DecisionReject)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusRejected, reversed.Status)
	assert.True(t, decimal.NewFromInt(50).Equal(ureaQuota(t, store).RemainingKg()))
	checkLedgerInvariant(t, store)

	// Now the 1kg request goes through
	decided, err := coordinator.Decide(ctx, second.ID, domain.DecisionApprove)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusApproved, decided.Status)
	checkLedgerInvariant(t, store)
}

// Approving an already approved request must not double-commit
func TestDecide_ApproveApprovedIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store, distributorID := seedStore(t, 100)
	req := submitPending(t, store, distributorID, 40)

	coordinator := NewCoordinator(store.Requests(), store.Decisions())

	_, err := coordinator.Decide(ctx, req.ID, domain.DecisionApprove)
	require.NoError(t, err)

	again, err := coordinator.Decide(ctx, req.ID, domain.DecisionApprove)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusApproved, again.Status)

	quota := ureaQuota(t, store)
	assert.True(t, decimal.NewFromInt(40).Equal(quota.CommittedKg))
	checkLedgerInvariant(t, store)
}

func TestDecide_RejectedIsTerminal(t *testing.T) {
	ctx := context.Background()
	store, distributorID := seedStore(t, 100)
	req := submitPending(t, store, distributorID, 40)

	coordinator := NewCoordinator(store.Requests(), store.Decisions())

	_, err := coordinator.Decide(ctx, req.ID, domain.DecisionReject)
	require.NoError(t, err)

	_, err = coordinator.Decide(ctx, req.ID, domain.DecisionApprove)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	_, err = coordinator.Decide(ctx, req.ID, domain.DecisionReject)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	checkLedgerInvariant(t, store)
}

func TestDecide_NotFound(t *testing.T) {
	ctx := context.Background()
	store, _ := seedStore(t, 100)

	coordinator := NewCoordinator(store.Requests(), store.Decisions())

	_, err := coordinator.Decide(ctx, 9999, domain.DecisionApprove)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	quota := ureaQuota(t, store)
	assert.True(t, quota.CommittedKg.IsZero())
}

func TestDecide_InsufficientQuotaKeepsRequestPending(t *testing.T) {
	ctx := context.Background()
	store, distributorID := seedStore(t, 30)
	req := submitPending(t, store, distributorID, 40)

	coordinator := NewCoordinator(store.Requests(), store.Decisions())

	_, err := coordinator.Decide(ctx, req.ID, domain.DecisionApprove)
	var insufficient *domain.InsufficientQuotaError
	require.ErrorAs(t, err, &insufficient)
	assert.True(t, decimal.NewFromInt(30).Equal(insufficient.Remaining))

	// The whole unit aborted: request still pending, ledger untouched
	stored, err := store.Requests().GetByID(ctx, req.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, stored.Status)
	assert.Nil(t, stored.DecidedAt)
	assert.True(t, ureaQuota(t, store).CommittedKg.IsZero())
	checkLedgerInvariant(t, store)
}

// Two pending requests of 6kg against a remaining 10kg, decided concurrently:
// exactly one approval must succeed
func TestDecide_ConcurrentApprovalsSameKey(t *testing.T) {
	ctx := context.Background()
	store, distributorID := seedStore(t, 10)
	first := submitPending(t, store, distributorID, 6)
	second := submitPending(t, store, distributorID, 6)

	coordinator := NewCoordinator(store.Requests(), store.Decisions())

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i, id := range []int64{first.ID, second.ID} {
		wg.Add(1)
		go func(slot int, requestID int64) {
			defer wg.Done()
			_, errs[slot] = coordinator.Decide(ctx, requestID, domain.DecisionApprove)
		}(i, id)
	}
	wg.Wait()

	var successes, insufficient int
	for _, err := range errs {
		if err == nil {
			successes++
			continue
		}
		var iq *domain.InsufficientQuotaError
		require.ErrorAs(t, err, &iq)
		insufficient++
	}
	assert.Equal(t, 1, successes, "exactly one approval must win")
	assert.Equal(t, 1, insufficient)

	quota := ureaQuota(t, store)
	assert.True(t, decimal.NewFromInt(6).Equal(quota.CommittedKg))
	checkLedgerInvariant(t, store)
}

// blockingDecisionStore parks every ApplyDecision until released, keeping the
// caller inside the coordinator's serialization scope
type blockingDecisionStore struct {
	inner   domain.DecisionStore
	entered chan struct{}
	release chan struct{}
}

func (b *blockingDecisionStore) ApplyDecision(ctx context.Context, p domain.ApplyDecisionParams) (*domain.Request, error) {
	b.entered <- struct{}{}
	<-b.release
	return b.inner.ApplyDecision(ctx, p)
}

func TestDecide_BusyWhenScopeHeld(t *testing.T) {
	ctx := context.Background()
	store, distributorID := seedStore(t, 100)
	first := submitPending(t, store, distributorID, 10)
	second := submitPending(t, store, distributorID, 10)

	blocking := &blockingDecisionStore{
		inner:   store.Decisions(),
		entered: make(chan struct{}),
		release: make(chan struct{}),
	}
	coordinator := NewCoordinator(store.Requests(), blocking)
	coordinator.AcquireTimeout = 50 * time.Millisecond

	done := make(chan error, 1)
	go func() {
		_, err := coordinator.Decide(ctx, first.ID, domain.DecisionApprove)
		done <- err
	}()

	// Wait until the first decision holds the scope, then contend on it
	<-blocking.entered
	_, err := coordinator.Decide(ctx, second.ID, domain.DecisionApprove)
	assert.ErrorIs(t, err, domain.ErrBusy)

	close(blocking.release)
	require.NoError(t, <-done)
	checkLedgerInvariant(t, store)
}
