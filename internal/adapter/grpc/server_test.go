package grpc

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pupukkuv1 "github.com/Dhani2612/RPL-PupukKu/internal/adapter/grpc/pupukku/v1"
	"github.com/Dhani2612/RPL-PupukKu/internal/adapter/repository/memory"
	"github.com/Dhani2612/RPL-PupukKu/internal/domain"
	"github.com/Dhani2612/RPL-PupukKu/internal/usecase/approval"
	"github.com/Dhani2612/RPL-PupukKu/internal/usecase/grant"
	"github.com/Dhani2612/RPL-PupukKu/internal/usecase/submission"
)

const testNIK = "3201011503900001"

// newTestServer wires the full service stack against the in-memory store
// with one verified recipient and one distributor already present.
func newTestServer(t *testing.T) (*Server, uuid.UUID) {
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

	server := NewServer(
		grant.NewService(store.Quotas(), store.Recipients()),
		submission.NewService(store.Recipients(), store.Distributors(), store.Quotas(), store.Requests()),
		approval.NewCoordinator(store.Requests(), store.Decisions()),
	)
	return server, distributorID
}

func createQuota(t *testing.T, server *Server, ureaKg string) {
	t.Helper()
	_, err := server.CreateQuota(context.Background(), &pupukkuv1.CreateQuotaRequest{
		Nik: testNIK,
		Grants: []*pupukkuv1.QuotaGrant{
			{FertilizerType: "UREA", GrantedKg: ureaKg},
		},
	})
	require.NoError(t, err)
}

func TestServer_CreateAndGetQuota(t *testing.T) {
	server, _ := newTestServer(t)
	createQuota(t, server, "100")

	resp, err := server.GetQuota(context.Background(), &pupukkuv1.GetQuotaRequest{Nik: testNIK})
	require.NoError(t, err)

	// One record per fertilizer type, absent types granted zero
	require.Len(t, resp.Records, len(domain.FertilizerTypes))
	byType := make(map[string]*pupukkuv1.QuotaRecord)
	for _, r := range resp.Records {
		byType[r.FertilizerType] = r
	}
	assert.Equal(t, "100", byType["UREA"].GrantedKg)
	assert.Equal(t, "100", byType["UREA"].RemainingKg)
	assert.Equal(t, "0", byType["PHONSKA"].GrantedKg)
	assert.Equal(t, "Slamet Riyadi", byType["UREA"].RecipientName)
}

func TestServer_SubmitAndDecideRequest(t *testing.T) {
	server, distributorID := newTestServer(t)
	createQuota(t, server, "100")
	ctx := context.Background()

	submitResp, err := server.SubmitRequest(ctx, &pupukkuv1.SubmitRequestRequest{
		Nik:            testNIK,
		DistributorId:  distributorID.String(),
		FertilizerType: "UREA",
		AmountKg:       "25.5",
	})
	require.NoError(t, err)
	assert.Equal(t, "PENDING", submitResp.Request.Status)
	assert.NotNil(t, submitResp.Request.SubmittedAt)
	assert.Nil(t, submitResp.Request.DecidedAt)

	decideResp, err := server.DecideRequest(ctx, &pupukkuv1.DecideRequestRequest{
		Id:       submitResp.Request.Id,
		Decision: "APPROVE",
	})
	require.NoError(t, err)
	assert.Equal(t, "APPROVED", decideResp.Request.Status)
	assert.NotNil(t, decideResp.Request.DecidedAt)

	quotaResp, err := server.GetQuota(ctx, &pupukkuv1.GetQuotaRequest{Nik: testNIK})
	require.NoError(t, err)
	for _, r := range quotaResp.Records {
		if r.FertilizerType == "UREA" {
			assert.Equal(t, "25.5", r.CommittedKg)
			assert.Equal(t, "74.5", r.RemainingKg)
		}
	}
}

func TestServer_ListRequestsFiltersByStatus(t *testing.T) {
	server, distributorID := newTestServer(t)
	createQuota(t, server, "100")
	ctx := context.Background()

	for _, amount := range []string{"10", "20"} {
		_, err := server.SubmitRequest(ctx, &pupukkuv1.SubmitRequestRequest{
			Nik:            testNIK,
			DistributorId:  distributorID.String(),
			FertilizerType: "UREA",
			AmountKg:       amount,
		})
		require.NoError(t, err)
	}
	_, err := server.DecideRequest(ctx, &pupukkuv1.DecideRequestRequest{Id: 1, Decision: "APPROVE"})
	require.NoError(t, err)

	resp, err := server.ListRequests(ctx, &pupukkuv1.ListRequestsRequest{Status: "PENDING"})
	require.NoError(t, err)
	require.Len(t, resp.Requests, 1)
	assert.Equal(t, int64(2), resp.Requests[0].Id)
	assert.Equal(t, "UD Subur Jaya", resp.Requests[0].DistributorName)
}

func TestServer_ErrorMapping(t *testing.T) {
	server, distributorID := newTestServer(t)
	createQuota(t, server, "50")
	ctx := context.Background()

	tests := []struct {
		name string
		call func() error
		code codes.Code
	}{
		{
			name: "unknown request id maps to NotFound",
			call: func() error {
				_, err := server.GetRequest(ctx, &pupukkuv1.GetRequestRequest{Id: 999})
				return err
			},
			code: codes.NotFound,
		},
		{
			name: "duplicate quota maps to AlreadyExists",
			call: func() error {
				_, err := server.CreateQuota(ctx, &pupukkuv1.CreateQuotaRequest{
					Nik:    testNIK,
					Grants: []*pupukkuv1.QuotaGrant{{FertilizerType: "UREA", GrantedKg: "10"}},
				})
				return err
			},
			code: codes.AlreadyExists,
		},
		{
			name: "over-committed submission maps to ResourceExhausted",
			call: func() error {
				_, err := server.SubmitRequest(ctx, &pupukkuv1.SubmitRequestRequest{
					Nik:            testNIK,
					DistributorId:  distributorID.String(),
					FertilizerType: "UREA",
					AmountKg:       "60",
				})
				return err
			},
			code: codes.ResourceExhausted,
		},
		{
			name: "malformed amount maps to InvalidArgument",
			call: func() error {
				_, err := server.SubmitRequest(ctx, &pupukkuv1.SubmitRequestRequest{
					Nik:            testNIK,
					DistributorId:  distributorID.String(),
					FertilizerType: "UREA",
					AmountKg:       "ten",
				})
				return err
			},
			code: codes.InvalidArgument,
		},
		{
			name: "bad decision maps to InvalidArgument",
			call: func() error {
				_, err := server.DecideRequest(ctx, &pupukkuv1.DecideRequestRequest{Id: 1, Decision: "MAYBE"})
				return err
			},
			code: codes.InvalidArgument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			require.Error(t, err)
			st, ok := status.FromError(err)
			require.True(t, ok, "error should be a gRPC status")
			assert.Equal(t, tt.code, st.Code())
		})
	}
}

func TestServer_RejectedRequestCannotBeRevived(t *testing.T) {
	server, distributorID := newTestServer(t)
	createQuota(t, server, "50")
	ctx := context.Background()

	submitResp, err := server.SubmitRequest(ctx, &pupukkuv1.SubmitRequestRequest{
		Nik:            testNIK,
		DistributorId:  distributorID.String(),
		FertilizerType: "UREA",
		AmountKg:       "10",
	})
	require.NoError(t, err)

	_, err = server.DecideRequest(ctx, &pupukkuv1.DecideRequestRequest{
		Id:       submitResp.Request.Id,
		Decision: "REJECT",
	})
	require.NoError(t, err)

	_, err = server.DecideRequest(ctx, &pupukkuv1.DecideRequestRequest{
		Id:       submitResp.Request.Id,
		Decision: "APPROVE",
	})
	require.Error(t, err)
	st, _ := status.FromError(err)
	assert.Equal(t, codes.FailedPrecondition, st.Code())
}

func TestServer_AggregateQuota(t *testing.T) {
	server, _ := newTestServer(t)
	createQuota(t, server, "100")

	resp, err := server.AggregateQuota(context.Background(), &pupukkuv1.AggregateQuotaRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Totals, len(domain.FertilizerTypes))
	for _, total := range resp.Totals {
		if total.FertilizerType == "UREA" {
			assert.Equal(t, "100", total.GrantedKg)
			assert.Equal(t, "0", total.CommittedKg)
		}
	}
}
