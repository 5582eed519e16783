package grpc

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	pupukkuv1 "github.com/Dhani2612/RPL-PupukKu/internal/adapter/grpc/pupukku/v1"
	"github.com/Dhani2612/RPL-PupukKu/internal/domain"
	"github.com/Dhani2612/RPL-PupukKu/internal/usecase/approval"
	"github.com/Dhani2612/RPL-PupukKu/internal/usecase/grant"
	"github.com/Dhani2612/RPL-PupukKu/internal/usecase/submission"
)

// Server implements the PupukKuService gRPC server
type Server struct {
	pupukkuv1.UnimplementedPupukKuServiceServer

	GrantService      *grant.Service
	SubmissionService *submission.Service
	Coordinator       *approval.Coordinator
}

// NewServer creates a new gRPC server instance
func NewServer(
	grantService *grant.Service,
	submissionService *submission.Service,
	coordinator *approval.Coordinator,
) *Server {
	return &Server{
		GrantService:      grantService,
		SubmissionService: submissionService,
		Coordinator:       coordinator,
	}
}

// GetQuota handles the GetQuota RPC
func (s *Server) GetQuota(ctx context.Context, req *pupukkuv1.GetQuotaRequest) (*pupukkuv1.GetQuotaResponse, error) {
	records, err := s.GrantService.Get(ctx, req.Nik)
	if err != nil {
		return nil, mapError(err)
	}

	return &pupukkuv1.GetQuotaResponse{
		Records: quotaRecordsToProto(records),
	}, nil
}

// CreateQuota handles the CreateQuota RPC
func (s *Server) CreateQuota(ctx context.Context, req *pupukkuv1.CreateQuotaRequest) (*pupukkuv1.CreateQuotaResponse, error) {
	grants := make(map[domain.FertilizerType]decimal.Decimal, len(req.Grants))
	for _, g := range req.Grants {
		ftype, err := domain.ParseFertilizerType(g.FertilizerType)
		if err != nil {
			return nil, status.Errorf(codes.InvalidArgument, "invalid fertilizer_type: %v", err)
		}
		amount, err := decimal.NewFromString(g.GrantedKg)
		if err != nil {
			return nil, status.Errorf(codes.InvalidArgument, "invalid granted_kg format: %v", err)
		}
		grants[ftype] = amount
	}

	records, err := s.GrantService.Create(ctx, grant.CreateInput{
		NIK:    req.Nik,
		Grants: grants,
	})
	if err != nil {
		return nil, mapError(err)
	}

	return &pupukkuv1.CreateQuotaResponse{
		Records: quotaRecordsToProto(records),
	}, nil
}

// AggregateQuota handles the AggregateQuota RPC
func (s *Server) AggregateQuota(ctx context.Context, req *pupukkuv1.AggregateQuotaRequest) (*pupukkuv1.AggregateQuotaResponse, error) {
	totals, err := s.GrantService.Aggregate(ctx)
	if err != nil {
		return nil, mapError(err)
	}

	protoTotals := make([]*pupukkuv1.QuotaTotals, 0, len(totals))
	for _, t := range totals {
		protoTotals = append(protoTotals, &pupukkuv1.QuotaTotals{
			FertilizerType: string(t.FertilizerType),
			GrantedKg:      t.GrantedKg.String(),
			CommittedKg:    t.CommittedKg.String(),
			RemainingKg:    t.RemainingKg().String(),
		})
	}

	return &pupukkuv1.AggregateQuotaResponse{
		Totals: protoTotals,
	}, nil
}

// SubmitRequest handles the SubmitRequest RPC
func (s *Server) SubmitRequest(ctx context.Context, req *pupukkuv1.SubmitRequestRequest) (*pupukkuv1.SubmitRequestResponse, error) {
	distributorID, err := uuid.Parse(req.DistributorId)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid distributor_id format: %v", err)
	}

	ftype, err := domain.ParseFertilizerType(req.FertilizerType)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid fertilizer_type: %v", err)
	}

	amount, err := decimal.NewFromString(req.AmountKg)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid amount_kg format: %v", err)
	}

	request, err := s.SubmissionService.Submit(ctx, submission.SubmitInput{
		NIK:            req.Nik,
		DistributorID:  distributorID,
		FertilizerType: ftype,
		AmountKg:       amount,
	})
	if err != nil {
		return nil, mapError(err)
	}

	return &pupukkuv1.SubmitRequestResponse{
		Request: requestToProto(request),
	}, nil
}

// GetRequest handles the GetRequest RPC
func (s *Server) GetRequest(ctx context.Context, req *pupukkuv1.GetRequestRequest) (*pupukkuv1.GetRequestResponse, error) {
	request, err := s.SubmissionService.GetRequest(ctx, req.Id)
	if err != nil {
		return nil, mapError(err)
	}

	return &pupukkuv1.GetRequestResponse{
		Request: requestToProto(request),
	}, nil
}

// ListRequests handles the ListRequests RPC
func (s *Server) ListRequests(ctx context.Context, req *pupukkuv1.ListRequestsRequest) (*pupukkuv1.ListRequestsResponse, error) {
	filter := domain.RequestFilter{
		NIK:    req.Nik,
		Status: domain.RequestStatus(req.Status),
		Limit:  int(req.Limit),
	}
	if req.DateFrom != nil {
		filter.DateFrom = req.DateFrom.AsTime()
	}
	if req.DateTo != nil {
		filter.DateTo = req.DateTo.AsTime()
	}

	requests, err := s.SubmissionService.ListRequests(ctx, filter)
	if err != nil {
		return nil, mapError(err)
	}

	protoRequests := make([]*pupukkuv1.DistributionRequest, 0, len(requests))
	for _, r := range requests {
		protoRequests = append(protoRequests, requestToProto(r))
	}

	return &pupukkuv1.ListRequestsResponse{
		Requests: protoRequests,
	}, nil
}

// DecideRequest handles the DecideRequest RPC
func (s *Server) DecideRequest(ctx context.Context, req *pupukkuv1.DecideRequestRequest) (*pupukkuv1.DecideRequestResponse, error) {
	decision := domain.Decision(req.Decision)
	if !decision.Valid() {
		return nil, status.Errorf(codes.InvalidArgument, "invalid decision %q: must be APPROVE or REJECT", req.Decision)
	}

	request, err := s.Coordinator.Decide(ctx, req.Id, decision)
	if err != nil {
		return nil, mapError(err)
	}

	return &pupukkuv1.DecideRequestResponse{
		Request: requestToProto(request),
	}, nil
}

// quotaRecordsToProto converts domain quota records to proto quota records
func quotaRecordsToProto(records []*domain.QuotaRecord) []*pupukkuv1.QuotaRecord {
	protoRecords := make([]*pupukkuv1.QuotaRecord, 0, len(records))
	for _, r := range records {
		protoRecords = append(protoRecords, &pupukkuv1.QuotaRecord{
			Nik:            r.NIK,
			FertilizerType: string(r.FertilizerType),
			GrantedKg:      r.GrantedKg.String(),
			CommittedKg:    r.CommittedKg.String(),
			RemainingKg:    r.RemainingKg().String(),
			RecipientName:  r.RecipientName,
			FarmerGroup:    r.FarmerGroup,
		})
	}
	return protoRecords
}

// requestToProto converts a domain request to a proto request message
func requestToProto(r *domain.Request) *pupukkuv1.DistributionRequest {
	protoReq := &pupukkuv1.DistributionRequest{
		Id:              r.ID,
		Nik:             r.NIK,
		DistributorId:   r.DistributorID.String(),
		FertilizerType:  string(r.FertilizerType),
		AmountKg:        r.AmountKg.String(),
		Status:          string(r.Status),
		SubmittedAt:     timestamppb.New(r.SubmittedAt),
		RecipientName:   r.RecipientName,
		FarmerGroup:     r.FarmerGroup,
		DistributorName: r.DistributorName,
	}

	if r.DecidedAt != nil {
		protoReq.DecidedAt = timestamppb.New(*r.DecidedAt)
	}

	return protoReq
}

// mapError converts domain errors to gRPC status errors
func mapError(err error) error {
	if err == nil {
		return nil
	}

	var insufficientErr *domain.InsufficientQuotaError
	var overCommittedErr *domain.OverCommittedError

	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, domain.ErrAlreadyExists):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, domain.ErrInvalidTransition):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, domain.ErrRecipientNotVerified):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, domain.ErrBusy):
		return status.Error(codes.Aborted, err.Error())
	case errors.As(err, &insufficientErr):
		return status.Error(codes.ResourceExhausted, err.Error())
	case errors.As(err, &overCommittedErr):
		return status.Error(codes.ResourceExhausted, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
