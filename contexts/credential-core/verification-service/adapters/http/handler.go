package httpadapter

import (
	"context"
	"log/slog"

	"github.com/techgyrl/BadgeBoost/contexts/credential-core/verification-service/application"
	"github.com/techgyrl/BadgeBoost/contexts/credential-core/verification-service/domain/entities"
	httptransport "github.com/techgyrl/BadgeBoost/contexts/credential-core/verification-service/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) VerifyOwnershipHandler(
	ctx context.Context,
	badgeID uint64,
	claimedOwner string,
) (httptransport.OwnershipCheckResponse, error) {
	owned, err := h.Service.VerifyOwnership(ctx, badgeID, claimedOwner)
	if err != nil {
		return httptransport.OwnershipCheckResponse{}, err
	}
	resp := httptransport.OwnershipCheckResponse{Status: "success"}
	resp.Data.BadgeID = badgeID
	resp.Data.ClaimedOwner = claimedOwner
	resp.Data.Owned = owned
	return resp, nil
}

func (h Handler) VerifyAuthenticityHandler(
	ctx context.Context,
	badgeID uint64,
) (httptransport.AuthenticityResponse, error) {
	report, err := h.Service.VerifyAuthenticity(ctx, badgeID)
	if err != nil {
		return httptransport.AuthenticityResponse{}, err
	}
	return httptransport.AuthenticityResponse{Status: "success", Data: authenticityDTO(report)}, nil
}

func (h Handler) BatchVerifyHandler(
	ctx context.Context,
	req httptransport.BatchVerifyRequest,
) (httptransport.BatchVerifyResponse, error) {
	statuses, err := h.Service.BatchVerify(ctx, req.BadgeIDs)
	if err != nil {
		return httptransport.BatchVerifyResponse{}, err
	}
	resp := httptransport.BatchVerifyResponse{
		Status: "success",
		Data:   make([]httptransport.BadgeStatusDTO, 0, len(statuses)),
	}
	for _, status := range statuses {
		resp.Data = append(resp.Data, httptransport.BadgeStatusDTO{
			BadgeID:         status.BadgeID,
			AuthenticityDTO: authenticityDTO(status.AuthenticityReport),
			Valid:           status.Valid,
		})
	}
	return resp, nil
}

func (h Handler) CreateRequestHandler(
	ctx context.Context,
	caller string,
	req httptransport.CreateRequestRequest,
) (httptransport.VerificationRequestResponse, error) {
	request, err := h.Service.CreateRequest(ctx, caller, req.RequestID, req.BadgeID, req.Data)
	if err != nil {
		return httptransport.VerificationRequestResponse{}, err
	}
	return httptransport.VerificationRequestResponse{Status: "success", Data: requestDTO(request)}, nil
}

func (h Handler) GetRequestHandler(ctx context.Context, requestID string) (httptransport.VerificationRequestResponse, error) {
	request, err := h.Service.GetRequest(ctx, requestID)
	if err != nil {
		return httptransport.VerificationRequestResponse{}, err
	}
	return httptransport.VerificationRequestResponse{Status: "success", Data: requestDTO(request)}, nil
}

func authenticityDTO(report entities.AuthenticityReport) httptransport.AuthenticityDTO {
	return httptransport.AuthenticityDTO{
		Exists:           report.Exists,
		Owner:            report.Owner,
		Issuer:           report.Issuer,
		Revoked:          report.Revoked,
		Expired:          report.Expired,
		IssuerAuthorized: report.IssuerAuthorized,
	}
}

func requestDTO(request entities.VerificationRequest) httptransport.VerificationRequestDTO {
	return httptransport.VerificationRequestDTO{
		RequestID:  request.RequestID,
		Requester:  request.Requester,
		BadgeID:    request.BadgeID,
		Verified:   request.Verified,
		VerifiedAt: request.VerifiedAt,
		Data:       request.Data,
	}
}
