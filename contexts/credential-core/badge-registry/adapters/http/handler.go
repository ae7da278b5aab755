package httpadapter

import (
	"context"
	"log/slog"

	"github.com/techgyrl/BadgeBoost/contexts/credential-core/badge-registry/application"
	"github.com/techgyrl/BadgeBoost/contexts/credential-core/badge-registry/domain/entities"
	"github.com/techgyrl/BadgeBoost/contexts/credential-core/badge-registry/ports"
	httptransport "github.com/techgyrl/BadgeBoost/contexts/credential-core/badge-registry/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) IssueBadgeHandler(
	ctx context.Context,
	caller string,
	req httptransport.IssueBadgeRequest,
) (httptransport.BadgeResponse, error) {
	badge, err := h.Service.Issue(ctx, caller, ports.IssueBadgeInput{
		Recipient:        req.Recipient,
		BadgeType:        req.BadgeType,
		Title:            req.Title,
		Description:      req.Description,
		MetadataURI:      req.MetadataURI,
		ExpiresAt:        req.ExpiresAt,
		VerificationHash: req.VerificationHash,
	})
	if err != nil {
		return httptransport.BadgeResponse{}, err
	}
	return httptransport.BadgeResponse{Status: "success", Data: badgeDTO(badge)}, nil
}

func (h Handler) TransferBadgeHandler(
	ctx context.Context,
	caller string,
	badgeID uint64,
	req httptransport.TransferBadgeRequest,
) (httptransport.BadgeResponse, error) {
	badge, err := h.Service.Transfer(ctx, caller, badgeID, req.NewOwner)
	if err != nil {
		return httptransport.BadgeResponse{}, err
	}
	return httptransport.BadgeResponse{Status: "success", Data: badgeDTO(badge)}, nil
}

func (h Handler) RevokeBadgeHandler(
	ctx context.Context,
	caller string,
	badgeID uint64,
	req httptransport.RevokeBadgeRequest,
) (httptransport.BadgeResponse, error) {
	badge, err := h.Service.Revoke(ctx, caller, badgeID, req.Reason)
	if err != nil {
		return httptransport.BadgeResponse{}, err
	}
	return httptransport.BadgeResponse{Status: "success", Data: badgeDTO(badge)}, nil
}

func (h Handler) UpdateExpiryHandler(
	ctx context.Context,
	caller string,
	badgeID uint64,
	req httptransport.UpdateExpiryRequest,
) (httptransport.BadgeResponse, error) {
	badge, err := h.Service.UpdateExpiry(ctx, caller, badgeID, req.ExpiresAt)
	if err != nil {
		return httptransport.BadgeResponse{}, err
	}
	return httptransport.BadgeResponse{Status: "success", Data: badgeDTO(badge)}, nil
}

func (h Handler) BatchRevokeHandler(
	ctx context.Context,
	caller string,
	req httptransport.BatchRevokeRequest,
) (httptransport.BatchRevokeResponse, error) {
	results, err := h.Service.BatchRevoke(ctx, caller, req.BadgeIDs, req.Reason)
	if err != nil {
		return httptransport.BatchRevokeResponse{}, err
	}
	resp := httptransport.BatchRevokeResponse{
		Status: "success",
		Data:   make([]httptransport.BatchRevokeItemDTO, 0, len(results)),
	}
	for _, result := range results {
		resp.Data = append(resp.Data, httptransport.BatchRevokeItemDTO{
			BadgeID:   result.BadgeID,
			Revoked:   result.Revoked,
			ErrorCode: result.ErrorCode,
		})
	}
	return resp, nil
}

func (h Handler) GetBadgeHandler(ctx context.Context, badgeID uint64) (httptransport.BadgeResponse, error) {
	badge, err := h.Service.GetBadge(ctx, badgeID)
	if err != nil {
		return httptransport.BadgeResponse{}, err
	}
	return httptransport.BadgeResponse{Status: "success", Data: badgeDTO(badge)}, nil
}

func (h Handler) OwnershipHistoryHandler(ctx context.Context, badgeID uint64) (httptransport.OwnershipHistoryResponse, error) {
	entries, err := h.Service.OwnershipHistory(ctx, badgeID)
	if err != nil {
		return httptransport.OwnershipHistoryResponse{}, err
	}
	resp := httptransport.OwnershipHistoryResponse{
		Status: "success",
		Data:   make([]httptransport.OwnershipEntryDTO, 0, len(entries)),
	}
	for _, entry := range entries {
		resp.Data = append(resp.Data, httptransport.OwnershipEntryDTO{
			BadgeID:       entry.BadgeID,
			Sequence:      entry.Sequence,
			PreviousOwner: entry.PreviousOwner,
			NewOwner:      entry.NewOwner,
			TransferredAt: entry.TransferredAt,
		})
	}
	return resp, nil
}

func badgeDTO(badge entities.Badge) httptransport.BadgeDTO {
	return httptransport.BadgeDTO{
		BadgeID:          badge.BadgeID,
		Owner:            badge.Owner,
		Issuer:           badge.Issuer,
		BadgeType:        badge.BadgeType,
		Title:            badge.Title,
		Description:      badge.Description,
		MetadataURI:      badge.MetadataURI,
		IssuedAt:         badge.IssuedAt,
		ExpiresAt:        badge.ExpiresAt,
		Revoked:          badge.Revoked,
		RevokedReason:    badge.RevokedReason,
		VerificationHash: badge.VerificationHash,
	}
}
