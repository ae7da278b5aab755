package httpadapter

import (
	"context"
	"log/slog"

	"github.com/techgyrl/BadgeBoost/contexts/identity-access/issuer-registry/application"
	"github.com/techgyrl/BadgeBoost/contexts/identity-access/issuer-registry/domain/entities"
	httptransport "github.com/techgyrl/BadgeBoost/contexts/identity-access/issuer-registry/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) AuthorizeIssuerHandler(
	ctx context.Context,
	caller string,
	req httptransport.AuthorizeIssuerRequest,
) (httptransport.IssuerResponse, error) {
	issuer, err := h.Service.AuthorizeIssuer(ctx, caller, req.Issuer, req.Name)
	if err != nil {
		return httptransport.IssuerResponse{}, err
	}
	return httptransport.IssuerResponse{Status: "success", Data: issuerDTO(issuer)}, nil
}

func (h Handler) DeauthorizeIssuerHandler(
	ctx context.Context,
	caller string,
	issuer string,
) (httptransport.IssuerResponse, error) {
	record, err := h.Service.DeauthorizeIssuer(ctx, caller, issuer)
	if err != nil {
		return httptransport.IssuerResponse{}, err
	}
	return httptransport.IssuerResponse{Status: "success", Data: issuerDTO(record)}, nil
}

func (h Handler) GetIssuerHandler(ctx context.Context, identity string) (httptransport.IssuerResponse, error) {
	issuer, err := h.Service.GetIssuer(ctx, identity)
	if err != nil {
		return httptransport.IssuerResponse{}, err
	}
	return httptransport.IssuerResponse{Status: "success", Data: issuerDTO(issuer)}, nil
}

func (h Handler) ListIssuersHandler(ctx context.Context) (httptransport.IssuerListResponse, error) {
	issuers, err := h.Service.ListIssuers(ctx)
	if err != nil {
		return httptransport.IssuerListResponse{}, err
	}
	resp := httptransport.IssuerListResponse{
		Status: "success",
		Data:   make([]httptransport.IssuerDTO, 0, len(issuers)),
	}
	for _, issuer := range issuers {
		resp.Data = append(resp.Data, issuerDTO(issuer))
	}
	return resp, nil
}

func (h Handler) AddAdminHandler(
	ctx context.Context,
	caller string,
	req httptransport.AddAdminRequest,
) (httptransport.AdminResponse, error) {
	admin, err := h.Service.AddAdmin(ctx, caller, req.Admin)
	if err != nil {
		return httptransport.AdminResponse{}, err
	}
	resp := httptransport.AdminResponse{Status: "success"}
	resp.Data.Identity = admin.Identity
	resp.Data.AddedAt = admin.AddedAt
	return resp, nil
}

func (h Handler) RemoveAdminHandler(ctx context.Context, caller string, admin string) error {
	return h.Service.RemoveAdmin(ctx, caller, admin)
}

func (h Handler) GetCapabilitiesHandler(ctx context.Context, identity string) (httptransport.CapabilityResponse, error) {
	isAdmin, err := h.Service.IsAdmin(ctx, identity)
	if err != nil {
		return httptransport.CapabilityResponse{}, err
	}
	authorized, err := h.Service.IsIssuerAuthorized(ctx, identity)
	if err != nil {
		return httptransport.CapabilityResponse{}, err
	}
	resp := httptransport.CapabilityResponse{Status: "success"}
	resp.Data.Identity = identity
	resp.Data.IsOwner = h.Service.IsOwner(identity)
	resp.Data.IsAdmin = isAdmin
	resp.Data.IssuerAuthorized = authorized
	return resp, nil
}

func issuerDTO(issuer entities.Issuer) httptransport.IssuerDTO {
	return httptransport.IssuerDTO{
		Identity:     issuer.Identity,
		Name:         issuer.Name,
		Authorized:   issuer.Authorized,
		AuthorizedAt: issuer.AuthorizedAt,
	}
}
