package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	badgeerrors "github.com/techgyrl/BadgeBoost/contexts/credential-core/badge-registry/domain/errors"
	badgehttp "github.com/techgyrl/BadgeBoost/contexts/credential-core/badge-registry/transport/http"
	"github.com/techgyrl/BadgeBoost/internal/platform/metrics"
)

func writeBadgeError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, badgehttp.ErrorResponse{Code: code, Message: message})
}

func writeBadgeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, badgeerrors.ErrUnauthorized):
		writeBadgeError(w, http.StatusForbidden, "unauthorized", err.Error())
	case errors.Is(err, badgeerrors.ErrBadgeNotFound):
		writeBadgeError(w, http.StatusNotFound, "badge_not_found", err.Error())
	case errors.Is(err, badgeerrors.ErrAlreadyRevoked):
		writeBadgeError(w, http.StatusConflict, "already_revoked", err.Error())
	case errors.Is(err, badgeerrors.ErrTransferFailed):
		writeBadgeError(w, http.StatusConflict, "transfer_failed", err.Error())
	case errors.Is(err, badgeerrors.ErrBadgeExpired):
		writeBadgeError(w, http.StatusConflict, "badge_expired", err.Error())
	case errors.Is(err, badgeerrors.ErrInvalidInput):
		writeBadgeError(w, http.StatusBadRequest, "invalid_request", err.Error())
	default:
		writeBadgeError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func requireBadgeCaller(w http.ResponseWriter, r *http.Request) (string, bool) {
	caller := resolveCaller(r)
	if caller == "" {
		writeBadgeError(w, http.StatusUnauthorized, "missing_caller", "X-Caller-Id header is required")
		return "", false
	}
	return caller, true
}

func badgeIDFromPath(w http.ResponseWriter, r *http.Request) (uint64, bool) {
	badgeID, err := strconv.ParseUint(r.PathValue("badge_id"), 10, 64)
	if err != nil {
		writeBadgeError(w, http.StatusBadRequest, "invalid_badge_id", "badge_id must be a positive integer")
		return 0, false
	}
	return badgeID, true
}

func (s *Server) handleIssueBadge(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireBadgeCaller(w, r)
	if !ok {
		return
	}

	var req badgehttp.IssueBadgeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadgeError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.badges.Handler.IssueBadgeHandler(r.Context(), caller, req)
	if err != nil {
		writeBadgeDomainError(w, err)
		return
	}
	metrics.RecordBadgeOperation("issue")
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleGetBadge(w http.ResponseWriter, r *http.Request) {
	badgeID, ok := badgeIDFromPath(w, r)
	if !ok {
		return
	}

	resp, err := s.badges.Handler.GetBadgeHandler(r.Context(), badgeID)
	if err != nil {
		writeBadgeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleTransferBadge(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireBadgeCaller(w, r)
	if !ok {
		return
	}
	badgeID, ok := badgeIDFromPath(w, r)
	if !ok {
		return
	}

	var req badgehttp.TransferBadgeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadgeError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.badges.Handler.TransferBadgeHandler(r.Context(), caller, badgeID, req)
	if err != nil {
		writeBadgeDomainError(w, err)
		return
	}
	metrics.RecordBadgeOperation("transfer")
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleRevokeBadge(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireBadgeCaller(w, r)
	if !ok {
		return
	}
	badgeID, ok := badgeIDFromPath(w, r)
	if !ok {
		return
	}

	var req badgehttp.RevokeBadgeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadgeError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.badges.Handler.RevokeBadgeHandler(r.Context(), caller, badgeID, req)
	if err != nil {
		writeBadgeDomainError(w, err)
		return
	}
	metrics.RecordBadgeOperation("revoke")
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleUpdateBadgeExpiry(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireBadgeCaller(w, r)
	if !ok {
		return
	}
	badgeID, ok := badgeIDFromPath(w, r)
	if !ok {
		return
	}

	var req badgehttp.UpdateExpiryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadgeError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.badges.Handler.UpdateExpiryHandler(r.Context(), caller, badgeID, req)
	if err != nil {
		writeBadgeDomainError(w, err)
		return
	}
	metrics.RecordBadgeOperation("update_expiry")
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleBatchRevokeBadges(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireBadgeCaller(w, r)
	if !ok {
		return
	}

	var req badgehttp.BatchRevokeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadgeError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.badges.Handler.BatchRevokeHandler(r.Context(), caller, req)
	if err != nil {
		writeBadgeDomainError(w, err)
		return
	}
	for _, item := range resp.Data {
		if item.Revoked {
			metrics.RecordBadgeOperation("revoke")
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleBadgeHistory(w http.ResponseWriter, r *http.Request) {
	badgeID, ok := badgeIDFromPath(w, r)
	if !ok {
		return
	}

	resp, err := s.badges.Handler.OwnershipHistoryHandler(r.Context(), badgeID)
	if err != nil {
		writeBadgeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
