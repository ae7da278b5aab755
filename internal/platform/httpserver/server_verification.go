package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	verifyerrors "github.com/techgyrl/BadgeBoost/contexts/credential-core/verification-service/domain/errors"
	verifyhttp "github.com/techgyrl/BadgeBoost/contexts/credential-core/verification-service/transport/http"
)

func writeVerifyError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, verifyhttp.ErrorResponse{Code: code, Message: message})
}

func writeVerifyDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, verifyerrors.ErrBadgeNotFound):
		writeVerifyError(w, http.StatusNotFound, "badge_not_found", err.Error())
	case errors.Is(err, verifyerrors.ErrRequestNotFound):
		writeVerifyError(w, http.StatusNotFound, "request_not_found", err.Error())
	case errors.Is(err, verifyerrors.ErrRequestExists):
		writeVerifyError(w, http.StatusConflict, "request_exists", err.Error())
	case errors.Is(err, verifyerrors.ErrInvalidInput):
		writeVerifyError(w, http.StatusBadRequest, "invalid_request", err.Error())
	default:
		writeVerifyError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func verifyBadgeIDFromPath(w http.ResponseWriter, r *http.Request) (uint64, bool) {
	badgeID, err := strconv.ParseUint(r.PathValue("badge_id"), 10, 64)
	if err != nil {
		writeVerifyError(w, http.StatusBadRequest, "invalid_badge_id", "badge_id must be a positive integer")
		return 0, false
	}
	return badgeID, true
}

func (s *Server) handleVerifyOwnership(w http.ResponseWriter, r *http.Request) {
	badgeID, ok := verifyBadgeIDFromPath(w, r)
	if !ok {
		return
	}

	claimedOwner := strings.TrimSpace(r.URL.Query().Get("claimed_owner"))
	if claimedOwner == "" {
		writeVerifyError(w, http.StatusBadRequest, "invalid_request", "claimed_owner query parameter is required")
		return
	}

	resp, err := s.verification.Handler.VerifyOwnershipHandler(r.Context(), badgeID, claimedOwner)
	if err != nil {
		writeVerifyDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleVerifyAuthenticity(w http.ResponseWriter, r *http.Request) {
	badgeID, ok := verifyBadgeIDFromPath(w, r)
	if !ok {
		return
	}

	resp, err := s.verification.Handler.VerifyAuthenticityHandler(r.Context(), badgeID)
	if err != nil {
		writeVerifyDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleBatchVerify(w http.ResponseWriter, r *http.Request) {
	var req verifyhttp.BatchVerifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeVerifyError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.verification.Handler.BatchVerifyHandler(r.Context(), req)
	if err != nil {
		writeVerifyDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCreateVerificationRequest(w http.ResponseWriter, r *http.Request) {
	caller := resolveCaller(r)
	if caller == "" {
		writeVerifyError(w, http.StatusUnauthorized, "missing_caller", "X-Caller-Id header is required")
		return
	}

	var req verifyhttp.CreateRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeVerifyError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.verification.Handler.CreateRequestHandler(r.Context(), caller, req)
	if err != nil {
		writeVerifyDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleGetVerificationRequest(w http.ResponseWriter, r *http.Request) {
	requestID := strings.TrimSpace(r.PathValue("request_id"))
	resp, err := s.verification.Handler.GetRequestHandler(r.Context(), requestID)
	if err != nil {
		writeVerifyDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
