package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	registryerrors "github.com/techgyrl/BadgeBoost/contexts/identity-access/issuer-registry/domain/errors"
	registryhttp "github.com/techgyrl/BadgeBoost/contexts/identity-access/issuer-registry/transport/http"
)

func writeRegistryError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, registryhttp.ErrorResponse{Code: code, Message: message})
}

func writeRegistryDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, registryerrors.ErrUnauthorized):
		writeRegistryError(w, http.StatusForbidden, "unauthorized", err.Error())
	case errors.Is(err, registryerrors.ErrNotFound):
		writeRegistryError(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, registryerrors.ErrInvalidInput):
		writeRegistryError(w, http.StatusBadRequest, "invalid_request", err.Error())
	default:
		writeRegistryError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func requireRegistryCaller(w http.ResponseWriter, r *http.Request) (string, bool) {
	caller := resolveCaller(r)
	if caller == "" {
		writeRegistryError(w, http.StatusUnauthorized, "missing_caller", "X-Caller-Id header is required")
		return "", false
	}
	return caller, true
}

func (s *Server) handleAuthorizeIssuer(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireRegistryCaller(w, r)
	if !ok {
		return
	}

	var req registryhttp.AuthorizeIssuerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeRegistryError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.issuers.Handler.AuthorizeIssuerHandler(r.Context(), caller, req)
	if err != nil {
		writeRegistryDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDeauthorizeIssuer(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireRegistryCaller(w, r)
	if !ok {
		return
	}

	identity := strings.TrimSpace(r.PathValue("identity"))
	resp, err := s.issuers.Handler.DeauthorizeIssuerHandler(r.Context(), caller, identity)
	if err != nil {
		writeRegistryDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListIssuers(w http.ResponseWriter, r *http.Request) {
	resp, err := s.issuers.Handler.ListIssuersHandler(r.Context())
	if err != nil {
		writeRegistryDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetIssuer(w http.ResponseWriter, r *http.Request) {
	identity := strings.TrimSpace(r.PathValue("identity"))
	resp, err := s.issuers.Handler.GetIssuerHandler(r.Context(), identity)
	if err != nil {
		writeRegistryDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleAddAdmin(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireRegistryCaller(w, r)
	if !ok {
		return
	}

	var req registryhttp.AddAdminRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeRegistryError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.issuers.Handler.AddAdminHandler(r.Context(), caller, req)
	if err != nil {
		writeRegistryDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleRemoveAdmin(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireRegistryCaller(w, r)
	if !ok {
		return
	}

	identity := strings.TrimSpace(r.PathValue("identity"))
	if err := s.issuers.Handler.RemoveAdminHandler(r.Context(), caller, identity); err != nil {
		writeRegistryDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "success"})
}

func (s *Server) handleGetCapabilities(w http.ResponseWriter, r *http.Request) {
	identity := strings.TrimSpace(r.PathValue("identity"))
	resp, err := s.issuers.Handler.GetCapabilitiesHandler(r.Context(), identity)
	if err != nil {
		writeRegistryDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
