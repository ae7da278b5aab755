package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	rewardserrors "github.com/techgyrl/BadgeBoost/contexts/rewards-economy/rewards-service/domain/errors"
	rewardshttp "github.com/techgyrl/BadgeBoost/contexts/rewards-economy/rewards-service/transport/http"
	"github.com/techgyrl/BadgeBoost/internal/platform/metrics"
)

func writeRewardsError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, rewardshttp.ErrorResponse{Code: code, Message: message})
}

func writeRewardsDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, rewardserrors.ErrUnauthorized):
		writeRewardsError(w, http.StatusForbidden, "unauthorized", err.Error())
	case errors.Is(err, rewardserrors.ErrInsufficientBalance):
		writeRewardsError(w, http.StatusConflict, "insufficient_balance", err.Error())
	case errors.Is(err, rewardserrors.ErrRewardNotFound):
		writeRewardsError(w, http.StatusNotFound, "reward_not_found", err.Error())
	case errors.Is(err, rewardserrors.ErrRewardUnavailable):
		writeRewardsError(w, http.StatusConflict, "reward_unavailable", err.Error())
	case errors.Is(err, rewardserrors.ErrInvalidInput):
		writeRewardsError(w, http.StatusBadRequest, "invalid_request", err.Error())
	default:
		writeRewardsError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func requireRewardsCaller(w http.ResponseWriter, r *http.Request) (string, bool) {
	caller := resolveCaller(r)
	if caller == "" {
		writeRewardsError(w, http.StatusUnauthorized, "missing_caller", "X-Caller-Id header is required")
		return "", false
	}
	return caller, true
}

func rewardIDFromPath(w http.ResponseWriter, r *http.Request) (uint64, bool) {
	rewardID, err := strconv.ParseUint(r.PathValue("reward_id"), 10, 64)
	if err != nil {
		writeRewardsError(w, http.StatusBadRequest, "invalid_reward_id", "reward_id must be a positive integer")
		return 0, false
	}
	return rewardID, true
}

func (s *Server) handleAwardPoints(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireRewardsCaller(w, r)
	if !ok {
		return
	}

	var req rewardshttp.AwardPointsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeRewardsError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.rewards.Handler.AwardPointsHandler(r.Context(), caller, req)
	if err != nil {
		writeRewardsDomainError(w, err)
		return
	}
	metrics.RecordPointsMoved("award", req.Amount)
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDeductPoints(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireRewardsCaller(w, r)
	if !ok {
		return
	}

	var req rewardshttp.DeductPointsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeRewardsError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.rewards.Handler.DeductPointsHandler(r.Context(), caller, req)
	if err != nil {
		writeRewardsDomainError(w, err)
		return
	}
	metrics.RecordPointsMoved("deduct", req.Amount)
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleTransferPoints(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireRewardsCaller(w, r)
	if !ok {
		return
	}

	var req rewardshttp.TransferPointsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeRewardsError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.rewards.Handler.TransferPointsHandler(r.Context(), caller, req)
	if err != nil {
		writeRewardsDomainError(w, err)
		return
	}
	metrics.RecordPointsMoved("transfer", req.Amount)
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handlePointsStats(w http.ResponseWriter, r *http.Request) {
	identity := strings.TrimSpace(r.PathValue("identity"))
	resp, err := s.rewards.Handler.GetStatsHandler(r.Context(), identity)
	if err != nil {
		writeRewardsDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleLedgerTotals(w http.ResponseWriter, r *http.Request) {
	resp, err := s.rewards.Handler.LedgerTotalsHandler(r.Context())
	if err != nil {
		writeRewardsDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCreateReward(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireRewardsCaller(w, r)
	if !ok {
		return
	}

	var req rewardshttp.CreateRewardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeRewardsError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.rewards.Handler.CreateRewardHandler(r.Context(), caller, req)
	if err != nil {
		writeRewardsDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleListRewards(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active") == "true"
	resp, err := s.rewards.Handler.ListRewardsHandler(r.Context(), activeOnly)
	if err != nil {
		writeRewardsDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetReward(w http.ResponseWriter, r *http.Request) {
	rewardID, ok := rewardIDFromPath(w, r)
	if !ok {
		return
	}

	resp, err := s.rewards.Handler.GetRewardHandler(r.Context(), rewardID)
	if err != nil {
		writeRewardsDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleSetRewardActive(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireRewardsCaller(w, r)
	if !ok {
		return
	}
	rewardID, ok := rewardIDFromPath(w, r)
	if !ok {
		return
	}

	var req rewardshttp.SetRewardActiveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeRewardsError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.rewards.Handler.SetRewardActiveHandler(r.Context(), caller, rewardID, req)
	if err != nil {
		writeRewardsDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleRedeemReward(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireRewardsCaller(w, r)
	if !ok {
		return
	}
	rewardID, ok := rewardIDFromPath(w, r)
	if !ok {
		return
	}

	resp, err := s.rewards.Handler.RedeemHandler(r.Context(), caller, rewardID)
	if err != nil {
		writeRewardsDomainError(w, err)
		return
	}
	metrics.RecordRedemption()
	metrics.RecordPointsMoved("redeem", resp.Data.PointsSpent)
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListRedemptions(w http.ResponseWriter, r *http.Request) {
	identity := strings.TrimSpace(r.PathValue("identity"))
	resp, err := s.rewards.Handler.ListRedemptionsHandler(r.Context(), identity)
	if err != nil {
		writeRewardsDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
