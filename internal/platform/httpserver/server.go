package httpserver

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	badgeregistry "github.com/techgyrl/BadgeBoost/contexts/credential-core/badge-registry"
	verificationservice "github.com/techgyrl/BadgeBoost/contexts/credential-core/verification-service"
	issuerregistry "github.com/techgyrl/BadgeBoost/contexts/identity-access/issuer-registry"
	rewardsservice "github.com/techgyrl/BadgeBoost/contexts/rewards-economy/rewards-service"

	httpSwagger "github.com/swaggo/http-swagger"
	_ "github.com/techgyrl/BadgeBoost/internal/platform/httpserver/docs"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Server struct {
	mux          *http.ServeMux
	logger       *slog.Logger
	addr         string
	issuers      issuerregistry.Module
	badges       badgeregistry.Module
	verification verificationservice.Module
	rewards      rewardsservice.Module
	limiter      *CallerRateLimiter
	swagger      bool
}

func New(
	issuers issuerregistry.Module,
	badges badgeregistry.Module,
	verification verificationservice.Module,
	rewards rewardsservice.Module,
	logger *slog.Logger,
	addr string,
	rateLimitPerMinute int,
	swaggerEnabled bool,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if addr == "" {
		addr = ":8080"
	}

	s := &Server{
		mux:          http.NewServeMux(),
		logger:       logger,
		addr:         addr,
		issuers:      issuers,
		badges:       badges,
		verification: verification,
		rewards:      rewards,
		limiter:      NewCallerRateLimiter(rateLimitPerMinute),
		swagger:      swaggerEnabled,
	}
	s.registerRoutes()
	return s
}

func (s *Server) Start() error {
	s.logger.Info("http server starting",
		"event", "http_server_starting",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"addr", s.addr,
	)
	return http.ListenAndServe(s.addr, s.Handler())
}

// Handler wraps the route mux in the metrics and rate-limit middleware
// chain. Exposed so tests can drive the full stack without a listener.
func (s *Server) Handler() http.Handler {
	return metricsMiddleware(rateLimitMiddleware(s.limiter, s.mux))
}

func (s *Server) registerRoutes() {
	if s.swagger {
		s.mux.Handle("/swagger/", httpSwagger.Handler(
			httpSwagger.URL("/swagger/doc.json"),
		))
	}
	s.mux.Handle("GET /metrics", promhttp.Handler())
	s.mux.HandleFunc("GET /healthz", s.handleHealthz)

	s.mux.HandleFunc("POST /api/registry/v1/issuers/authorize", s.handleAuthorizeIssuer)
	s.mux.HandleFunc("POST /api/registry/v1/issuers/{identity}/deauthorize", s.handleDeauthorizeIssuer)
	s.mux.HandleFunc("GET /api/registry/v1/issuers", s.handleListIssuers)
	s.mux.HandleFunc("GET /api/registry/v1/issuers/{identity}", s.handleGetIssuer)
	s.mux.HandleFunc("POST /api/registry/v1/admins", s.handleAddAdmin)
	s.mux.HandleFunc("POST /api/registry/v1/admins/{identity}/remove", s.handleRemoveAdmin)
	s.mux.HandleFunc("GET /api/registry/v1/capabilities/{identity}", s.handleGetCapabilities)

	s.mux.HandleFunc("POST /api/badges/v1/badges", s.handleIssueBadge)
	s.mux.HandleFunc("GET /api/badges/v1/badges/{badge_id}", s.handleGetBadge)
	s.mux.HandleFunc("POST /api/badges/v1/badges/{badge_id}/transfer", s.handleTransferBadge)
	s.mux.HandleFunc("POST /api/badges/v1/badges/{badge_id}/revoke", s.handleRevokeBadge)
	s.mux.HandleFunc("POST /api/badges/v1/badges/{badge_id}/expiry", s.handleUpdateBadgeExpiry)
	s.mux.HandleFunc("POST /api/badges/v1/badges/revoke-batch", s.handleBatchRevokeBadges)
	s.mux.HandleFunc("GET /api/badges/v1/badges/{badge_id}/history", s.handleBadgeHistory)

	s.mux.HandleFunc("GET /api/verify/v1/badges/{badge_id}/ownership", s.handleVerifyOwnership)
	s.mux.HandleFunc("GET /api/verify/v1/badges/{badge_id}/authenticity", s.handleVerifyAuthenticity)
	s.mux.HandleFunc("POST /api/verify/v1/batch", s.handleBatchVerify)
	s.mux.HandleFunc("POST /api/verify/v1/requests", s.handleCreateVerificationRequest)
	s.mux.HandleFunc("GET /api/verify/v1/requests/{request_id}", s.handleGetVerificationRequest)

	s.mux.HandleFunc("POST /api/rewards/v1/points/award", s.handleAwardPoints)
	s.mux.HandleFunc("POST /api/rewards/v1/points/deduct", s.handleDeductPoints)
	s.mux.HandleFunc("POST /api/rewards/v1/points/transfer", s.handleTransferPoints)
	s.mux.HandleFunc("GET /api/rewards/v1/points/totals", s.handleLedgerTotals)
	s.mux.HandleFunc("GET /api/rewards/v1/points/{identity}", s.handlePointsStats)
	s.mux.HandleFunc("POST /api/rewards/v1/rewards", s.handleCreateReward)
	s.mux.HandleFunc("GET /api/rewards/v1/rewards", s.handleListRewards)
	s.mux.HandleFunc("GET /api/rewards/v1/rewards/{reward_id}", s.handleGetReward)
	s.mux.HandleFunc("POST /api/rewards/v1/rewards/{reward_id}/active", s.handleSetRewardActive)
	s.mux.HandleFunc("POST /api/rewards/v1/rewards/{reward_id}/redeem", s.handleRedeemReward)
	s.mux.HandleFunc("GET /api/rewards/v1/redemptions/{identity}", s.handleListRedemptions)
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func resolveCaller(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get("X-Caller-Id"))
}
