package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request metrics
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "badgeboost_http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "badgeboost_http_request_duration_seconds",
		Help:    "Duration of HTTP requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})

	// Badge lifecycle metrics
	badgeOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "badgeboost_badge_operations_total",
		Help: "Total number of badge lifecycle mutations",
	}, []string{"operation"})

	// Points economy metrics
	pointsMovedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "badgeboost_points_moved_total",
		Help: "Total points moved through the ledger",
	}, []string{"operation"})

	rewardsRedeemedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "badgeboost_rewards_redeemed_total",
		Help: "Total number of successful reward redemptions",
	})

	rateLimitedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "badgeboost_rate_limited_requests_total",
		Help: "Total number of requests rejected by the rate limiter",
	})
)

// RecordHTTPRequest records one completed HTTP request.
func RecordHTTPRequest(method string, path string, status string, seconds float64) {
	httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	httpRequestDuration.WithLabelValues(method, path).Observe(seconds)
}

// RecordBadgeOperation records a successful badge mutation (issue, transfer,
// revoke, update_expiry).
func RecordBadgeOperation(operation string) {
	badgeOperationsTotal.WithLabelValues(operation).Inc()
}

// RecordPointsMoved records points flowing through the ledger for the given
// operation (award, deduct, transfer, redeem).
func RecordPointsMoved(operation string, amount uint64) {
	pointsMovedTotal.WithLabelValues(operation).Add(float64(amount))
}

// RecordRedemption records a successful reward redemption.
func RecordRedemption() {
	rewardsRedeemedTotal.Inc()
}

// RecordRateLimited records a request rejected by the rate limiter.
func RecordRateLimited() {
	rateLimitedTotal.Inc()
}
