package middleware

import (
	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis errors by command name.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "leavedesk_redis_errors_total",
		Help: "Total number of Redis errors by command",
	}, []string{"command"})

	// RequestsSubmitted counts vacation requests created.
	RequestsSubmitted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "leavedesk_requests_submitted_total",
		Help: "Total number of vacation requests submitted",
	})

	// RequestsDecided counts decisions by outcome and actor role.
	RequestsDecided = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "leavedesk_requests_decided_total",
		Help: "Total number of vacation request decisions by outcome and actor role",
	}, []string{"outcome", "role"})
)

// InitMetrics creates the fiberprometheus middleware for the given service name.
func InitMetrics(serviceName string) *fiberprometheus.FiberPrometheus {
	return fiberprometheus.New(serviceName)
}

// MetricsMiddleware wraps the fiberprometheus handler as a Fiber middleware.
func MetricsMiddleware(prom *fiberprometheus.FiberPrometheus) fiber.Handler {
	return prom.Middleware
}
