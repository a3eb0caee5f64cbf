package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/HungEzz/surfsui/infrastructure/database/postgres"
	"github.com/HungEzz/surfsui/internal/domain"
	"github.com/HungEzz/surfsui/pkg/log"
)

// HealthcheckHandler performs a lightweight store round-trip and reports
// liveness plus pool occupancy. It answers 200 or 503 and never fails.
func HealthcheckHandler(conn postgres.Conn, pingTimeout time.Duration) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
		defer cancel()

		pingErr := conn.Ping(ctx)
		poolStats := conn.Stats()

		health := domain.HealthStatus{
			Status:    domain.HealthStatusHealthy,
			Database:  domain.DatabaseConnected,
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		}
		statusCode := http.StatusOK

		if pingErr != nil {
			health.Status = domain.HealthStatusUnhealthy
			health.Database = domain.DatabaseDisconnected
			statusCode = http.StatusServiceUnavailable
		}

		logger := log.ForContext(r.Context()).WithFields(log.Fields{
			"status":          health.Status,
			"pool_open":       poolStats.OpenConnections,
			"pool_in_use":     poolStats.InUse,
			"pool_idle":       poolStats.Idle,
			"pool_wait_count": poolStats.WaitCount,
		})
		if pingErr != nil {
			logger.WithError(pingErr).Warn("healthcheck: store unreachable")
		} else {
			logger.Debug("healthcheck: store reachable")
		}

		writeJSON(w, statusCode, health)
	})
}
