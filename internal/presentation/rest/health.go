package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"

	pkgpostgres "github.com/riderbookmybike-blip/bookmy.bike-sub007/pkg/postgres"
)

// HealthHandler serves liveness and readiness probes over HTTP.
// Readiness pings the database and Redis; Redis is advisory only because
// the scheme cache degrades to a miss when it is down.
type HealthHandler struct {
	pool   *pgxpool.Pool
	redis  *goredis.Client
	logger *slog.Logger
}

// NewHealthHandler creates a health check HTTP handler.
func NewHealthHandler(pool *pgxpool.Pool, redis *goredis.Client, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{pool: pool, redis: redis, logger: logger}
}

// RegisterRoutes attaches health-check routes to the given mux.
func (h *HealthHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /healthz", h.liveness)
	mux.HandleFunc("GET /readyz", h.readiness)
}

func (h *HealthHandler) liveness(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"service": "finance-service",
	})
}

func (h *HealthHandler) readiness(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := pkgpostgres.HealthCheck(ctx, h.pool); err != nil {
		h.logger.WarnContext(ctx, "readiness check failed", "dependency", "postgres", "error", err)
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status":  "unavailable",
			"service": "finance-service",
			"reason":  "database unreachable",
		})
		return
	}

	if err := h.redis.Ping(ctx).Err(); err != nil {
		h.logger.WarnContext(ctx, "readiness check degraded", "dependency", "redis", "error", err)
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ready",
		"service": "finance-service",
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v) //nolint:errcheck
}
