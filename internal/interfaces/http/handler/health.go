package handler

import (
	"net/http"
	"runtime"
	"time"

	"github.com/storeops/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// Pinger reports whether the database connection is alive
type Pinger interface {
	Ping() error
}

// HealthHandler handles liveness and readiness probes
type HealthHandler struct {
	*BaseHandler
	db        Pinger
	redis     *redis.Client
	startTime time.Time
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(base *BaseHandler, db Pinger, redisClient *redis.Client) *HealthHandler {
	return &HealthHandler{
		BaseHandler: base,
		db:          db,
		redis:       redisClient,
		startTime:   time.Now(),
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string            `json:"status"`
	GoVersion string            `json:"go_version"`
	Uptime    string            `json:"uptime"`
	Checks    map[string]string `json:"checks"`
}

// Check reports service health along with dependency status
func (h *HealthHandler) Check(c *gin.Context) {
	checks := map[string]string{}
	healthy := true

	if err := h.db.Ping(); err != nil {
		checks["database"] = "down: " + err.Error()
		healthy = false
	} else {
		checks["database"] = "up"
	}

	if h.redis != nil {
		if err := h.redis.Ping(c.Request.Context()).Err(); err != nil {
			checks["redis"] = "down: " + err.Error()
			healthy = false
		} else {
			checks["redis"] = "up"
		}
	}

	response := HealthResponse{
		Status:    "ok",
		GoVersion: runtime.Version(),
		Uptime:    time.Since(h.startTime).Round(time.Second).String(),
		Checks:    checks,
	}

	status := http.StatusOK
	if !healthy {
		response.Status = "degraded"
		status = http.StatusServiceUnavailable
	}

	c.JSON(status, dto.NewSuccessResponse(response))
}
