package controller

import (
	"context"
	"ctchen222/student-tracker/internal/api/response"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Pinger is satisfied by *sqlx.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthController reports whether the database is reachable.
type HealthController struct {
	db Pinger
}

func NewHealthController(db Pinger) *HealthController {
	return &HealthController{db: db}
}

// Health handles GET /healthz.
func (hc *HealthController) Health(c *gin.Context) {
	if err := hc.db.PingContext(c.Request.Context()); err != nil {
		slog.ErrorContext(c.Request.Context(), "health check failed", "error", err)
		response.ErrorResponse(c, http.StatusInternalServerError, msgDatabaseUnavailable)
		return
	}
	response.SuccessResponseMessage(c, "ok")
}
