package controller

import (
	"ctchen222/student-tracker/internal/api/response"
	"ctchen222/student-tracker/internal/api/service"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Generic messages for failures whose details stay server-side.
const (
	msgServerError         = "Server error"
	msgSaveGradeFailed     = "Failed to save grade"
	msgFetchGradesFailed   = "Failed to fetch grades"
	msgSaveStudentFailed   = "Failed to save student grade"
	msgFetchStudentFailed  = "Failed to fetch student grades"
	msgExportFailed        = "Failed to export grades"
	msgDatabaseUnavailable = "database unavailable"
)

// handleError writes a 400 with the validation message, or logs err and
// writes a 500 with the generic fallback.
func handleError(c *gin.Context, err error, fallback string) {
	var verr *service.ValidationError
	if errors.As(err, &verr) {
		response.ErrorResponse(c, http.StatusBadRequest, verr.Message)
		return
	}

	slog.ErrorContext(c.Request.Context(), fallback,
		"method", c.Request.Method,
		"route", c.FullPath(),
		"error", err,
	)
	response.ErrorResponse(c, http.StatusInternalServerError, fallback)
}
