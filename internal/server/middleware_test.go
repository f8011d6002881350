package server

import (
	"context"
	"ctchen222/student-tracker/internal/api/controller"
	"ctchen222/student-tracker/internal/api/models"
	"ctchen222/student-tracker/internal/api/repository/mocks"
	"ctchen222/student-tracker/internal/api/service"
	"ctchen222/student-tracker/internal/repository"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func TestRequestTimeout_CancelsBlockedHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(requestTimeout(20 * time.Millisecond))

	var ctxErr error
	engine.GET("/slow", func(c *gin.Context) {
		select {
		case <-c.Request.Context().Done():
			ctxErr = c.Request.Context().Err()
			c.String(http.StatusInternalServerError, "deadline")
		case <-time.After(5 * time.Second):
			c.String(http.StatusOK, "finished")
		}
	})

	start := time.Now()
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/slow", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "deadline", rec.Body.String())
	assert.True(t, errors.Is(ctxErr, context.DeadlineExceeded), "got %v", ctxErr)
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestRequestTimeout_SetsDeadline(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(requestTimeout(time.Minute))

	var (
		deadline time.Time
		ok       bool
	)
	engine.GET("/fast", func(c *gin.Context) {
		deadline, ok = c.Request.Context().Deadline()
		c.Status(http.StatusNoContent)
	})

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/fast", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	require.True(t, ok)
	assert.WithinDuration(t, time.Now().Add(time.Minute), deadline, 5*time.Second)
}

func TestSlowRepositoryYieldsGeneric500(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	gradeRepo := mocks.NewMockGradeRepository(ctrl)
	studentRepo := mocks.NewMockStudentRepository(ctrl)

	gradeRepo.EXPECT().ListGlobalGrades(gomock.Any()).DoAndReturn(func(ctx context.Context) ([]models.GlobalGrade, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	})
	gradeRepo.EXPECT().ListStudentGrades(gomock.Any(), "alex").DoAndReturn(func(ctx context.Context, _ string) ([]models.StudentGrade, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	})

	gradeService := service.NewGradeService(gradeRepo, repository.NewNopGradeCache())
	srv := NewServer(Options{ServiceName: "student-tracker-test", RequestTimeout: 30 * time.Millisecond}, Controllers{
		Student: controller.NewStudentController(service.NewStudentService(studentRepo, service.NewBcryptHasher(bcrypt.MinCost))),
		Grade:   controller.NewGradeController(gradeService, service.NewReportService(gradeService)),
		Health:  controller.NewHealthController(nil),
		Docs:    controller.NewDocsController(),
	})
	h := srv.Engine()

	rec := do(t, h, http.MethodGet, "/student/grade", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"success":false,"message":"Failed to fetch grades"}`, rec.Body.String())

	rec = do(t, h, http.MethodGet, "/student/grade/alex", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"success":false,"message":"Failed to fetch student grades"}`, rec.Body.String())
}
