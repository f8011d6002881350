package server

import (
	"ctchen222/student-tracker/internal/api/controller"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// Controllers groups the handlers the router dispatches to.
type Controllers struct {
	Student *controller.StudentController
	Grade   *controller.GradeController
	Health  *controller.HealthController
	Docs    *controller.DocsController
}

// Options configures the engine built by NewServer.
type Options struct {
	ServiceName    string
	RequestTimeout time.Duration
}

type Server struct {
	engine *gin.Engine
}

func NewServer(opts Options, ctrls Controllers) *Server {
	engine := gin.New()
	engine.Use(
		gin.Recovery(),
		otelgin.Middleware(opts.ServiceName),
		requestID(),
		requestLogger(),
		cors.Default(),
		requestTimeout(opts.RequestTimeout),
	)

	s := &Server{engine: engine}
	s.RegisterHandlers(ctrls)
	return s
}

func (s *Server) RegisterHandlers(ctrls Controllers) {
	s.engine.POST("/students", ctrls.Student.CreateStudent)

	grades := s.engine.Group("/student/grade")
	{
		grades.POST("", ctrls.Grade.CreateGlobalGrade)
		grades.GET("", ctrls.Grade.ListGlobalGrades)
		grades.POST("/:StudentID", ctrls.Grade.CreateStudentGrade)
		grades.GET("/:StudentID", ctrls.Grade.ListStudentGrades)
		grades.GET("/:StudentID/export", ctrls.Grade.ExportStudentGrades)
	}
	s.engine.GET("/grades/export", ctrls.Grade.ExportGlobalGrades)

	s.engine.GET("/api-docs/openapi.yaml", ctrls.Docs.OpenAPIYAML)
	s.engine.GET("/api-docs/openapi.json", ctrls.Docs.OpenAPIJSON)
	s.engine.GET("/healthz", ctrls.Health.Health)
}

// Engine exposes the router as the http.Handler of the HTTP server.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}
