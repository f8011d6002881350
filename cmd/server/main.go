package main

import (
	"context"
	"ctchen222/student-tracker/internal/api/controller"
	apirepository "ctchen222/student-tracker/internal/api/repository"
	"ctchen222/student-tracker/internal/api/service"
	"ctchen222/student-tracker/internal/config"
	"ctchen222/student-tracker/internal/db"
	"ctchen222/student-tracker/internal/logger"
	"ctchen222/student-tracker/internal/repository"
	"ctchen222/student-tracker/internal/server"
	"ctchen222/student-tracker/internal/telemetry"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	gin.SetMode(cfg.GinMode)

	// Initialize telemetry
	shutdown, err := telemetry.InitOtel(ctx, cfg.Otel)
	if err != nil {
		log.Fatalf("failed to initialize telemetry: %v", err)
	}
	defer func() {
		if err := shutdown(ctx); err != nil {
			log.Printf("Error shutting down telemetry: %v", err)
		}
	}()

	logger.Init(cfg.Level())

	// Initialize the relational database
	DB, err := db.Connect(ctx, cfg.DB)
	if err != nil {
		log.Fatalf("failed to connect to %s database: %v", cfg.DB.Driver, err)
	}
	defer DB.Close()

	if cfg.DB.InitSchema {
		if err := db.InitializeDB(ctx, DB); err != nil {
			log.Fatalf("failed to initialize database schema: %v", err)
		}
	}

	// Initialize the grade cache
	gradeCache := repository.NewNopGradeCache()
	if cfg.Redis.Addr != "" {
		rdb, err := db.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			log.Fatalf("failed to initialize redis: %v", err)
		}
		defer rdb.Close()
		gradeCache = repository.NewGradeCache(rdb, cfg.Redis.TTL)
		slog.Info("grade cache enabled", "addr", cfg.Redis.Addr, "ttl", cfg.Redis.TTL)
	}

	// Create repositories
	studentRepo := apirepository.NewStudentRepository(DB)
	gradeRepo := apirepository.NewGradeRepository(DB)

	// Create services
	studentService := service.NewStudentService(studentRepo, service.NewBcryptHasher(cfg.BcryptCost))
	gradeService := service.NewGradeService(gradeRepo, gradeCache)
	reportService := service.NewReportService(gradeService)

	// Create the Gin-based server
	srv := server.NewServer(
		server.Options{ServiceName: cfg.Otel.ServiceName, RequestTimeout: cfg.RequestTimeout},
		server.Controllers{
			Student: controller.NewStudentController(studentService),
			Grade:   controller.NewGradeController(gradeService, reportService),
			Health:  controller.NewHealthController(DB),
			Docs:    controller.NewDocsController(),
		},
	)

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	httpServer := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: srv.Engine(),
	}

	go func() {
		slog.Info("http server started", "addr", cfg.HTTPAddr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("ListenAndServe: %v", err)
		}
	}()

	<-stop

	slog.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	slog.Info("Server exiting")
}
