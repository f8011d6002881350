package service

import (
	"context"
	"ctchen222/student-tracker/internal/api/models"
	apirepository "ctchen222/student-tracker/internal/api/repository"
	"ctchen222/student-tracker/internal/repository"
	"ctchen222/student-tracker/internal/validator"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// GradeService defines the interface for grade logic.
type GradeService interface {
	CreateGlobalGrade(ctx context.Context, payload *models.GradePayload) (*models.GradeInput, error)
	ListGlobalGrades(ctx context.Context) ([]models.GlobalGrade, error)
	CreateStudentGrade(ctx context.Context, studentID string, payload *models.GradePayload) (*models.GradeInput, error)
	ListStudentGrades(ctx context.Context, studentID string) ([]models.StudentGrade, error)
}

type gradeService struct {
	gradeRepo apirepository.GradeRepository
	cache     repository.GradeCache
	created   metric.Int64Counter
}

// NewGradeService creates a new GradeService. Listings are read through
// cache and the matching entry is invalidated after every insert.
func NewGradeService(gradeRepo apirepository.GradeRepository, cache repository.GradeCache) GradeService {
	created, err := meter.Int64Counter("grades.created",
		metric.WithDescription("Number of grades recorded"))
	if err != nil {
		otel.Handle(err)
	}
	return &gradeService{gradeRepo: gradeRepo, cache: cache, created: created}
}

func (s *gradeService) CreateGlobalGrade(ctx context.Context, payload *models.GradePayload) (*models.GradeInput, error) {
	input, err := parseGrade("", payload, MsgGradeFieldsMissing)
	if err != nil {
		return nil, err
	}

	if err := s.gradeRepo.CreateGlobalGrade(ctx, input.LetterGrade, input.Percent); err != nil {
		return nil, err
	}
	if err := s.cache.InvalidateGlobalGrades(ctx); err != nil {
		slog.WarnContext(ctx, "failed to invalidate global grade cache", "error", err)
	}

	s.record(ctx, "global")
	return input, nil
}

func (s *gradeService) ListGlobalGrades(ctx context.Context) ([]models.GlobalGrade, error) {
	cached, version, ok, cacheErr := s.cache.GlobalGrades(ctx)
	if cacheErr != nil {
		slog.WarnContext(ctx, "global grade cache read failed", "error", cacheErr)
	} else if ok {
		return cached, nil
	}

	grades, err := s.gradeRepo.ListGlobalGrades(ctx)
	if err != nil {
		return nil, err
	}
	// The fill is tied to the generation read above, so it is dropped if a
	// grade was inserted while the rows were loading.
	if cacheErr == nil {
		if err := s.cache.SetGlobalGrades(ctx, version, grades); err != nil {
			slog.WarnContext(ctx, "global grade cache write failed", "error", err)
		}
	}
	return grades, nil
}

func (s *gradeService) CreateStudentGrade(ctx context.Context, studentID string, payload *models.GradePayload) (*models.GradeInput, error) {
	if err := validator.GetValidator().Var(studentID, "required,notblank"); err != nil {
		return nil, newValidationError(MsgStudentGradeFieldsMissing)
	}
	input, err := parseGrade(studentID, payload, MsgStudentGradeFieldsMissing)
	if err != nil {
		return nil, err
	}

	if err := s.gradeRepo.CreateStudentGrade(ctx, input.StudentID, input.LetterGrade, input.Percent); err != nil {
		return nil, err
	}
	if err := s.cache.InvalidateStudentGrades(ctx, studentID); err != nil {
		slog.WarnContext(ctx, "failed to invalidate student grade cache", "student_id", studentID, "error", err)
	}

	s.record(ctx, "student")
	return input, nil
}

func (s *gradeService) ListStudentGrades(ctx context.Context, studentID string) ([]models.StudentGrade, error) {
	if err := validator.GetValidator().Var(studentID, "required,notblank"); err != nil {
		return nil, newValidationError(MsgStudentIDRequired)
	}

	cached, version, ok, cacheErr := s.cache.StudentGrades(ctx, studentID)
	if cacheErr != nil {
		slog.WarnContext(ctx, "student grade cache read failed", "student_id", studentID, "error", cacheErr)
	} else if ok {
		return cached, nil
	}

	grades, err := s.gradeRepo.ListStudentGrades(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if cacheErr == nil {
		if err := s.cache.SetStudentGrades(ctx, studentID, version, grades); err != nil {
			slog.WarnContext(ctx, "student grade cache write failed", "student_id", studentID, "error", err)
		}
	}
	return grades, nil
}

func (s *gradeService) record(ctx context.Context, scope string) {
	if s.created != nil {
		s.created.Add(ctx, 1, metric.WithAttributes(attribute.String("grade.scope", scope)))
	}
}

// parseGrade turns a raw payload into a GradeInput. Missing fields are
// reported with missingMsg before the percent value is judged.
func parseGrade(studentID string, payload *models.GradePayload, missingMsg string) (*models.GradeInput, error) {
	if payload == nil {
		return nil, newValidationError(missingMsg)
	}

	percent, err := models.ParsePercent(payload.Percent)
	if errors.Is(err, models.ErrPercentMissing) {
		return nil, newValidationError(missingMsg)
	}

	input := &models.GradeInput{
		StudentID:   studentID,
		LetterGrade: strings.TrimSpace(payload.LetterGrade),
		Percent:     percent,
	}
	if verr := validator.GetValidator().Struct(input); verr != nil {
		return nil, newValidationError(missingMsg)
	}
	if err != nil {
		return nil, newValidationError(MsgPercentInvalid)
	}
	return input, nil
}

// GradeMessage formats the confirmation for a saved grade.
func GradeMessage(input *models.GradeInput) string {
	if input.StudentID == "" {
		return fmt.Sprintf("Saved global grade: %s (%d%%)", input.LetterGrade, input.Percent)
	}
	return fmt.Sprintf("Saved grade for %s: %s (%d%%)", input.StudentID, input.LetterGrade, input.Percent)
}
