package repository

import (
	"context"
	"ctchen222/student-tracker/internal/api/models"
	"fmt"

	"github.com/jmoiron/sqlx"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=grade_repository.go -destination=mocks/mock_grade_repository.go -package=mocks
//go:generate mockgen -source=student_repository.go -destination=mocks/mock_student_repository.go -package=mocks

// GradeRepository defines the interface for grade data operations.
type GradeRepository interface {
	CreateGlobalGrade(ctx context.Context, letterGrade string, percent int) error
	ListGlobalGrades(ctx context.Context) ([]models.GlobalGrade, error)
	CreateStudentGrade(ctx context.Context, studentID, letterGrade string, percent int) error
	ListStudentGrades(ctx context.Context, studentID string) ([]models.StudentGrade, error)
}

type sqlGradeRepository struct {
	db *sqlx.DB
}

// NewGradeRepository creates a new SQL-backed GradeRepository.
func NewGradeRepository(db *sqlx.DB) GradeRepository {
	return &sqlGradeRepository{db: db}
}

// CreateGlobalGrade inserts a grade that belongs to no student.
func (r *sqlGradeRepository) CreateGlobalGrade(ctx context.Context, letterGrade string, percent int) error {
	ctx, span := tracer.Start(ctx, "GradeRepository.CreateGlobalGrade")
	defer span.End()

	query := r.db.Rebind(`INSERT INTO StudentGrades (LetterGrade, PercentValue) VALUES (?, ?)`)
	if _, err := r.db.ExecContext(ctx, query, letterGrade, percent); err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to create global grade: %w", err)
	}
	return nil
}

// ListGlobalGrades returns every global grade, most recently inserted first.
func (r *sqlGradeRepository) ListGlobalGrades(ctx context.Context) ([]models.GlobalGrade, error) {
	ctx, span := tracer.Start(ctx, "GradeRepository.ListGlobalGrades")
	defer span.End()

	grades := []models.GlobalGrade{}
	query := `SELECT Id AS id, LetterGrade AS letter_grade, PercentValue AS percent_value
		FROM StudentGrades
		ORDER BY Id DESC`
	if err := r.db.SelectContext(ctx, &grades, query); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to list global grades: %w", err)
	}
	span.SetAttributes(attribute.Int("grades.count", len(grades)))
	return grades, nil
}

// CreateStudentGrade inserts a grade for one student.
func (r *sqlGradeRepository) CreateStudentGrade(ctx context.Context, studentID, letterGrade string, percent int) error {
	ctx, span := tracer.Start(ctx, "GradeRepository.CreateStudentGrade")
	defer span.End()
	span.SetAttributes(attribute.String("student.id", studentID))

	query := r.db.Rebind(`INSERT INTO LocalStudentGrade (StudentID, LetterGrade, PercentValue) VALUES (?, ?, ?)`)
	if _, err := r.db.ExecContext(ctx, query, studentID, letterGrade, percent); err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to create grade for student %s: %w", studentID, err)
	}
	return nil
}

// ListStudentGrades returns one student's grades, highest percent first.
// Equal percents fall back to insertion order, newest first.
func (r *sqlGradeRepository) ListStudentGrades(ctx context.Context, studentID string) ([]models.StudentGrade, error) {
	ctx, span := tracer.Start(ctx, "GradeRepository.ListStudentGrades")
	defer span.End()
	span.SetAttributes(attribute.String("student.id", studentID))

	grades := []models.StudentGrade{}
	query := r.db.Rebind(`SELECT StudentID AS student_id, LetterGrade AS letter_grade, PercentValue AS percent_value
		FROM LocalStudentGrade
		WHERE StudentID = ?
		ORDER BY PercentValue DESC, Id DESC`)
	if err := r.db.SelectContext(ctx, &grades, query, studentID); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to list grades for student %s: %w", studentID, err)
	}
	span.SetAttributes(attribute.Int("grades.count", len(grades)))
	return grades, nil
}
