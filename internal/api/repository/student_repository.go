package repository

import (
	"context"
	"ctchen222/student-tracker/internal/api/models"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("api.repository")

// StudentRepository defines the interface for student account operations.
type StudentRepository interface {
	CreateStudent(ctx context.Context, student *models.Student) error
	GetStudentByUsername(ctx context.Context, username string) (*models.Student, error)
}

type sqlStudentRepository struct {
	db *sqlx.DB
}

// NewStudentRepository creates a new SQL-backed StudentRepository.
func NewStudentRepository(db *sqlx.DB) StudentRepository {
	return &sqlStudentRepository{db: db}
}

// CreateStudent inserts a student whose password has already been hashed.
func (r *sqlStudentRepository) CreateStudent(ctx context.Context, student *models.Student) error {
	ctx, span := tracer.Start(ctx, "StudentRepository.CreateStudent")
	defer span.End()

	query := r.db.Rebind(`INSERT INTO StudentInfo (Username, UserPassword) VALUES (?, ?)`)
	_, err := r.db.ExecContext(ctx, query, student.Username, student.PasswordHash)
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to create student: %w", err)
	}
	return nil
}

// GetStudentByUsername retrieves a student by username.
func (r *sqlStudentRepository) GetStudentByUsername(ctx context.Context, username string) (*models.Student, error) {
	ctx, span := tracer.Start(ctx, "StudentRepository.GetStudentByUsername")
	defer span.End()

	var student models.Student
	query := r.db.Rebind(`SELECT Username AS username, UserPassword AS user_password FROM StudentInfo WHERE Username = ?`)
	err := r.db.GetContext(ctx, &student, query, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil // No student found is not an application error
		}
		span.RecordError(err)
		return nil, fmt.Errorf("failed to get student by username: %w", err)
	}
	return &student, nil
}
