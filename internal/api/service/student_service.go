package service

import (
	"context"
	"ctchen222/student-tracker/internal/api/models"
	"ctchen222/student-tracker/internal/api/repository"
	"ctchen222/student-tracker/internal/validator"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

var meter = otel.Meter("api.service")

// StudentService defines the interface for student account logic.
type StudentService interface {
	CreateStudent(ctx context.Context, payload *models.CreateStudentPayload) (string, error)
}

type studentService struct {
	studentRepo repository.StudentRepository
	hasher      PasswordHasher
	created     metric.Int64Counter
}

// NewStudentService creates a new StudentService.
func NewStudentService(studentRepo repository.StudentRepository, hasher PasswordHasher) StudentService {
	created, err := meter.Int64Counter("students.created",
		metric.WithDescription("Number of student accounts created"))
	if err != nil {
		otel.Handle(err)
	}
	return &studentService{studentRepo: studentRepo, hasher: hasher, created: created}
}

// CreateStudent validates the payload, hashes the password and stores the
// account. Usernames are stored trimmed. It returns the stored username.
func (s *studentService) CreateStudent(ctx context.Context, payload *models.CreateStudentPayload) (string, error) {
	input := &models.StudentInput{Username: strings.TrimSpace(payload.Usernames), Password: payload.Password}
	if err := validator.GetValidator().Struct(input); err != nil {
		return "", newValidationError(MsgCredentialsRequired)
	}
	if len(input.Password) > maxPasswordBytes {
		return "", newValidationError(MsgPasswordTooLong)
	}

	// Check if student already exists
	existing, err := s.studentRepo.GetStudentByUsername(ctx, input.Username)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return "", newValidationError(MsgUsernameTaken)
	}

	hashed, err := s.hasher.Hash(input.Password)
	if err != nil {
		return "", err
	}

	student := &models.Student{Username: input.Username, PasswordHash: hashed}
	if err := s.studentRepo.CreateStudent(ctx, student); err != nil {
		return "", fmt.Errorf("create student %s: %w", input.Username, err)
	}

	if s.created != nil {
		s.created.Add(ctx, 1)
	}
	return input.Username, nil
}
