package repository

import (
	"context"
	"ctchen222/student-tracker/internal/api/models"
	"ctchen222/student-tracker/internal/config"
	"ctchen222/student-tracker/internal/db"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	ctx := context.Background()

	conn, err := db.Connect(ctx, config.DBConfig{Driver: config.DriverSQLite, DSN: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	require.NoError(t, db.InitializeDB(ctx, conn))
	return conn
}

func TestStudentRepository_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo := NewStudentRepository(newTestDB(t))

	err := repo.CreateStudent(ctx, &models.Student{Username: "alex", PasswordHash: "$2a$10$hash"})
	require.NoError(t, err)

	got, err := repo.GetStudentByUsername(ctx, "alex")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "alex", got.Username)
	assert.Equal(t, "$2a$10$hash", got.PasswordHash)
}

func TestStudentRepository_GetMissing(t *testing.T) {
	repo := NewStudentRepository(newTestDB(t))

	got, err := repo.GetStudentByUsername(context.Background(), "nobody")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestStudentRepository_DuplicateUsername(t *testing.T) {
	ctx := context.Background()
	repo := NewStudentRepository(newTestDB(t))

	require.NoError(t, repo.CreateStudent(ctx, &models.Student{Username: "alex", PasswordHash: "h1"}))
	err := repo.CreateStudent(ctx, &models.Student{Username: "alex", PasswordHash: "h2"})
	assert.Error(t, err)
}

func TestGradeRepository_GlobalGradesNewestFirst(t *testing.T) {
	ctx := context.Background()
	repo := NewGradeRepository(newTestDB(t))

	empty, err := repo.ListGlobalGrades(ctx)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	require.NoError(t, repo.CreateGlobalGrade(ctx, "C", 75))
	require.NoError(t, repo.CreateGlobalGrade(ctx, "A", 95))
	require.NoError(t, repo.CreateGlobalGrade(ctx, "B", 85))

	grades, err := repo.ListGlobalGrades(ctx)
	require.NoError(t, err)
	require.Len(t, grades, 3)

	assert.Equal(t, "B", grades[0].LetterGrade)
	assert.Equal(t, 85, grades[0].PercentValue)
	assert.Equal(t, "A", grades[1].LetterGrade)
	assert.Equal(t, "C", grades[2].LetterGrade)
	assert.Greater(t, grades[0].ID, grades[1].ID)
	assert.Greater(t, grades[1].ID, grades[2].ID)
}

func TestGradeRepository_IdenticalInsertsAreDistinctRows(t *testing.T) {
	ctx := context.Background()
	repo := NewGradeRepository(newTestDB(t))

	require.NoError(t, repo.CreateGlobalGrade(ctx, "A", 95))
	require.NoError(t, repo.CreateGlobalGrade(ctx, "A", 95))

	grades, err := repo.ListGlobalGrades(ctx)
	require.NoError(t, err)
	require.Len(t, grades, 2)
	assert.NotEqual(t, grades[0].ID, grades[1].ID)
}

func TestGradeRepository_StudentGradesRankedAndIsolated(t *testing.T) {
	ctx := context.Background()
	repo := NewGradeRepository(newTestDB(t))

	require.NoError(t, repo.CreateStudentGrade(ctx, "alex", "C", 70))
	require.NoError(t, repo.CreateStudentGrade(ctx, "alex", "A", 98))
	require.NoError(t, repo.CreateStudentGrade(ctx, "sam", "A", 99))
	require.NoError(t, repo.CreateStudentGrade(ctx, "alex", "B", 85))

	grades, err := repo.ListStudentGrades(ctx, "alex")
	require.NoError(t, err)
	require.Len(t, grades, 3)

	assert.Equal(t, []int{98, 85, 70}, []int{grades[0].PercentValue, grades[1].PercentValue, grades[2].PercentValue})
	for _, g := range grades {
		assert.Equal(t, "alex", g.StudentID)
	}

	none, err := repo.ListStudentGrades(ctx, "unknown")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestGradeRepository_StudentIDIsBoundNotInterpolated(t *testing.T) {
	ctx := context.Background()
	repo := NewGradeRepository(newTestDB(t))

	require.NoError(t, repo.CreateStudentGrade(ctx, "alex", "A", 90))

	grades, err := repo.ListStudentGrades(ctx, "' OR '1'='1")
	require.NoError(t, err)
	assert.Empty(t, grades)
}
