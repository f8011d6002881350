package service

import (
	"bytes"
	"context"
	"ctchen222/student-tracker/internal/api/models"
	"ctchen222/student-tracker/internal/api/repository/mocks"
	"ctchen222/student-tracker/internal/repository"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/mock/gomock"
)

func readRows(t *testing.T, f *excelize.File) [][]string {
	t.Helper()
	defer f.Close()

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))

	reopened, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer reopened.Close()

	rows, err := reopened.GetRows(reportSheet)
	require.NoError(t, err)
	return rows
}

func TestReportService_GlobalGradesWorkbook(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockGradeRepository(ctrl)
	svc := NewReportService(NewGradeService(repo, repository.NewNopGradeCache()))
	ctx := context.Background()

	repo.EXPECT().ListGlobalGrades(ctx).Return([]models.GlobalGrade{
		{ID: 2, LetterGrade: "B", PercentValue: 82},
		{ID: 1, LetterGrade: "A", PercentValue: 95},
	}, nil)

	f, err := svc.GlobalGradesWorkbook(ctx)
	require.NoError(t, err)

	assert.Equal(t, [][]string{
		{"Id", "LetterGrade", "PercentValue"},
		{"2", "B", "82"},
		{"1", "A", "95"},
	}, readRows(t, f))
}

func TestReportService_StudentGradesWorkbook(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockGradeRepository(ctrl)
	svc := NewReportService(NewGradeService(repo, repository.NewNopGradeCache()))
	ctx := context.Background()

	repo.EXPECT().ListStudentGrades(ctx, "alex").Return([]models.StudentGrade{
		{StudentID: "alex", LetterGrade: "A", PercentValue: 97},
		{StudentID: "alex", LetterGrade: "C", PercentValue: 72},
	}, nil)

	f, err := svc.StudentGradesWorkbook(ctx, "alex")
	require.NoError(t, err)

	assert.Equal(t, [][]string{
		{"StudentID", "LetterGrade", "PercentValue"},
		{"alex", "A", "97"},
		{"alex", "C", "72"},
	}, readRows(t, f))
}

func TestReportService_EmptyWorkbookHasHeaderOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockGradeRepository(ctrl)
	svc := NewReportService(NewGradeService(repo, repository.NewNopGradeCache()))
	ctx := context.Background()

	repo.EXPECT().ListStudentGrades(ctx, "nobody").Return([]models.StudentGrade{}, nil)

	f, err := svc.StudentGradesWorkbook(ctx, "nobody")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"StudentID", "LetterGrade", "PercentValue"}}, readRows(t, f))
}

func TestReportService_PropagatesListFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockGradeRepository(ctrl)
	svc := NewReportService(NewGradeService(repo, repository.NewNopGradeCache()))
	ctx := context.Background()

	repo.EXPECT().ListGlobalGrades(ctx).Return(nil, errors.New("timeout"))

	_, err := svc.GlobalGradesWorkbook(ctx)
	assert.Error(t, err)
}
