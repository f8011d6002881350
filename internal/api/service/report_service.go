package service

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
)

const reportSheet = "Grades"

// ReportService builds spreadsheet exports of grade listings.
type ReportService interface {
	GlobalGradesWorkbook(ctx context.Context) (*excelize.File, error)
	StudentGradesWorkbook(ctx context.Context, studentID string) (*excelize.File, error)
}

type reportService struct {
	grades GradeService
}

// NewReportService creates a ReportService that reads through grades, so
// exports follow the same ordering as the JSON listings.
func NewReportService(grades GradeService) ReportService {
	return &reportService{grades: grades}
}

func (s *reportService) GlobalGradesWorkbook(ctx context.Context) (*excelize.File, error) {
	grades, err := s.grades.ListGlobalGrades(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([][]any, 0, len(grades))
	for _, g := range grades {
		rows = append(rows, []any{g.ID, g.LetterGrade, g.PercentValue})
	}
	return buildWorkbook([]any{"Id", "LetterGrade", "PercentValue"}, rows)
}

func (s *reportService) StudentGradesWorkbook(ctx context.Context, studentID string) (*excelize.File, error) {
	grades, err := s.grades.ListStudentGrades(ctx, studentID)
	if err != nil {
		return nil, err
	}

	rows := make([][]any, 0, len(grades))
	for _, g := range grades {
		rows = append(rows, []any{g.StudentID, g.LetterGrade, g.PercentValue})
	}
	return buildWorkbook([]any{"StudentID", "LetterGrade", "PercentValue"}, rows)
}

func buildWorkbook(header []any, rows [][]any) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", reportSheet); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to name report sheet: %w", err)
	}

	if err := f.SetSheetRow(reportSheet, "A1", &header); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to write report header: %w", err)
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}
	lastHeader, err := excelize.CoordinatesToCellName(len(header), 1)
	if err != nil {
		f.Close()
		return nil, err
	}
	if err := f.SetCellStyle(reportSheet, "A1", lastHeader, bold); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to style report header: %w", err)
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			f.Close()
			return nil, err
		}
		if err := f.SetSheetRow(reportSheet, cell, &row); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to write report row %d: %w", i+1, err)
		}
	}
	return f, nil
}
