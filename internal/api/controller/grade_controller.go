package controller

import (
	"bytes"
	"ctchen222/student-tracker/internal/api/models"
	"ctchen222/student-tracker/internal/api/response"
	"ctchen222/student-tracker/internal/api/service"
	"mime"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// GradeController handles grade HTTP requests.
type GradeController struct {
	gradeService  service.GradeService
	reportService service.ReportService
}

// NewGradeController creates a new GradeController.
func NewGradeController(gradeService service.GradeService, reportService service.ReportService) *GradeController {
	return &GradeController{
		gradeService:  gradeService,
		reportService: reportService,
	}
}

// CreateGlobalGrade handles POST /student/grade.
func (gc *GradeController) CreateGlobalGrade(c *gin.Context) {
	var payload models.GradePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, service.MsgGradeFieldsMissing)
		return
	}

	input, err := gc.gradeService.CreateGlobalGrade(c.Request.Context(), &payload)
	if err != nil {
		handleError(c, err, msgSaveGradeFailed)
		return
	}

	response.SuccessResponseMessage(c, service.GradeMessage(input))
}

// ListGlobalGrades handles GET /student/grade.
func (gc *GradeController) ListGlobalGrades(c *gin.Context) {
	grades, err := gc.gradeService.ListGlobalGrades(c.Request.Context())
	if err != nil {
		handleError(c, err, msgFetchGradesFailed)
		return
	}

	response.SuccessResponseGrades(c, grades)
}

// CreateStudentGrade handles POST /student/grade/:StudentID.
func (gc *GradeController) CreateStudentGrade(c *gin.Context) {
	var payload models.GradePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, service.MsgStudentGradeFieldsMissing)
		return
	}

	input, err := gc.gradeService.CreateStudentGrade(c.Request.Context(), c.Param("StudentID"), &payload)
	if err != nil {
		handleError(c, err, msgSaveStudentFailed)
		return
	}

	response.SuccessResponseMessage(c, service.GradeMessage(input))
}

// ListStudentGrades handles GET /student/grade/:StudentID.
func (gc *GradeController) ListStudentGrades(c *gin.Context) {
	grades, err := gc.gradeService.ListStudentGrades(c.Request.Context(), c.Param("StudentID"))
	if err != nil {
		handleError(c, err, msgFetchStudentFailed)
		return
	}

	response.SuccessResponseGrades(c, grades)
}

// ExportGlobalGrades handles GET /grades/export.
func (gc *GradeController) ExportGlobalGrades(c *gin.Context) {
	f, err := gc.reportService.GlobalGradesWorkbook(c.Request.Context())
	if err != nil {
		handleError(c, err, msgExportFailed)
		return
	}
	defer f.Close()

	writeWorkbook(c, "grades.xlsx", f)
}

// ExportStudentGrades handles GET /student/grade/:StudentID/export.
func (gc *GradeController) ExportStudentGrades(c *gin.Context) {
	studentID := c.Param("StudentID")
	f, err := gc.reportService.StudentGradesWorkbook(c.Request.Context(), studentID)
	if err != nil {
		handleError(c, err, msgExportFailed)
		return
	}
	defer f.Close()

	writeWorkbook(c, studentID+"-grades.xlsx", f)
}

func writeWorkbook(c *gin.Context, filename string, f *excelize.File) {
	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		handleError(c, err, msgExportFailed)
		return
	}

	c.Header("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": filename}))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
