package controller

import (
	"ctchen222/student-tracker/internal/api/models"
	"ctchen222/student-tracker/internal/api/response"
	"ctchen222/student-tracker/internal/api/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

// StudentController handles student account HTTP requests.
type StudentController struct {
	studentService service.StudentService
}

// NewStudentController creates a new StudentController.
func NewStudentController(studentService service.StudentService) *StudentController {
	return &StudentController{
		studentService: studentService,
	}
}

// CreateStudent handles POST /students.
func (sc *StudentController) CreateStudent(c *gin.Context) {
	var payload models.CreateStudentPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, service.MsgCredentialsRequired)
		return
	}

	username, err := sc.studentService.CreateStudent(c.Request.Context(), &payload)
	if err != nil {
		handleError(c, err, msgServerError)
		return
	}

	response.SuccessResponse(c, gin.H{
		"message":   "Student created",
		"usernames": username,
	})
}
