package response

import (
	"ctchen222/student-tracker/internal/api/models"
	"net/http"

	"github.com/gin-gonic/gin"
)

// SuccessResponse returns a 200 JSON object with success set to true and
// the given fields alongside it.
func SuccessResponse(c *gin.Context, fields gin.H) {
	body := gin.H{"success": true}
	for k, v := range fields {
		body[k] = v
	}
	c.JSON(http.StatusOK, body)
}

// SuccessResponseMessage returns a JSON response with a success message
func SuccessResponseMessage(c *gin.Context, message string) {
	SuccessResponse(c, gin.H{"message": message})
}

// SuccessResponseGrades returns a JSON response with a list of grades. A nil
// list is sent as [] rather than null.
func SuccessResponseGrades[T models.GlobalGrade | models.StudentGrade](c *gin.Context, grades []T) {
	if grades == nil {
		grades = []T{}
	}
	SuccessResponse(c, gin.H{"grades": grades})
}

func ErrorResponse(c *gin.Context, code int, message string) {
	c.JSON(code, NewError(message))
}
