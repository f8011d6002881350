package controller

import (
	"ctchen222/student-tracker/internal/docs"
	"net/http"

	"github.com/gin-gonic/gin"
)

// DocsController serves the OpenAPI description of the API.
type DocsController struct{}

func NewDocsController() *DocsController {
	return &DocsController{}
}

// OpenAPIYAML handles GET /api-docs/openapi.yaml.
func (dc *DocsController) OpenAPIYAML(c *gin.Context) {
	c.Data(http.StatusOK, "application/yaml", docs.YAML())
}

// OpenAPIJSON handles GET /api-docs/openapi.json.
func (dc *DocsController) OpenAPIJSON(c *gin.Context) {
	data, err := docs.JSON()
	if err != nil {
		handleError(c, err, msgServerError)
		return
	}
	c.Data(http.StatusOK, "application/json", data)
}
