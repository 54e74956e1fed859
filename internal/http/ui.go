// README: Minimal web UI serving the plan request form.
package http

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"voyago/internal/modules/plan"
)

//go:embed templates/index.html
var templateFS embed.FS

var indexTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html"))

type indexData struct {
	Themes       []string
	Budgets      []string
	HotelRatings []string
}

// Index serves the single-page plan request form.
func (s *Server) Index(c *gin.Context) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	_ = indexTemplate.Execute(c.Writer, indexData{
		Themes:       plan.TravelThemes,
		Budgets:      plan.BudgetOptions,
		HotelRatings: plan.HotelRatings,
	})
}
