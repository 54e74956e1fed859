// README: API gateway; registers HTTP routes and delegates to module services.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"voyago/internal/http/handlers"
	"voyago/internal/http/middleware"
	"voyago/internal/modules/flight"
	"voyago/internal/modules/plan"
)

type ServerDeps struct {
	Plan   *plan.Service
	Flight *flight.Service
}

type Server struct {
	plan   *plan.Service
	flight *flight.Service
}

func NewServer(deps ServerDeps) *Server {
	return &Server{
		plan:   deps.Plan,
		flight: deps.Flight,
	}
}

func (s *Server) Routes() http.Handler {
	r := gin.New()
	r.Use(middleware.Logging(), middleware.Recovery())

	r.GET("/", s.Index)

	planHandler := handlers.NewPlanHandler(s.plan)
	r.POST("/api/plans", planHandler.Create)
	r.GET("/api/plans/:id", planHandler.Get)
	r.GET("/api/plans/:id/download", planHandler.Download)

	flightHandler := handlers.NewFlightHandler(s.flight)
	r.POST("/api/flights/search", flightHandler.Search)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	return r
}
