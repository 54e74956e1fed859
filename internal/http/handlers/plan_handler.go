// README: Plan handlers for generate/get/download.
package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"voyago/internal/modules/plan"
)

// generateTimeout bounds the whole pipeline: one flight search plus three
// LLM calls, each of which can take tens of seconds.
const generateTimeout = 3 * time.Minute

type PlanHandler struct {
	plans *plan.Service
}

func NewPlanHandler(svc *plan.Service) *PlanHandler {
	return &PlanHandler{plans: svc}
}

type createPlanReq struct {
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	Days          int    `json:"days"`
	Theme         string `json:"theme"`
	DepartureDate string `json:"departure_date"` // YYYY-MM-DD
	ReturnDate    string `json:"return_date"`    // YYYY-MM-DD
	Preferences   string `json:"preferences"`
	Budget        string `json:"budget"`
	HotelRating   string `json:"hotel_rating"`
}

// Create handles POST /api/plans.
func (h *PlanHandler) Create(c *gin.Context) {
	var req createPlanReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	departure, err := time.Parse("2006-01-02", req.DepartureDate)
	if err != nil {
		writeError(c, http.StatusBadRequest, "departure_date must be YYYY-MM-DD")
		return
	}
	ret, err := time.Parse("2006-01-02", req.ReturnDate)
	if err != nil {
		writeError(c, http.StatusBadRequest, "return_date must be YYYY-MM-DD")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), generateTimeout)
	defer cancel()

	p, err := h.plans.Generate(ctx, plan.Request{
		Origin:        req.Origin,
		Destination:   req.Destination,
		Days:          req.Days,
		Theme:         req.Theme,
		DepartureDate: departure,
		ReturnDate:    ret,
		Preferences:   req.Preferences,
		Budget:        req.Budget,
		HotelRating:   req.HotelRating,
	})
	if err != nil {
		writePlanError(c, err)
		return
	}

	writeJSON(c, http.StatusCreated, p)
}

// Get handles GET /api/plans/:id.
func (h *PlanHandler) Get(c *gin.Context) {
	id := c.Param("id")
	if !isValidID(id) {
		writeError(c, http.StatusBadRequest, "invalid plan id")
		return
	}

	p, err := h.plans.Get(c.Request.Context(), id)
	if err != nil {
		writePlanError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, p)
}

// Download handles GET /api/plans/:id/download, returning the document as a
// markdown attachment.
func (h *PlanHandler) Download(c *gin.Context) {
	id := c.Param("id")
	if !isValidID(id) {
		writeError(c, http.StatusBadRequest, "invalid plan id")
		return
	}

	p, err := h.plans.Get(c.Request.Context(), id)
	if err != nil {
		writePlanError(c, err)
		return
	}

	filename := fmt.Sprintf("travel_plan_%s.md", p.Destination)
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/markdown; charset=utf-8", []byte(p.Document))
}
