// README: Flight search handler.
package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"voyago/internal/modules/flight"
)

const flightSearchTimeout = 45 * time.Second

type FlightHandler struct {
	flights *flight.Service
}

func NewFlightHandler(svc *flight.Service) *FlightHandler {
	return &FlightHandler{flights: svc}
}

type flightSearchReq struct {
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	DepartureDate string `json:"departure_date"` // YYYY-MM-DD
	ReturnDate    string `json:"return_date"`    // YYYY-MM-DD
}

// Search handles POST /api/flights/search.
func (h *FlightHandler) Search(c *gin.Context) {
	var req flightSearchReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	req.Origin = strings.ToUpper(strings.TrimSpace(req.Origin))
	req.Destination = strings.ToUpper(strings.TrimSpace(req.Destination))
	if len(req.Origin) != 3 || len(req.Destination) != 3 {
		writeError(c, http.StatusBadRequest, "origin and destination must be 3-letter IATA codes")
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

	ctx, cancel := context.WithTimeout(c.Request.Context(), flightSearchTimeout)
	defer cancel()

	options, err := h.flights.Search(ctx, flight.Query{
		Origin:        req.Origin,
		Destination:   req.Destination,
		DepartureDate: departure,
		ReturnDate:    ret,
	})
	if err != nil {
		writeError(c, http.StatusBadGateway, "flight search failed")
		return
	}

	writeJSON(c, http.StatusOK, map[string]any{"flights": options})
}
