// README: Flight service searches fares and extracts the cheapest options.
package flight

import (
	"context"
	"log"
	"math"
	"sort"

	"voyago/internal/search"
	"voyago/internal/types"
)

const dateLayout = "2006-01-02"

// bookingURLPrefix is where Google Flights resolves booking tokens.
const bookingURLPrefix = "https://www.google.com/travel/flights?tfs="

// Searcher is the slice of the SerpAPI client the flight service needs.
type Searcher interface {
	SearchFlights(ctx context.Context, q search.FlightQuery) (*search.FlightResults, error)
}

type Service struct {
	searcher Searcher
	store    *Store
	currency string
	limit    int
}

// NewService creates a Service. store may be nil to disable caching.
func NewService(searcher Searcher, store *Store, currency string, limit int) *Service {
	if limit <= 0 {
		limit = 3
	}
	if currency == "" {
		currency = "USD"
	}
	return &Service{searcher: searcher, store: store, currency: currency, limit: limit}
}

// Search returns the cheapest options for the query, at most the configured
// limit, sorted by price ascending. An empty result is not an error.
func (s *Service) Search(ctx context.Context, q Query) ([]Option, error) {
	if s.store != nil {
		if cached, err := s.store.GetCached(ctx, q); err == nil && cached != nil {
			return cached, nil
		}
	}

	results, err := s.searcher.SearchFlights(ctx, s.buildQuery(q, ""))
	if err != nil {
		return nil, err
	}

	offers := results.BestFlights
	if len(offers) == 0 {
		offers = results.OtherFlights
	}

	// Offers sometimes arrive without a price; rank those last so they
	// cannot displace real fares from the top of the list.
	sort.Slice(offers, func(i, j int) bool {
		return sortPrice(offers[i].Price) < sortPrice(offers[j].Price)
	})
	if len(offers) > s.limit {
		offers = offers[:s.limit]
	}

	options := make([]Option, 0, len(offers))
	for _, offer := range offers {
		opt := s.extractOption(offer)
		opt.BookingURL = s.bookingURL(ctx, q, opt.DepartureToken)
		options = append(options, opt)
	}

	if s.store != nil && len(options) > 0 {
		if err := s.store.SetCached(ctx, q, options); err != nil {
			log.Printf("flight cache write failed: %v", err)
		}
	}

	return options, nil
}

func sortPrice(p int64) int64 {
	if p <= 0 {
		return math.MaxInt64
	}
	return p
}

func (s *Service) buildQuery(q Query, departureToken string) search.FlightQuery {
	return search.FlightQuery{
		DepartureID:    q.Origin,
		ArrivalID:      q.Destination,
		OutboundDate:   q.DepartureDate.Format(dateLayout),
		ReturnDate:     q.ReturnDate.Format(dateLayout),
		Currency:       s.currency,
		Language:       "en",
		DepartureToken: departureToken,
	}
}

// extractOption flattens an offer. The first leg supplies the airline and
// departure endpoint, the last leg the arrival endpoint.
func (s *Service) extractOption(offer search.FlightOffer) Option {
	opt := Option{
		Airline:         "Unknown Airline",
		AirlineLogo:     offer.AirlineLogo,
		Price:           types.Money{Amount: offer.Price, Currency: s.currency},
		DurationMinutes: offer.TotalDuration,
		BookingURL:      "#",
		DepartureToken:  offer.DepartureToken,
	}

	if len(offer.Legs) == 0 {
		return opt
	}

	first := offer.Legs[0]
	last := offer.Legs[len(offer.Legs)-1]

	if first.Airline != "" {
		opt.Airline = first.Airline
	}
	opt.DepartureAirport = first.DepartureAirport.ID
	opt.DepartureAirportName = first.DepartureAirport.Name
	opt.DepartureTime = first.DepartureAirport.Time
	opt.ArrivalAirport = last.ArrivalAirport.ID
	opt.ArrivalAirportName = last.ArrivalAirport.Name
	opt.ArrivalTime = last.ArrivalAirport.Time
	opt.Layovers = len(offer.Legs) - 1

	return opt
}

// bookingURL resolves a departure token into a booking link through a
// follow-up search. Any failure degrades to "#" rather than failing the
// whole lookup.
func (s *Service) bookingURL(ctx context.Context, q Query, departureToken string) string {
	if departureToken == "" {
		return "#"
	}

	results, err := s.searcher.SearchFlights(ctx, s.buildQuery(q, departureToken))
	if err != nil {
		log.Printf("booking link lookup failed: %v", err)
		return "#"
	}

	offers := results.BestFlights
	if len(offers) == 0 {
		offers = results.OtherFlights
	}
	for _, offer := range offers {
		if offer.BookingToken != "" {
			return bookingURLPrefix + offer.BookingToken
		}
	}
	return "#"
}
