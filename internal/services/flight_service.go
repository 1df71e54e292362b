package services

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"
	"voyago/internal/infra"
	"voyago/internal/models/request_models"
	"voyago/internal/models/response_models"
	"voyago/pkg/utils"
)

const flightCacheTTL = 2 * time.Hour

var iataCodePattern = regexp.MustCompile(`^[A-Z]{3}$`)

type FlightServiceInterface interface {
	SearchFlights(ctx context.Context, params request_models.FlightSearchParams) (*response_models.FlightsResponse, error)
	LookupIataCode(ctx context.Context, cityName string) (string, error)
}

type FlightService struct {
	searchClient utils.FlightSearchClientInterface
	cache        infra.FlightCache
	aiClient     utils.AIClientInterface
	// Singleflight group to prevent cache stampede on identical searches
	searchGroup singleflight.Group
}

func NewFlightService(
	searchClient utils.FlightSearchClientInterface,
	cache infra.FlightCache,
	aiClient utils.AIClientInterface,
) FlightServiceInterface {
	return &FlightService{
		searchClient: searchClient,
		cache:        cache,
		aiClient:     aiClient,
	}
}

// SearchFlights validates and defaults the search parameters, then serves the
// normalized response from cache or from the aggregator. Only successfully
// normalized responses are cached, so a cache hit is always render-ready.
func (s *FlightService) SearchFlights(ctx context.Context, params request_models.FlightSearchParams) (*response_models.FlightsResponse, error) {
	normalized, err := prepareSearchParams(params)
	if err != nil {
		return nil, err
	}

	cacheKey := infra.FlightSearchCacheKey(
		normalized.DepartureID, normalized.ArrivalID,
		normalized.OutboundDate, normalized.ReturnDate,
		normalized.Type, normalized.Stops, normalized.Currency,
	)

	if s.cache != nil {
		var cached response_models.FlightsResponse
		if err := s.cache.GetJSON(ctx, cacheKey, &cached); err == nil {
			log.Printf("Cache hit for flight search key: %s", cacheKey)
			return &cached, nil
		}
	}

	result, err, _ := s.searchGroup.Do(cacheKey, func() (interface{}, error) {
		raw, err := s.searchClient.Search(ctx, normalized)
		if err != nil {
			return nil, err
		}
		return NormalizeFlightsResponse(raw)
	})
	if err != nil {
		return nil, err
	}

	response := result.(*response_models.FlightsResponse)

	if s.cache != nil {
		if err := s.cache.SetJSON(ctx, cacheKey, response, flightCacheTTL); err != nil {
			log.Printf("Failed to cache flight search results: %v", err)
		}
	}

	return response, nil
}

// LookupIataCode asks the model for the primary IATA code of a city. The
// model is instructed to answer with the bare code or "N/A".
func (s *FlightService) LookupIataCode(ctx context.Context, cityName string) (string, error) {
	cityName = strings.TrimSpace(cityName)
	if cityName == "" {
		return "", utils.ErrInvalidInput
	}

	prompt := fmt.Sprintf(`What is the primary 3-letter IATA airport code for the city: %q? Respond with only the 3-letter IATA code in uppercase. For example, for "London", return "LHR". If the city is ambiguous, has no major airport with an IATA code, or is not found, return "N/A".`, cityName)

	responseText, err := s.aiClient.GenerateText(ctx, prompt)
	if err != nil {
		return "", err
	}

	code := strings.ToUpper(strings.TrimSpace(responseText))
	if code == "N/A" || !iataCodePattern.MatchString(code) {
		log.Printf("No usable IATA code for city %q, model returned %q", cityName, responseText)
		return "", utils.ErrAirportCodeNotFound
	}

	return code, nil
}

// prepareSearchParams enforces required fields and fills the aggregator
// defaults: one adult, economy, HUF, English/US locale.
func prepareSearchParams(params request_models.FlightSearchParams) (request_models.FlightSearchParams, error) {
	params.DepartureID = strings.ToUpper(strings.TrimSpace(params.DepartureID))
	params.ArrivalID = strings.ToUpper(strings.TrimSpace(params.ArrivalID))
	params.OutboundDate = strings.TrimSpace(params.OutboundDate)
	params.ReturnDate = strings.TrimSpace(params.ReturnDate)

	if params.DepartureID == "" || params.ArrivalID == "" || params.OutboundDate == "" {
		return params, fmt.Errorf("%w: departure, arrival and outbound date are required", utils.ErrInvalidInput)
	}
	if params.Type != request_models.TripTypeRoundTrip && params.Type != request_models.TripTypeOneWay {
		return params, fmt.Errorf("%w: trip type must be %q or %q", utils.ErrInvalidInput,
			request_models.TripTypeRoundTrip, request_models.TripTypeOneWay)
	}
	if params.Type == request_models.TripTypeRoundTrip && params.ReturnDate == "" {
		return params, fmt.Errorf("%w: return date is required for a round trip", utils.ErrInvalidInput)
	}
	if params.Stops != "" && params.Stops != request_models.StopsAny && params.Stops != request_models.StopsNonstop {
		return params, fmt.Errorf("%w: stops must be %q or %q", utils.ErrInvalidInput,
			request_models.StopsAny, request_models.StopsNonstop)
	}

	if params.Adults <= 0 {
		params.Adults = 1
	}
	if params.Children < 0 {
		params.Children = 0
	}
	if params.TravelClass == "" {
		params.TravelClass = "1"
	}
	if params.Currency == "" {
		params.Currency = "HUF"
	}
	if params.HL == "" {
		params.HL = "en"
	}
	if params.GL == "" {
		params.GL = "us"
	}

	return params, nil
}
