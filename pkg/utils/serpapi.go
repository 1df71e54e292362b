package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"time"

	"voyago/internal/models/request_models"
	"voyago/internal/models/response_models"
)

const defaultSerpApiBaseURL = "https://serpapi.com/search"

// FlightSearchClientInterface abstracts the hosted flight search aggregator.
type FlightSearchClientInterface interface {
	Search(ctx context.Context, params request_models.FlightSearchParams) (*response_models.FlightsResponse, error)
}

// SerpApiClient queries the SerpApi google_flights engine.
type SerpApiClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewSerpApiClient() *SerpApiClient {
	baseURL := os.Getenv("SERPAPI_BASE_URL")
	if baseURL == "" {
		baseURL = defaultSerpApiBaseURL
	}
	return &SerpApiClient{
		apiKey:  os.Getenv("SERPAPI_API_KEY"),
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Search performs one fully-specified search. Params are expected to have
// been validated and defaulted by the caller. The decoded response is
// returned untouched; normalization happens in the service layer.
func (c *SerpApiClient) Search(ctx context.Context, params request_models.FlightSearchParams) (*response_models.FlightsResponse, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("SERPAPI_API_KEY is not configured")
	}

	query := url.Values{}
	query.Set("engine", "google_flights")
	query.Set("api_key", c.apiKey)
	query.Set("hl", params.HL)
	query.Set("gl", params.GL)
	query.Set("departure_id", params.DepartureID)
	query.Set("arrival_id", params.ArrivalID)
	query.Set("outbound_date", params.OutboundDate)
	if params.Type == request_models.TripTypeRoundTrip && params.ReturnDate != "" {
		query.Set("return_date", params.ReturnDate)
	}
	query.Set("adults", strconv.Itoa(params.Adults))
	query.Set("children", strconv.Itoa(params.Children))
	query.Set("travel_class", params.TravelClass)
	query.Set("currency", params.Currency)
	query.Set("type", params.Type)
	query.Set("sort_by", "2")
	if params.Stops != "" {
		query.Set("stops", params.Stops)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build flight search request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("flight search request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var body struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&body)
		if body.Error == "" {
			body.Error = fmt.Sprintf("status %d", resp.StatusCode)
		}
		return nil, &UpstreamError{Message: body.Error}
	}

	var result response_models.FlightsResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode flight search response: %w", err)
	}

	return &result, nil
}
