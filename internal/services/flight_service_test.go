package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"voyago/internal/models/request_models"
	"voyago/internal/models/response_models"
	"voyago/pkg/utils"
)

type fakeSearchClient struct {
	resp      *response_models.FlightsResponse
	err       error
	calls     int
	gotParams request_models.FlightSearchParams
}

func (f *fakeSearchClient) Search(ctx context.Context, params request_models.FlightSearchParams) (*response_models.FlightsResponse, error) {
	f.calls++
	f.gotParams = params
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type fakeFlightCache struct {
	store map[string][]byte
}

func newFakeFlightCache() *fakeFlightCache {
	return &fakeFlightCache{store: make(map[string][]byte)}
}

func (f *fakeFlightCache) GetJSON(ctx context.Context, key string, dest interface{}) error {
	data, ok := f.store[key]
	if !ok {
		return fmt.Errorf("key not found: %s", key)
	}
	return json.Unmarshal(data, dest)
}

func (f *fakeFlightCache) SetJSON(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.store[key] = data
	return nil
}

type fakeAIClient struct {
	text      string
	err       error
	calls     int
	gotPrompt string
	gotImage  string
}

func (f *fakeAIClient) GenerateItinerary(ctx context.Context, prompt string, imageBase64 string, imageMimeType string) (string, error) {
	f.calls++
	f.gotPrompt = prompt
	f.gotImage = imageBase64
	return f.text, f.err
}

func (f *fakeAIClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	return f.GenerateItinerary(ctx, prompt, "", "")
}

func (f *fakeAIClient) Close() error { return nil }

func searchParams() request_models.FlightSearchParams {
	return request_models.FlightSearchParams{
		DepartureID:  "VIE",
		ArrivalID:    "BUD",
		OutboundDate: "2026-09-10",
		Type:         request_models.TripTypeOneWay,
	}
}

func TestSearchFlightsValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*request_models.FlightSearchParams)
	}{
		{"missing departure", func(p *request_models.FlightSearchParams) { p.DepartureID = " " }},
		{"missing arrival", func(p *request_models.FlightSearchParams) { p.ArrivalID = "" }},
		{"missing outbound date", func(p *request_models.FlightSearchParams) { p.OutboundDate = "" }},
		{"missing trip type", func(p *request_models.FlightSearchParams) { p.Type = "" }},
		{"unknown trip type", func(p *request_models.FlightSearchParams) { p.Type = "3" }},
		{"round trip without return date", func(p *request_models.FlightSearchParams) {
			p.Type = request_models.TripTypeRoundTrip
			p.ReturnDate = ""
		}},
		{"bad stops value", func(p *request_models.FlightSearchParams) { p.Stops = "2" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &fakeSearchClient{}
			svc := NewFlightService(client, nil, &fakeAIClient{})

			params := searchParams()
			tt.mutate(&params)

			_, err := svc.SearchFlights(context.Background(), params)
			if !errors.Is(err, utils.ErrInvalidInput) {
				t.Errorf("expected ErrInvalidInput, got %v", err)
			}
			if client.calls != 0 {
				t.Errorf("aggregator must not be called on invalid input")
			}
		})
	}
}

func TestSearchFlightsAppliesDefaults(t *testing.T) {
	client := &fakeSearchClient{resp: &response_models.FlightsResponse{
		BestFlights: []response_models.FlightOffer{offer("VIE", "BUD", 100)},
	}}
	svc := NewFlightService(client, nil, &fakeAIClient{})

	params := searchParams()
	params.DepartureID = " vie "
	params.ArrivalID = "bud"

	if _, err := svc.SearchFlights(context.Background(), params); err != nil {
		t.Fatalf("SearchFlights returned error: %v", err)
	}

	got := client.gotParams
	if got.DepartureID != "VIE" || got.ArrivalID != "BUD" {
		t.Errorf("IATA codes not trimmed/uppercased: %q %q", got.DepartureID, got.ArrivalID)
	}
	if got.Adults != 1 || got.TravelClass != "1" || got.Currency != "HUF" || got.HL != "en" || got.GL != "us" {
		t.Errorf("defaults not applied: %+v", got)
	}
}

func TestSearchFlightsNormalizesAndCaches(t *testing.T) {
	client := &fakeSearchClient{resp: &response_models.FlightsResponse{
		BestFlights:  []response_models.FlightOffer{offer("VIE", "BUD", 100)},
		OtherFlights: []response_models.FlightOffer{offer("VIE", "BUD", 100), offer("PRG", "BER", 50)},
	}}
	cache := newFakeFlightCache()
	svc := NewFlightService(client, cache, &fakeAIClient{})

	got, err := svc.SearchFlights(context.Background(), searchParams())
	if err != nil {
		t.Fatalf("SearchFlights returned error: %v", err)
	}
	if len(got.BestFlights) != 2 || got.BestFlights[0].Price != 50 {
		t.Fatalf("response not normalized: %+v", got.BestFlights)
	}
	if len(cache.store) != 1 {
		t.Errorf("expected normalized response to be cached, store has %d entries", len(cache.store))
	}

	// Second identical search must come from the cache.
	again, err := svc.SearchFlights(context.Background(), searchParams())
	if err != nil {
		t.Fatalf("cached SearchFlights returned error: %v", err)
	}
	if client.calls != 1 {
		t.Errorf("expected 1 aggregator call, got %d", client.calls)
	}
	if len(again.BestFlights) != 2 {
		t.Errorf("cached response malformed: %+v", again.BestFlights)
	}
}

func TestSearchFlightsUpstreamErrorNotCached(t *testing.T) {
	client := &fakeSearchClient{resp: &response_models.FlightsResponse{Error: "rate limited"}}
	cache := newFakeFlightCache()
	svc := NewFlightService(client, cache, &fakeAIClient{})

	_, err := svc.SearchFlights(context.Background(), searchParams())
	var upstreamErr *utils.UpstreamError
	if !errors.As(err, &upstreamErr) {
		t.Fatalf("expected UpstreamError, got %v", err)
	}
	if len(cache.store) != 0 {
		t.Errorf("failed searches must not be cached")
	}
}

func TestSearchFlightsEmptyResult(t *testing.T) {
	client := &fakeSearchClient{resp: &response_models.FlightsResponse{}}
	svc := NewFlightService(client, nil, &fakeAIClient{})

	_, err := svc.SearchFlights(context.Background(), searchParams())
	if !errors.Is(err, utils.ErrNoFlightsFound) {
		t.Errorf("expected ErrNoFlightsFound, got %v", err)
	}
}

func TestLookupIataCode(t *testing.T) {
	tests := []struct {
		name     string
		city     string
		aiAnswer string
		want     string
		wantErr  error
	}{
		{"clean code", "London", "LHR", "LHR", nil},
		{"code with noise", "Vienna", " vie\n", "VIE", nil},
		{"not available", "Atlantis", "N/A", "", utils.ErrAirportCodeNotFound},
		{"unexpected format", "London", "London Heathrow", "", utils.ErrAirportCodeNotFound},
		{"empty city", "  ", "LHR", "", utils.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewFlightService(&fakeSearchClient{}, nil, &fakeAIClient{text: tt.aiAnswer})

			got, err := svc.LookupIataCode(context.Background(), tt.city)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("LookupIataCode returned error: %v", err)
			}
			if got != tt.want {
				t.Errorf("code = %q, want %q", got, tt.want)
			}
		})
	}
}
