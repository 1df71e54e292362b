package services

import (
	"errors"
	"testing"

	"voyago/pkg/utils"
)

func validationErr(t *testing.T, err error) *utils.ItineraryValidationError {
	t.Helper()
	var vErr *utils.ItineraryValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ItineraryValidationError, got %v", err)
	}
	return vErr
}

func TestParseItineraryValidDocument(t *testing.T) {
	raw := `{"tripTitle":"Paris Trip","duration":"5 days","dailyItinerary":[{"day":1,"title":"Arrival","activities":[{"time":"Morning","description":"Land at CDG"}]}]}`

	itinerary, err := ParseItinerary(raw)
	if err != nil {
		t.Fatalf("ParseItinerary returned error: %v", err)
	}
	if itinerary.TripTitle != "Paris Trip" {
		t.Errorf("tripTitle = %q, want %q", itinerary.TripTitle, "Paris Trip")
	}
	if itinerary.Duration != "5 days" {
		t.Errorf("duration = %q, want %q", itinerary.Duration, "5 days")
	}
	if len(itinerary.DailyItinerary) != 1 || itinerary.DailyItinerary[0].Day != 1 {
		t.Fatalf("dailyItinerary not decoded: %+v", itinerary.DailyItinerary)
	}
	if itinerary.DailyItinerary[0].Activities[0].Description != "Land at CDG" {
		t.Errorf("activity not decoded: %+v", itinerary.DailyItinerary[0].Activities)
	}
}

func TestParseItineraryFencedDocument(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"json fence", "```json\n{\"tripTitle\":\"Paris Trip\",\"dailyItinerary\":[]}\n```"},
		{"bare fence", "```\n{\"tripTitle\":\"Paris Trip\",\"dailyItinerary\":[]}\n```"},
		{"fence with trailing newline", "```json\n{\"tripTitle\":\"Paris Trip\",\"dailyItinerary\":[]}\n```\n"},
		{"no fence", "{\"tripTitle\":\"Paris Trip\",\"dailyItinerary\":[]}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			itinerary, err := ParseItinerary(tt.raw)
			if err != nil {
				t.Fatalf("ParseItinerary returned error: %v", err)
			}
			if itinerary.TripTitle != "Paris Trip" {
				t.Errorf("tripTitle = %q, want %q", itinerary.TripTitle, "Paris Trip")
			}
			if itinerary.DailyItinerary == nil || len(itinerary.DailyItinerary) != 0 {
				t.Errorf("expected empty non-nil dailyItinerary, got %+v", itinerary.DailyItinerary)
			}
		})
	}
}

func TestParseItineraryEmptyResponse(t *testing.T) {
	for _, raw := range []string{"", "   ", "\n\t"} {
		vErr := validationErr(t, mustFail(t, raw))
		if vErr.Kind != utils.ValidationEmptyResponse {
			t.Errorf("raw %q: kind = %s, want EmptyResponse", raw, vErr.Kind)
		}
		if vErr.Raw != raw {
			t.Errorf("raw text not preserved: got %q, want %q", vErr.Raw, raw)
		}
	}
}

func TestParseItineraryMalformedJson(t *testing.T) {
	raw := "not json at all"
	vErr := validationErr(t, mustFail(t, raw))
	if vErr.Kind != utils.ValidationMalformedJson {
		t.Errorf("kind = %s, want MalformedJson", vErr.Kind)
	}
	if vErr.Raw != raw {
		t.Errorf("raw text not preserved byte-for-byte: %q", vErr.Raw)
	}
}

func TestParseItinerarySchemaMismatch(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"missing tripTitle", `{"dailyItinerary":[]}`},
		{"empty tripTitle", `{"tripTitle":"","dailyItinerary":[]}`},
		{"tripTitle wrong type", `{"tripTitle":42,"dailyItinerary":[]}`},
		{"missing dailyItinerary", `{"tripTitle":"Paris Trip"}`},
		{"dailyItinerary null", `{"tripTitle":"Paris Trip","dailyItinerary":null}`},
		{"dailyItinerary wrong type", `{"tripTitle":"Paris Trip","dailyItinerary":{}}`},
		{"top level array", `[{"tripTitle":"Paris Trip"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vErr := validationErr(t, mustFail(t, tt.raw))
			if vErr.Kind != utils.ValidationSchemaMismatch {
				t.Errorf("kind = %s, want SchemaMismatch", vErr.Kind)
			}
			if vErr.Raw != tt.raw {
				t.Errorf("raw text not preserved byte-for-byte: %q", vErr.Raw)
			}
		})
	}
}

func TestParseItineraryToleratesMalformedOptionalFields(t *testing.T) {
	// budget should be a string; the model emitted an object. The document
	// still validates, the bad field just decodes to its zero value.
	raw := `{"tripTitle":"Rome Trip","dailyItinerary":[{"day":1,"title":"Day one","activities":[]}],"budget":{"amount":2000}}`

	itinerary, err := ParseItinerary(raw)
	if err != nil {
		t.Fatalf("ParseItinerary returned error: %v", err)
	}
	if itinerary.TripTitle != "Rome Trip" {
		t.Errorf("tripTitle = %q", itinerary.TripTitle)
	}
	if itinerary.Budget != "" {
		t.Errorf("malformed optional field should decode to zero value, got %q", itinerary.Budget)
	}
	if len(itinerary.DailyItinerary) != 1 {
		t.Errorf("dailyItinerary lost during tolerant decode: %+v", itinerary.DailyItinerary)
	}
}

func TestParseItineraryKeepsOptionalStructures(t *testing.T) {
	raw := `{"tripTitle":"Tokyo Trip","dailyItinerary":[],"gettingAround":{"metro":"Buy a Suica card"},"essentialDocuments":["Passport"]}`

	itinerary, err := ParseItinerary(raw)
	if err != nil {
		t.Fatalf("ParseItinerary returned error: %v", err)
	}
	if itinerary.GettingAround == nil || itinerary.GettingAround.Metro != "Buy a Suica card" {
		t.Errorf("gettingAround not decoded: %+v", itinerary.GettingAround)
	}
	if len(itinerary.EssentialDocuments) != 1 || itinerary.EssentialDocuments[0] != "Passport" {
		t.Errorf("essentialDocuments not decoded: %+v", itinerary.EssentialDocuments)
	}
}

func mustFail(t *testing.T, raw string) error {
	t.Helper()
	itinerary, err := ParseItinerary(raw)
	if err == nil {
		t.Fatalf("expected failure for %q, got itinerary %+v", raw, itinerary)
	}
	return err
}
