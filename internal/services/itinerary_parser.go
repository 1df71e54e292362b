package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"voyago/internal/models/response_models"
	"voyago/pkg/utils"
)

// Generative models frequently wrap their JSON in a fenced code block. Only
// these exact markers are trimmed; no markdown parsing happens here.
const (
	fencePrefixJSON = "```json\n"
	fencePrefixBare = "```\n"
	fenceSuffix     = "\n```"
)

// ParseItinerary turns raw model output into a validated itinerary, or a
// typed *utils.ItineraryValidationError that always carries the original raw
// text byte-for-byte for diagnostic display.
//
// Validation is deliberately shallow. Only the two fields the rest of the
// system structurally depends on are enforced: tripTitle must be a non-empty
// string and dailyItinerary must be an array (empty is fine at this layer).
// Optional fields pass through as decoded; an optional member with an
// unexpected shape degrades to its zero value instead of failing the whole
// document.
func ParseItinerary(raw string) (*response_models.ParsedItinerary, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, &utils.ItineraryValidationError{
			Kind: utils.ValidationEmptyResponse,
			Raw:  raw,
		}
	}

	cleaned := stripFence(raw)

	var doc any
	if err := json.Unmarshal([]byte(cleaned), &doc); err != nil {
		return nil, &utils.ItineraryValidationError{
			Kind: utils.ValidationMalformedJson,
			Raw:  raw,
			Err:  err,
		}
	}

	obj, ok := doc.(map[string]any)
	if !ok {
		return nil, &utils.ItineraryValidationError{
			Kind: utils.ValidationSchemaMismatch,
			Raw:  raw,
			Err:  errors.New("top-level JSON value is not an object"),
		}
	}

	title, ok := obj["tripTitle"].(string)
	if !ok || title == "" {
		return nil, &utils.ItineraryValidationError{
			Kind: utils.ValidationSchemaMismatch,
			Raw:  raw,
			Err:  errors.New("tripTitle is missing or not a non-empty string"),
		}
	}
	if _, ok := obj["dailyItinerary"].([]any); !ok {
		return nil, &utils.ItineraryValidationError{
			Kind: utils.ValidationSchemaMismatch,
			Raw:  raw,
			Err:  errors.New("dailyItinerary is missing or not an array"),
		}
	}

	var itinerary response_models.ParsedItinerary
	if err := json.Unmarshal([]byte(cleaned), &itinerary); err != nil {
		// The required fields were already verified above, so a type error
		// can only come from an optional member; keep the partial decode.
		var typeErr *json.UnmarshalTypeError
		if !errors.As(err, &typeErr) {
			return nil, &utils.ItineraryValidationError{
				Kind: utils.ValidationMalformedJson,
				Raw:  raw,
				Err:  err,
			}
		}
	}
	if itinerary.DailyItinerary == nil {
		itinerary.DailyItinerary = []response_models.DailyPlan{}
	}

	return &itinerary, nil
}

// stripFence removes one leading and one trailing code-fence marker using
// prefix/suffix trimming only, after trimming outer whitespace.
func stripFence(raw string) string {
	s := strings.TrimSpace(raw)
	if strings.HasPrefix(s, fencePrefixJSON) {
		s = strings.TrimPrefix(s, fencePrefixJSON)
	} else {
		s = strings.TrimPrefix(s, fencePrefixBare)
	}
	return strings.TrimSuffix(s, fenceSuffix)
}

// ValidateItineraryForSave re-checks the two required invariants on an
// itinerary arriving as a typed document (the save path), mirroring what
// ParseItinerary enforces on raw text.
func ValidateItineraryForSave(itinerary *response_models.ParsedItinerary) error {
	if itinerary == nil || itinerary.TripTitle == "" || itinerary.DailyItinerary == nil {
		return fmt.Errorf("%w: tripTitle and dailyItinerary are required", utils.ErrInvalidInput)
	}
	return nil
}
