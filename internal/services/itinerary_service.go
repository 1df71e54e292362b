package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"voyago/internal/models/request_models"
	"voyago/internal/models/response_models"
	mem "voyago/pkg/memcache"
	"voyago/pkg/utils"
)

const planCacheTTL = time.Hour

// itineraryStructurePrompt pins the JSON contract the model must emit. The
// parser only enforces tripTitle and dailyItinerary; everything else is
// best-effort.
const itineraryStructurePrompt = `Respond ONLY with a JSON object matching this structure (match keys exactly, omit unknown values rather than inventing keys):
{
  "tripTitle": "string",
  "duration": "string",
  "bestTimeToTravel": "string",
  "budget": "string",
  "essentialDocuments": ["string"],
  "currency": "string",
  "language": "string",
  "gettingAround": {
    "airport": "string",
    "metro": "string",
    "busesAndTrams": "string",
    "taxis": "string",
    "walking": "string"
  },
  "accommodationSuggestions": ["string"],
  "dailyItinerary": [
    {
      "day": 1,
      "title": "string",
      "activities": [
        {"time": "Morning", "description": "string"}
      ]
    }
  ],
  "foodAndDrinkRecommendations": ["string"],
  "thingsToNote": ["string"],
  "generalTravelAdvice": ["string"],
  "possibleAdjustments": ["string"]
}

Ensure the output is a single, valid JSON object string without any surrounding text or explanations. DailyItinerary must be present.`

type ItineraryServiceInterface interface {
	PlanTrip(ctx context.Context, request request_models.PlanTripRequest) (*response_models.ParsedItinerary, error)
}

type ItineraryService struct {
	aiClient  utils.AIClientInterface
	planCache mem.PlanCacheStore
}

func NewItineraryService(aiClient utils.AIClientInterface, planCache mem.PlanCacheStore) ItineraryServiceInterface {
	return &ItineraryService{
		aiClient:  aiClient,
		planCache: planCache,
	}
}

// PlanTrip generates and validates an itinerary for the requested
// destination. The raw model text is cached for an hour so retrying the same
// destination does not spend another model call; validation still runs on
// every request.
func (s *ItineraryService) PlanTrip(ctx context.Context, request request_models.PlanTripRequest) (*response_models.ParsedItinerary, error) {
	destination := strings.TrimSpace(request.Destination)
	if destination == "" {
		return nil, fmt.Errorf("%w: destination is required", utils.ErrInvalidInput)
	}

	cacheKey := mem.PlanCacheKey(destination, request.ImageBase64)
	if s.planCache != nil {
		if cached, found := s.planCache.Get(cacheKey); found {
			log.Printf("Plan cache hit for destination %q", destination)
			return ParseItinerary(cached)
		}
	}

	prompt := buildItineraryPrompt(destination, request.ImageBase64 != "")

	rawResponse, err := s.aiClient.GenerateItinerary(ctx, prompt, request.ImageBase64, request.ImageMimeType)
	if err != nil {
		return nil, fmt.Errorf("itinerary generation failed: %w", err)
	}

	itinerary, err := ParseItinerary(rawResponse)
	if err != nil {
		return nil, err
	}

	if s.planCache != nil {
		s.planCache.Set(cacheKey, rawResponse, planCacheTTL)
	}

	return itinerary, nil
}

func buildItineraryPrompt(destination string, hasImage bool) string {
	imageHint := "Focus on popular attractions and general travel advice."
	if hasImage {
		imageHint = "Consider the style and themes from the provided image for your recommendations."
	}

	mainPrompt := fmt.Sprintf("Plan a comprehensive travel itinerary to %s. Include details such as duration, best time to travel, budget considerations, essential documents, currency, language, getting around (airport, metro, buses, taxis, walking), accommodation suggestions, a detailed daily itinerary with activities (morning, afternoon, evening), food and drink recommendations, things to note, general travel advice, and possible adjustments. %s", destination, imageHint)

	return mainPrompt + "\n\n" + itineraryStructurePrompt
}
