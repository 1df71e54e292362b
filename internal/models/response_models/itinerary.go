package response_models

// AI itinerary shapes. JSON keys are camelCase, matching the structure the
// model is prompted to emit. Only TripTitle and DailyItinerary are required;
// every other field may be absent and rendering must tolerate that.

type Activity struct {
	Time        string `json:"time"`
	Description string `json:"description"`
}

type DailyPlan struct {
	Day        int        `json:"day"`
	Title      string     `json:"title"`
	Activities []Activity `json:"activities"`
}

type GettingAroundDetails struct {
	Airport       string `json:"airport,omitempty"`
	Metro         string `json:"metro,omitempty"`
	BusesAndTrams string `json:"busesAndTrams,omitempty"`
	Taxis         string `json:"taxis,omitempty"`
	Walking       string `json:"walking,omitempty"`
}

type ParsedItinerary struct {
	TripTitle                   string                `json:"tripTitle"`
	Duration                    string                `json:"duration,omitempty"`
	BestTimeToTravel            string                `json:"bestTimeToTravel,omitempty"`
	Budget                      string                `json:"budget,omitempty"`
	EssentialDocuments          []string              `json:"essentialDocuments,omitempty"`
	Currency                    string                `json:"currency,omitempty"`
	Language                    string                `json:"language,omitempty"`
	GettingAround               *GettingAroundDetails `json:"gettingAround,omitempty"`
	AccommodationSuggestions    []string              `json:"accommodationSuggestions,omitempty"`
	DailyItinerary              []DailyPlan           `json:"dailyItinerary"`
	FoodAndDrinkRecommendations []string              `json:"foodAndDrinkRecommendations,omitempty"`
	ThingsToNote                []string              `json:"thingsToNote,omitempty"`
	GeneralTravelAdvice         []string              `json:"generalTravelAdvice,omitempty"`
	PossibleAdjustments         []string              `json:"possibleAdjustments,omitempty"`
}

// SavedTripResponse is a persisted itinerary as returned to clients.
type SavedTripResponse struct {
	ID      string `json:"id"`
	SavedAt string `json:"savedAt"`
	ParsedItinerary
}

// SavedTripSummary is the listing shape: title and timestamps only.
type SavedTripSummary struct {
	ID        string `json:"id"`
	TripTitle string `json:"tripTitle"`
	SavedAt   string `json:"savedAt"`
}
