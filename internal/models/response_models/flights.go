package response_models

// Wire shapes for the SerpApi google_flights engine. Field names follow the
// aggregator's snake_case JSON exactly; everything optional stays optional.

type AirportInfo struct {
	Name string `json:"name"`
	ID   string `json:"id"`
	Time string `json:"time,omitempty"`
}

type FlightSegment struct {
	DepartureAirport        AirportInfo `json:"departure_airport"`
	ArrivalAirport          AirportInfo `json:"arrival_airport"`
	Duration                int         `json:"duration"`
	Airplane                string      `json:"airplane,omitempty"`
	Airline                 string      `json:"airline"`
	AirlineLogo             string      `json:"airline_logo,omitempty"`
	TravelClass             string      `json:"travel_class,omitempty"`
	FlightNumber            string      `json:"flight_number,omitempty"`
	Extensions              []string    `json:"extensions,omitempty"`
	TicketAlsoSoldBy        []string    `json:"ticket_also_sold_by,omitempty"`
	Legroom                 string      `json:"legroom,omitempty"`
	Overnight               bool        `json:"overnight,omitempty"`
	OftenDelayedByOver30Min bool        `json:"often_delayed_by_over_30_min,omitempty"`
	PlaneAndCrewBy          string      `json:"plane_and_crew_by,omitempty"`
}

type Layover struct {
	Duration  int    `json:"duration"`
	Name      string `json:"name"`
	ID        string `json:"id"`
	Overnight bool   `json:"overnight,omitempty"`
}

type CarbonEmissions struct {
	ThisFlight          int `json:"this_flight,omitempty"`
	TypicalForThisRoute int `json:"typical_for_this_route,omitempty"`
	DifferencePercent   int `json:"difference_percent,omitempty"`
}

type FlightOffer struct {
	Flights         []FlightSegment  `json:"flights"`
	Layovers        []Layover        `json:"layovers,omitempty"`
	TotalDuration   int              `json:"total_duration"`
	CarbonEmissions *CarbonEmissions `json:"carbon_emissions,omitempty"`
	Price           float64          `json:"price"`
	Type            string           `json:"type"`
	AirlineLogo     string           `json:"airline_logo,omitempty"`
	Extensions      []string         `json:"extensions,omitempty"`
	DepartureToken  string           `json:"departure_token,omitempty"`
	BookingToken    string           `json:"booking_token,omitempty"`
}

type PriceInsights struct {
	LowestPrice       float64      `json:"lowest_price,omitempty"`
	PriceLevel        string       `json:"price_level,omitempty"`
	TypicalPriceRange []float64    `json:"typical_price_range,omitempty"`
	PriceHistory      [][2]float64 `json:"price_history,omitempty"`
}

type SearchMetadata struct {
	ID               string  `json:"id,omitempty"`
	Status           string  `json:"status,omitempty"`
	CreatedAt        string  `json:"created_at,omitempty"`
	ProcessedAt      string  `json:"processed_at,omitempty"`
	GoogleFlightsURL string  `json:"google_flights_url,omitempty"`
	TotalTimeTaken   float64 `json:"total_time_taken,omitempty"`
}

type SearchParameters struct {
	Engine       string `json:"engine,omitempty"`
	DepartureID  string `json:"departure_id,omitempty"`
	ArrivalID    string `json:"arrival_id,omitempty"`
	OutboundDate string `json:"outbound_date,omitempty"`
	ReturnDate   string `json:"return_date,omitempty"`
	Currency     string `json:"currency,omitempty"`
	Type         string `json:"type,omitempty"`
}

// FlightsResponse is the aggregator response the normalizer consumes and
// produces. After normalization BestFlights holds the merged, deduplicated,
// price-sorted offers and OtherFlights is emptied.
type FlightsResponse struct {
	SearchMetadata   *SearchMetadata   `json:"search_metadata,omitempty"`
	SearchParameters *SearchParameters `json:"search_parameters,omitempty"`
	BestFlights      []FlightOffer     `json:"best_flights,omitempty"`
	OtherFlights     []FlightOffer     `json:"other_flights,omitempty"`
	PriceInsights    *PriceInsights    `json:"price_insights,omitempty"`
	Error            string            `json:"error,omitempty"`
}
