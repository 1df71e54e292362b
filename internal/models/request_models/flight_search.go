package request_models

// Trip types as the aggregator encodes them.
const (
	TripTypeRoundTrip = "1"
	TripTypeOneWay    = "2"
)

// Stop preferences: "0" allows layovers, "1" is nonstop only.
const (
	StopsAny     = "0"
	StopsNonstop = "1"
)

// FlightSearchParams are the user-facing search inputs, bound from query
// parameters. Departure and arrival are IATA codes.
type FlightSearchParams struct {
	DepartureID  string `form:"departure_id" json:"departure_id"`
	ArrivalID    string `form:"arrival_id" json:"arrival_id"`
	OutboundDate string `form:"outbound_date" json:"outbound_date"`
	ReturnDate   string `form:"return_date" json:"return_date,omitempty"`
	Adults       int    `form:"adults" json:"adults,omitempty"`
	Children     int    `form:"children" json:"children,omitempty"`
	TravelClass  string `form:"travel_class" json:"travel_class,omitempty"`
	Currency     string `form:"currency" json:"currency,omitempty"`
	HL           string `form:"hl" json:"hl,omitempty"`
	GL           string `form:"gl" json:"gl,omitempty"`
	Type         string `form:"type" json:"type"`
	Stops        string `form:"stops" json:"stops,omitempty"`
}
