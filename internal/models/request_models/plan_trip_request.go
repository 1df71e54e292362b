package request_models

// PlanTripRequest asks for an AI itinerary for a destination. The photo is
// optional; when present it seeds the prompt with visual context.
type PlanTripRequest struct {
	Destination   string `json:"destination" binding:"required"`
	ImageBase64   string `json:"image_base64,omitempty"`
	ImageMimeType string `json:"image_mime_type,omitempty"`
}
