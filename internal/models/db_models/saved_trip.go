package db_models

import (
	"github.com/google/uuid"
)

// SavedTrip is an itinerary a user explicitly saved. Rows are append-only:
// created on save, removed on delete, never updated.
type SavedTrip struct {
	BaseModel
	UserID    uuid.UUID `gorm:"type:uuid;index"`
	TripTitle string
	// Itinerary holds the full ParsedItinerary document as it validated.
	Itinerary string `gorm:"type:jsonb"`
}
