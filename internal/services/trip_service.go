package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"voyago/internal/models/db_models"
	"voyago/internal/models/response_models"
	"voyago/internal/repositories"
	"voyago/pkg/utils"
)

type TripServiceInterface interface {
	SaveTrip(ctx context.Context, userId string, itinerary *response_models.ParsedItinerary) (*response_models.SavedTripResponse, error)
	ListTrips(ctx context.Context, userId string, page, pageSize int) ([]response_models.SavedTripSummary, error)
	GetTripById(ctx context.Context, userId string, tripId string) (*response_models.SavedTripResponse, error)
	DeleteTrip(ctx context.Context, userId string, tripId string) error
}

type TripService struct {
	tripRepo repositories.TripRepository
}

func NewTripService(tripRepo repositories.TripRepository) TripServiceInterface {
	return &TripService{
		tripRepo: tripRepo,
	}
}

func (t *TripService) SaveTrip(ctx context.Context, userId string, itinerary *response_models.ParsedItinerary) (*response_models.SavedTripResponse, error) {
	userUUID, err := uuid.Parse(userId)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}
	if err := ValidateItineraryForSave(itinerary); err != nil {
		return nil, err
	}

	payload, err := json.Marshal(itinerary)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	trip := &db_models.SavedTrip{
		UserID:    userUUID,
		TripTitle: itinerary.TripTitle,
		Itinerary: string(payload),
	}
	if err := t.tripRepo.Insert(ctx, trip); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.SavedTripResponse{
		ID:              trip.ID.String(),
		SavedAt:         formatSavedAt(trip.CreatedAt),
		ParsedItinerary: *itinerary,
	}, nil
}

func (t *TripService) ListTrips(ctx context.Context, userId string, page, pageSize int) ([]response_models.SavedTripSummary, error) {
	userUUID, err := uuid.Parse(userId)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return nil, utils.ErrInvalidPageSize
	}

	trips, err := t.tripRepo.ListByUserId(ctx, userUUID, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.SavedTripSummary, 0, len(trips))
	for _, trip := range trips {
		out = append(out, response_models.SavedTripSummary{
			ID:        trip.ID.String(),
			TripTitle: trip.TripTitle,
			SavedAt:   formatSavedAt(trip.CreatedAt),
		})
	}
	return out, nil
}

func (t *TripService) GetTripById(ctx context.Context, userId string, tripId string) (*response_models.SavedTripResponse, error) {
	userUUID, tripUUID, err := parseTripIds(userId, tripId)
	if err != nil {
		return nil, err
	}

	trip, err := t.tripRepo.FindByIdAndUserId(ctx, tripUUID, userUUID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}

	var itinerary response_models.ParsedItinerary
	if err := json.Unmarshal([]byte(trip.Itinerary), &itinerary); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.SavedTripResponse{
		ID:              trip.ID.String(),
		SavedAt:         formatSavedAt(trip.CreatedAt),
		ParsedItinerary: itinerary,
	}, nil
}

func (t *TripService) DeleteTrip(ctx context.Context, userId string, tripId string) error {
	userUUID, tripUUID, err := parseTripIds(userId, tripId)
	if err != nil {
		return err
	}

	deleted, err := t.tripRepo.DeleteByIdAndUserId(ctx, tripUUID, userUUID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if !deleted {
		return utils.ErrTripNotFound
	}
	return nil
}

func parseTripIds(userId, tripId string) (uuid.UUID, uuid.UUID, error) {
	userUUID, err := uuid.Parse(userId)
	if err != nil {
		return uuid.Nil, uuid.Nil, utils.ErrInvalidInput
	}
	tripUUID, err := uuid.Parse(tripId)
	if err != nil {
		return uuid.Nil, uuid.Nil, utils.ErrInvalidInput
	}
	return userUUID, tripUUID, nil
}

func formatSavedAt(unixSeconds int64) string {
	if unixSeconds <= 0 {
		return ""
	}
	return time.Unix(unixSeconds, 0).UTC().Format(time.RFC3339)
}
