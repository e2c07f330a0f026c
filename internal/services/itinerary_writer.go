package services

import (
	"context"
	"fmt"
	"log"

	"tripplanner/internal/models/db_models"
	"tripplanner/internal/models/response_models"
	"tripplanner/internal/repositories"
	"tripplanner/pkg/utils"
)

// WriteOutcome is the terminal state of one persistence attempt.
type WriteOutcome int

const (
	WriteCommitted WriteOutcome = iota
	WriteRolledBack
	WriteInconsistent
)

func (o WriteOutcome) String() string {
	switch o {
	case WriteCommitted:
		return "committed"
	case WriteRolledBack:
		return "rolled_back"
	case WriteInconsistent:
		return "inconsistent"
	default:
		return "unknown"
	}
}

// ItineraryWriter persists a generated plan as one logical unit, replacing
// whatever itinerary the trip already holds. There is no real transaction
// underneath: the first failure aborts the write loop and the trip's rows are
// deleted. If that delete also fails the store may hold orphaned rows, which
// is the one condition treated as fatal. Nothing serializes concurrent
// writers on the same trip id; two interleaved generation requests can
// clobber each other.
type ItineraryWriter struct {
	tripRepo repositories.TripRepository
}

func NewItineraryWriter(tripRepo repositories.TripRepository) *ItineraryWriter {
	return &ItineraryWriter{tripRepo: tripRepo}
}

// Persist writes days in day_number order, each day's activities in order.
// Existing days for the trip are wiped first, so regeneration replaces the
// previous itinerary instead of stacking a second one on top of it. On
// WriteCommitted the caller can immediately re-read exactly what was written.
// The error is non-nil for both failure outcomes and wraps the matching
// sentinel.
func (w *ItineraryWriter) Persist(ctx context.Context, tripID uint, days []response_models.GeneratedDay) (WriteOutcome, error) {
	if err := w.tripRepo.DeleteTripDaysByTripID(ctx, tripID); err != nil {
		return WriteRolledBack, fmt.Errorf("%w: clearing previous itinerary: %v",
			utils.ErrPersistenceRolledBack, err)
	}

	for _, day := range days {
		if err := w.validateDay(day); err != nil {
			return w.rollback(ctx, tripID, err)
		}

		tripDay := &db_models.TripDay{
			TripPlanID:  tripID,
			DayNumber:   day.DayNumber,
			Title:       day.Title,
			Description: day.Description,
		}
		if err := w.tripRepo.CreateTripDay(ctx, tripDay); err != nil {
			return w.rollback(ctx, tripID, err)
		}

		for _, activity := range day.Activities {
			tripActivity := &db_models.TripActivity{
				TripDayID:      tripDay.ID,
				ParkActivityID: activity.ActivityID,
				Order:          activity.Order,
				StartTime:      activity.StartTime,
				EndTime:        activity.EndTime,
				Notes:          activity.Notes,
			}
			if err := w.tripRepo.CreateTripActivity(ctx, tripActivity); err != nil {
				return w.rollback(ctx, tripID, err)
			}
		}
	}

	return WriteCommitted, nil
}

func (w *ItineraryWriter) validateDay(day response_models.GeneratedDay) error {
	if day.DayNumber < 1 {
		return fmt.Errorf("invalid day_number %d", day.DayNumber)
	}
	if day.Title == "" {
		return fmt.Errorf("day %d has an empty title", day.DayNumber)
	}
	for i, activity := range day.Activities {
		if activity.Order != i+1 {
			return fmt.Errorf("day %d has non-contiguous activity orders", day.DayNumber)
		}
		if activity.ActivityID == 0 {
			return fmt.Errorf("day %d activity %d has no catalog reference", day.DayNumber, activity.Order)
		}
	}
	return nil
}

func (w *ItineraryWriter) rollback(ctx context.Context, tripID uint, cause error) (WriteOutcome, error) {
	log.Printf("Itinerary write for trip %d failed, rolling back: %v", tripID, cause)

	if err := w.tripRepo.DeleteTripDaysByTripID(ctx, tripID); err != nil {
		log.Printf("Rollback for trip %d FAILED, store may be inconsistent: %v", tripID, err)
		return WriteInconsistent, fmt.Errorf("%w: write failed (%v), rollback failed (%v)",
			utils.ErrStoreInconsistent, cause, err)
	}

	return WriteRolledBack, fmt.Errorf("%w: %v", utils.ErrPersistenceRolledBack, cause)
}
