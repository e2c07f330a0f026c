package response_models

import "tripplanner/internal/models/db_models"

const (
	PlanSourceAI       = "ai"
	PlanSourceFallback = "fallback"
)

// GeneratedActivity is one scheduled slot of a generated (not yet persisted)
// day plan. ActivityID always references a catalog ParkActivity.
type GeneratedActivity struct {
	ActivityID uint   `json:"activity_id"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
	Notes      string `json:"notes"`
	Order      int    `json:"order"`
}

type GeneratedDay struct {
	DayNumber   int                 `json:"day_number"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Activities  []GeneratedActivity `json:"activities"`
}

// GeneratedPlan is the generator output. Source records whether the plan came
// from the AI provider or the deterministic distribution.
type GeneratedPlan struct {
	Source string         `json:"source"`
	Days   []GeneratedDay `json:"days"`
}

// TripActivityDetail is a TripActivity joined with its catalog row.
type TripActivityDetail struct {
	db_models.TripActivity
	ParkActivity db_models.ParkActivity `json:"park_activity"`
}

type TripDayDetail struct {
	db_models.TripDay
	Activities []TripActivityDetail `json:"activities"`
}

// ItineraryResponse is the payload of POST /api/trips/:id/generate.
type ItineraryResponse struct {
	Source    string          `json:"source"`
	Itinerary []TripDayDetail `json:"itinerary"`
}
