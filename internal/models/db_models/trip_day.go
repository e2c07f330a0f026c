package db_models

// TripDay rows for a trip carry day_number values forming a contiguous 1..N
// sequence equal to the trip's day count. Written only by the itinerary writer.
type TripDay struct {
	BaseModel
	TripPlanID  uint   `json:"trip_plan_id"`
	DayNumber   int    `json:"day_number"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`

	Activities []TripActivity `json:"-"`
}
