package db_models

// TripPlan is created by a planning request and never mutated afterwards.
// Rollback removes its generated days/activities, never the plan itself.
type TripPlan struct {
	BaseModel
	ParkID      uint   `json:"park_id"`
	Month       string `json:"month"`
	Days        int    `json:"days"`
	Preferences string `json:"preferences,omitempty"`
	Name        string `json:"name"`
	UserID      string `json:"user_id,omitempty"`

	TripDays []TripDay `json:"-"`
}
