package db_models

const (
	DifficultyEasy      = "easy"
	DifficultyModerate  = "moderate"
	DifficultyDifficult = "difficult"
)

// ParkActivity belongs to exactly one Park. Catalog rows, immutable after load.
type ParkActivity struct {
	BaseModel
	ParkID          uint     `json:"park_id"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Category        string   `json:"category"`
	DurationMinutes int      `json:"duration_minutes"`
	Difficulty      string   `gorm:"default:moderate" json:"difficulty"`
	Latitude        float64  `json:"latitude"`
	Longitude       float64  `json:"longitude"`
	BestTimeOfDay   string   `json:"best_time_of_day,omitempty"`
	BestMonths      []string `gorm:"serializer:json" json:"best_months,omitempty"`
}
