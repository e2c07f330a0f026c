package db_models

// Park is part of the read-only catalog loaded at startup. Rows are never
// mutated after seeding.
type Park struct {
	BaseModel
	Name           string            `json:"name"`
	State          string            `json:"state"`
	Description    string            `json:"description"`
	MonthlyWeather map[string]string `gorm:"serializer:json" json:"monthly_weather"`
	BestMonths     []string          `gorm:"serializer:json" json:"best_months"`

	Activities []ParkActivity `json:"-"`
}
