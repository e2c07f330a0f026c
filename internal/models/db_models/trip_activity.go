package db_models

// TripActivity references a catalog ParkActivity by id. The reference is not
// verified at write time; the joined read fails instead if it dangles.
// "order" is an SQL keyword, hence the day_order column.
type TripActivity struct {
	BaseModel
	TripDayID      uint   `json:"trip_day_id"`
	ParkActivityID uint   `json:"park_activity_id"`
	Order          int    `gorm:"column:day_order" json:"order"`
	StartTime      string `json:"start_time,omitempty"`
	EndTime        string `json:"end_time,omitempty"`
	Notes          string `json:"notes,omitempty"`
}
