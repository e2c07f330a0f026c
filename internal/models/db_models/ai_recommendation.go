package db_models

// AiRecommendation caches one generated recommendation under its fingerprint
// (park id, month, exact trimmed preferences). The fingerprint is unique;
// writing an existing fingerprint overwrites the stored text.
type AiRecommendation struct {
	BaseModel
	ParkID         uint   `gorm:"uniqueIndex:idx_recommendation_fingerprint" json:"park_id"`
	Month          string `gorm:"uniqueIndex:idx_recommendation_fingerprint" json:"month"`
	Preferences    string `gorm:"uniqueIndex:idx_recommendation_fingerprint" json:"preferences"`
	Recommendation string `json:"recommendation"`
}
