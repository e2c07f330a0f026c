package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"tripplanner/internal/models/db_models"
)

// RecommendationRepository is the fingerprint cache. Matching is on the exact
// trimmed preferences string: any character difference, including case, is a
// miss. No eviction, TTL or size bound; volume is operator-controlled at this
// scale, a capacity risk for any larger deployment.
type RecommendationRepository interface {
	GetByFingerprint(ctx context.Context, parkID uint, month, preferences string) (*db_models.AiRecommendation, error)
	Insert(ctx context.Context, rec *db_models.AiRecommendation) error
}

type recommendationRepository struct {
	db *gorm.DB
}

func NewRecommendationRepository(db *gorm.DB) RecommendationRepository {
	return &recommendationRepository{db: db}
}

func (r *recommendationRepository) GetByFingerprint(ctx context.Context, parkID uint, month, preferences string) (*db_models.AiRecommendation, error) {
	var rec db_models.AiRecommendation
	err := r.db.WithContext(ctx).
		Where("park_id = ? AND month = ? AND preferences = ?", parkID, month, preferences).
		First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

// Insert upserts on the fingerprint: a second write under the same
// (park, month, preferences) silently overwrites the stored text.
func (r *recommendationRepository) Insert(ctx context.Context, rec *db_models.AiRecommendation) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "park_id"}, {Name: "month"}, {Name: "preferences"}},
			DoUpdates: clause.AssignmentColumns([]string{"recommendation"}),
		}).
		Create(rec).Error
}
