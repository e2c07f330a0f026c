package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"tripplanner/internal/models/db_models"
)

// ParkRepository serves the immutable catalog. Pure lookups only.
type ParkRepository interface {
	GetAllParks(ctx context.Context) ([]db_models.Park, error)
	GetParkByID(ctx context.Context, id uint) (*db_models.Park, error)
	GetParksByMonth(ctx context.Context, month string) ([]db_models.Park, error)
	GetParkActivities(ctx context.Context, parkID uint) ([]db_models.ParkActivity, error)
	GetParkActivityByID(ctx context.Context, id uint) (*db_models.ParkActivity, error)
}

type parkRepository struct {
	db *gorm.DB
}

func NewParkRepository(db *gorm.DB) ParkRepository {
	return &parkRepository{db: db}
}

func (r *parkRepository) GetAllParks(ctx context.Context) ([]db_models.Park, error) {
	var parks []db_models.Park
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&parks).Error; err != nil {
		return nil, err
	}
	return parks, nil
}

func (r *parkRepository) GetParkByID(ctx context.Context, id uint) (*db_models.Park, error) {
	var park db_models.Park
	err := r.db.WithContext(ctx).First(&park, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &park, nil
}

// GetParksByMonth filters on the JSON best_months column in memory; the
// catalog is small enough that a table scan is the simpler contract.
func (r *parkRepository) GetParksByMonth(ctx context.Context, month string) ([]db_models.Park, error) {
	parks, err := r.GetAllParks(ctx)
	if err != nil {
		return nil, err
	}

	var matched []db_models.Park
	for _, park := range parks {
		for _, m := range park.BestMonths {
			if m == month {
				matched = append(matched, park)
				break
			}
		}
	}
	return matched, nil
}

func (r *parkRepository) GetParkActivities(ctx context.Context, parkID uint) ([]db_models.ParkActivity, error) {
	var activities []db_models.ParkActivity
	err := r.db.WithContext(ctx).
		Where("park_id = ?", parkID).
		Order("id ASC").
		Find(&activities).Error
	if err != nil {
		return nil, err
	}
	return activities, nil
}

func (r *parkRepository) GetParkActivityByID(ctx context.Context, id uint) (*db_models.ParkActivity, error) {
	var activity db_models.ParkActivity
	err := r.db.WithContext(ctx).First(&activity, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &activity, nil
}
