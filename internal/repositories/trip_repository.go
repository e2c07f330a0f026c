package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"tripplanner/internal/models/db_models"
	"tripplanner/internal/models/response_models"
	"tripplanner/pkg/utils"
)

const defaultTripName = "My Trip"

// TripRepository is the mutable half of the store: trip plans and the
// generated day/activity rows beneath them.
type TripRepository interface {
	CreateTripPlan(ctx context.Context, plan *db_models.TripPlan) error
	GetTripPlanByID(ctx context.Context, id uint) (*db_models.TripPlan, error)
	CreateTripDay(ctx context.Context, day *db_models.TripDay) error
	CreateTripActivity(ctx context.Context, activity *db_models.TripActivity) error
	GetTripDaysByTripID(ctx context.Context, tripID uint) ([]db_models.TripDay, error)
	GetTripActivitiesByDayID(ctx context.Context, dayID uint) ([]response_models.TripActivityDetail, error)
	DeleteTripDaysByTripID(ctx context.Context, tripID uint) error
}

type tripRepository struct {
	db *gorm.DB
}

func NewTripRepository(db *gorm.DB) TripRepository {
	return &tripRepository{db: db}
}

func (r *tripRepository) CreateTripPlan(ctx context.Context, plan *db_models.TripPlan) error {
	if plan.Name == "" {
		plan.Name = defaultTripName
	}
	return r.db.WithContext(ctx).Create(plan).Error
}

func (r *tripRepository) GetTripPlanByID(ctx context.Context, id uint) (*db_models.TripPlan, error) {
	var plan db_models.TripPlan
	err := r.db.WithContext(ctx).First(&plan, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &plan, nil
}

// CreateTripActivity intentionally skips the ParkActivity existence check;
// the joined read is where a dangling reference surfaces.
func (r *tripRepository) CreateTripActivity(ctx context.Context, activity *db_models.TripActivity) error {
	return r.db.WithContext(ctx).Create(activity).Error
}

func (r *tripRepository) CreateTripDay(ctx context.Context, day *db_models.TripDay) error {
	return r.db.WithContext(ctx).Create(day).Error
}

func (r *tripRepository) GetTripDaysByTripID(ctx context.Context, tripID uint) ([]db_models.TripDay, error) {
	var days []db_models.TripDay
	err := r.db.WithContext(ctx).
		Where("trip_plan_id = ?", tripID).
		Order("day_number ASC").
		Find(&days).Error
	if err != nil {
		return nil, err
	}
	return days, nil
}

// GetTripActivitiesByDayID joins each stored activity with its catalog row. A
// missing ParkActivity means the writer persisted a reference it should not
// have; that is reported, never skipped.
func (r *tripRepository) GetTripActivitiesByDayID(ctx context.Context, dayID uint) ([]response_models.TripActivityDetail, error) {
	var activities []db_models.TripActivity
	err := r.db.WithContext(ctx).
		Where("trip_day_id = ?", dayID).
		Order("day_order ASC").
		Find(&activities).Error
	if err != nil {
		return nil, err
	}

	details := make([]response_models.TripActivityDetail, 0, len(activities))
	for _, activity := range activities {
		var parkActivity db_models.ParkActivity
		err := r.db.WithContext(ctx).First(&parkActivity, "id = ?", activity.ParkActivityID).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("%w: trip activity %d references missing park activity %d",
					utils.ErrReferentialIntegrity, activity.ID, activity.ParkActivityID)
			}
			return nil, err
		}
		details = append(details, response_models.TripActivityDetail{
			TripActivity: activity,
			ParkActivity: parkActivity,
		})
	}
	return details, nil
}

// DeleteTripDaysByTripID removes a trip's days and their activities. Used only
// for rollback; deleting a trip with no days is a no-op.
func (r *tripRepository) DeleteTripDaysByTripID(ctx context.Context, tripID uint) error {
	dayIDs := r.db.WithContext(ctx).
		Model(&db_models.TripDay{}).
		Select("id").
		Where("trip_plan_id = ?", tripID)

	if err := r.db.WithContext(ctx).
		Where("trip_day_id IN (?)", dayIDs).
		Delete(&db_models.TripActivity{}).Error; err != nil {
		return err
	}

	return r.db.WithContext(ctx).
		Where("trip_plan_id = ?", tripID).
		Delete(&db_models.TripDay{}).Error
}
