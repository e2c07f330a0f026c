package services

import (
	"context"
	"strings"

	"tripplanner/internal/models/db_models"
	"tripplanner/internal/models/request_models"
	"tripplanner/internal/models/response_models"
	"tripplanner/internal/repositories"
	"tripplanner/pkg/utils"
)

const (
	MinTripDays       = 1
	MaxTripDays       = 30
	MaxPreferencesLen = 500
)

type TripServiceInterface interface {
	CreateTrip(ctx context.Context, req request_models.CreateTripRequest) (*db_models.TripPlan, error)
	GetTripDays(ctx context.Context, tripID uint) ([]db_models.TripDay, error)
	GetDayActivities(ctx context.Context, dayID uint) ([]response_models.TripActivityDetail, error)
}

type TripService struct {
	tripRepo repositories.TripRepository
	parkRepo repositories.ParkRepository
}

func NewTripService(tripRepo repositories.TripRepository, parkRepo repositories.ParkRepository) TripServiceInterface {
	return &TripService{
		tripRepo: tripRepo,
		parkRepo: parkRepo,
	}
}

func (s *TripService) CreateTrip(ctx context.Context, req request_models.CreateTripRequest) (*db_models.TripPlan, error) {
	if req.Days < MinTripDays || req.Days > MaxTripDays {
		return nil, utils.ErrInvalidDayCount
	}

	month, ok := utils.NormalizeMonth(req.Month)
	if !ok {
		return nil, utils.ErrInvalidMonth
	}

	preferences := strings.TrimSpace(req.Preferences)
	if len(preferences) > MaxPreferencesLen {
		return nil, utils.ErrPreferencesTooLong
	}

	park, err := s.parkRepo.GetParkByID(ctx, req.ParkID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if park == nil {
		return nil, utils.ErrInvalidPark
	}

	plan := &db_models.TripPlan{
		ParkID:      park.ID,
		Month:       month,
		Days:        req.Days,
		Preferences: preferences,
		Name:        strings.TrimSpace(req.Name),
		UserID:      req.UserID,
	}
	if err := s.tripRepo.CreateTripPlan(ctx, plan); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return plan, nil
}

func (s *TripService) GetTripDays(ctx context.Context, tripID uint) ([]db_models.TripDay, error) {
	days, err := s.tripRepo.GetTripDaysByTripID(ctx, tripID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return days, nil
}

func (s *TripService) GetDayActivities(ctx context.Context, dayID uint) ([]response_models.TripActivityDetail, error) {
	activities, err := s.tripRepo.GetTripActivitiesByDayID(ctx, dayID)
	if err != nil {
		return nil, err
	}
	return activities, nil
}
