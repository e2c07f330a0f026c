package services

import (
	"context"

	"tripplanner/internal/models/db_models"
	"tripplanner/internal/repositories"
	"tripplanner/pkg/utils"
)

type ParkServiceInterface interface {
	GetAllParks(ctx context.Context) ([]db_models.Park, error)
	GetParkByID(ctx context.Context, id uint) (*db_models.Park, error)
	GetParksByMonth(ctx context.Context, month string) ([]db_models.Park, error)
	GetParkActivities(ctx context.Context, parkID uint) ([]db_models.ParkActivity, error)
}

type ParkService struct {
	parkRepo repositories.ParkRepository
}

func NewParkService(parkRepo repositories.ParkRepository) ParkServiceInterface {
	return &ParkService{parkRepo: parkRepo}
}

func (s *ParkService) GetAllParks(ctx context.Context) ([]db_models.Park, error) {
	parks, err := s.parkRepo.GetAllParks(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return parks, nil
}

func (s *ParkService) GetParkByID(ctx context.Context, id uint) (*db_models.Park, error) {
	park, err := s.parkRepo.GetParkByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if park == nil {
		return nil, utils.ErrParkNotFound
	}
	return park, nil
}

func (s *ParkService) GetParksByMonth(ctx context.Context, month string) ([]db_models.Park, error) {
	normalized, ok := utils.NormalizeMonth(month)
	if !ok {
		return nil, utils.ErrInvalidMonth
	}

	parks, err := s.parkRepo.GetParksByMonth(ctx, normalized)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return parks, nil
}

func (s *ParkService) GetParkActivities(ctx context.Context, parkID uint) ([]db_models.ParkActivity, error) {
	park, err := s.parkRepo.GetParkByID(ctx, parkID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if park == nil {
		return nil, utils.ErrParkNotFound
	}

	activities, err := s.parkRepo.GetParkActivities(ctx, parkID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return activities, nil
}
