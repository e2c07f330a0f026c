package trips_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"tripplanner/internal/repositories"
	"tripplanner/internal/services"
)

var Module = fx.Provide(provideTripRepo, provideTripService)

func provideTripRepo(db *gorm.DB) repositories.TripRepository {
	return repositories.NewTripRepository(db)
}

func provideTripService(
	tripRepo repositories.TripRepository,
	parkRepo repositories.ParkRepository,
) services.TripServiceInterface {
	return services.NewTripService(tripRepo, parkRepo)
}
