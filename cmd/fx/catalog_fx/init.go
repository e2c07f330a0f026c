package catalog_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"tripplanner/internal/catalog"
	"tripplanner/internal/repositories"
	"tripplanner/internal/services"
)

var Module = fx.Options(
	fx.Provide(provideParkRepo, provideParkService),
	fx.Invoke(catalog.Seed),
)

func provideParkRepo(db *gorm.DB) repositories.ParkRepository {
	return repositories.NewParkRepository(db)
}

func provideParkService(parkRepo repositories.ParkRepository) services.ParkServiceInterface {
	return services.NewParkService(parkRepo)
}
