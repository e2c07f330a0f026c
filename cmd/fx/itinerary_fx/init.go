package itinerary_fx

import (
	"go.uber.org/fx"

	"tripplanner/internal/repositories"
	"tripplanner/internal/services"
	"tripplanner/pkg/utils"
)

var Module = fx.Provide(provideItineraryWriter, provideItineraryService)

func provideItineraryWriter(tripRepo repositories.TripRepository) *services.ItineraryWriter {
	return services.NewItineraryWriter(tripRepo)
}

func provideItineraryService(
	tripRepo repositories.TripRepository,
	parkRepo repositories.ParkRepository,
	aiClient utils.AIClientInterface,
	writer *services.ItineraryWriter,
) services.ItineraryServiceInterface {
	return services.NewItineraryService(tripRepo, parkRepo, aiClient, writer)
}
