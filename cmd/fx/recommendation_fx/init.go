package recommendation_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"tripplanner/internal/repositories"
	"tripplanner/internal/services"
	"tripplanner/pkg/utils"
)

var Module = fx.Provide(provideRecommendationRepo, provideRecommendationService)

func provideRecommendationRepo(db *gorm.DB) repositories.RecommendationRepository {
	return repositories.NewRecommendationRepository(db)
}

func provideRecommendationService(
	recRepo repositories.RecommendationRepository,
	parkRepo repositories.ParkRepository,
	aiClient utils.AIClientInterface,
) services.RecommendationServiceInterface {
	return services.NewRecommendationService(recRepo, parkRepo, aiClient)
}
