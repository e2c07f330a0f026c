package controllers_fx

import (
	"go.uber.org/fx"

	"tripplanner/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewTripsController),
	fx.Provide(controllers.NewParksController),
	fx.Provide(controllers.NewRecommendationController))
