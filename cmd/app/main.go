package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"tripplanner/cmd/fx/ai_fx"
	"tripplanner/cmd/fx/catalog_fx"
	"tripplanner/cmd/fx/controllers_fx"
	"tripplanner/cmd/fx/db_fx"
	"tripplanner/cmd/fx/itinerary_fx"
	"tripplanner/cmd/fx/recommendation_fx"
	"tripplanner/cmd/fx/trips_fx"
	"tripplanner/internal/api/controllers"
	"tripplanner/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on process environment")
	}

	app := fx.New(
		db_fx.Module,
		ai_fx.Module,
		catalog_fx.Module,
		trips_fx.Module,
		itinerary_fx.Module,
		recommendation_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	tripsController *controllers.TripsController,
	parksController *controllers.ParksController,
	recommendationController *controllers.RecommendationController) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, tripsController, parksController, recommendationController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	tripsController *controllers.TripsController,
	parksController *controllers.ParksController,
	recommendationController *controllers.RecommendationController) {

	api := r.Group("/api")

	api.POST("/trips", tripsController.CreateTrip)
	api.POST("/trips/:id/generate", tripsController.GenerateItinerary)
	api.GET("/trips/:id/days", tripsController.GetTripDays)
	api.GET("/days/:dayId/activities", tripsController.GetDayActivities)

	api.GET("/parks", parksController.GetAllParks)
	api.GET("/parks/month/:month", parksController.GetParksByMonth)
	api.GET("/parks/:id", parksController.GetParkByID)
	api.GET("/parks/:id/activities", parksController.GetParkActivities)

	api.POST("/recommendations", recommendationController.GetRecommendation)
}
