package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"voyago/cmd/fx/account_fx"
	"voyago/cmd/fx/ai_fx"
	"voyago/cmd/fx/cache_fx"
	"voyago/cmd/fx/db_fx"
	"voyago/cmd/fx/flights_fx"
	"voyago/cmd/fx/itinerary_fx"
	"voyago/cmd/fx/trips_fx"
	"voyago/internal/api/controllers"
	"voyago/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	app := fx.New(
		db_fx.Module,
		cache_fx.Module,
		ai_fx.Module,
		account_fx.Module,
		flights_fx.Module,
		itinerary_fx.Module,
		trips_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Println("Starting HTTP server at ${PORT}")
				if err := engine.Run(":" + os.Getenv("PORT")); err != nil {
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
	accountController *controllers.AccountController,
	flightsController *controllers.FlightsController,
	itineraryController *controllers.ItineraryController,
	tripsController *controllers.TripsController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, accountController, flightsController, itineraryController, tripsController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	flightsController *controllers.FlightsController,
	itineraryController *controllers.ItineraryController,
	tripsController *controllers.TripsController) {

	accountGroup := r.Group("/accounts")
	accountGroup.POST("/signup", accountController.SignUp)
	accountGroup.POST("/login", accountController.Login)

	flightsGroup := r.Group("/flights")
	flightsGroup.Use(middleware.JWTAuthMiddleware())
	flightsGroup.GET("/search", flightsController.SearchFlights)
	flightsGroup.GET("/iata", flightsController.LookupIataCode)

	itineraryGroup := r.Group("/itineraries")
	itineraryGroup.Use(middleware.JWTAuthMiddleware())
	itineraryGroup.POST("/plan", itineraryController.PlanTrip)

	tripsGroup := r.Group("/trips")
	tripsGroup.Use(middleware.JWTAuthMiddleware())
	tripsGroup.POST("", tripsController.SaveTrip)
	tripsGroup.GET("", tripsController.ListTrips)
	tripsGroup.GET("/:tripId", tripsController.GetTripById)
	tripsGroup.DELETE("/:tripId", tripsController.DeleteTrip)
}
