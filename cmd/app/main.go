package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"

	"shorex/cmd/fx/ai_fx"
	"shorex/cmd/fx/catalog_fx"
	"shorex/cmd/fx/db_fx"
	"shorex/cmd/fx/health_fx"
	"shorex/cmd/fx/plans_fx"
	"shorex/cmd/fx/ports_fx"
	"shorex/cmd/fx/trips_fx"
	"shorex/cmd/fx/weather_fx"
	"shorex/internal/api/controllers"
	"shorex/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	app := fx.New(
		db_fx.Module,
		ai_fx.Module,
		weather_fx.Module,
		trips_fx.Module,
		ports_fx.Module,
		plans_fx.Module,
		catalog_fx.Module,
		health_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			port := os.Getenv("PORT")
			if port == "" {
				port = "8080"
			}
			go func() {
				log.Printf("Starting HTTP server on :%s", port)
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
	tripController *controllers.TripController,
	portController *controllers.PortController,
	planController *controllers.PlanController,
	weatherController *controllers.WeatherController,
	catalogController *controllers.CatalogController,
	healthController *controllers.HealthController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.MetricsMiddleware())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.DeviceScopeMiddleware())

	RegisterRoutes(r, tripController, portController, planController,
		weatherController, catalogController, healthController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	tripController *controllers.TripController,
	portController *controllers.PortController,
	planController *controllers.PlanController,
	weatherController *controllers.WeatherController,
	catalogController *controllers.CatalogController,
	healthController *controllers.HealthController) {

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")

	api.GET("/health", healthController.Health)
	api.GET("/weather", weatherController.GetForecast)

	tripsGroup := api.Group("/trips")
	tripsGroup.POST("", tripController.CreateTrip)
	tripsGroup.GET("", tripController.ListTrips)
	tripsGroup.GET("/:id", tripController.GetTrip)
	tripsGroup.PATCH("/:id", tripController.UpdateTrip)
	tripsGroup.DELETE("/:id", tripController.DeleteTrip)

	tripsGroup.POST("/:id/ports", portController.AddPort)
	tripsGroup.PATCH("/:id/ports/:port_id", portController.UpdatePort)
	tripsGroup.DELETE("/:id/ports/:port_id", portController.DeletePort)
	tripsGroup.GET("/:id/ports/:port_id/plan", planController.GetPlanForPort)

	plansGroup := api.Group("/plans")
	plansGroup.POST("/generate", planController.GeneratePlan)
	plansGroup.GET("", planController.ListPlans)
	plansGroup.DELETE("/:id", planController.DeletePlan)

	portsGroup := api.Group("/ports")
	portsGroup.GET("/search", catalogController.SearchPorts)
	portsGroup.GET("/regions", catalogController.ListRegions)
}
