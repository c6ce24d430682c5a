package trips_fx

import (
	"go.uber.org/fx"

	"shorex/internal/api/controllers"
	"shorex/internal/repositories"
	"shorex/internal/services"
)

var Module = fx.Provide(
	ProvideTripService,
	ProvideTripController)

func ProvideTripService(repo repositories.RecordRepository) services.TripServiceInterface {
	return services.NewTripService(repo)
}

func ProvideTripController(
	tripService services.TripServiceInterface,
) *controllers.TripController {
	return controllers.NewTripController(tripService)
}
