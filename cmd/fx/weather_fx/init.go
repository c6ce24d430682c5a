package weather_fx

import (
	"os"

	"go.uber.org/fx"

	"shorex/internal/api/controllers"
	"shorex/internal/services"
)

var Module = fx.Provide(
	ProvideWeatherService,
	ProvideWeatherController)

func ProvideWeatherService() services.WeatherServiceInterface {
	return services.NewWeatherService(os.Getenv("WEATHER_BASE_URL"))
}

func ProvideWeatherController(
	weatherService services.WeatherServiceInterface,
) *controllers.WeatherController {
	return controllers.NewWeatherController(weatherService)
}
