package ports_fx

import (
	"go.uber.org/fx"

	"shorex/internal/api/controllers"
	"shorex/internal/repositories"
	"shorex/internal/services"
)

var Module = fx.Provide(
	ProvidePortService,
	ProvidePortController)

func ProvidePortService(repo repositories.RecordRepository) services.PortServiceInterface {
	return services.NewPortService(repo)
}

func ProvidePortController(
	portService services.PortServiceInterface,
) *controllers.PortController {
	return controllers.NewPortController(portService)
}
