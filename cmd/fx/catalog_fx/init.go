package catalog_fx

import (
	"go.uber.org/fx"

	"shorex/internal/api/controllers"
	"shorex/internal/services"
)

var Module = fx.Provide(
	ProvidePortCatalog,
	ProvideCatalogController)

func ProvidePortCatalog() services.PortCatalogInterface {
	return services.NewPortCatalog()
}

func ProvideCatalogController(
	catalog services.PortCatalogInterface,
) *controllers.CatalogController {
	return controllers.NewCatalogController(catalog)
}
