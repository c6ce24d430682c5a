package health_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"shorex/internal/api/controllers"
	"shorex/internal/infra"
	"shorex/pkg/utils"
)

var Module = fx.Provide(
	ProvideHealthController)

func ProvideHealthController(db *gorm.DB, planner utils.PlannerClientInterface) *controllers.HealthController {
	return controllers.NewHealthController(
		func() error { return infra.PingPostgresql(db) },
		planner,
	)
}
