package plans_fx

import (
	"os"
	"strings"

	"go.uber.org/fx"

	"shorex/internal/api/controllers"
	"shorex/internal/repositories"
	"shorex/internal/services"
	"shorex/pkg/utils"
)

var Module = fx.Provide(
	ProvidePromptService,
	ProvideAffiliateService,
	ProvidePlanService,
	ProvidePlanController)

func ProvidePromptService() services.PromptServiceInterface {
	return services.NewPromptService()
}

func ProvideAffiliateService() services.AffiliateServiceInterface {
	return services.NewAffiliateService(services.DefaultAffiliatePartners())
}

// ProvidePlanService wires the generation pipeline with all dependencies
func ProvidePlanService(
	repo repositories.RecordRepository,
	prompts services.PromptServiceInterface,
	planner utils.PlannerClientInterface,
	weather services.WeatherServiceInterface,
	affiliate services.AffiliateServiceInterface,
) services.PlanServiceInterface {
	return services.NewPlanService(
		repo,
		prompts,
		planner,
		weather,
		affiliate,
		retryInvalidResponseEnabled(),
	)
}

func ProvidePlanController(
	planService services.PlanServiceInterface,
) *controllers.PlanController {
	return controllers.NewPlanController(planService)
}

func retryInvalidResponseEnabled() bool {
	switch strings.ToLower(os.Getenv("AI_RETRY_INVALID_RESPONSE")) {
	case "1", "true", "yes":
		return true
	default:
		return false
	}
}
