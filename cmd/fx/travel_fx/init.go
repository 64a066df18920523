package travel_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"tripmate/internal/itinerary"
	"tripmate/internal/repositories"
	"tripmate/internal/services"
)

var Module = fx.Provide(
	provideTravelPlanRepo, provideTravelService)

func provideTravelPlanRepo(db *gorm.DB) repositories.ITravelPlanRepository {
	return repositories.NewTravelPlanRepository(db)
}

func provideTravelService(planRepo repositories.ITravelPlanRepository, parser *itinerary.Parser, log *zap.Logger) services.TravelServiceInterface {
	return services.NewTravelService(planRepo, parser, log.Named("travel"))
}
