package map_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"tripmate/internal/models/response_models"
	"tripmate/internal/services"
	"tripmate/pkg/config"
	mem "tripmate/pkg/memcache"
)

var Module = fx.Provide(provideAmapClient, provideMapService)

func provideAmapClient(cfg config.Config, cache mem.Store[response_models.GeocodeResult], log *zap.Logger) services.AmapClientInterface {
	if cfg.AmapKey == "" {
		log.Warn("AMAP_KEY is not set, geocoding and destination context will fail")
	}
	return services.NewAmapClient(cfg.AmapKey, cfg.AmapBaseURL, cache, cfg.GeocodeCacheTTL)
}

func provideMapService(amap services.AmapClientInterface, cfg config.Config, log *zap.Logger) services.MapServiceInterface {
	return services.NewMapService(amap, cfg.GeocodeConcurrency, log.Named("map"))
}
