package memcache_fx

import (
	"go.uber.org/fx"

	"tripmate/internal/models/response_models"
	mem "tripmate/pkg/memcache"
)

var Module = fx.Provide(provideGeocodeCache)

func provideGeocodeCache() mem.Store[response_models.GeocodeResult] {
	return mem.NewTTLStore[response_models.GeocodeResult]()
}
