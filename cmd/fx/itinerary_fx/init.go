package itinerary_fx

import (
	"go.uber.org/fx"

	"tripmate/internal/itinerary"
	"tripmate/internal/services"
	"tripmate/pkg/config"
)

var Module = fx.Provide(provideParser, services.NewItineraryService)

func provideParser(cfg config.Config) *itinerary.Parser {
	return itinerary.New(itinerary.DefaultConfig().WithNoiseKeywords(cfg.ExtraNoiseKeywords...))
}
