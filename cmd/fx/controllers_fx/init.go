package controllers_fx

import (
	"go.uber.org/fx"

	"tripmate/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewChatController),
	fx.Provide(controllers.NewMapController),
	fx.Provide(controllers.NewTravelController),
	fx.Provide(controllers.NewItineraryController))
