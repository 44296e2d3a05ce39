package controllers_fx

import (
	"go.uber.org/fx"

	"globetrek/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewExplorerController),
	fx.Provide(controllers.NewPassportController))
