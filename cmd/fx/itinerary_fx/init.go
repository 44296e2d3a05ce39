package itinerary_fx

import (
	"go.uber.org/fx"

	"globetrek/internal/services"
)

var Module = fx.Provide(provideItineraryService)

func provideItineraryService() services.ItineraryServiceInterface {
	return services.NewItineraryService()
}
