package explorer_fx

import (
	"go.uber.org/fx"

	"globetrek/internal/clients"
	"globetrek/internal/config"
	"globetrek/internal/repositories"
	"globetrek/internal/services"
	"globetrek/pkg/logger"
)

var Module = fx.Provide(provideExplorerService)

func provideExplorerService(
	cfg *config.Config,
	countries clients.CountryProvider,
	enricher services.EnrichmentServiceInterface,
	planner services.ItineraryServiceInterface,
	ledger repositories.LedgerRepository,
	log logger.Logger,
) services.ExplorerServiceInterface {
	return services.NewExplorerService(countries, enricher, planner, ledger, cfg.FetchTimeout, log)
}
