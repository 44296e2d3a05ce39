package country_fx

import (
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"globetrek/internal/clients"
	"globetrek/internal/config"
	"globetrek/pkg/logger"
)

var Module = fx.Provide(provideCountryProvider)

func provideCountryProvider(cfg *config.Config, cache *goredis.Client, log logger.Logger) clients.CountryProvider {
	return clients.NewRESTCountriesClient(cfg.CountriesBaseURL, cfg.FetchTimeout, cfg.CountryCacheTTL, cache, log)
}
