package enrichment_fx

import (
	"go.uber.org/fx"

	"globetrek/internal/clients"
	"globetrek/internal/config"
	"globetrek/internal/services"
	"globetrek/pkg/logger"
	"globetrek/pkg/memcache"
)

var Module = fx.Provide(
	provideFactsProvider,
	provideTranslationProvider,
	provideImagesProvider,
	provideEnrichmentService,
)

func provideFactsProvider(cfg *config.Config) clients.FactsProvider {
	return clients.NewWikipediaFactsClient(cfg.WikipediaBaseURL, cfg.FetchTimeout)
}

func provideTranslationProvider(cfg *config.Config) clients.TranslationProvider {
	return clients.NewMyMemoryClient(cfg.TranslateBaseURL, cfg.FetchTimeout, cfg.TranslationCacheTTL, memcache.NewTranslationCache())
}

func provideImagesProvider() clients.ImagesProvider {
	return clients.NewStaticImagesClient()
}

func provideEnrichmentService(
	facts clients.FactsProvider,
	translator clients.TranslationProvider,
	images clients.ImagesProvider,
	log logger.Logger,
) services.EnrichmentServiceInterface {
	return services.NewEnrichmentService(facts, translator, images, log)
}
