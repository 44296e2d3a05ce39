package services

import (
	"context"
	"sort"
	"sync"

	"globetrek/internal/clients"
	"globetrek/internal/models/domain_models"
	"globetrek/pkg/logger"
)

// SeedPhrases is the fixed lesson vocabulary, in presentation order.
var SeedPhrases = []string{"Hello", "Thank you", "How are you?"}

type EnrichmentServiceInterface interface {
	CulturalFacts(ctx context.Context, country domain_models.Country) ([]domain_models.CulturalFact, error)
	LanguageLessons(ctx context.Context, country domain_models.Country) ([]domain_models.LanguageLesson, error)
	CountryImages(ctx context.Context, country domain_models.Country) ([]domain_models.Image, error)

	// FallbackFacts is the synthetic fact set used when the facts source
	// is unavailable.
	FallbackFacts(country domain_models.Country) []domain_models.CulturalFact
}

type EnrichmentService struct {
	facts      clients.FactsProvider
	translator clients.TranslationProvider
	images     clients.ImagesProvider
	log        logger.Logger
}

func NewEnrichmentService(
	facts clients.FactsProvider,
	translator clients.TranslationProvider,
	images clients.ImagesProvider,
	log logger.Logger,
) EnrichmentServiceInterface {
	return &EnrichmentService{
		facts:      facts,
		translator: translator,
		images:     images,
		log:        log,
	}
}

func (s *EnrichmentService) CulturalFacts(ctx context.Context, country domain_models.Country) ([]domain_models.CulturalFact, error) {
	return s.facts.CulturalFacts(ctx, country)
}

func (s *EnrichmentService) FallbackFacts(country domain_models.Country) []domain_models.CulturalFact {
	return []domain_models.CulturalFact{
		{
			Title:   "Basic Information",
			Content: country.Name.Common + " is a country in " + country.Region + ".",
		},
	}
}

// LanguageLessons translates the seed phrases into the country's first
// language. Phrases are fetched concurrently and indexed positionally, so
// presentation order matches seed order regardless of resolution order.
// A phrase that fails keeps the source text annotated as unavailable; it
// does not fail the other phrases.
func (s *EnrichmentService) LanguageLessons(ctx context.Context, country domain_models.Country) ([]domain_models.LanguageLesson, error) {
	lang, ok := firstLanguage(country.Languages)
	if !ok {
		return []domain_models.LanguageLesson{}, nil
	}

	out := make([]domain_models.LanguageLesson, len(SeedPhrases))

	var wg sync.WaitGroup
	for i, phrase := range SeedPhrases {
		wg.Add(1)
		go func(i int, phrase string) {
			defer wg.Done()
			translation, err := s.translator.Translate(ctx, phrase, lang)
			if err != nil {
				s.log.Warnf("translation failed for %q (%s): %v", phrase, lang, err)
				translation = phrase + " (translation unavailable)"
			}
			out[i] = domain_models.LanguageLesson{Phrase: phrase, Translation: translation}
		}(i, phrase)
	}
	wg.Wait()

	return out, nil
}

func (s *EnrichmentService) CountryImages(ctx context.Context, country domain_models.Country) ([]domain_models.Image, error) {
	capital := ""
	if len(country.Capital) > 0 {
		capital = country.Capital[0]
	}
	return s.images.CountryImages(ctx, country.Name.Common, capital)
}

// firstLanguage picks the first entry of the language mapping in sorted code
// order, so the target language is stable across map iterations.
func firstLanguage(langs map[string]string) (string, bool) {
	if len(langs) == 0 {
		return "", false
	}
	codes := make([]string, 0, len(langs))
	for code := range langs {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes[0], true
}
