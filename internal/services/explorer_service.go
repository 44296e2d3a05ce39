package services

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"globetrek/internal/clients"
	"globetrek/internal/models/domain_models"
	"globetrek/internal/models/response_models"
	"globetrek/internal/repositories"
	"globetrek/pkg/logger"
	"globetrek/pkg/utils"
)

type ExplorerServiceInterface interface {
	// StartJourney picks a country (random, or by name when given), makes it
	// the current journey and launches the four slot loads concurrently.
	StartJourney(ctx context.Context, countryName string) (*response_models.StartJourneyResponse, error)

	// CurrentView renders the aggregate. Valid at every interleaving of
	// slot resolution, including all-pending.
	CurrentView(ctx context.Context) (*response_models.TripView, error)

	// SaveTrip snapshots the current country (and the itinerary, if its
	// slot has resolved) into the visit ledger.
	SaveTrip(ctx context.Context) (*response_models.SaveTripResponse, error)
}

type journeyState struct {
	id        uuid.UUID
	country   domain_models.Country
	facts     domain_models.FactsSlot
	lessons   domain_models.LessonsSlot
	images    domain_models.ImagesSlot
	itinerary domain_models.ItinerarySlot
}

type ExplorerService struct {
	countries clients.CountryProvider
	enricher  EnrichmentServiceInterface
	planner   ItineraryServiceInterface
	ledger    repositories.LedgerRepository
	log       logger.Logger

	fetchTimeout time.Duration
	now          func() time.Time

	mu       sync.Mutex
	gen      uint64
	current  *journeyState
	inFlight sync.WaitGroup
}

func NewExplorerService(
	countries clients.CountryProvider,
	enricher EnrichmentServiceInterface,
	planner ItineraryServiceInterface,
	ledger repositories.LedgerRepository,
	fetchTimeout time.Duration,
	log logger.Logger,
) *ExplorerService {
	return &ExplorerService{
		countries:    countries,
		enricher:     enricher,
		planner:      planner,
		ledger:       ledger,
		log:          log,
		fetchTimeout: fetchTimeout,
		now:          time.Now,
	}
}

func (s *ExplorerService) StartJourney(ctx context.Context, countryName string) (*response_models.StartJourneyResponse, error) {
	var (
		country domain_models.Country
		err     error
	)
	if countryName != "" {
		country, err = s.countries.GetByName(ctx, countryName)
	} else {
		country, err = s.countries.GetRandom(ctx)
	}
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.gen++
	gen := s.gen
	s.current = &journeyState{
		id:        uuid.New(),
		country:   country,
		facts:     domain_models.FactsSlot{State: domain_models.SlotPending, Loading: true},
		lessons:   domain_models.LessonsSlot{State: domain_models.SlotPending, Loading: true},
		images:    domain_models.ImagesSlot{State: domain_models.SlotPending, Loading: true},
		itinerary: domain_models.ItinerarySlot{State: domain_models.SlotPending, Loading: true},
	}
	id := s.current.id
	s.mu.Unlock()

	s.log.Info("journey started",
		logger.String("country", country.Name.Common),
		logger.String("journey_id", id.String()))

	s.inFlight.Add(4)
	go s.loadFacts(gen, country)
	go s.loadLessons(gen, country)
	go s.loadImages(gen, country)
	go s.loadItinerary(gen, country)

	return &response_models.StartJourneyResponse{
		JourneyID: id.String(),
		Country:   country,
	}, nil
}

func (s *ExplorerService) CurrentView(ctx context.Context) (*response_models.TripView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return nil, utils.ErrNoActiveJourney
	}
	return &response_models.TripView{
		JourneyID: s.current.id.String(),
		Country:   s.current.country,
		Facts:     s.current.facts,
		Lessons:   s.current.lessons,
		Images:    s.current.images,
		Itinerary: s.current.itinerary,
	}, nil
}

func (s *ExplorerService) SaveTrip(ctx context.Context) (*response_models.SaveTripResponse, error) {
	s.mu.Lock()
	if s.current == nil {
		s.mu.Unlock()
		return nil, utils.ErrNoActiveJourney
	}
	if s.current.country.Name.Common == "" {
		s.mu.Unlock()
		return nil, utils.ErrNilCountry
	}

	trip := domain_models.SavedTrip{
		ID:        uuid.New(),
		Country:   s.current.country.Clone(),
		VisitDate: s.now().UTC(),
		Completed: []string{"visited"},
	}
	// Only a resolved itinerary is captured; a pending or failed slot
	// leaves the field absent.
	if s.current.itinerary.State == domain_models.SlotReady && s.current.itinerary.Plan != nil {
		plan := s.current.itinerary.Plan.Clone()
		trip.Itinerary = &plan
	}
	s.mu.Unlock()

	// Fire-and-forget from the caller's perspective: a persistence failure
	// is logged, never surfaced as a save error.
	if err := s.ledger.Append(ctx, trip); err != nil {
		s.log.Errorf("failed to persist trip %s: %v", trip.ID, err)
	}

	return &response_models.SaveTripResponse{
		StampID:   trip.ID.String(),
		VisitDate: utils.FormatRFC3339(trip.VisitDate),
		Redirect:  "/passport",
	}, nil
}

func (s *ExplorerService) Wait() { s.inFlight.Wait() }

func (s *ExplorerService) loadFacts(gen uint64, country domain_models.Country) {
	defer s.inFlight.Done()
	ctx, cancel := context.WithTimeout(context.Background(), s.fetchTimeout)
	defer cancel()

	items, err := s.enricher.CulturalFacts(ctx, country)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stale(gen) {
		return
	}
	if err != nil {
		s.log.Warnf("facts fetch failed for %s: %v", country.Name.Common, err)
		s.current.facts = domain_models.FactsSlot{
			State: domain_models.SlotFailed,
			Items: s.enricher.FallbackFacts(country),
		}
		return
	}
	s.current.facts = domain_models.FactsSlot{State: domain_models.SlotReady, Items: items}
}

func (s *ExplorerService) loadLessons(gen uint64, country domain_models.Country) {
	defer s.inFlight.Done()
	ctx, cancel := context.WithTimeout(context.Background(), s.fetchTimeout)
	defer cancel()

	items, err := s.enricher.LanguageLessons(ctx, country)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stale(gen) {
		return
	}
	if err != nil {
		s.log.Warnf("lessons fetch failed for %s: %v", country.Name.Common, err)
		s.current.lessons = domain_models.LessonsSlot{
			State: domain_models.SlotFailed,
			Items: []domain_models.LanguageLesson{},
		}
		return
	}
	s.current.lessons = domain_models.LessonsSlot{State: domain_models.SlotReady, Items: items}
}

func (s *ExplorerService) loadImages(gen uint64, country domain_models.Country) {
	defer s.inFlight.Done()
	ctx, cancel := context.WithTimeout(context.Background(), s.fetchTimeout)
	defer cancel()

	items, err := s.enricher.CountryImages(ctx, country)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stale(gen) {
		return
	}
	if err != nil {
		s.log.Warnf("images fetch failed for %s: %v", country.Name.Common, err)
		s.current.images = domain_models.ImagesSlot{
			State: domain_models.SlotFailed,
			Items: []domain_models.Image{},
		}
		return
	}
	s.current.images = domain_models.ImagesSlot{State: domain_models.SlotReady, Items: items}
}

func (s *ExplorerService) loadItinerary(gen uint64, country domain_models.Country) {
	defer s.inFlight.Done()

	plan := s.planner.Synthesize(country)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stale(gen) {
		return
	}
	s.current.itinerary = domain_models.ItinerarySlot{State: domain_models.SlotReady, Plan: &plan}
}

// stale reports whether a resolving task belongs to a superseded journey.
// Late results for an old country are discarded, not applied. Callers hold mu.
func (s *ExplorerService) stale(gen uint64) bool {
	return s.current == nil || gen != s.gen
}
