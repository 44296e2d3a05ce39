package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"globetrek/internal/models/domain_models"
	"globetrek/pkg/logger"
)

type stubCountries struct {
	mu    sync.Mutex
	queue []domain_models.Country
}

func (s *stubCountries) GetRandom(ctx context.Context) (domain_models.Country, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.queue) == 0 {
		return domain_models.Country{}, errors.New("no countries queued")
	}
	c := s.queue[0]
	s.queue = s.queue[1:]
	return c, nil
}

func (s *stubCountries) GetByName(ctx context.Context, name string) (domain_models.Country, error) {
	return testCountry(name, name+" City", "Test Region"), nil
}

// gatedEnricher lets tests control when each source resolves.
type gatedEnricher struct {
	factsFn   func(c domain_models.Country) ([]domain_models.CulturalFact, error)
	lessonsFn func(c domain_models.Country) ([]domain_models.LanguageLesson, error)
	imagesFn  func(c domain_models.Country) ([]domain_models.Image, error)
}

func (g *gatedEnricher) CulturalFacts(ctx context.Context, c domain_models.Country) ([]domain_models.CulturalFact, error) {
	return g.factsFn(c)
}

func (g *gatedEnricher) LanguageLessons(ctx context.Context, c domain_models.Country) ([]domain_models.LanguageLesson, error) {
	return g.lessonsFn(c)
}

func (g *gatedEnricher) CountryImages(ctx context.Context, c domain_models.Country) ([]domain_models.Image, error) {
	return g.imagesFn(c)
}

func (g *gatedEnricher) FallbackFacts(c domain_models.Country) []domain_models.CulturalFact {
	return []domain_models.CulturalFact{
		{Title: "Basic Information", Content: c.Name.Common + " is a country in " + c.Region + "."},
	}
}

type gatedPlanner struct {
	gate chan struct{} // nil => immediate
	real ItineraryServiceInterface
}

func (g *gatedPlanner) Synthesize(c domain_models.Country) domain_models.Itinerary {
	if g.gate != nil {
		<-g.gate
	}
	return g.real.Synthesize(c)
}

type memLedger struct {
	mu        sync.Mutex
	trips     []domain_models.SavedTrip
	appendErr error
}

func (m *memLedger) Append(ctx context.Context, trip domain_models.SavedTrip) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.appendErr != nil {
		return m.appendErr
	}
	m.trips = append(m.trips, trip)
	return nil
}

func (m *memLedger) ListAll(ctx context.Context) ([]domain_models.SavedTrip, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain_models.SavedTrip(nil), m.trips...), nil
}

func immediateEnricher() *gatedEnricher {
	return &gatedEnricher{
		factsFn: func(c domain_models.Country) ([]domain_models.CulturalFact, error) {
			return []domain_models.CulturalFact{{Title: "Overview", Content: c.Name.Common}}, nil
		},
		lessonsFn: func(c domain_models.Country) ([]domain_models.LanguageLesson, error) {
			return []domain_models.LanguageLesson{}, nil
		},
		imagesFn: func(c domain_models.Country) ([]domain_models.Image, error) {
			return []domain_models.Image{{ID: 1}}, nil
		},
	}
}

func newTestExplorer(countries *stubCountries, enricher *gatedEnricher, planner ItineraryServiceInterface, ledger *memLedger) *ExplorerService {
	return NewExplorerService(countries, enricher, planner, ledger, time.Second, logger.NewNop())
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met before deadline")
}

func TestCurrentViewNoActiveJourney(t *testing.T) {
	svc := newTestExplorer(&stubCountries{}, immediateEnricher(), NewItineraryService(), &memLedger{})

	if _, err := svc.CurrentView(context.Background()); err == nil {
		t.Fatal("expected an error with no active journey")
	}
}

func TestViewValidAtEveryInterleaving(t *testing.T) {
	factsGate := make(chan struct{})
	lessonsGate := make(chan struct{})
	imagesGate := make(chan struct{})
	planGate := make(chan struct{})

	enricher := immediateEnricher()
	base := *enricher
	enricher.factsFn = func(c domain_models.Country) ([]domain_models.CulturalFact, error) {
		<-factsGate
		return base.factsFn(c)
	}
	enricher.lessonsFn = func(c domain_models.Country) ([]domain_models.LanguageLesson, error) {
		<-lessonsGate
		return base.lessonsFn(c)
	}
	enricher.imagesFn = func(c domain_models.Country) ([]domain_models.Image, error) {
		<-imagesGate
		return base.imagesFn(c)
	}

	countries := &stubCountries{queue: []domain_models.Country{testCountry("Japan", "Tokyo", "Asia")}}
	svc := newTestExplorer(countries, enricher, &gatedPlanner{gate: planGate, real: NewItineraryService()}, &memLedger{})

	if _, err := svc.StartJourney(context.Background(), ""); err != nil {
		t.Fatalf("start journey: %v", err)
	}

	view, err := svc.CurrentView(context.Background())
	if err != nil {
		t.Fatalf("all-pending view must render: %v", err)
	}
	for name, state := range map[string]domain_models.SlotState{
		"facts":     view.Facts.State,
		"lessons":   view.Lessons.State,
		"images":    view.Images.State,
		"itinerary": view.Itinerary.State,
	} {
		if state != domain_models.SlotPending {
			t.Errorf("%s slot = %s, want pending", name, state)
		}
	}
	if !view.Facts.Loading || !view.Lessons.Loading || !view.Images.Loading || !view.Itinerary.Loading {
		t.Error("all loading flags must start true")
	}

	// Resolve in an arbitrary order: images, plan, facts, lessons.
	close(imagesGate)
	waitFor(t, func() bool {
		v, _ := svc.CurrentView(context.Background())
		return v.Images.State == domain_models.SlotReady
	})

	v, _ := svc.CurrentView(context.Background())
	if v.Facts.State != domain_models.SlotPending {
		t.Error("facts must still be pending after images resolve")
	}
	if v.Images.Loading {
		t.Error("images loading flag must flip false on resolve")
	}

	close(planGate)
	close(factsGate)
	close(lessonsGate)
	svc.Wait()

	final, _ := svc.CurrentView(context.Background())
	for name, state := range map[string]domain_models.SlotState{
		"facts":     final.Facts.State,
		"lessons":   final.Lessons.State,
		"images":    final.Images.State,
		"itinerary": final.Itinerary.State,
	} {
		if state != domain_models.SlotReady {
			t.Errorf("%s slot = %s, want ready", name, state)
		}
	}
}

func TestFactsFailureFallsBack(t *testing.T) {
	enricher := immediateEnricher()
	enricher.factsFn = func(c domain_models.Country) ([]domain_models.CulturalFact, error) {
		return nil, errors.New("wikipedia down")
	}

	countries := &stubCountries{queue: []domain_models.Country{testCountry("Japan", "Tokyo", "Asia")}}
	svc := newTestExplorer(countries, enricher, NewItineraryService(), &memLedger{})

	if _, err := svc.StartJourney(context.Background(), ""); err != nil {
		t.Fatalf("start journey: %v", err)
	}
	svc.Wait()

	view, _ := svc.CurrentView(context.Background())
	if view.Facts.State != domain_models.SlotFailed {
		t.Fatalf("facts slot = %s, want failed", view.Facts.State)
	}
	if len(view.Facts.Items) != 1 || view.Facts.Items[0].Content != "Japan is a country in Asia." {
		t.Fatalf("fallback fact wrong: %+v", view.Facts.Items)
	}
	// The other slots are unaffected.
	if view.Images.State != domain_models.SlotReady {
		t.Errorf("images slot = %s, want ready", view.Images.State)
	}
}

func TestStaleResponseDiscarded(t *testing.T) {
	factsGate := make(chan struct{})

	enricher := immediateEnricher()
	enricher.factsFn = func(c domain_models.Country) ([]domain_models.CulturalFact, error) {
		if c.Name.Common == "Japan" {
			<-factsGate
		}
		return []domain_models.CulturalFact{{Title: "Overview", Content: c.Name.Common}}, nil
	}

	countries := &stubCountries{queue: []domain_models.Country{
		testCountry("Japan", "Tokyo", "Asia"),
		testCountry("France", "Paris", "Europe"),
	}}
	svc := newTestExplorer(countries, enricher, NewItineraryService(), &memLedger{})

	if _, err := svc.StartJourney(context.Background(), ""); err != nil {
		t.Fatalf("first journey: %v", err)
	}
	if _, err := svc.StartJourney(context.Background(), ""); err != nil {
		t.Fatalf("second journey: %v", err)
	}

	waitFor(t, func() bool {
		v, _ := svc.CurrentView(context.Background())
		return v.Facts.State == domain_models.SlotReady
	})

	// Release the first journey's in-flight fetch; its late result must be
	// ignored, not applied to the current journey.
	close(factsGate)
	svc.Wait()

	view, _ := svc.CurrentView(context.Background())
	if view.Country.Name.Common != "France" {
		t.Fatalf("current country = %s, want France", view.Country.Name.Common)
	}
	if got := view.Facts.Items[0].Content; got != "France" {
		t.Fatalf("facts content = %q, stale Japan result leaked in", got)
	}
}

func TestSaveTripWithoutItinerary(t *testing.T) {
	planGate := make(chan struct{})
	ledger := &memLedger{}
	countries := &stubCountries{queue: []domain_models.Country{testCountry("Japan", "Tokyo", "Asia")}}
	svc := newTestExplorer(countries, immediateEnricher(), &gatedPlanner{gate: planGate, real: NewItineraryService()}, ledger)

	if _, err := svc.StartJourney(context.Background(), ""); err != nil {
		t.Fatalf("start journey: %v", err)
	}

	saved, err := svc.SaveTrip(context.Background())
	if err != nil {
		t.Fatalf("save trip: %v", err)
	}
	if saved.StampID == "" {
		t.Error("expected a stamp id")
	}

	trips, _ := ledger.ListAll(context.Background())
	if len(trips) != 1 {
		t.Fatalf("ledger has %d trips, want 1", len(trips))
	}
	if trips[0].Itinerary != nil {
		t.Error("an unresolved itinerary must be stored as absent, not a placeholder")
	}
	if len(trips[0].Completed) != 1 || trips[0].Completed[0] != "visited" {
		t.Errorf("completed markers = %v", trips[0].Completed)
	}

	close(planGate)
	svc.Wait()
}

func TestSaveTripSnapshotsAreFrozen(t *testing.T) {
	ledger := &memLedger{}
	country := testCountry("Japan", "Tokyo", "Asia")
	country.Languages = map[string]string{"jpn": "Japanese"}
	countries := &stubCountries{queue: []domain_models.Country{country}}
	svc := newTestExplorer(countries, immediateEnricher(), NewItineraryService(), ledger)

	if _, err := svc.StartJourney(context.Background(), ""); err != nil {
		t.Fatalf("start journey: %v", err)
	}
	svc.Wait()

	if _, err := svc.SaveTrip(context.Background()); err != nil {
		t.Fatalf("save trip: %v", err)
	}

	// Mutating the source record must not reach the saved snapshot.
	country.Languages["jpn"] = "mutated"
	country.Capital[0] = "mutated"

	trips, _ := ledger.ListAll(context.Background())
	if trips[0].Country.Languages["jpn"] != "Japanese" {
		t.Error("saved language map shares memory with the source record")
	}
	if trips[0].Country.Capital[0] != "Tokyo" {
		t.Error("saved capital slice shares memory with the source record")
	}
	if trips[0].Itinerary == nil {
		t.Fatal("resolved itinerary should have been captured")
	}
}

func TestSaveTripPersistenceFailureIsNotSurfaced(t *testing.T) {
	ledger := &memLedger{appendErr: errors.New("disk full")}
	countries := &stubCountries{queue: []domain_models.Country{testCountry("Japan", "Tokyo", "Asia")}}
	svc := newTestExplorer(countries, immediateEnricher(), NewItineraryService(), ledger)

	if _, err := svc.StartJourney(context.Background(), ""); err != nil {
		t.Fatalf("start journey: %v", err)
	}
	svc.Wait()

	if _, err := svc.SaveTrip(context.Background()); err != nil {
		t.Fatalf("persistence failure must not surface to the caller: %v", err)
	}
}
