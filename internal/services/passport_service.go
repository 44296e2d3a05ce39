package services

import (
	"context"
	"sync"

	"globetrek/internal/models/domain_models"
	"globetrek/internal/models/response_models"
	"globetrek/internal/repositories"
	"globetrek/pkg/utils"
)

type PassportServiceInterface interface {
	Summary(ctx context.Context) (*response_models.PassportSummary, error)
	UniqueStamps(ctx context.Context, page, pageSize int) (*response_models.StampPageResponse, error)

	Book(ctx context.Context) (*response_models.BookResponse, error)
	ToggleBook(ctx context.Context) (*response_models.BookResponse, error)
	NextPage(ctx context.Context) (*response_models.BookResponse, error)
	PreviousPage(ctx context.Context) (*response_models.BookResponse, error)
}

type PassportService struct {
	ledger repositories.LedgerRepository

	mu   sync.Mutex
	open bool
	page int
}

func NewPassportService(ledger repositories.LedgerRepository) PassportServiceInterface {
	return &PassportService{ledger: ledger}
}

func (s *PassportService) Summary(ctx context.Context) (*response_models.PassportSummary, error) {
	trips, err := s.ledger.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return &response_models.PassportSummary{
		DistinctCountries: distinctCountryCount(trips),
		TotalStamps:       len(trips),
		UniqueStamps:      len(uniqueByCountryDay(trips)),
	}, nil
}

func (s *PassportService) UniqueStamps(ctx context.Context, page, pageSize int) (*response_models.StampPageResponse, error) {
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return nil, utils.ErrInvalidPageSize
	}

	unique, err := s.uniqueProjection(ctx)
	if err != nil {
		return nil, err
	}

	start := (page - 1) * pageSize
	if start > len(unique) {
		start = len(unique)
	}
	end := start + pageSize
	if end > len(unique) {
		end = len(unique)
	}

	stamps := make([]response_models.StampResponse, 0, end-start)
	for _, trip := range unique[start:end] {
		stamps = append(stamps, toStampResponse(trip))
	}
	return &response_models.StampPageResponse{
		Stamps:   stamps,
		Page:     page,
		PageSize: pageSize,
		Total:    len(unique),
	}, nil
}

// Book pagination state machine: closed, or open at a zero-based page.

func (s *PassportService) Book(ctx context.Context) (*response_models.BookResponse, error) {
	unique, err := s.uniqueProjection(ctx)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bookResponse(unique), nil
}

func (s *PassportService) ToggleBook(ctx context.Context) (*response_models.BookResponse, error) {
	unique, err := s.uniqueProjection(ctx)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.open = !s.open
	if s.open {
		s.page = 0
	}
	return s.bookResponse(unique), nil
}

// NextPage advances the open book; advancing past the last page closes it
// and resets to page zero rather than erroring.
func (s *PassportService) NextPage(ctx context.Context) (*response_models.BookResponse, error) {
	unique, err := s.uniqueProjection(ctx)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.open {
		if s.page >= len(unique)-1 {
			s.open = false
			s.page = 0
		} else {
			s.page++
		}
	}
	return s.bookResponse(unique), nil
}

// PreviousPage is a no-op on the first page.
func (s *PassportService) PreviousPage(ctx context.Context) (*response_models.BookResponse, error) {
	unique, err := s.uniqueProjection(ctx)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.open && s.page > 0 {
		s.page--
	}
	return s.bookResponse(unique), nil
}

func (s *PassportService) bookResponse(unique []domain_models.SavedTrip) *response_models.BookResponse {
	resp := &response_models.BookResponse{
		Open:       s.open,
		Page:       s.page,
		TotalPages: len(unique),
	}
	if s.open && s.page < len(unique) {
		stamp := toStampResponse(unique[s.page])
		resp.Stamp = &stamp
	}
	return resp
}

func (s *PassportService) uniqueProjection(ctx context.Context) ([]domain_models.SavedTrip, error) {
	trips, err := s.ledger.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return uniqueByCountryDay(trips), nil
}

// uniqueByCountryDay keeps the first-appended trip per (country, UTC
// calendar day) pair, preserving ledger order. Recomputed on every read.
func uniqueByCountryDay(trips []domain_models.SavedTrip) []domain_models.SavedTrip {
	seen := make(map[string]bool, len(trips))
	out := make([]domain_models.SavedTrip, 0, len(trips))
	for _, trip := range trips {
		key := trip.Country.Name.Common + "_" + utils.DayKeyUTC(trip.VisitDate)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, trip)
	}
	return out
}

// distinctCountryCount counts distinct country names over the full ledger,
// independent of date collapsing.
func distinctCountryCount(trips []domain_models.SavedTrip) int {
	names := make(map[string]struct{}, len(trips))
	for _, trip := range trips {
		names[trip.Country.Name.Common] = struct{}{}
	}
	return len(names)
}

func toStampResponse(trip domain_models.SavedTrip) response_models.StampResponse {
	return response_models.StampResponse{
		ID:           trip.ID.String(),
		Country:      trip.Country,
		VisitDate:    utils.FormatRFC3339(trip.VisitDate),
		StampDate:    utils.FormatStampDate(trip.VisitDate),
		Completed:    trip.Completed,
		HasItinerary: trip.Itinerary != nil,
	}
}
