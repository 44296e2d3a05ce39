package response_models

import "globetrek/internal/models/domain_models"

type PassportSummary struct {
	DistinctCountries int `json:"distinct_countries"`
	TotalStamps       int `json:"total_stamps"`
	UniqueStamps      int `json:"unique_stamps"`
}

type StampResponse struct {
	ID           string                `json:"id"`
	Country      domain_models.Country `json:"country"`
	VisitDate    string                `json:"visit_date"`
	StampDate    string                `json:"stamp_date"`
	Completed    []string              `json:"completed"`
	HasItinerary bool                  `json:"has_itinerary"`
}

type StampPageResponse struct {
	Stamps   []StampResponse `json:"stamps"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
	Total    int             `json:"total"`
}

// BookResponse mirrors the passport book state machine: closed, or open at
// a zero-based page with that page's stamp.
type BookResponse struct {
	Open       bool           `json:"open"`
	Page       int            `json:"page"`
	TotalPages int            `json:"total_pages"`
	Stamp      *StampResponse `json:"stamp,omitempty"`
}
