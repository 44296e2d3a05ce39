package response_models

import "globetrek/internal/models/domain_models"

// TripView is the explorer aggregate: the country header plus the four
// independently-resolving slots. It is renderable at every intermediate
// state, including all-pending.
type TripView struct {
	JourneyID string                      `json:"journey_id"`
	Country   domain_models.Country       `json:"country"`
	Facts     domain_models.FactsSlot     `json:"facts"`
	Lessons   domain_models.LessonsSlot   `json:"lessons"`
	Images    domain_models.ImagesSlot    `json:"images"`
	Itinerary domain_models.ItinerarySlot `json:"itinerary"`
}

type StartJourneyResponse struct {
	JourneyID string                `json:"journey_id"`
	Country   domain_models.Country `json:"country"`
}

type SaveTripResponse struct {
	StampID   string `json:"stamp_id"`
	VisitDate string `json:"visit_date"`
	Redirect  string `json:"redirect"`
}
