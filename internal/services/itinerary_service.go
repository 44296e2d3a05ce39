package services

import (
	"globetrek/internal/models/domain_models"
)

type ItineraryServiceInterface interface {
	// Synthesize is pure and deterministic: the same country always yields
	// a structurally identical plan.
	Synthesize(country domain_models.Country) domain_models.Itinerary
}

type ItineraryService struct{}

func NewItineraryService() ItineraryServiceInterface {
	return &ItineraryService{}
}

func (s *ItineraryService) Synthesize(country domain_models.Country) domain_models.Itinerary {
	capital := country.Name.Common
	if len(country.Capital) > 0 && country.Capital[0] != "" {
		capital = country.Capital[0]
	}

	return domain_models.Itinerary{
		Duration: 2,
		Days: []domain_models.Day{
			{
				Day:             1,
				Title:           "Arrival & First Impressions",
				Description:     "Landing in " + capital + " International Airport",
				Location:        capital,
				Mood:            "Excited and curious",
				WeatherForecast: "Sunny with light clouds",
				Activities: []domain_models.Activity{
					{
						Time:        "14:00",
						Title:       "Airport Arrival",
						Description: "Clear customs and collect baggage",
						Type:        domain_models.ActivityTransport,
					},
					{
						Time:        "15:30",
						Title:       "Hotel Check-in",
						Description: "Settle in and freshen up at your boutique hotel",
						Type:        domain_models.ActivityAccommodation,
					},
					{
						Time:        "17:00",
						Title:       "Evening Walk",
						Description: "Explore the local neighborhood and get oriented",
						Type:        domain_models.ActivityLeisure,
					},
					{
						Time:        "19:00",
						Title:       "Welcome Dinner",
						Description: "Traditional local cuisine at a nearby restaurant",
						Type:        domain_models.ActivityFood,
					},
				},
				Tips: []string{
					"Download offline maps",
					"Keep some local currency handy",
					"Stay hydrated",
				},
			},
			{
				Day:             2,
				Title:           "Cultural Immersion",
				Description:     "Diving into local history and traditions",
				Location:        capital + " City Center",
				Mood:            "Culturally enriched",
				WeatherForecast: "Perfect for walking tours",
				Activities: []domain_models.Activity{
					{
						Time:        "09:00",
						Title:       "Historical Tour",
						Description: "Guided walk through historic districts",
						Type:        domain_models.ActivityCulture,
					},
					{
						Time:        "12:30",
						Title:       "Local Market Visit",
						Description: "Experience local life and try street food",
						Type:        domain_models.ActivityFood,
					},
					{
						Time:        "15:00",
						Title:       "Museum Visit",
						Description: "Explore national history and art",
						Type:        domain_models.ActivityCulture,
					},
					{
						Time:        "18:00",
						Title:       "Sunset Viewpoint",
						Description: "Panoramic city views at golden hour",
						Type:        domain_models.ActivitySightseeing,
					},
				},
				Tips: []string{
					"Wear comfortable walking shoes",
					"Bring a camera",
					"Respect local customs",
				},
			},
		},
		TotalCost:       "$1,500 - $2,000",
		BestTimeToVisit: "Spring (March to May)",
		WeatherSummary:  "Mild temperatures with occasional rain",
		PackingTips: []string{
			"Light, breathable clothing",
			"Comfortable walking shoes",
			"Universal power adapter",
			"Rain jacket",
		},
		LocalCustoms: []string{
			"Remove shoes before entering homes",
			"Greet elders with respect",
			"Tipping customs vary by establishment",
		},
	}
}
