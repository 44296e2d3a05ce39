package services

import (
	"reflect"
	"testing"

	"globetrek/internal/models/domain_models"
)

func testCountry(name, capital, region string) domain_models.Country {
	c := domain_models.Country{
		Name:   domain_models.CountryName{Common: name, Official: name},
		Region: region,
	}
	if capital != "" {
		c.Capital = []string{capital}
	}
	return c
}

func TestSynthesizeDeterministic(t *testing.T) {
	svc := NewItineraryService()
	country := testCountry("Japan", "Tokyo", "Asia")

	first := svc.Synthesize(country)
	second := svc.Synthesize(country)

	if !reflect.DeepEqual(first, second) {
		t.Fatal("expected identical itineraries for identical input")
	}
}

func TestSynthesizeStructure(t *testing.T) {
	svc := NewItineraryService()

	tests := []struct {
		name         string
		country      domain_models.Country
		wantLocation string
	}{
		{
			name:         "capital used in descriptions",
			country:      testCountry("Japan", "Tokyo", "Asia"),
			wantLocation: "Tokyo",
		},
		{
			name:         "missing capital falls back to country name",
			country:      testCountry("Antarctica", "", "Polar"),
			wantLocation: "Antarctica",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := svc.Synthesize(tt.country)

			if plan.Duration != len(plan.Days) {
				t.Fatalf("duration %d does not match day count %d", plan.Duration, len(plan.Days))
			}
			for i, day := range plan.Days {
				if day.Day != i+1 {
					t.Errorf("day %d has ordinal %d, want %d", i, day.Day, i+1)
				}
				if len(day.Activities) == 0 {
					t.Errorf("day %d has no activities", day.Day)
				}
				for _, act := range day.Activities {
					if !act.Type.Valid() {
						t.Errorf("day %d activity %q has invalid type %q", day.Day, act.Title, act.Type)
					}
				}
			}

			if plan.Days[0].Location != tt.wantLocation {
				t.Errorf("day 1 location = %q, want %q", plan.Days[0].Location, tt.wantLocation)
			}
		})
	}
}

func TestSynthesizeActivityOrderIsStable(t *testing.T) {
	svc := NewItineraryService()
	plan := svc.Synthesize(testCountry("France", "Paris", "Europe"))

	wantDayOne := []string{"Airport Arrival", "Hotel Check-in", "Evening Walk", "Welcome Dinner"}
	if len(plan.Days[0].Activities) != len(wantDayOne) {
		t.Fatalf("day 1 has %d activities, want %d", len(plan.Days[0].Activities), len(wantDayOne))
	}
	for i, want := range wantDayOne {
		if got := plan.Days[0].Activities[i].Title; got != want {
			t.Errorf("day 1 activity %d = %q, want %q", i, got, want)
		}
	}
}
