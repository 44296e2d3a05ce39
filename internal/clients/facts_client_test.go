package clients

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"globetrek/internal/models/domain_models"
)

func japanRecord() domain_models.Country {
	return domain_models.Country{
		Name:    domain_models.CountryName{Common: "Japan", Official: "Japan"},
		Capital: []string{"Tokyo"},
		Region:  "Asia",
		Languages: map[string]string{
			"jpn": "Japanese",
		},
		Currencies: map[string]domain_models.Currency{
			"JPY": {Name: "Japanese yen", Symbol: "¥"},
		},
	}
}

func TestCulturalFacts(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/rest_v1/page/summary/Japan" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`{"extract":"Japan is an island country in East Asia."}`))
	}))
	defer server.Close()

	client := NewWikipediaFactsClient(server.URL, time.Second)

	facts, err := client.CulturalFacts(context.Background(), japanRecord())
	if err != nil {
		t.Fatalf("cultural facts: %v", err)
	}

	want := []domain_models.CulturalFact{
		{Title: "Overview", Content: "Japan is an island country in East Asia."},
		{Title: "Languages", Content: "Official languages: Japanese"},
		{Title: "Currency", Content: "Japanese yen (¥)"},
		{Title: "Capital City", Content: "The capital city is Tokyo"},
	}
	if len(facts) != len(want) {
		t.Fatalf("got %d facts, want %d", len(facts), len(want))
	}
	for i := range want {
		if facts[i] != want[i] {
			t.Errorf("fact %d = %+v, want %+v", i, facts[i], want[i])
		}
	}
}

func TestCulturalFactsOmitsEmptySections(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"extract":"A place."}`))
	}))
	defer server.Close()

	client := NewWikipediaFactsClient(server.URL, time.Second)

	country := domain_models.Country{
		Name:   domain_models.CountryName{Common: "Japan"},
		Region: "Asia",
	}
	facts, err := client.CulturalFacts(context.Background(), country)
	if err != nil {
		t.Fatalf("cultural facts: %v", err)
	}
	if len(facts) != 1 {
		t.Fatalf("got %d facts, want only the overview", len(facts))
	}
}

func TestCulturalFactsUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewWikipediaFactsClient(server.URL, time.Second)

	if _, err := client.CulturalFacts(context.Background(), japanRecord()); err == nil {
		t.Fatal("expected an error on upstream failure")
	}
}
