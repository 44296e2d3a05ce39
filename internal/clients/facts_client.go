package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"globetrek/internal/models/domain_models"
)

type FactsProvider interface {
	CulturalFacts(ctx context.Context, country domain_models.Country) ([]domain_models.CulturalFact, error)
}

// WikipediaFactsClient builds the cultural-fact set from the Wikipedia REST
// summary plus fields already present on the country record.
type WikipediaFactsClient struct {
	httpClient *http.Client
	baseURL    string
}

func NewWikipediaFactsClient(baseURL string, timeout time.Duration) *WikipediaFactsClient {
	return &WikipediaFactsClient{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
	}
}

func (c *WikipediaFactsClient) CulturalFacts(ctx context.Context, country domain_models.Country) ([]domain_models.CulturalFact, error) {
	u := fmt.Sprintf("%s/api/rest_v1/page/summary/%s", c.baseURL, url.PathEscape(country.Name.Common))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("wikipedia summary http error: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return nil, fmt.Errorf("wikipedia summary bad status: %s", resp.Status)
	}

	var payload struct {
		Extract string `json:"extract"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("wikipedia decode: %w", err)
	}

	facts := []domain_models.CulturalFact{
		{Title: "Overview", Content: payload.Extract},
	}
	if names := languageNames(country.Languages); len(names) > 0 {
		facts = append(facts, domain_models.CulturalFact{
			Title:   "Languages",
			Content: "Official languages: " + strings.Join(names, ", "),
		})
	}
	if currencies := currencyLine(country.Currencies); currencies != "" {
		facts = append(facts, domain_models.CulturalFact{
			Title:   "Currency",
			Content: currencies,
		})
	}
	if len(country.Capital) > 0 {
		facts = append(facts, domain_models.CulturalFact{
			Title:   "Capital City",
			Content: "The capital city is " + country.Capital[0],
		})
	}
	return facts, nil
}

// Map iteration order is random; sort by code so fact text is stable.
func languageNames(langs map[string]string) []string {
	codes := make([]string, 0, len(langs))
	for code := range langs {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	names := make([]string, 0, len(codes))
	for _, code := range codes {
		names = append(names, langs[code])
	}
	return names
}

func currencyLine(currencies map[string]domain_models.Currency) string {
	codes := make([]string, 0, len(currencies))
	for code := range currencies {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	parts := make([]string, 0, len(codes))
	for _, code := range codes {
		cur := currencies[code]
		parts = append(parts, fmt.Sprintf("%s (%s)", cur.Name, cur.Symbol))
	}
	return strings.Join(parts, ", ")
}
