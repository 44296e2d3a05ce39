package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"net/url"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"globetrek/internal/models/domain_models"
	"globetrek/pkg/logger"
	"globetrek/pkg/utils"
)

const countryListCacheKey = "globetrek:countries:all"

// countryFields keeps the upstream payload down to what the Country record
// actually carries.
const countryFields = "name,capital,flags,latlng,population,currencies,languages,region"

type CountryProvider interface {
	GetRandom(ctx context.Context) (domain_models.Country, error)
	GetByName(ctx context.Context, name string) (domain_models.Country, error)
}

type RESTCountriesClient struct {
	httpClient *http.Client
	baseURL    string
	cache      *goredis.Client // nil => cache disabled
	cacheTTL   time.Duration
	log        logger.Logger

	// pick chooses an index in [0, n); swapped out in tests.
	pick func(n int) int
}

func NewRESTCountriesClient(baseURL string, timeout, cacheTTL time.Duration, cache *goredis.Client, log logger.Logger) *RESTCountriesClient {
	return &RESTCountriesClient{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		cache:      cache,
		cacheTTL:   cacheTTL,
		log:        log,
		pick:       rand.Intn,
	}
}

func (c *RESTCountriesClient) GetRandom(ctx context.Context) (domain_models.Country, error) {
	list, err := c.countryList(ctx)
	if err != nil {
		return domain_models.Country{}, err
	}
	if len(list) == 0 {
		return domain_models.Country{}, utils.ErrCountryNotFound
	}
	return list[c.pick(len(list))], nil
}

func (c *RESTCountriesClient) GetByName(ctx context.Context, name string) (domain_models.Country, error) {
	u := fmt.Sprintf("%s/name/%s?fields=%s", c.baseURL, url.PathEscape(name), countryFields)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return domain_models.Country{}, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain_models.Country{}, fmt.Errorf("countries lookup http error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return domain_models.Country{}, utils.ErrCountryNotFound
	}
	if resp.StatusCode/100 != 2 {
		return domain_models.Country{}, fmt.Errorf("countries lookup bad status: %s", resp.Status)
	}

	var matches []domain_models.Country
	if err := json.NewDecoder(resp.Body).Decode(&matches); err != nil {
		return domain_models.Country{}, fmt.Errorf("countries decode: %w", err)
	}
	if len(matches) == 0 {
		return domain_models.Country{}, utils.ErrCountryNotFound
	}
	return matches[0], nil
}

// countryList serves the full list from the Redis cache when possible.
// Cache errors never fail the lookup.
func (c *RESTCountriesClient) countryList(ctx context.Context) ([]domain_models.Country, error) {
	if c.cache != nil {
		if raw, err := c.cache.Get(ctx, countryListCacheKey).Bytes(); err == nil {
			var list []domain_models.Country
			if err := json.Unmarshal(raw, &list); err == nil && len(list) > 0 {
				return list, nil
			}
			c.log.Warn("cached country list unreadable, refetching")
		}
	}

	u := fmt.Sprintf("%s/all?fields=%s", c.baseURL, countryFields)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("countries list http error: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return nil, fmt.Errorf("countries list bad status: %s", resp.Status)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("countries list read: %w", err)
	}

	var list []domain_models.Country
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, fmt.Errorf("countries decode: %w", err)
	}

	if c.cache != nil {
		if err := c.cache.Set(ctx, countryListCacheKey, raw, c.cacheTTL).Err(); err != nil {
			c.log.Warnf("failed to cache country list: %v", err)
		}
	}
	return list, nil
}
