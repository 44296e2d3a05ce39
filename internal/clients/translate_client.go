package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"globetrek/pkg/memcache"
)

type TranslationProvider interface {
	Translate(ctx context.Context, text, targetLang string) (string, error)
}

// MyMemoryClient translates english phrases via the MyMemory public API.
type MyMemoryClient struct {
	httpClient *http.Client
	baseURL    string
	cache      memcache.TranslationCache
	cacheTTL   time.Duration
}

func NewMyMemoryClient(baseURL string, timeout, cacheTTL time.Duration, cache memcache.TranslationCache) *MyMemoryClient {
	return &MyMemoryClient{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		cache:      cache,
		cacheTTL:   cacheTTL,
	}
}

func (c *MyMemoryClient) Translate(ctx context.Context, text, targetLang string) (string, error) {
	if c.cache != nil {
		if tr, ok := c.cache.Get(text, targetLang); ok {
			return tr, nil
		}
	}

	q := url.Values{}
	q.Set("q", text)
	q.Set("langpair", "en|"+targetLang)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/get?"+q.Encode(), nil)
	if err != nil {
		return "", err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("translate http error: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return "", fmt.Errorf("translate bad status: %s", resp.Status)
	}

	var payload struct {
		ResponseStatus  int    `json:"responseStatus"`
		ResponseDetails string `json:"responseDetails"`
		ResponseData    struct {
			TranslatedText string `json:"translatedText"`
		} `json:"responseData"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("translate decode: %w", err)
	}
	if payload.ResponseStatus != 200 {
		return "", fmt.Errorf("translate rejected: %s", payload.ResponseDetails)
	}

	if c.cache != nil {
		c.cache.Set(text, targetLang, payload.ResponseData.TranslatedText, c.cacheTTL)
	}
	return payload.ResponseData.TranslatedText, nil
}
