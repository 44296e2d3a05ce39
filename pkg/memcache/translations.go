// pkg/memcache/translations.go
package memcache

import (
	"sync"
	"time"
)

// TranslationCache memoizes successful phrase translations so repeat visits
// to countries sharing a language do not re-hit the translation API.
type TranslationCache interface {
	Set(phrase, lang, translation string, ttl time.Duration)

	// Get returns the cached translation for (phrase, lang) if not expired.
	Get(phrase, lang string) (string, bool)
}

type entry struct {
	translation string
	expiresAt   time.Time
}

type cacheKey struct {
	phrase string
	lang   string
}

type translationCache struct {
	mu   sync.RWMutex
	data map[cacheKey]entry
}

func NewTranslationCache() TranslationCache {
	return &translationCache{
		data: make(map[cacheKey]entry),
	}
}

func (c *translationCache) Set(phrase, lang, translation string, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[cacheKey{phrase: phrase, lang: lang}] = entry{
		translation: translation,
		expiresAt:   time.Now().Add(ttl),
	}
}

func (c *translationCache) Get(phrase, lang string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.data[cacheKey{phrase: phrase, lang: lang}]
	if !ok || time.Now().After(e.expiresAt) {
		return "", false
	}
	return e.translation, true
}
