package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ListenPort string // ex: "8080"

	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)

	PostgresURL string

	// Redis is optional; empty addr disables the country-list cache.
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	CountriesBaseURL string // REST Countries, ex: https://restcountries.com/v3.1
	WikipediaBaseURL string // ex: https://en.wikipedia.org
	TranslateBaseURL string // MyMemory, ex: https://api.mymemory.translated.net

	FetchTimeout        time.Duration // per external request
	CountryCacheTTL     time.Duration // cached REST Countries list
	TranslationCacheTTL time.Duration // memoized phrase translations
}

func Load() *Config {
	// Best effort; a missing .env is not an error.
	_ = godotenv.Load()

	return &Config{
		ListenPort: getenv("GLOBETREK_PORT", "8080"),

		LogLevel:  getenv("GLOBETREK_LOG_LEVEL", "info"),
		PrettyLog: mustBool("GLOBETREK_PRETTY_LOG", false),

		PostgresURL: getenv("POSTGRES_URL", ""),

		RedisAddr:     getenv("GLOBETREK_REDIS_ADDR", ""),
		RedisPassword: getenv("GLOBETREK_REDIS_PASSWORD", ""),
		RedisDB:       mustInt("GLOBETREK_REDIS_DB", 0),

		CountriesBaseURL: getenv("GLOBETREK_COUNTRIES_URL", "https://restcountries.com/v3.1"),
		WikipediaBaseURL: getenv("GLOBETREK_WIKIPEDIA_URL", "https://en.wikipedia.org"),
		TranslateBaseURL: getenv("GLOBETREK_TRANSLATE_URL", "https://api.mymemory.translated.net"),

		FetchTimeout:        mustDuration("GLOBETREK_FETCH_TIMEOUT", 15*time.Second),
		CountryCacheTTL:     mustDuration("GLOBETREK_COUNTRY_CACHE_TTL", 24*time.Hour),
		TranslationCacheTTL: mustDuration("GLOBETREK_TRANSLATION_CACHE_TTL", 12*time.Hour),
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func mustBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Printf("config: invalid bool for %s=%q, using %v", key, v, def)
		return def
	}
	return b
}

func mustInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("config: invalid int for %s=%q, using %d", key, v, def)
		return def
	}
	return n
}

func mustDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("config: invalid duration for %s=%q, using %s", key, v, def)
		return def
	}
	return d
}
