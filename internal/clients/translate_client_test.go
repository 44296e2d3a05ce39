package clients

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"globetrek/pkg/memcache"
)

func TestTranslate(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if got := r.URL.Query().Get("q"); got != "Hello" {
			t.Errorf("q = %q, want Hello", got)
		}
		if got := r.URL.Query().Get("langpair"); got != "en|jpn" {
			t.Errorf("langpair = %q, want en|jpn", got)
		}
		w.Write([]byte(`{"responseStatus":200,"responseData":{"translatedText":"こんにちは"}}`))
	}))
	defer server.Close()

	client := NewMyMemoryClient(server.URL, time.Second, time.Minute, memcache.NewTranslationCache())

	got, err := client.Translate(context.Background(), "Hello", "jpn")
	if err != nil {
		t.Fatalf("translate: %v", err)
	}
	if got != "こんにちは" {
		t.Errorf("translation = %q", got)
	}

	// Second identical call is served from the cache.
	if _, err := client.Translate(context.Background(), "Hello", "jpn"); err != nil {
		t.Fatalf("cached translate: %v", err)
	}
	if calls != 1 {
		t.Errorf("upstream calls = %d, want 1", calls)
	}
}

func TestTranslateRejectedStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"responseStatus":403,"responseDetails":"daily limit reached"}`))
	}))
	defer server.Close()

	client := NewMyMemoryClient(server.URL, time.Second, time.Minute, memcache.NewTranslationCache())

	if _, err := client.Translate(context.Background(), "Hello", "jpn"); err == nil {
		t.Fatal("expected an error for a rejected translation")
	}
}

func TestTranslateHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewMyMemoryClient(server.URL, time.Second, time.Minute, nil)

	if _, err := client.Translate(context.Background(), "Hello", "jpn"); err == nil {
		t.Fatal("expected an error on upstream failure")
	}
}
