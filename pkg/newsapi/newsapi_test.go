package newsapi_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"jarvis-assistant/pkg/newsapi"
)

func TestTopHeadline(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/top-headlines" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if r.Header.Get("X-Api-Key") != "test-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if r.URL.Query().Get("country") != "us" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.Write([]byte(`{"status":"ok","articles":[
			{"title":"Go 2 released","description":"Generics everywhere"},
			{"title":"Second","description":"x"}]}`))
	}))
	defer ts.Close()

	client, err := newsapi.New(newsapi.Config{APIKey: "test-key", BaseURL: ts.URL})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	a, err := client.TopHeadline(context.Background())
	if err != nil {
		t.Fatalf("TopHeadline: %v", err)
	}
	if a.Title != "Go 2 released" {
		t.Errorf("title = %q", a.Title)
	}
}

func TestTopHeadline_Empty(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"ok","articles":[]}`))
	}))
	defer ts.Close()

	client, _ := newsapi.New(newsapi.Config{APIKey: "k", BaseURL: ts.URL})
	if _, err := client.TopHeadline(context.Background()); !errors.Is(err, newsapi.ErrNoArticles) {
		t.Errorf("expected ErrNoArticles, got %v", err)
	}
}

func TestTopHeadline_APIError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"status":"error","code":"apiKeyInvalid"}`))
	}))
	defer ts.Close()

	client, _ := newsapi.New(newsapi.Config{APIKey: "bad", BaseURL: ts.URL})
	if _, err := client.TopHeadline(context.Background()); err == nil {
		t.Errorf("expected error for 401")
	}
}

func TestNew_RequiresAPIKey(t *testing.T) {
	if _, err := newsapi.New(newsapi.Config{}); !errors.Is(err, newsapi.ErrAPIKeyRequired) {
		t.Errorf("expected ErrAPIKeyRequired, got %v", err)
	}
}
