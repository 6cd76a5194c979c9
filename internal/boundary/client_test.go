package boundary

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

const sampleGeoJSON = `{"type":"FeatureCollection","features":[]}`

func TestFetchCachesBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(sampleGeoJSON))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	if _, ok := c.Cached(); ok {
		t.Error("cache should be empty before fetch")
	}

	if err := c.Fetch(context.Background()); err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	data, ok := c.Cached()
	if !ok {
		t.Fatal("expected cached data after fetch")
	}
	if string(data) != sampleGeoJSON {
		t.Errorf("cached %q", data)
	}
}

func TestFetchServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	if err := c.Fetch(context.Background()); err == nil {
		t.Error("expected error on 500")
	}
	if _, ok := c.Cached(); ok {
		t.Error("failed fetch must not populate the cache")
	}
}

func TestFetchRejectsInvalidJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not geojson</html>"))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	if err := c.Fetch(context.Background()); err == nil {
		t.Error("expected error on non-JSON body")
	}
}

func TestFetchUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := NewClient(url, time.Second)
	if err := c.Fetch(context.Background()); err == nil {
		t.Error("expected error for unreachable server")
	}
}
