package handlers

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"
)

type recordingTracker struct {
	mu    sync.Mutex
	calls []string
}

func (r *recordingTracker) TrackQuery(source, endpoint string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, source+"/"+endpoint)
}

func newTestAPI(t *testing.T) (*recordingTracker, http.Handler) {
	t.Helper()
	tracker := &recordingTracker{}
	api := New(Options{
		BasePath: "/api",
		Queries:  tracker,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	mux := http.NewServeMux()
	api.Register(mux)
	return tracker, mux
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not JSON: %v (%q)", err, w.Body.String())
	}
	return body
}

func TestRoot(t *testing.T) {
	_, h := newTestAPI(t)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	body := decode(t, w)
	for _, key := range []string{"name", "version", "endpoints"} {
		if _, ok := body[key]; !ok {
			t.Errorf("missing %q in %v", key, body)
		}
	}
	endpoints := body["endpoints"].(map[string]any)
	if endpoints["api"] != "/api/v1" {
		t.Errorf("api endpoint = %v, want /api/v1", endpoints["api"])
	}
}

func TestHealth(t *testing.T) {
	tracker := &recordingTracker{}
	api := New(Options{BasePath: "/api", Queries: tracker})
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	api.started = start
	api.now = func() time.Time { return start.Add(90 * time.Second) }

	mux := http.NewServeMux()
	api.Register(mux)

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	body := decode(t, w)
	if body["status"] != "healthy" {
		t.Errorf("status = %v, want healthy", body["status"])
	}
	if body["uptime"] != float64(90) {
		t.Errorf("uptime = %v, want 90", body["uptime"])
	}
	if body["timestamp"] != "2025-01-01T00:01:30Z" {
		t.Errorf("timestamp = %v", body["timestamp"])
	}
	if len(tracker.calls) != 0 {
		t.Errorf("health should not track queries, got %v", tracker.calls)
	}
}

func TestDocs(t *testing.T) {
	_, h := newTestAPI(t)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/docs", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	body := decode(t, w)
	if _, ok := body["title"]; !ok {
		t.Error("missing title")
	}
	endpoints := body["endpoints"].(map[string]any)
	for _, source := range []string{"dbpedia", "geonames", "loc", "os", "heritage"} {
		if _, ok := endpoints[source]; !ok {
			t.Errorf("docs missing %s", source)
		}
	}
}

func TestSourceLookups(t *testing.T) {
	tests := []struct {
		name      string
		path      string
		wantField string
		wantValue string
		wantTrack string
	}{
		{"dbpedia lookup", "/api/v1/dbpedia/lookup/test", "term", "test", "dbpedia/lookup"},
		{"dbpedia lookup with spaces", "/api/v1/dbpedia/lookup/albert%20einstein", "term", "albert einstein", "dbpedia/lookup"},
		{"dbpedia organization", "/api/v1/dbpedia/organization/nasa", "organization", "nasa", "dbpedia/organization"},
		{"geonames search", "/api/v1/geonames/search?q=london", "query", "london", "geonames/search"},
		{"geonames precise", "/api/v1/geonames/precise/london", "location", "london", "geonames/precise"},
		{"geonames fuzzy", "/api/v1/geonames/fuzzy/london", "location", "london", "geonames/fuzzy"},
		{"loc search", "/api/v1/loc/search?q=history&type=prefix", "searchType", "prefix", "loc/search"},
		{"loc search default type", "/api/v1/loc/search?q=history", "searchType", "exact", "loc/search"},
		{"loc exact", "/api/v1/loc/exact/history", "term", "history", "loc/exact"},
		{"loc prefix", "/api/v1/loc/prefix/hist", "term", "hist", "loc/prefix"},
		{"loc fuzzy", "/api/v1/loc/fuzzy/histry", "term", "histry", "loc/fuzzy"},
		{"os precise", "/api/v1/os/precise/london", "location", "london", "os/precise"},
		{"os fuzzy", "/api/v1/os/fuzzy/londn", "location", "londn", "os/fuzzy"},
		{"nomisma", "/api/v1/heritage/nomisma/denarius", "term", "denarius", "nomisma/lookup"},
		{"fish", "/api/v1/heritage/fish/barrow", "term", "barrow", "fish/lookup"},
		{"getty", "/api/v1/heritage/getty/amphora", "term", "amphora", "getty/lookup"},
		{"ads", "/api/v1/heritage/ads/hillfort", "term", "hillfort", "ads/lookup"},
		{"nfdi4objects", "/api/v1/heritage/nfdi4objects/fibula", "term", "fibula", "nfdi4objects/lookup"},
		{"periodo", "/api/v1/heritage/periodo/bronze", "term", "bronze", "periodo/lookup"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tracker, h := newTestAPI(t)

			w := httptest.NewRecorder()
			h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

			if w.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200 (%s)", w.Code, w.Body.String())
			}
			body := decode(t, w)
			if body[tt.wantField] != tt.wantValue {
				t.Errorf("%s = %v, want %q", tt.wantField, body[tt.wantField], tt.wantValue)
			}
			if results, ok := body["results"].([]any); !ok || len(results) != 0 {
				t.Errorf("results = %v, want empty list", body["results"])
			}
			if len(tracker.calls) != 1 || tracker.calls[0] != tt.wantTrack {
				t.Errorf("tracked %v, want [%s]", tracker.calls, tt.wantTrack)
			}
		})
	}
}

func TestGeonamesSearchFilters(t *testing.T) {
	_, h := newTestAPI(t)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/geonames/search?q=paris&country=FR&fuzzy=true", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	filters := decode(t, w)["filters"].(map[string]any)
	if filters["country"] != "FR" || filters["continent"] != "none" || filters["fuzzy"] != true {
		t.Errorf("filters = %v", filters)
	}
}

func TestValidationFailures(t *testing.T) {
	tests := []struct {
		name      string
		path      string
		wantParam string
	}{
		{"geonames search without q", "/api/v1/geonames/search", "q"},
		{"geonames search with blank q", "/api/v1/geonames/search?q=%20%20", "q"},
		{"geonames search with bad fuzzy", "/api/v1/geonames/search?q=x&fuzzy=perhaps", "fuzzy"},
		{"loc search without q", "/api/v1/loc/search", "q"},
		{"loc search with bad type", "/api/v1/loc/search?q=x&type=regex", "type"},
		{"blank term", "/api/v1/dbpedia/lookup/%20", "term"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tracker, h := newTestAPI(t)

			w := httptest.NewRecorder()
			h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

			if w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400 (%s)", w.Code, w.Body.String())
			}
			body := decode(t, w)
			if body["error"] != "Validation Error" {
				t.Errorf("error = %v, want Validation Error", body["error"])
			}
			violations, _ := body["errors"].([]any)
			if len(violations) != 1 || violations[0].(map[string]any)["param"] != tt.wantParam {
				t.Errorf("errors = %v, want single violation for %q", body["errors"], tt.wantParam)
			}
			if len(tracker.calls) != 0 {
				t.Errorf("rejected request should not be tracked, got %v", tracker.calls)
			}
		})
	}
}

func TestNotFound(t *testing.T) {
	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/unknown/route"},
		{http.MethodGet, "/api/v2/docs"},
		{http.MethodPost, "/health"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			_, h := newTestAPI(t)

			w := httptest.NewRecorder()
			h.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))

			if w.Code != http.StatusNotFound {
				t.Fatalf("status = %d, want 404", w.Code)
			}
			body := decode(t, w)
			if body["error"] != "Not Found" {
				t.Errorf("error = %v, want Not Found", body["error"])
			}
			if body["message"] != "Cannot "+tt.method+" "+tt.path {
				t.Errorf("message = %v", body["message"])
			}
		})
	}
}

func TestNilQueryTracker(t *testing.T) {
	api := New(Options{BasePath: "/lod/"})
	mux := http.NewServeMux()
	api.Register(mux)

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/lod/v1/os/precise/york", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
}
