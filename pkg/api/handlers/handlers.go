package handlers

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"linkeddata-hq/lodws/pkg/api/middleware"
)

// QueryTracker counts queries against linked data sources.
// *metrics.ExternalMetrics satisfies it.
type QueryTracker interface {
	TrackQuery(source, endpoint string)
}

// Options configures the API handlers.
type Options struct {
	// BasePath is the API prefix; v1 routes live below BasePath + "/v1".
	BasePath string

	// Version is reported by the root and docs endpoints.
	Version string

	// Queries receives one TrackQuery call per source lookup. May be nil.
	Queries QueryTracker

	// Logger is used for error rendering. Defaults to slog.Default().
	Logger *slog.Logger
}

// API serves the Linked Data Web Service endpoints.
type API struct {
	basePath string
	version  string
	queries  QueryTracker
	logger   *slog.Logger
	started  time.Time
	now      func() time.Time
}

// New creates the API handlers.
func New(opts Options) *API {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Version == "" {
		opts.Version = "1.0.0"
	}
	return &API{
		basePath: strings.TrimSuffix(opts.BasePath, "/"),
		version:  opts.Version,
		queries:  opts.Queries,
		logger:   opts.Logger,
		started:  time.Now(),
		now:      time.Now,
	}
}

// V1Path returns the prefix of the versioned routes, e.g. "/api/v1".
func (a *API) V1Path() string {
	return a.basePath + "/v1"
}

// Register adds every API route to mux, including the JSON 404 fallback.
func (a *API) Register(mux *http.ServeMux) {
	v1 := a.V1Path()

	mux.Handle("GET /{$}", a.handle(a.root))
	mux.Handle("GET /health", a.handle(a.health))
	mux.Handle("GET "+v1+"/docs", a.handle(a.docs))

	// DBpedia
	mux.Handle("GET "+v1+"/dbpedia/lookup/{term}", a.handle(a.dbpediaLookup))
	mux.Handle("GET "+v1+"/dbpedia/organization/{name}", a.handle(a.dbpediaOrganization))

	// Geonames
	mux.Handle("GET "+v1+"/geonames/search", a.handle(a.geonamesSearch))
	mux.Handle("GET "+v1+"/geonames/precise/{location}", a.handle(a.locationLookup("geonames", "precise")))
	mux.Handle("GET "+v1+"/geonames/fuzzy/{location}", a.handle(a.locationLookup("geonames", "fuzzy")))

	// Library of Congress
	mux.Handle("GET "+v1+"/loc/search", a.handle(a.locSearch))
	for _, mode := range locSearchTypes {
		mux.Handle("GET "+v1+"/loc/"+mode+"/{term}", a.handle(a.termLookup("loc", mode)))
	}

	// Ordnance Survey
	mux.Handle("GET "+v1+"/os/precise/{location}", a.handle(a.locationLookup("os", "precise")))
	mux.Handle("GET "+v1+"/os/fuzzy/{location}", a.handle(a.locationLookup("os", "fuzzy")))

	// Heritage sources
	for _, source := range heritageSources {
		mux.Handle("GET "+v1+"/heritage/"+source.Path+"/{term}", a.handle(a.termLookup(source.Path, "lookup")))
	}

	mux.Handle("/", a.handle(a.notFound))
}

func (a *API) handle(fn middleware.HandlerFunc) http.Handler {
	return middleware.ErrorHandler(a.logger, fn)
}

func (a *API) track(source, endpoint string) {
	if a.queries != nil {
		a.queries.TrackQuery(source, endpoint)
	}
}

func (a *API) notFound(w http.ResponseWriter, r *http.Request) error {
	return middleware.NotFound(r)
}
