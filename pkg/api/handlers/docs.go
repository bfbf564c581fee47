package handlers

import (
	"net/http"

	"linkeddata-hq/lodws/pkg/api/middleware"
)

// SourceDoc documents one linked data source.
type SourceDoc struct {
	Description string            `json:"description"`
	Routes      map[string]string `json:"routes"`
}

// APIDocs is the body of GET {base}/v1/docs.
type APIDocs struct {
	Title       string               `json:"title"`
	Version     string               `json:"version"`
	Description string               `json:"description"`
	Endpoints   map[string]SourceDoc `json:"endpoints"`
}

type heritageSource struct {
	Path        string
	Description string
}

var heritageSources = []heritageSource{
	{Path: "nomisma", Description: "Nomisma numismatic data"},
	{Path: "fish", Description: "Heritage Data UK FISH vocabularies"},
	{Path: "getty", Description: "Getty AAT Art & Architecture Thesaurus"},
	{Path: "ads", Description: "Archaeology Data Service"},
	{Path: "nfdi4objects", Description: "NFDI4Objects archaeological data"},
	{Path: "periodo", Description: "PeriodO period definitions"},
}

func (a *API) docs(w http.ResponseWriter, r *http.Request) error {
	heritage := make(map[string]string, len(heritageSources))
	for _, s := range heritageSources {
		heritage["GET /heritage/"+s.Path+"/:term"] = s.Description
	}

	middleware.WriteJSON(w, http.StatusOK, APIDocs{
		Title:       "Linked Data Web Service API",
		Version:     a.version,
		Description: "RESTful API for querying various linked data sources",
		Endpoints: map[string]SourceDoc{
			"dbpedia": {
				Description: "Query DBPedia for organizations and entities",
				Routes: map[string]string{
					"GET /dbpedia/lookup/:term":       "Look up entities by term",
					"GET /dbpedia/organization/:name": "Look up organizations",
				},
			},
			"geonames": {
				Description: "Query Geonames for geographic locations",
				Routes: map[string]string{
					"GET /geonames/search":            "Search locations (query params: q, country, continent, fuzzy)",
					"GET /geonames/precise/:location": "Precise location lookup",
					"GET /geonames/fuzzy/:location":   "Fuzzy location lookup",
				},
			},
			"loc": {
				Description: "Query Library of Congress subject headings",
				Routes: map[string]string{
					"GET /loc/search":       "Search subject headings (query params: q, type=exact|prefix|fuzzy)",
					"GET /loc/exact/:term":  "Exact subject heading lookup",
					"GET /loc/prefix/:term": "Prefix-based lookup",
					"GET /loc/fuzzy/:term":  "Fuzzy lookup",
				},
			},
			"os": {
				Description: "Query Ordnance Survey UK locations",
				Routes: map[string]string{
					"GET /os/precise/:location": "Precise UK location lookup",
					"GET /os/fuzzy/:location":   "Fuzzy UK location lookup",
				},
			},
			"heritage": {
				Description: "Query archaeological and heritage data sources",
				Routes:      heritage,
			},
		},
	})
	return nil
}
