package handlers

import (
	"net/http"
	"strconv"

	"linkeddata-hq/lodws/pkg/api/middleware"
)

var locSearchTypes = []string{"exact", "prefix", "fuzzy"}

// LookupResult is the body of every source lookup. Sources are not yet
// queried, so Results is always empty.
type LookupResult struct {
	Source       string         `json:"source"`
	Endpoint     string         `json:"endpoint"`
	Term         string         `json:"term,omitempty"`
	Organization string         `json:"organization,omitempty"`
	Location     string         `json:"location,omitempty"`
	Query        string         `json:"query,omitempty"`
	SearchType   string         `json:"searchType,omitempty"`
	Filters      *SearchFilters `json:"filters,omitempty"`
	Results      []any          `json:"results"`
}

// SearchFilters are the optional Geonames search filters.
type SearchFilters struct {
	Country   string `json:"country"`
	Continent string `json:"continent"`
	Fuzzy     bool   `json:"fuzzy"`
}

func (a *API) dbpediaLookup(w http.ResponseWriter, r *http.Request) error {
	term, err := requireParam(r, "term", "Term parameter is required")
	if err != nil {
		return err
	}
	a.track("dbpedia", "lookup")
	return writeResult(w, LookupResult{Source: "dbpedia", Endpoint: "lookup", Term: term})
}

func (a *API) dbpediaOrganization(w http.ResponseWriter, r *http.Request) error {
	name, err := requireParam(r, "name", "Organization name is required")
	if err != nil {
		return err
	}
	a.track("dbpedia", "organization")
	return writeResult(w, LookupResult{Source: "dbpedia", Endpoint: "organization", Organization: name})
}

func (a *API) geonamesSearch(w http.ResponseWriter, r *http.Request) error {
	q, err := requireQuery(r, "q", "Search query (q) is required")
	if err != nil {
		return err
	}

	filters := &SearchFilters{
		Country:   optionalQuery(r, "country", "none"),
		Continent: optionalQuery(r, "continent", "none"),
	}
	if raw := r.URL.Query().Get("fuzzy"); raw != "" {
		fuzzy, perr := strconv.ParseBool(raw)
		if perr != nil {
			return violation("query", "fuzzy", raw, "fuzzy must be a boolean")
		}
		filters.Fuzzy = fuzzy
	}

	a.track("geonames", "search")
	return writeResult(w, LookupResult{Source: "geonames", Endpoint: "search", Query: q, Filters: filters})
}

func (a *API) locSearch(w http.ResponseWriter, r *http.Request) error {
	q, err := requireQuery(r, "q", "Search query (q) is required")
	if err != nil {
		return err
	}
	searchType := optionalQuery(r, "type", "exact")
	if !contains(locSearchTypes, searchType) {
		return violation("query", "type", searchType, "Type must be exact, prefix, or fuzzy")
	}

	a.track("loc", "search")
	return writeResult(w, LookupResult{Source: "loc", Endpoint: "search", Query: q, SearchType: searchType})
}

// locationLookup serves the precise and fuzzy location routes.
func (a *API) locationLookup(source, mode string) middleware.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) error {
		location, err := requireParam(r, "location", "Location parameter is required")
		if err != nil {
			return err
		}
		a.track(source, mode)
		return writeResult(w, LookupResult{Source: source, Endpoint: mode, Location: location})
	}
}

// termLookup serves routes keyed by a single {term}.
func (a *API) termLookup(source, endpoint string) middleware.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) error {
		term, err := requireParam(r, "term", "Term parameter is required")
		if err != nil {
			return err
		}
		a.track(source, endpoint)
		return writeResult(w, LookupResult{Source: source, Endpoint: endpoint, Term: term})
	}
}

func writeResult(w http.ResponseWriter, res LookupResult) error {
	if res.Results == nil {
		res.Results = []any{}
	}
	middleware.WriteJSON(w, http.StatusOK, res)
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
