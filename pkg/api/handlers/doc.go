// Package handlers provides the HTTP endpoints of the Linked Data Web
// Service.
//
// Routes (with the default base path "/api"):
//
//	GET /                                      service information
//	GET /health                                liveness with uptime
//	GET /api/v1/docs                           endpoint documentation
//	GET /api/v1/dbpedia/lookup/{term}
//	GET /api/v1/dbpedia/organization/{name}
//	GET /api/v1/geonames/search?q=&country=&continent=&fuzzy=
//	GET /api/v1/geonames/{precise|fuzzy}/{location}
//	GET /api/v1/loc/search?q=&type=exact|prefix|fuzzy
//	GET /api/v1/loc/{exact|prefix|fuzzy}/{term}
//	GET /api/v1/os/{precise|fuzzy}/{location}
//	GET /api/v1/heritage/{nomisma|fish|getty|ads|nfdi4objects|periodo}/{term}
//
// Anything else gets a JSON 404. Source lookups do not contact the upstream
// services yet; they validate their input, count the query through
// QueryTracker and return an empty result list.
package handlers
