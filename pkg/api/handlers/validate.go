package handlers

import (
	"net/http"
	"strings"

	"linkeddata-hq/lodws/pkg/api/middleware"
)

// requireQuery returns the trimmed query parameter name, or a validation
// error when it is missing or blank.
func requireQuery(r *http.Request, name, msg string) (string, error) {
	raw := r.URL.Query().Get(name)
	value := strings.TrimSpace(raw)
	if value == "" {
		return "", violation("query", name, raw, msg)
	}
	return value, nil
}

// requireParam returns the trimmed path parameter name, or a validation
// error when it is blank.
func requireParam(r *http.Request, name, msg string) (string, error) {
	raw := r.PathValue(name)
	value := strings.TrimSpace(raw)
	if value == "" {
		return "", violation("params", name, raw, msg)
	}
	return value, nil
}

// optionalQuery returns the trimmed query parameter or def when absent.
func optionalQuery(r *http.Request, name, def string) string {
	if value := strings.TrimSpace(r.URL.Query().Get(name)); value != "" {
		return value
	}
	return def
}

func violation(location, param, value, msg string) error {
	return &middleware.ValidationError{Violations: []middleware.FieldViolation{
		{Location: location, Param: param, Value: value, Msg: msg},
	}}
}
