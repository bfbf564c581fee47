package metrics

import (
	"strings"

	"github.com/google/uuid"
)

const (
	// UnmatchedRoute replaces the route label when it cannot be derived.
	UnmatchedRoute = "unmatched"

	// minSlugLength is the shortest segment collapsed into ":slug".
	minSlugLength = 10

	// canonicalUUIDLength is the length of the 8-4-4-4-12 form.
	canonicalUUIDLength = 36
)

// NormalizeRoute maps a request path to a route label with bounded
// cardinality. Each "/"-separated segment is rewritten by the first
// matching rule:
//
//   - only decimal digits: ":id"
//   - 8-4-4-4-12 hexadecimal, any case: ":uuid"
//   - at least 10 characters of [A-Za-z0-9_-]: ":slug"
//
// Other segments are kept. The mapping is purely syntactic, so two paths
// served by the same handler can still get different labels, e.g.
// "/organization/nasa" and "/organization/nationalaeronautics".
//
// Example:
//
//	NormalizeRoute("/api/v1/dbpedia/lookup/42") // "/api/v1/dbpedia/lookup/:id"
func NormalizeRoute(path string) string {
	segments := strings.Split(path, "/")
	for i, seg := range segments {
		segments[i] = normalizeSegment(seg)
	}
	return strings.Join(segments, "/")
}

func normalizeSegment(seg string) string {
	switch {
	case seg == "":
		return seg
	case isDigits(seg):
		return ":id"
	case isCanonicalUUID(seg):
		return ":uuid"
	case len(seg) >= minSlugLength && isSlug(seg):
		return ":slug"
	default:
		return seg
	}
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// isCanonicalUUID accepts only the hyphenated 36 character form; uuid.Parse
// also takes urn: and braced variants, which are excluded by length.
func isCanonicalUUID(s string) bool {
	if len(s) != canonicalUUIDLength {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}

func isSlug(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '-', c == '_':
		default:
			return false
		}
	}
	return true
}
