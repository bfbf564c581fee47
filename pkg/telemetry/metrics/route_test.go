package metrics

import "testing"

func TestNormalizeRoute(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{"root", "/", "/"},
		{"empty", "", ""},
		{"numeric id", "/api/v1/dbpedia/lookup/42", "/api/v1/dbpedia/lookup/:id"},
		{"leading zeros", "/items/007", "/items/:id"},
		{"uuid lower", "/api/v1/x/123e4567-e89b-12d3-a456-426614174000", "/api/v1/x/:uuid"},
		{"uuid upper", "/api/v1/x/123E4567-E89B-12D3-A456-426614174000", "/api/v1/x/:uuid"},
		{"uuid without hyphens is a slug", "/x/123e4567e89b12d3a456426614174000", "/x/:slug"},
		{"braced uuid passes through", "/x/{123e4567-e89b-12d3-a456-426614174000}", "/x/{123e4567-e89b-12d3-a456-426614174000}"},
		{"slug", "/api/v1/x/abcdefghij12345", "/api/v1/x/:slug"},
		{"slug with separators", "/x/linked_data-term", "/x/:slug"},
		{"slug exactly ten", "/x/abcdefghij", "/x/:slug"},
		{"short segment", "/api/v1/x/ab", "/api/v1/x/ab"},
		{"nine characters", "/x/abcdefghi", "/x/abcdefghi"},
		{"long segment with dot", "/x/linkeddata.org", "/x/linkeddata.org"},
		{"long word is a slug", "/api/v1/dbpedia/organization/nasa", "/api/v1/dbpedia/:slug/nasa"},
		{"trailing slash", "/api/v1/", "/api/v1/"},
		{"double slash", "/api//42", "/api//:id"},
		{"multiple ids", "/a/1/b/2", "/a/:id/b/:id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeRoute(tt.path); got != tt.want {
				t.Errorf("NormalizeRoute(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestNormalizeRoute_Idempotent(t *testing.T) {
	paths := []string{
		"/api/v1/dbpedia/lookup/42",
		"/api/v1/x/123e4567-e89b-12d3-a456-426614174000",
		"/api/v1/x/abcdefghij12345",
	}
	for _, p := range paths {
		once := NormalizeRoute(p)
		if twice := NormalizeRoute(once); twice != once {
			t.Errorf("NormalizeRoute(%q) = %q, normalized again = %q", p, once, twice)
		}
	}
}
