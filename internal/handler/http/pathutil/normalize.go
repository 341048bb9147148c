package pathutil

import (
	"regexp"
	"strings"
)

// PathPattern represents a regex pattern and its corresponding normalized template.
type PathPattern struct {
	Pattern  *regexp.Regexp
	Template string
}

const uuidRe = `[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}`

// pathPatterns lists the dynamic API routes, pre-compiled at init.
var pathPatterns = []*PathPattern{
	{Pattern: regexp.MustCompile(`^/api/contractors/` + uuidRe + `$`), Template: "/api/contractors/:id"},

	{Pattern: regexp.MustCompile(`^/api/projects/` + uuidRe + `$`), Template: "/api/projects/:id"},
	{Pattern: regexp.MustCompile(`^/api/projects/` + uuidRe + `/news$`), Template: "/api/projects/:id/news"},

	{Pattern: regexp.MustCompile(`^/api/highways/` + uuidRe + `$`), Template: "/api/highways/:id"},
	{Pattern: regexp.MustCompile(`^/api/highways/` + uuidRe + `/news$`), Template: "/api/highways/:id/news"},

	{Pattern: regexp.MustCompile(`^/api/highways/summary$`), Template: "/api/highways/summary"},

	// Malformed ids still collapse to one label per route
	{Pattern: regexp.MustCompile(`^/api/(contractors|projects|highways)/[^/]+$`), Template: "/api/$1/:invalid"},
	{Pattern: regexp.MustCompile(`^/api/(contractors|projects|highways)/[^/]+/news$`), Template: "/api/$1/:invalid/news"},
}

// NormalizePath normalizes dynamic URL paths to prevent metrics label cardinality explosion.
// Static paths such as /api/highways/summary or /health remain unchanged.
//
// Examples:
//
//	NormalizePath("/api/projects/6f1c...0001")       // "/api/projects/:id"
//	NormalizePath("/api/highways/6f1c...0001/news")  // "/api/highways/:id/news"
//	NormalizePath("/api/highways/summary")           // "/api/highways/summary"
//	NormalizePath("/api/projects/6f1c...0001/?x=1")  // "/api/projects/:id"
func NormalizePath(path string) string {
	if idx := strings.IndexByte(path, '?'); idx != -1 {
		path = path[:idx]
	}
	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}

	for _, p := range pathPatterns {
		if m := p.Pattern.FindStringSubmatchIndex(path); m != nil {
			return string(p.Pattern.ExpandString(nil, p.Template, path, m))
		}
	}
	return path
}
