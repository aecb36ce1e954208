package ratelimit

import (
	"net/http"
	"strings"
)

// unlimitedEndpoints maps paths that are never rate limited to their method.
var unlimitedEndpoints = map[string]string{
	"/health": http.MethodGet,
}

// MatchEndpoint returns the configuration for a request path and method, or nil
// when nothing matches. Matching is tried in order: exact path, route pattern
// ("/analyses/{id}"), then prefix for config paths ending in "/".
func MatchEndpoint(path string, method string, configs []EndpointConfig) *EndpointConfig {
	if m, ok := unlimitedEndpoints[path]; ok && m == method {
		return &EndpointConfig{Path: path, Method: method}
	}

	for i := range configs {
		if configs[i].Method == method && configs[i].Path == path {
			return &configs[i]
		}
	}

	for i := range configs {
		if configs[i].Method == method && strings.Contains(configs[i].Path, "{") && matchPattern(configs[i].Path, path) {
			return &configs[i]
		}
	}

	for i := range configs {
		cfgPath := configs[i].Path
		if configs[i].Method == method && strings.HasSuffix(cfgPath, "/") && strings.HasPrefix(path, cfgPath) {
			return &configs[i]
		}
	}

	return nil
}

// matchPattern reports whether path matches pattern segment by segment. A
// "{name}" segment matches any one non-empty segment.
func matchPattern(pattern, path string) bool {
	want := strings.Split(strings.Trim(pattern, "/"), "/")
	got := strings.Split(strings.Trim(path, "/"), "/")
	if len(want) != len(got) {
		return false
	}

	for i, seg := range want {
		if strings.HasPrefix(seg, "{") && strings.HasSuffix(seg, "}") {
			if got[i] == "" {
				return false
			}
			continue
		}
		if seg != got[i] {
			return false
		}
	}
	return true
}
