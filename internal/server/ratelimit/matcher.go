package ratelimit

import (
	"strings"
)

// MatchEndpoint matches a request path and method to an endpoint
// configuration. Returns nil when no rule matches. Paths ending in "/" act
// as prefixes, so "/resume/" covers "/resume/history" and
// "/resume/history/delete".
func MatchEndpoint(path string, method string, configs []EndpointConfig) *EndpointConfig {
	// Health checks are never limited.
	if path == "/health" && method == "GET" {
		return &EndpointConfig{}
	}

	for i := range configs {
		config := &configs[i]
		if config.Path == path && config.Method == method {
			return config
		}
	}

	for i := range configs {
		config := &configs[i]
		if config.Method == method && strings.HasSuffix(config.Path, "/") &&
			strings.HasPrefix(path, config.Path) {
			return config
		}
	}

	return nil
}
