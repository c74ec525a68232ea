package http

import (
	"net/http"
	"strconv"
	"strings"
)

const (
	corsAllowMethods = "GET, POST, OPTIONS"
	corsAllowHeaders = "Content-Type, Authorization"
	corsMaxAge       = 10 * 60
)

// corsPolicy is an origin allow-list; "*" admits every origin.
type corsPolicy struct {
	allowAll bool
	origins  map[string]struct{}
}

func newCORSPolicy(allowedOrigins []string) corsPolicy {
	p := corsPolicy{origins: make(map[string]struct{}, len(allowedOrigins))}
	for _, origin := range allowedOrigins {
		origin = strings.TrimSpace(origin)
		switch origin {
		case "":
		case "*":
			p.allowAll = true
		default:
			p.origins[origin] = struct{}{}
		}
	}
	return p
}

// allowOrigin returns the Access-Control-Allow-Origin value for origin, or
// "" when it is not admitted.
func (p corsPolicy) allowOrigin(origin string) string {
	if p.allowAll {
		return "*"
	}
	if _, ok := p.origins[origin]; ok {
		return origin
	}
	return ""
}

func isPreflight(r *http.Request) bool {
	return r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != ""
}

// CORS answers preflight requests for the allow-list and decorates admitted
// cross-origin responses. Preflights from other origins get a JSON 403.
func CORS(allowedOrigins []string, next http.Handler) http.Handler {
	policy := newCORSPolicy(allowedOrigins)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin == "" {
			next.ServeHTTP(w, r)
			return
		}

		allow := policy.allowOrigin(origin)
		if allow == "" {
			if isPreflight(r) {
				writeError(w, http.StatusForbidden, codeForbidden, "origin not allowed")
				return
			}
			next.ServeHTTP(w, r)
			return
		}

		h := w.Header()
		h.Set("Access-Control-Allow-Origin", allow)
		if allow != "*" {
			h.Add("Vary", "Origin")
		}

		if isPreflight(r) {
			h.Set("Access-Control-Allow-Methods", corsAllowMethods)
			h.Set("Access-Control-Allow-Headers", corsAllowHeaders)
			h.Set("Access-Control-Max-Age", strconv.Itoa(corsMaxAge))
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
