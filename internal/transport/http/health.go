package http

import (
	"context"
	stdhttp "net/http"
	"time"
)

const healthPingTimeout = 2 * time.Second

// Pinger reports whether a backing dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler reports liveness, and database reachability when db is set.
func HealthHandler(db Pinger) stdhttp.Handler {
	return stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		if db != nil {
			ctx, cancel := context.WithTimeout(r.Context(), healthPingTimeout)
			defer cancel()
			if err := db.Ping(ctx); err != nil {
				writeError(w, stdhttp.StatusServiceUnavailable, codeUnavailable, "database unavailable")
				return
			}
		}
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(stdhttp.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
}
