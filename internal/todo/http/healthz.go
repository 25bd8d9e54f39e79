package http

import (
	"net/http"
	"time"

	"github.com/sellora/todone/internal/todo/store"
	"github.com/sellora/todone/pkg/httpx"
)

type healthResponse struct {
	Status  string `json:"status"`
	Uptime  string `json:"uptime"`
	Version string `json:"version"`
}

// HealthzHandler reports service health. It pings the store so a wedged or
// missing database file surfaces as 503 instead of a blank dashboard.
func HealthzHandler(startTime time.Time, version string, st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response := healthResponse{
			Status:  "ok",
			Uptime:  time.Since(startTime).String(),
			Version: version,
		}

		if err := st.Ping(r.Context()); err != nil {
			response.Status = "degraded"
			httpx.WriteJSON(w, http.StatusServiceUnavailable, response)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, response)
	}
}
