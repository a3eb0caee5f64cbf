package handler

import (
	"net/http"
	"time"
)

const (
	serviceName    = "SurfSui DApp Rankings API"
	serviceVersion = "1.0.0"
)

type serviceInfo struct {
	Name        string            `json:"name"`
	Version     string            `json:"version"`
	Description string            `json:"description"`
	Endpoints   map[string]string `json:"endpoints"`
	Timestamp   string            `json:"timestamp"`
}

// ServiceInfoHandler serves the static service descriptor. No store access.
func ServiceInfoHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, serviceInfo{
			Name:        serviceName,
			Version:     serviceVersion,
			Description: "REST API for DApp rankings data from the PostgreSQL store",
			Endpoints: map[string]string{
				"health":     "GET /health",
				"rankings":   "GET /api/dapps/rankings",
				"topDApps":   "GET /api/dapps/top/:limit",
				"byCategory": "GET /api/dapps/by-category/:category",
				"stats":      "GET /api/dapps/stats",
			},
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		})
	})
}
