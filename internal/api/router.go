// internal/api/router.go
package api

import "net/http"

func RegisterRoutes(mux *http.ServeMux, h *Handler) {
	mux.HandleFunc("GET /report", h.getReport)
	mux.HandleFunc("GET /topics", h.getTopics)
	mux.HandleFunc("GET /buckets", h.getBuckets)
	mux.HandleFunc("GET /mistakes", h.getMistakes)
	mux.HandleFunc("GET /insights", h.getInsights)
}
