// internal/api/handler.go
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/algebra-helper/analytics/internal/service"
	"github.com/algebra-helper/analytics/internal/store"
)

// Handler holds all dependencies needed by HTTP handlers.
type Handler struct {
	analysis *service.AnalysisService
	logger   *slog.Logger
}

// NewHandler creates a Handler with the given dependencies.
func NewHandler(analysis *service.AnalysisService, logger *slog.Logger) *Handler {
	return &Handler{
		analysis: analysis,
		logger:   logger,
	}
}

// respondJSON writes a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"error": msg})
}

// parseQuery reads since/until/days/limit from the URL. It writes a 400
// and returns false when a parameter is malformed.
func parseQuery(w http.ResponseWriter, r *http.Request) (service.Query, bool) {
	values := r.URL.Query()
	q := service.Query{
		Since: values.Get("since"),
		Until: values.Get("until"),
	}

	var err error
	if q.DaysBack, err = intParam(values.Get("days")); err != nil {
		respondError(w, http.StatusBadRequest, "days must be a non-negative integer")
		return q, false
	}
	if q.MistakeLimit, err = intParam(values.Get("limit")); err != nil {
		respondError(w, http.StatusBadRequest, "limit must be a non-negative integer")
		return q, false
	}
	return q, true
}

func intParam(v string) (int, error) {
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, errors.New("negative")
	}
	return n, nil
}

// handleAnalysisError checks for bad date bounds and writes the appropriate
// HTTP response. Returns true if an error was handled (caller should return).
func (h *Handler) handleAnalysisError(w http.ResponseWriter, err error) bool {
	if err == nil {
		return false
	}
	var perr *store.ParseError
	if errors.As(err, &perr) {
		respondError(w, http.StatusBadRequest, perr.Error())
		return true
	}
	h.logger.Error("analysis error", "error", err)
	respondError(w, http.StatusInternalServerError, "internal error")
	return true
}
