package handlers

import (
	"net/http"

	"server/internal/domain"
)

type patternsResponse struct {
	Patterns []domain.Pattern `json:"patterns"`
}

// ListPatterns handles GET /v1/patterns with the built-in preset library.
func (a *App) ListPatterns(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, patternsResponse{Patterns: a.Patterns})
}
