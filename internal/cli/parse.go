package cli

import (
	"strconv"
	"strings"

	apperrors "github.com/dmoreira/cityatlas/pkg/errors"
)

// parseKey converts raw user input into a city key. Malformed input is
// rejected here, before it can reach the trees.
func parseKey(raw string) (int, error) {
	key, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, apperrors.New(apperrors.ErrCodeInvalidKey, "city ID must be an integer, got %q", strings.TrimSpace(raw))
	}
	return key, nil
}

// parseWeight converts raw user input into a route weight. Empty input
// falls back to the configured default; negative weights are rejected so
// they never reach Dijkstra.
func parseWeight(raw string, fallback float64) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback, nil
	}
	w, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, apperrors.New(apperrors.ErrCodeInvalidInput, "route weight must be a number, got %q", raw)
	}
	if w < 0 {
		return 0, apperrors.New(apperrors.ErrCodeInvalidInput, "route weight must be non-negative, got %v", w)
	}
	return w, nil
}
