package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/assetdash/asset-dashboard-backend/internal/apperrors"
	"github.com/assetdash/asset-dashboard-backend/internal/validation"
)

// respondJSON sends a JSON response with the given status code
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("Failed to encode JSON: %v", err)
		}
	}
}

// parseJSON decodes a JSON request body into the given request type.
func parseJSON[T any](r *http.Request) (T, error) {
	var req T
	err := json.NewDecoder(r.Body).Decode(&req)
	return req, err
}

// isValidationError reports whether the error came from request validation
// rather than a system failure, so handlers can map it to a 400.
func isValidationError(err error) bool {
	var vErr *validation.Error
	return errors.As(err, &vErr) || errors.Is(err, apperrors.ErrUnknownAssetType)
}
