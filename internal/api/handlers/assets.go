package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/assetdash/asset-dashboard-backend/internal/api/request"
	"github.com/assetdash/asset-dashboard-backend/internal/api/response"
	"github.com/assetdash/asset-dashboard-backend/internal/apperrors"
	"github.com/assetdash/asset-dashboard-backend/internal/service"
)

// AssetHandler handles HTTP requests for manual asset endpoints.
type AssetHandler struct {
	assetService *service.AssetService
}

// NewAssetHandler creates a new AssetHandler with the provided service dependency.
func NewAssetHandler(assetService *service.AssetService) *AssetHandler {
	return &AssetHandler{
		assetService: assetService,
	}
}

// Assets handles GET requests to retrieve all manual assets.
//
// Endpoint: GET /api/assets/manual
// Response: 200 OK with array of ManualAsset
// Error: 500 Internal Server Error if retrieval fails
func (h *AssetHandler) Assets(w http.ResponseWriter, _ *http.Request) {
	assets, err := h.assetService.GetAssets()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveAssets.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, assets)
}

// GetAsset handles GET requests to retrieve a single manual asset by ID.
//
// Endpoint: GET /api/assets/manual/{uuid}
// Response: 200 OK with ManualAsset
// Error: 400 Bad Request if the asset ID is invalid (validated by middleware)
// Error: 404 Not Found if the asset does not exist
func (h *AssetHandler) GetAsset(w http.ResponseWriter, r *http.Request) {
	assetID := chi.URLParam(r, "uuid")

	asset, err := h.assetService.GetAsset(assetID)
	if err != nil {
		if errors.Is(err, apperrors.ErrAssetNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrAssetNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveAssets.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, asset)
}

// CreateAsset handles POST requests to create a new manual asset.
//
// Endpoint: POST /api/assets/manual
// Request Body: CreateManualAssetRequest
// Response: 201 Created with ManualAsset
// Error: 400 Bad Request if validation fails or the request body is invalid
// Error: 500 Internal Server Error if creation fails
func (h *AssetHandler) CreateAsset(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreateManualAssetRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	asset, err := h.assetService.CreateAsset(req)
	if err != nil {
		if isValidationError(err) {
			response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to create manual asset", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, asset)
}

// UpdateAsset handles PUT requests to update an existing manual asset.
// Absent fields keep their stored values.
//
// Endpoint: PUT /api/assets/manual/{uuid}
// Request Body: UpdateManualAssetRequest
// Response: 200 OK with the updated ManualAsset
// Error: 400 Bad Request if validation fails or the request body is invalid
// Error: 404 Not Found if the asset does not exist
func (h *AssetHandler) UpdateAsset(w http.ResponseWriter, r *http.Request) {
	assetID := chi.URLParam(r, "uuid")

	req, err := parseJSON[request.UpdateManualAssetRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	asset, err := h.assetService.UpdateAsset(assetID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrAssetNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrAssetNotFound.Error(), err.Error())
			return
		}
		if isValidationError(err) {
			response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to update manual asset", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, asset)
}

// DeleteAsset handles DELETE requests to remove a manual asset.
//
// Endpoint: DELETE /api/assets/manual/{uuid}
// Response: 204 No Content
// Error: 404 Not Found if the asset does not exist
func (h *AssetHandler) DeleteAsset(w http.ResponseWriter, r *http.Request) {
	assetID := chi.URLParam(r, "uuid")

	if err := h.assetService.DeleteAsset(assetID); err != nil {
		if errors.Is(err, apperrors.ErrAssetNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrAssetNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to delete manual asset", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
