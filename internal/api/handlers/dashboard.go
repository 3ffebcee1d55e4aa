package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/assetdash/asset-dashboard-backend/internal/api/response"
	"github.com/assetdash/asset-dashboard-backend/internal/apperrors"
	"github.com/assetdash/asset-dashboard-backend/internal/model"
	"github.com/assetdash/asset-dashboard-backend/internal/service"
)

// DashboardHandler handles HTTP requests for the live dashboard views.
// It serves as the HTTP layer adapter, parsing query parameters and
// delegating the valuation work to the dashboardService.
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler with the provided service dependency.
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// Summary handles GET requests for the portfolio valuation summary.
//
// Endpoint: GET /api/dashboard/summary
// Response: 200 OK with DashboardSummary
// Error: 422 Unprocessable Entity if a holding's currency has no FX rate
// Error: 500 Internal Server Error if retrieval fails
func (h *DashboardHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.dashboardService.GetSummary(r.Context())
	if err != nil {
		if errors.Is(err, apperrors.ErrMissingRate) {
			response.RespondError(w, http.StatusUnprocessableEntity, apperrors.ErrMissingRate.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveHoldings.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, summary)
}

// Allocation handles GET requests for the allocation chart buckets.
//
// Endpoint: GET /api/dashboard/allocation?mode=type|instrument&top=N
// Response: 200 OK with array of AllocationBucket
// Error: 400 Bad Request if the mode or top parameter is invalid
// Error: 422 Unprocessable Entity if a holding's currency has no FX rate
// Error: 500 Internal Server Error if retrieval fails
func (h *DashboardHandler) Allocation(w http.ResponseWriter, r *http.Request) {
	mode, err := model.ParseAllocationMode(r.URL.Query().Get("mode"))
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, apperrors.ErrUnknownAllocationMode.Error(), err.Error())
		return
	}

	topN := 0
	if raw := r.URL.Query().Get("top"); raw != "" {
		topN, err = strconv.Atoi(raw)
		if err != nil || topN < 1 {
			response.RespondError(w, http.StatusBadRequest, "invalid top parameter", raw)
			return
		}
	}

	buckets, err := h.dashboardService.GetAllocation(r.Context(), mode, topN)
	if err != nil {
		if errors.Is(err, apperrors.ErrMissingRate) {
			response.RespondError(w, http.StatusUnprocessableEntity, apperrors.ErrMissingRate.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveHoldings.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, buckets)
}
