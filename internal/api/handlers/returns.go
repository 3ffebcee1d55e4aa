package handlers

import (
	"errors"
	"net/http"

	"github.com/assetdash/asset-dashboard-backend/internal/api/response"
	"github.com/assetdash/asset-dashboard-backend/internal/apperrors"
	"github.com/assetdash/asset-dashboard-backend/internal/model"
	"github.com/assetdash/asset-dashboard-backend/internal/service"
)

// ReturnsHandler handles HTTP requests for period return queries.
type ReturnsHandler struct {
	returnsService *service.ReturnsService
}

// NewReturnsHandler creates a new ReturnsHandler with the provided service dependency.
func NewReturnsHandler(returnsService *service.ReturnsService) *ReturnsHandler {
	return &ReturnsHandler{
		returnsService: returnsService,
	}
}

// PeriodReturns handles GET requests for period return calculations.
//
// Endpoint: GET /api/returns/period?period=1D|1W|1M|3M|YTD|1Y&group_by=total|instrument|brokerage
// Response: 200 OK with PeriodResult
// Error: 400 Bad Request if the period or group_by parameter is invalid
// Error: 404 Not Found if no valuation history exists yet
// Error: 500 Internal Server Error if retrieval fails
func (h *ReturnsHandler) PeriodReturns(w http.ResponseWriter, r *http.Request) {
	period, err := model.ParsePeriod(r.URL.Query().Get("period"))
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, apperrors.ErrUnknownPeriod.Error(), err.Error())
		return
	}

	groupBy, err := model.ParseGroupBy(r.URL.Query().Get("group_by"))
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, apperrors.ErrUnknownGroupBy.Error(), err.Error())
		return
	}

	result, err := h.returnsService.GetPeriodReturns(period, groupBy)
	if err != nil {
		if errors.Is(err, apperrors.ErrNoValuationHistory) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrNoValuationHistory.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveHistory.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, result)
}
