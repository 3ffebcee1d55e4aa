package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/assetdash/asset-dashboard-backend/internal/api/handlers"
	"github.com/assetdash/asset-dashboard-backend/internal/model"
	"github.com/assetdash/asset-dashboard-backend/internal/testutil"
)

func TestDashboardHandler_Summary(t *testing.T) {
	t.Run("returns summary", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewDashboardHandler(testutil.NewTestDashboardService(t, db))

		testutil.NewManualAsset().Build(t, db)

		req := httptest.NewRequest(http.MethodGet, "/api/dashboard/summary", nil)
		w := httptest.NewRecorder()

		handler.Summary(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var summary model.DashboardSummary
		if err := json.NewDecoder(w.Body).Decode(&summary); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if summary.TotalValue != 700000 {
			t.Errorf("Expected total value 700000, got %v", summary.TotalValue)
		}
	})

	t.Run("returns 422 for missing FX rate", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewDashboardHandler(testutil.NewTestDashboardService(t, db))

		testutil.NewManualAsset().WithCurrency("CHF").Build(t, db)

		req := httptest.NewRequest(http.MethodGet, "/api/dashboard/summary", nil)
		w := httptest.NewRecorder()

		handler.Summary(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Errorf("Expected 422, got %d", w.Code)
		}
	})
}

func TestDashboardHandler_Allocation(t *testing.T) {
	t.Run("returns buckets for valid mode", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewDashboardHandler(testutil.NewTestDashboardService(t, db))

		testutil.NewManualAsset().Build(t, db)

		req := testutil.NewRequestWithQueryParams(
			http.MethodGet,
			"/api/dashboard/allocation",
			map[string]string{"mode": "type"},
		)
		w := httptest.NewRecorder()

		handler.Allocation(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var buckets []model.AllocationBucket
		if err := json.NewDecoder(w.Body).Decode(&buckets); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if len(buckets) != 1 || buckets[0].Label != "Stocks" {
			t.Errorf("Unexpected buckets: %+v", buckets)
		}
	})

	t.Run("returns 400 for unknown mode", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewDashboardHandler(testutil.NewTestDashboardService(t, db))

		req := testutil.NewRequestWithQueryParams(
			http.MethodGet,
			"/api/dashboard/allocation",
			map[string]string{"mode": "sector"},
		)
		w := httptest.NewRecorder()

		handler.Allocation(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d", w.Code)
		}
	})

	t.Run("returns 400 for invalid top parameter", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewDashboardHandler(testutil.NewTestDashboardService(t, db))

		req := testutil.NewRequestWithQueryParams(
			http.MethodGet,
			"/api/dashboard/allocation",
			map[string]string{"mode": "instrument", "top": "zero"},
		)
		w := httptest.NewRecorder()

		handler.Allocation(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d", w.Code)
		}
	})
}
