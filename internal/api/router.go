package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/assetdash/asset-dashboard-backend/internal/api/handlers"
	custommiddleware "github.com/assetdash/asset-dashboard-backend/internal/api/middleware"
	"github.com/assetdash/asset-dashboard-backend/internal/config"
	"github.com/assetdash/asset-dashboard-backend/internal/service"
)

// Services bundles the service dependencies of the router.
type Services struct {
	System    *service.SystemService
	Dashboard *service.DashboardService
	Returns   *service.ReturnsService
	Assets    *service.AssetService
	Snapshots *service.SnapshotService
}

// NewRouter creates and configures the HTTP router
func NewRouter(services Services, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// System namespace
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(services.System)
			r.Get("/health", systemHandler.Health)
			r.Get("/version", systemHandler.Version)
		})

		r.Route("/dashboard", func(r chi.Router) {
			dashboardHandler := handlers.NewDashboardHandler(services.Dashboard)
			r.Get("/summary", dashboardHandler.Summary)
			r.Get("/allocation", dashboardHandler.Allocation)
		})

		r.Route("/returns", func(r chi.Router) {
			returnsHandler := handlers.NewReturnsHandler(services.Returns)
			r.Get("/period", returnsHandler.PeriodReturns)
		})

		r.Route("/assets/manual", func(r chi.Router) {
			assetHandler := handlers.NewAssetHandler(services.Assets)
			r.Get("/", assetHandler.Assets)
			r.Post("/", assetHandler.CreateAsset)

			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Get("/", assetHandler.GetAsset)
				r.Put("/", assetHandler.UpdateAsset)
				r.Delete("/", assetHandler.DeleteAsset)
			})
		})

		r.Route("/snapshots", func(r chi.Router) {
			snapshotHandler := handlers.NewSnapshotHandler(services.Snapshots)
			r.Post("/run", snapshotHandler.RunSnapshot)
			r.Post("/benchmarks/backfill", snapshotHandler.BackfillBenchmarks)
		})
	})

	return r
}
