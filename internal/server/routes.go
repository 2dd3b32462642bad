package server

import (
	"database/sql"
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
)

func addRoutes(r chi.Router, logger *slog.Logger, store Store, db *sql.DB, baseURL, spaDir string) {
	r.Get("/openapi.json", handleOpenAPI())
	r.Mount("/docs", handleSwaggerUI())
	r.Get("/healthz", handleHealth(logger, db))

	r.Route("/api", func(r chi.Router) {
		r.Get("/zones", handleListZones(store))
		r.Post("/zones", handleCreateZone(store))
		r.Get("/zones/{zoneID}", handleGetZone(store))
		r.Put("/zones/{zoneID}", handleUpdateZone(store))
		r.Delete("/zones/{zoneID}", handleDeleteZone(store))
		r.Get("/zones/{zoneID}/qr", handleZoneQR(store, baseURL))
		r.Post("/zones/{zoneID}/game/answer", handleAnswer(store))

		r.Post("/session", handleCreateSession(store))
		r.Get("/session/{sessionID}", handleGetSession(store))
		r.Post("/session/{sessionID}/visit/{zoneID}", handleRecordVisit(store))

		r.Post("/init-sample-data", handleSeed(logger, store))
	})

	if spaDir != "" {
		if info, err := os.Stat(spaDir); err == nil && info.IsDir() {
			logger.Info("serving SPA", "dir", spaDir)
			r.NotFound(handleSPA(spaDir))
		}
	}
}
