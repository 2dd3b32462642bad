package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/minipousses/farmtour/internal/farmtour"
)

type SessionResponse struct {
	ID           string   `json:"id"`
	VisitedZones []string `json:"visitedZones"`
	TotalZones   int      `json:"totalZones"`
	CreatedAt    string   `json:"createdAt"`
	LastActivity string   `json:"lastActivity"`
}

type VisitResponse struct {
	Message      string `json:"message"`
	VisitedCount int    `json:"visitedCount"`
}

func toSessionResponse(s farmtour.VisitorSession) SessionResponse {
	return SessionResponse{
		ID:           s.ID,
		VisitedZones: s.VisitedZoneIDs(),
		TotalZones:   s.TotalZones,
		CreatedAt:    formatTime(s.CreatedAt),
		LastActivity: formatTime(s.LastActivity),
	}
}

func handleCreateSession(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Snapshot the zone count now; the denominator stays fixed for the
		// session's lifetime even as zones come and go.
		total, err := store.CountZones(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		now := time.Now().UTC()
		sess := farmtour.VisitorSession{
			ID:           uuid.NewString(),
			VisitedZones: map[string]struct{}{},
			TotalZones:   total,
			CreatedAt:    now,
			LastActivity: now,
		}

		if err := store.CreateSession(r.Context(), sess); err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		writeJSON(w, http.StatusOK, toSessionResponse(sess))
	}
}

func handleGetSession(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "sessionID")

		sess, err := store.GetSession(r.Context(), id)
		if errors.Is(err, ErrNotFound) {
			writeError(w, http.StatusNotFound, "session not found")
			return
		}
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		writeJSON(w, http.StatusOK, toSessionResponse(sess))
	}
}

func handleRecordVisit(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID := chi.URLParam(r, "sessionID")
		zoneID := chi.URLParam(r, "zoneID")

		// The zone id is not checked against the catalog: the visited set
		// is a progress ledger, and ids of since-deleted zones stay valid
		// entries.
		count, err := store.RecordVisit(r.Context(), sessionID, zoneID, time.Now().UTC())
		if errors.Is(err, ErrNotFound) {
			writeError(w, http.StatusNotFound, "session not found")
			return
		}
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		writeJSON(w, http.StatusOK, VisitResponse{
			Message:      "zone marked as visited",
			VisitedCount: count,
		})
	}
}
