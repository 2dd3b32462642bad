package server

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/minipousses/farmtour/internal/farmtour"
)

type GameRequest struct {
	Type          string   `json:"type"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
}

type ZoneRequest struct {
	Name        string       `json:"name"`
	Description string       `json:"description"`
	ImageRef    string       `json:"imageRef"`
	VideoRef    string       `json:"videoRef"`
	AudioRef    string       `json:"audioRef"`
	CTAText     string       `json:"ctaText"`
	CTATarget   string       `json:"ctaTarget"`
	Game        *GameRequest `json:"game"`
}

func (req *ZoneRequest) validate() string {
	req.Name = strings.TrimSpace(req.Name)
	req.Description = strings.TrimSpace(req.Description)
	if req.Name == "" {
		return "name is required"
	}
	if req.Description == "" {
		return "description is required"
	}
	if req.Game != nil {
		if !farmtour.ValidGameType(farmtour.GameType(req.Game.Type)) {
			return "game type must be one of quiz, true_false, audio_riddle, image_riddle, observation"
		}
		if strings.TrimSpace(req.Game.Question) == "" {
			return "game question is required"
		}
		if req.Game.CorrectAnswer == "" {
			return "game correctAnswer is required"
		}
	}
	return ""
}

// toZone builds a domain zone from the request, filling defaults. The
// caller supplies identity and timestamps.
func (req *ZoneRequest) toZone() farmtour.Zone {
	z := farmtour.Zone{
		Name:        req.Name,
		Description: req.Description,
		ImageRef:    req.ImageRef,
		VideoRef:    req.VideoRef,
		AudioRef:    req.AudioRef,
		CTAText:     req.CTAText,
		CTATarget:   req.CTATarget,
	}
	if z.CTAText == "" {
		z.CTAText = farmtour.DefaultCTAText
	}
	if req.Game != nil {
		z.Game = &farmtour.Game{
			ID:            uuid.NewString(),
			Type:          farmtour.GameType(req.Game.Type),
			Question:      req.Game.Question,
			Options:       req.Game.Options,
			CorrectAnswer: req.Game.CorrectAnswer,
			Explanation:   req.Game.Explanation,
		}
	}
	return z
}

type GameResponse struct {
	ID            string   `json:"id"`
	Type          string   `json:"type"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
}

type ZoneResponse struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	ImageRef    string        `json:"imageRef"`
	VideoRef    string        `json:"videoRef"`
	AudioRef    string        `json:"audioRef"`
	CTAText     string        `json:"ctaText"`
	CTATarget   string        `json:"ctaTarget"`
	Game        *GameResponse `json:"game"`
	CreatedAt   string        `json:"createdAt"`
	UpdatedAt   string        `json:"updatedAt"`
}

func toZoneResponse(z farmtour.Zone) ZoneResponse {
	resp := ZoneResponse{
		ID:          z.ID,
		Name:        z.Name,
		Description: z.Description,
		ImageRef:    z.ImageRef,
		VideoRef:    z.VideoRef,
		AudioRef:    z.AudioRef,
		CTAText:     z.CTAText,
		CTATarget:   z.CTATarget,
		CreatedAt:   formatTime(z.CreatedAt),
		UpdatedAt:   formatTime(z.UpdatedAt),
	}
	if z.Game != nil {
		options := z.Game.Options
		if options == nil {
			options = []string{}
		}
		resp.Game = &GameResponse{
			ID:            z.Game.ID,
			Type:          string(z.Game.Type),
			Question:      z.Game.Question,
			Options:       options,
			CorrectAnswer: z.Game.CorrectAnswer,
			Explanation:   z.Game.Explanation,
		}
	}
	return resp
}

func handleListZones(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		zones, err := store.ListZones(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		resp := make([]ZoneResponse, 0, len(zones))
		for _, z := range zones {
			resp = append(resp, toZoneResponse(z))
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

func handleCreateZone(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ZoneRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if msg := req.validate(); msg != "" {
			writeError(w, http.StatusBadRequest, msg)
			return
		}

		zone := req.toZone()
		zone.ID = uuid.NewString()
		now := time.Now().UTC()
		zone.CreatedAt = now
		zone.UpdatedAt = now

		if err := store.CreateZone(r.Context(), zone); err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		writeJSON(w, http.StatusOK, toZoneResponse(zone))
	}
}

func handleGetZone(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "zoneID")

		zone, err := store.GetZone(r.Context(), id)
		if errors.Is(err, ErrNotFound) {
			writeError(w, http.StatusNotFound, "zone not found")
			return
		}
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		writeJSON(w, http.StatusOK, toZoneResponse(zone))
	}
}

func handleUpdateZone(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "zoneID")

		var req ZoneRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if msg := req.validate(); msg != "" {
			writeError(w, http.StatusBadRequest, msg)
			return
		}

		zone := req.toZone()
		zone.UpdatedAt = time.Now().UTC()

		updated, err := store.UpdateZone(r.Context(), id, zone)
		if errors.Is(err, ErrNotFound) {
			writeError(w, http.StatusNotFound, "zone not found")
			return
		}
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		writeJSON(w, http.StatusOK, toZoneResponse(updated))
	}
}

func handleDeleteZone(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "zoneID")

		err := store.DeleteZone(r.Context(), id)
		if errors.Is(err, ErrNotFound) {
			writeError(w, http.StatusNotFound, "zone not found")
			return
		}
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		writeJSON(w, http.StatusOK, map[string]string{"message": "zone deleted"})
	}
}
