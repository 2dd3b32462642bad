package server

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/minipousses/farmtour/internal/farmtour"
)

type AnswerRequest struct {
	SelectedAnswer string `json:"selectedAnswer"`
}

type AnswerResponse struct {
	ZoneID         string `json:"zoneId"`
	SelectedAnswer string `json:"selectedAnswer"`
	IsCorrect      bool   `json:"isCorrect"`
	Explanation    string `json:"explanation"`
}

func handleAnswer(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		zoneID := chi.URLParam(r, "zoneID")

		var req AnswerRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		zone, err := store.GetZone(r.Context(), zoneID)
		if errors.Is(err, ErrNotFound) {
			writeError(w, http.StatusNotFound, "zone not found")
			return
		}
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		// The answer is passed through untouched: matching is exact and
		// case-sensitive, game authors control the answer text.
		result, err := farmtour.EvaluateAnswer(zone, req.SelectedAnswer)
		if errors.Is(err, farmtour.ErrNoGame) {
			writeError(w, http.StatusNotFound, "no game found for this zone")
			return
		}
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		writeJSON(w, http.StatusOK, AnswerResponse{
			ZoneID:         result.ZoneID,
			SelectedAnswer: result.SelectedAnswer,
			IsCorrect:      result.IsCorrect,
			Explanation:    result.Explanation,
		})
	}
}
