package server

import (
	"net/http"
	"testing"
)

func TestSubmitAnswer(t *testing.T) {
	r := testRouter(t)
	zone := createZone(t, r, henhouseRequest())

	w := doRequest(t, r, http.MethodPost, "/api/zones/"+zone.ID+"/game/answer", AnswerRequest{SelectedAnswer: "1"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var correct AnswerResponse
	decodeJSON(t, w, &correct)

	if !correct.IsCorrect {
		t.Error("expected correct verdict for \"1\"")
	}
	if correct.ZoneID != zone.ID {
		t.Errorf("zoneId = %q, want %q", correct.ZoneID, zone.ID)
	}
	if correct.SelectedAnswer != "1" {
		t.Errorf("selectedAnswer = %q, want %q", correct.SelectedAnswer, "1")
	}

	w = doRequest(t, r, http.MethodPost, "/api/zones/"+zone.ID+"/game/answer", AnswerRequest{SelectedAnswer: "5"})
	var wrong AnswerResponse
	decodeJSON(t, w, &wrong)

	if wrong.IsCorrect {
		t.Error("expected incorrect verdict for \"5\"")
	}
	// The explanation is the same regardless of correctness.
	if wrong.Explanation != correct.Explanation {
		t.Errorf("explanation differs: %q vs %q", wrong.Explanation, correct.Explanation)
	}
}

func TestSubmitAnswerZoneNotFound(t *testing.T) {
	r := testRouter(t)

	w := doRequest(t, r, http.MethodPost, "/api/zones/nope/game/answer", AnswerRequest{SelectedAnswer: "1"})
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestSubmitAnswerNoGame(t *testing.T) {
	r := testRouter(t)
	zone := createZone(t, r, ZoneRequest{Name: "Meadow", Description: "Just grass."})

	w := doRequest(t, r, http.MethodPost, "/api/zones/"+zone.ID+"/game/answer", AnswerRequest{SelectedAnswer: "1"})
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", w.Code, w.Body.String())
	}
}

func TestSubmitAnswerDoesNotMutateZone(t *testing.T) {
	r := testRouter(t)
	zone := createZone(t, r, henhouseRequest())

	before := doRequest(t, r, http.MethodGet, "/api/zones/"+zone.ID, nil).Body.String()

	for i := 0; i < 3; i++ {
		doRequest(t, r, http.MethodPost, "/api/zones/"+zone.ID+"/game/answer", AnswerRequest{SelectedAnswer: "5"})
	}

	after := doRequest(t, r, http.MethodGet, "/api/zones/"+zone.ID, nil).Body.String()
	if before != after {
		t.Errorf("zone changed after answer submissions:\nbefore: %s\nafter:  %s", before, after)
	}
}
