package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHandleHealth(t *testing.T) {
	_, db := setupStore(t)
	h := handleHealth(slog.New(slog.DiscardHandler), db)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	h(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var body HealthResponse
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decoding: %v", err)
	}
	if body.SQLite.Status != "ok" {
		t.Errorf("sqlite = %q, want %q", body.SQLite.Status, "ok")
	}
}

func TestHandleHealthDatabaseDown(t *testing.T) {
	_, db := setupStore(t)
	db.Close()

	h := handleHealth(slog.New(slog.DiscardHandler), db)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	h(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusServiceUnavailable)
	}

	var body HealthResponse
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decoding: %v", err)
	}
	if body.SQLite.Status != "error" {
		t.Errorf("sqlite = %q, want %q", body.SQLite.Status, "error")
	}
}
