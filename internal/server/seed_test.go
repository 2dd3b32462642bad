package server

import (
	"net/http"
	"testing"
)

func TestSeedSampleData(t *testing.T) {
	r := testRouter(t)

	w := doRequest(t, r, http.MethodPost, "/api/init-sample-data", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp SeedResponse
	decodeJSON(t, w, &resp)
	if resp.ZonesCreated != 3 {
		t.Fatalf("zonesCreated = %d, want 3", resp.ZonesCreated)
	}

	var zones []ZoneResponse
	decodeJSON(t, doRequest(t, r, http.MethodGet, "/api/zones", nil), &zones)
	if len(zones) != 3 {
		t.Fatalf("expected 3 zones after seed, got %d", len(zones))
	}
	if zones[0].Name != "Poulailler" {
		t.Errorf("first zone = %q, want %q", zones[0].Name, "Poulailler")
	}
	if zones[0].Game == nil || zones[0].Game.CorrectAnswer != "1 œuf" {
		t.Error("seeded henhouse game missing or wrong")
	}

	// Seeding again is a no-op acknowledgment.
	w = doRequest(t, r, http.MethodPost, "/api/init-sample-data", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("second seed: expected 200, got %d", w.Code)
	}
	decodeJSON(t, w, &resp)
	if resp.ZonesCreated != 0 {
		t.Errorf("second seed created %d zones, want 0", resp.ZonesCreated)
	}
	if resp.Message != "sample data already exists" {
		t.Errorf("message = %q", resp.Message)
	}

	decodeJSON(t, doRequest(t, r, http.MethodGet, "/api/zones", nil), &zones)
	if len(zones) != 3 {
		t.Errorf("expected 3 zones after second seed, got %d", len(zones))
	}
}
