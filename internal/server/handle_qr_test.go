package server

import (
	"encoding/base64"
	"net/http"
	"testing"
)

func TestZoneURL(t *testing.T) {
	got := zoneURL("https://ferme-mini-pousses.com", "abc123")
	want := "https://ferme-mini-pousses.com/zone/abc123"
	if got != want {
		t.Errorf("zoneURL = %q, want %q", got, want)
	}

	// Same zone id must always yield the same target.
	if again := zoneURL("https://ferme-mini-pousses.com", "abc123"); again != got {
		t.Errorf("zoneURL not deterministic: %q vs %q", got, again)
	}
}

func TestZoneQR(t *testing.T) {
	r := testRouter(t)
	zone := createZone(t, r, ZoneRequest{Name: "Henhouse", Description: "d"})

	w := doRequest(t, r, http.MethodGet, "/api/zones/"+zone.ID+"/qr", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp QRResponse
	decodeJSON(t, w, &resp)

	if resp.ZoneName != "Henhouse" {
		t.Errorf("zoneName = %q, want %q", resp.ZoneName, "Henhouse")
	}

	png, err := base64.StdEncoding.DecodeString(resp.QRCode)
	if err != nil {
		t.Fatalf("qrCode is not valid base64: %v", err)
	}
	if len(png) < 8 || string(png[1:4]) != "PNG" {
		t.Error("qrCode does not decode to a PNG image")
	}
}

func TestZoneQRNotFound(t *testing.T) {
	r := testRouter(t)

	w := doRequest(t, r, http.MethodGet, "/api/zones/nope/qr", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
