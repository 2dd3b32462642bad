package server

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	qrcode "github.com/skip2/go-qrcode"
)

type QRResponse struct {
	QRCode   string `json:"qrCode"`
	ZoneName string `json:"zoneName"`
}

// zoneURL derives the canonical target a zone's QR code encodes. The same
// zone id always yields the same URL — the printed signage must keep
// resolving after content updates.
func zoneURL(baseURL, zoneID string) string {
	return fmt.Sprintf("%s/zone/%s", baseURL, zoneID)
}

func handleZoneQR(store Store, baseURL string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		zoneID := chi.URLParam(r, "zoneID")

		// A zone must exist before its QR payload may be produced.
		zone, err := store.GetZone(r.Context(), zoneID)
		if errors.Is(err, ErrNotFound) {
			writeError(w, http.StatusNotFound, "zone not found")
			return
		}
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		png, err := qrcode.Encode(zoneURL(baseURL, zoneID), qrcode.Medium, 256)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		writeJSON(w, http.StatusOK, QRResponse{
			QRCode:   base64.StdEncoding.EncodeToString(png),
			ZoneName: zone.Name,
		})
	}
}
