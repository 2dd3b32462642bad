package server

import (
	"encoding/json"
	"net/http"

	openapi "github.com/swaggest/openapi-go"
	"github.com/swaggest/openapi-go/openapi3"
	"github.com/swaggest/swgui/v5emb"
)

// ErrorResponse is returned for all error responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

func newOpenAPISpec() *openapi3.Spec {
	r := openapi3.NewReflector()
	r.Spec.Info.Title = "Farm Tour API"
	r.Spec.Info.Version = "0.1.0"
	r.Spec.Info.WithDescription("Backend API for the self-guided farm tour.")

	// GET /healthz
	getHealthz, _ := r.NewOperationContext(http.MethodGet, "/healthz")
	getHealthz.SetSummary("Health check")
	getHealthz.SetDescription("Returns the health status of backend dependencies.")
	getHealthz.AddRespStructure(HealthResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	getHealthz.AddRespStructure(HealthResponse{}, openapi.WithHTTPStatus(http.StatusServiceUnavailable))
	_ = r.AddOperation(getHealthz)

	// GET /api/zones
	listZones, _ := r.NewOperationContext(http.MethodGet, "/api/zones")
	listZones.SetSummary("List zones")
	listZones.SetDescription("Returns all tour zones in insertion order.")
	listZones.AddRespStructure([]ZoneResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(listZones)

	// POST /api/zones
	createZone, _ := r.NewOperationContext(http.MethodPost, "/api/zones")
	createZone.SetSummary("Create zone")
	createZone.SetDescription("Creates a zone with optional embedded game. Name and description are required.")
	createZone.AddReqStructure(ZoneRequest{})
	createZone.AddRespStructure(ZoneResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	createZone.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	_ = r.AddOperation(createZone)

	// GET /api/zones/{zoneID}
	getZone, _ := r.NewOperationContext(http.MethodGet, "/api/zones/{zoneID}")
	getZone.SetSummary("Get zone")
	getZone.AddRespStructure(ZoneResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	getZone.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(getZone)

	// PUT /api/zones/{zoneID}
	updateZone, _ := r.NewOperationContext(http.MethodPut, "/api/zones/{zoneID}")
	updateZone.SetSummary("Update zone")
	updateZone.SetDescription("Fully replaces the zone's mutable fields. Id and createdAt are preserved.")
	updateZone.AddReqStructure(ZoneRequest{})
	updateZone.AddRespStructure(ZoneResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	updateZone.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	updateZone.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(updateZone)

	// DELETE /api/zones/{zoneID}
	deleteZone, _ := r.NewOperationContext(http.MethodDelete, "/api/zones/{zoneID}")
	deleteZone.SetSummary("Delete zone")
	deleteZone.SetDescription("Removes the zone and its embedded game. Deleting a missing zone returns 404.")
	deleteZone.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusOK))
	deleteZone.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(deleteZone)

	// GET /api/zones/{zoneID}/qr
	getQR, _ := r.NewOperationContext(http.MethodGet, "/api/zones/{zoneID}/qr")
	getQR.SetSummary("Zone QR code")
	getQR.SetDescription("Returns the zone's QR code as base64 PNG bytes plus the zone name.")
	getQR.AddRespStructure(QRResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	getQR.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(getQR)

	// POST /api/zones/{zoneID}/game/answer
	postAnswer, _ := r.NewOperationContext(http.MethodPost, "/api/zones/{zoneID}/game/answer")
	postAnswer.SetSummary("Submit game answer")
	postAnswer.SetDescription("Checks the answer against the zone's game. Matching is exact and case-sensitive.")
	postAnswer.AddReqStructure(AnswerRequest{})
	postAnswer.AddRespStructure(AnswerResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postAnswer.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(postAnswer)

	// POST /api/session
	createSession, _ := r.NewOperationContext(http.MethodPost, "/api/session")
	createSession.SetSummary("Create visitor session")
	createSession.SetDescription("Creates a session with the current zone count snapshotted as totalZones.")
	createSession.AddRespStructure(SessionResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(createSession)

	// GET /api/session/{sessionID}
	getSession, _ := r.NewOperationContext(http.MethodGet, "/api/session/{sessionID}")
	getSession.SetSummary("Get visitor session")
	getSession.AddRespStructure(SessionResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	getSession.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(getSession)

	// POST /api/session/{sessionID}/visit/{zoneID}
	recordVisit, _ := r.NewOperationContext(http.MethodPost, "/api/session/{sessionID}/visit/{zoneID}")
	recordVisit.SetSummary("Record zone visit")
	recordVisit.SetDescription("Marks the zone as visited in the session. Idempotent; the zone id is not validated.")
	recordVisit.AddRespStructure(VisitResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	recordVisit.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(recordVisit)

	// POST /api/init-sample-data
	seed, _ := r.NewOperationContext(http.MethodPost, "/api/init-sample-data")
	seed.SetSummary("Seed sample content")
	seed.SetDescription("Creates the sample farm zones when the catalog is empty; otherwise a no-op.")
	seed.AddRespStructure(SeedResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(seed)

	return r.Spec
}

func handleOpenAPI() http.HandlerFunc {
	spec := newOpenAPISpec()
	data, err := json.MarshalIndent(spec, "", "  ")

	return func(w http.ResponseWriter, r *http.Request) {
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Write(data)
	}
}

func handleSwaggerUI() http.Handler {
	return v5emb.New("Farm Tour API", "/openapi.json", "/docs")
}
