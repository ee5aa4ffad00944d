package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sentineldesk/backend/internal/services"
)

// The rejection tests run against a controller with no database behind it;
// invalid payloads must never reach storage.

type errorResponse struct {
	Error   string            `json:"error"`
	Details map[string]string `json:"details"`
}

func setupIncidentRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	ic := NewIncidentController(services.NewIncidentService(nil))
	r.POST("/api/incidents", ic.CreateIncident)
	r.PATCH("/api/incidents/:reference", ic.UpdateIncident)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, errorResponse) {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp errorResponse
	if w.Code == http.StatusBadRequest {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("Failed to decode error response: %v", err)
		}
	}
	return w, resp
}

func TestCreateIncidentRejectsShortTitle(t *testing.T) {
	r := setupIncidentRouter()

	w, resp := postJSON(t, r, http.MethodPost, "/api/incidents", `{
		"title": "ab",
		"type": "Network",
		"severity": "High",
		"description": "Detected anomalous traffic to unknown host",
		"reporter": "J. Doe"
	}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d", w.Code)
	}
	if _, ok := resp.Details["title"]; !ok {
		t.Errorf("Expected a field-level error on title, got %v", resp.Details)
	}
}

func TestCreateIncidentRejectsUnknownSeverity(t *testing.T) {
	r := setupIncidentRouter()

	w, resp := postJSON(t, r, http.MethodPost, "/api/incidents", `{
		"title": "Unusual outbound traffic",
		"type": "Network",
		"severity": "Catastrophic",
		"description": "Detected anomalous traffic to unknown host",
		"reporter": "J. Doe"
	}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d", w.Code)
	}
	if msg, ok := resp.Details["severity"]; !ok || !strings.Contains(msg, "one of") {
		t.Errorf("Expected an enum error on severity, got %v", resp.Details)
	}
}

func TestCreateIncidentRejectsShortDescription(t *testing.T) {
	r := setupIncidentRouter()

	w, resp := postJSON(t, r, http.MethodPost, "/api/incidents", `{
		"title": "Unusual outbound traffic",
		"type": "Network",
		"severity": "High",
		"description": "too short",
		"reporter": "J. Doe"
	}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d", w.Code)
	}
	if _, ok := resp.Details["description"]; !ok {
		t.Errorf("Expected a field-level error on description, got %v", resp.Details)
	}
}

func TestCreateIncidentRejectsMalformedReferenceID(t *testing.T) {
	r := setupIncidentRouter()

	w, resp := postJSON(t, r, http.MethodPost, "/api/incidents", `{
		"referenceId": "TICKET-42",
		"title": "Unusual outbound traffic",
		"type": "Network",
		"severity": "High",
		"description": "Detected anomalous traffic to unknown host",
		"reporter": "J. Doe"
	}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d", w.Code)
	}
	if _, ok := resp.Details["referenceId"]; !ok {
		t.Errorf("Expected a field-level error on referenceId, got %v", resp.Details)
	}
}

func TestCreateIncidentRejectsBadEvidenceShape(t *testing.T) {
	r := setupIncidentRouter()

	w, resp := postJSON(t, r, http.MethodPost, "/api/incidents", `{
		"title": "Unusual outbound traffic",
		"type": "Network",
		"severity": "High",
		"description": "Detected anomalous traffic to unknown host",
		"reporter": "J. Doe",
		"evidence": [{"id": "ev-1", "type": "screenshot", "name": "capture", "url": "https://example.com/x"}]
	}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d", w.Code)
	}
	if _, ok := resp.Details["evidence[0].type"]; !ok {
		t.Errorf("Expected a nested field error on evidence[0].type, got %v", resp.Details)
	}
}

func TestCreateIncidentRejectsBadTimelineType(t *testing.T) {
	r := setupIncidentRouter()

	w, resp := postJSON(t, r, http.MethodPost, "/api/incidents", `{
		"title": "Unusual outbound traffic",
		"type": "Network",
		"severity": "High",
		"description": "Detected anomalous traffic to unknown host",
		"reporter": "J. Doe",
		"timeline": [{"id": "tl-1", "timestamp": "2026-08-30T10:00:00Z", "action": "Noticed", "description": "x", "user": "J. Doe", "type": "escalation"}]
	}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d", w.Code)
	}
	if _, ok := resp.Details["timeline[0].type"]; !ok {
		t.Errorf("Expected a nested field error on timeline[0].type, got %v", resp.Details)
	}
}

func TestUpdateIncidentRejectsUnknownStatus(t *testing.T) {
	r := setupIncidentRouter()

	w, resp := postJSON(t, r, http.MethodPatch, "/api/incidents/INC-2026-101", `{"status": "Archived"}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d", w.Code)
	}
	if _, ok := resp.Details["status"]; !ok {
		t.Errorf("Expected a field-level error on status, got %v", resp.Details)
	}
}

func TestCreateIncidentRejectsMalformedJSON(t *testing.T) {
	r := setupIncidentRouter()

	w, resp := postJSON(t, r, http.MethodPost, "/api/incidents", `{not json`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d", w.Code)
	}
	if _, ok := resp.Details["body"]; !ok {
		t.Errorf("Expected a body-level error for malformed JSON, got %v", resp.Details)
	}
}
