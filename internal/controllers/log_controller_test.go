package controllers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sentineldesk/backend/internal/services"
)

func setupLogRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	lc := NewLogController(services.NewLogService(nil))
	r.POST("/api/logs", lc.CreateLog)
	return r
}

func TestCreateLogRejectsUnknownSeverity(t *testing.T) {
	r := setupLogRouter()

	w, resp := postJSON(t, r, http.MethodPost, "/api/logs", `{
		"severity": "Debug",
		"source": "firewall",
		"source_ip": "203.0.113.44",
		"action": "blocked",
		"description": "Repeated connection attempts"
	}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d", w.Code)
	}
	if _, ok := resp.Details["severity"]; !ok {
		t.Errorf("Expected a field-level error on severity, got %v", resp.Details)
	}
}

func TestCreateLogRejectsMissingSource(t *testing.T) {
	r := setupLogRouter()

	w, resp := postJSON(t, r, http.MethodPost, "/api/logs", `{
		"severity": "Warning",
		"source_ip": "203.0.113.44",
		"action": "blocked",
		"description": "Repeated connection attempts"
	}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d", w.Code)
	}
	if _, ok := resp.Details["source"]; !ok {
		t.Errorf("Expected a field-level error on source, got %v", resp.Details)
	}
}
