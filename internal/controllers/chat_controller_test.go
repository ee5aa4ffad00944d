package controllers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sentineldesk/backend/internal/services"
)

func setupChatRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	cc := NewChatController(services.NewChatService(nil))
	r.POST("/api/chat", cc.CreateMessage)
	return r
}

func TestCreateChatMessageRejectsShortChannel(t *testing.T) {
	r := setupChatRouter()

	w, resp := postJSON(t, r, http.MethodPost, "/api/chat", `{
		"channel": "g",
		"user_name": "J. Doe",
		"message": "on it"
	}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d", w.Code)
	}
	if _, ok := resp.Details["channel"]; !ok {
		t.Errorf("Expected a field-level error on channel, got %v", resp.Details)
	}
}

func TestCreateChatMessageRejectsEmptyMessage(t *testing.T) {
	r := setupChatRouter()

	w, resp := postJSON(t, r, http.MethodPost, "/api/chat", `{
		"channel": "general",
		"user_name": "J. Doe",
		"message": ""
	}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d", w.Code)
	}
	if _, ok := resp.Details["message"]; !ok {
		t.Errorf("Expected a field-level error on message, got %v", resp.Details)
	}
}
