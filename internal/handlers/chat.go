package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"bajotierra-backend/internal/models"
	"bajotierra-backend/internal/services"
)

type chatResponder interface {
	Respond(ctx context.Context, messages []models.ChatMessage, userMessage models.UserMessage, systemInstruction string) (string, error)
}

type ChatHandler struct {
	gemini chatResponder
}

func NewChatHandler(gemini chatResponder) *ChatHandler {
	return &ChatHandler{gemini: gemini}
}

// SendMessage produces one assistant reply for the submitted turn. The
// caller resends the full prior transcript every time.
func (h *ChatHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	if strings.TrimSpace(req.UserMessage.Text) == "" && req.UserMessage.Image == "" {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "A text or image message is required", r))
		return
	}

	systemInstruction := req.SystemInstruction
	if strings.TrimSpace(systemInstruction) == "" {
		systemInstruction = services.DefaultSystemInstruction
	}

	reply, err := h.gemini.Respond(r.Context(), req.Messages, req.UserMessage, systemInstruction)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, models.ChatResponse{Text: reply})
}
