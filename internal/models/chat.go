package models

// Chat roles as sent by the widget. The frontend historically uses "model"
// for assistant turns, matching the Gemini wire format; both spellings are
// treated as assistant-authored.
const (
	RoleUser      = "user"
	RoleModel     = "model"
	RoleAssistant = "assistant"
)

// ChatMessage is a single turn in the client-held transcript.
type ChatMessage struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

// UserMessage is the new turn being submitted. Image, when present, is a
// data URI (MIME tag plus base64 payload).
type UserMessage struct {
	Text  string `json:"text"`
	Image string `json:"image,omitempty"`
}

// ChatRequest is the payload sent to the chat endpoint. The full prior
// transcript travels with every request; nothing is stored server-side.
type ChatRequest struct {
	Messages          []ChatMessage `json:"messages"`
	UserMessage       UserMessage   `json:"userMessage"`
	SystemInstruction string        `json:"systemInstruction"`
}

// ChatResponse is the assistant's reply.
type ChatResponse struct {
	Text string `json:"text"`
}
