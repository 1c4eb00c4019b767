package services

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"bajotierra-backend/internal/models"
)

const geminiModel = "gemini-3-flash-preview"

// Default caption for image-only turns, and the in-character lines returned
// when Gemini answers with empty text. The fallbacks are substitute replies,
// not errors: the widget shows them as normal bot messages.
const (
	defaultImagePrompt = "Extraé la info clave de este flyer o decime de qué trata."
	imageFallback      = "No pude procesar la imagen, che."
	chatFallback       = "Hubo un error de conexión en el subsuelo."
)

// GeminiService produces one assistant reply per request. It holds no
// conversation state: the transcript arrives with every call and the
// provider-side context is rebuilt from it.
type GeminiService struct {
	client *genai.Client
}

// NewGeminiService creates the Gemini client. An empty API key is not an
// error here; the missing credential is reported per call so the rest of the
// site stays usable without one.
func NewGeminiService(apiKey string) (*GeminiService, error) {
	if apiKey == "" {
		return &GeminiService{}, nil
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiService{client: client}, nil
}

func (s *GeminiService) Close() {
	if s.client != nil {
		s.client.Close()
	}
}

// Respond generates the assistant reply for one turn. Image turns are
// stateless single-shot analyses that ignore the prior transcript; text
// turns replay the prior user turns into a fresh chat session first.
func (s *GeminiService) Respond(ctx context.Context, messages []models.ChatMessage, userMessage models.UserMessage, systemInstruction string) (string, error) {
	if s.client == nil {
		return "", &ConfigurationError{Message: "GEMINI_API_KEY is not configured"}
	}

	model := s.client.GenerativeModel(geminiModel)
	model.SetTemperature(0.3)
	model.SetTopP(0.95)
	if strings.TrimSpace(systemInstruction) != "" {
		model.SystemInstruction = &genai.Content{
			Parts: []genai.Part{genai.Text(systemInstruction)},
		}
	}

	if userMessage.Image != "" {
		return s.describeImage(ctx, model, userMessage)
	}
	return s.chat(ctx, model, messages, userMessage.Text)
}

func (s *GeminiService) describeImage(ctx context.Context, model *genai.GenerativeModel, userMessage models.UserMessage) (string, error) {
	mimeType, data, err := parseDataURI(userMessage.Image)
	if err != nil {
		return "", &ValidationError{Fields: map[string]string{"image": err.Error()}}
	}

	prompt := strings.TrimSpace(userMessage.Text)
	if prompt == "" {
		prompt = defaultImagePrompt
	}

	resp, err := model.GenerateContent(ctx,
		genai.Blob{MIMEType: mimeType, Data: data},
		genai.Text(prompt),
	)
	if err != nil {
		return "", &ProviderError{Err: err}
	}

	text := strings.TrimSpace(extractText(resp))
	if text == "" {
		return imageFallback, nil
	}
	return text, nil
}

func (s *GeminiService) chat(ctx context.Context, model *genai.GenerativeModel, messages []models.ChatMessage, newText string) (string, error) {
	text := strings.TrimSpace(newText)
	if text == "" {
		return "", &ValidationError{Fields: map[string]string{"userMessage": "A text or image message is required"}}
	}

	session := model.StartChat()
	for _, turn := range userTurns(messages) {
		if _, err := session.SendMessage(ctx, genai.Text(turn)); err != nil {
			return "", &ProviderError{Err: err}
		}
	}

	resp, err := session.SendMessage(ctx, genai.Text(text))
	if err != nil {
		return "", &ProviderError{Err: err}
	}

	reply := strings.TrimSpace(extractText(resp))
	if reply == "" {
		return chatFallback, nil
	}
	return reply, nil
}

// userTurns returns the text of prior user turns in transcript order.
// Assistant turns are not replayed; the provider reconstructs its own side
// of the conversation while answering.
func userTurns(messages []models.ChatMessage) []string {
	var turns []string
	for _, m := range messages {
		if m.Role != models.RoleUser {
			continue
		}
		if strings.TrimSpace(m.Text) == "" {
			continue
		}
		turns = append(turns, m.Text)
	}
	return turns
}

// parseDataURI splits a "data:<mime>;base64,<payload>" string into the MIME
// type and decoded bytes.
func parseDataURI(uri string) (string, []byte, error) {
	head, payload, ok := strings.Cut(uri, ",")
	if !ok {
		return "", nil, fmt.Errorf("image is not a data URI")
	}

	tag, _, ok := strings.Cut(head, ";")
	if !ok {
		return "", nil, fmt.Errorf("image data URI has no encoding tag")
	}

	mimeType := strings.TrimPrefix(tag, "data:")
	if mimeType == "" {
		return "", nil, fmt.Errorf("image data URI has no MIME type")
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("failed to decode image payload: %w", err)
	}

	return mimeType, data, nil
}

func extractText(resp *genai.GenerateContentResponse) string {
	var text strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content != nil {
			for _, part := range cand.Content.Parts {
				if t, ok := part.(genai.Text); ok {
					text.WriteString(string(t))
				}
			}
		}
	}
	return text.String()
}
