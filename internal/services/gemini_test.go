package services

import (
	"context"
	"encoding/base64"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bajotierra-backend/internal/models"
)

func TestParseDataURI(t *testing.T) {
	payload := []byte{0x89, 0x50, 0x4e, 0x47}
	uri := "data:image/png;base64," + base64.StdEncoding.EncodeToString(payload)

	mimeType, data, err := parseDataURI(uri)

	require.NoError(t, err)
	assert.Equal(t, "image/png", mimeType)
	assert.Equal(t, payload, data)
}

func TestParseDataURIRejectsMalformedInput(t *testing.T) {
	tests := []struct {
		name string
		uri  string
	}{
		{"no comma", "data:image/png;base64"},
		{"no encoding tag", "data:image/png,AAAA"},
		{"no mime type", "data:;base64,AAAA"},
		{"bad base64", "data:image/png;base64,not-base64!!"},
		{"empty", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := parseDataURI(tc.uri)
			assert.Error(t, err)
		})
	}
}

func TestUserTurnsFiltersAssistant(t *testing.T) {
	messages := []models.ChatMessage{
		{Role: models.RoleModel, Text: "¡Buenas! Soy Bajo Tierra Bot."},
		{Role: models.RoleUser, Text: "hola"},
		{Role: models.RoleModel, Text: "¿Qué necesitás?"},
		{Role: models.RoleUser, Text: "precios de las salas"},
		{Role: models.RoleAssistant, Text: "Sala 2 cuesta $12.000."},
		{Role: models.RoleUser, Text: "   "},
	}

	turns := userTurns(messages)

	assert.Equal(t, []string{"hola", "precios de las salas"}, turns)
}

func TestUserTurnsEmptyTranscript(t *testing.T) {
	assert.Empty(t, userTurns(nil))
	assert.Empty(t, userTurns([]models.ChatMessage{}))
}

func TestRespondWithoutCredential(t *testing.T) {
	svc, err := NewGeminiService("")
	require.NoError(t, err)
	defer svc.Close()

	_, err = svc.Respond(context.Background(), nil, models.UserMessage{Text: "hola"}, DefaultSystemInstruction)

	var confErr *ConfigurationError
	assert.True(t, errors.As(err, &confErr))
}

func TestDefaultSystemInstructionMentionsClub(t *testing.T) {
	assert.Contains(t, DefaultSystemInstruction, "Bajo Tierra Bot")
	assert.Contains(t, DefaultSystemInstruction, "Sánchez de Bustamante 632")
}
