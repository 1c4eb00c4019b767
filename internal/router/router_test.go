package router

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"bajotierra-backend/internal/handlers"
	"bajotierra-backend/internal/models"
	"bajotierra-backend/internal/repository"
)

type scriptedResponder struct {
	reply string
}

func (s *scriptedResponder) Respond(context.Context, []models.ChatMessage, models.UserMessage, string) (string, error) {
	return s.reply, nil
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.sqlite")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Reservation{}))

	reservationHandler := handlers.NewReservationHandler(repository.NewReservationRepo(db))
	chatHandler := handlers.NewChatHandler(&scriptedResponder{reply: "¡Buenas! ¿Mesa para cuántos?"})

	return New(reservationHandler, chatHandler, nil, "*")
}

func doJSON(t *testing.T, r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(jsonBody)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestHealth(t *testing.T) {
	r := newTestRouter(t)

	rr := doJSON(t, r, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())
}

func TestReservationScenario(t *testing.T) {
	r := newTestRouter(t)

	rr := doJSON(t, r, http.MethodPost, "/reservations", map[string]interface{}{
		"name": "Juan", "phone": "1234", "date": "2025-06-01",
		"time": "20:00", "partySize": 4, "room": "Sala 2",
	})
	require.Equal(t, http.StatusOK, rr.Code)

	var created struct {
		ID      uint `json:"id"`
		Success bool `json:"success"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&created))
	assert.Equal(t, uint(1), created.ID)
	assert.True(t, created.Success)
	assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))

	rr = doJSON(t, r, http.MethodGet, "/reservations", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var list []models.Reservation
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&list))
	require.Len(t, list, 1)
	assert.Equal(t, "Juan", list[0].Name)
	assert.Equal(t, "pendiente", list[0].Status)
}

func TestReservationRejectionLeavesStoreUnchanged(t *testing.T) {
	r := newTestRouter(t)

	rr := doJSON(t, r, http.MethodPost, "/reservations", map[string]interface{}{
		"name": "Juan", "phone": "1234", "date": "2025-06-01",
		"time": "20:00", "partySize": 4, "room": "Sala 2",
	})
	require.Equal(t, http.StatusOK, rr.Code)

	rr = doJSON(t, r, http.MethodPost, "/reservations", map[string]interface{}{
		"name": "", "phone": "1234", "date": "2025-06-01",
		"time": "20:00", "partySize": 4, "room": "Sala 2",
	})
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = doJSON(t, r, http.MethodGet, "/reservations", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var list []models.Reservation
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&list))
	assert.Len(t, list, 1)
}

func TestChatScenario(t *testing.T) {
	r := newTestRouter(t)

	rr := doJSON(t, r, http.MethodPost, "/chat", map[string]interface{}{
		"messages":          []interface{}{},
		"userMessage":       map[string]string{"text": "hola"},
		"systemInstruction": "sos el bot del club",
	})
	require.Equal(t, http.StatusOK, rr.Code)

	var resp models.ChatResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.NotEmpty(t, resp.Text)
}
