package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"bajotierra-backend/internal/models"
	"bajotierra-backend/internal/services"
)

type reservationStore interface {
	Create(ctx context.Context, reservation *models.Reservation) error
	List(ctx context.Context) ([]models.Reservation, error)
}

type ReservationHandler struct {
	reservations reservationStore
}

func NewReservationHandler(reservations reservationStore) *ReservationHandler {
	return &ReservationHandler{reservations: reservations}
}

// Create persists one reservation request. Duplicate submissions create
// duplicate rows; there is no idempotency key.
func (h *ReservationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.ReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	if fields := req.Validate(); len(fields) > 0 {
		handleServiceError(w, r, &services.ValidationError{Fields: fields})
		return
	}

	reservation := req.ToReservation()
	if err := h.reservations.Create(r.Context(), &reservation); err != nil {
		handleServiceError(w, r, &services.StorageError{Err: err})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"id":      reservation.ID,
		"success": true,
	})
}

// List returns every reservation ordered by date then time.
func (h *ReservationHandler) List(w http.ResponseWriter, r *http.Request) {
	reservations, err := h.reservations.List(r.Context())
	if err != nil {
		handleServiceError(w, r, &services.StorageError{Err: err})
		return
	}

	if reservations == nil {
		reservations = []models.Reservation{}
	}
	writeJSON(w, http.StatusOK, reservations)
}
