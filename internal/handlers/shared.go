package handlers

import (
	"encoding/json"
	"net/http"

	"bajotierra-backend/internal/models"
	"bajotierra-backend/internal/services"
)

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func errorResp(code, message string, r *http.Request) models.ErrorResponse {
	return models.ErrorResponse{
		Error: models.APIError{
			Code:      code,
			Message:   message,
			RequestID: r.Header.Get("X-Request-ID"),
		},
	}
}

func errorRespWithFields(code, message string, fields map[string]string, r *http.Request) models.ErrorResponse {
	return models.ErrorResponse{
		Error: models.APIError{
			Code:      code,
			Message:   message,
			Fields:    fields,
			RequestID: r.Header.Get("X-Request-ID"),
		},
	}
}

// handleServiceError maps the service error taxonomy to status codes. The
// bodies stay generic; internal detail never reaches the client.
func handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch e := err.(type) {
	case *services.ValidationError:
		writeJSON(w, http.StatusBadRequest, errorRespWithFields("VALIDATION_ERROR", "Validation failed", e.Fields, r))
	case *services.StorageError:
		writeJSON(w, http.StatusInternalServerError, errorResp("STORAGE_ERROR", "Could not complete the request", r))
	case *services.ConfigurationError:
		writeJSON(w, http.StatusInternalServerError, errorResp("CONFIGURATION_ERROR", "The assistant is not available right now", r))
	case *services.ProviderError:
		writeJSON(w, http.StatusBadGateway, errorResp("PROVIDER_ERROR", "The assistant could not be reached", r))
	default:
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "An unexpected error occurred", r))
	}
}
