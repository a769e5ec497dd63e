package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"roomreserve-backend/internal/domain"
	"roomreserve-backend/internal/logger"
	"roomreserve-backend/internal/security"
	"roomreserve-backend/internal/service"
)

type errorResponse struct {
	Error string `json:"error"`
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			logger.Error("failed to encode response", "error", err)
		}
	}
}

// respondError maps domain errors onto HTTP status codes.
func respondError(w http.ResponseWriter, err error) {
	var storageErr *domain.StorageError

	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrInvalidInterval),
		errors.Is(err, domain.ErrPastDate),
		errors.Is(err, domain.ErrReasonRequired):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrReservationConflict),
		errors.Is(err, domain.ErrInvalidState),
		errors.Is(err, domain.ErrUserConflict),
		errors.Is(err, domain.ErrResourceInUse):
		status = http.StatusConflict
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, security.ErrInvalidToken),
		errors.Is(err, security.ErrExpiredToken),
		errors.Is(err, security.ErrWrongTokenType):
		status = http.StatusUnauthorized
	case errors.As(err, &storageErr):
		status = http.StatusInternalServerError
	}

	if status == http.StatusInternalServerError {
		logger.Error("internal error", "error", err)
		respondJSON(w, status, errorResponse{Error: "internal error"})
		return
	}
	respondJSON(w, status, errorResponse{Error: err.Error()})
}

func respondBadRequest(w http.ResponseWriter, msg string) {
	respondJSON(w, http.StatusBadRequest, errorResponse{Error: msg})
}
