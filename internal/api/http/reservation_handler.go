package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"roomreserve-backend/internal/service"
)

type ReservationHandler struct {
	reservationSvc service.ReservationService
}

func NewReservationHandler(reservationSvc service.ReservationService) *ReservationHandler {
	return &ReservationHandler{reservationSvc: reservationSvc}
}

type createReservationRequest struct {
	ResourceID int32  `json:"resource_id"`
	Date       string `json:"date"`
	Start      string `json:"start"`
	End        string `json:"end"`
	Purpose    string `json:"purpose"`
}

func (h *ReservationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadRequest(w, "invalid request body")
		return
	}

	startsAt, endsAt, ok := combineSlot(w, req.Date, req.Start, req.End)
	if !ok {
		return
	}

	claims := claimsFrom(r)
	rv, err := h.reservationSvc.Request(r.Context(), claims.UserID, req.ResourceID, startsAt, endsAt, req.Purpose)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, rv)
}

func (h *ReservationHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	claims := claimsFrom(r)
	rv, err := h.reservationSvc.Get(r.Context(), claims.UserID, isAdmin(r), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, rv)
}

// List returns the caller's reservations; administrators see everything,
// only the pending queue with ?status=pending, or one resource's schedule
// with ?resource_id=N.
func (h *ReservationHandler) List(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r)

	if isAdmin(r) {
		if raw := r.URL.Query().Get("resource_id"); raw != "" {
			resourceID, err := strconv.Atoi(raw)
			if err != nil || resourceID <= 0 {
				respondBadRequest(w, "resource_id must be a positive integer")
				return
			}
			reservations, err := h.reservationSvc.ListByResource(r.Context(), int32(resourceID))
			if err != nil {
				respondError(w, err)
				return
			}
			respondJSON(w, http.StatusOK, reservations)
			return
		}
		if r.URL.Query().Get("status") == "pending" {
			reservations, err := h.reservationSvc.ListPending(r.Context())
			if err != nil {
				respondError(w, err)
				return
			}
			respondJSON(w, http.StatusOK, reservations)
			return
		}
		reservations, err := h.reservationSvc.ListAll(r.Context())
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, reservations)
		return
	}

	reservations, err := h.reservationSvc.ListMine(r.Context(), claims.UserID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, reservations)
}

func (h *ReservationHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	rv, err := h.reservationSvc.Confirm(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, rv)
}

type decisionRequest struct {
	Reason string `json:"reason"`
}

func (h *ReservationHandler) Reject(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req decisionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadRequest(w, "invalid request body")
		return
	}
	rv, err := h.reservationSvc.Reject(r.Context(), id, req.Reason)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, rv)
}

func (h *ReservationHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req decisionRequest
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&req)
	}
	claims := claimsFrom(r)
	rv, err := h.reservationSvc.Cancel(r.Context(), claims.UserID, isAdmin(r), id, req.Reason)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, rv)
}

func (h *ReservationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.reservationSvc.Delete(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}
