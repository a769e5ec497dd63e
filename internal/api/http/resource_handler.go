package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"roomreserve-backend/internal/domain"
	"roomreserve-backend/internal/service"

	"github.com/gorilla/mux"
)

type ResourceHandler struct {
	catalogSvc service.CatalogService
}

func NewResourceHandler(catalogSvc service.CatalogService) *ResourceHandler {
	return &ResourceHandler{catalogSvc: catalogSvc}
}

func (h *ResourceHandler) List(w http.ResponseWriter, r *http.Request) {
	if name := r.URL.Query().Get("name"); name != "" {
		res, err := h.catalogSvc.FindResourceByName(r.Context(), name)
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, []domain.Resource{*res})
		return
	}

	resources, err := h.catalogSvc.ListResources(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, resources)
}

func (h *ResourceHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	res, err := h.catalogSvc.GetResource(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, res)
}

type createResourceRequest struct {
	Name         string   `json:"name"`
	Kind         string   `json:"kind"`
	Location     string   `json:"location"`
	Capacity     int32    `json:"capacity"`
	Model        string   `json:"model"`
	SerialNumber string   `json:"serial_number"`
	Features     []string `json:"features"`
}

func (h *ResourceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createResourceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadRequest(w, "invalid request body")
		return
	}

	res := &domain.Resource{
		Name:         req.Name,
		Kind:         domain.ResourceKind(req.Kind),
		Location:     req.Location,
		Capacity:     req.Capacity,
		Model:        req.Model,
		SerialNumber: req.SerialNumber,
	}
	for _, tag := range req.Features {
		res.AddFeature(tag)
	}
	if err := h.catalogSvc.AddResource(r.Context(), res); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, res)
}

func (h *ResourceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.catalogSvc.RemoveResource(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

type featureRequest struct {
	Tag string `json:"tag"`
}

func (h *ResourceHandler) AddFeature(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req featureRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadRequest(w, "invalid request body")
		return
	}
	res, err := h.catalogSvc.AddFeature(r.Context(), id, req.Tag)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, res)
}

func (h *ResourceHandler) RemoveFeature(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	tag := mux.Vars(r)["tag"]
	res, err := h.catalogSvc.RemoveFeature(r.Context(), id, tag)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, res)
}

// FindAvailable answers ?date=2006-01-02&start=15:04&end=15:04&min_capacity=N
func (h *ResourceHandler) FindAvailable(w http.ResponseWriter, r *http.Request) {
	startsAt, endsAt, ok := parseSlot(w, r)
	if !ok {
		return
	}

	var minCapacity int32
	if raw := r.URL.Query().Get("min_capacity"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			respondBadRequest(w, "min_capacity must be a non-negative integer")
			return
		}
		minCapacity = int32(v)
	}

	resources, err := h.catalogSvc.FindAvailable(r.Context(), startsAt, endsAt, minCapacity)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, resources)
}

func pathID(w http.ResponseWriter, r *http.Request) (int32, bool) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		respondBadRequest(w, "invalid id")
		return 0, false
	}
	return int32(id), true
}

// parseSlot combines date, start and end query/body values into timestamps.
func parseSlot(w http.ResponseWriter, r *http.Request) (time.Time, time.Time, bool) {
	q := r.URL.Query()
	return combineSlot(w, q.Get("date"), q.Get("start"), q.Get("end"))
}

func combineSlot(w http.ResponseWriter, dateStr, startStr, endStr string) (time.Time, time.Time, bool) {
	day, err := time.ParseInLocation("2006-01-02", dateStr, time.Local)
	if err != nil {
		respondBadRequest(w, "date must be formatted as 2006-01-02")
		return time.Time{}, time.Time{}, false
	}
	start, err := time.Parse("15:04", startStr)
	if err != nil {
		respondBadRequest(w, "start must be formatted as 15:04")
		return time.Time{}, time.Time{}, false
	}
	end, err := time.Parse("15:04", endStr)
	if err != nil {
		respondBadRequest(w, "end must be formatted as 15:04")
		return time.Time{}, time.Time{}, false
	}

	startsAt := time.Date(day.Year(), day.Month(), day.Day(), start.Hour(), start.Minute(), 0, 0, time.Local)
	endsAt := time.Date(day.Year(), day.Month(), day.Day(), end.Hour(), end.Minute(), 0, 0, time.Local)
	return startsAt, endsAt, true
}
