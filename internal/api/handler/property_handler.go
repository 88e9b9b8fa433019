package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"house_rent/internal/app/service"
	"house_rent/internal/common"
)

// PropertyHandler serves the flat /properties routes. Creation here requires
// an explicit owner_id in the body; the owner-scoped routes under
// /property-owners take it from the URL instead.
type PropertyHandler struct {
	propertyService *service.PropertyService
}

func NewPropertyHandler(propertyService *service.PropertyService) *PropertyHandler {
	return &PropertyHandler{propertyService: propertyService}
}

func (h *PropertyHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Get("/slug/{slug}", h.getBySlug)
	r.Get("/{id}", h.get)
	r.Put("/{id}", h.update)
}

func (h *PropertyHandler) list(w http.ResponseWriter, r *http.Request) {
	properties, err := h.propertyService.List(r.Context())
	if err != nil {
		common.RespondWithDomainError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, properties)
}

func (h *PropertyHandler) create(w http.ResponseWriter, r *http.Request) {
	var req service.CreatePropertyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	property, err := h.propertyService.Create(r.Context(), req)
	if err != nil {
		common.RespondWithDomainError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusCreated, property)
}

func (h *PropertyHandler) get(w http.ResponseWriter, r *http.Request) {
	property, err := h.propertyService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		common.RespondWithDomainError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, property)
}

func (h *PropertyHandler) getBySlug(w http.ResponseWriter, r *http.Request) {
	property, err := h.propertyService.GetBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		common.RespondWithDomainError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, property)
}

func (h *PropertyHandler) update(w http.ResponseWriter, r *http.Request) {
	var req service.PropertyUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	property, err := h.propertyService.Update(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		common.RespondWithDomainError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, property)
}
