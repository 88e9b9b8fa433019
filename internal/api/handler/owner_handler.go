package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"house_rent/internal/api/middleware"
	"house_rent/internal/app/service"
	"house_rent/internal/common"
	"house_rent/internal/common/security"
)

// OwnerHandler serves the /property-owners subtree: the email-keyed owner
// auth flows, owner CRUD, the owner-scoped property routes and the
// contact-request workflow.
type OwnerHandler struct {
	ownerService    *service.OwnerService
	propertyService *service.PropertyService
	contactService  *service.ContactService
}

func NewOwnerHandler(
	ownerService *service.OwnerService,
	propertyService *service.PropertyService,
	contactService *service.ContactService,
) *OwnerHandler {
	return &OwnerHandler{
		ownerService:    ownerService,
		propertyService: propertyService,
		contactService:  contactService,
	}
}

func (h *OwnerHandler) RegisterRoutes(r chi.Router) {
	r.Post("/register", h.register)
	r.Post("/login", h.login)
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Get("/{id}", h.get)
	r.Put("/{id}", h.update)

	r.Get("/{id}/properties", h.listProperties)
	r.Post("/{id}/properties", h.createProperty)
	r.Get("/{id}/properties/{propertyID}", h.getProperty)
	r.Put("/{id}/properties/{propertyID}", h.updateProperty)
	r.Delete("/{id}/properties/{propertyID}", h.deleteProperty)

	// The workflow transitions are the only authenticated routes in the
	// subtree: request needs a tenant token, approve an owner token.
	r.Group(func(tenantAuth chi.Router) {
		tenantAuth.Use(middleware.Authenticator)
		tenantAuth.Use(middleware.RequireSubjectKind(security.SubjectTenant))
		tenantAuth.Post("/{id}/contact-request", h.contactRequest)
	})
	r.Group(func(ownerAuth chi.Router) {
		ownerAuth.Use(middleware.Authenticator)
		ownerAuth.Use(middleware.RequireSubjectKind(security.SubjectOwner))
		ownerAuth.Put("/{id}/approve-contact-request", h.approveContactRequest)
	})
}

// Current answers GET /current-owner; the route lives at the root so it is
// registered from the router, not RegisterRoutes.
func (h *OwnerHandler) Current(w http.ResponseWriter, r *http.Request) {
	_, subjectID, ok := middleware.GetSubjectFromContext(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "Missing subject context")
		return
	}

	resp, err := h.ownerService.Current(r.Context(), subjectID)
	if err != nil {
		common.RespondWithDomainError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, resp)
}

func (h *OwnerHandler) register(w http.ResponseWriter, r *http.Request) {
	var req service.OwnerRegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	owner, err := h.ownerService.Register(r.Context(), req)
	if err != nil {
		common.RespondWithDomainError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusCreated, owner)
}

func (h *OwnerHandler) login(w http.ResponseWriter, r *http.Request) {
	var req service.OwnerLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	resp, err := h.ownerService.Login(r.Context(), req)
	if err != nil {
		common.RespondWithDomainError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, resp)
}

func (h *OwnerHandler) list(w http.ResponseWriter, r *http.Request) {
	owners, err := h.ownerService.List(r.Context())
	if err != nil {
		common.RespondWithDomainError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, owners)
}

func (h *OwnerHandler) get(w http.ResponseWriter, r *http.Request) {
	owner, err := h.ownerService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		common.RespondWithDomainError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, owner)
}

// create handles the explicit POST /property-owners; it shares register's
// semantics so the password is hashed and the email stays unique.
func (h *OwnerHandler) create(w http.ResponseWriter, r *http.Request) {
	h.register(w, r)
}

func (h *OwnerHandler) update(w http.ResponseWriter, r *http.Request) {
	var req service.OwnerUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	owner, err := h.ownerService.Update(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		common.RespondWithDomainError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, owner)
}

func (h *OwnerHandler) listProperties(w http.ResponseWriter, r *http.Request) {
	properties, err := h.propertyService.ListByOwner(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		common.RespondWithDomainError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, properties)
}

func (h *OwnerHandler) createProperty(w http.ResponseWriter, r *http.Request) {
	var req service.CreatePropertyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	req.OwnerID = chi.URLParam(r, "id")

	property, err := h.propertyService.Create(r.Context(), req)
	if err != nil {
		common.RespondWithDomainError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusCreated, property)
}

func (h *OwnerHandler) getProperty(w http.ResponseWriter, r *http.Request) {
	property, err := h.propertyService.GetOwned(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "propertyID"))
	if err != nil {
		common.RespondWithDomainError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, property)
}

func (h *OwnerHandler) updateProperty(w http.ResponseWriter, r *http.Request) {
	var req service.PropertyUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	property, err := h.propertyService.UpdateOwned(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "propertyID"), req)
	if err != nil {
		common.RespondWithDomainError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, property)
}

func (h *OwnerHandler) deleteProperty(w http.ResponseWriter, r *http.Request) {
	property, err := h.propertyService.DeleteOwned(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "propertyID"))
	if err != nil {
		common.RespondWithDomainError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, property)
}

func (h *OwnerHandler) contactRequest(w http.ResponseWriter, r *http.Request) {
	_, subjectID, ok := middleware.GetSubjectFromContext(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "Missing subject context")
		return
	}

	var req service.ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	if err := h.contactService.Request(r.Context(), chi.URLParam(r, "id"), req.TenantID, subjectID); err != nil {
		common.RespondWithDomainError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, common.MessageResponse{Message: "Contact request sent"})
}

func (h *OwnerHandler) approveContactRequest(w http.ResponseWriter, r *http.Request) {
	_, subjectID, ok := middleware.GetSubjectFromContext(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "Missing subject context")
		return
	}

	if err := h.contactService.Approve(r.Context(), chi.URLParam(r, "id"), subjectID); err != nil {
		common.RespondWithDomainError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, common.MessageResponse{Message: "Contact request approved"})
}
