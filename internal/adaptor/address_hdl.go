package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"

	"bookstore-backend/internal/dto/request"
	"bookstore-backend/internal/usecase"
	"bookstore-backend/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type AddressHandler struct {
	service usecase.AddressService
	log     *zap.Logger
}

func NewAddressHandler(service usecase.AddressService, log *zap.Logger) *AddressHandler {
	return &AddressHandler{
		service: service,
		log:     log,
	}
}

// Create handles POST /api/addresses
func (h *AddressHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.AddressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	address, err := h.service.Create(r.Context(), userID, &req)
	if err != nil {
		h.log.Error("Failed to create address", zap.Error(err), zap.Int64("user_id", userID))
		utils.ResponseInternalError(w, "Failed to create address")
		return
	}

	utils.ResponseCreated(w, "Address created", address)
}

// List handles GET /api/addresses
func (h *AddressHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	addresses, err := h.service.ListByUser(r.Context(), userID)
	if err != nil {
		h.log.Error("Failed to list addresses", zap.Error(err), zap.Int64("user_id", userID))
		utils.ResponseInternalError(w, "Failed to list addresses")
		return
	}

	utils.ResponseSuccess(w, "Addresses retrieved", addresses)
}

// Get handles GET /api/addresses/{id}
func (h *AddressHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	id, err := utils.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid address id", nil)
		return
	}

	address, err := h.service.GetByID(r.Context(), userID, id)
	if err != nil {
		h.handleAddressError(w, err, "get address")
		return
	}

	utils.ResponseSuccess(w, "Address retrieved", address)
}

// Update handles PUT /api/addresses/{id}
func (h *AddressHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	id, err := utils.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid address id", nil)
		return
	}

	var req request.AddressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	address, err := h.service.Update(r.Context(), userID, id, &req)
	if err != nil {
		h.handleAddressError(w, err, "update address")
		return
	}

	utils.ResponseSuccess(w, "Address updated", address)
}

// Delete handles DELETE /api/addresses/{id}
func (h *AddressHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	id, err := utils.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid address id", nil)
		return
	}

	if err := h.service.Delete(r.Context(), userID, id); err != nil {
		h.handleAddressError(w, err, "delete address")
		return
	}

	utils.ResponseSuccess(w, "Address deleted", nil)
}

func (h *AddressHandler) handleAddressError(w http.ResponseWriter, err error, op string) {
	switch {
	case errors.Is(err, usecase.ErrAddressNotFound):
		utils.ResponseNotFound(w, "Address not found")
	case errors.Is(err, usecase.ErrNotOwner):
		utils.ResponseForbidden(w, "Address belongs to another user")
	default:
		h.log.Error("Address operation failed", zap.Error(err), zap.String("operation", op))
		utils.ResponseInternalError(w, "Address operation failed")
	}
}
