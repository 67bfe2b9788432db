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

type CartHandler struct {
	service usecase.CartService
	log     *zap.Logger
}

func NewCartHandler(service usecase.CartService, log *zap.Logger) *CartHandler {
	return &CartHandler{
		service: service,
		log:     log,
	}
}

// Add handles POST /api/cart
func (h *CartHandler) Add(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.AddToCartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	if err := h.service.AddToCart(r.Context(), userID, req.BookID); err != nil {
		h.handleCartError(w, err, "add to cart")
		return
	}

	utils.ResponseSuccess(w, "Book added to cart", nil)
}

// List handles GET /api/cart
func (h *CartHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	lines, err := h.service.GetUserCart(r.Context(), userID)
	if err != nil {
		h.log.Error("Failed to load cart", zap.Error(err), zap.Int64("user_id", userID))
		utils.ResponseInternalError(w, "Failed to load cart")
		return
	}

	utils.ResponseSuccess(w, "Cart retrieved", lines)
}

// Update handles PUT /api/cart
func (h *CartHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.UpdateCartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	err := h.service.UpdateCartItem(r.Context(), userID, req.BookID, req.Quantity, req.IsPurchased)
	if err != nil {
		h.handleCartError(w, err, "update cart")
		return
	}

	utils.ResponseSuccess(w, "Cart updated", nil)
}

// Remove handles DELETE /api/cart/{bookId}
func (h *CartHandler) Remove(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	bookID, err := utils.ParseID(chi.URLParam(r, "bookId"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid book id", nil)
		return
	}

	removed, err := h.service.RemoveFromCart(r.Context(), userID, bookID)
	if err != nil {
		h.handleCartError(w, err, "remove from cart")
		return
	}
	if !removed {
		utils.ResponseNotFound(w, "Book is not in the cart")
		return
	}

	utils.ResponseSuccess(w, "Book removed from cart", nil)
}

func (h *CartHandler) handleCartError(w http.ResponseWriter, err error, op string) {
	switch {
	case errors.Is(err, usecase.ErrBookNotFound):
		utils.ResponseNotFound(w, "Book not found")
	case errors.Is(err, usecase.ErrCartItemNotFound):
		utils.ResponseNotFound(w, "Book is not in the cart")
	case errors.Is(err, usecase.ErrPurchasedItem):
		utils.ResponseConflict(w, "Cannot modify purchased items in cart")
	default:
		h.log.Error("Cart operation failed", zap.Error(err), zap.String("operation", op))
		utils.ResponseInternalError(w, "Cart operation failed")
	}
}
