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

type WishlistHandler struct {
	service usecase.WishlistService
	log     *zap.Logger
}

func NewWishlistHandler(service usecase.WishlistService, log *zap.Logger) *WishlistHandler {
	return &WishlistHandler{
		service: service,
		log:     log,
	}
}

// Add handles POST /api/wishlist
func (h *WishlistHandler) Add(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.WishlistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	if err := h.service.AddToWishlist(r.Context(), userID, req.BookID); err != nil {
		h.handleWishlistError(w, err, "add to wishlist")
		return
	}

	utils.ResponseSuccess(w, "Book added to wishlist", nil)
}

// List handles GET /api/wishlist
func (h *WishlistHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	items, err := h.service.GetWishlistItems(r.Context(), userID)
	if err != nil {
		h.log.Error("Failed to load wishlist", zap.Error(err), zap.Int64("user_id", userID))
		utils.ResponseInternalError(w, "Failed to load wishlist")
		return
	}

	utils.ResponseSuccess(w, "Wishlist retrieved", items)
}

// Remove handles DELETE /api/wishlist/{bookId}
func (h *WishlistHandler) Remove(w http.ResponseWriter, r *http.Request) {
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

	removed, err := h.service.RemoveFromWishlist(r.Context(), userID, bookID)
	if err != nil {
		h.handleWishlistError(w, err, "remove from wishlist")
		return
	}
	if !removed {
		utils.ResponseNotFound(w, "Book is not in the wishlist")
		return
	}

	utils.ResponseSuccess(w, "Book removed from wishlist", nil)
}

// MoveToCart handles POST /api/wishlist/move-to-cart
func (h *WishlistHandler) MoveToCart(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.WishlistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	if err := h.service.MoveToCart(r.Context(), userID, req.BookID); err != nil {
		h.handleWishlistError(w, err, "move to cart")
		return
	}

	utils.ResponseSuccess(w, "Book moved to cart", nil)
}

func (h *WishlistHandler) handleWishlistError(w http.ResponseWriter, err error, op string) {
	switch {
	case errors.Is(err, usecase.ErrBookNotFound):
		utils.ResponseNotFound(w, "Book not found")
	case errors.Is(err, usecase.ErrAlreadyInWishlist):
		utils.ResponseConflict(w, "Book is already in the wishlist")
	case errors.Is(err, usecase.ErrNotInWishlist):
		utils.ResponseNotFound(w, "Book is not in the wishlist")
	case errors.Is(err, usecase.ErrPurchasedItem):
		utils.ResponseConflict(w, "Cannot modify purchased items in cart")
	default:
		h.log.Error("Wishlist operation failed", zap.Error(err), zap.String("operation", op))
		utils.ResponseInternalError(w, "Wishlist operation failed")
	}
}
