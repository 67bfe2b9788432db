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

type BookHandler struct {
	service usecase.BookService
	log     *zap.Logger
}

func NewBookHandler(service usecase.BookService, log *zap.Logger) *BookHandler {
	return &BookHandler{
		service: service,
		log:     log,
	}
}

// List handles GET /api/books?page=1&per_page=20
func (h *BookHandler) List(w http.ResponseWriter, r *http.Request) {
	page := utils.ParseInt(r.URL.Query().Get("page"), 1)
	perPage := utils.ParseInt(r.URL.Query().Get("per_page"), 20)

	books, err := h.service.List(r.Context(), page, perPage)
	if err != nil {
		h.log.Error("Failed to list books", zap.Error(err))
		utils.ResponseInternalError(w, "Failed to list books")
		return
	}

	utils.ResponseSuccess(w, "Books retrieved", books)
}

// Get handles GET /api/books/{id}
func (h *BookHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid book id", nil)
		return
	}

	book, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrBookNotFound) {
			utils.ResponseNotFound(w, "Book not found")
			return
		}
		h.log.Error("Failed to get book", zap.Error(err), zap.Int64("book_id", id))
		utils.ResponseInternalError(w, "Failed to get book")
		return
	}

	utils.ResponseSuccess(w, "Book retrieved", book)
}

// Create handles POST /api/books (admin only)
func (h *BookHandler) Create(w http.ResponseWriter, r *http.Request) {
	adminID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.BookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	book, err := h.service.Create(r.Context(), &req, adminID)
	if err != nil {
		h.log.Error("Failed to create book", zap.Error(err))
		utils.ResponseInternalError(w, "Failed to create book")
		return
	}

	utils.ResponseCreated(w, "Book created", book)
}

// Update handles PUT /api/books/{id} (admin only)
func (h *BookHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid book id", nil)
		return
	}

	var req request.BookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	book, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		if errors.Is(err, usecase.ErrBookNotFound) {
			utils.ResponseNotFound(w, "Book not found")
			return
		}
		h.log.Error("Failed to update book", zap.Error(err), zap.Int64("book_id", id))
		utils.ResponseInternalError(w, "Failed to update book")
		return
	}

	utils.ResponseSuccess(w, "Book updated", book)
}

// Delete handles DELETE /api/books/{id} (admin only)
func (h *BookHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid book id", nil)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, usecase.ErrBookNotFound) {
			utils.ResponseNotFound(w, "Book not found")
			return
		}
		h.log.Error("Failed to delete book", zap.Error(err), zap.Int64("book_id", id))
		utils.ResponseInternalError(w, "Failed to delete book")
		return
	}

	utils.ResponseSuccess(w, "Book deleted", nil)
}
