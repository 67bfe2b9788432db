package wire

import (
	"bookstore-backend/internal/adaptor"
	"bookstore-backend/pkg/middleware"
	"bookstore-backend/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBook(r chi.Router, bookHandler *adaptor.BookHandler, config *utils.Config, log *zap.Logger) {
	// Catalog reads are public.
	r.Get("/api/books", bookHandler.List)
	r.Get("/api/books/{id}", bookHandler.Get)

	// Catalog writes require an authenticated admin.
	auth := middleware.Auth([]byte(config.JWT.Secret), log)
	admin := middleware.Admin(log)

	r.With(auth, admin).Post("/api/books", bookHandler.Create)
	r.With(auth, admin).Put("/api/books/{id}", bookHandler.Update)
	r.With(auth, admin).Delete("/api/books/{id}", bookHandler.Delete)
}
