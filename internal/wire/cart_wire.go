package wire

import (
	"bookstore-backend/internal/adaptor"
	"bookstore-backend/pkg/middleware"
	"bookstore-backend/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireCart(r chi.Router, cartHandler *adaptor.CartHandler, config *utils.Config, log *zap.Logger) {
	r.Route("/api/cart", func(r chi.Router) {
		r.Use(middleware.Auth([]byte(config.JWT.Secret), log))

		r.Get("/", cartHandler.List)
		r.Post("/", cartHandler.Add)
		r.Put("/", cartHandler.Update)
		r.Delete("/{bookId}", cartHandler.Remove)
	})
}
