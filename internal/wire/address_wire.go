package wire

import (
	"bookstore-backend/internal/adaptor"
	"bookstore-backend/pkg/middleware"
	"bookstore-backend/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAddress(r chi.Router, addressHandler *adaptor.AddressHandler, config *utils.Config, log *zap.Logger) {
	r.Route("/api/addresses", func(r chi.Router) {
		r.Use(middleware.Auth([]byte(config.JWT.Secret), log))

		r.Get("/", addressHandler.List)
		r.Post("/", addressHandler.Create)
		r.Get("/{id}", addressHandler.Get)
		r.Put("/{id}", addressHandler.Update)
		r.Delete("/{id}", addressHandler.Delete)
	})
}
