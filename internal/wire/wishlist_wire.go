package wire

import (
	"bookstore-backend/internal/adaptor"
	"bookstore-backend/pkg/middleware"
	"bookstore-backend/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireWishlist(r chi.Router, wishlistHandler *adaptor.WishlistHandler, config *utils.Config, log *zap.Logger) {
	r.Route("/api/wishlist", func(r chi.Router) {
		r.Use(middleware.Auth([]byte(config.JWT.Secret), log))

		r.Get("/", wishlistHandler.List)
		r.Post("/", wishlistHandler.Add)
		r.Post("/move-to-cart", wishlistHandler.MoveToCart)
		r.Delete("/{bookId}", wishlistHandler.Remove)
	})
}
