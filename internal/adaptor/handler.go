package adaptor

import (
	"bookstore-backend/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Auth     *AuthHandler
	Book     *BookHandler
	Cart     *CartHandler
	Wishlist *WishlistHandler
	Address  *AddressHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:     NewAuthHandler(service.Auth, log),
		Book:     NewBookHandler(service.Book, log),
		Cart:     NewCartHandler(service.Cart, log),
		Wishlist: NewWishlistHandler(service.Wishlist, log),
		Address:  NewAddressHandler(service.Address, log),
	}
}
