package repository

import (
	"bookstore-backend/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User     UserRepository
	Book     BookRepository
	Cart     CartRepository
	Wishlist WishlistRepository
	Address  AddressRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:     NewUserRepository(db, log),
		Book:     NewBookRepository(db, log),
		Cart:     NewCartRepository(db, log),
		Wishlist: NewWishlistRepository(db, log),
		Address:  NewAddressRepository(db, log),
	}
}
