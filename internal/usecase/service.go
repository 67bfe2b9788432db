package usecase

import (
	"bookstore-backend/internal/data/repository"
	"bookstore-backend/internal/mail"
	"bookstore-backend/internal/otp"
	"bookstore-backend/pkg/utils"

	"go.uber.org/zap"
)

// Service bundles every usecase behind one value for wiring. Cart and
// wishlist share a key lock so their compound operations on the same
// (user, book) pair serialize against each other.
type Service struct {
	Auth     AuthService
	Book     BookService
	Cart     CartService
	Wishlist WishlistService
	Address  AddressService
}

func NewService(repo *repository.Repository, cfg *utils.Config, issuer *otp.Issuer, mailer mail.Sender, log *zap.Logger) *Service {
	locks := newKeyLock()

	return &Service{
		Auth:     NewAuthService(repo, issuer, mailer, cfg.JWT, log),
		Book:     NewBookService(repo, log),
		Cart:     NewCartService(repo, locks, log),
		Wishlist: NewWishlistService(repo, locks, log),
		Address:  NewAddressService(repo, log),
	}
}
