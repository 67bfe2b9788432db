package wire

import (
	"net/http"

	"bookstore-backend/internal/adaptor"
	"bookstore-backend/internal/data/repository"
	"bookstore-backend/internal/mail"
	"bookstore-backend/internal/otp"
	"bookstore-backend/internal/usecase"
	"bookstore-backend/pkg/middleware"
	"bookstore-backend/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type App struct {
	Router *chi.Mux
}

// Wiring builds the service layer, the HTTP handlers and the router.
func Wiring(repo *repository.Repository, config *utils.Config, issuer *otp.Issuer, mailer mail.Sender, logger *zap.Logger) *App {
	service := usecase.NewService(repo, config, issuer, mailer, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, config, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	wireAuth(r, handler.Auth)
	wireBook(r, handler.Book, config, logger)
	wireCart(r, handler.Cart, config, logger)
	wireWishlist(r, handler.Wishlist, config, logger)
	wireAddress(r, handler.Address, config, logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
