package wire

import (
	"bookstore-backend/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireAuth(r chi.Router, authHandler *adaptor.AuthHandler) {
	// All auth routes are public. Admin registration creates an account
	// with the Admin role; login is shared.
	r.Post("/api/user/register", authHandler.Register)
	r.Post("/api/user/login", authHandler.Login)
	r.Post("/api/user/forget-password", authHandler.ForgetPassword)
	r.Post("/api/user/reset-password", authHandler.ResetPassword)

	r.Post("/api/admin/register", authHandler.RegisterAdmin)
	r.Post("/api/admin/login", authHandler.Login)
}
