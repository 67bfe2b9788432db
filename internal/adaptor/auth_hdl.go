package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"

	"bookstore-backend/internal/data/entity"
	"bookstore-backend/internal/dto/request"
	"bookstore-backend/internal/usecase"
	"bookstore-backend/pkg/utils"

	"go.uber.org/zap"
)

type AuthHandler struct {
	service usecase.AuthService
	log     *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		log:     log,
	}
}

// Register handles POST /api/user/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	h.register(w, r, entity.RoleUser)
}

// RegisterAdmin handles POST /api/admin/register
func (h *AuthHandler) RegisterAdmin(w http.ResponseWriter, r *http.Request) {
	h.register(w, r, entity.RoleAdmin)
}

func (h *AuthHandler) register(w http.ResponseWriter, r *http.Request, role entity.UserRole) {
	var req request.RegisterRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	user, err := h.service.Register(r.Context(), req.FirstName, req.LastName, req.Email, req.Password, role)
	if err != nil {
		if errors.Is(err, usecase.ErrEmailTaken) {
			utils.ResponseConflict(w, "Email is already registered")
			return
		}
		h.log.Error("Registration failed", zap.Error(err))
		utils.ResponseInternalError(w, "Registration failed")
		return
	}

	utils.ResponseCreated(w, "Registration successful", user)
}

// Login handles POST /api/user/login and /api/admin/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	resp, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			utils.ResponseUnauthorized(w, "Invalid email or password")
			return
		}
		h.log.Error("Login failed", zap.Error(err))
		utils.ResponseInternalError(w, "Login failed")
		return
	}

	utils.ResponseSuccess(w, "Login successful", resp)
}

// ForgetPassword handles POST /api/user/forget-password. The response does
// not reveal whether the email is registered.
func (h *AuthHandler) ForgetPassword(w http.ResponseWriter, r *http.Request) {
	var req request.ForgetPasswordRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	if _, err := h.service.ForgetPassword(r.Context(), req.Email); err != nil {
		h.log.Error("Password reset request failed", zap.Error(err))
		utils.ResponseInternalError(w, "Could not process request")
		return
	}

	utils.ResponseSuccess(w, "If the email is registered, an OTP has been sent", nil)
}

// ResetPassword handles POST /api/user/reset-password
func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req request.ResetPasswordRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	err := h.service.ResetPasswordWithOtp(r.Context(), req.Email, req.OTP, req.NewPassword)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidOTP) {
			utils.ResponseBadRequest(w, "Invalid or expired OTP", nil)
			return
		}
		h.log.Error("Password reset failed", zap.Error(err))
		utils.ResponseInternalError(w, "Password reset failed")
		return
	}

	utils.ResponseSuccess(w, "Password has been reset", nil)
}
