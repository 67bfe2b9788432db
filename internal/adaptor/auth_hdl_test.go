package adaptor

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bookstore-backend/internal/data/entity"
	"bookstore-backend/internal/dto/response"
	"bookstore-backend/internal/usecase"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type stubAuthService struct {
	registerResp *response.UserResponse
	registerErr  error
	registerRole entity.UserRole
	loginResp    *response.AuthResponse
	loginErr     error
	forgetSent   bool
	forgetErr    error
	resetErr     error
}

func (s *stubAuthService) Register(_ context.Context, _, _, _, _ string, role entity.UserRole) (*response.UserResponse, error) {
	s.registerRole = role
	return s.registerResp, s.registerErr
}

func (s *stubAuthService) Login(_ context.Context, _, _ string) (*response.AuthResponse, error) {
	return s.loginResp, s.loginErr
}

func (s *stubAuthService) ForgetPassword(_ context.Context, _ string) (bool, error) {
	return s.forgetSent, s.forgetErr
}

func (s *stubAuthService) ResetPasswordWithOtp(_ context.Context, _, _, _ string) error {
	return s.resetErr
}

func newAuthRouter(svc usecase.AuthService) http.Handler {
	h := NewAuthHandler(svc, zap.NewNop())
	r := chi.NewRouter()
	r.Post("/api/auth/register", h.Register)
	r.Post("/api/auth/register-admin", h.RegisterAdmin)
	r.Post("/api/auth/login", h.Login)
	r.Post("/api/auth/forget-password", h.ForgetPassword)
	r.Post("/api/auth/reset-password", h.ResetPassword)
	return r
}

func postJSON(router http.Handler, target, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	router.ServeHTTP(rec, req)
	return rec
}

const registerBody = `{"first_name":"Ada","last_name":"Lovelace","email":"ada@example.com","password":"secret123"}`

func TestRegisterEndpoint(t *testing.T) {
	svc := &stubAuthService{registerResp: &response.UserResponse{ID: 1, Email: "ada@example.com"}}
	router := newAuthRouter(svc)

	rec := postJSON(router, "/api/auth/register", registerBody)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, entity.RoleUser, svc.registerRole)
}

func TestRegisterAdminEndpoint_UsesAdminRole(t *testing.T) {
	svc := &stubAuthService{registerResp: &response.UserResponse{ID: 1}}
	router := newAuthRouter(svc)

	rec := postJSON(router, "/api/auth/register-admin", registerBody)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, entity.RoleAdmin, svc.registerRole)
}

func TestRegisterEndpoint_EmailTaken(t *testing.T) {
	router := newAuthRouter(&stubAuthService{registerErr: usecase.ErrEmailTaken})

	rec := postJSON(router, "/api/auth/register", registerBody)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestRegisterEndpoint_ValidationFailure(t *testing.T) {
	router := newAuthRouter(&stubAuthService{})

	rec := postJSON(router, "/api/auth/register", `{"first_name":"Ada","email":"not-an-email","password":"x"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLoginEndpoint_BadCredentials(t *testing.T) {
	router := newAuthRouter(&stubAuthService{loginErr: usecase.ErrInvalidCredentials})

	rec := postJSON(router, "/api/auth/login", `{"email":"ada@example.com","password":"wrongpass"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestForgetPasswordEndpoint_UniformResponse(t *testing.T) {
	// Known and unknown emails must be indistinguishable at the HTTP level.
	for _, sent := range []bool{true, false} {
		router := newAuthRouter(&stubAuthService{forgetSent: sent})

		rec := postJSON(router, "/api/auth/forget-password", `{"email":"anyone@example.com"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestResetPasswordEndpoint_InvalidOTP(t *testing.T) {
	router := newAuthRouter(&stubAuthService{resetErr: usecase.ErrInvalidOTP})

	rec := postJSON(router, "/api/auth/reset-password", `{"email":"ada@example.com","otp":"123456","new_password":"newpass456"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestResetPasswordEndpoint_RejectsShortOTP(t *testing.T) {
	router := newAuthRouter(&stubAuthService{})

	rec := postJSON(router, "/api/auth/reset-password", `{"email":"ada@example.com","otp":"123","new_password":"newpass456"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
