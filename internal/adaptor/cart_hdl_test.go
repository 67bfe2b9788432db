package adaptor

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bookstore-backend/internal/dto/response"
	"bookstore-backend/internal/usecase"
	"bookstore-backend/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubCartService struct {
	addErr    error
	updateErr error
	removed   bool
	removeErr error
	lines     []response.CartLineResponse
	listErr   error

	addCalls []int64
}

func (s *stubCartService) AddToCart(_ context.Context, _ int64, bookID int64) error {
	s.addCalls = append(s.addCalls, bookID)
	return s.addErr
}

func (s *stubCartService) GetUserCart(_ context.Context, _ int64) ([]response.CartLineResponse, error) {
	return s.lines, s.listErr
}

func (s *stubCartService) UpdateCartItem(_ context.Context, _, _ int64, _ int, _ bool) error {
	return s.updateErr
}

func (s *stubCartService) RemoveFromCart(_ context.Context, _, _ int64) (bool, error) {
	return s.removed, s.removeErr
}

func newCartRouter(svc usecase.CartService) http.Handler {
	h := NewCartHandler(svc, zap.NewNop())
	r := chi.NewRouter()
	r.Post("/api/cart", h.Add)
	r.Get("/api/cart", h.List)
	r.Put("/api/cart", h.Update)
	r.Delete("/api/cart/{bookId}", h.Remove)
	return r
}

func authedRequest(method, target, body string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	ctx := utils.SetUserContext(req.Context(), 1, "User")
	return req.WithContext(ctx)
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) utils.Response {
	t.Helper()
	var resp utils.Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func TestCartAdd(t *testing.T) {
	svc := &stubCartService{}
	router := newCartRouter(svc)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodPost, "/api/cart", `{"book_id": 7}`))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []int64{7}, svc.addCalls)
	resp := decodeResponse(t, rec)
	assert.True(t, resp.Success)
}

func TestCartAdd_InvalidBody(t *testing.T) {
	router := newCartRouter(&stubCartService{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodPost, "/api/cart", `{not json`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCartAdd_ValidationFailure(t *testing.T) {
	router := newCartRouter(&stubCartService{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodPost, "/api/cart", `{"book_id": 0}`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeResponse(t, rec)
	assert.False(t, resp.Success)
	assert.NotNil(t, resp.Errors)
}

func TestCartAdd_WithoutAuthContext(t *testing.T) {
	router := newCartRouter(&stubCartService{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/cart", strings.NewReader(`{"book_id": 7}`))
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCartAdd_BookNotFound(t *testing.T) {
	router := newCartRouter(&stubCartService{addErr: usecase.ErrBookNotFound})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodPost, "/api/cart", `{"book_id": 7}`))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCartAdd_PurchasedConflict(t *testing.T) {
	router := newCartRouter(&stubCartService{addErr: usecase.ErrPurchasedItem})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodPost, "/api/cart", `{"book_id": 7}`))

	assert.Equal(t, http.StatusConflict, rec.Code)
	resp := decodeResponse(t, rec)
	assert.Equal(t, "Cannot modify purchased items in cart", resp.Message)
}

func TestCartList(t *testing.T) {
	svc := &stubCartService{lines: []response.CartLineResponse{
		{BookID: 7, Title: "Go in Action", Quantity: 2, DiscountPrice: 160, TotalPrice: 320},
	}}
	router := newCartRouter(svc)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodGet, "/api/cart", ""))

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)
	require.True(t, resp.Success)
	assert.NotNil(t, resp.Data)
}

func TestCartUpdate_MissingLine(t *testing.T) {
	router := newCartRouter(&stubCartService{updateErr: usecase.ErrCartItemNotFound})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodPut, "/api/cart", `{"book_id": 7, "quantity": 3}`))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCartRemove(t *testing.T) {
	router := newCartRouter(&stubCartService{removed: true})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodDelete, "/api/cart/7", ""))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCartRemove_Absent(t *testing.T) {
	router := newCartRouter(&stubCartService{removed: false})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodDelete, "/api/cart/7", ""))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCartRemove_InvalidID(t *testing.T) {
	router := newCartRouter(&stubCartService{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodDelete, "/api/cart/abc", ""))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
