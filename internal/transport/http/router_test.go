package httptransport_test

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/moscow89er/mesto-api/internal/domain"
	"github.com/moscow89er/mesto-api/internal/token"
	httptransport "github.com/moscow89er/mesto-api/internal/transport/http"
	"github.com/moscow89er/mesto-api/internal/transport/http/handler"
	"github.com/moscow89er/mesto-api/internal/usecase"
)

func init() {
	gin.SetMode(gin.TestMode)
}

const routerTestKey = "router-test-secret-32-characters!"

// stub usecases fail the test if any handler is reached; these tests only
// exercise routing and the gates in front of the handlers.
type stubAuthUsecase struct{ t *testing.T }

func (s *stubAuthUsecase) Register(context.Context, usecase.RegisterInput) (*domain.User, error) {
	s.t.Fatal("auth handler reached")
	return nil, nil
}

func (s *stubAuthUsecase) Login(context.Context, string, string) (string, string, error) {
	s.t.Fatal("auth handler reached")
	return "", "", nil
}

type stubUserUsecase struct{ t *testing.T }

func (s *stubUserUsecase) List(context.Context) ([]*domain.User, error) {
	s.t.Fatal("user handler reached")
	return nil, nil
}

func (s *stubUserUsecase) GetByID(context.Context, string) (*domain.User, error) {
	s.t.Fatal("user handler reached")
	return nil, nil
}

func (s *stubUserUsecase) UpdateProfile(context.Context, string, string, string) (*domain.User, error) {
	s.t.Fatal("user handler reached")
	return nil, nil
}

func (s *stubUserUsecase) UpdateAvatar(context.Context, string, string) (*domain.User, error) {
	s.t.Fatal("user handler reached")
	return nil, nil
}

type stubCardUsecase struct{ t *testing.T }

func (s *stubCardUsecase) List(context.Context) ([]*domain.Card, error) {
	s.t.Fatal("card handler reached")
	return nil, nil
}

func (s *stubCardUsecase) Create(context.Context, string, string, string) (*domain.Card, error) {
	s.t.Fatal("card handler reached")
	return nil, nil
}

func (s *stubCardUsecase) Delete(context.Context, string, string) (*domain.Card, error) {
	s.t.Fatal("card handler reached")
	return nil, nil
}

func (s *stubCardUsecase) Like(context.Context, string, string) (*domain.Card, error) {
	s.t.Fatal("card handler reached")
	return nil, nil
}

func (s *stubCardUsecase) Unlike(context.Context, string, string) (*domain.Card, error) {
	s.t.Fatal("card handler reached")
	return nil, nil
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	logger := slog.New(slog.DiscardHandler)
	return httptransport.NewRouter(
		logger,
		handler.NewAuthHandler(&stubAuthUsecase{t}, logger),
		handler.NewUserHandler(&stubUserUsecase{t}, logger),
		handler.NewCardHandler(&stubCardUsecase{t}, logger),
		token.NewService([]byte(routerTestKey)),
		[]string{"http://localhost:3000"},
	)
}

func TestRouter_UnknownRoute_Returns404PageNotFound(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/no/such/page", nil)
	newTestRouter(t).ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Page not found") {
		t.Errorf("body = %q, want the page-not-found message", w.Body.String())
	}
}

func TestRouter_ProtectedRoutes_RejectWithoutToken(t *testing.T) {
	routes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/users"},
		{http.MethodGet, "/users/me"},
		{http.MethodGet, "/users/64adf13c9a2b7e0012345678"},
		{http.MethodPatch, "/users/me"},
		{http.MethodPatch, "/users/me/avatar"},
		{http.MethodGet, "/cards"},
		{http.MethodPost, "/cards"},
		{http.MethodDelete, "/cards/64adf13c9a2b7e0012345678"},
		{http.MethodPut, "/cards/64adf13c9a2b7e0012345678/likes"},
		{http.MethodDelete, "/cards/64adf13c9a2b7e0012345678/likes"},
	}

	r := newTestRouter(t)
	for _, rt := range routes {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(rt.method, rt.path, nil)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("%s %s: status = %d, want 401", rt.method, rt.path, w.Code)
		}
	}
}

func TestRouter_SigninIsPublic(t *testing.T) {
	// An empty body fails validation with 400, which proves the request
	// passed the auth gate and reached binding.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/signin", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	newTestRouter(t).ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400 (validation, not auth)", w.Code)
	}
}
