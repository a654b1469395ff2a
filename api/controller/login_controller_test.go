package controller_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fanstage/fanstage/api/controller"
	"github.com/fanstage/fanstage/domain"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type stubLoginUsecase struct {
	resp *domain.AuthResponse
	err  error
}

func (s *stubLoginUsecase) Login(ctx context.Context, req domain.LoginRequest) (*domain.AuthResponse, error) {
	return s.resp, s.err
}

func loginRouter(uc domain.LoginUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	lc := controller.NewLoginController(uc)
	engine.POST("/api/auth/login", lc.Login)
	return engine
}

func TestLoginController(t *testing.T) {
	body := `{"email":"fan@example.com","password":"password123"}`

	t.Run("success", func(t *testing.T) {
		engine := loginRouter(&stubLoginUsecase{resp: &domain.AuthResponse{Token: "jwt-token"}})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "jwt-token")
	})

	t.Run("invalid credentials localize to the default language", func(t *testing.T) {
		engine := loginRouter(&stubLoginUsecase{err: domain.ErrInvalidCredentials})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "INVALID_CREDENTIALS")
		assert.Contains(t, w.Body.String(), "이메일 또는 비밀번호가 잘못되었습니다")
	})

	t.Run("invalid credentials in english", func(t *testing.T) {
		engine := loginRouter(&stubLoginUsecase{err: domain.ErrInvalidCredentials})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Accept-Language", "en-US")
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "invalid email or password")
	})

	t.Run("malformed body", func(t *testing.T) {
		engine := loginRouter(&stubLoginUsecase{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"email":"not-an-email"}`))
		req.Header.Set("Content-Type", "application/json")
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "INVALID_REQUEST")
	})
}
