package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"nomina/internal/config"
	"nomina/internal/dto"
	"nomina/internal/middleware"
	"nomina/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type authServiceStub struct {
	token     string
	ttl       time.Duration
	resp      *dto.LoginResponse
	loginErr  error
	revocados []string
}

func (s *authServiceStub) Login(_ context.Context, _ dto.LoginRequest) (string, time.Duration, *dto.LoginResponse, error) {
	if s.loginErr != nil {
		return "", 0, nil, s.loginErr
	}
	return s.token, s.ttl, s.resp, nil
}

func (s *authServiceStub) Logout(_ context.Context, token string) error {
	s.revocados = append(s.revocados, token)
	return nil
}

func authRouter(stub *authServiceStub) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewAuthHandler(stub, &config.Config{})
	r.POST("/login", h.Login)
	r.GET("/logout", func(c *gin.Context) {
		// Simula el middleware de sesión resolviendo la cookie.
		if cookie, err := c.Cookie(middleware.SessionCookie); err == nil {
			c.Set(middleware.SessionTokenKey, cookie)
		}
		h.Logout(c)
	})
	return r
}

func postForm(r *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func sessionCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == middleware.SessionCookie {
			return c
		}
	}
	return nil
}

func TestLoginColocaCookieDeSesion(t *testing.T) {
	stub := &authServiceStub{
		token: "abc123",
		ttl:   8 * time.Hour,
		resp: &dto.LoginResponse{
			Mensaje: "Sesión iniciada",
			Usuario: dto.UsuarioResponse{ID: 1, Email: "admin@obra.com", Rol: "admin"},
		},
	}
	r := authRouter(stub)

	w := postForm(r, "/login", url.Values{
		"email":    {"admin@obra.com"},
		"password": {"secreto1"},
	})

	require.Equal(t, http.StatusOK, w.Code)
	cookie := sessionCookie(t, w)
	require.NotNil(t, cookie)
	assert.Equal(t, "abc123", cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, int((8 * time.Hour).Seconds()), cookie.MaxAge)
	assert.Contains(t, w.Body.String(), "admin@obra.com")
}

func TestLoginCredencialesInvalidasDevuelve401(t *testing.T) {
	r := authRouter(&authServiceStub{loginErr: service.ErrCredencialesInvalidas})

	w := postForm(r, "/login", url.Values{
		"email":    {"admin@obra.com"},
		"password": {"mala"},
	})

	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"Email o contraseña incorrectos"}`, w.Body.String())
	assert.Nil(t, sessionCookie(t, w))
}

func TestLoginEmailMalFormadoDevuelve400(t *testing.T) {
	r := authRouter(&authServiceStub{})

	w := postForm(r, "/login", url.Values{
		"email":    {"no-es-un-email"},
		"password": {"secreto1"},
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogoutRevocaYLimpiaCookie(t *testing.T) {
	stub := &authServiceStub{}
	r := authRouter(stub)

	req := httptest.NewRequest(http.MethodGet, "/logout", nil)
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: "abc123"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"abc123"}, stub.revocados)

	cookie := sessionCookie(t, w)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Negative(t, cookie.MaxAge)
}

func TestLogoutSinSesionEsIdempotente(t *testing.T) {
	stub := &authServiceStub{}
	r := authRouter(stub)

	req := httptest.NewRequest(http.MethodGet, "/logout", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, stub.revocados)
	assert.Contains(t, w.Body.String(), "Sesión cerrada correctamente")
}
