package middleware

import (
	"net/http"

	"nomina/internal/apierror"
	"nomina/internal/repository"

	"github.com/gin-gonic/gin"
)

const (
	// PrincipalKey is the gin context key holding the resolved principal.
	PrincipalKey = "principal"
	// SessionTokenKey holds the raw token so logout can revoke it.
	SessionTokenKey = "session_token"
	// SessionCookie is the name of the session cookie.
	SessionCookie = "nomina_session"
)

// Session resolves the session cookie into a principal on every request.
// It never aborts: an absent, unknown or expired token just leaves the
// request anonymous, and the gates below decide what that means.
func Session(store repository.SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookie)
		if err != nil || token == "" {
			c.Next()
			return
		}
		p, err := store.Get(c.Request.Context(), token)
		if err != nil {
			c.Next()
			return
		}
		c.Set(PrincipalKey, p)
		c.Set(SessionTokenKey, token)
		c.Next()
	}
}

// RequireAuth rejects anonymous callers with 401.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if GetPrincipal(c) == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Debes iniciar sesión para acceder"))
			return
		}
		c.Next()
	}
}

// RequireRol gates a route on the caller's role. Anonymous callers get the
// same 403 as authenticated callers with the wrong role — the operation is
// refused before any store access either way.
func RequireRol(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(c *gin.Context) {
		p := GetPrincipal(c)
		if p == nil || !allowed[p.Rol] {
			c.AbortWithStatusJSON(http.StatusForbidden, apierror.New("Acceso denegado. Se requieren permisos de administrador."))
			return
		}
		c.Next()
	}
}

// GetPrincipal returns the authenticated principal, or nil when anonymous.
func GetPrincipal(c *gin.Context) *repository.Principal {
	v, ok := c.Get(PrincipalKey)
	if !ok {
		return nil
	}
	p, _ := v.(*repository.Principal)
	return p
}
