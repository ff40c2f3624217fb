package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/hafiz-aliAwj/portfolio/internal/services"
	"github.com/hafiz-aliAwj/portfolio/pkg/dto"
	"github.com/m1z23r/drift/pkg/drift"
)

const (
	SessionCookie = "token"
	ClaimsKey     = "session_claims"
	TokenKey      = "session_token"
)

type TokenVerifier interface {
	Verify(token string) (*services.Claims, error)
}

type RevocationChecker interface {
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// Session resolves the token cookie into claims on the context. A missing,
// invalid, expired or revoked token leaves the request anonymous; only
// RequireAuth turns that into a 401.
func Session(verifier TokenVerifier, revocations RevocationChecker) drift.HandlerFunc {
	return func(c *drift.Context) {
		cookie, err := c.Request.Cookie(SessionCookie)
		if err != nil || cookie.Value == "" {
			c.Next()
			return
		}

		claims, err := verifier.Verify(cookie.Value)
		if err != nil {
			slog.Debug("session token rejected", slog.String("error", err.Error()))
			c.Next()
			return
		}

		revoked, err := revocations.IsRevoked(c.Request.Context(), claims.ID)
		if err != nil {
			slog.Error("failed to check token revocation", slog.String("error", err.Error()))
			c.Next()
			return
		}
		if revoked {
			c.Next()
			return
		}

		c.Set(ClaimsKey, claims)
		c.Set(TokenKey, cookie.Value)
		c.Next()
	}
}

// RequireAuth rejects requests that carry no valid session.
func RequireAuth() drift.HandlerFunc {
	return func(c *drift.Context) {
		if _, ok := CurrentUser(c); !ok {
			abortWithError(c, http.StatusUnauthorized, "Unauthorized")
			return
		}
		c.Next()
	}
}

// AdminOnly guards a single route so that only admin sessions reach next.
func AdminOnly(next drift.HandlerFunc) drift.HandlerFunc {
	return func(c *drift.Context) {
		claims, ok := CurrentUser(c)
		if !ok || !claims.IsAdmin() {
			abortWithError(c, http.StatusUnauthorized, "Unauthorized")
			return
		}
		next(c)
	}
}

// CurrentUser returns the session claims for the request, if any.
func CurrentUser(c *drift.Context) (*services.Claims, bool) {
	v, ok := c.Get(ClaimsKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*services.Claims)
	return claims, ok && claims != nil
}

func abortWithError(c *drift.Context, status int, msg string) {
	_ = c.JSON(status, dto.ErrorResponse{Error: msg})
	c.Abort()
}
