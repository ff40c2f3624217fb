package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/hafiz-aliAwj/portfolio/internal/config"
	"github.com/hafiz-aliAwj/portfolio/internal/middleware"
	"github.com/hafiz-aliAwj/portfolio/internal/models"
	"github.com/hafiz-aliAwj/portfolio/internal/services"
	"github.com/hafiz-aliAwj/portfolio/pkg/dto"
	"github.com/hafiz-aliAwj/portfolio/tests/testutil"
	"github.com/m1z23r/drift/pkg/drift"
	driftmw "github.com/m1z23r/drift/pkg/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authMocks struct {
	users  *testutil.MockUserService
	tokens *testutil.MockTokenService
	jwt    *testutil.MockJWTService
}

func setupAuthTest(t *testing.T, env string, claims *services.Claims) (*authMocks, http.Handler) {
	t.Helper()
	m := &authMocks{
		users:  new(testutil.MockUserService),
		tokens: new(testutil.MockTokenService),
		jwt:    new(testutil.MockJWTService),
	}

	handler := NewAuthHandler(&config.Config{Env: env}, m.users, m.tokens, m.jwt, nil)

	app := drift.New()
	app.Use(driftmw.BodyParser())
	if claims != nil {
		app.Use(func(c *drift.Context) {
			c.Set(middleware.ClaimsKey, claims)
			c.Next()
		})
	}
	app.Post("/auth/register", handler.Register)
	app.Post("/auth/login", handler.Login)
	app.Post("/auth/logout", handler.Logout)

	return m, app
}

func TestAuthHandler_Register(t *testing.T) {
	m, app := setupAuthTest(t, "development", nil)

	req := dto.RegisterRequest{Username: "admin", Password: "secret", Name: "Admin", Email: "admin@example.com"}
	user := &models.User{ID: uuid.New(), Username: "admin", Name: "Admin", Email: "admin@example.com", Role: models.RoleAdmin}
	m.users.On("Register", mock.Anything, req).Return(user, nil)

	rec := doJSON(t, app, http.MethodPost, "/auth/register", req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	var resp dto.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, models.RoleAdmin, resp.User.Role)
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestAuthHandler_Register_Duplicate(t *testing.T) {
	m, app := setupAuthTest(t, "development", nil)

	m.users.On("Register", mock.Anything, mock.Anything).Return(nil, services.ErrUserExists)

	rec := doJSON(t, app, http.MethodPost, "/auth/register", dto.RegisterRequest{
		Username: "admin", Password: "secret", Name: "Admin", Email: "admin@example.com",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "already exists")
}

func TestAuthHandler_Login_SetsCookie(t *testing.T) {
	m, app := setupAuthTest(t, "production", nil)

	user := &models.User{ID: uuid.New(), Username: "admin", Role: models.RoleAdmin}
	m.users.On("Authenticate", mock.Anything, "admin", "secret").Return(user, nil)
	m.jwt.On("Issue", user).Return("signed-token", time.Now().Add(24*time.Hour), nil)
	m.jwt.On("Expiry").Return(24 * time.Hour)

	rec := doJSON(t, app, http.MethodPost, "/auth/login", dto.LoginRequest{Username: "admin", Password: "secret"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Login successful")

	cookie := testutil.FindCookie(rec, middleware.SessionCookie)
	require.NotNil(t, cookie)
	assert.Equal(t, "signed-token", cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.True(t, cookie.Secure)
	assert.Equal(t, http.SameSiteStrictMode, cookie.SameSite)
	assert.Equal(t, 86400, cookie.MaxAge)
	assert.Equal(t, "/", cookie.Path)
}

func TestAuthHandler_Login_NotSecureOutsideProduction(t *testing.T) {
	m, app := setupAuthTest(t, "development", nil)

	user := &models.User{ID: uuid.New(), Username: "admin"}
	m.users.On("Authenticate", mock.Anything, "admin", "secret").Return(user, nil)
	m.jwt.On("Issue", user).Return("signed-token", time.Now().Add(24*time.Hour), nil)
	m.jwt.On("Expiry").Return(24 * time.Hour)

	rec := doJSON(t, app, http.MethodPost, "/auth/login", dto.LoginRequest{Username: "admin", Password: "secret"})

	cookie := testutil.FindCookie(rec, middleware.SessionCookie)
	require.NotNil(t, cookie)
	assert.False(t, cookie.Secure)
}

func TestAuthHandler_Login_MissingFields(t *testing.T) {
	m, app := setupAuthTest(t, "development", nil)

	rec := doJSON(t, app, http.MethodPost, "/auth/login", dto.LoginRequest{Username: "admin"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	m.users.AssertNotCalled(t, "Authenticate", mock.Anything, mock.Anything, mock.Anything)
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	m, app := setupAuthTest(t, "development", nil)

	m.users.On("Authenticate", mock.Anything, "admin", "wrong").Return(nil, services.ErrInvalidCredentials)

	rec := doJSON(t, app, http.MethodPost, "/auth/login", dto.LoginRequest{Username: "admin", Password: "wrong"})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid username or password")
	assert.Nil(t, testutil.FindCookie(rec, middleware.SessionCookie))
}

func TestAuthHandler_Logout_RevokesSession(t *testing.T) {
	expiresAt := time.Now().Add(time.Hour).Truncate(time.Second)
	claims := &services.Claims{
		UserID: uuid.New(),
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        "token-id",
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	m, app := setupAuthTest(t, "development", claims)

	m.tokens.On("Revoke", mock.Anything, "token-id", expiresAt).Return(nil)

	rec := doJSON(t, app, http.MethodPost, "/auth/logout", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	cookie := testutil.FindCookie(rec, middleware.SessionCookie)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Less(t, cookie.MaxAge, 0)
	m.tokens.AssertExpectations(t)
}

func TestAuthHandler_Logout_Anonymous(t *testing.T) {
	m, app := setupAuthTest(t, "development", nil)

	rec := doJSON(t, app, http.MethodPost, "/auth/logout", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	m.tokens.AssertNotCalled(t, "Revoke", mock.Anything, mock.Anything, mock.Anything)
}

func TestAuthHandler_Logout_RevokeError(t *testing.T) {
	claims := &services.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        "token-id",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	m, app := setupAuthTest(t, "development", claims)

	m.tokens.On("Revoke", mock.Anything, "token-id", mock.Anything).Return(errors.New("db down"))

	rec := doJSON(t, app, http.MethodPost, "/auth/logout", nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
