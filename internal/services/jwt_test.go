package services

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/hafiz-aliAwj/portfolio/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testUser() *models.User {
	return &models.User{
		ID:       uuid.New(),
		Username: "admin",
		Name:     "Site Owner",
		Email:    "owner@example.com",
		Role:     models.RoleAdmin,
	}
}

func TestNewJWTService(t *testing.T) {
	svc := NewJWTService("secret", 24*time.Hour)

	assert.NotNil(t, svc)
	assert.Equal(t, 24*time.Hour, svc.Expiry())
}

func TestNewJWTService_DefaultExpiry(t *testing.T) {
	svc := NewJWTService("secret", 0)

	assert.Equal(t, DefaultSessionExpiry, svc.Expiry())
}

func TestJWTService_Issue(t *testing.T) {
	issuedAt := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	svc := NewJWTService("test-secret", 24*time.Hour).WithClock(func() time.Time { return issuedAt })

	token, expiresAt, err := svc.Issue(testUser())

	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, issuedAt.Add(24*time.Hour), expiresAt)
}

func TestJWTService_Issue_UniqueTokens(t *testing.T) {
	issuedAt := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	svc := NewJWTService("test-secret", 24*time.Hour).WithClock(func() time.Time { return issuedAt })
	user := testUser()

	first, _, err := svc.Issue(user)
	require.NoError(t, err)
	second, _, err := svc.Issue(user)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestJWTService_Verify_Valid(t *testing.T) {
	svc := NewJWTService("test-secret", 24*time.Hour)
	user := testUser()

	token, _, err := svc.Issue(user)
	require.NoError(t, err)

	claims, err := svc.Verify(token)

	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.Username, claims.Username)
	assert.Equal(t, user.Name, claims.Name)
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, user.Role, claims.Role)
	assert.Equal(t, SessionIssuer, claims.Issuer)
	assert.Equal(t, user.ID.String(), claims.Subject)
	assert.NotEmpty(t, claims.ID)
	assert.True(t, claims.IsAdmin())
}

func TestJWTService_Verify_ExpiryBoundary(t *testing.T) {
	issuedAt := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	now := issuedAt
	svc := NewJWTService("test-secret", 24*time.Hour).WithClock(func() time.Time { return now })

	token, _, err := svc.Issue(testUser())
	require.NoError(t, err)

	now = issuedAt.Add(23*time.Hour + 59*time.Minute)
	_, err = svc.Verify(token)
	assert.NoError(t, err)

	now = issuedAt.Add(24*time.Hour + 1*time.Minute)
	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_Verify_WrongSecret(t *testing.T) {
	svc1 := NewJWTService("secret-1", 24*time.Hour)
	svc2 := NewJWTService("secret-2", 24*time.Hour)

	token, _, err := svc1.Issue(testUser())
	require.NoError(t, err)

	_, err = svc2.Verify(token)

	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_Verify_MalformedToken(t *testing.T) {
	svc := NewJWTService("test-secret", 24*time.Hour)

	testCases := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"garbage", "not-a-jwt"},
		{"two segments", "header.payload"},
		{"bad base64", "a.b.c"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			claims, err := svc.Verify(tc.token)

			assert.Nil(t, claims)
			assert.True(t, errors.Is(err, ErrInvalidToken))
		})
	}
}

func TestJWTService_Verify_RejectsNoneAlgorithm(t *testing.T) {
	svc := NewJWTService("test-secret", 24*time.Hour)
	claims := Claims{
		UserID: uuid.New(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			Issuer:    SessionIssuer,
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.Verify(token)

	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_Verify_WrongIssuer(t *testing.T) {
	svc := NewJWTService("test-secret", 24*time.Hour)
	claims := Claims{
		UserID: uuid.New(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			Issuer:    "someone-else",
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = svc.Verify(token)

	assert.ErrorIs(t, err, ErrInvalidToken)
}
