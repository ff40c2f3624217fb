package integration

import (
	"context"
	"testing"

	"github.com/hafiz-aliAwj/portfolio/internal/models"
	"github.com/hafiz-aliAwj/portfolio/internal/services"
	"github.com/hafiz-aliAwj/portfolio/pkg/dto"
	"github.com/hafiz-aliAwj/portfolio/tests/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func registerRequest(username string) dto.RegisterRequest {
	return dto.RegisterRequest{
		Username: username,
		Password: testutil.TestPassword,
		Name:     "User " + username,
		Email:    username + "@example.com",
	}
}

func TestUserService_Integration_FirstUserIsAdmin(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	tdb := setupTest(t)
	svc := services.NewUserService(tdb.DB).WithHashCost(bcrypt.MinCost)
	ctx := context.Background()

	first, err := svc.Register(ctx, registerRequest("owner"))
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, first.Role)

	second, err := svc.Register(ctx, registerRequest("helper"))
	require.NoError(t, err)
	assert.Equal(t, models.RoleEditor, second.Role)
}

func TestUserService_Integration_DuplicateUsername(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	tdb := setupTest(t)
	svc := services.NewUserService(tdb.DB).WithHashCost(bcrypt.MinCost)
	ctx := context.Background()

	_, err := svc.Register(ctx, registerRequest("owner"))
	require.NoError(t, err)

	dup := registerRequest("owner")
	dup.Email = "other@example.com"
	_, err = svc.Register(ctx, dup)
	assert.ErrorIs(t, err, services.ErrUserExists)
}

func TestUserService_Integration_Authenticate(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	tdb := setupTest(t)
	fixtures := testutil.NewFixtures(tdb.DB)
	svc := services.NewUserService(tdb.DB)
	ctx := context.Background()

	user := fixtures.CreateUser(t, testutil.WithUsername("owner"))

	got, err := svc.Authenticate(ctx, "owner", testutil.TestPassword)
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	_, err = svc.Authenticate(ctx, "owner", "wrong")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)

	_, err = svc.Authenticate(ctx, "nobody", testutil.TestPassword)
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
}

func TestUserService_Integration_Promote(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	tdb := setupTest(t)
	fixtures := testutil.NewFixtures(tdb.DB)
	svc := services.NewUserService(tdb.DB)
	ctx := context.Background()

	user := fixtures.CreateUser(t, testutil.WithUsername("helper"))
	require.Equal(t, models.RoleEditor, user.Role)

	require.NoError(t, svc.Promote(ctx, "helper"))

	got, err := svc.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, got.Role)

	assert.ErrorIs(t, svc.Promote(ctx, "nobody"), services.ErrNotFound)
}
