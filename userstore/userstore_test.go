package userstore_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ray-remotestate/bakepos/models"
	"github.com/ray-remotestate/bakepos/userstore"
)

func TestCreateAndAuthenticate(t *testing.T) {
	s := userstore.New()

	user, err := s.Create("Eloise", "eloise@bakery.com", "secret123", models.RoleStaff)
	require.NoError(t, err)
	assert.Equal(t, models.RoleStaff, user.Role)

	got, err := s.Authenticate("eloise@bakery.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	// email lookup is case-insensitive
	_, err = s.Authenticate("ELOISE@bakery.com", "secret123")
	assert.NoError(t, err)

	_, err = s.Authenticate("eloise@bakery.com", "wrong")
	assert.ErrorIs(t, err, userstore.ErrInvalidCredentials)

	_, err = s.Authenticate("nobody@bakery.com", "secret123")
	assert.ErrorIs(t, err, userstore.ErrInvalidCredentials)
}

func TestCreateDuplicate(t *testing.T) {
	s := userstore.New()

	_, err := s.Create("Eloise", "eloise@bakery.com", "secret123", models.RoleStaff)
	require.NoError(t, err)

	_, err = s.Create("Other", "Eloise@Bakery.com", "other456", models.RoleStaff)
	assert.ErrorIs(t, err, userstore.ErrUserExists)
}

func TestSeedDefaultAdmin(t *testing.T) {
	s := userstore.New()
	require.NoError(t, s.SeedDefaultAdmin())

	admin, err := s.Authenticate("admin@bakery.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, admin.Role)

	// seeding again is a no-op
	require.NoError(t, s.SeedDefaultAdmin())
	_, ok := s.GetByEmail("admin@bakery.com")
	assert.True(t, ok)
}
