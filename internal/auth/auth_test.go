package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barbershop-reservation/internal/httperr"
	"github.com/BruksfildServices01/barbershop-reservation/internal/models"
)

func TestActorCapabilities(t *testing.T) {
	admin := Actor{UserID: 1, Role: models.RoleAdmin}
	owner := Actor{UserID: 2, Role: models.RoleUser}
	other := Actor{UserID: 3, Role: models.RoleUser}
	anonymous := Actor{}

	assert.NoError(t, admin.RequireAdmin())
	assert.True(t, errors.Is(owner.RequireAdmin(), httperr.ErrForbidden))

	assert.NoError(t, admin.RequireOwnerOrAdmin(2))
	assert.NoError(t, owner.RequireOwnerOrAdmin(2))
	assert.True(t, errors.Is(other.RequireOwnerOrAdmin(2), httperr.ErrForbidden))
	assert.True(t, errors.Is(anonymous.RequireOwnerOrAdmin(0), httperr.ErrForbidden))
}

func TestTokenRoundTrip(t *testing.T) {
	user := &models.User{ID: 42, Role: models.RoleAdmin}

	token, err := IssueToken(user, "secret", time.Hour, time.Now())
	require.NoError(t, err)

	actor, err := ParseToken(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, uint(42), actor.UserID)
	assert.True(t, actor.IsAdmin())
}

func TestParseTokenRejects(t *testing.T) {
	user := &models.User{ID: 42, Role: models.RoleUser}

	valid, err := IssueToken(user, "secret", time.Hour, time.Now())
	require.NoError(t, err)

	expired, err := IssueToken(user, "secret", time.Hour, time.Now().Add(-2*time.Hour))
	require.NoError(t, err)

	tests := map[string]struct {
		token  string
		secret string
	}{
		"wrong secret": {valid, "other"},
		"expired":      {expired, "secret"},
		"garbage":      {"not-a-jwt", "secret"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseToken(tt.token, tt.secret)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestPasswordHash(t *testing.T) {
	hash, err := HashPassword("Admin123")
	require.NoError(t, err)

	assert.NotEqual(t, "Admin123", hash)
	assert.True(t, CheckPassword(hash, "Admin123"))
	assert.False(t, CheckPassword(hash, "admin123"))
}
