package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sudhev0011/VoterMngmtServer/models"
)

func TestTokenServiceRoundTrip(t *testing.T) {
	tokens := NewTokenService([]byte("test-secret"), time.Hour)

	signed, err := tokens.Generate(42, models.RoleAdmin)
	require.NoError(t, err)

	claims, err := tokens.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, models.RoleAdmin, claims.Role)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestTokenServiceRejectsExpired(t *testing.T) {
	tokens := NewTokenService([]byte("test-secret"), -time.Minute)

	signed, err := tokens.Generate(1, models.RoleUser)
	require.NoError(t, err)

	_, err = tokens.Verify(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenServiceRejectsWrongSecret(t *testing.T) {
	issuer := NewTokenService([]byte("issuer-secret"), time.Hour)
	verifier := NewTokenService([]byte("other-secret"), time.Hour)

	signed, err := issuer.Generate(1, models.RoleUser)
	require.NoError(t, err)

	_, err = verifier.Verify(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenServiceRejectsGarbage(t *testing.T) {
	tokens := NewTokenService([]byte("test-secret"), time.Hour)

	for _, garbage := range []string{"", "not-a-jwt", "a.b.c"} {
		_, err := tokens.Verify(garbage)
		assert.ErrorIs(t, err, ErrInvalidToken, "input %q", garbage)
	}
}

func TestTokenServiceRejectsUnknownRole(t *testing.T) {
	tokens := NewTokenService([]byte("test-secret"), time.Hour)

	signed, err := tokens.Generate(1, models.Role("superuser"))
	require.NoError(t, err)

	_, err = tokens.Verify(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
