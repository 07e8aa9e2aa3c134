package auth

import (
	"testing"
	"time"

	"github.com/agenciadigitalslz/sistema-vendas-nota3/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUser(t *testing.T) *user.User {
	t.Helper()
	u, err := user.NewUser("Admin", "admin@example.com", "secret1", user.RoleAdmin)
	require.NoError(t, err)
	u.ID = 42
	return u
}

func TestGenerateAndValidateToken(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "chave-de-teste")

	svc, err := NewJWTService()
	require.NoError(t, err)

	token, err := svc.GenerateToken(newTestUser(t))
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)

	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "admin@example.com", claims.Email)
	assert.Equal(t, string(user.RoleAdmin), claims.Role)
	assert.Equal(t, "sistema-vendas-api", claims.Issuer)
	assert.NotEmpty(t, claims.ID, "cada token recebe um jti próprio")
}

func TestValidateTokenWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "chave-a")
	svc, err := NewJWTService()
	require.NoError(t, err)

	token, err := svc.GenerateToken(newTestUser(t))
	require.NoError(t, err)

	t.Setenv("JWT_SECRET_KEY", "chave-b")
	other, err := NewJWTService()
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateTokenExpired(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "chave-de-teste")
	svc, err := NewJWTService()
	require.NoError(t, err)
	svc.expiration = -time.Minute

	token, err := svc.GenerateToken(newTestUser(t))
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestNewJWTServiceMissingKey(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "")

	_, err := NewJWTService()
	assert.ErrorIs(t, err, ErrMissingJWTKey)
}
