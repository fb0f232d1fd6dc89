package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roost-dev/roost/internal/models"
)

func TestPasswordHashAndVerify(t *testing.T) {
	hash, err := HashPassword("s3cret-password")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-password", hash)

	assert.NoError(t, VerifyPassword("s3cret-password", hash))
	assert.Error(t, VerifyPassword("wrong-password", hash))
	assert.Error(t, VerifyPassword("s3cret-password", "not-a-hash"))
}

func TestGenerateAndValidateToken(t *testing.T) {
	InitializeJWT("test-secret")

	token, err := GenerateToken("user-123", "alice@example.com", models.RoleAdmin)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.Equal(t, models.RoleAdmin, claims.Role)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	InitializeJWT("secret-one")
	token, err := GenerateToken("user-123", "alice@example.com", models.RoleUser)
	require.NoError(t, err)

	InitializeJWT("secret-two")
	_, err = ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateGarbageToken(t *testing.T) {
	InitializeJWT("test-secret")

	for _, garbage := range []string{"", "not.a.token", "aaaa.bbbb.cccc"} {
		_, err := ValidateToken(garbage)
		assert.Error(t, err, "token %q should not validate", garbage)
	}
}
