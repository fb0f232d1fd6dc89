package session

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCredentialHeaderValue(t *testing.T) {
	assert.Equal(t, "Bearer abc", Bearer("abc").HeaderValue())
	assert.Equal(t, "Basic dGVzdA==", Basic("dGVzdA==").HeaderValue())
	assert.Equal(t, "", Credential{}.HeaderValue())
}

func TestEncodeBasic(t *testing.T) {
	cred := EncodeBasic("alice@example.com", "s3cret")

	assert.Equal(t, SchemeBasic, cred.Scheme)

	decoded, err := base64.StdEncoding.DecodeString(cred.Secret)
	assert.NoError(t, err)
	assert.Equal(t, "alice@example.com:s3cret", string(decoded))
}

func TestCredentialIsZero(t *testing.T) {
	assert.True(t, Credential{}.IsZero())
	assert.True(t, Credential{Scheme: SchemeBearer}.IsZero())
	assert.True(t, Credential{Secret: "abc"}.IsZero())
	assert.False(t, Bearer("abc").IsZero())
	assert.False(t, EncodeBasic("a@b.com", "pw").IsZero())
}
