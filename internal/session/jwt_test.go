package session

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func TestExtractUser(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{
		"sub":   "u1",
		"email": "a@b.com",
		"role":  "admin",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})

	user := ExtractUser(token)
	require.NotNil(t, user)
	assert.Equal(t, "u1", user.ID)
	assert.Equal(t, "a@b.com", user.Email)
	assert.Equal(t, RoleAdmin, user.Role)
}

func TestExtractUser_ExpiredTokenStillDecodes(t *testing.T) {
	// Expiry is the server's concern; the codec only reads claims.
	token := signedToken(t, jwt.MapClaims{
		"sub":   "u2",
		"email": "x@y.com",
		"role":  "user",
		"exp":   time.Now().Add(-time.Hour).Unix(),
	})

	user := ExtractUser(token)
	require.NotNil(t, user)
	assert.Equal(t, "u2", user.ID)
}

func TestExtractUser_Malformed(t *testing.T) {
	badPayload := base64.RawURLEncoding.EncodeToString([]byte("not json"))

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty", token: ""},
		{name: "missing segments", token: "onlyonesegment"},
		{name: "two segments", token: "a.b"},
		{name: "four segments", token: "a.b.c.d"},
		{name: "invalid base64 payload", token: "header.!!!not-base64!!!.sig"},
		{name: "payload is not json", token: "header." + badPayload + ".sig"},
		{
			name: "missing sub claim",
			token: signedToken(t, jwt.MapClaims{
				"email": "a@b.com",
				"role":  "admin",
			}),
		},
		{
			name: "missing email claim",
			token: signedToken(t, jwt.MapClaims{
				"sub":  "u1",
				"role": "admin",
			}),
		},
		{
			name: "missing role claim",
			token: signedToken(t, jwt.MapClaims{
				"sub":   "u1",
				"email": "a@b.com",
			}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				assert.Nil(t, ExtractUser(tt.token))
			})
		})
	}
}
