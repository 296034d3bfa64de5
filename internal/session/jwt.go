package session

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/gurtar/gurtarctl/internal/logger"
	"go.uber.org/zap"
)

// accessClaims is the subset of access token claims the client consumes.
type accessClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// ExtractUser decodes the payload segment of an access token and maps its
// claims onto a User. It deliberately skips signature and expiry
// verification: the decode is an identity hint for display, and only the
// server's accept/reject of the bearer token is authoritative.
//
// Returns nil for any malformed token (wrong segment count, invalid base64,
// invalid JSON, missing claims); it never panics and never returns an error.
func ExtractUser(token string) *User {
	parser := jwt.NewParser(jwt.WithoutClaimsValidation())

	claims := &accessClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		logger.Debug("cannot parse access token", zap.Error(err))
		return nil
	}

	if claims.Subject == "" || claims.Email == "" || claims.Role == "" {
		logger.Debug("access token missing required claims")
		return nil
	}

	return &User{
		ID:    claims.Subject,
		Email: claims.Email,
		Role:  Role(claims.Role),
	}
}
