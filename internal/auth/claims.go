package auth

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is the decoded payload of the platform access token.
//
// The token itself is opaque to the client: it is issued and verified by the
// backend, and the client only decodes it to learn the role and user id it
// was issued for. Signature verification is the backend's job.
type TokenClaims struct {
	jwt.RegisteredClaims

	// Role is the account role the token was issued for
	Role Role `json:"role"`

	// UserID is the profile record identifier for the role's resource
	UserID string `json:"user_id"`
}

// ParseAccessToken decodes the claims of an access token without verifying
// the signature.
//
// Returns ErrTokenMalformed if the token cannot be decoded.
func ParseAccessToken(token string) (*TokenClaims, error) {
	if token == "" {
		return nil, NewError(ErrTokenMalformed, "token cannot be empty", nil)
	}

	parsed, _, err := jwt.NewParser().ParseUnverified(token, &TokenClaims{})
	if err != nil {
		return nil, WrapError(ErrTokenMalformed, "failed to parse token", err, nil)
	}

	claims, ok := parsed.Claims.(*TokenClaims)
	if !ok {
		return nil, NewError(ErrTokenMalformed, "invalid token claims", nil)
	}

	return claims, nil
}
