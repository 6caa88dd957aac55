package types

import "github.com/golang-jwt/jwt/v5"

// TokenClaims represents the claims in a bearer token. Tokens are issued
// by the mobile app's identity provider; this service only validates
// them and reads the subject as the user ID.
type TokenClaims struct {
	jwt.RegisteredClaims
	Username string `json:"username,omitempty"`
}
