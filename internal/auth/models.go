package auth

import "github.com/golang-jwt/jwt/v4"

const (
	RoleAdmin       = "admin"
	TokenTypeAccess = "access"
	tokenIssuer     = "tourly"
)

// JWTClaims represents JWT token claims
type JWTClaims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	Type     string `json:"type"`
	jwt.RegisteredClaims
}

// Admin is the identity behind a dashboard session
type Admin struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}
