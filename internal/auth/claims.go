// Package auth holds the JWT claim shape shared by the login service and
// the request middleware.
package auth

import "github.com/golang-jwt/jwt/v5"

// SessionClaims carries the authenticated username (subject) and the
// screen permissions granted to it.
type SessionClaims struct {
	Permissions []string `json:"perms"`
	jwt.RegisteredClaims
}
