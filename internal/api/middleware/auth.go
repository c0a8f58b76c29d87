// internal/api/middleware/auth.go
package middleware

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"parma-backoffice/internal/auth"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	authorizationHeader = "Authorization"
	userCtx             = "username" // Key to store the authenticated username in context
	permsCtx            = "permissions"
)

// JWTAuthMiddleware creates a Gin middleware for JWT authentication.
func JWTAuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(authorizationHeader)
		if authHeader == "" {
			log.Println("Auth middleware: Authorization header missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		headerParts := strings.Split(authHeader, " ")
		if len(headerParts) != 2 || strings.ToLower(headerParts[0]) != "bearer" {
			log.Println("Auth middleware: Invalid Authorization header format")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid Authorization header format"})
			return
		}

		tokenString := headerParts[1]

		// Parse and validate the token
		token, err := jwt.ParseWithClaims(tokenString, &auth.SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
			// Validate the alg is what you expect:
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(jwtSecret), nil
		})

		if err != nil {
			log.Printf("Auth middleware: Error parsing token: %v", err)
			if errors.Is(err, jwt.ErrTokenExpired) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token has expired"})
			} else {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			}
			return
		}

		if claims, ok := token.Claims.(*auth.SessionClaims); ok && token.Valid {
			if claims.Subject == "" {
				log.Println("Auth middleware: Token has no subject")
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid user identifier in token"})
				return
			}

			// Store identity in context for downstream handlers
			c.Set(userCtx, claims.Subject)
			c.Set(permsCtx, claims.Permissions)
			c.Next() // Proceed to the next handler
		} else {
			log.Println("Auth middleware: Invalid token claims or token is not valid")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
		}
	}
}

// RequirePermission gates a route group behind one screen permission.
// Runs after JWTAuthMiddleware has filled the context.
func RequirePermission(perm string) gin.HandlerFunc {
	return func(c *gin.Context) {
		perms, err := GetPermissionsFromContext(c)
		if err != nil {
			log.Printf("Auth middleware: %v", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}
		for _, p := range perms {
			if p == perm {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": fmt.Sprintf("Access to %s is not permitted for this user", perm)})
	}
}

// Helper function to get the authenticated username from context
func GetUserFromContext(c *gin.Context) (string, error) {
	usernameAny, exists := c.Get(userCtx)
	if !exists {
		return "", errors.New("username not found in context")
	}

	username, ok := usernameAny.(string)
	if !ok {
		return "", errors.New("username in context is of invalid type")
	}

	return username, nil
}

// Helper function to get the session permissions from context
func GetPermissionsFromContext(c *gin.Context) ([]string, error) {
	permsAny, exists := c.Get(permsCtx)
	if !exists {
		return nil, errors.New("permissions not found in context")
	}

	perms, ok := permsAny.([]string)
	if !ok {
		return nil, errors.New("permissions in context are of invalid type")
	}

	return perms, nil
}
