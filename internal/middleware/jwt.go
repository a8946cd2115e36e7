package middleware

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/Towet-Tum/Matatu-Management-Sacco/internal/authz"
	"github.com/Towet-Tum/Matatu-Management-Sacco/internal/models"
)

const identityKey = "identity"

var secret = []byte(getJWTSecret())

func getJWTSecret() string {
	if val := os.Getenv("JWT_SECRET"); val != "" {
		return val
	}
	return "supersecret" // fallback
}

// GenerateToken mints a 72h HS256 token carrying the user id and role.
func GenerateToken(userID uint, role models.Role) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"role":    string(role),
		"exp":     time.Now().Add(72 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// ValidateToken parses and verifies a raw token string.
func ValidateToken(tokenStr string) (*jwt.Token, error) {
	return jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		return secret, nil
	})
}

// RequireAuth ensures a valid JWT is present and resolves its claims into an
// authz.Identity stored in the request context. It never advances the chain
// itself so RequireCapability can reuse it before its own check.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		token, err := ValidateToken(tokenString)
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
			return
		}

		userID, ok := claims["user_id"].(float64)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
			return
		}
		roleStr, _ := claims["role"].(string)
		role, ok := models.ParseRole(roleStr)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
			return
		}

		c.Set(identityKey, authz.Identity{
			UserID:        uint(userID),
			Role:          role,
			Authenticated: true,
		})
	}
}

// CurrentIdentity returns the caller resolved by RequireAuth. The zero
// Identity (unauthenticated) is returned when no auth middleware ran.
func CurrentIdentity(c *gin.Context) authz.Identity {
	if v, exists := c.Get(identityKey); exists {
		if id, ok := v.(authz.Identity); ok {
			return id
		}
	}
	return authz.Identity{}
}

// RequireCapability ensures the JWT is valid and the caller's role grants the
// capability. Runs before any validation or store access.
func RequireCapability(cap authz.Capability) gin.HandlerFunc {
	return func(c *gin.Context) {
		resolve := RequireAuth()
		resolve(c)
		if c.IsAborted() {
			return
		}

		if !authz.Allowed(CurrentIdentity(c), cap) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
			return
		}
	}
}
