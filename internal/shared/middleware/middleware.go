package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"tourly/internal/shared/config"
	"tourly/internal/shared/utils/response"
	"tourly/pkg/logger"
)

// Context keys set by JWTAuth
const (
	ContextUsername  = "username"
	ContextUserRole  = "user_role"
	ContextRequestID = "request_id"
)

const RoleAdmin = "admin"

// JWTAuth creates a JWT authentication middleware. A missing header is 401,
// a token that fails verification or has expired is 403.
func JWTAuth(cfg *config.Config) gin.HandlerFunc {
	return JWTAuthWithSecret(cfg.JWT.Secret)
}

func JWTAuthWithSecret(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			logger.GetDefault().LogAuthFailure(c.Request.Context(), "missing authorization header", c.ClientIP())
			response.AbortJSON(c, http.StatusUnauthorized, "Authorization header is required", nil)
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			response.AbortJSON(c, http.StatusUnauthorized, "authorization header format must be Bearer {token}", nil)
			return
		}

		token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			logger.GetDefault().LogAuthFailure(c.Request.Context(), "invalid or expired token", c.ClientIP())
			response.AbortJSON(c, http.StatusForbidden, "invalid or expired token", nil)
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			response.AbortJSON(c, http.StatusForbidden, "invalid token claims", nil)
			return
		}
		if tokenType, ok := claims["type"]; !ok || tokenType != "access" {
			response.AbortJSON(c, http.StatusForbidden, "invalid token type", nil)
			return
		}

		c.Set(ContextUsername, claims["username"])
		c.Set(ContextUserRole, claims["role"])
		c.Next()
	}
}

// RequireRole middleware checks if user has required role
func RequireRole(requiredRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole, exists := c.Get(ContextUserRole)
		if !exists {
			response.AbortJSON(c, http.StatusUnauthorized, "user role not found in context", nil)
			return
		}

		role, _ := userRole.(string)
		if role != requiredRole {
			response.AbortJSON(c, http.StatusForbidden, "Insufficient permissions", nil)
			return
		}
		c.Next()
	}
}

// RequireAdmin middleware that requires admin role
func RequireAdmin() gin.HandlerFunc {
	return RequireRole(RoleAdmin)
}

// RequestID reuses the caller's X-Request-ID or generates one
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(ContextRequestID, requestID)
		c.Writer.Header().Set("X-Request-ID", requestID)
		c.Next()
	}
}

// RequestLogger logs every request once the handler chain has finished
func RequestLogger(l *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		duration := time.Since(start)
		if len(c.Errors) > 0 {
			l.LogHTTPError(c, c.Errors.Last().Err, c.Writer.Status())
			return
		}
		l.LogHTTPRequest(c, duration)
	}
}
