package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"car-auction/internal/pkg/cookie"
	"car-auction/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const ctxDealerIDKey = "dealer_id"

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Access token required",
			})
			c.Abort()
			return
		}

		dealerID, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		c.Set(ctxDealerIDKey, dealerID)
		c.Next()
	}
}

// extractToken prefers the access cookie and falls back to a bearer header
// for non-browser clients.
func extractToken(c *gin.Context) string {
	if token := cookie.GetAccessToken(c); token != "" {
		return token
	}

	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func GetDealerID(c *gin.Context) (uuid.UUID, bool) {
	dealerID, exists := c.Get(ctxDealerIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := dealerID.(uuid.UUID)
	return id, ok
}
